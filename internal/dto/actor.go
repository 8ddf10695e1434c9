package dto

// Actor identifies who performed a mutation. Equipment mutation bodies carry
// it as the _userId/_userName hint keys; when absent the audit trail records
// the "system"/"Sistema" sentinel instead.
type Actor struct {
	UserID   string `json:"_userId"`
	UserName string `json:"_userName"`
}

// IsAnonymous reports whether no actor identity was supplied.
func (a Actor) IsAnonymous() bool { return a.UserID == "" }
