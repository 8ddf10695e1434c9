package dto

// DashboardStats is the aggregate view over the three equipment tables.
// Keys are whatever literal values appear in the data — no normalization.
// Only notebooks carry a fornecedor, so byFornecedor counts notebooks alone.
type DashboardStats struct {
	TotalEquipment int            `json:"totalEquipment"`
	ByStatus       map[string]int `json:"byStatus"`
	ByUF           map[string]int `json:"byUF"`
	BySegmento     map[string]int `json:"bySegmento"`
	ByFornecedor   map[string]int `json:"byFornecedor"`
}
