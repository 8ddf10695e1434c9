package handler

import (
	"net/http"

	"github.com/AndreiWRoiko/InvetarioOp/internal/service"

	"github.com/gin-gonic/gin"
)

type HistoricoHandler struct{ svc service.HistoricoService }

func NewHistoricoHandler(svc service.HistoricoService) *HistoricoHandler {
	return &HistoricoHandler{svc: svc}
}

// Listar returns every audit entry, newest first.
func (h *HistoricoHandler) Listar(c *gin.Context) {
	entries, err := h.svc.ListarTodos(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, entries)
}

// ListarPorEquipamento returns the audit trail of one equipment id.
func (h *HistoricoHandler) ListarPorEquipamento(c *gin.Context) {
	entries, err := h.svc.ListarPorEquipamento(c.Request.Context(), c.Param("equipmentId"))
	if err != nil {
		writeServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, entries)
}
