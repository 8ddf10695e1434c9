package handler

import (
	"net/http"

	"github.com/AndreiWRoiko/InvetarioOp/internal/dto"
	"github.com/AndreiWRoiko/InvetarioOp/internal/service"

	"github.com/gin-gonic/gin"
)

type TerminaisHandler struct{ svc service.TerminalService }

func NewTerminaisHandler(svc service.TerminalService) *TerminaisHandler {
	return &TerminaisHandler{svc: svc}
}

func (h *TerminaisHandler) Listar(c *gin.Context) {
	terminais, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, terminais)
}

func (h *TerminaisHandler) ObterPorID(c *gin.Context) {
	t, err := h.svc.ObterPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err, "Terminal não encontrado")
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TerminaisHandler) Criar(c *gin.Context) {
	var req dto.CriarTerminalRequest
	if !bindAndValidate(c, &req) {
		return
	}
	t, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *TerminaisHandler) Atualizar(c *gin.Context) {
	fields, actor, ok := bindPatch(c)
	if !ok {
		return
	}
	t, err := h.svc.Atualizar(c.Request.Context(), c.Param("id"), fields, actor)
	if err != nil {
		writeServiceError(c, err, "Terminal não encontrado")
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TerminaisHandler) Remover(c *gin.Context) {
	actor := bindOptionalActor(c)
	if err := h.svc.Remover(c.Request.Context(), c.Param("id"), actor); err != nil {
		writeServiceError(c, err, "Terminal não encontrado")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
