package handler

import (
	"net/http"

	"github.com/AndreiWRoiko/InvetarioOp/internal/dto"
	"github.com/AndreiWRoiko/InvetarioOp/internal/service"

	"github.com/gin-gonic/gin"
)

type CelularesHandler struct{ svc service.CelularService }

func NewCelularesHandler(svc service.CelularService) *CelularesHandler {
	return &CelularesHandler{svc: svc}
}

func (h *CelularesHandler) Listar(c *gin.Context) {
	celulares, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, celulares)
}

func (h *CelularesHandler) ObterPorID(c *gin.Context) {
	cel, err := h.svc.ObterPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err, "Celular não encontrado")
		return
	}
	c.JSON(http.StatusOK, cel)
}

func (h *CelularesHandler) Criar(c *gin.Context) {
	var req dto.CriarCelularRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cel, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusCreated, cel)
}

func (h *CelularesHandler) Atualizar(c *gin.Context) {
	fields, actor, ok := bindPatch(c)
	if !ok {
		return
	}
	cel, err := h.svc.Atualizar(c.Request.Context(), c.Param("id"), fields, actor)
	if err != nil {
		writeServiceError(c, err, "Celular não encontrado")
		return
	}
	c.JSON(http.StatusOK, cel)
}

func (h *CelularesHandler) Remover(c *gin.Context) {
	actor := bindOptionalActor(c)
	if err := h.svc.Remover(c.Request.Context(), c.Param("id"), actor); err != nil {
		writeServiceError(c, err, "Celular não encontrado")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
