package handler

import (
	"net/http"

	"github.com/AndreiWRoiko/InvetarioOp/internal/dto"
	"github.com/AndreiWRoiko/InvetarioOp/internal/service"

	"github.com/gin-gonic/gin"
)

type NotebooksHandler struct{ svc service.NotebookService }

func NewNotebooksHandler(svc service.NotebookService) *NotebooksHandler {
	return &NotebooksHandler{svc: svc}
}

func (h *NotebooksHandler) Listar(c *gin.Context) {
	notebooks, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, notebooks)
}

func (h *NotebooksHandler) ObterPorID(c *gin.Context) {
	n, err := h.svc.ObterPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err, "Notebook não encontrado")
		return
	}
	c.JSON(http.StatusOK, n)
}

func (h *NotebooksHandler) Criar(c *gin.Context) {
	var req dto.CriarNotebookRequest
	if !bindAndValidate(c, &req) {
		return
	}
	n, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusCreated, n)
}

func (h *NotebooksHandler) Atualizar(c *gin.Context) {
	fields, actor, ok := bindPatch(c)
	if !ok {
		return
	}
	n, err := h.svc.Atualizar(c.Request.Context(), c.Param("id"), fields, actor)
	if err != nil {
		writeServiceError(c, err, "Notebook não encontrado")
		return
	}
	c.JSON(http.StatusOK, n)
}

func (h *NotebooksHandler) Remover(c *gin.Context) {
	actor := bindOptionalActor(c)
	if err := h.svc.Remover(c.Request.Context(), c.Param("id"), actor); err != nil {
		writeServiceError(c, err, "Notebook não encontrado")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
