package handler

import (
	"errors"
	"net/http"

	"github.com/AndreiWRoiko/InvetarioOp/internal/apierror"
	"github.com/AndreiWRoiko/InvetarioOp/internal/dto"
	"github.com/AndreiWRoiko/InvetarioOp/internal/service"

	"github.com/gin-gonic/gin"
)

type UsuariosHandler struct{ svc service.AuthService }

func NewUsuariosHandler(svc service.AuthService) *UsuariosHandler {
	return &UsuariosHandler{svc: svc}
}

func (h *UsuariosHandler) Criar(c *gin.Context) {
	var req dto.CriarUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	user, err := h.svc.CriarUsuario(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrEmailCadastrado) {
			c.JSON(http.StatusBadRequest, apierror.New("Email já cadastrado"))
			return
		}
		writeServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *UsuariosHandler) Listar(c *gin.Context) {
	users, err := h.svc.ListarUsuarios(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UsuariosHandler) ObterPorID(c *gin.Context) {
	user, err := h.svc.ObterUsuario(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err, "Usuário não encontrado")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UsuariosHandler) Atualizar(c *gin.Context) {
	fields, _, ok := bindPatch(c)
	if !ok {
		return
	}
	user, err := h.svc.AtualizarUsuario(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		if errors.Is(err, service.ErrEmailCadastrado) {
			c.JSON(http.StatusBadRequest, apierror.New("Email já cadastrado"))
			return
		}
		writeServiceError(c, err, "Usuário não encontrado")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UsuariosHandler) Remover(c *gin.Context) {
	if err := h.svc.RemoverUsuario(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err, "Usuário não encontrado")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
