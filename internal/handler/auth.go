package handler

import (
	"errors"
	"net/http"

	"github.com/AndreiWRoiko/InvetarioOp/internal/apierror"
	"github.com/AndreiWRoiko/InvetarioOp/internal/dto"
	"github.com/AndreiWRoiko/InvetarioOp/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login godoc
// @Summary Login de usuário
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credenciais"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} apierror.APIError
// @Failure 403 {object} apierror.APIError
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return
	}
	if req.Email == "" || req.Senha == "" {
		c.JSON(http.StatusBadRequest, apierror.New("Email e senha são obrigatórios"))
		return
	}

	user, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCredenciaisInvalidas):
			c.JSON(http.StatusUnauthorized, apierror.New("Credenciais inválidas"))
		case errors.Is(err, service.ErrUsuarioInativo):
			c.JSON(http.StatusForbidden, apierror.New("Usuário inativo"))
		default:
			writeServiceError(c, err, "")
		}
		return
	}
	c.JSON(http.StatusOK, dto.LoginResponse{User: *user})
}
