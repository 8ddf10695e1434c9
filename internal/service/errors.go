package service

import "errors"

// Sentinel errors mapped to HTTP statuses at the handler boundary.
var (
	ErrCredenciaisInvalidas = errors.New("credenciais inválidas")
	ErrUsuarioInativo       = errors.New("usuário inativo")
	ErrEmailCadastrado      = errors.New("email já cadastrado")
	ErrPermissaoNegada      = errors.New("permissão negada")
)
