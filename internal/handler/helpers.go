package handler

import (
	"errors"
	"io"
	"net/http"
	"reflect"

	"github.com/AndreiWRoiko/InvetarioOp/internal/apierror"
	"github.com/AndreiWRoiko/InvetarioOp/internal/dto"
	"github.com/AndreiWRoiko/InvetarioOp/internal/repository"
	"github.com/AndreiWRoiko/InvetarioOp/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, apierror.NewValidation(fields))
		return false
	}
	return true
}

// bindPatch reads a partial-update body into a field map and strips the
// _userId/_userName actor hints out of it. An absent body counts as an
// empty patch.
func bindPatch(c *gin.Context) (map[string]any, dto.Actor, bool) {
	fields := make(map[string]any)
	if err := c.ShouldBindJSON(&fields); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return nil, dto.Actor{}, false
	}
	return fields, extractActor(fields), true
}

func extractActor(fields map[string]any) dto.Actor {
	var actor dto.Actor
	if v, ok := fields["_userId"].(string); ok {
		actor.UserID = v
	}
	if v, ok := fields["_userName"].(string); ok {
		actor.UserName = v
	}
	delete(fields, "_userId")
	delete(fields, "_userName")
	return actor
}

// bindOptionalActor reads actor hints from a DELETE body, which may be empty.
func bindOptionalActor(c *gin.Context) dto.Actor {
	var actor dto.Actor
	_ = c.ShouldBindJSON(&actor)
	return actor
}

// writeServiceError maps service-layer errors to HTTP statuses. Unknown
// errors are logged and surfaced as a generic 500 so internals never leak.
func writeServiceError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, apierror.New(notFoundMsg))
	case errors.Is(err, service.ErrPermissaoNegada):
		c.JSON(http.StatusForbidden, apierror.New("Permissão negada"))
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("service error")
		c.JSON(http.StatusInternalServerError, apierror.New("Erro interno do servidor"))
	}
}
