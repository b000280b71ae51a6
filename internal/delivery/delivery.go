// Package delivery maps ledger errors and amounts onto the HTTP layer.
package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/withdrawalclient"
	"github.com/go-petr/pet-ledger/pkg/web"
)

// StatusOf maps an error to the HTTP status code returned to clients.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidArgument),
		errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, withdrawalclient.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes err to the client with the status it maps to.
func RespondError(gctx *gin.Context, err error) {
	web.RespondError(gctx, StatusOf(err), err)
}

// ValidAmount accepts decimal strings greater than zero.
var ValidAmount validator.Func = func(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	m, err := domain.ParseMoney(s)

	return err == nil && m.Sign() == 1
}

// ValidBalance accepts decimal strings greater than or equal to zero.
var ValidBalance validator.Func = func(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	m, err := domain.ParseMoney(s)

	return err == nil && m.Sign() >= 0
}

// RegisterValidators adds the amount and balance binding tags to gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected binding validator engine")
	}

	if err := v.RegisterValidation("amount", ValidAmount); err != nil {
		return err
	}

	return v.RegisterValidation("balance", ValidBalance)
}
