package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// GetErrorMsg describes a failed validation rule.
func GetErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return " is required"
	case "amount":
		return " must be a positive decimal number"
	case "balance":
		return " must be a non-negative decimal number"
	case "uuid":
		return " must be a valid UUID"
	}

	return " is invalid"
}

// RespondBindingError writes a 400 response for a request that failed binding.
func RespondBindingError(gctx *gin.Context, err error) {
	errMsg := "malformed request"

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		field := ve[0]
		errMsg = field.Field() + GetErrorMsg(field)
	}

	zerolog.Ctx(gctx.Request.Context()).Info().Err(err).Send()
	gctx.JSON(http.StatusBadRequest, Response{Error: errMsg})
}
