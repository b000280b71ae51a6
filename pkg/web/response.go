// Package web defines common components for a web application.
package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/pkg/errorspkg"
)

// Response holds the common response type for all APIs.
type Response struct {
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	ErrorID string `json:"error_id,omitempty"`
}

// RespondError writes err to the client with the given status.
//
// Server errors are hidden behind errorspkg.ErrInternal and an opaque error
// id, which is logged together with the actual error.
func RespondError(gctx *gin.Context, status int, err error) {
	l := zerolog.Ctx(gctx.Request.Context())

	if status < http.StatusInternalServerError {
		l.Info().Err(err).Int("status_code", status).Send()
		gctx.JSON(status, Response{Error: err.Error()})

		return
	}

	errorID := uuid.NewString()

	l.Error().Err(err).Str("error_id", errorID).Send()
	gctx.JSON(status, Response{Error: errorspkg.ErrInternal.Error(), ErrorID: errorID})
}
