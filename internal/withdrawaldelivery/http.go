// Package withdrawaldelivery manages delivery layer of withdrawals.
package withdrawaldelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/delivery"
	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/web"
)

// ErrStateUnknown is returned when a transaction has no known external state.
var ErrStateUnknown = errors.New("withdrawal state is unknown")

// Service provides service layer interface needed by withdrawal delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package withdrawaldelivery
type Service interface {
	Withdraw(ctx context.Context, arg domain.CreateWithdrawalParams) (domain.TransactionID, error)
	CheckState(ctx context.Context, id domain.TransactionID) (domain.WithdrawalState, bool, error)
}

// Handler facilitates withdrawal delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns withdrawal handler.
func NewHandler(ws Service) *Handler {
	return &Handler{
		service: ws,
	}
}

type createRequest struct {
	Amount      string `json:"amount" binding:"required,amount"`
	FromAccount string `json:"from_account" binding:"required,uuid"`
	ToAddress   string `json:"to_address" binding:"required"`
}

type createData struct {
	ID domain.TransactionID `json:"id"`
}

// Create handles http request to withdraw money to an external address.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		web.RespondBindingError(gctx, err)
		return
	}

	amount, err := domain.ParseMoney(req.Amount)
	if err != nil {
		delivery.RespondError(gctx, err)
		return
	}

	from, err := domain.ParseAccountID(req.FromAccount)
	if err != nil {
		delivery.RespondError(gctx, err)
		return
	}

	id, err := h.service.Withdraw(ctx, domain.CreateWithdrawalParams{
		Amount:    amount,
		From:      from,
		ToAddress: domain.ExternalAddress(req.ToAddress),
	})
	if err != nil {
		delivery.RespondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusCreated, web.Response{Data: createData{ID: id}})
}

type stateURI struct {
	ID string `uri:"id" binding:"required,uuid"`
}

type stateData struct {
	State domain.WithdrawalState `json:"state"`
}

// GetState handles http request to look up the external state of a withdrawal.
func (h *Handler) GetState(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var uri stateURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		web.RespondBindingError(gctx, err)
		return
	}

	id, err := domain.ParseTransactionID(uri.ID)
	if err != nil {
		delivery.RespondError(gctx, err)
		return
	}

	state, ok, err := h.service.CheckState(ctx, id)
	if err != nil {
		delivery.RespondError(gctx, err)
		return
	}

	if !ok {
		zerolog.Ctx(ctx).Info().Str("transaction_id", id.String()).Msg("no external state")
		gctx.JSON(http.StatusNotFound, web.Response{Error: ErrStateUnknown.Error()})

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: stateData{State: state}})
}
