// Package accountdelivery manages delivery layer of accounts.
package accountdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/go-petr/pet-ledger/internal/delivery"
	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/web"
)

// Service provides service layer interface needed by account delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package accountdelivery
type Service interface {
	OpenAccount(ctx context.Context, balance domain.Money) (domain.Account, error)
	RegisterExternalAddress(ctx context.Context, address domain.ExternalAddress) (domain.Account, error)
	Get(ctx context.Context, id domain.AccountID) (domain.Account, error)
	Deposit(ctx context.Context, id domain.AccountID, amount domain.Money) (domain.Account, error)
}

// Handler facilitates account delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns account handler.
func NewHandler(as Service) Handler {
	return Handler{service: as}
}

type data struct {
	Account domain.Account `json:"account"`
}

type createRequest struct {
	Balance string `json:"balance" binding:"required,balance"`
}

// Create handles http request to open an internal account.
func (h *Handler) Create(gctx *gin.Context) {
	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		web.RespondBindingError(gctx, err)
		return
	}

	balance, err := domain.ParseMoney(req.Balance)
	if err != nil {
		delivery.RespondError(gctx, err)
		return
	}

	account, err := h.service.OpenAccount(gctx.Request.Context(), balance)
	if err != nil {
		delivery.RespondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusCreated, web.Response{Data: data{account}})
}

type createExternalRequest struct {
	Address string `json:"address" binding:"required"`
}

// CreateExternal handles http request to register an external address.
func (h *Handler) CreateExternal(gctx *gin.Context) {
	var req createExternalRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		web.RespondBindingError(gctx, err)
		return
	}

	account, err := h.service.RegisterExternalAddress(gctx.Request.Context(), domain.ExternalAddress(req.Address))
	if err != nil {
		delivery.RespondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusCreated, web.Response{Data: data{account}})
}

type accountURI struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// Get handles http request to get account.
func (h *Handler) Get(gctx *gin.Context) {
	var uri accountURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		web.RespondBindingError(gctx, err)
		return
	}

	id, err := domain.ParseAccountID(uri.ID)
	if err != nil {
		delivery.RespondError(gctx, err)
		return
	}

	account, err := h.service.Get(gctx.Request.Context(), id)
	if err != nil {
		delivery.RespondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: data{account}})
}

type depositRequest struct {
	Amount string `json:"amount" binding:"required,amount"`
}

// Deposit handles http request to credit an account.
func (h *Handler) Deposit(gctx *gin.Context) {
	var uri accountURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		web.RespondBindingError(gctx, err)
		return
	}

	var req depositRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		web.RespondBindingError(gctx, err)
		return
	}

	id, err := domain.ParseAccountID(uri.ID)
	if err != nil {
		delivery.RespondError(gctx, err)
		return
	}

	amount, err := domain.ParseMoney(req.Amount)
	if err != nil {
		delivery.RespondError(gctx, err)
		return
	}

	account, err := h.service.Deposit(gctx.Request.Context(), id, amount)
	if err != nil {
		delivery.RespondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: data{account}})
}
