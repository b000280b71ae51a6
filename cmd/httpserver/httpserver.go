// Package httpserver manages server creation and api routing.
package httpserver

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/accountdelivery"
	"github.com/go-petr/pet-ledger/internal/accountrepo"
	"github.com/go-petr/pet-ledger/internal/accountservice"
	"github.com/go-petr/pet-ledger/internal/delivery"
	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/middleware"
	"github.com/go-petr/pet-ledger/internal/reconciliation"
	"github.com/go-petr/pet-ledger/internal/transactionrepo"
	"github.com/go-petr/pet-ledger/internal/transactionservice"
	"github.com/go-petr/pet-ledger/internal/withdrawalclient"
	"github.com/go-petr/pet-ledger/internal/withdrawaldelivery"
	"github.com/go-petr/pet-ledger/internal/withdrawalservice"
	"github.com/go-petr/pet-ledger/pkg/configpkg"
	"github.com/go-petr/pet-ledger/pkg/web"
)

type accountStore interface {
	Add(ctx context.Context, account domain.Account) (domain.Account, error)
	Get(ctx context.Context, id domain.AccountID) (domain.Account, error)
	Update(ctx context.Context, account domain.Account) (domain.Account, error)
	FindByExternalAddress(ctx context.Context, address domain.ExternalAddress) (domain.Account, bool, error)
}

type transactionStore interface {
	Add(ctx context.Context, transaction domain.Transaction) (domain.Transaction, error)
	Get(ctx context.Context, id domain.TransactionID) (domain.Transaction, error)
	Update(ctx context.Context, transaction domain.Transaction) (domain.Transaction, error)
	FindByTypeAndStates(ctx context.Context, typ domain.TransactionType, states ...domain.TransactionState) ([]domain.Transaction, error)
}

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config
	// Stub is the in-memory withdrawal network, nil when a real one is configured.
	Stub *withdrawalclient.Stub

	reconciler *reconciliation.Job
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// Reconcile runs one reconciliation pass over pending withdrawals.
func (s *Server) Reconcile(ctx context.Context) error {
	_, err := s.reconciler.Run(ctx)
	return err
}

// New creates Server type with instantiated domains and routes.
//
// conn is only used with the postgres storage and may be nil otherwise.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	var (
		accountRepo     accountStore
		transactionRepo transactionStore
	)

	switch config.Storage {
	case configpkg.StoragePostgres:
		if conn == nil {
			return nil, fmt.Errorf("%w: postgres storage needs a database connection", configpkg.ErrInvalidConfig)
		}

		accountRepo = accountrepo.NewRepoPGS(conn)
		transactionRepo = transactionrepo.NewRepoPGS(conn)
	case configpkg.StorageMemory:
		accountRepo = accountrepo.NewRepoMem()
		transactionRepo = transactionrepo.NewRepoMem()
	default:
		return nil, fmt.Errorf("%w: unknown storage %q", configpkg.ErrInvalidConfig, config.Storage)
	}

	server := &Server{
		DB:     conn,
		Config: config,
	}

	var client withdrawalservice.WithdrawalClient

	if config.WithdrawalServiceURL == "" {
		server.Stub = withdrawalclient.NewStub()
		client = server.Stub
	} else {
		client = withdrawalclient.NewClient(withdrawalclient.Config{
			BaseURL:     config.WithdrawalServiceURL,
			Timeout:     config.WithdrawalServiceTimeout,
			MaxFailures: config.BreakerMaxFailures,
			OpenTimeout: config.BreakerOpenTimeout,
		}, logger)
	}

	transactionManager := transactionservice.New(accountRepo, transactionRepo)
	accountService := accountservice.New(accountRepo, transactionManager)
	withdrawalService := withdrawalservice.New(accountRepo, transactionRepo, transactionManager, client)
	server.reconciler = reconciliation.New(transactionRepo, withdrawalService, transactionManager, logger)

	accountHandler := accountdelivery.NewHandler(accountService)
	withdrawalHandler := withdrawaldelivery.NewHandler(withdrawalService)

	if err := delivery.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("cannot register validators: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))

	engine.GET("/healthcheck", server.healthcheck)

	engine.POST("/accounts", accountHandler.Create)
	engine.GET("/accounts/:id", accountHandler.Get)
	engine.POST("/accounts/:id/deposits", accountHandler.Deposit)
	engine.POST("/external-accounts", accountHandler.CreateExternal)

	engine.POST("/withdrawals", withdrawalHandler.Create)
	engine.GET("/withdrawals/:id/state", withdrawalHandler.GetState)

	server.Engine = engine

	return server, nil
}

type health struct {
	Status string `json:"status"`
}

func (s *Server) healthcheck(gctx *gin.Context) {
	if s.DB != nil {
		if err := s.DB.PingContext(gctx.Request.Context()); err != nil {
			delivery.RespondError(gctx, err)
			return
		}
	}

	gctx.JSON(http.StatusOK, web.Response{Data: health{Status: "ok"}})
}
