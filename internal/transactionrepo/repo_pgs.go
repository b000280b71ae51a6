package transactionrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/dbpkg"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
)

// RepoPGS is the PostgreSQL transaction store.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns transaction RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row scanner) (domain.Transaction, error) {
	var (
		id, from, to uuid.UUID
		amount       decimal.Decimal
		state, typ   string
		ref          sql.NullString
		version      int
	)

	if err := row.Scan(&id, &from, &to, &amount, &state, &typ, &ref, &version); err != nil {
		return domain.Transaction{}, err
	}

	v, err := domain.NewVersion(version)
	if err != nil {
		return domain.Transaction{}, err
	}

	return domain.Transaction{
		ID:          domain.TransactionID(id),
		From:        domain.AccountID(from),
		To:          domain.AccountID(to),
		Amount:      domain.NewMoney(amount),
		State:       domain.TransactionState(state),
		Type:        domain.TransactionType(typ),
		ExternalRef: domain.ExternalRef(ref.String),
		Version:     v,
	}, nil
}

const columns = `id, from_account_id, to_account_id, amount, state, type, external_ref, version`

const addQuery = `
INSERT INTO
    transactions (id, from_account_id, to_account_id, amount, state, type, external_ref, version)
VALUES
    ($1, $2, $3, $4, $5, $6, $7, 1)
RETURNING ` + columns

// Add stores a new transaction at the first version and returns it.
func (r *RepoPGS) Add(ctx context.Context, t domain.Transaction) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	if err := t.Validate(); err != nil {
		return domain.Transaction{}, err
	}

	row := r.db.QueryRowContext(ctx, addQuery,
		uuid.UUID(t.ID),
		uuid.UUID(t.From),
		uuid.UUID(t.To),
		t.Amount.Decimal(),
		string(t.State),
		string(t.Type),
		sql.NullString{String: string(t.ExternalRef), Valid: !t.ExternalRef.IsZero()},
	)

	res, err := scanTransaction(row)
	if err != nil {
		l.Error().Err(err).Msgf("Add(ctx context.Context, %+v)", t)

		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Constraint {
			case "transactions_pkey", "transactions_external_ref_key":
				return res, domain.ErrTransactionAlreadyExists
			case "transactions_from_account_id_fkey", "transactions_to_account_id_fkey":
				return res, domain.ErrAccountNotFound
			case "transactions_amount_check", "transactions_check":
				return res, domain.ErrInvalidArgument
			}
		}

		return res, errorspkg.ErrInternal
	}

	return res, nil
}

const getQuery = `
SELECT ` + columns + `
FROM transactions
WHERE id = $1
`

// Find returns the transaction with the given id and whether it exists.
func (r *RepoPGS) Find(ctx context.Context, id domain.TransactionID) (domain.Transaction, bool, error) {
	l := zerolog.Ctx(ctx)

	t, err := scanTransaction(r.db.QueryRowContext(ctx, getQuery, uuid.UUID(id)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return t, false, nil
		}

		l.Error().Err(err).Send()

		return t, false, errorspkg.ErrInternal
	}

	return t, true, nil
}

// Get returns the transaction with the given id.
func (r *RepoPGS) Get(ctx context.Context, id domain.TransactionID) (domain.Transaction, error) {
	t, ok, err := r.Find(ctx, id)
	if err != nil {
		return t, err
	}

	if !ok {
		return t, domain.ErrTransactionNotFound
	}

	return t, nil
}

const findByTypeAndStatesQuery = `
SELECT ` + columns + `
FROM transactions
WHERE type = $1 AND state = ANY($2)
`

// FindByTypeAndStates returns transactions of the given type in any of the given states.
func (r *RepoPGS) FindByTypeAndStates(ctx context.Context, typ domain.TransactionType, states ...domain.TransactionState) ([]domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	stateNames := make([]string, len(states))
	for i, s := range states {
		stateNames[i] = string(s)
	}

	rows, err := r.db.QueryContext(ctx, findByTypeAndStatesQuery, string(typ), pq.Array(stateNames))
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Transaction{}

	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, t)
	}

	if err := rows.Close(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const updateQuery = `
UPDATE transactions
SET state = $2, version = $3
WHERE id = $1 AND version = $3 - 1
RETURNING ` + columns

// Update replaces the stored transaction's state.
//
// Only the state is mutable. When no row matches, the stored row is inspected
// to tell a missing transaction from a stale version.
func (r *RepoPGS) Update(ctx context.Context, t domain.Transaction) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, updateQuery, uuid.UUID(t.ID), string(t.State), t.Version.Value())

	res, err := scanTransaction(row)
	if err == nil {
		return res, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		l.Error().Err(err).Msgf("Update(ctx context.Context, %+v)", t)
		return res, errorspkg.ErrInternal
	}

	_, ok, err := r.Find(ctx, t.ID)
	if err != nil {
		return domain.Transaction{}, err
	}

	if !ok {
		return domain.Transaction{}, domain.ErrTransactionNotFound
	}

	return domain.Transaction{}, domain.ErrConcurrentModification
}
