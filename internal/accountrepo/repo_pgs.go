package accountrepo

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

// RepoPGS is the PostgreSQL account store.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns account RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(row scanner) (domain.Account, error) {
	var (
		id      uuid.UUID
		typ     string
		balance decimal.Decimal
		version int
		address sql.NullString
	)

	if err := row.Scan(&id, &typ, &balance, &version, &address); err != nil {
		return domain.Account{}, err
	}

	v, err := domain.NewVersion(version)
	if err != nil {
		return domain.Account{}, err
	}

	return domain.Account{
		ID:              domain.AccountID(id),
		Type:            domain.AccountType(typ),
		Balance:         domain.NewMoney(balance),
		Version:         v,
		ExternalAddress: domain.ExternalAddress(address.String),
	}, nil
}

func nullAddress(a domain.Account) sql.NullString {
	return sql.NullString{String: string(a.ExternalAddress), Valid: a.ExternalAddress != ""}
}

const addQuery = `
INSERT INTO
    accounts (id, type, balance, version, external_address)
VALUES
    ($1, $2, $3, 1, $4)
RETURNING id, type, balance, version, external_address
`

// Add stores a new account at the first version and returns it.
func (r *RepoPGS) Add(ctx context.Context, account domain.Account) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	if err := account.Validate(); err != nil {
		return domain.Account{}, err
	}

	row := r.db.QueryRowContext(ctx, addQuery,
		uuid.UUID(account.ID),
		string(account.Type),
		account.Balance.Decimal(),
		nullAddress(account),
	)

	a, err := scanAccount(row)
	if err != nil {
		l.Error().Err(err).Msgf("Add(ctx context.Context, %+v)", account)

		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Constraint {
			case "accounts_pkey":
				return a, domain.ErrAccountAlreadyExists
			case "accounts_external_address_key":
				return a, domain.ErrExternalAddressAlreadyExists
			}
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const getQuery = `
SELECT
	id, type, balance, version, external_address
FROM accounts
WHERE id = $1
`

// Find returns the account with the given id and whether it exists.
func (r *RepoPGS) Find(ctx context.Context, id domain.AccountID) (domain.Account, bool, error) {
	l := zerolog.Ctx(ctx)

	a, err := scanAccount(r.db.QueryRowContext(ctx, getQuery, uuid.UUID(id)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return a, false, nil
		}

		l.Error().Err(err).Send()

		return a, false, errorspkg.ErrInternal
	}

	return a, true, nil
}

// Get returns the account with the given id.
func (r *RepoPGS) Get(ctx context.Context, id domain.AccountID) (domain.Account, error) {
	a, ok, err := r.Find(ctx, id)
	if err != nil {
		return a, err
	}

	if !ok {
		return a, domain.ErrAccountNotFound
	}

	return a, nil
}

const findByAddressQuery = `
SELECT
	id, type, balance, version, external_address
FROM accounts
WHERE external_address = $1
`

// FindByExternalAddress returns the external account bound to the address and whether it exists.
func (r *RepoPGS) FindByExternalAddress(ctx context.Context, address domain.ExternalAddress) (domain.Account, bool, error) {
	l := zerolog.Ctx(ctx)

	a, err := scanAccount(r.db.QueryRowContext(ctx, findByAddressQuery, string(address)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return a, false, nil
		}

		l.Error().Err(err).Send()

		return a, false, errorspkg.ErrInternal
	}

	return a, true, nil
}

const updateQuery = `
UPDATE accounts
SET balance = $2, version = $3
WHERE id = $1
    AND version = $3 - 1
    AND type = $4
    AND external_address IS NOT DISTINCT FROM $5::text
RETURNING id, type, balance, version, external_address
`

// Update replaces the stored account.
//
// The compare-and-swap happens in a single statement. When no row matches,
// the stored row is inspected to tell a missing account from a stale version.
func (r *RepoPGS) Update(ctx context.Context, account domain.Account) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, updateQuery,
		uuid.UUID(account.ID),
		account.Balance.Decimal(),
		account.Version.Value(),
		string(account.Type),
		nullAddress(account),
	)

	a, err := scanAccount(row)
	if err == nil {
		return a, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		l.Error().Err(err).Msgf("Update(ctx context.Context, %+v)", account)
		return a, errorspkg.ErrInternal
	}

	current, ok, err := r.Find(ctx, account.ID)
	switch {
	case err != nil:
		return domain.Account{}, err
	case !ok:
		return domain.Account{}, domain.ErrAccountNotFound
	case current.Type != account.Type || current.ExternalAddress != account.ExternalAddress:
		return domain.Account{}, domain.ErrAddressMismatch
	}

	l.Debug().Str("account_id", account.ID.String()).
		Int("stored_version", current.Version.Value()).
		Int("given_version", account.Version.Value()).
		Msg("stale account version")

	return domain.Account{}, domain.ErrConcurrentModification
}
