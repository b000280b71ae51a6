// Package randompkg provides functionality for generating random ledger items in tests.
package randompkg

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-ledger/internal/domain"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Intn is a shortcut for generating a random integer between 0 and max using crypto/rand.
func Intn(max int) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

// IntBetween generates a random integer between min and max inclusive.
func IntBetween(min, max int) int64 {
	return int64(min) + Intn(max-min+1)
}

// String generates a random string of length n.
func String(n int) string {
	var sb strings.Builder

	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[Intn(k)]

		_ = sb.WriteByte(c) // The returned err is always nil.
	}

	return sb.String()
}

// MoneyBetween generates a random amount between min and max with two decimal places.
func MoneyBetween(min, max int) domain.Money {
	cents := IntBetween(min*100, max*100)
	return domain.NewMoney(decimal.New(cents, -2))
}

// ExternalAddress generates a random external address.
func ExternalAddress() domain.ExternalAddress {
	return domain.ExternalAddress(String(12))
}

// InternalAccount generates an internal account with a random balance between 1000 and 10000.
func InternalAccount() domain.Account {
	return domain.NewInternalAccount(MoneyBetween(1_000, 10_000))
}
