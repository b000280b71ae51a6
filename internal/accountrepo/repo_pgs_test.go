//go:build integration

package accountrepo_test

import (
	"log"
	"os"
	"testing"

	"github.com/go-petr/pet-ledger/internal/accountrepo"
	"github.com/go-petr/pet-ledger/internal/integrationtest"
	"github.com/go-petr/pet-ledger/pkg/configpkg"
)

var (
	dbDriver string
	dbSource string
)

func TestMain(m *testing.M) {
	config, err := configpkg.Load("../../configs")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	dbDriver = config.DBDriver
	dbSource = config.DBSource

	os.Exit(m.Run())
}

func TestRepoPGS(t *testing.T) {
	testContract(t, func(t *testing.T) repo {
		db := integrationtest.SetupDB(t, dbDriver, dbSource)
		return accountrepo.NewRepoPGS(db)
	})
}
