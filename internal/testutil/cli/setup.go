package cli

import (
	"database/sql"
	"testing"
	"time"

	"github.com/thenoetrevino/leadboard/internal/app"
	"github.com/thenoetrevino/leadboard/internal/config"
	"github.com/thenoetrevino/leadboard/internal/models"
	"github.com/thenoetrevino/leadboard/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance.
// The mock API runs without latency and never fails unless failureRate is set.
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T, failureRate ...float64) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	cfg := config.Default()
	zero := time.Duration(0)
	cfg.MockAPI.Latency = &zero
	if len(failureRate) > 0 {
		cfg.MockAPI.FailureRate = failureRate[0]
	}

	return db, app.New(db, app.WithConfig(cfg))
}

// CreateTestLead wraps testutil.CreateTestLead for CLI tests
func CreateTestLead(t *testing.T, db *sql.DB, id, name string, status models.Status) {
	t.Helper()
	testutil.CreateTestLead(t, db, id, name, status)
}
