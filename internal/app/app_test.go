package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/leadboard/internal/config"
	"github.com/thenoetrevino/leadboard/internal/models"
	"github.com/thenoetrevino/leadboard/internal/notify"
	"github.com/thenoetrevino/leadboard/internal/reconcile"
	"github.com/thenoetrevino/leadboard/internal/services/lead"
	"github.com/thenoetrevino/leadboard/internal/testutil"
)

func testConfig(failureRate float64) *config.Config {
	cfg := config.Default()
	zero := time.Duration(0)
	cfg.MockAPI.Latency = &zero
	cfg.MockAPI.FailureRate = failureRate
	return cfg
}

func TestNew(t *testing.T) {
	app := New(testutil.SetupTestDB(t))

	require.NotNil(t, app)
	assert.NotNil(t, app.LeadService)
	assert.NotNil(t, app.API)
	assert.NotNil(t, app.Notifications)
	assert.NotNil(t, app.Repo())
	assert.Equal(t, config.DefaultNotificationTTL, app.Notifications.TTL())
	assert.NoError(t, app.Close())
}

func TestNewBoard_LoadsThroughAPI(t *testing.T) {
	app := New(testutil.SetupTestDB(t), WithConfig(testConfig(0)))
	ctx := context.Background()

	l, err := app.LeadService.CreateLead(ctx, lead.CreateLeadRequest{Name: "Alice"})
	require.NoError(t, err)

	b := app.NewBoard()
	require.NoError(t, b.Load(ctx, app.API))
	assert.Equal(t, 1, b.Columns().Count(models.StatusNew))

	out, err := b.ChangeStatus(ctx, l.ID, models.StatusWon)
	require.NoError(t, err)
	assert.Equal(t, reconcile.OutcomeConfirmed, out.Kind)

	stored, err := app.LeadService.GetLead(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusWon, stored.Status)
}

func TestNewBoard_FailuresReachNotifications(t *testing.T) {
	app := New(testutil.SetupTestDB(t), WithConfig(testConfig(1)))
	ctx := context.Background()

	l, err := app.LeadService.CreateLead(ctx, lead.CreateLeadRequest{Name: "Alice"})
	require.NoError(t, err)

	b := app.NewBoard()
	require.NoError(t, b.Load(ctx, app.API))

	out, err := b.ChangeStatus(ctx, l.ID, models.StatusWon)
	require.NoError(t, err)
	assert.Equal(t, reconcile.OutcomeRolledBack, out.Kind)
	assert.Equal(t, 1, b.Columns().Count(models.StatusNew))

	all := app.Notifications.All()
	require.Len(t, all, 1)
	assert.Equal(t, notify.LevelError, all[0].Level)
}
