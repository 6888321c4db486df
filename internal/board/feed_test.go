package board

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/leadboard/internal/models"
)

type stubSource struct {
	leads []*models.Lead
	err   error
}

func (s stubSource) ListLeads(ctx context.Context) ([]*models.Lead, error) {
	return s.leads, s.err
}

func TestFeed_StartsLoading(t *testing.T) {
	f := NewFeed()
	assert.Equal(t, Loading, f.State())
	assert.False(t, f.Empty())
}

func TestFeed_EmptyIsDistinctFromFailed(t *testing.T) {
	store := NewStore()

	empty := NewFeed()
	require.NoError(t, empty.Load(context.Background(), stubSource{}, store.Replace))
	assert.Equal(t, Ready, empty.State())
	assert.True(t, empty.Empty())

	failed := NewFeed()
	err := failed.Load(context.Background(), stubSource{err: errors.New("boom")}, store.Replace)
	require.Error(t, err)
	assert.Equal(t, Failed, failed.State())
	assert.False(t, failed.Empty())
	assert.ErrorContains(t, failed.Err(), "boom")
}

func TestFeed_BadRecordFailsLoad(t *testing.T) {
	store := NewStore()
	f := NewFeed()

	err := f.Load(context.Background(), stubSource{leads: []*models.Lead{lead("x", "archived")}}, store.Replace)
	assert.True(t, models.IsUnknownStatus(err))
	assert.Equal(t, Failed, f.State())
	assert.Equal(t, "failed", f.State().String())
}

func TestFeed_ReadyWithLeads(t *testing.T) {
	store := NewStore()
	f := NewFeed()

	src := stubSource{leads: []*models.Lead{lead("a", models.StatusNew)}}
	require.NoError(t, f.Load(context.Background(), src, store.Replace))

	assert.Equal(t, Ready, f.State())
	assert.False(t, f.Empty())
	assert.Nil(t, f.Err())
	assert.Equal(t, 1, store.Len())
}

func TestFeed_SettleRecoversFromFailure(t *testing.T) {
	store := NewStore()
	f := NewFeed()

	require.Error(t, f.Settle(nil, errors.New("timeout"), store.Replace))
	assert.Equal(t, Failed, f.State())

	require.NoError(t, f.Settle([]*models.Lead{lead("a", models.StatusWon)}, nil, store.Replace))
	assert.Equal(t, Ready, f.State())
	assert.Nil(t, f.Err())
	assert.Equal(t, 1, store.Len())
}
