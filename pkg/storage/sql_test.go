package storage

import (
	"context"
	"testing"

	"github.com/gridcal/gridcal/internal/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSQLStorage(t *testing.T) *SQLStorage {
	db := test_utils.SetupTestDB(t)
	return NewSQLStorage(db)
}

func TestSQLStorage_GetMissingKey(t *testing.T) {
	s := setupSQLStorage(t)

	value, found, err := s.Get(context.Background(), "gridcal.events")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestSQLStorage_SetAndGet(t *testing.T) {
	s := setupSQLStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "gridcal.events", `[{"id":"evt-1"}]`))

	value, found, err := s.Get(ctx, "gridcal.events")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"evt-1"}]`, value)
}

func TestSQLStorage_SetOverwrites(t *testing.T) {
	s := setupSQLStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "gridcal.events", "[]"))
	require.NoError(t, s.Set(ctx, "gridcal.events", `[{"id":"evt-2"}]`))

	value, found, err := s.Get(ctx, "gridcal.events")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"evt-2"}]`, value)
}

func TestSQLStorage_KeysAreIndependent(t *testing.T) {
	s := setupSQLStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "gridcal.events", "[]"))
	require.NoError(t, s.Set(ctx, "gridcal.other", "{}"))

	value, found, err := s.Get(ctx, "gridcal.other")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "{}", value)
}
