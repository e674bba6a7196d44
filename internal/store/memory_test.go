package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemUserStore_EmailNormalization(t *testing.T) {
	ctx := context.Background()
	users := NewMemUserStore()

	created, err := users.Create(ctx, "Alice", "  Alice@Example.COM ", "hash")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", created.Email)

	found, err := users.GetByEmail(ctx, "ALICE@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	// Same address with different casing is still a duplicate
	_, err = users.Create(ctx, "Other", "alice@EXAMPLE.com", "hash2")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.Equal(t, 1, users.Count())
}

func TestMemUserStore_NotFound(t *testing.T) {
	ctx := context.Background()
	users := NewMemUserStore()

	_, err := users.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = users.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemWorkoutStore_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	workouts := NewMemWorkoutStore()
	owner := uuid.New()
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, name := range []string{"Squat", "Bench Press", "Deadlift"} {
		_, err := workouts.Create(ctx, owner, date, name, i+1, 10, 60)
		require.NoError(t, err)
	}

	listed, err := workouts.ListByAuthor(ctx, owner)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "Squat", listed[0].Workout)
	assert.Equal(t, "Bench Press", listed[1].Workout)
	assert.Equal(t, "Deadlift", listed[2].Workout)

	other, err := workouts.ListByAuthor(ctx, uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, other)
	assert.Empty(t, other)
}
