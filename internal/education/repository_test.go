package education

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestMemoryRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	e := &Education{Institution: "EFREI", Degree: "BSc", StartDate: date("2021-09-01"), Current: true}
	require.NoError(t, r.Create(ctx, e))
	require.False(t, e.ID.IsZero())

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Nil(t, list[0].EndDate)
	require.True(t, list[0].Current)

	require.NoError(t, r.Delete(ctx, e.ID.Hex()))
	require.ErrorIs(t, r.Delete(ctx, e.ID.Hex()), ErrNotFound)
}

func TestMemoryRepositoryOrdering(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()
	require.NoError(t, r.Create(ctx, &Education{Institution: "older", Degree: "d", StartDate: date("2018-09-01"), Order: 1}))
	require.NoError(t, r.Create(ctx, &Education{Institution: "newer", Degree: "d", StartDate: date("2022-09-01"), Order: 1}))
	require.NoError(t, r.Create(ctx, &Education{Institution: "first", Degree: "d", StartDate: date("2015-09-01"), Order: 0}))

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Equal(t, "first", list[0].Institution)
	// order tie broken by startDate descending
	require.Equal(t, "newer", list[1].Institution)
	require.Equal(t, "older", list[2].Institution)
}

func TestMemoryRepositoryPartialUpdate(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()
	e := &Education{Institution: "EFREI", Degree: "BSc", StartDate: date("2021-09-01"), Current: true}
	require.NoError(t, r.Create(ctx, e))

	end := date("2024-06-30")
	current := false
	got, err := r.Update(ctx, e.ID.Hex(), Patch{EndDate: &end, Current: &current})
	require.NoError(t, err)
	require.False(t, got.Current)
	require.NotNil(t, got.EndDate)
	require.Equal(t, end, *got.EndDate)
	require.Equal(t, "EFREI", got.Institution)
	require.Equal(t, "BSc", got.Degree)
}
