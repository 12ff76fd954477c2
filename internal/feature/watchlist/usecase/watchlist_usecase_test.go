package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chart_backend/internal/feature/watchlist/domain/entity"
)

// mockWatchlistRepository is a mock implementation of the WatchlistRepository interface.
type mockWatchlistRepository struct {
	listFn   func(ctx context.Context) ([]entity.WatchlistItem, error)
	addFn    func(ctx context.Context, symbol string) error
	removeFn func(ctx context.Context, symbol string) error
}

func (m *mockWatchlistRepository) List(ctx context.Context) ([]entity.WatchlistItem, error) {
	return m.listFn(ctx)
}

func (m *mockWatchlistRepository) Add(ctx context.Context, symbol string) error {
	return m.addFn(ctx, symbol)
}

func (m *mockWatchlistRepository) Remove(ctx context.Context, symbol string) error {
	return m.removeFn(ctx, symbol)
}

func TestWatchlistUsecase_ListSymbols(t *testing.T) {
	t.Parallel()

	repo := &mockWatchlistRepository{
		listFn: func(ctx context.Context) ([]entity.WatchlistItem, error) {
			return []entity.WatchlistItem{{Symbol: "ABC"}, {Symbol: "DEF"}}, nil
		},
	}
	uc := NewWatchlistUsecase(repo)

	symbols, err := uc.ListSymbols(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"ABC", "DEF"}, symbols)
}

func TestWatchlistUsecase_AddSymbol_NormalizesInput(t *testing.T) {
	t.Parallel()

	var got string
	repo := &mockWatchlistRepository{
		addFn: func(ctx context.Context, symbol string) error {
			got = symbol
			return nil
		},
	}
	uc := NewWatchlistUsecase(repo)

	require.NoError(t, uc.AddSymbol(context.Background(), "  abc "))
	assert.Equal(t, "ABC", got)
}

func TestWatchlistUsecase_EmptySymbolRejected(t *testing.T) {
	t.Parallel()

	repo := &mockWatchlistRepository{
		addFn: func(ctx context.Context, symbol string) error {
			t.Fatal("repository must not be called for an empty symbol")
			return nil
		},
		removeFn: func(ctx context.Context, symbol string) error {
			t.Fatal("repository must not be called for an empty symbol")
			return nil
		},
	}
	uc := NewWatchlistUsecase(repo)

	assert.ErrorIs(t, uc.AddSymbol(context.Background(), "   "), ErrSymbolRequired)
	assert.ErrorIs(t, uc.RemoveSymbol(context.Background(), ""), ErrSymbolRequired)
}
