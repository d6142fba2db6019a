package usagestore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStoreTopQuestionsOrdering(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, store.IncrementAsk(ctx, "what are your hours", "What are your hours?"))
	}
	require.NoError(t, store.IncrementAsk(ctx, "where are you located", "Where are you located?"))

	items, err := store.TopQuestions(ctx, 10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "What are your hours?", items[0].Question)
	require.EqualValues(t, 3, items[0].Count)
}

func TestMemoryStoreLimitAndEmptyCanonical(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.IncrementAsk(ctx, "", "ignored"))
	require.NoError(t, store.IncrementAsk(ctx, "a", "A"))
	require.NoError(t, store.IncrementAsk(ctx, "b", "B"))

	items, err := store.TopQuestions(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
}
