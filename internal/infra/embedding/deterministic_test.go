package embedding

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeterministicEmbedderIsDeterministic(t *testing.T) {
	e := NewDeterministicEmbedder(16)

	first, err := e.Embed(context.Background(), []string{"what are your hours?"})
	require.NoError(t, err)
	second, err := e.Embed(context.Background(), []string{"what are your hours?"})
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestDeterministicEmbedderDimensionality(t *testing.T) {
	e := NewDeterministicEmbedder(8)

	vectors, err := e.Embed(context.Background(), []string{"a", "b", "c"})
	require.NoError(t, err)
	require.Len(t, vectors, 3)
	for _, vec := range vectors {
		require.Len(t, vec, 8)
	}
}

func TestDeterministicEmbedderDistinctTexts(t *testing.T) {
	e := NewDeterministicEmbedder(16)

	vectors, err := e.Embed(context.Background(), []string{"alpha", "beta"})
	require.NoError(t, err)
	require.NotEqual(t, vectors[0], vectors[1])
}
