package assign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		input string
		want  Strategy
	}{
		{"default", StrategyDefault},
		{"Reset", StrategyDefault},
		{"auto", StrategyAutoMatch},
		{" auto-match ", StrategyAutoMatch},
		{"automatch", StrategyAutoMatch},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStrategy(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseStrategy("by-material")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestApply(t *testing.T) {
	got, err := Apply(StrategyDefault, 5, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 1, 2}, got)

	got, err = Apply(StrategyAutoMatch, 5, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 1, 1}, got)

	_, err = Apply(Strategy(0), 5, 3)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestStrategy_String(t *testing.T) {
	assert.Equal(t, "StrategyDefault", StrategyDefault.String())
	assert.Equal(t, "StrategyAutoMatch", StrategyAutoMatch.String())
	assert.Equal(t, "Strategy(0)", Strategy(0).String())
	assert.Equal(t, "Strategy(7)", Strategy(7).String())
}
