package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/keiba-backtest/internal/models"
)

func TestParamsInt(t *testing.T) {
	p := Params{"a": 3, "b": int64(4), "c": 5.0, "d": "nope"}

	assert.Equal(t, 3, p.Int("a", 0))
	assert.Equal(t, 4, p.Int("b", 0))
	assert.Equal(t, 5, p.Int("c", 0))
	assert.Equal(t, 7, p.Int("d", 7))
	assert.Equal(t, 7, p.Int("missing", 7))
}

func TestParamsFloat(t *testing.T) {
	p := Params{"a": 1.5, "b": 2, "c": int64(3)}

	assert.Equal(t, 1.5, p.Float("a", 0))
	assert.Equal(t, 2.0, p.Float("b", 0))
	assert.Equal(t, 3.0, p.Float("c", 0))
	assert.Equal(t, 0.25, p.Float("missing", 0.25))
}

func TestNewResolvesRegisteredStrategies(t *testing.T) {
	for _, name := range Names() {
		strat, err := New(name, nil)
		require.NoError(t, err, "strategy %s", name)
		assert.Equal(t, name, strat.Name())
	}
	assert.Len(t, Names(), 12)
}

func TestNewUnknownStrategy(t *testing.T) {
	_, err := New("martingale", nil)
	assert.ErrorIs(t, err, models.ErrUnknownStrategy)
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	for i := 1; i < len(names); i++ {
		assert.Less(t, names[i-1], names[i])
	}
}
