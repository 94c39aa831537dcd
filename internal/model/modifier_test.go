package model

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModifier_Apply(t *testing.T) {
	tests := []struct {
		name string
		mod  Modifier
		in   int
		want int
	}{
		{"neutral", ModNeutral, 27, 27},
		{"zero value is neutral", Modifier{}, 27, 27},
		{"one and a half floors", ModOneAndHalf, 23, 34},
		{"half floors", ModHalf, 45, 22},
		{"immune", ModImmune, 99, 0},
		{"nature up", Modifier{Num: 11, Den: 10}, 110, 121},
		{"nature down", Modifier{Num: 9, Den: 10}, 55, 49},
		{"random 85%", NewModifier(85, 100), 27, 22},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mod.Apply(tt.in))
		})
	}
}

func TestModifier_MulIsExact(t *testing.T) {
	// one floor over the combined product, not one per factor
	m := NewModifier(13, 10).Mul(ModOneAndHalf)
	assert.Equal(t, Modifier{Num: 39, Den: 20}, m)
	assert.Equal(t, 5, m.Apply(3))
	assert.Equal(t, 4, ModOneAndHalf.Apply(NewModifier(13, 10).Apply(3)))

	assert.Equal(t, ModNeutral, Modifier{}.Mul(Modifier{}))
	assert.True(t, ModHalf.Mul(ModDouble).IsNeutral())
	assert.True(t, ModImmune.Mul(ModDouble).IsZero())
}

func TestModifier_Predicates(t *testing.T) {
	assert.False(t, Modifier{}.IsZero())
	assert.True(t, Modifier{}.IsNeutral())
	assert.True(t, ModImmune.IsZero())
	assert.True(t, NewModifier(4, 4).IsNeutral())

	assert.Equal(t, -1, ModHalf.Cmp(ModNeutral))
	assert.Equal(t, 1, ModDouble.Cmp(ModOneAndHalf))
	assert.Equal(t, 0, NewModifier(2, 4).Cmp(ModHalf))
	assert.Equal(t, 0.25, NewModifier(1, 4).Float64())
}

func TestNewModifier_PanicsOnBadDenominator(t *testing.T) {
	assert.Panics(t, func() { NewModifier(1, 0) })
	assert.Panics(t, func() { NewModifier(1, -2) })
}

func TestModifierFromFloat(t *testing.T) {
	m, err := ModifierFromFloat(1.3)
	require.NoError(t, err)
	assert.Equal(t, Modifier{Num: 13, Den: 10}, m)

	m, err = ModifierFromFloat(0.75)
	require.NoError(t, err)
	assert.Equal(t, Modifier{Num: 3, Den: 4}, m)

	m, err = ModifierFromFloat(MaxModifier)
	require.NoError(t, err)
	assert.Equal(t, Modifier{Num: MaxModifier, Den: 1}, m)

	for _, v := range []float64{-0.5, 64.0001, 1e16, 1e300, math.Inf(1), math.Inf(-1), math.NaN()} {
		_, err := ModifierFromFloat(v)
		var ve *ValidationError
		require.True(t, errors.As(err, &ve), "value %v: got %v", v, err)
		assert.Equal(t, "modifier", ve.Field)
	}
}

func TestModifier_JSON(t *testing.T) {
	type wrapper struct {
		M Modifier `json:"m"`
	}

	b, err := json.Marshal(wrapper{M: ModOneAndHalf})
	require.NoError(t, err)
	assert.JSONEq(t, `{"m":1.5}`, string(b))

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"m":0.25}`), &w))
	assert.Equal(t, Modifier{Num: 1, Den: 4}, w.M)

	assert.Error(t, json.Unmarshal([]byte(`{"m":-1}`), &w))
	assert.Error(t, json.Unmarshal([]byte(`{"m":1e16}`), &w))
	assert.Error(t, w.M.UnmarshalText([]byte("NaN")))
	assert.Error(t, json.Unmarshal([]byte(`{"m":"x"}`), &w))
}
