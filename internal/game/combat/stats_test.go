package combat

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/dmgcalc/internal/model"
)

func TestResolveStats_Level50(t *testing.T) {
	tests := []struct {
		name string
		c    model.Combatant
		want model.StatSet
	}{
		{
			// Hasty: +Speed, -Defense
			name: "meowth hasty",
			c:    meowth(),
			want: model.StatSet{HP: 115, Attack: 65, Defense: 49, SpAttack: 60, SpDefense: 60, Speed: 121},
		},
		{
			name: "bulbasaur hardy",
			c:    bulbasaur(),
			want: model.StatSet{HP: 120, Attack: 69, Defense: 69, SpAttack: 85, SpDefense: 85, Speed: 65},
		},
		{
			name: "chikorita hardy",
			c:    chikorita(),
			want: model.StatSet{HP: 120, Attack: 69, Defense: 85, SpAttack: 69, SpDefense: 85, Speed: 65},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveStats(tt.c)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveStats_EVsAndLevel100(t *testing.T) {
	c := snorlax()
	c.Level = 100
	c.Nature = "Adamant" // +Atk -SpA
	c.EVs = model.StatSet{HP: 252, Attack: 252, SpDefense: 4}

	got, err := ResolveStats(c)
	require.NoError(t, err)

	// HP: (320+31+63)*100/100 + 110 = 524
	assert.Equal(t, 524, got.HP)
	// Atk: ((220+31+63)+5)*1.1 = 350.9 -> 350
	assert.Equal(t, 350, got.Attack)
	// SpA: ((130+31)+5)*0.9 = 149.4 -> 149
	assert.Equal(t, 149, got.SpAttack)
	// SpD: (220+31+1)+5 = 257
	assert.Equal(t, 257, got.SpDefense)
}

func TestCalcStat_FloorOrder(t *testing.T) {
	// (2*45+31+0)*50/100 = 60.5 must floor before +5, then nature floors again.
	assert.Equal(t, 71, CalcStat(45, 31, 0, 50, model.Modifier{Num: 11, Den: 10}))
	assert.Equal(t, 58, CalcStat(45, 31, 0, 50, model.Modifier{Num: 9, Den: 10}))
	assert.Equal(t, 65, CalcStat(45, 31, 0, 50, model.ModNeutral))
	assert.Equal(t, 115, CalcHP(40, 31, 0, 50))
}

func TestResolveStats_LevelMonotonic(t *testing.T) {
	natures := []string{"Hardy", "Hasty", "Adamant", "Modest", "Timid", "Brave"}
	for _, nature := range natures {
		t.Run(nature, func(t *testing.T) {
			c := meowth()
			c.Nature = nature
			c.EVs = model.StatSet{Attack: 252, Speed: 252, HP: 6}

			c.Level = 1
			prev, err := ResolveStats(c)
			require.NoError(t, err)

			for lvl := 2; lvl <= model.MaxLevel; lvl++ {
				c.Level = lvl
				cur, err := ResolveStats(c)
				require.NoError(t, err)
				for st := model.Stat(0); st < model.StatCount; st++ {
					assert.GreaterOrEqual(t, cur.Get(st), prev.Get(st), "level %d stat %s", lvl, st)
				}
				prev = cur
			}
		})
	}
}

func TestResolveStats_Validation(t *testing.T) {
	tests := []struct {
		name  string
		mod   func(c *model.Combatant)
		field string
	}{
		{"level zero", func(c *model.Combatant) { c.Level = 0 }, "level"},
		{"level 101", func(c *model.Combatant) { c.Level = 101 }, "level"},
		{"iv 32", func(c *model.Combatant) { c.IVs.Speed = 32 }, "ivs.speed"},
		{"iv negative", func(c *model.Combatant) { c.IVs.HP = -1 }, "ivs.hp"},
		{"ev 253", func(c *model.Combatant) { c.EVs.Attack = 253 }, "evs.attack"},
		{"ev negative", func(c *model.Combatant) { c.EVs.Defense = -4 }, "evs.defense"},
		{"ev total 511", func(c *model.Combatant) { c.EVs = model.StatSet{HP: 252, Attack: 252, Speed: 7} }, "evs"},
		{"no types", func(c *model.Combatant) { c.Types = nil }, "types"},
		{"three types", func(c *model.Combatant) {
			c.Types = []model.Type{model.TypeFire, model.TypeWater, model.TypeGrass}
		}, "types"},
		{"zero base", func(c *model.Combatant) { c.Base.SpDefense = 0 }, "baseStats.spDefense"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := meowth()
			tt.mod(&c)
			_, err := ResolveStats(c)
			require.Error(t, err)

			var ve *model.ValidationError
			require.True(t, errors.As(err, &ve), "want ValidationError, got %T", err)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestResolveStats_EVTotalAtLimit(t *testing.T) {
	c := meowth()
	c.EVs = model.StatSet{HP: 252, Attack: 252, Speed: 6}
	_, err := ResolveStats(c)
	assert.NoError(t, err)
}

func TestResolveStats_UnknownNature(t *testing.T) {
	c := meowth()
	c.Nature = "Grumpy"
	_, err := ResolveStats(c)

	var ne *model.UnknownNatureError
	require.True(t, errors.As(err, &ne))
	assert.Equal(t, "Grumpy", ne.Name)
}
