package combat

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/dmgcalc/internal/model"
)

func TestEvaluate_Bidirectional(t *testing.T) {
	a := meowth()
	a.Ability = "技术高手"
	b := bulbasaur()

	res, err := Evaluate(a, []model.Move{moveTackle, moveGrowl}, b, []model.Move{moveRazorLeaf, moveSludgeBomb, moveTackle}, Conditions{})
	require.NoError(t, err)

	assert.Equal(t, "Meowth", res.AName)
	assert.Equal(t, "Bulbasaur", res.BName)

	assert.Equal(t, "Meowth", res.AToB.AttackerName)
	assert.Equal(t, "Bulbasaur", res.AToB.DefenderName)
	require.Len(t, res.AToB.Moves, 2)
	assert.Equal(t, 40, res.AToB.Moves[0].Rolls.Max())
	assert.True(t, res.AToB.Moves[1].Breakdown.NoDamage, "growl is listed, not skipped")
	assert.Equal(t, 120, res.AToB.DefenderStats.HP)

	assert.Equal(t, "Bulbasaur", res.BToA.AttackerName)
	assert.Equal(t, "Meowth", res.BToA.DefenderName)
	require.Len(t, res.BToA.Moves, 3)
	for i, mv := range res.BToA.Moves {
		assert.Equal(t, []string{"razor-leaf", "sludge-bomb", "tackle"}[i], mv.Move.ID)
		assertSorted(t, mv.Rolls)
	}
	// the defender's ability never leaks into the reverse direction
	assert.True(t, res.BToA.Moves[2].Breakdown.OtherModifiers.IsNeutral())
}

func TestEvaluate_FreshDefenderPerMove(t *testing.T) {
	a, b := pidgey(), chikorita()
	once, err := Evaluate(a, []model.Move{moveWingAttack}, b, nil, Conditions{})
	require.NoError(t, err)

	repeated, err := Evaluate(a, []model.Move{moveWingAttack, moveWingAttack, moveWingAttack}, b, nil, Conditions{})
	require.NoError(t, err)

	for _, mv := range repeated.AToB.Moves {
		assert.Equal(t, once.AToB.Moves[0], mv)
	}
	assert.Empty(t, repeated.BToA.Moves)
}

func TestEvaluate_ValidationErrorsNameTheSide(t *testing.T) {
	bad := bulbasaur()
	bad.EVs = model.StatSet{HP: 252, Defense: 252, SpDefense: 252}

	_, err := Evaluate(meowth(), []model.Move{moveTackle}, bad, nil, Conditions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pokemon B")

	var ve *model.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "evs", ve.Field)
}

func TestEvaluate_JSONShape(t *testing.T) {
	res, err := Evaluate(diglett(), []model.Move{moveEarthquake}, pidgey(), []model.Move{moveWingAttack}, Conditions{})
	require.NoError(t, err)

	b, err := json.Marshal(res)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	for _, key := range []string{"pokemonAToB", "pokemonBToA", "pokemonAName", "pokemonBName"} {
		assert.Contains(t, raw, key)
	}

	aToB := raw["pokemonAToB"].(map[string]any)
	moves := aToB["moves"].([]any)
	bd := moves[0].(map[string]any)["breakdown"].(map[string]any)
	for _, key := range []string{"step1OtherCritical", "step2Random", "step3Stab", "step4Type", "otherModifiers", "criticalMultiplier", "stab", "typeMultiplier"} {
		assert.Contains(t, bd, key)
	}
	assert.Equal(t, 0.0, bd["typeMultiplier"])
	assert.Len(t, bd["step4Type"], RollCount)
}
