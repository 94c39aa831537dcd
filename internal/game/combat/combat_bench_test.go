package combat

import (
	"testing"

	"github.com/udisondev/dmgcalc/internal/model"
)

// BenchmarkCalcDamage benchmarks one move through the full pipeline
// including the ability/item registry lookup.
func BenchmarkCalcDamage(b *testing.B) {
	a := meowth()
	a.Ability = "Technician"
	a.Item = "Life Orb"
	attacker := mustFighter(b, a)
	defender := mustFighter(b, bulbasaur())

	b.ReportAllocs()
	for range b.N {
		_, _ = CalcDamage(attacker, defender, moveTackle, Conditions{})
	}
}

// BenchmarkTwoHKOCount benchmarks the two-pointer pair count (256 pairs).
func BenchmarkTwoHKOCount(b *testing.B) {
	rolls := DamageRollSet{54, 54, 56, 56, 56, 56, 60, 60, 60, 60, 60, 62, 62, 62, 62, 66}

	b.ReportAllocs()
	for range b.N {
		_ = TwoHKOCount(rolls, 117)
	}
}

// BenchmarkEvaluate benchmarks a full four-move exchange in both directions.
func BenchmarkEvaluate(b *testing.B) {
	movesA := []model.Move{moveTackle, moveWingAttack, moveGrowl, moveEarthquake}
	movesB := []model.Move{moveRazorLeaf, moveSludgeBomb, moveTackle, moveGrowl}
	a, d := pidgey(), bulbasaur()

	b.ReportAllocs()
	for range b.N {
		_, _ = Evaluate(a, movesA, d, movesB, Conditions{Critical: true})
	}
}
