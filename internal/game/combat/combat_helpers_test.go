package combat

import (
	"testing"

	"github.com/udisondev/dmgcalc/internal/model"
)

// testCombatant builds a level-50, IV 31, EV 0 combatant for tests.
func testCombatant(name string, nature string, base model.StatSet, types ...model.Type) model.Combatant {
	return model.Combatant{
		ID:     name,
		Name:   name,
		Types:  types,
		Base:   base,
		Level:  50,
		Nature: nature,
		IVs:    model.Uniform(31),
	}
}

func meowth() model.Combatant {
	return testCombatant("Meowth", "急躁",
		model.StatSet{HP: 40, Attack: 45, Defense: 35, SpAttack: 40, SpDefense: 40, Speed: 90},
		model.TypeNormal)
}

func bulbasaur() model.Combatant {
	return testCombatant("Bulbasaur", "Hardy",
		model.StatSet{HP: 45, Attack: 49, Defense: 49, SpAttack: 65, SpDefense: 65, Speed: 45},
		model.TypeGrass, model.TypePoison)
}

func pidgey() model.Combatant {
	return testCombatant("Pidgey", "Hardy",
		model.StatSet{HP: 40, Attack: 45, Defense: 40, SpAttack: 35, SpDefense: 35, Speed: 56},
		model.TypeNormal, model.TypeFlying)
}

func chikorita() model.Combatant {
	return testCombatant("Chikorita", "Hardy",
		model.StatSet{HP: 45, Attack: 49, Defense: 65, SpAttack: 49, SpDefense: 65, Speed: 45},
		model.TypeGrass)
}

func diglett() model.Combatant {
	return testCombatant("Diglett", "Hardy",
		model.StatSet{HP: 10, Attack: 55, Defense: 25, SpAttack: 35, SpDefense: 45, Speed: 95},
		model.TypeGround)
}

func charmander() model.Combatant {
	return testCombatant("Charmander", "Hardy",
		model.StatSet{HP: 39, Attack: 52, Defense: 43, SpAttack: 60, SpDefense: 50, Speed: 65},
		model.TypeFire)
}

func snorlax() model.Combatant {
	return testCombatant("Snorlax", "Hardy",
		model.StatSet{HP: 160, Attack: 110, Defense: 65, SpAttack: 65, SpDefense: 110, Speed: 30},
		model.TypeNormal)
}

var (
	moveTackle     = model.Move{ID: "tackle", Name: "Tackle", Power: 40, Type: model.TypeNormal, Category: model.CategoryPhysical, Accuracy: 100}
	moveWingAttack = model.Move{ID: "wing-attack", Name: "Wing Attack", Power: 60, Type: model.TypeFlying, Category: model.CategoryPhysical, Accuracy: 100}
	moveEarthquake = model.Move{ID: "earthquake", Name: "Earthquake", Power: 100, Type: model.TypeGround, Category: model.CategoryPhysical, Accuracy: 100}
	moveEmber      = model.Move{ID: "ember", Name: "Ember", Power: 40, Type: model.TypeFire, Category: model.CategorySpecial, Accuracy: 100}
	moveGrowl      = model.Move{ID: "growl", Name: "Growl", Power: 0, Type: model.TypeNormal, Category: model.CategorySpecial, Accuracy: 100}
	moveRazorLeaf  = model.Move{ID: "razor-leaf", Name: "Razor Leaf", Power: 55, Type: model.TypeGrass, Category: model.CategoryPhysical, Accuracy: 95}
	moveSludgeBomb = model.Move{ID: "sludge-bomb", Name: "Sludge Bomb", Power: 90, Type: model.TypePoison, Category: model.CategorySpecial, Accuracy: 100}
)

func mustFighter(t testing.TB, c model.Combatant) Fighter {
	t.Helper()
	f, err := NewFighter(c)
	if err != nil {
		t.Fatalf("NewFighter(%s): %v", c.Name, err)
	}
	return f
}

func assertSorted(t testing.TB, rolls DamageRollSet) {
	t.Helper()
	for i := 1; i < RollCount; i++ {
		if rolls[i] < rolls[i-1] {
			t.Fatalf("rolls not sorted at %d: %v", i, rolls)
		}
	}
}
