package data

import (
	"github.com/udisondev/dmgcalc/internal/model"
)

// Single-type effectiveness is stored in halves: 0 = immune, 1 = ×0.5,
// 2 = neutral, 4 = ×2. A dual-type product therefore has denominator 4.
const (
	effImmune  = 0
	effResist  = 1
	effNeutral = 2
	effSuper   = 4
)

// typeChart[attack][defend]. Built once from the non-neutral entries below.
var typeChart = buildTypeChart()

func buildTypeChart() [model.TypeCount][model.TypeCount]uint8 {
	var chart [model.TypeCount][model.TypeCount]uint8
	for a := range chart {
		for d := range chart[a] {
			chart[a][d] = effNeutral
		}
	}

	type row = map[model.Type]uint8
	set := func(attack model.Type, r row) {
		for def, v := range r {
			chart[attack][def] = v
		}
	}

	set(model.TypeNormal, row{model.TypeRock: effResist, model.TypeGhost: effImmune, model.TypeSteel: effResist})
	set(model.TypeFire, row{
		model.TypeFire: effResist, model.TypeWater: effResist, model.TypeGrass: effSuper, model.TypeIce: effSuper,
		model.TypeBug: effSuper, model.TypeRock: effResist, model.TypeDragon: effResist, model.TypeSteel: effSuper,
	})
	set(model.TypeWater, row{
		model.TypeFire: effSuper, model.TypeWater: effResist, model.TypeGrass: effResist, model.TypeGround: effSuper,
		model.TypeRock: effSuper, model.TypeDragon: effResist,
	})
	set(model.TypeElectric, row{
		model.TypeWater: effSuper, model.TypeElectric: effResist, model.TypeGrass: effResist, model.TypeGround: effImmune,
		model.TypeFlying: effSuper, model.TypeDragon: effResist,
	})
	set(model.TypeGrass, row{
		model.TypeFire: effResist, model.TypeWater: effSuper, model.TypeGrass: effResist, model.TypePoison: effResist,
		model.TypeGround: effSuper, model.TypeFlying: effResist, model.TypeBug: effResist, model.TypeRock: effSuper,
		model.TypeDragon: effResist, model.TypeSteel: effResist,
	})
	set(model.TypeIce, row{
		model.TypeFire: effResist, model.TypeWater: effResist, model.TypeGrass: effSuper, model.TypeIce: effResist,
		model.TypeGround: effSuper, model.TypeFlying: effSuper, model.TypeDragon: effSuper, model.TypeSteel: effResist,
	})
	set(model.TypeFighting, row{
		model.TypeNormal: effSuper, model.TypeIce: effSuper, model.TypePoison: effResist, model.TypeFlying: effResist,
		model.TypePsychic: effResist, model.TypeBug: effResist, model.TypeRock: effSuper, model.TypeGhost: effImmune,
		model.TypeDark: effSuper, model.TypeSteel: effSuper, model.TypeFairy: effResist,
	})
	set(model.TypePoison, row{
		model.TypeGrass: effSuper, model.TypePoison: effResist, model.TypeGround: effResist, model.TypeRock: effResist,
		model.TypeGhost: effResist, model.TypeSteel: effImmune, model.TypeFairy: effSuper,
	})
	set(model.TypeGround, row{
		model.TypeFire: effSuper, model.TypeElectric: effSuper, model.TypeGrass: effResist, model.TypePoison: effSuper,
		model.TypeFlying: effImmune, model.TypeBug: effResist, model.TypeRock: effSuper, model.TypeSteel: effSuper,
	})
	set(model.TypeFlying, row{
		model.TypeElectric: effResist, model.TypeGrass: effSuper, model.TypeFighting: effSuper, model.TypeBug: effSuper,
		model.TypeRock: effResist, model.TypeSteel: effResist,
	})
	set(model.TypePsychic, row{
		model.TypeFighting: effSuper, model.TypePoison: effSuper, model.TypePsychic: effResist, model.TypeDark: effImmune,
		model.TypeSteel: effResist,
	})
	set(model.TypeBug, row{
		model.TypeFire: effResist, model.TypeGrass: effSuper, model.TypeFighting: effResist, model.TypePoison: effResist,
		model.TypeFlying: effResist, model.TypePsychic: effSuper, model.TypeGhost: effResist, model.TypeDark: effSuper,
		model.TypeSteel: effResist, model.TypeFairy: effResist,
	})
	set(model.TypeRock, row{
		model.TypeFire: effSuper, model.TypeIce: effSuper, model.TypeFighting: effResist, model.TypeGround: effResist,
		model.TypeFlying: effSuper, model.TypeBug: effSuper, model.TypeSteel: effResist,
	})
	set(model.TypeGhost, row{
		model.TypeNormal: effImmune, model.TypePsychic: effSuper, model.TypeGhost: effSuper, model.TypeDark: effResist,
	})
	set(model.TypeDragon, row{model.TypeDragon: effSuper, model.TypeSteel: effResist, model.TypeFairy: effImmune})
	set(model.TypeDark, row{
		model.TypeFighting: effResist, model.TypePsychic: effSuper, model.TypeGhost: effSuper, model.TypeDark: effResist,
		model.TypeFairy: effResist,
	})
	set(model.TypeSteel, row{
		model.TypeFire: effResist, model.TypeWater: effResist, model.TypeElectric: effResist, model.TypeIce: effSuper,
		model.TypeRock: effSuper, model.TypeSteel: effResist, model.TypeFairy: effSuper,
	})
	set(model.TypeFairy, row{
		model.TypeFire: effResist, model.TypeFighting: effSuper, model.TypePoison: effResist, model.TypeDragon: effSuper,
		model.TypeDark: effSuper, model.TypeSteel: effResist,
	})

	return chart
}

// SingleEffectiveness returns the chart multiplier of attack against one
// defending type: 0, 1/2, 1 or 2.
func SingleEffectiveness(attack, defend model.Type) (model.Modifier, error) {
	if !attack.Valid() {
		return model.Modifier{}, &model.UnknownTypeError{Name: attack.String()}
	}
	if !defend.Valid() {
		return model.Modifier{}, &model.UnknownTypeError{Name: defend.String()}
	}
	return model.NewModifier(int(typeChart[attack][defend]), effNeutral), nil
}

// Effectiveness multiplies the chart entries of attack against each
// defending type. Result is one of 0, 1/4, 1/2, 1, 2, 4.
func Effectiveness(attack model.Type, defenders ...model.Type) (model.Modifier, error) {
	if err := model.ValidateTypes(defenders); err != nil {
		return model.Modifier{}, err
	}
	if !attack.Valid() {
		return model.Modifier{}, &model.UnknownTypeError{Name: attack.String()}
	}
	num, den := 1, 1
	for _, d := range defenders {
		num *= int(typeChart[attack][d])
		den *= effNeutral
	}
	return model.NewModifier(num, den), nil
}

// EffectivenessByName parses English or Chinese type names and resolves
// their effectiveness. Unknown names fail with *model.UnknownTypeError.
func EffectivenessByName(attack string, defenders ...string) (model.Modifier, error) {
	at, err := model.ParseType(attack)
	if err != nil {
		return model.Modifier{}, err
	}
	defs := make([]model.Type, 0, len(defenders))
	for _, name := range defenders {
		dt, err := model.ParseType(name)
		if err != nil {
			return model.Modifier{}, err
		}
		defs = append(defs, dt)
	}
	return Effectiveness(at, defs...)
}
