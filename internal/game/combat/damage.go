package combat

import (
	"fmt"

	"github.com/udisondev/dmgcalc/internal/data"
	"github.com/udisondev/dmgcalc/internal/model"
)

// RollCount is the number of discrete random multipliers.
const RollCount = 16

// Random multipliers run from 85/100 to 100/100 in steps of 1/100.
const (
	minRollPercent = 85
	rollPercentDen = 100
)

// CriticalMultiplier is applied in step 1 when the hit is critical.
var CriticalMultiplier = model.ModOneAndHalf

// STABMultiplier is the same-type attack bonus without ability overrides.
var STABMultiplier = model.ModOneAndHalf

// DamageRollSet holds one damage value per random multiplier, lowest first.
type DamageRollSet [RollCount]int

// Min returns the lowest roll.
func (r DamageRollSet) Min() int { return r[0] }

// Max returns the highest roll.
func (r DamageRollSet) Max() int { return r[RollCount-1] }

// Sum returns the sum of all rolls.
func (r DamageRollSet) Sum() int {
	total := 0
	for _, v := range r {
		total += v
	}
	return total
}

// IsZero reports whether every roll is 0.
func (r DamageRollSet) IsZero() bool {
	return r.Max() == 0
}

// RollMultiplier returns the random multiplier of roll index i (0..15).
func RollMultiplier(i int) model.Modifier {
	return model.NewModifier(minRollPercent+i, rollPercentDen)
}

// Conditions is the battle-condition bundle shared by both directions.
// Weather and terrain effects arrive pre-resolved as multipliers keyed by
// move type; Modifier covers anything else already resolved by the caller.
type Conditions struct {
	Critical      bool                          `json:"critical" yaml:"critical"`
	TypeModifiers map[model.Type]model.Modifier `json:"typeModifiers,omitempty" yaml:"type_modifiers"`
	Modifier      model.Modifier                `json:"modifier" yaml:"modifier"`
}

// Breakdown is the audit trail of one damage calculation.
type Breakdown struct {
	AttackStat         int               `json:"attackStat"`
	DefenseStat        int               `json:"defenseStat"`
	Power              int               `json:"power"`
	BaseDamage         int               `json:"baseDamage"`
	OtherModifiers     model.Modifier    `json:"otherModifiers"`
	CriticalMultiplier model.Modifier    `json:"criticalMultiplier"`
	STAB               model.Modifier    `json:"stab"`
	TypeMultiplier     model.Modifier    `json:"typeMultiplier"`
	Step1OtherCritical int               `json:"step1OtherCritical"`
	Step2Random        DamageRollSet     `json:"step2Random"`
	Step3Stab          DamageRollSet     `json:"step3Stab"`
	Step4Type          DamageRollSet     `json:"step4Type"`
	Applied            []AppliedModifier `json:"applied,omitempty"`
	NoDamage           bool              `json:"noDamage"`
}

// SingleMoveResult is the outcome of one move against one defender.
type SingleMoveResult struct {
	Move       model.Move    `json:"move"`
	Rolls      DamageRollSet `json:"rolls"`
	MinPercent float64       `json:"minPercent"`
	AvgPercent float64       `json:"avgPercent"`
	MaxPercent float64       `json:"maxPercent"`
	OHKO       float64       `json:"ohko"`
	TwoHKO     float64       `json:"twoHko"`
	HitsToKO   HitsToKO      `json:"hitsToKo"`
	Breakdown  Breakdown     `json:"breakdown"`
}

// BaseDamage is step 0 of the formula:
//
//	floor(floor(floor(2*Level/5 + 2) * Power * Atk / Def) / 50) + 2
func BaseDamage(level, power, attack, defense int) (int, error) {
	if attack <= 0 || defense <= 0 {
		return 0, &model.DomainError{Op: "base damage", Reason: fmt.Sprintf("non-positive stat (atk=%d, def=%d)", attack, defense)}
	}
	levelFactor := 2*level/5 + 2
	return levelFactor*power*attack/defense/50 + 2, nil
}

// CalcDamage runs the damage pipeline for one move and returns the result
// without knockout fields (see EstimateKO).
//
// Pipeline:
//   - ability/item effects on the attacking/defending stat and on power
//   - step 0: base damage
//   - step 1: floor(base * other * crit), min 1
//   - step 2: floor(d1 * r/100) for r = 85..100, min 1
//   - step 3: floor(d2 * stab), min 1
//   - step 4: floor(d3 * type), min 1; all 0 when immune
//
// A move with power 0 yields sixteen zeros.
func CalcDamage(attacker, defender Fighter, move model.Move, cond Conditions) (SingleMoveResult, error) {
	if err := move.Validate(); err != nil {
		return SingleMoveResult{}, err
	}
	chart, err := data.Effectiveness(move.Type, defender.Types...)
	if err != nil {
		return SingleMoveResult{}, fmt.Errorf("type effectiveness of %s: %w", move.DisplayName(), err)
	}

	res := SingleMoveResult{Move: move}
	bd := &res.Breakdown
	ctx := effectContext{attacker: attacker, defender: defender, move: move, chart: chart}
	effects := collectEffects(attacker, defender)

	atkStat, defStat := attacker.Stats.Attack, defender.Stats.Defense
	if move.Category == model.CategorySpecial {
		atkStat, defStat = attacker.Stats.SpAttack, defender.Stats.SpDefense
	}
	applyStage(effects, StageAttackStat, ctx, &bd.Applied, func(m model.Modifier) { atkStat = m.Apply(atkStat) })
	applyStage(effects, StageDefenseStat, ctx, &bd.Applied, func(m model.Modifier) { defStat = m.Apply(defStat) })

	power := move.Power
	applyStage(effects, StagePower, ctx, &bd.Applied, func(m model.Modifier) { power = m.Apply(power) })

	other := model.ModNeutral
	if !cond.Modifier.IsNeutral() {
		other = other.Mul(cond.Modifier)
		bd.Applied = append(bd.Applied, AppliedModifier{Source: "conditions", Name: "modifier", Stage: StageOther, Multiplier: cond.Modifier})
	}
	if m, ok := cond.TypeModifiers[move.Type]; ok && !m.IsNeutral() {
		other = other.Mul(m)
		bd.Applied = append(bd.Applied, AppliedModifier{Source: "conditions", Name: move.Type.String() + " field", Stage: StageOther, Multiplier: m})
	}
	applyStage(effects, StageOther, ctx, &bd.Applied, func(m model.Modifier) { other = other.Mul(m) })

	crit := model.ModNeutral
	if cond.Critical {
		crit = CriticalMultiplier
	}

	stab := model.ModNeutral
	if attacker.HasType(move.Type) {
		stab = STABMultiplier
		applyStage(effects, StageSTAB, ctx, &bd.Applied, func(m model.Modifier) { stab = m })
	}

	typeMult := chart
	applyStage(effects, StageType, ctx, &bd.Applied, func(m model.Modifier) { typeMult = m })

	bd.AttackStat = atkStat
	bd.DefenseStat = defStat
	bd.Power = power
	bd.OtherModifiers = other
	bd.CriticalMultiplier = crit
	bd.STAB = stab
	bd.TypeMultiplier = typeMult

	if move.Power == 0 {
		bd.NoDamage = true
		return res, nil
	}

	base, err := BaseDamage(attacker.Level, power, atkStat, defStat)
	if err != nil {
		return SingleMoveResult{}, fmt.Errorf("%s: %w", move.DisplayName(), err)
	}
	bd.BaseDamage = base

	d1 := atLeastOne(other.Mul(crit).Apply(base))
	bd.Step1OtherCritical = d1

	for i := 0; i < RollCount; i++ {
		d2 := atLeastOne(RollMultiplier(i).Apply(d1))
		d3 := atLeastOne(stab.Apply(d2))
		d4 := 0
		if !typeMult.IsZero() {
			d4 = atLeastOne(typeMult.Apply(d3))
		}
		bd.Step2Random[i] = d2
		bd.Step3Stab[i] = d3
		bd.Step4Type[i] = d4
	}
	res.Rolls = bd.Step4Type
	bd.NoDamage = res.Rolls.IsZero()
	return res, nil
}

// CalcMove computes the damage distribution of move and fills in the
// percentage and knockout fields against the defender's max HP.
func CalcMove(attacker, defender Fighter, move model.Move, cond Conditions) (SingleMoveResult, error) {
	res, err := CalcDamage(attacker, defender, move, cond)
	if err != nil {
		return SingleMoveResult{}, err
	}
	ko, err := EstimateKO(res.Rolls, defender.Stats.HP)
	if err != nil {
		return SingleMoveResult{}, fmt.Errorf("%s: %w", move.DisplayName(), err)
	}
	res.MinPercent = ko.MinPercent
	res.AvgPercent = ko.AvgPercent
	res.MaxPercent = ko.MaxPercent
	res.OHKO = ko.OHKO
	res.TwoHKO = ko.TwoHKO
	res.HitsToKO = ko.HitsToKO
	return res, nil
}

func atLeastOne(v int) int {
	if v < 1 {
		return 1
	}
	return v
}
