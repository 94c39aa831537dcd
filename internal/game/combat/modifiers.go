package combat

import (
	"github.com/udisondev/dmgcalc/internal/model"
)

// Stage is the point of the damage pipeline where an effect applies.
type Stage string

const (
	StageAttackStat  Stage = "attackStat"  // multiplies the attacking stat, floored
	StageDefenseStat Stage = "defenseStat" // multiplies the defending stat, floored
	StagePower       Stage = "power"       // multiplies move power, floored
	StageOther       Stage = "other"       // folded into otherModifiers (step 1)
	StageSTAB        Stage = "stab"        // replaces the STAB multiplier
	StageType        Stage = "type"        // replaces the type multiplier
)

// AppliedModifier records an effect that triggered for one move.
type AppliedModifier struct {
	Source     string         `json:"source"`
	Name       string         `json:"name"`
	Stage      Stage          `json:"stage"`
	Multiplier model.Modifier `json:"multiplier"`
}

type holder uint8

const (
	holderAttacker holder = iota
	holderDefender
)

// effectContext is what a conditional effect may look at.
type effectContext struct {
	attacker Fighter
	defender Fighter
	move     model.Move
	// chart is the raw type-chart multiplier before ability overrides.
	chart model.Modifier
}

type effect struct {
	name   string
	zhName string
	stage  Stage
	holder holder
	// trigger returns the multiplier and whether the effect applies.
	trigger func(ctx effectContext) (model.Modifier, bool)
}

var (
	mod6of5   = model.Modifier{Num: 6, Den: 5}
	mod13of10 = model.Modifier{Num: 13, Den: 10}
	mod3of4   = model.Modifier{Num: 3, Den: 4}
)

// TechnicianPowerLimit is the highest base power Technician boosts.
const TechnicianPowerLimit = 60

func always(m model.Modifier) func(effectContext) (model.Modifier, bool) {
	return func(effectContext) (model.Modifier, bool) { return m, true }
}

func whenCategory(c model.Category, m model.Modifier) func(effectContext) (model.Modifier, bool) {
	return func(ctx effectContext) (model.Modifier, bool) { return m, ctx.move.Category == c }
}

func whenMoveType(m model.Modifier, types ...model.Type) func(effectContext) (model.Modifier, bool) {
	return func(ctx effectContext) (model.Modifier, bool) {
		for _, t := range types {
			if ctx.move.Type == t {
				return m, true
			}
		}
		return m, false
	}
}

func whenSuperEffective(m model.Modifier) func(effectContext) (model.Modifier, bool) {
	return func(ctx effectContext) (model.Modifier, bool) {
		return m, ctx.chart.Cmp(model.ModNeutral) > 0
	}
}

var abilityEffects = []effect{
	{
		name: "Technician", zhName: "技术高手", stage: StageOther, holder: holderAttacker,
		trigger: func(ctx effectContext) (model.Modifier, bool) {
			return model.ModOneAndHalf, ctx.move.Power > 0 && ctx.move.Power <= TechnicianPowerLimit
		},
	},
	{
		name: "Adaptability", zhName: "适应力", stage: StageSTAB, holder: holderAttacker,
		trigger: func(ctx effectContext) (model.Modifier, bool) {
			return model.ModDouble, ctx.attacker.HasType(ctx.move.Type)
		},
	},
	{name: "Huge Power", zhName: "大力士", stage: StageAttackStat, holder: holderAttacker, trigger: whenCategory(model.CategoryPhysical, model.ModDouble)},
	{name: "Pure Power", zhName: "瑜伽之力", stage: StageAttackStat, holder: holderAttacker, trigger: whenCategory(model.CategoryPhysical, model.ModDouble)},
	{
		name: "Tinted Lens", zhName: "有色眼镜", stage: StageOther, holder: holderAttacker,
		trigger: func(ctx effectContext) (model.Modifier, bool) {
			return model.ModDouble, !ctx.chart.IsZero() && ctx.chart.Cmp(model.ModNeutral) < 0
		},
	},
	{name: "Thick Fat", zhName: "厚脂肪", stage: StageOther, holder: holderDefender, trigger: whenMoveType(model.ModHalf, model.TypeFire, model.TypeIce)},
	{name: "Filter", zhName: "过滤", stage: StageOther, holder: holderDefender, trigger: whenSuperEffective(mod3of4)},
	{name: "Solid Rock", zhName: "坚硬岩石", stage: StageOther, holder: holderDefender, trigger: whenSuperEffective(mod3of4)},
	{name: "Levitate", zhName: "飘浮", stage: StageType, holder: holderDefender, trigger: whenMoveType(model.ModImmune, model.TypeGround)},
}

var itemEffects = append([]effect{
	{name: "Choice Band", zhName: "讲究头带", stage: StageAttackStat, holder: holderAttacker, trigger: whenCategory(model.CategoryPhysical, model.ModOneAndHalf)},
	{name: "Choice Specs", zhName: "讲究眼镜", stage: StageAttackStat, holder: holderAttacker, trigger: whenCategory(model.CategorySpecial, model.ModOneAndHalf)},
	{name: "Life Orb", zhName: "生命宝珠", stage: StageOther, holder: holderAttacker, trigger: always(mod13of10)},
	{name: "Expert Belt", zhName: "达人带", stage: StageOther, holder: holderAttacker, trigger: whenSuperEffective(mod6of5)},
	{name: "Eviolite", zhName: "进化奇石", stage: StageDefenseStat, holder: holderDefender, trigger: always(model.ModOneAndHalf)},
	{name: "Assault Vest", zhName: "突击背心", stage: StageDefenseStat, holder: holderDefender, trigger: whenCategory(model.CategorySpecial, model.ModOneAndHalf)},
}, typeBoostItems()...)

// typeBoostItems are the ×1.2 power items, one per type.
func typeBoostItems() []effect {
	items := []struct {
		name, zh string
		t        model.Type
	}{
		{"Silk Scarf", "丝绸围巾", model.TypeNormal},
		{"Charcoal", "木炭", model.TypeFire},
		{"Mystic Water", "神秘水滴", model.TypeWater},
		{"Magnet", "磁铁", model.TypeElectric},
		{"Miracle Seed", "奇迹种子", model.TypeGrass},
		{"Never-Melt Ice", "不融冰", model.TypeIce},
		{"Black Belt", "黑带", model.TypeFighting},
		{"Poison Barb", "毒针", model.TypePoison},
		{"Soft Sand", "柔软沙子", model.TypeGround},
		{"Sharp Beak", "锐利鸟嘴", model.TypeFlying},
		{"Twisted Spoon", "弯曲的汤匙", model.TypePsychic},
		{"Silver Powder", "银粉", model.TypeBug},
		{"Hard Stone", "硬石头", model.TypeRock},
		{"Spell Tag", "诅咒之符", model.TypeGhost},
		{"Dragon Fang", "龙之牙", model.TypeDragon},
		{"Black Glasses", "黑色眼镜", model.TypeDark},
		{"Metal Coat", "金属膜", model.TypeSteel},
		{"Fairy Feather", "妖精之羽", model.TypeFairy},
	}
	out := make([]effect, 0, len(items))
	for _, it := range items {
		out = append(out, effect{
			name: it.name, zhName: it.zh, stage: StagePower, holder: holderAttacker,
			trigger: whenMoveType(mod6of5, it.t),
		})
	}
	return out
}

func indexEffects(effects []effect) map[string]effect {
	m := make(map[string]effect, len(effects)*2)
	for _, e := range effects {
		m[model.NormalizeName(e.name)] = e
		m[model.NormalizeName(e.zhName)] = e
	}
	return m
}

var (
	abilityIndex = indexEffects(abilityEffects)
	itemIndex    = indexEffects(itemEffects)
)

// KnownAbility reports whether name has a damage effect in the engine.
// Abilities without one are accepted and ignored.
func KnownAbility(name string) bool {
	_, ok := abilityIndex[model.NormalizeName(name)]
	return ok
}

// KnownItem reports whether name has a damage effect in the engine.
func KnownItem(name string) bool {
	_, ok := itemIndex[model.NormalizeName(name)]
	return ok
}

type boundEffect struct {
	effect
	source string
}

// collectEffects returns the ability and item effects held by the two sides,
// attacker first, in a fixed order.
func collectEffects(attacker, defender Fighter) []boundEffect {
	var out []boundEffect
	add := func(idx map[string]effect, name, kind string, h holder) {
		if name == "" {
			return
		}
		if e, ok := idx[model.NormalizeName(name)]; ok && e.holder == h {
			out = append(out, boundEffect{effect: e, source: kind})
		}
	}
	add(abilityIndex, attacker.Ability, "attacker ability", holderAttacker)
	add(itemIndex, attacker.Item, "attacker item", holderAttacker)
	add(abilityIndex, defender.Ability, "defender ability", holderDefender)
	add(itemIndex, defender.Item, "defender item", holderDefender)
	return out
}

// applyStage runs every triggered effect of one stage.
// Multiplying stages floor after each effect; replacing stages (STAB, type)
// take the last triggered value.
func applyStage(effects []boundEffect, stage Stage, ctx effectContext, applied *[]AppliedModifier, fn func(model.Modifier)) {
	for _, e := range effects {
		if e.stage != stage {
			continue
		}
		m, ok := e.trigger(ctx)
		if !ok {
			continue
		}
		fn(m)
		*applied = append(*applied, AppliedModifier{Source: e.source, Name: e.name, Stage: stage, Multiplier: m})
	}
}
