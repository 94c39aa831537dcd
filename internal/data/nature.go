package data

import (
	"github.com/udisondev/dmgcalc/internal/model"
)

// NatureModifiers holds the multiplier a nature applies to each non-HP stat.
type NatureModifiers struct {
	Attack    model.Modifier `json:"attack"`
	Defense   model.Modifier `json:"defense"`
	SpAttack  model.Modifier `json:"spAttack"`
	SpDefense model.Modifier `json:"spDefense"`
	Speed     model.Modifier `json:"speed"`
}

// For returns the multiplier for stat st. HP is never affected.
func (n NatureModifiers) For(st model.Stat) model.Modifier {
	switch st {
	case model.StatAttack:
		return n.Attack
	case model.StatDefense:
		return n.Defense
	case model.StatSpAttack:
		return n.SpAttack
	case model.StatSpDefense:
		return n.SpDefense
	case model.StatSpeed:
		return n.Speed
	}
	return model.ModNeutral
}

// Nature is one row of the nature table.
type Nature struct {
	Name      string          `json:"name"`
	ZhName    string          `json:"zhName"`
	Modifiers NatureModifiers `json:"modifiers"`
}

// NatureEffectView is the increase/decrease view of a nature shown to users.
// It is always derived from the per-stat multipliers.
type NatureEffectView struct {
	Name      string `json:"name"`
	ZhName    string `json:"zhName"`
	Neutral   bool   `json:"neutral"`
	Increased string `json:"increased,omitempty"`
	Decreased string `json:"decreased,omitempty"`
}

var (
	natUp   = model.Modifier{Num: 11, Den: 10}
	natDown = model.Modifier{Num: 9, Den: 10}
	natNone = model.ModNeutral
)

// Nature table: Atk, Def, SpA, SpD, Spe.
// Rows are grouped by the increased stat, columns by the decreased one;
// the diagonal is the five neutral natures.
var natureTable = []Nature{
	{"Hardy", "勤奋", mods(natNone, natNone, natNone, natNone, natNone)},
	{"Lonely", "怕寂寞", mods(natUp, natDown, natNone, natNone, natNone)},
	{"Adamant", "固执", mods(natUp, natNone, natDown, natNone, natNone)},
	{"Naughty", "顽皮", mods(natUp, natNone, natNone, natDown, natNone)},
	{"Brave", "勇敢", mods(natUp, natNone, natNone, natNone, natDown)},

	{"Bold", "大胆", mods(natDown, natUp, natNone, natNone, natNone)},
	{"Docile", "坦率", mods(natNone, natNone, natNone, natNone, natNone)},
	{"Impish", "淘气", mods(natNone, natUp, natDown, natNone, natNone)},
	{"Lax", "乐天", mods(natNone, natUp, natNone, natDown, natNone)},
	{"Relaxed", "悠闲", mods(natNone, natUp, natNone, natNone, natDown)},

	{"Modest", "内敛", mods(natDown, natNone, natUp, natNone, natNone)},
	{"Mild", "慢吞吞", mods(natNone, natDown, natUp, natNone, natNone)},
	{"Bashful", "害羞", mods(natNone, natNone, natNone, natNone, natNone)},
	{"Rash", "马虎", mods(natNone, natNone, natUp, natDown, natNone)},
	{"Quiet", "冷静", mods(natNone, natNone, natUp, natNone, natDown)},

	{"Calm", "温和", mods(natDown, natNone, natNone, natUp, natNone)},
	{"Gentle", "温顺", mods(natNone, natDown, natNone, natUp, natNone)},
	{"Careful", "慎重", mods(natNone, natNone, natDown, natUp, natNone)},
	{"Quirky", "浮躁", mods(natNone, natNone, natNone, natNone, natNone)},
	{"Sassy", "自大", mods(natNone, natNone, natNone, natUp, natDown)},

	{"Timid", "胆小", mods(natDown, natNone, natNone, natNone, natUp)},
	{"Hasty", "急躁", mods(natNone, natDown, natNone, natNone, natUp)},
	{"Jolly", "爽朗", mods(natNone, natNone, natDown, natNone, natUp)},
	{"Naive", "天真", mods(natNone, natNone, natNone, natDown, natUp)},
	{"Serious", "认真", mods(natNone, natNone, natNone, natNone, natNone)},
}

func mods(atk, def, spa, spd, spe model.Modifier) NatureModifiers {
	return NatureModifiers{Attack: atk, Defense: def, SpAttack: spa, SpDefense: spd, Speed: spe}
}

var natureIndex = func() map[string]int {
	m := make(map[string]int, len(natureTable)*2)
	for i, n := range natureTable {
		m[model.NormalizeName(n.Name)] = i
		m[model.NormalizeName(n.ZhName)] = i
	}
	return m
}()

// LookupNature returns the nature row for an English or Chinese name.
func LookupNature(name string) (Nature, error) {
	i, ok := natureIndex[model.NormalizeName(name)]
	if !ok {
		return Nature{}, &model.UnknownNatureError{Name: name}
	}
	return natureTable[i], nil
}

// NatureModifiersFor returns the per-stat multipliers of a nature.
func NatureModifiersFor(name string) (NatureModifiers, error) {
	n, err := LookupNature(name)
	if err != nil {
		return NatureModifiers{}, err
	}
	return n.Modifiers, nil
}

// NatureEffect derives the increased/decreased stat labels from the table.
func NatureEffect(name string) (NatureEffectView, error) {
	n, err := LookupNature(name)
	if err != nil {
		return NatureEffectView{}, err
	}
	return effectView(n), nil
}

// Natures returns the derived view of all 25 natures in table order.
func Natures() []NatureEffectView {
	out := make([]NatureEffectView, 0, len(natureTable))
	for _, n := range natureTable {
		out = append(out, effectView(n))
	}
	return out
}

func effectView(n Nature) NatureEffectView {
	v := NatureEffectView{Name: n.Name, ZhName: n.ZhName}
	for st := model.StatAttack; st < model.StatCount; st++ {
		switch n.Modifiers.For(st).Cmp(natNone) {
		case 1:
			v.Increased = st.String()
		case -1:
			v.Decreased = st.String()
		}
	}
	v.Neutral = v.Increased == "" && v.Decreased == ""
	return v
}
