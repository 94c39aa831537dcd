package combat

import (
	"fmt"

	"github.com/udisondev/dmgcalc/internal/data"
	"github.com/udisondev/dmgcalc/internal/model"
)

// Fighter is a combatant together with its resolved battle stats.
type Fighter struct {
	model.Combatant
	Stats model.StatSet
}

// NewFighter validates c and resolves its stats.
func NewFighter(c model.Combatant) (Fighter, error) {
	stats, err := ResolveStats(c)
	if err != nil {
		return Fighter{}, err
	}
	return Fighter{Combatant: c, Stats: stats}, nil
}

// ResolveStats derives battle-ready stats from base stats, IVs, EVs, level and nature.
//
//	HP:    floor((2*Base + IV + floor(EV/4)) * Level / 100) + Level + 10
//	other: floor((floor((2*Base + IV + floor(EV/4)) * Level / 100) + 5) * Nature)
//
// Every division floors and the order of the floors is significant.
func ResolveStats(c model.Combatant) (model.StatSet, error) {
	if err := c.Validate(); err != nil {
		return model.StatSet{}, err
	}
	nature, err := data.NatureModifiersFor(c.Nature)
	if err != nil {
		return model.StatSet{}, err
	}

	var out model.StatSet
	out.HP = CalcHP(c.Base.HP, c.IVs.HP, c.EVs.HP, c.Level)
	for st := model.StatAttack; st < model.StatCount; st++ {
		v := CalcStat(c.Base.Get(st), c.IVs.Get(st), c.EVs.Get(st), c.Level, nature.For(st))
		out = out.With(st, v)
	}

	for st := model.Stat(0); st < model.StatCount; st++ {
		if out.Get(st) <= 0 {
			return model.StatSet{}, &model.DomainError{Op: "resolve stats", Reason: fmt.Sprintf("%s resolved to %d", st, out.Get(st))}
		}
	}
	return out, nil
}

// CalcHP returns the HP stat. Inputs are assumed validated.
func CalcHP(base, iv, ev, level int) int {
	return (2*base+iv+ev/4)*level/100 + level + 10
}

// CalcStat returns a non-HP stat. Inputs are assumed validated.
func CalcStat(base, iv, ev, level int, nature model.Modifier) int {
	return nature.Apply((2*base+iv+ev/4)*level/100 + 5)
}
