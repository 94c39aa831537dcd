package model

// Stat identifies one of the six battle stats.
type Stat uint8

const (
	StatHP Stat = iota
	StatAttack
	StatDefense
	StatSpAttack
	StatSpDefense
	StatSpeed

	StatCount = 6
)

var statNames = [StatCount]string{"hp", "attack", "defense", "spAttack", "spDefense", "speed"}

func (s Stat) String() string {
	if s >= StatCount {
		return "unknown"
	}
	return statNames[s]
}

// StatSet holds one integer per stat. It is used for base stats, IVs, EVs
// and resolved battle stats alike.
type StatSet struct {
	HP        int `json:"hp" yaml:"hp"`
	Attack    int `json:"attack" yaml:"attack"`
	Defense   int `json:"defense" yaml:"defense"`
	SpAttack  int `json:"spAttack" yaml:"sp_attack"`
	SpDefense int `json:"spDefense" yaml:"sp_defense"`
	Speed     int `json:"speed" yaml:"speed"`
}

// Uniform returns a StatSet with every stat set to v.
func Uniform(v int) StatSet {
	return StatSet{HP: v, Attack: v, Defense: v, SpAttack: v, SpDefense: v, Speed: v}
}

// Get returns the value of stat s.
func (s StatSet) Get(st Stat) int {
	switch st {
	case StatHP:
		return s.HP
	case StatAttack:
		return s.Attack
	case StatDefense:
		return s.Defense
	case StatSpAttack:
		return s.SpAttack
	case StatSpDefense:
		return s.SpDefense
	case StatSpeed:
		return s.Speed
	}
	return 0
}

// With returns a copy of s with stat st set to v.
func (s StatSet) With(st Stat, v int) StatSet {
	switch st {
	case StatHP:
		s.HP = v
	case StatAttack:
		s.Attack = v
	case StatDefense:
		s.Defense = v
	case StatSpAttack:
		s.SpAttack = v
	case StatSpDefense:
		s.SpDefense = v
	case StatSpeed:
		s.Speed = v
	}
	return s
}

// Sum returns the total over all six stats.
func (s StatSet) Sum() int {
	return s.HP + s.Attack + s.Defense + s.SpAttack + s.SpDefense + s.Speed
}

// Slice returns the stats in HP, Atk, Def, SpA, SpD, Spe order.
func (s StatSet) Slice() []int {
	return []int{s.HP, s.Attack, s.Defense, s.SpAttack, s.SpDefense, s.Speed}
}

// StatSetFromSlice is the inverse of Slice. Missing trailing values are zero.
func StatSetFromSlice(v []int) StatSet {
	var s StatSet
	for i := 0; i < len(v) && i < StatCount; i++ {
		s = s.With(Stat(i), v[i])
	}
	return s
}
