package model

import "encoding/json"

// Type is one of the 18 elemental types.
type Type uint8

const (
	TypeNormal Type = iota
	TypeFire
	TypeWater
	TypeElectric
	TypeGrass
	TypeIce
	TypeFighting
	TypePoison
	TypeGround
	TypeFlying
	TypePsychic
	TypeBug
	TypeRock
	TypeGhost
	TypeDragon
	TypeDark
	TypeSteel
	TypeFairy

	TypeCount = 18
)

var typeNames = [TypeCount]string{
	"Normal", "Fire", "Water", "Electric", "Grass", "Ice",
	"Fighting", "Poison", "Ground", "Flying", "Psychic", "Bug",
	"Rock", "Ghost", "Dragon", "Dark", "Steel", "Fairy",
}

var typeNamesZh = [TypeCount]string{
	"一般", "火", "水", "电", "草", "冰",
	"格斗", "毒", "地面", "飞行", "超能力", "虫",
	"岩石", "幽灵", "龙", "恶", "钢", "妖精",
}

// typeIndex maps normalized English and Chinese names to types.
var typeIndex = func() map[string]Type {
	m := make(map[string]Type, TypeCount*2)
	for i := 0; i < TypeCount; i++ {
		m[NormalizeName(typeNames[i])] = Type(i)
		m[NormalizeName(typeNamesZh[i])] = Type(i)
	}
	return m
}()

// AllTypes returns the 18 types in chart order.
func AllTypes() []Type {
	out := make([]Type, TypeCount)
	for i := range out {
		out[i] = Type(i)
	}
	return out
}

// ParseType resolves an English or Chinese type name.
func ParseType(name string) (Type, error) {
	if t, ok := typeIndex[NormalizeName(name)]; ok {
		return t, nil
	}
	return 0, &UnknownTypeError{Name: name}
}

// Valid reports whether t is one of the 18 types.
func (t Type) Valid() bool {
	return t < TypeCount
}

func (t Type) String() string {
	if !t.Valid() {
		return "Unknown"
	}
	return typeNames[t]
}

// ZhName returns the Chinese display name.
func (t Type) ZhName() string {
	if !t.Valid() {
		return ""
	}
	return typeNamesZh[t]
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(b []byte) error {
	parsed, err := ParseType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Category is the damage class of a move.
type Category uint8

const (
	CategoryPhysical Category = iota
	CategorySpecial
)

// ParseCategory accepts "physical"/"special" and the Chinese 物理/特殊.
func ParseCategory(name string) (Category, error) {
	switch NormalizeName(name) {
	case "physical", "物理":
		return CategoryPhysical, nil
	case "special", "特殊":
		return CategorySpecial, nil
	}
	return 0, &ValidationError{Field: "category", Value: name, Reason: "must be physical or special"}
}

func (c Category) String() string {
	if c == CategorySpecial {
		return "special"
	}
	return "physical"
}

func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Category) UnmarshalText(b []byte) error {
	parsed, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
