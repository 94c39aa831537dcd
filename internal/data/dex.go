package data

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/dmgcalc/internal/model"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// Species is a species-level record: types and base stats.
type Species struct {
	ID      string        `json:"id" yaml:"id"`
	Name    string        `json:"name" yaml:"name"`
	Aliases []string      `json:"aliases,omitempty" yaml:"aliases"`
	Types   []model.Type  `json:"types" yaml:"types"`
	Base    model.StatSet `json:"baseStats" yaml:"base_stats"`
}

// MoveEntry is a move record with optional localized aliases.
type MoveEntry struct {
	model.Move `yaml:",inline"`
	Aliases    []string `json:"aliases,omitempty" yaml:"aliases"`
}

type speciesFile struct {
	Species []Species `yaml:"species"`
}

type movesFile struct {
	Moves []MoveEntry `yaml:"moves"`
}

// Dex is the in-memory static data set. It is read-only after construction
// and safe for concurrent use.
type Dex struct {
	species     map[string]Species
	speciesKeys map[string]string
	moves       map[string]model.Move
	moveKeys    map[string]string
}

// NewDex indexes species and moves by id, name and aliases.
// Later entries with the same id replace earlier ones, which is how data
// directories overlay the embedded defaults.
func NewDex(species []Species, moves []MoveEntry) (*Dex, error) {
	d := &Dex{
		species:     make(map[string]Species, len(species)),
		speciesKeys: make(map[string]string, len(species)*3),
		moves:       make(map[string]model.Move, len(moves)),
		moveKeys:    make(map[string]string, len(moves)*3),
	}
	for _, s := range species {
		if err := d.addSpecies(s); err != nil {
			return nil, err
		}
	}
	for _, m := range moves {
		if err := d.addMove(m); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (d *Dex) addSpecies(s Species) error {
	if s.ID == "" {
		return &model.ValidationError{Field: "species.id", Value: s.Name, Reason: "must not be empty"}
	}
	if err := model.ValidateTypes(s.Types); err != nil {
		return fmt.Errorf("species %s: %w", s.ID, err)
	}
	for st := model.Stat(0); st < model.StatCount; st++ {
		if s.Base.Get(st) <= 0 {
			return fmt.Errorf("species %s: %w", s.ID,
				&model.ValidationError{Field: "baseStats." + st.String(), Value: s.Base.Get(st), Reason: "must be positive"})
		}
	}
	id := model.NormalizeName(s.ID)
	d.species[id] = s
	for _, key := range append([]string{s.ID, s.Name}, s.Aliases...) {
		if key != "" {
			d.speciesKeys[model.NormalizeName(key)] = id
		}
	}
	return nil
}

func (d *Dex) addMove(m MoveEntry) error {
	if m.ID == "" {
		return &model.ValidationError{Field: "move.id", Value: m.Name, Reason: "must not be empty"}
	}
	if err := m.Move.Validate(); err != nil {
		return fmt.Errorf("move %s: %w", m.ID, err)
	}
	id := model.NormalizeName(m.ID)
	d.moves[id] = m.Move
	for _, key := range append([]string{m.ID, m.Name}, m.Aliases...) {
		if key != "" {
			d.moveKeys[model.NormalizeName(key)] = id
		}
	}
	return nil
}

// Species looks a species up by id, English name or alias.
func (d *Dex) Species(name string) (Species, error) {
	id, ok := d.speciesKeys[model.NormalizeName(name)]
	if !ok {
		return Species{}, fmt.Errorf("%w: %q", model.ErrUnknownSpecies, name)
	}
	return d.species[id], nil
}

// Move looks a move up by id, English name or alias.
func (d *Dex) Move(name string) (model.Move, error) {
	id, ok := d.moveKeys[model.NormalizeName(name)]
	if !ok {
		return model.Move{}, fmt.Errorf("%w: %q", model.ErrUnknownMove, name)
	}
	return d.moves[id], nil
}

// Moves resolves a list of move names, failing on the first unknown one.
func (d *Dex) Moves(names []string) ([]model.Move, error) {
	out := make([]model.Move, 0, len(names))
	for _, n := range names {
		m, err := d.Move(n)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// SpeciesList returns all species sorted by id.
func (d *Dex) SpeciesList() []Species {
	out := make([]Species, 0, len(d.species))
	for _, s := range d.species {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// MoveList returns all moves sorted by id.
func (d *Dex) MoveList() []model.Move {
	out := make([]model.Move, 0, len(d.moves))
	for _, m := range d.moves {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// LoadDefaultDex builds a Dex from the embedded species.yaml and moves.yaml.
func LoadDefaultDex() (*Dex, error) {
	return LoadDex("")
}

// LoadDex loads the embedded defaults and overlays species.yaml / moves.yaml
// from dir when dir is not empty. Missing overlay files are skipped.
func LoadDex(dir string) (*Dex, error) {
	var sf speciesFile
	var mf movesFile
	if err := decodeYAML(defaultsFS, "defaults/species.yaml", &sf); err != nil {
		return nil, err
	}
	if err := decodeYAML(defaultsFS, "defaults/moves.yaml", &mf); err != nil {
		return nil, err
	}

	if dir != "" {
		root := os.DirFS(dir)
		var extraSpecies speciesFile
		var extraMoves movesFile
		if err := decodeYAML(root, "species.yaml", &extraSpecies); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		if err := decodeYAML(root, "moves.yaml", &extraMoves); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		sf.Species = append(sf.Species, extraSpecies.Species...)
		mf.Moves = append(mf.Moves, extraMoves.Moves...)
	}

	dex, err := NewDex(sf.Species, mf.Moves)
	if err != nil {
		return nil, fmt.Errorf("building dex: %w", err)
	}
	slog.Info("loaded static data", "species", len(dex.species), "moves", len(dex.moves), "dir", dir)
	return dex, nil
}

func decodeYAML(fsys fs.FS, name string, out any) error {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("reading %s: %w", filepath.ToSlash(name), err)
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}
