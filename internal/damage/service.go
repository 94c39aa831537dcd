// Package damage resolves matchup requests against static data and stored
// templates and runs them through the combat calculator.
package damage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/dmgcalc/internal/data"
	"github.com/udisondev/dmgcalc/internal/game/combat"
	"github.com/udisondev/dmgcalc/internal/model"
)

// TemplateStore loads saved combatant templates.
type TemplateStore interface {
	Get(ctx context.Context, id int64) (model.Template, error)
}

// ErrNoTemplateStore is returned for template references when no store is configured.
var ErrNoTemplateStore = errors.New("template storage is not configured")

// Config bounds batch evaluation.
type Config struct {
	BatchConcurrency int
	MaxBatchSize     int
}

// Service evaluates matchups. Safe for concurrent use.
type Service struct {
	dex       *data.Dex
	templates TemplateStore
	cfg       Config
}

// NewService creates a Service. templates may be nil.
func NewService(dex *data.Dex, templates TemplateStore, cfg Config) *Service {
	if cfg.BatchConcurrency < 1 {
		cfg.BatchConcurrency = 1
	}
	if cfg.MaxBatchSize < 1 {
		cfg.MaxBatchSize = 1
	}
	return &Service{dex: dex, templates: templates, cfg: cfg}
}

// Dex returns the static data the service resolves names against.
func (s *Service) Dex() *data.Dex {
	return s.dex
}

// Calculate resolves both sides of req and evaluates the exchange.
func (s *Service) Calculate(ctx context.Context, req Request) (combat.ExtendedDamageResult, error) {
	start := time.Now()

	a, movesA, err := s.resolve(ctx, req.A)
	if err != nil {
		return combat.ExtendedDamageResult{}, fmt.Errorf("pokemon A: %w", err)
	}
	b, movesB, err := s.resolve(ctx, req.B)
	if err != nil {
		return combat.ExtendedDamageResult{}, fmt.Errorf("pokemon B: %w", err)
	}

	res, err := combat.Evaluate(a, movesA, b, movesB, req.Conditions)
	if err != nil {
		return combat.ExtendedDamageResult{}, err
	}
	res.Warnings = append(ignoredEffects("pokemon A", a), ignoredEffects("pokemon B", b)...)

	slog.DebugContext(ctx, "matchup evaluated",
		"a", res.AName,
		"b", res.BName,
		"moves_a", len(movesA),
		"moves_b", len(movesB),
		"critical", req.Conditions.Critical,
		"elapsed", time.Since(start))
	return res, nil
}

// ignoredEffects reports the ability and item of c that the engine has no
// damage modifier for.
func ignoredEffects(side string, c model.Combatant) []string {
	var out []string
	if c.Ability != "" && !combat.KnownAbility(c.Ability) {
		out = append(out, fmt.Sprintf("%s: ability %q has no damage effect", side, c.Ability))
	}
	if c.Item != "" && !combat.KnownItem(c.Item) {
		out = append(out, fmt.Sprintf("%s: item %q has no damage effect", side, c.Item))
	}
	return out
}

// CalculateBatch evaluates independent matchups concurrently and returns the
// results in input order. The first failure cancels the rest.
func (s *Service) CalculateBatch(ctx context.Context, reqs []Request) ([]combat.ExtendedDamageResult, error) {
	if len(reqs) == 0 {
		return []combat.ExtendedDamageResult{}, nil
	}
	if len(reqs) > s.cfg.MaxBatchSize {
		return nil, &model.ValidationError{
			Field:  "requests",
			Value:  len(reqs),
			Reason: fmt.Sprintf("batch must not exceed %d matchups", s.cfg.MaxBatchSize),
		}
	}

	results := make([]combat.ExtendedDamageResult, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.BatchConcurrency)

	for i, req := range reqs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := s.Calculate(gctx, req)
			if err != nil {
				return fmt.Errorf("request %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "batch evaluated", "size", len(reqs))
	return results, nil
}

// resolve turns a CombatantSpec into a combatant and its move list.
func (s *Service) resolve(ctx context.Context, spec CombatantSpec) (model.Combatant, []model.Move, error) {
	c := model.Combatant{
		Level:  DefaultLevel,
		Nature: DefaultNature,
		IVs:    model.Uniform(model.MaxIV),
	}
	var moveNames []string

	switch {
	case spec.TemplateID != 0:
		if s.templates == nil {
			return model.Combatant{}, nil, ErrNoTemplateStore
		}
		tpl, err := s.templates.Get(ctx, spec.TemplateID)
		if err != nil {
			return model.Combatant{}, nil, err
		}
		if err := s.applySpecies(&c, tpl.Species); err != nil {
			return model.Combatant{}, nil, err
		}
		c.Name = tpl.Name
		c.Level = tpl.Level
		if tpl.Nature != "" {
			c.Nature = tpl.Nature
		}
		c.Ability = tpl.Ability
		c.Item = tpl.Item
		c.IVs = tpl.IVs
		c.EVs = tpl.EVs
		moveNames = tpl.Moves

	case spec.BaseStats != nil:
		c.Base = *spec.BaseStats
		c.Types = spec.Types
		c.ID = spec.Species

	case spec.Species != "":
		if err := s.applySpecies(&c, spec.Species); err != nil {
			return model.Combatant{}, nil, err
		}

	default:
		return model.Combatant{}, nil, &model.ValidationError{
			Field:  "species",
			Value:  "",
			Reason: "one of templateId, baseStats or species is required",
		}
	}

	if spec.Name != "" {
		c.Name = spec.Name
	}
	if len(spec.Types) > 0 {
		c.Types = spec.Types
	}
	if spec.Level != nil {
		c.Level = *spec.Level
	}
	if spec.Nature != "" {
		c.Nature = spec.Nature
	}
	if spec.Ability != "" {
		c.Ability = spec.Ability
	}
	if spec.Item != "" {
		c.Item = spec.Item
	}
	if spec.IVs != nil {
		c.IVs = *spec.IVs
	}
	if spec.EVs != nil {
		c.EVs = *spec.EVs
	}

	moves, err := s.resolveMoves(spec.Moves, moveNames)
	if err != nil {
		return model.Combatant{}, nil, err
	}
	return c, moves, nil
}

func (s *Service) applySpecies(c *model.Combatant, name string) error {
	sp, err := s.dex.Species(name)
	if err != nil {
		return err
	}
	c.ID = sp.ID
	c.Name = sp.Name
	c.Types = append([]model.Type(nil), sp.Types...)
	c.Base = sp.Base
	return nil
}

// resolveMoves prefers the request's moves; template moves are the fallback.
func (s *Service) resolveMoves(specs []MoveSpec, fallback []string) ([]model.Move, error) {
	if len(specs) == 0 {
		return s.dex.Moves(fallback)
	}
	out := make([]model.Move, 0, len(specs))
	for _, ms := range specs {
		if ms.Inline != nil {
			out = append(out, *ms.Inline)
			continue
		}
		mv, err := s.dex.Move(ms.Name)
		if err != nil {
			return nil, err
		}
		out = append(out, mv)
	}
	return out, nil
}

// CheckTemplate validates t and verifies that its species and moves exist.
func (s *Service) CheckTemplate(t model.Template) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if _, err := s.dex.Species(t.Species); err != nil {
		return err
	}
	if t.Nature != "" {
		if _, err := data.LookupNature(t.Nature); err != nil {
			return err
		}
	}
	if _, err := s.dex.Moves(t.Moves); err != nil {
		return err
	}
	return nil
}
