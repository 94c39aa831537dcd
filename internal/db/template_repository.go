package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/dmgcalc/internal/model"
)

var (
	ErrTemplateNotFound  = errors.New("template not found")
	ErrTemplateDuplicate = errors.New("template with this name already exists")
)

const uniqueViolation = "23505"

// TemplateRepository provides database access for the combatant_templates table.
type TemplateRepository struct {
	pool *pgxpool.Pool
}

// NewTemplateRepository creates a new TemplateRepository.
func NewTemplateRepository(pool *pgxpool.Pool) *TemplateRepository {
	return &TemplateRepository{pool: pool}
}

const templateColumns = `id, owner, name, species, level, nature, ability, item, ivs, evs, moves, created_at`

// Create inserts t and returns it with ID and CreatedAt filled in.
func (r *TemplateRepository) Create(ctx context.Context, t model.Template) (model.Template, error) {
	if err := t.Validate(); err != nil {
		return model.Template{}, err
	}
	moves := t.Moves
	if moves == nil {
		moves = []string{}
	}

	err := r.pool.QueryRow(ctx,
		`INSERT INTO combatant_templates (owner, name, species, level, nature, ability, item, ivs, evs, moves)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, created_at`,
		t.Owner, t.Name, t.Species, t.Level, t.Nature, t.Ability, t.Item,
		t.IVs.Slice(), t.EVs.Slice(), moves,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.Template{}, fmt.Errorf("%w: %s/%s", ErrTemplateDuplicate, t.Owner, t.Name)
		}
		return model.Template{}, fmt.Errorf("insert template %s/%s: %w", t.Owner, t.Name, err)
	}
	t.Moves = moves
	return t, nil
}

// Get returns the template with the given ID.
func (r *TemplateRepository) Get(ctx context.Context, id int64) (model.Template, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+templateColumns+` FROM combatant_templates WHERE id = $1`, id)
	t, err := scanTemplate(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Template{}, fmt.Errorf("%w: id=%d", ErrTemplateNotFound, id)
	}
	if err != nil {
		return model.Template{}, fmt.Errorf("query template %d: %w", id, err)
	}
	return t, nil
}

// ListByOwner returns all templates of owner ordered by name.
func (r *TemplateRepository) ListByOwner(ctx context.Context, owner string) ([]model.Template, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+templateColumns+` FROM combatant_templates WHERE owner = $1 ORDER BY name`, owner)
	if err != nil {
		return nil, fmt.Errorf("query templates of %q: %w", owner, err)
	}
	defer rows.Close()

	result := []model.Template{}
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		result = append(result, t)
	}
	return result, rows.Err()
}

// Delete removes the template with the given ID.
func (r *TemplateRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM combatant_templates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete template %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: id=%d", ErrTemplateNotFound, id)
	}
	return nil
}

func scanTemplate(row pgx.Row) (model.Template, error) {
	var (
		t        model.Template
		ivs, evs []int
	)
	if err := row.Scan(&t.ID, &t.Owner, &t.Name, &t.Species, &t.Level, &t.Nature,
		&t.Ability, &t.Item, &ivs, &evs, &t.Moves, &t.CreatedAt); err != nil {
		return model.Template{}, err
	}
	t.IVs = model.StatSetFromSlice(ivs)
	t.EVs = model.StatSetFromSlice(evs)
	return t, nil
}
