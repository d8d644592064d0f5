package postgres

import (
	"context"
	"errors"
	"go-profile-backend/internal/domain"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type skillRepo struct {
	db *pgxpool.Pool
}

func NewSkillRepository(db *pgxpool.Pool) domain.SkillRepository {
	return &skillRepo{db: db}
}

const skillColumns = `id, name, category, level, description, created_at, updated_at`

func scanSkill(row pgx.Row) (*domain.Skill, error) {
	var s domain.Skill
	var id int64
	if err := row.Scan(&id, &s.Name, &s.Category, &s.Level, &s.Description, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	s.ID = &id
	return &s, nil
}

func (r *skillRepo) Save(ctx context.Context, skill *domain.Skill) (*domain.Skill, error) {
	now := time.Now()

	if skill.ID == nil {
		query := `INSERT INTO skills (name, category, level, description, created_at, updated_at)
                  VALUES ($1, $2, $3, $4, $5, $6) RETURNING ` + skillColumns
		return scanSkill(r.db.QueryRow(ctx, query,
			skill.Name, skill.Category, skill.Level, skill.Description, now, now,
		))
	}

	query := `INSERT INTO skills (id, name, category, level, description, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7)
              ON CONFLICT (id) DO UPDATE SET
                  name = EXCLUDED.name,
                  category = EXCLUDED.category,
                  level = EXCLUDED.level,
                  description = EXCLUDED.description,
                  updated_at = EXCLUDED.updated_at
              RETURNING ` + skillColumns
	return scanSkill(r.db.QueryRow(ctx, query,
		*skill.ID, skill.Name, skill.Category, skill.Level, skill.Description, now, now,
	))
}

func (r *skillRepo) FindByID(ctx context.Context, id int64) (*domain.Skill, error) {
	skill, err := scanSkill(r.db.QueryRow(ctx, `SELECT `+skillColumns+` FROM skills WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return skill, nil
}

func (r *skillRepo) FindAll(ctx context.Context) ([]*domain.Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT `+skillColumns+` FROM skills ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skills := make([]*domain.Skill, 0)
	for rows.Next() {
		skill, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}
	return skills, rows.Err()
}

func (r *skillRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	return err
}
