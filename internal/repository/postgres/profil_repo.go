package postgres

import (
	"context"
	"errors"
	"go-profile-backend/internal/domain"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type profilRepo struct {
	db *pgxpool.Pool
}

// NewProfilRepository creates a new profil repository
func NewProfilRepository(db *pgxpool.Pool) domain.ProfilRepository {
	return &profilRepo{db: db}
}

const profilColumns = `id, user_id, first_name, last_name, title, bio, email, phone, location, created_at, updated_at`

func scanProfil(row pgx.Row) (*domain.Profil, error) {
	var p domain.Profil
	var id int64
	err := row.Scan(
		&id, &p.UserID, &p.FirstName, &p.LastName,
		&p.Title, &p.Bio, &p.Email, &p.Phone, &p.Location,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.ID = &id
	return &p, nil
}

// Save inserts a new profil or overwrites the one with the same id
func (r *profilRepo) Save(ctx context.Context, profil *domain.Profil) (*domain.Profil, error) {
	now := time.Now()
	profil.UpdatedAt = now

	if profil.ID == nil {
		query := `
			INSERT INTO profils (user_id, first_name, last_name, title, bio, email, phone, location, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING ` + profilColumns
		return scanProfil(r.db.QueryRow(ctx, query,
			profil.UserID, profil.FirstName, profil.LastName,
			profil.Title, profil.Bio, profil.Email, profil.Phone, profil.Location,
			now, now,
		))
	}

	query := `
		INSERT INTO profils (id, user_id, first_name, last_name, title, bio, email, phone, location, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			user_id = EXCLUDED.user_id,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			title = EXCLUDED.title,
			bio = EXCLUDED.bio,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			location = EXCLUDED.location,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + profilColumns
	return scanProfil(r.db.QueryRow(ctx, query,
		*profil.ID, profil.UserID, profil.FirstName, profil.LastName,
		profil.Title, profil.Bio, profil.Email, profil.Phone, profil.Location,
		now, now,
	))
}

// FindByID retrieves a profil by its ID
func (r *profilRepo) FindByID(ctx context.Context, id int64) (*domain.Profil, error) {
	query := `SELECT ` + profilColumns + ` FROM profils WHERE id = $1`
	profil, err := scanProfil(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return profil, nil
}

func (r *profilRepo) FindAll(ctx context.Context) ([]*domain.Profil, error) {
	query := `SELECT ` + profilColumns + ` FROM profils ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profils := make([]*domain.Profil, 0)
	for rows.Next() {
		profil, err := scanProfil(rows)
		if err != nil {
			return nil, err
		}
		profils = append(profils, profil)
	}
	return profils, rows.Err()
}

// Delete removes the profil; deleting an unknown id is a no-op
func (r *profilRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM profils WHERE id = $1`, id)
	return err
}

// FindByUserID retrieves the profil owned by a user, nil if the user has none
func (r *profilRepo) FindByUserID(ctx context.Context, userID int64) (*domain.Profil, error) {
	query := `SELECT ` + profilColumns + ` FROM profils WHERE user_id = $1 ORDER BY id LIMIT 1`
	profil, err := scanProfil(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return profil, nil
}
