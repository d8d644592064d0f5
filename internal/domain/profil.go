package domain

import (
	"context"
	"time"
)

const ProfilEntityName = "profil"

// Profil is a user's public profile
type Profil struct {
	ID        *int64    `json:"id"`
	UserID    int64     `json:"user_id" validate:"required,gt=0"`
	FirstName string    `json:"first_name" validate:"required,min=1,max=100,valid_name"`
	LastName  string    `json:"last_name" validate:"required,min=1,max=100,valid_name"`
	Title     *string   `json:"title" validate:"omitempty,max=150,no_emoji"`
	Bio       *string   `json:"bio" validate:"omitempty,max=2000"`
	Email     *string   `json:"email" validate:"omitempty,email"`
	Phone     *string   `json:"phone" validate:"omitempty,valid_phone"`
	Location  *string   `json:"location" validate:"omitempty,max=150"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Profil) GetID() *int64 { return p.ID }

func (p *Profil) SetID(id int64) { p.ID = &id }

// ProfilRepository defines storage operations
type ProfilRepository interface {
	RecordStore[*Profil]
	// FindByUserID returns nil, nil when the user has no profile
	FindByUserID(ctx context.Context, userID int64) (*Profil, error)
}

// ProfilUsecase defines business logic operations
type ProfilUsecase interface {
	EntityUsecase[*Profil]
	GetByUserID(ctx context.Context, userID int64) (*Profil, error)
}
