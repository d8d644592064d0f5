package domain

import "time"

const SkillEntityName = "skill"

type Skill struct {
	ID          *int64    `json:"id"`
	Name        string    `json:"name" validate:"required,min=1,max=100,no_emoji"`
	Category    *string   `json:"category" validate:"omitempty,max=100"`
	Level       int       `json:"level" validate:"min=0,max=100"`
	Description *string   `json:"description" validate:"omitempty,max=1000"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (s *Skill) GetID() *int64 { return s.ID }

func (s *Skill) SetID(id int64) { s.ID = &id }

type SkillRepository interface {
	RecordStore[*Skill]
}

type SkillUsecase interface {
	EntityUsecase[*Skill]
}
