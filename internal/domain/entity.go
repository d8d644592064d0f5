package domain

import (
	"context"
	"errors"
	"strconv"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Entity is a record keyed by a store-assigned numeric id.
// A nil id means the entity has never been saved.
type Entity interface {
	GetID() *int64
	SetID(id int64)
}

// IDString renders the id for headers and index keys; empty when unsaved
func IDString(e Entity) string {
	if id := e.GetID(); id != nil {
		return strconv.FormatInt(*id, 10)
	}
	return ""
}

// RecordStore is the authoritative persistence for one entity kind.
type RecordStore[E Entity] interface {
	// Save inserts when the id is nil, otherwise overwrites by id
	Save(ctx context.Context, e E) (E, error)
	// FindByID returns ErrNotFound when absent
	FindByID(ctx context.Context, id int64) (E, error)
	FindAll(ctx context.Context) ([]E, error)
	// Delete succeeds whether or not the id existed
	Delete(ctx context.Context, id int64) error
}

// SearchIndex is the full-text copy of a RecordStore.
type SearchIndex[E Entity] interface {
	Save(ctx context.Context, e E) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, query string) ([]E, error)
	// Clear removes every document
	Clear(ctx context.Context) error
}

// EntityUsecase is the CRUD + search contract shared by every entity kind.
type EntityUsecase[E Entity] interface {
	// Name is the lower-case entity kind used in alerts and URLs ("skill")
	Name() string
	Create(ctx context.Context, e E) (E, error)
	// Update redirects to Create when the entity has no id; created reports which path ran
	Update(ctx context.Context, e E) (result E, created bool, err error)
	ListAll(ctx context.Context) ([]E, error)
	GetByID(ctx context.Context, id int64) (E, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, query string) ([]E, error)
	// Reindex rebuilds the search index from the record store and returns the count indexed
	Reindex(ctx context.Context) (int, error)
}
