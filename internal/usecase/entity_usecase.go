package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-profile-backend/internal/domain"
	"go-profile-backend/pkg/apperror"
	"go-profile-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// entityUsecase implements the CRUD + search contract for one entity kind.
// Every mutation writes the record store first and mirrors the stored result
// into the search index; the two writes are not coupled.
type entityUsecase[E domain.Entity] struct {
	name     string
	store    domain.RecordStore[E]
	index    domain.SearchIndex[E]
	validate *validator.Validate
	log      *zap.Logger
}

// NewEntityUsecase creates the usecase for the entity kind called name
func NewEntityUsecase[E domain.Entity](
	name string,
	store domain.RecordStore[E],
	index domain.SearchIndex[E],
	validate *validator.Validate,
	log *zap.Logger,
) domain.EntityUsecase[E] {
	return newEntityUsecase(name, store, index, validate, log)
}

func newEntityUsecase[E domain.Entity](
	name string,
	store domain.RecordStore[E],
	index domain.SearchIndex[E],
	validate *validator.Validate,
	log *zap.Logger,
) *entityUsecase[E] {
	if log == nil {
		log = zap.NewNop()
	}
	return &entityUsecase[E]{
		name:     name,
		store:    store,
		index:    index,
		validate: validate,
		log:      log.With(zap.String("entity", name)),
	}
}

func (u *entityUsecase[E]) Name() string {
	return u.name
}

func (u *entityUsecase[E]) Create(ctx context.Context, e E) (E, error) {
	var zero E
	u.log.Debug("request to save", zap.Any(u.name, e))

	if err := u.validateEntity(e); err != nil {
		return zero, err
	}
	if e.GetID() != nil {
		return zero, apperror.BadRequestAlert(
			fmt.Sprintf("A new %s cannot already have an ID", u.name), u.name, "idexists")
	}
	return u.save(ctx, e)
}

func (u *entityUsecase[E]) Update(ctx context.Context, e E) (E, bool, error) {
	var zero E
	u.log.Debug("request to update", zap.Any(u.name, e))

	if e.GetID() == nil {
		created, err := u.Create(ctx, e)
		return created, true, err
	}
	if err := u.validateEntity(e); err != nil {
		return zero, false, err
	}
	result, err := u.save(ctx, e)
	return result, false, err
}

func (u *entityUsecase[E]) ListAll(ctx context.Context) ([]E, error) {
	u.log.Debug("request to get all")
	items, err := u.store.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %ss: %w", u.name, err)
	}
	return items, nil
}

func (u *entityUsecase[E]) GetByID(ctx context.Context, id int64) (E, error) {
	var zero E
	u.log.Debug("request to get", zap.Int64("id", id))
	e, err := u.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return zero, apperror.NotFound(fmt.Sprintf("%s %d not found", titleCase(u.name), id))
		}
		return zero, fmt.Errorf("get %s %d: %w", u.name, id, err)
	}
	return e, nil
}

// Delete removes the id from both collaborators independently.
// A missing record is not an error on either side.
func (u *entityUsecase[E]) Delete(ctx context.Context, id int64) error {
	u.log.Debug("request to delete", zap.Int64("id", id))
	if err := u.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete %s %d: %w", u.name, id, err)
	}
	if err := u.index.Delete(ctx, id); err != nil {
		u.log.Warn("record deleted but search index removal failed", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("unindex %s %d: %w", u.name, id, err)
	}
	return nil
}

func (u *entityUsecase[E]) Search(ctx context.Context, query string) ([]E, error) {
	u.log.Debug("request to search", zap.String("query", query))
	items, err := u.index.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search %ss: %w", u.name, err)
	}
	return items, nil
}

func (u *entityUsecase[E]) Reindex(ctx context.Context) (int, error) {
	start := time.Now()
	items, err := u.store.FindAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("load %ss for reindex: %w", u.name, err)
	}
	// drop documents whose records no longer exist
	if err := u.index.Clear(ctx); err != nil {
		return 0, fmt.Errorf("clear %s index: %w", u.name, err)
	}
	for i, e := range items {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		if err := u.index.Save(ctx, e); err != nil {
			return i, fmt.Errorf("reindex %s %s: %w", u.name, domain.IDString(e), err)
		}
	}
	u.log.Info("search index rebuilt", zap.Int("count", len(items)), zap.Duration("took", time.Since(start)))
	return len(items), nil
}

// save persists to the record store, then mirrors the stored copy into the index
func (u *entityUsecase[E]) save(ctx context.Context, e E) (E, error) {
	var zero E
	result, err := u.store.Save(ctx, e)
	if err != nil {
		return zero, fmt.Errorf("save %s: %w", u.name, err)
	}
	if err := u.index.Save(ctx, result); err != nil {
		u.log.Warn("record saved but search index write failed",
			zap.String("id", domain.IDString(result)), zap.Error(err))
		return zero, fmt.Errorf("index %s %s: %w", u.name, domain.IDString(result), err)
	}
	return result, nil
}

func (u *entityUsecase[E]) validateEntity(e E) error {
	if u.validate == nil {
		return nil
	}
	if err := u.validate.Struct(e); err != nil {
		return apperror.Validation(validation.FormatValidationErrors(err))
	}
	return nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
