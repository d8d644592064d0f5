package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"go-profile-backend/internal/domain"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"
)

// sourcePrefix namespaces the stored JSON copy of each document in the
// index's internal key/value space
const sourcePrefix = "_source/"

// Index is a bleve full-text index holding copies of one entity kind.
// Search hits are rebuilt from the stored copy, never from the record store.
type Index[E domain.Entity] struct {
	name       string
	idx        bleve.Index
	newEntity  func() E
	persistent bool
}

// Open opens (or creates) the index for entity kind name under dir.
// An empty dir creates a memory-only index that starts empty.
func Open[E domain.Entity](dir, name string, newEntity func() E) (*Index[E], error) {
	var (
		idx bleve.Index
		err error
	)
	if dir == "" {
		idx, err = bleve.NewMemOnly(newMapping())
	} else {
		path := filepath.Join(dir, name+".bleve")
		idx, err = bleve.Open(path)
		if errors.Is(err, bleve.ErrorIndexPathDoesNotExist) {
			idx, err = bleve.New(path, newMapping())
		}
	}
	if err != nil {
		return nil, fmt.Errorf("open %s search index: %w", name, err)
	}
	return &Index[E]{name: name, idx: idx, newEntity: newEntity, persistent: dir != ""}, nil
}

// NewProfilIndex opens the profil index
func NewProfilIndex(dir string) (*Index[*domain.Profil], error) {
	return Open(dir, domain.ProfilEntityName, func() *domain.Profil { return new(domain.Profil) })
}

// NewSkillIndex opens the skill index
func NewSkillIndex(dir string) (*Index[*domain.Skill], error) {
	return Open(dir, domain.SkillEntityName, func() *domain.Skill { return new(domain.Skill) })
}

func newMapping() *mapping.IndexMappingImpl {
	m := bleve.NewIndexMapping()
	m.DefaultAnalyzer = "standard"
	return m
}

// IsPersistent reports whether the index survives a restart
func (i *Index[E]) IsPersistent() bool {
	return i.persistent
}

// Save indexes e under its id, replacing any previous copy
func (i *Index[E]) Save(ctx context.Context, e E) error {
	id := domain.IDString(e)
	if id == "" {
		return fmt.Errorf("%s has no id to index", i.name)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := json.Marshal(e)
	if err != nil {
		return err
	}
	// Index the JSON shape so field names match the API (first_name, not FirstName)
	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return err
	}

	if err := i.idx.Index(id, doc); err != nil {
		return err
	}
	return i.idx.SetInternal(sourceKey(id), raw)
}

// Delete removes id from the index; unknown ids are ignored
func (i *Index[E]) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key := strconv.FormatInt(id, 10)
	if err := i.idx.Delete(key); err != nil {
		return err
	}
	return i.idx.DeleteInternal(sourceKey(key))
}

// Search runs a query-string query ("go", "name:go*", "+level:>50") and returns
// every match by descending score. A blank query matches everything.
func (i *Index[E]) Search(ctx context.Context, text string) ([]E, error) {
	out := make([]E, 0)

	count, err := i.idx.DocCount()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return out, nil
	}

	var q query.Query
	if strings.TrimSpace(text) == "" {
		q = bleve.NewMatchAllQuery()
	} else {
		q = bleve.NewQueryStringQuery(text)
	}

	req := bleve.NewSearchRequestOptions(q, int(count), 0, false)
	res, err := i.idx.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("search %s index: %w", i.name, err)
	}

	for _, hit := range res.Hits {
		raw, err := i.idx.GetInternal(sourceKey(hit.ID))
		if err != nil {
			return nil, err
		}
		if raw == nil {
			continue
		}
		e := i.newEntity()
		if err := json.Unmarshal(raw, e); err != nil {
			return nil, fmt.Errorf("decode %s %s from index: %w", i.name, hit.ID, err)
		}
		out = append(out, e)
	}
	return out, nil
}

// Clear removes every document and its stored source in one batch
func (i *Index[E]) Clear(ctx context.Context) error {
	count, err := i.idx.DocCount()
	if err != nil {
		return err
	}
	if count == 0 {
		return nil
	}

	req := bleve.NewSearchRequestOptions(bleve.NewMatchAllQuery(), int(count), 0, false)
	res, err := i.idx.SearchInContext(ctx, req)
	if err != nil {
		return fmt.Errorf("list %s index: %w", i.name, err)
	}

	batch := i.idx.NewBatch()
	for _, hit := range res.Hits {
		batch.Delete(hit.ID)
		batch.DeleteInternal(sourceKey(hit.ID))
	}
	if err := i.idx.Batch(batch); err != nil {
		return fmt.Errorf("clear %s index: %w", i.name, err)
	}
	return nil
}

// Count returns the number of indexed documents
func (i *Index[E]) Count() (uint64, error) {
	return i.idx.DocCount()
}

// Ping satisfies the health check
func (i *Index[E]) Ping(ctx context.Context) error {
	_, err := i.idx.DocCount()
	return err
}

func (i *Index[E]) Close() error {
	return i.idx.Close()
}

func sourceKey(id string) []byte {
	return []byte(sourcePrefix + id)
}
