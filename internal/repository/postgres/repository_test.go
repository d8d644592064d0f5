package postgres_test

import (
	"context"
	"os"
	"sync"
	"testing"

	"go-profile-backend/internal/database/migration"
	"go-profile-backend/internal/domain"
	"go-profile-backend/internal/repository/postgres"
	"go-profile-backend/pkg/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

// newPool migrates the database named by TEST_DATABASE_URL and empties both tables
func newPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	db, err := migration.Open(ctx, dsn)
	require.NoError(t, err)
	_, err = migration.Runner{}.Run(ctx, db)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	pool, err := database.NewPostgresConnection(ctx, dsn, database.PoolOptions{MaxConns: 8}, nil)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE profils, skills RESTART IDENTITY`)
	require.NoError(t, err)
	return pool
}

func TestSkillRepository(t *testing.T) {
	pool := newPool(t)
	repo := postgres.NewSkillRepository(pool)
	ctx := context.Background()

	created, err := repo.Save(ctx, &domain.Skill{Name: "Go", Level: 80})
	require.NoError(t, err)
	require.NotNil(t, created.ID)
	assert.Equal(t, int64(1), *created.ID)

	t.Run("Should overwrite by id", func(t *testing.T) {
		updated, err := repo.Save(ctx, &domain.Skill{ID: created.ID, Name: "Golang", Level: 90})
		require.NoError(t, err)
		assert.Equal(t, *created.ID, *updated.ID)

		got, err := repo.FindByID(ctx, *created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Golang", got.Name)
		assert.Equal(t, 90, got.Level)
		assert.True(t, got.CreatedAt.Equal(created.CreatedAt), "created_at survives an overwrite")
	})

	t.Run("Should move the sequence past an explicit id", func(t *testing.T) {
		_, err := repo.Save(ctx, &domain.Skill{ID: int64Ptr(50), Name: "Rust"})
		require.NoError(t, err)

		next, err := repo.Save(ctx, &domain.Skill{Name: "Zig"})
		require.NoError(t, err)
		assert.Equal(t, int64(51), *next.ID)
	})

	t.Run("Should keep an explicit id below the sequence from rewinding it", func(t *testing.T) {
		_, err := repo.Save(ctx, &domain.Skill{ID: int64Ptr(20), Name: "Elixir"})
		require.NoError(t, err)

		next, err := repo.Save(ctx, &domain.Skill{Name: "OCaml"})
		require.NoError(t, err)
		assert.Equal(t, int64(52), *next.ID)
	})

	t.Run("Should hand out unique ids to concurrent inserts", func(t *testing.T) {
		const n = 20
		var wg sync.WaitGroup
		ids := make(chan int64, n)
		errs := make(chan error, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				s, err := repo.Save(ctx, &domain.Skill{Name: "Concurrent"})
				if err != nil {
					errs <- err
					return
				}
				ids <- *s.ID
			}()
		}
		wg.Wait()
		close(ids)
		close(errs)

		for err := range errs {
			assert.NoError(t, err)
		}
		seen := map[int64]bool{}
		for id := range ids {
			assert.False(t, seen[id], "id %d handed out twice", id)
			seen[id] = true
		}
		assert.Len(t, seen, n)
	})

	t.Run("Should list in id order", func(t *testing.T) {
		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, all)
		for i := 1; i < len(all); i++ {
			assert.Less(t, *all[i-1].ID, *all[i].ID)
		}
	})

	t.Run("Should delete idempotently", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, 50))
		require.NoError(t, repo.Delete(ctx, 50))

		_, err := repo.FindByID(ctx, 50)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestProfilRepositoryFindByUserID(t *testing.T) {
	pool := newPool(t)
	repo := postgres.NewProfilRepository(pool)
	ctx := context.Background()

	first, err := repo.Save(ctx, &domain.Profil{UserID: 42, FirstName: "Ada", LastName: "Lovelace"})
	require.NoError(t, err)
	_, err = repo.Save(ctx, &domain.Profil{UserID: 42, FirstName: "Augusta", LastName: "King"})
	require.NoError(t, err)

	t.Run("Should return the lowest id for the user", func(t *testing.T) {
		got, err := repo.FindByUserID(ctx, 42)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, *first.ID, *got.ID)
		assert.Equal(t, "Ada", got.FirstName)
	})

	t.Run("Should return nil for a user without profil", func(t *testing.T) {
		got, err := repo.FindByUserID(ctx, 99)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
