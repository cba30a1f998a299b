package repository_test

import (
	"context"
	"testing"

	"github.com/Behyna/sms-services/campaign/internal/model"
	"github.com/Behyna/sms-services/campaign/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipientRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create and get by number", func(t *testing.T) {
		repo := repository.NewRecipientRepository(newTestDB(t))

		r := &model.Recipient{FirstName: "John", LastName: "Calvin", Number: "+447700900001"}
		require.NoError(t, repo.Create(ctx, r))
		assert.NotZero(t, r.ID)

		got, err := repo.GetByNumber(ctx, "+447700900001")
		require.NoError(t, err)
		assert.Equal(t, r.ID, got.ID)
		assert.Equal(t, "John Calvin", got.FullName())
	})

	t.Run("duplicate number", func(t *testing.T) {
		repo := repository.NewRecipientRepository(newTestDB(t))

		require.NoError(t, repo.Create(ctx, &model.Recipient{FirstName: "A", LastName: "B", Number: "+447700900002"}))
		err := repo.Create(ctx, &model.Recipient{FirstName: "C", LastName: "D", Number: "+447700900002"})

		assert.ErrorIs(t, err, repository.ErrRecipientDuplicate)
	})

	t.Run("not found", func(t *testing.T) {
		repo := repository.NewRecipientRepository(newTestDB(t))

		_, err := repo.GetByID(ctx, 42)
		assert.ErrorIs(t, err, repository.ErrRecipientNotFound)

		_, err = repo.GetByNumber(ctx, "+1")
		assert.ErrorIs(t, err, repository.ErrRecipientNotFound)

		assert.ErrorIs(t, repo.UpdateBlocking(ctx, 42, true), repository.ErrRecipientNotFound)
	})

	t.Run("blocking and name updates", func(t *testing.T) {
		repo := repository.NewRecipientRepository(newTestDB(t))
		r := &model.Recipient{FirstName: "Unknown", LastName: "Person", Number: "+447700900003"}
		require.NoError(t, repo.Create(ctx, r))

		require.NoError(t, repo.UpdateBlocking(ctx, r.ID, true))
		require.NoError(t, repo.UpdateName(ctx, r.ID, "Jane", "Doe"))

		got, err := repo.GetByID(ctx, r.ID)
		require.NoError(t, err)
		assert.True(t, got.IsBlocking)
		assert.Equal(t, "Jane", got.FirstName)
		assert.Equal(t, "Doe", got.LastName)

		require.NoError(t, repo.UpdateBlocking(ctx, r.ID, false))
		got, _ = repo.GetByID(ctx, r.ID)
		assert.False(t, got.IsBlocking)
	})

	t.Run("archive clears groups and hides from list", func(t *testing.T) {
		db := newTestDB(t)
		repo := repository.NewRecipientRepository(db)
		groups := repository.NewGroupRepository(db)

		r := &model.Recipient{FirstName: "A", LastName: "B", Number: "+447700900004"}
		require.NoError(t, repo.Create(ctx, r))
		g := &model.RecipientGroup{Name: "choir"}
		require.NoError(t, groups.Create(ctx, g))
		require.NoError(t, groups.AddMembers(ctx, g.ID, []int64{r.ID}))

		require.NoError(t, repo.Archive(ctx, r.ID))

		got, err := repo.GetByID(ctx, r.ID)
		require.NoError(t, err)
		assert.True(t, got.IsArchived)
		assert.Empty(t, got.Groups)

		list, err := repo.List(ctx, repository.RecipientFilter{})
		require.NoError(t, err)
		assert.Empty(t, list)

		list, err = repo.List(ctx, repository.RecipientFilter{IncludeArchived: true})
		require.NoError(t, err)
		assert.Len(t, list, 1)

		byIDs, err := repo.ListByIDs(ctx, []int64{r.ID})
		require.NoError(t, err)
		assert.Empty(t, byIDs)
	})
}
