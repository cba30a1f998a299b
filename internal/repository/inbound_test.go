package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/Behyna/sms-services/campaign/internal/model"
	"github.com/Behyna/sms-services/campaign/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInboundRepository(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	seed := func(t *testing.T, repo repository.InboundRepository) {
		t.Helper()
		rows := []model.SmsInbound{
			{Sid: "SM1", Content: "test one", SenderNum: "+1001", SenderName: "Unknown Person", MatchedKeyword: "test", DisplayOnWall: true},
			{Sid: "SM2", Content: "test two", SenderNum: "+1002", SenderName: "Jane Doe", MatchedKeyword: "test"},
			{Sid: "SM3", Content: "hello", SenderNum: "+1001", SenderName: "Unknown Person", MatchedKeyword: "No Match"},
		}
		for i := range rows {
			received := base.Add(time.Duration(i) * time.Minute)
			rows[i].TimeReceived = &received
			require.NoError(t, repo.Create(ctx, &rows[i]))
		}
	}

	t.Run("duplicate sid", func(t *testing.T) {
		repo := repository.NewInboundRepository(newTestDB(t))
		require.NoError(t, repo.Create(ctx, &model.SmsInbound{Sid: "SMX"}))

		assert.ErrorIs(t, repo.Create(ctx, &model.SmsInbound{Sid: "SMX"}), repository.ErrInboundDuplicate)
	})

	t.Run("filters and ordering", func(t *testing.T) {
		repo := repository.NewInboundRepository(newTestDB(t))
		seed(t, repo)

		all, err := repo.List(ctx, repository.InboundFilter{})
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "SM3", all[0].Sid)

		byKeyword, err := repo.List(ctx, repository.InboundFilter{Keyword: "test"})
		require.NoError(t, err)
		assert.Len(t, byKeyword, 2)

		bySender, err := repo.List(ctx, repository.InboundFilter{SenderNum: "+1001", Page: repository.Page{Limit: 1}})
		require.NoError(t, err)
		require.Len(t, bySender, 1)
		assert.Equal(t, "SM3", bySender[0].Sid)

		wall, err := repo.List(ctx, repository.InboundFilter{DisplayOnWall: boolPtr(true)})
		require.NoError(t, err)
		require.Len(t, wall, 1)
		assert.Equal(t, "SM1", wall[0].Sid)
	})

	t.Run("relabel sender", func(t *testing.T) {
		repo := repository.NewInboundRepository(newTestDB(t))
		seed(t, repo)

		require.NoError(t, repo.UpdateSenderName(ctx, "+1001", "John Calvin"))

		rows, err := repo.List(ctx, repository.InboundFilter{SenderNum: "+1001"})
		require.NoError(t, err)
		for _, r := range rows {
			assert.Equal(t, "John Calvin", r.SenderName)
		}
	})

	t.Run("archive by keyword", func(t *testing.T) {
		repo := repository.NewInboundRepository(newTestDB(t))
		seed(t, repo)

		n, err := repo.ArchiveByKeyword(ctx, "test")
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		archived, err := repo.CountByKeyword(ctx, "test", true)
		require.NoError(t, err)
		assert.Equal(t, int64(2), archived)

		live, err := repo.CountByKeyword(ctx, "test", false)
		require.NoError(t, err)
		assert.Zero(t, live)

		wall, err := repo.List(ctx, repository.InboundFilter{DisplayOnWall: boolPtr(true)})
		require.NoError(t, err)
		assert.Empty(t, wall)
	})

	t.Run("update flags", func(t *testing.T) {
		repo := repository.NewInboundRepository(newTestDB(t))
		seed(t, repo)

		msg, err := repo.GetByID(ctx, 2)
		require.NoError(t, err)
		msg.DealtWith = true
		msg.IsArchived = true
		require.NoError(t, repo.Update(ctx, msg))

		got, err := repo.GetByID(ctx, 2)
		require.NoError(t, err)
		assert.True(t, got.DealtWith)
		assert.True(t, got.IsArchived)

		assert.ErrorIs(t, repo.Update(ctx, &model.SmsInbound{ID: 99}), repository.ErrInboundNotFound)
	})
}
