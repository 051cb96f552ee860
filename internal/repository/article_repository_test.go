package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"penulis/internal/model"
	"penulis/internal/repository"
	"penulis/internal/repository/testutil"
)

func sampleArticle(instruction string) model.Article {
	return model.Article{
		Instruction: instruction,
		TitleEN:     "Urban Gardening for Beginners",
		SeoEN:       "Urban Gardening for Beginners",
		SummaryEN:   "A summary about urban gardening.",
		BodyEN:      "## Getting Started\n\nBody text.",
		TitleID:     "Berkebun Kota untuk Pemula",
		SeoID:       "Berkebun Kota untuk Pemula",
		SummaryID:   "Ringkasan tentang berkebun kota.",
		BodyID:      "## Memulai\n\nIsi artikel.",
		Tags:        []string{"berkebun", "kota"},
		BodyHTMLEN:  "<h2>Getting Started</h2>",
		BodyHTMLID:  "<h2>Memulai</h2>",
	}
}

func TestArticleRepository_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewArticleRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleArticle("Write about urban gardening"))
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())

	fetched, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, fetched.ID)
	require.Equal(t, "Write about urban gardening", fetched.Instruction)
	require.Equal(t, fetched.TitleEN, fetched.SeoEN)
	require.Equal(t, fetched.TitleID, fetched.SeoID)
	require.Equal(t, []string{"berkebun", "kota"}, fetched.Tags)
	require.Equal(t, "<h2>Memulai</h2>", fetched.BodyHTMLID)
}

func TestArticleRepository_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewArticleRepository(db)

	_, err := repo.GetByID(context.Background(), 12345)
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestArticleRepository_List_OrderAndPaging(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewArticleRepository(db)
	ctx := context.Background()

	for _, topic := range []string{"first", "second", "third"} {
		_, err := repo.Create(ctx, sampleArticle(topic))
		require.NoError(t, err)
	}

	articles, err := repo.List(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, articles, 2)
	// Same created_at second is possible; the id tiebreaker keeps newest first.
	require.Equal(t, "third", articles[0].Instruction)

	rest, err := repo.List(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	require.Equal(t, "first", rest[0].Instruction)
}

func TestArticleRepository_List_EmptyTags(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewArticleRepository(db)
	ctx := context.Background()

	a := sampleArticle("no tags")
	a.Tags = nil
	_, err := repo.Create(ctx, a)
	require.NoError(t, err)

	articles, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	require.Empty(t, articles[0].Tags)
}

func TestArticleRepository_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewArticleRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleArticle("to delete"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))
	require.ErrorIs(t, repo.Delete(ctx, created.ID), sql.ErrNoRows)
}

func TestArticleRepository_DeleteOlderThan(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewArticleRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleArticle("old enough"))
	require.NoError(t, err)

	deleted, err := repo.DeleteOlderThan(ctx, created.CreatedAt.Add(-time.Hour))
	require.NoError(t, err)
	require.Zero(t, deleted)

	deleted, err = repo.DeleteOlderThan(ctx, created.CreatedAt.Add(time.Hour))
	require.NoError(t, err)
	require.Equal(t, int64(1), deleted)

	articles, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	require.Empty(t, articles)
}
