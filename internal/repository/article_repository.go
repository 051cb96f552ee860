package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"penulis/internal/model"
	"penulis/internal/snowflake"
)

//go:generate mockgen -source=article_repository.go -destination=mock/article_repository_mock.go -package=mock

type ArticleRepository interface {
	Create(ctx context.Context, article model.Article) (model.Article, error)
	GetByID(ctx context.Context, id int64) (model.Article, error)
	List(ctx context.Context, limit, offset int) ([]model.Article, error)
	Delete(ctx context.Context, id int64) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type articleRepository struct {
	db dbtx
}

func NewArticleRepository(db dbtx) ArticleRepository {
	return &articleRepository{db: db}
}

const articleColumns = `id, instruction, title_en, seo_en, summary_en, body_en,
	title_id, seo_id, summary_id, body_id, tags, body_html_en, body_html_id, created_at`

func (r *articleRepository) Create(ctx context.Context, article model.Article) (model.Article, error) {
	article.ID = snowflake.NextID()
	article.CreatedAt = time.Now().UTC()

	tags, err := json.Marshal(article.Tags)
	if err != nil {
		return model.Article{}, fmt.Errorf("marshal tags: %w", err)
	}

	_, err = r.db.ExecContext(
		ctx,
		`INSERT INTO articles (`+articleColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		article.ID, article.Instruction,
		article.TitleEN, article.SeoEN, article.SummaryEN, article.BodyEN,
		article.TitleID, article.SeoID, article.SummaryID, article.BodyID,
		string(tags), article.BodyHTMLEN, article.BodyHTMLID,
		formatTime(article.CreatedAt),
	)
	if err != nil {
		return model.Article{}, fmt.Errorf("insert article: %w", err)
	}

	return article, nil
}

func (r *articleRepository) GetByID(ctx context.Context, id int64) (model.Article, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT `+articleColumns+` FROM articles WHERE id = ?`,
		id,
	)

	article, err := scanArticle(row)
	if err == sql.ErrNoRows {
		return model.Article{}, sql.ErrNoRows
	}
	if err != nil {
		return model.Article{}, fmt.Errorf("get article %d: %w", id, err)
	}
	return article, nil
}

func (r *articleRepository) List(ctx context.Context, limit, offset int) ([]model.Article, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.QueryContext(
		ctx,
		`SELECT `+articleColumns+` FROM articles
		 ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	articles := []model.Article{}
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

func (r *articleRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM articles WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete article %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *articleRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(
		ctx,
		`DELETE FROM articles WHERE created_at < ?`,
		formatTime(cutoff),
	)
	if err != nil {
		return 0, fmt.Errorf("delete old articles: %w", err)
	}
	return res.RowsAffected()
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanArticle(s scanner) (model.Article, error) {
	var a model.Article
	var tags string
	var createdAt string

	err := s.Scan(
		&a.ID, &a.Instruction,
		&a.TitleEN, &a.SeoEN, &a.SummaryEN, &a.BodyEN,
		&a.TitleID, &a.SeoID, &a.SummaryID, &a.BodyID,
		&tags, &a.BodyHTMLEN, &a.BodyHTMLID, &createdAt,
	)
	if err != nil {
		return model.Article{}, err
	}

	if err := json.Unmarshal([]byte(tags), &a.Tags); err != nil {
		return model.Article{}, fmt.Errorf("unmarshal tags: %w", err)
	}
	a.CreatedAt, _ = parseTime(createdAt)

	return a, nil
}
