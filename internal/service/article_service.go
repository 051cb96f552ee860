package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"text/template"
	"time"

	"penulis/internal/logger"
	"penulis/internal/model"
	"penulis/internal/render"
	"penulis/internal/repository"
	"penulis/internal/service/ai"
	"penulis/internal/translate"
)

// ArticleService generates blog articles and manages the stored history.
type ArticleService interface {
	// Generate runs the full pipeline for one instruction and persists
	// the result. The returned article carries every generated field.
	Generate(ctx context.Context, instruction string) (model.Article, error)
	// Get returns a stored article.
	Get(ctx context.Context, id int64) (model.Article, error)
	// List returns stored articles, newest first.
	List(ctx context.Context, limit, offset int) ([]model.Article, error)
	// Delete removes a stored article.
	Delete(ctx context.Context, id int64) error
	// PruneOlderThan deletes stored articles older than the given age and
	// returns how many were removed.
	PruneOlderThan(ctx context.Context, age time.Duration) (int64, error)
	// TestProvider checks LLM connectivity with a canned prompt.
	TestProvider(ctx context.Context) (string, error)
}

type articleService struct {
	repo        repository.ArticleRepository
	provider    ai.Provider
	translator  translate.Translator
	renderer    *render.Renderer
	rateLimiter *ai.RateLimiter
	sourceLang  string
	targetLang  string
}

// NewArticleService creates a new article service. All collaborators are
// fixed at construction; nothing is read from ambient state per request.
func NewArticleService(
	repo repository.ArticleRepository,
	provider ai.Provider,
	translator translate.Translator,
	renderer *render.Renderer,
	rateLimiter *ai.RateLimiter,
	sourceLang, targetLang string,
) ArticleService {
	return &articleService{
		repo:        repo,
		provider:    provider,
		translator:  translator,
		renderer:    renderer,
		rateLimiter: rateLimiter,
		sourceLang:  sourceLang,
		targetLang:  targetLang,
	}
}

// stage is one step of the generation pipeline. run receives a snapshot of
// the accumulated state and returns a delta holding only the fields this
// stage produced; the orchestrator merges that delta before moving on.
type stage struct {
	name string
	run  func(ctx context.Context, st model.Article) (model.Article, error)
}

func (s *articleService) stages() []stage {
	return []stage{
		{name: "title_generator", run: s.generateTitle},
		{name: "summary_generator", run: s.generateSummary},
		{name: "body_generator", run: s.generateBody},
		{name: "translator", run: s.translateArticle},
		{name: "tags_generator", run: s.generateTags},
	}
}

func (s *articleService) Generate(ctx context.Context, instruction string) (model.Article, error) {
	if strings.TrimSpace(instruction) == "" {
		return model.Article{}, fmt.Errorf("%w: instruction cannot be empty or just whitespace", ErrInvalid)
	}

	st := model.Article{Instruction: instruction}

	for _, stg := range s.stages() {
		delta, err := stg.run(ctx, st)
		if err != nil {
			logger.Warn("article stage failed", "module", "service", "action", "generate", "resource", "article", "result", "failed", "stage", stg.name, "error", err)
			return model.Article{}, fmt.Errorf("stage %s: %w", stg.name, err)
		}
		st = mergeState(st, delta)
		logger.Debug("article stage complete", "module", "service", "action", "generate", "resource", "article", "result", "ok", "stage", stg.name)
	}

	st = s.renderBodies(st)

	saved, err := s.repo.Create(ctx, st)
	if err != nil {
		// The article was generated; losing the history row is not worth
		// failing the request over.
		logger.Warn("article save failed", "module", "service", "action", "save", "resource", "article", "result", "failed", "error", err)
		return st, nil
	}

	logger.Info("article generated", "module", "service", "action", "generate", "resource", "article", "result", "ok", "article_id", saved.ID, "provider", s.provider.Name())
	return saved, nil
}

// generateTitle produces the English title from the instruction. The SEO
// field is defined as a copy of the title at creation time.
func (s *articleService) generateTitle(ctx context.Context, st model.Article) (model.Article, error) {
	obj, err := s.completeJSON(ctx, ai.TitleTemplate, map[string]string{
		"instruction": st.Instruction,
	})
	if err != nil {
		return model.Article{}, err
	}

	title, err := ai.ExtractString(obj, ai.KeyTitleEN)
	if err != nil {
		return model.Article{}, err
	}
	return model.Article{TitleEN: title, SeoEN: title}, nil
}

func (s *articleService) generateSummary(ctx context.Context, st model.Article) (model.Article, error) {
	if st.TitleEN == "" {
		return model.Article{}, errors.New("title not generated yet")
	}

	obj, err := s.completeJSON(ctx, ai.SummaryTemplate, map[string]string{
		"title_en": st.TitleEN,
	})
	if err != nil {
		return model.Article{}, err
	}

	summary, err := ai.ExtractString(obj, ai.KeySummaryEN)
	if err != nil {
		return model.Article{}, err
	}
	return model.Article{SummaryEN: summary}, nil
}

func (s *articleService) generateBody(ctx context.Context, st model.Article) (model.Article, error) {
	if st.TitleEN == "" || st.SummaryEN == "" {
		return model.Article{}, errors.New("title or summary not generated yet")
	}

	obj, err := s.completeJSON(ctx, ai.BodyTemplate, map[string]string{
		"title_en":   st.TitleEN,
		"summary_en": st.SummaryEN,
	})
	if err != nil {
		return model.Article{}, err
	}

	body, err := ai.ExtractString(obj, ai.KeyBodyEN)
	if err != nil {
		return model.Article{}, err
	}
	return model.Article{BodyEN: body}, nil
}

// translateArticle translates title, summary and body with three
// independent sequential calls. The target-locale SEO field mirrors the
// translated title the same way the English one mirrors the title.
func (s *articleService) translateArticle(ctx context.Context, st model.Article) (model.Article, error) {
	if st.BodyEN == "" {
		return model.Article{}, errors.New("body not generated yet")
	}

	title, err := s.translator.Translate(ctx, st.TitleEN, s.sourceLang, s.targetLang)
	if err != nil {
		return model.Article{}, fmt.Errorf("translate title: %w", err)
	}

	summary, err := s.translator.Translate(ctx, st.SummaryEN, s.sourceLang, s.targetLang)
	if err != nil {
		return model.Article{}, fmt.Errorf("translate summary: %w", err)
	}

	body, err := s.translator.Translate(ctx, st.BodyEN, s.sourceLang, s.targetLang)
	if err != nil {
		return model.Article{}, fmt.Errorf("translate body: %w", err)
	}

	return model.Article{
		TitleID:   title,
		SeoID:     title,
		SummaryID: summary,
		BodyID:    body,
	}, nil
}

func (s *articleService) generateTags(ctx context.Context, st model.Article) (model.Article, error) {
	if st.TitleID == "" || st.SummaryID == "" {
		return model.Article{}, errors.New("translation not done yet")
	}

	obj, err := s.completeJSON(ctx, ai.TagsTemplate, map[string]string{
		"title_id":   st.TitleID,
		"summary_id": st.SummaryID,
	})
	if err != nil {
		return model.Article{}, err
	}

	tags, err := ai.ExtractStringList(obj, ai.KeyTags)
	if err != nil {
		return model.Article{}, err
	}
	return model.Article{Tags: tags}, nil
}

// completeJSON renders the prompt, waits on the rate limiter, calls the
// provider and decodes the JSON payload.
func (s *articleService) completeJSON(ctx context.Context, tmpl *template.Template, data map[string]string) (map[string]json.RawMessage, error) {
	prompt, err := ai.RenderPrompt(tmpl, data)
	if err != nil {
		return nil, err
	}

	if err := s.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	raw, err := s.provider.Complete(ctx, ai.SystemPrompt, prompt)
	if err != nil {
		return nil, fmt.Errorf("llm complete: %w", err)
	}
	return ai.DecodeResponse(raw)
}

// renderBodies fills in the sanitized HTML renditions of both markdown
// bodies. Render failures degrade to empty HTML rather than failing a
// pipeline that already succeeded.
func (s *articleService) renderBodies(st model.Article) model.Article {
	if s.renderer == nil {
		return st
	}

	htmlEN, err := s.renderer.HTML(st.BodyEN)
	if err != nil {
		logger.Warn("render body failed", "module", "service", "action", "render", "resource", "article", "result", "failed", "lang", s.sourceLang, "error", err)
	}
	htmlID, err := s.renderer.HTML(st.BodyID)
	if err != nil {
		logger.Warn("render body failed", "module", "service", "action", "render", "resource", "article", "result", "failed", "lang", s.targetLang, "error", err)
	}

	st.BodyHTMLEN = htmlEN
	st.BodyHTMLID = htmlID
	return st
}

// mergeState folds a stage delta into the accumulated state. Fields are
// append-only: a delta can introduce a field but never clear one.
func mergeState(st, delta model.Article) model.Article {
	if delta.TitleEN != "" {
		st.TitleEN = delta.TitleEN
	}
	if delta.SeoEN != "" {
		st.SeoEN = delta.SeoEN
	}
	if delta.SummaryEN != "" {
		st.SummaryEN = delta.SummaryEN
	}
	if delta.BodyEN != "" {
		st.BodyEN = delta.BodyEN
	}
	if delta.TitleID != "" {
		st.TitleID = delta.TitleID
	}
	if delta.SeoID != "" {
		st.SeoID = delta.SeoID
	}
	if delta.SummaryID != "" {
		st.SummaryID = delta.SummaryID
	}
	if delta.BodyID != "" {
		st.BodyID = delta.BodyID
	}
	if delta.Tags != nil {
		st.Tags = delta.Tags
	}
	return st
}

func (s *articleService) Get(ctx context.Context, id int64) (model.Article, error) {
	article, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Article{}, ErrNotFound
	}
	if err != nil {
		return model.Article{}, err
	}
	return article, nil
}

func (s *articleService) List(ctx context.Context, limit, offset int) ([]model.Article, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *articleService) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (s *articleService) PruneOlderThan(ctx context.Context, age time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-age)
	return s.repo.DeleteOlderThan(ctx, cutoff)
}

func (s *articleService) TestProvider(ctx context.Context) (string, error) {
	if err := s.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit: %w", err)
	}
	return s.provider.Test(ctx)
}
