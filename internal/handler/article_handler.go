package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"penulis/internal/logger"
	"penulis/internal/service"
)

type ArticleHandler struct {
	service service.ArticleService
}

// Request/Response types

type generateRequest struct {
	Instruction string `json:"instruction"`
}

type testAIResponse struct {
	Response string `json:"response"`
}

func NewArticleHandler(service service.ArticleService) *ArticleHandler {
	return &ArticleHandler{service: service}
}

func (h *ArticleHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/articles", h.Generate)
	g.GET("/articles", h.List)
	g.GET("/articles/:id", h.Get)
	g.DELETE("/articles/:id", h.Delete)
	g.POST("/ai/test", h.TestAI)
}

// Generate runs the article pipeline for one instruction.
// @Summary Generate an article
// @Description Generate a full multi-field blog article from a short instruction: English title, SEO tag, summary, markdown body, Indonesian translations and topic tags.
// @Tags articles
// @Accept json
// @Produce json
// @Param request body generateRequest true "Generate request"
// @Success 200 {object} model.Article
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /articles [post]
func (h *ArticleHandler) Generate(c echo.Context) error {
	var req generateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	logger.Info("generate request received", "module", "handler", "action", "generate", "resource", "article", "result", "ok")

	article, err := h.service.Generate(c.Request().Context(), req.Instruction)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, article)
}

// List returns stored articles, newest first.
// @Summary List generated articles
// @Tags articles
// @Produce json
// @Param limit query int false "Page size (default 50)"
// @Param offset query int false "Page offset"
// @Success 200 {array} model.Article
// @Failure 500 {object} errorResponse
// @Router /articles [get]
func (h *ArticleHandler) List(c echo.Context) error {
	limit := parseIntQuery(c, "limit", 50)
	offset := parseIntQuery(c, "offset", 0)

	articles, err := h.service.List(c.Request().Context(), limit, offset)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, articles)
}

// Get returns one stored article.
// @Summary Get a generated article
// @Tags articles
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} model.Article
// @Failure 404 {object} errorResponse
// @Router /articles/{id} [get]
func (h *ArticleHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid article ID"})
	}

	article, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, article)
}

// Delete removes one stored article.
// @Summary Delete a generated article
// @Tags articles
// @Param id path int true "Article ID"
// @Success 204
// @Failure 404 {object} errorResponse
// @Router /articles/{id} [delete]
func (h *ArticleHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid article ID"})
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// TestAI checks LLM provider connectivity.
// @Summary Test the AI connection
// @Tags ai
// @Produce json
// @Success 200 {object} testAIResponse
// @Failure 502 {object} errorResponse
// @Router /ai/test [post]
func (h *ArticleHandler) TestAI(c echo.Context) error {
	resp, err := h.service.TestProvider(c.Request().Context())
	if err != nil {
		logger.Warn("ai test failed", "module", "handler", "action", "fetch", "resource", "ai", "result", "failed", "error", err)
		return c.JSON(http.StatusBadGateway, errorResponse{Error: "AI provider unreachable"})
	}
	return c.JSON(http.StatusOK, testAIResponse{Response: resp})
}
