package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler holds dependencies for catalog-related handlers.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// SaveArticleRequest represents the request body for creating or updating an article
type SaveArticleRequest struct {
	Title         string          `json:"title" validate:"required"`
	Price         decimal.Decimal `json:"price" validate:"required"`
	ImageURL      string          `json:"image_url"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Specification string          `json:"specification"`
}

// ListArticles handles the catalog listing request.
func (h *CatalogHandler) ListArticles(c echo.Context) error {
	input := &usecase.ListArticlesInput{
		Search: c.QueryParam("search"),
	}
	if categoryParam := c.QueryParam("category_id"); categoryParam != "" {
		categoryID, err := uuid.Parse(categoryParam)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid category id")
		}
		input.CategoryID = &categoryID
	}

	articles, err := h.catalogUC.ListArticles(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, articles, "Articles retrieved successfully")
}

// GetArticle handles the single-article read request.
func (h *CatalogHandler) GetArticle(c echo.Context) error {
	articleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid article id")
	}

	article, err := h.catalogUC.GetArticle(c.Request().Context(), articleID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, article, "Article retrieved successfully")
}

// ListCategories handles the category listing request.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUC.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "Categories retrieved successfully")
}

// ListContentBlocks returns the landing page content of one kind.
func (h *CatalogHandler) ListContentBlocks(c echo.Context) error {
	kind := entity.ContentBlockKind(c.QueryParam("kind"))
	if kind == "" {
		kind = entity.ContentBlockCarousel
	}

	blocks, err := h.catalogUC.ListContentBlocks(c.Request().Context(), kind)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, blocks, "Content blocks retrieved successfully")
}

// CreateArticle handles the admin article creation request.
func (h *CatalogHandler) CreateArticle(c echo.Context) error {
	var req SaveArticleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid article input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	article, err := h.catalogUC.CreateArticle(c.Request().Context(), deliverycontext.GetPrincipal(c), toSaveArticleInput(&req))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, article, "Article created successfully")
}

// UpdateArticle handles the admin article update request.
func (h *CatalogHandler) UpdateArticle(c echo.Context) error {
	articleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid article id")
	}

	var req SaveArticleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid article input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	article, err := h.catalogUC.UpdateArticle(c.Request().Context(), deliverycontext.GetPrincipal(c), articleID, toSaveArticleInput(&req))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, article, "Article updated successfully")
}

// DeleteArticle handles the admin article deletion request.
func (h *CatalogHandler) DeleteArticle(c echo.Context) error {
	articleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid article id")
	}

	if err := h.catalogUC.DeleteArticle(c.Request().Context(), deliverycontext.GetPrincipal(c), articleID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Article deleted successfully")
}

// UploadArticleImage handles the admin image upload request.
func (h *CatalogHandler) UploadArticleImage(c echo.Context) error {
	articleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid article id")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Image file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.Close()

	imageURL, err := h.catalogUC.UploadArticleImage(c.Request().Context(), deliverycontext.GetPrincipal(c), &usecase.UploadArticleImageInput{
		ArticleID:   articleID,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Body:        file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"image_url": imageURL}, "Image uploaded successfully")
}

func toSaveArticleInput(req *SaveArticleRequest) *usecase.SaveArticleInput {
	return &usecase.SaveArticleInput{
		Title:         req.Title,
		Price:         req.Price,
		ImageURL:      req.ImageURL,
		Category:      req.Category,
		Description:   req.Description,
		Specification: req.Specification,
	}
}
