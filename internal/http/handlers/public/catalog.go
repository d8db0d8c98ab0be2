package public

import (
	"errors"
	"strconv"
	"strings"

	"github.com/vastra-store/internal/http/response"
	"github.com/vastra-store/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// GetProducts lists the catalog with filters, sorting and pagination.
func (h *Handler) GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	query := service.CatalogQuery{
		Page:     page,
		PageSize: pageSize,
		Fabric:   strings.TrimSpace(c.Query("fabric")),
		Color:    strings.TrimSpace(c.Query("color")),
		Search:   strings.TrimSpace(c.Query("search")),
		Sort:     strings.TrimSpace(c.Query("sort")),
	}
	if raw := c.Query("category_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			query.CategoryID = uint(id)
		}
	}
	if raw := c.Query("min_price"); raw != "" {
		if price, err := decimal.NewFromString(raw); err == nil && !price.IsNegative() {
			query.MinPrice = &price
		}
	}
	if raw := c.Query("max_price"); raw != "" {
		if price, err := decimal.NewFromString(raw); err == nil && !price.IsNegative() {
			query.MaxPrice = &price
		}
	}
	if raw := c.Query("in_stock"); raw != "" {
		query.InStockOnly = raw == "true" || raw == "1"
	}

	products, total, err := h.ProductService.ListPublic(query)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load products", err)
		return
	}

	totalPage := (total + int64(pageSize) - 1) / int64(pageSize)
	response.SuccessWithPage(c, gin.H{"products": products}, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: totalPage,
	})
}

// GetProduct returns one active product by slug.
func (h *Handler) GetProduct(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		respondError(c, response.CodeBadRequest, "product slug is required", nil)
		return
	}

	product, err := h.ProductService.GetPublicBySlug(slug)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "product not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to load the product", err)
		return
	}

	response.Success(c, product)
}

// GetFeaturedProducts returns the featured shelf.
func (h *Handler) GetFeaturedProducts(c *gin.Context) {
	products, err := h.ProductService.ListFeatured(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load featured products", err)
		return
	}
	response.Success(c, gin.H{"products": products})
}

// GetCategories lists categories with product counts.
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.CategoryService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load categories", err)
		return
	}
	response.Success(c, gin.H{"categories": categories})
}

// GetCategory returns one category by slug.
func (h *Handler) GetCategory(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		respondError(c, response.CodeBadRequest, "category slug is required", nil)
		return
	}

	category, err := h.CategoryService.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "category not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to load the category", err)
		return
	}

	response.Success(c, category)
}
