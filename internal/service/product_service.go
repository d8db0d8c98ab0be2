package service

import (
	"context"
	"strings"
	"time"

	"github.com/vastra-store/internal/cache"
	"github.com/vastra-store/internal/config"
	"github.com/vastra-store/internal/constants"
	"github.com/vastra-store/internal/logger"
	"github.com/vastra-store/internal/models"
	"github.com/vastra-store/internal/repository"

	"github.com/shopspring/decimal"
)

const featuredCacheKey = "catalog:featured"

// ProductService serves the public catalog.
type ProductService struct {
	repo repository.ProductRepository
	cfg  config.CatalogConfig
}

// NewProductService creates the product service.
func NewProductService(repo repository.ProductRepository, cfg config.CatalogConfig) *ProductService {
	return &ProductService{repo: repo, cfg: cfg}
}

// CatalogQuery is the public listing input.
type CatalogQuery struct {
	Page        int
	PageSize    int
	CategoryID  uint
	Fabric      string
	Color       string
	Search      string
	MinPrice    *decimal.Decimal
	MaxPrice    *decimal.Decimal
	InStockOnly bool
	Sort        string
}

// ListPublic lists active products with filters, sorting and pagination.
func (s *ProductService) ListPublic(q CatalogQuery) ([]models.Product, int64, error) {
	filter := repository.ProductListFilter{
		Page:         q.Page,
		PageSize:     s.clampPageSize(q.PageSize),
		CategoryID:   q.CategoryID,
		Fabric:       strings.TrimSpace(q.Fabric),
		Color:        strings.TrimSpace(q.Color),
		Search:       strings.TrimSpace(q.Search),
		MinPrice:     q.MinPrice,
		MaxPrice:     q.MaxPrice,
		InStockOnly:  q.InStockOnly,
		Sort:         normalizeSortKey(q.Sort),
		OnlyActive:   true,
		WithCategory: true,
	}
	return s.repo.List(filter)
}

// GetPublicBySlug fetches an active product by slug.
func (s *ProductService) GetPublicBySlug(slug string) (*models.Product, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrNotFound
	}
	product, err := s.repo.GetBySlug(slug, true)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// ListFeatured returns the home page picks, cached briefly in Redis.
func (s *ProductService) ListFeatured(ctx context.Context) ([]models.Product, error) {
	limit := s.cfg.FeaturedLimit
	if limit <= 0 {
		limit = 8
	}

	if cache.Enabled() {
		var cached []models.Product
		hit, err := cache.GetJSON(ctx, featuredCacheKey, &cached)
		if err != nil {
			logger.Warnw("catalog_featured_cache_read_failed", "error", err)
		} else if hit {
			return cached, nil
		}
	}

	products, err := s.repo.ListFeatured(limit)
	if err != nil {
		return nil, err
	}

	if cache.Enabled() {
		ttl := time.Duration(s.cfg.FeaturedCacheTTLSeconds) * time.Second
		if ttl <= 0 {
			ttl = time.Minute
		}
		if err := cache.SetJSON(ctx, featuredCacheKey, products, ttl); err != nil {
			logger.Warnw("catalog_featured_cache_write_failed", "error", err)
		}
	}
	return products, nil
}

func (s *ProductService) clampPageSize(pageSize int) int {
	defaultSize := s.cfg.PageSizeDefault
	if defaultSize <= 0 {
		defaultSize = 20
	}
	maxSize := s.cfg.PageSizeMax
	if maxSize <= 0 {
		maxSize = 100
	}
	if pageSize <= 0 {
		return defaultSize
	}
	if pageSize > maxSize {
		return maxSize
	}
	return pageSize
}

func normalizeSortKey(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case constants.ProductSortPriceLow:
		return constants.ProductSortPriceLow
	case constants.ProductSortPriceHigh:
		return constants.ProductSortPriceHigh
	case constants.ProductSortRating:
		return constants.ProductSortRating
	case constants.ProductSortName:
		return constants.ProductSortName
	default:
		return constants.ProductSortNewest
	}
}
