package repository

import (
	"time"

	"github.com/vastra-store/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReviewRepository is the review data access surface.
type ReviewRepository interface {
	ListByProduct(filter ReviewListFilter) ([]models.Review, int64, error)
	Upsert(review *models.Review) error
	Aggregate(productID uint) (avg float64, count int64, err error)
	WithTx(tx *gorm.DB) *GormReviewRepository
}

// GormReviewRepository is the GORM implementation.
type GormReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository builds the review repository.
func NewReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// WithTx binds a transaction.
func (r *GormReviewRepository) WithTx(tx *gorm.DB) *GormReviewRepository {
	if tx == nil {
		return r
	}
	return &GormReviewRepository{db: tx}
}

// ListByProduct returns a page of reviews, newest first.
func (r *GormReviewRepository) ListByProduct(filter ReviewListFilter) ([]models.Review, int64, error) {
	query := r.db.Model(&models.Review{}).Where("product_id = ?", filter.ProductID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var reviews []models.Review
	if err := query.Preload("User").Order("id desc").Find(&reviews).Error; err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

// Upsert writes the review, replacing the user's earlier one for the
// same product.
func (r *GormReviewRepository) Upsert(review *models.Review) error {
	if review == nil {
		return nil
	}
	now := time.Now()
	review.CreatedAt = now
	review.UpdatedAt = now
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"rating":     review.Rating,
			"comment":    review.Comment,
			"updated_at": now,
		}),
	}).Create(review).Error
}

// Aggregate recomputes the product rating average and count.
func (r *GormReviewRepository) Aggregate(productID uint) (float64, int64, error) {
	var row struct {
		Avg   float64
		Count int64
	}
	if err := r.db.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("product_id = ?", productID).
		Take(&row).Error; err != nil {
		return 0, 0, err
	}
	return row.Avg, row.Count, nil
}
