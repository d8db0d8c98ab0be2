package service

import (
	"strings"
	"time"

	"github.com/vastra-store/internal/constants"
	"github.com/vastra-store/internal/models"
	"github.com/vastra-store/internal/repository"

	"gorm.io/gorm"
)

// ReviewService manages product reviews and keeps the per-product
// rating aggregate in step.
type ReviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
}

// NewReviewService creates the review service.
func NewReviewService(reviewRepo repository.ReviewRepository, productRepo repository.ProductRepository) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

// SubmitReviewInput is the review payload. A second submission from
// the same user replaces the earlier one.
type SubmitReviewInput struct {
	UserID    uint
	ProductID uint
	Rating    int
	Comment   string
}

// Submit upserts the user's review and recomputes the product rating
// inside one transaction.
func (s *ReviewService) Submit(input SubmitReviewInput) (*models.Review, error) {
	if input.UserID == 0 || input.ProductID == 0 {
		return nil, ErrReviewInvalid
	}
	if input.Rating < constants.ReviewRatingMin || input.Rating > constants.ReviewRatingMax {
		return nil, ErrReviewInvalid
	}

	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, ErrProductNotAvailable
	}

	now := time.Now()
	review := &models.Review{
		UserID:    input.UserID,
		ProductID: input.ProductID,
		Rating:    input.Rating,
		Comment:   strings.TrimSpace(input.Comment),
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.productRepo.Transaction(func(tx *gorm.DB) error {
		reviewRepo := s.reviewRepo.WithTx(tx)
		if err := reviewRepo.Upsert(review); err != nil {
			return err
		}
		avg, count, err := reviewRepo.Aggregate(input.ProductID)
		if err != nil {
			return err
		}
		return s.productRepo.WithTx(tx).UpdateRating(input.ProductID, avg, int(count))
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}

// ListByProduct pages through a product's reviews, newest first.
func (s *ReviewService) ListByProduct(filter repository.ReviewListFilter) ([]models.Review, int64, error) {
	if filter.ProductID == 0 {
		return nil, 0, ErrNotFound
	}
	return s.reviewRepo.ListByProduct(filter)
}
