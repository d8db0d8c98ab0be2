package public

import (
	"errors"
	"strconv"

	"github.com/vastra-store/internal/http/response"
	"github.com/vastra-store/internal/repository"
	"github.com/vastra-store/internal/service"

	"github.com/gin-gonic/gin"
)

// ReviewRequest is the review submission payload.
type ReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

func productIDParam(c *gin.Context) (uint, bool) {
	rawID := c.Param("product_id")
	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "product id is invalid", nil)
		return 0, false
	}
	return uint(id), true
}

// GetProductReviews lists a product's reviews, newest first.
func (h *Handler) GetProductReviews(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	reviews, total, err := h.ReviewService.ListByProduct(repository.ReviewListFilter{
		Page:      page,
		PageSize:  pageSize,
		ProductID: productID,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load reviews", err)
		return
	}

	totalPage := (total + int64(pageSize) - 1) / int64(pageSize)
	response.SuccessWithPage(c, gin.H{"reviews": reviews}, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: totalPage,
	})
}

// SubmitReview upserts the signed-in user's review for a product.
func (h *Handler) SubmitReview(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	productID, ok := productIDParam(c)
	if !ok {
		return
	}
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	review, err := h.ReviewService.Submit(service.SubmitReviewInput{
		UserID:    uid,
		ProductID: productID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReviewInvalid):
			respondError(c, response.CodeBadRequest, "review is invalid", nil)
		case errors.Is(err, service.ErrProductNotAvailable):
			respondError(c, response.CodeBadRequest, "product is not available", nil)
		default:
			respondError(c, response.CodeInternal, "failed to save the review", err)
		}
		return
	}

	response.Success(c, review)
}
