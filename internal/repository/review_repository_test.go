package repository

import (
	"testing"

	"github.com/vastra-store/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupReviewRepositoryTest(t *testing.T) *GormReviewRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Review{}, &models.User{}); err != nil {
		t.Fatalf("migrate review failed: %v", err)
	}
	return NewReviewRepository(db)
}

func TestUpsertReplacesEarlierReview(t *testing.T) {
	repo := setupReviewRepositoryTest(t)
	const userID, productID = 601, 701

	if err := repo.Upsert(&models.Review{UserID: userID, ProductID: productID, Rating: 2, Comment: "loose stitching"}); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	if err := repo.Upsert(&models.Review{UserID: userID, ProductID: productID, Rating: 4, Comment: "better after exchange"}); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	reviews, total, err := repo.ListByProduct(ReviewListFilter{Page: 1, PageSize: 10, ProductID: productID})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("total want 1 got %d", total)
	}
	if reviews[0].Rating != 4 {
		t.Fatalf("rating want 4 got %d", reviews[0].Rating)
	}
}

func TestAggregateAveragesRatings(t *testing.T) {
	repo := setupReviewRepositoryTest(t)
	const productID = 702

	if err := repo.Upsert(&models.Review{UserID: 611, ProductID: productID, Rating: 5}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if err := repo.Upsert(&models.Review{UserID: 612, ProductID: productID, Rating: 2}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	avg, count, err := repo.Aggregate(productID)
	if err != nil {
		t.Fatalf("aggregate failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("count want 2 got %d", count)
	}
	if avg != 3.5 {
		t.Fatalf("avg want 3.5 got %v", avg)
	}
}

func TestAggregateEmptyProduct(t *testing.T) {
	repo := setupReviewRepositoryTest(t)

	avg, count, err := repo.Aggregate(703)
	if err != nil {
		t.Fatalf("aggregate failed: %v", err)
	}
	if count != 0 || avg != 0 {
		t.Fatalf("empty aggregate want 0/0 got %v/%d", avg, count)
	}
}
