package repository

import (
	"testing"

	"github.com/vastra-store/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCartRepositoryTest(t *testing.T) (*GormCartRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.CartItem{}); err != nil {
		t.Fatalf("migrate cart failed: %v", err)
	}
	return NewCartRepository(db), db
}

func TestAddQuantityMergesIntoOneLine(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)
	const userID, productID = 101, 201

	if err := repo.AddQuantity(userID, productID, 2); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if err := repo.AddQuantity(userID, productID, 3); err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	var items []models.CartItem
	if err := db.Where("user_id = ?", userID).Find(&items).Error; err != nil {
		t.Fatalf("load cart failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("cart lines want 1 got %d", len(items))
	}
	if items[0].Quantity != 5 {
		t.Fatalf("quantity want 5 got %d", items[0].Quantity)
	}
}

func TestSetQuantityReportsMissingLine(t *testing.T) {
	repo, _ := setupCartRepositoryTest(t)
	const userID, productID = 102, 202

	affected, err := repo.SetQuantity(userID, productID, 4)
	if err != nil {
		t.Fatalf("set quantity failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("missing line affected want 0 got %d", affected)
	}

	if err := repo.AddQuantity(userID, productID, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	affected, err = repo.SetQuantity(userID, productID, 4)
	if err != nil {
		t.Fatalf("set quantity failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("existing line affected want 1 got %d", affected)
	}
}

func TestRemoveAndReAddAfterClear(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)
	const userID = 103

	if err := repo.AddQuantity(userID, 301, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := repo.AddQuantity(userID, 302, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if err := repo.DeleteByUserAndProduct(userID, 301); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	// deleting again is a no-op
	if err := repo.DeleteByUserAndProduct(userID, 301); err != nil {
		t.Fatalf("repeat delete failed: %v", err)
	}

	if err := repo.ClearByUser(userID); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	// adding after a clear must start a fresh line, not resurrect one
	if err := repo.AddQuantity(userID, 302, 1); err != nil {
		t.Fatalf("re-add failed: %v", err)
	}
	var items []models.CartItem
	if err := db.Where("user_id = ?", userID).Find(&items).Error; err != nil {
		t.Fatalf("load cart failed: %v", err)
	}
	if len(items) != 1 || items[0].Quantity != 1 {
		t.Fatalf("cart after re-add want single qty 1 line, got %+v", items)
	}
}
