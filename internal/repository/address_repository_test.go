package repository

import (
	"errors"
	"testing"

	"github.com/vastra-store/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAddressRepositoryTest(t *testing.T) *GormAddressRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Address{}); err != nil {
		t.Fatalf("migrate address failed: %v", err)
	}
	return NewAddressRepository(db)
}

func testAddress(userID uint, isDefault bool) *models.Address {
	return &models.Address{
		UserID:    userID,
		Name:      "Asha Rao",
		Phone:     "9876543210",
		Line1:     "14 MG Road",
		City:      "Bengaluru",
		State:     "Karnataka",
		Pincode:   "560001",
		IsDefault: isDefault,
	}
}

func TestSetDefaultClearsPreviousDefault(t *testing.T) {
	repo := setupAddressRepositoryTest(t)
	const userID = 501

	first := testAddress(userID, true)
	if err := repo.Create(first); err != nil {
		t.Fatalf("create first failed: %v", err)
	}
	second := testAddress(userID, false)
	if err := repo.Create(second); err != nil {
		t.Fatalf("create second failed: %v", err)
	}

	if err := repo.SetDefault(second.ID, userID); err != nil {
		t.Fatalf("set default failed: %v", err)
	}

	addresses, err := repo.ListByUser(userID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	defaults := 0
	for _, a := range addresses {
		if a.IsDefault {
			defaults++
			if a.ID != second.ID {
				t.Fatalf("default want id %d got %d", second.ID, a.ID)
			}
		}
	}
	if defaults != 1 {
		t.Fatalf("defaults want 1 got %d", defaults)
	}
}

func TestCreateDefaultDemotesExisting(t *testing.T) {
	repo := setupAddressRepositoryTest(t)
	const userID = 502

	first := testAddress(userID, true)
	if err := repo.Create(first); err != nil {
		t.Fatalf("create first failed: %v", err)
	}
	second := testAddress(userID, true)
	if err := repo.Create(second); err != nil {
		t.Fatalf("create second failed: %v", err)
	}

	got, err := repo.GetByIDAndUser(first.ID, userID)
	if err != nil {
		t.Fatalf("get first failed: %v", err)
	}
	if got.IsDefault {
		t.Fatalf("first address should have been demoted")
	}
}

func TestSetDefaultOnForeignAddressFails(t *testing.T) {
	repo := setupAddressRepositoryTest(t)

	mine := testAddress(503, false)
	if err := repo.Create(mine); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	err := repo.SetDefault(mine.ID, 504)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record not found, got %v", err)
	}
}
