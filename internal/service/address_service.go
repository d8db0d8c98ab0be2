package service

import (
	"errors"
	"strings"
	"time"

	"github.com/vastra-store/internal/models"
	"github.com/vastra-store/internal/repository"

	"gorm.io/gorm"
)

// AddressService manages the per-user address book.
type AddressService struct {
	repo repository.AddressRepository
}

// NewAddressService creates the address service.
func NewAddressService(repo repository.AddressRepository) *AddressService {
	return &AddressService{repo: repo}
}

// AddressInput is the create/update payload.
type AddressInput struct {
	Name      string
	Phone     string
	Line1     string
	Line2     string
	City      string
	State     string
	Pincode   string
	IsDefault bool
}

// ListByUser returns the address book, default first.
func (s *AddressService) ListByUser(userID uint) ([]models.Address, error) {
	if userID == 0 {
		return nil, ErrNotFound
	}
	return s.repo.ListByUser(userID)
}

// GetByIDAndUser fetches a single owned address.
func (s *AddressService) GetByIDAndUser(id, userID uint) (*models.Address, error) {
	if id == 0 || userID == 0 {
		return nil, ErrNotFound
	}
	address, err := s.repo.GetByIDAndUser(id, userID)
	if err != nil {
		return nil, err
	}
	if address == nil {
		return nil, ErrNotFound
	}
	return address, nil
}

// Create validates and stores a new address.
func (s *AddressService) Create(userID uint, input AddressInput) (*models.Address, error) {
	if userID == 0 {
		return nil, ErrNotFound
	}
	address, err := buildAddress(userID, input)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(address); err != nil {
		return nil, err
	}
	return address, nil
}

// Update replaces an owned address's fields.
func (s *AddressService) Update(id, userID uint, input AddressInput) (*models.Address, error) {
	existing, err := s.GetByIDAndUser(id, userID)
	if err != nil {
		return nil, err
	}
	validated, err := buildAddress(userID, input)
	if err != nil {
		return nil, err
	}

	existing.Name = validated.Name
	existing.Phone = validated.Phone
	existing.Line1 = validated.Line1
	existing.Line2 = validated.Line2
	existing.City = validated.City
	existing.State = validated.State
	existing.Pincode = validated.Pincode
	existing.UpdatedAt = time.Now()
	if err := s.repo.Update(existing); err != nil {
		return nil, err
	}

	if input.IsDefault && !existing.IsDefault {
		if err := s.repo.SetDefault(existing.ID, userID); err != nil {
			return nil, err
		}
		existing.IsDefault = true
	}
	return existing, nil
}

// Delete removes an owned address.
func (s *AddressService) Delete(id, userID uint) error {
	if id == 0 || userID == 0 {
		return ErrNotFound
	}
	if _, err := s.GetByIDAndUser(id, userID); err != nil {
		return err
	}
	return s.repo.Delete(id, userID)
}

// SetDefault marks one owned address as the default.
func (s *AddressService) SetDefault(id, userID uint) error {
	if id == 0 || userID == 0 {
		return ErrNotFound
	}
	if err := s.repo.SetDefault(id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func buildAddress(userID uint, input AddressInput) (*models.Address, error) {
	name := strings.TrimSpace(input.Name)
	phone := strings.TrimSpace(input.Phone)
	line1 := strings.TrimSpace(input.Line1)
	city := strings.TrimSpace(input.City)
	state := strings.TrimSpace(input.State)
	pincode := strings.TrimSpace(input.Pincode)

	if name == "" || phone == "" || line1 == "" || city == "" || state == "" {
		return nil, ErrAddressInvalid
	}
	if !isValidPincode(pincode) {
		return nil, ErrAddressInvalid
	}
	if !isValidPhone(phone) {
		return nil, ErrAddressInvalid
	}

	now := time.Now()
	return &models.Address{
		UserID:    userID,
		Name:      name,
		Phone:     phone,
		Line1:     line1,
		Line2:     strings.TrimSpace(input.Line2),
		City:      city,
		State:     state,
		Pincode:   pincode,
		IsDefault: input.IsDefault,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// isValidPincode accepts Indian 6-digit postal codes not starting with 0.
func isValidPincode(pincode string) bool {
	if len(pincode) != 6 {
		return false
	}
	if pincode[0] == '0' {
		return false
	}
	for _, r := range pincode {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isValidPhone(phone string) bool {
	digits := 0
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' || r == ' ' || r == '-':
		default:
			return false
		}
	}
	return digits >= 10 && digits <= 13
}
