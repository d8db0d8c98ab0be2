package public

import (
	"errors"
	"strconv"

	"github.com/vastra-store/internal/http/response"
	"github.com/vastra-store/internal/service"

	"github.com/gin-gonic/gin"
)

// AddressRequest is the create/update payload for one address.
type AddressRequest struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Line1     string `json:"line1" binding:"required"`
	Line2     string `json:"line2"`
	City      string `json:"city" binding:"required"`
	State     string `json:"state" binding:"required"`
	Pincode   string `json:"pincode" binding:"required"`
	IsDefault bool   `json:"is_default"`
}

func (r AddressRequest) toInput() service.AddressInput {
	return service.AddressInput{
		Name:      r.Name,
		Phone:     r.Phone,
		Line1:     r.Line1,
		Line2:     r.Line2,
		City:      r.City,
		State:     r.State,
		Pincode:   r.Pincode,
		IsDefault: r.IsDefault,
	}
}

func addressIDParam(c *gin.Context) (uint, bool) {
	rawID := c.Param("id")
	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "address id is invalid", nil)
		return 0, false
	}
	return uint(id), true
}

// ListAddresses returns the address book, default first.
func (h *Handler) ListAddresses(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	addresses, err := h.AddressService.ListByUser(uid)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load addresses", err)
		return
	}

	response.Success(c, gin.H{"addresses": addresses})
}

// CreateAddress adds an address to the book.
func (h *Handler) CreateAddress(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	address, err := h.AddressService.Create(uid, req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrAddressInvalid) {
			respondError(c, response.CodeBadRequest, "address is invalid", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to save the address", err)
		return
	}

	response.Success(c, address)
}

// UpdateAddress rewrites an owned address.
func (h *Handler) UpdateAddress(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := addressIDParam(c)
	if !ok {
		return
	}
	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	address, err := h.AddressService.Update(id, uid, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "address not found", nil)
		case errors.Is(err, service.ErrAddressInvalid):
			respondError(c, response.CodeBadRequest, "address is invalid", nil)
		default:
			respondError(c, response.CodeInternal, "failed to save the address", err)
		}
		return
	}

	response.Success(c, address)
}

// DeleteAddress removes an owned address.
func (h *Handler) DeleteAddress(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := addressIDParam(c)
	if !ok {
		return
	}

	if err := h.AddressService.Delete(id, uid); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "address not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to delete the address", err)
		return
	}

	response.Success(c, gin.H{"deleted": true})
}

// SetDefaultAddress marks an owned address as the default.
func (h *Handler) SetDefaultAddress(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := addressIDParam(c)
	if !ok {
		return
	}

	if err := h.AddressService.SetDefault(id, uid); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "address not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to set the default address", err)
		return
	}

	response.Success(c, gin.H{"updated": true})
}
