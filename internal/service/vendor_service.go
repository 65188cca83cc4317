package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/mdejong/Flip-Budget-Backend/internal/api/request"
	"github.com/mdejong/Flip-Budget-Backend/internal/model"
	"github.com/mdejong/Flip-Budget-Backend/internal/repository"
)

// VendorService handles vendor directory business logic operations.
type VendorService struct {
	vendorRepo *repository.VendorRepository
}

// NewVendorService creates a new VendorService with the provided repository dependency.
func NewVendorService(vendorRepo *repository.VendorRepository) *VendorService {
	return &VendorService{vendorRepo: vendorRepo}
}

// GetVendors retrieves all vendors.
func (s *VendorService) GetVendors() ([]model.Vendor, error) {
	return s.vendorRepo.GetVendors()
}

// GetVendor retrieves a single vendor by ID.
func (s *VendorService) GetVendor(vendorID string) (model.Vendor, error) {
	return s.vendorRepo.GetVendorOnID(vendorID)
}

// CreateVendor adds a vendor to the directory.
func (s *VendorService) CreateVendor(req request.CreateVendorRequest) (model.Vendor, error) {
	vendor := model.Vendor{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Company:     req.Company,
		Trade:       req.Trade,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		TaxID:       req.TaxID,
		IsPreferred: req.IsPreferred,
	}

	if err := s.vendorRepo.CreateVendor(vendor); err != nil {
		return model.Vendor{}, err
	}

	vendor.CreatedAt = time.Now().UTC()

	return vendor, nil
}

// UpdateVendor applies a partial update to a vendor.
func (s *VendorService) UpdateVendor(vendorID string, req request.UpdateVendorRequest) (model.Vendor, error) {
	vendor, err := s.vendorRepo.GetVendorOnID(vendorID)
	if err != nil {
		return model.Vendor{}, err
	}

	if req.Name != nil {
		vendor.Name = *req.Name
	}
	if req.Company != nil {
		vendor.Company = *req.Company
	}
	if req.Trade != nil {
		vendor.Trade = *req.Trade
	}
	if req.Phone != nil {
		vendor.Phone = *req.Phone
	}
	if req.Email != nil {
		vendor.Email = *req.Email
	}
	if req.Address != nil {
		vendor.Address = *req.Address
	}
	if req.TaxID != nil {
		vendor.TaxID = *req.TaxID
	}
	if req.IsPreferred != nil {
		vendor.IsPreferred = *req.IsPreferred
	}

	if err := s.vendorRepo.UpdateVendor(vendor); err != nil {
		return model.Vendor{}, err
	}

	return vendor, nil
}

// DeleteVendor removes a vendor. Draws referencing it keep their rows with
// the vendor link cleared.
func (s *VendorService) DeleteVendor(vendorID string) error {
	return s.vendorRepo.DeleteVendor(vendorID)
}
