package repository

import (
	"database/sql"
	"fmt"

	apperrors "github.com/mdejong/Flip-Budget-Backend/internal/errors"
	"github.com/mdejong/Flip-Budget-Backend/internal/model"
	"github.com/mdejong/Flip-Budget-Backend/internal/secrets"
)

// VendorRepository provides data access methods for the vendor table.
// Tax IDs pass through the secrets codec on the way in and out, so the
// column only ever holds fernet tokens when a key is configured.
type VendorRepository struct {
	db    *sql.DB
	codec *secrets.Codec
}

// NewVendorRepository creates a new VendorRepository with the provided
// database connection and secrets codec.
func NewVendorRepository(db *sql.DB, codec *secrets.Codec) *VendorRepository {
	return &VendorRepository{db: db, codec: codec}
}

const vendorColumns = `
	id, name, company, trade, phone, email, address, tax_id, is_preferred, created_at
`

// GetVendors retrieves all vendors ordered by name.
func (r *VendorRepository) GetVendors() ([]model.Vendor, error) {
	query := `
		SELECT ` + vendorColumns + `
		FROM vendor
		ORDER BY name
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query vendor table: %w", err)
	}
	defer rows.Close()

	vendors := []model.Vendor{}

	for rows.Next() {
		v, err := r.scanVendor(rows)
		if err != nil {
			return nil, err
		}
		vendors = append(vendors, v)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vendor table: %w", err)
	}

	return vendors, nil
}

// GetVendorOnID retrieves a single vendor by ID.
func (r *VendorRepository) GetVendorOnID(vendorID string) (model.Vendor, error) {
	query := `
		SELECT ` + vendorColumns + `
		FROM vendor
		WHERE id = ?
	`

	v, err := r.scanVendor(r.db.QueryRow(query, vendorID))
	if err == sql.ErrNoRows {
		return model.Vendor{}, apperrors.ErrVendorNotFound
	}
	if err != nil {
		return model.Vendor{}, err
	}

	return v, nil
}

// CreateVendor inserts a new vendor, encrypting the tax ID at rest.
func (r *VendorRepository) CreateVendor(v model.Vendor) error {
	taxID, err := r.codec.Encrypt(v.TaxID)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO vendor (id, name, company, trade, phone, email, address, tax_id, is_preferred)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		v.ID, v.Name, v.Company, v.Trade, v.Phone, v.Email, v.Address, taxID, v.IsPreferred,
	)
	if err != nil {
		return fmt.Errorf("failed to insert vendor: %w", err)
	}

	return nil
}

// UpdateVendor rewrites all mutable columns of a vendor.
func (r *VendorRepository) UpdateVendor(v model.Vendor) error {
	taxID, err := r.codec.Encrypt(v.TaxID)
	if err != nil {
		return err
	}

	query := `
		UPDATE vendor
		SET name = ?, company = ?, trade = ?, phone = ?, email = ?, address = ?,
		    tax_id = ?, is_preferred = ?
		WHERE id = ?
	`

	result, err := r.db.Exec(query,
		v.Name, v.Company, v.Trade, v.Phone, v.Email, v.Address, taxID, v.IsPreferred, v.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update vendor: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrVendorNotFound
	}

	return nil
}

// DeleteVendor removes a vendor. Draws referencing it keep their rows with
// vendor_id set to NULL.
func (r *VendorRepository) DeleteVendor(vendorID string) error {
	result, err := r.db.Exec("DELETE FROM vendor WHERE id = ?", vendorID)
	if err != nil {
		return fmt.Errorf("failed to delete vendor: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrVendorNotFound
	}

	return nil
}

func (r *VendorRepository) scanVendor(s scanner) (model.Vendor, error) {
	var v model.Vendor

	err := s.Scan(
		&v.ID,
		&v.Name,
		&v.Company,
		&v.Trade,
		&v.Phone,
		&v.Email,
		&v.Address,
		&v.TaxID,
		&v.IsPreferred,
		&v.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Vendor{}, err
	}
	if err != nil {
		return model.Vendor{}, fmt.Errorf("failed to scan vendor table results: %w", err)
	}

	v.TaxID = r.codec.Decrypt(v.TaxID)

	return v, nil
}
