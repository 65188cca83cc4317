package request

// CreateVendorRequest represents the request body for creating a vendor.
type CreateVendorRequest struct {
	Name        string `json:"name"`
	Company     string `json:"company"`
	Trade       string `json:"trade"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	TaxID       string `json:"taxId"`
	IsPreferred bool   `json:"isPreferred"`
}

// UpdateVendorRequest represents a partial update of a vendor.
type UpdateVendorRequest struct {
	Name        *string `json:"name,omitempty"`
	Company     *string `json:"company,omitempty"`
	Trade       *string `json:"trade,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
	Address     *string `json:"address,omitempty"`
	TaxID       *string `json:"taxId,omitempty"`
	IsPreferred *bool   `json:"isPreferred,omitempty"`
}
