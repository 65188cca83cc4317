package model

import "time"

// Vendor is one entry in the vendor directory. TaxID is held in plaintext
// on the model but encrypted at rest by the repository layer.
type Vendor struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Company     string    `json:"company"`
	Trade       string    `json:"trade"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	TaxID       string    `json:"taxId"`
	IsPreferred bool      `json:"isPreferred"`
	CreatedAt   time.Time `json:"createdAt"`
}
