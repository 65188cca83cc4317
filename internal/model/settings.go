package model

import (
	"time"

	"github.com/mdejong/Flip-Budget-Backend/internal/dealcalc"
)

// SettingsRecord is one user's persisted calculation profile. Each user has
// exactly one active profile; a default profile is materialized on first
// read.
type SettingsRecord struct {
	ID        string            `json:"id"`
	UserID    string            `json:"userId"`
	Profile   dealcalc.Settings `json:"profile"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}
