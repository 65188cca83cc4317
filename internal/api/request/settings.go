package request

import "github.com/mdejong/Flip-Budget-Backend/internal/dealcalc"

// UpdateSettingsRequest replaces the caller's calculation profile.
type UpdateSettingsRequest struct {
	Profile dealcalc.Settings `json:"profile"`
}

// PreviewRequest computes a deal report from ad-hoc inputs and an optional
// profile override, without touching any stored project. Used by the
// settings page to preview the effect of a profile before saving it.
type PreviewRequest struct {
	Inputs  dealcalc.Inputs    `json:"inputs"`
	Profile *dealcalc.Settings `json:"profile,omitempty"`
}
