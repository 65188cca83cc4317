package model

import "time"

// Photo phases within a project.
const (
	PhotoBefore   = "before"
	PhotoProgress = "progress"
	PhotoAfter    = "after"
)

// Photo is the metadata record for one uploaded project photo. The image
// itself lives on disk under the configured storage directory, named by
// StoredName.
type Photo struct {
	ID           string    `json:"id"`
	ProjectID    string    `json:"projectId"`
	Caption      string    `json:"caption"`
	Phase        string    `json:"phase"`
	StoredName   string    `json:"-"`
	OriginalName string    `json:"originalName"`
	ContentType  string    `json:"contentType"`
	SizeBytes    int64     `json:"sizeBytes"`
	CreatedAt    time.Time `json:"createdAt"`
}
