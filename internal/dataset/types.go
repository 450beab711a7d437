package dataset

import "dashgen/internal/model"

// IngestInput carries one dataset profile into a session. Exactly one
// of Profile and ProfilePath must be set.
type IngestInput struct {
	SessionID   string
	ProfilePath string
	Profile     *model.DatasetProfile
}

// IngestOutput reports the session the profile was bound to.
type IngestOutput struct {
	SessionID   string
	DatasetName string
	Rows        int
	Columns     int
}
