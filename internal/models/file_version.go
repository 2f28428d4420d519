package models

// FileVersion is one link in a file's append-only history. The chain formed by
// PriorVersionID/NextVersionID is a single linked list per file, strictly
// increasing in FileVersion.
type FileVersion struct {
	BaseModel
	DriveID        string  `gorm:"type:uuid;not null;index" json:"drive_id"`
	FileID         string  `gorm:"type:uuid;not null;index" json:"file_id"`
	Name           string  `gorm:"type:varchar(255);not null" json:"name"`
	FileVersion    int     `gorm:"not null" json:"file_version"`
	PriorVersionID *string `gorm:"type:uuid" json:"prior_version_id,omitempty"`
	NextVersionID  *string `gorm:"type:uuid" json:"next_version_id,omitempty"`
	Extension      string  `gorm:"type:varchar(50)" json:"extension,omitempty"`
	FileSize       int64   `gorm:"default:0" json:"file_size"`
	RawURL         string  `gorm:"type:text" json:"raw_url,omitempty"`
	DiskID         string  `gorm:"type:uuid" json:"disk_id"`
	DiskType       string  `gorm:"type:varchar(50)" json:"disk_type,omitempty"`
	CreatedBy      string  `gorm:"type:uuid" json:"created_by"`
	Notes          string  `gorm:"type:text" json:"notes,omitempty"`
}
