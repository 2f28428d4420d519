package models

import "time"

type UploadStatus string

const (
	UploadStatusQueued    UploadStatus = "queued"
	UploadStatusCompleted UploadStatus = "completed"
)

// File is a leaf in the directory tree. VersionID always points at the current
// FileVersion row whose FileID is this file's id.
type File struct {
	BaseModel
	DriveID                   string       `gorm:"type:uuid;not null;index;uniqueIndex:ux_files_drive_path" json:"drive_id"`
	DiskID                    string       `gorm:"type:uuid;not null;index" json:"disk_id"`
	Name                      string       `gorm:"type:varchar(255);not null" json:"name"`
	ParentFolderID            *string      `gorm:"type:uuid;index" json:"parent_folder_id,omitempty"`
	VersionID                 string       `gorm:"type:uuid" json:"version_id"`
	Extension                 string       `gorm:"type:varchar(50)" json:"extension,omitempty"`
	FullPath                  string       `gorm:"type:text;not null;uniqueIndex:ux_files_drive_path" json:"full_path"`
	FileSize                  int64        `gorm:"default:0" json:"file_size"`
	RawURL                    string       `gorm:"type:text" json:"raw_url,omitempty"`
	UploadStatus              UploadStatus `gorm:"type:varchar(20);not null" json:"upload_status"`
	CreatedBy                 string       `gorm:"type:uuid" json:"created_by"`
	LastUpdatedBy             string       `gorm:"type:uuid" json:"last_updated_by"`
	Deleted                   bool         `gorm:"index" json:"deleted"`
	RestoreTrashPriorFolderID *string      `gorm:"type:uuid" json:"restore_trash_prior_folder_id,omitempty"`
	ExpiresAt                 *time.Time   `gorm:"index" json:"expires_at,omitempty"`
	HasSovereignPermissions   bool         `json:"has_sovereign_permissions"`
	ShortcutTo                *string      `gorm:"type:uuid" json:"shortcut_to,omitempty"`
	Notes                     string       `gorm:"type:text" json:"notes,omitempty"`
	ExternalID                *string      `gorm:"type:varchar(255);index" json:"external_id,omitempty"`
	ExternalPayload           string       `gorm:"type:text" json:"external_payload,omitempty"`
}

// ObjectKey is the key of the backing object in the disk's bucket. It is
// derived from the immutable file and version ids, so renames and moves never
// touch object storage.
func (f *File) ObjectKey() string {
	if f.Extension != "" {
		return f.DriveID + "/" + f.ID + "/" + f.VersionID + "." + f.Extension
	}
	return f.DriveID + "/" + f.ID + "/" + f.VersionID
}
