package models

// Folder is a row in the directory tree. FullPath carries the disk-scoped path
// (diskID::/a/b/) and is unique within a drive. ParentFolderID is nil only for
// a disk's root folder.
type Folder struct {
	BaseModel
	DriveID                   string  `gorm:"type:uuid;not null;index;uniqueIndex:ux_folders_drive_path" json:"drive_id"`
	DiskID                    string  `gorm:"type:uuid;not null;index" json:"disk_id"`
	Name                      string  `gorm:"type:varchar(255)" json:"name"`
	ParentFolderID            *string `gorm:"type:uuid;index" json:"parent_folder_id,omitempty"`
	FullPath                  string  `gorm:"type:text;not null;uniqueIndex:ux_folders_drive_path" json:"full_path"`
	CreatedBy                 string  `gorm:"type:uuid" json:"created_by"`
	LastUpdatedBy             string  `gorm:"type:uuid" json:"last_updated_by"`
	Deleted                   bool    `gorm:"index" json:"deleted"`
	RestoreTrashPriorFolderID *string `gorm:"type:uuid" json:"restore_trash_prior_folder_id,omitempty"`
	HasSovereignPermissions   bool    `json:"has_sovereign_permissions"`
	ShortcutTo                *string `gorm:"type:uuid" json:"shortcut_to,omitempty"`
	Notes                     string  `gorm:"type:text" json:"notes,omitempty"`
	ExternalID                *string `gorm:"type:varchar(255);index" json:"external_id,omitempty"`
	ExternalPayload           string  `gorm:"type:text" json:"external_payload,omitempty"`
}
