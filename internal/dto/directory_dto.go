package dto

import "time"

type FolderGetDTO struct {
	ID                      string    `json:"id"`
	DriveID                 string    `json:"drive_id"`
	DiskID                  string    `json:"disk_id"`
	Name                    string    `json:"name"`
	ParentFolderID          *string   `json:"parent_folder_id,omitempty"`
	FullPath                string    `json:"full_path"`
	DisplayPath             string    `json:"display_path"`
	Deleted                 bool      `json:"deleted"`
	HasSovereignPermissions bool      `json:"has_sovereign_permissions"`
	Notes                   string    `json:"notes,omitempty"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

type FileGetDTO struct {
	ID             string     `json:"id"`
	DriveID        string     `json:"drive_id"`
	DiskID         string     `json:"disk_id"`
	Name           string     `json:"name"`
	ParentFolderID *string    `json:"parent_folder_id,omitempty"`
	FullPath       string     `json:"full_path"`
	DisplayPath    string     `json:"display_path"`
	Extension      string     `json:"extension,omitempty"`
	FileSize       int64      `json:"file_size"`
	VersionID      string     `json:"version_id"`
	UploadStatus   string     `json:"upload_status"`
	Deleted        bool       `json:"deleted"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type Breadcrumb struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
}

type DirectoryListingDTO struct {
	Folders      []FolderGetDTO `json:"folders"`
	Files        []FileGetDTO   `json:"files"`
	TotalFolders int64          `json:"total_folders"`
	TotalFiles   int64          `json:"total_files"`
	NextCursor   string         `json:"next_cursor,omitempty"`
	Breadcrumbs  []Breadcrumb   `json:"breadcrumbs"`
}

type RestoreResultDTO struct {
	RestoredFolders []FolderGetDTO `json:"restored_folders"`
	RestoredFiles   []FileGetDTO   `json:"restored_files"`
}
