package models

type DiskType string

const (
	DiskTypeS3       DiskType = "s3"
	DiskTypeWeb3     DiskType = "web3"
	DiskTypeCanister DiskType = "canister"
)

// Disk is one storage backend owned by a drive. Root and trash folder ids are
// filled in by the structure bootstrapper.
type Disk struct {
	BaseModel
	DriveID           string   `gorm:"type:uuid;not null;index" json:"drive_id"`
	Name              string   `gorm:"type:varchar(255);not null" json:"name"`
	Type              DiskType `gorm:"type:varchar(50);not null" json:"type"`
	Endpoint          string   `gorm:"type:varchar(255)" json:"endpoint,omitempty"`
	Bucket            string   `gorm:"type:varchar(255)" json:"bucket,omitempty"`
	Region            string   `gorm:"type:varchar(100)" json:"region,omitempty"`
	AccessKey         string   `gorm:"type:varchar(255)" json:"-"`
	SecretKey         string   `gorm:"type:varchar(255)" json:"-"`
	UseSSL            bool     `json:"use_ssl"`
	RootFolderID      *string  `gorm:"type:uuid" json:"root_folder_id,omitempty"`
	TrashFolderID     *string  `gorm:"type:uuid" json:"trash_folder_id,omitempty"`
	AutoExpireSeconds *int64   `json:"auto_expire_seconds,omitempty"`
}
