package models

type PermissionType string

const (
	PermissionView   PermissionType = "view"
	PermissionUpload PermissionType = "upload"
	PermissionEdit   PermissionType = "edit"
	PermissionDelete PermissionType = "delete"
	PermissionInvite PermissionType = "invite"
	PermissionManage PermissionType = "manage"
)

func AllPermissionTypes() []PermissionType {
	return []PermissionType{
		PermissionView,
		PermissionUpload,
		PermissionEdit,
		PermissionDelete,
		PermissionInvite,
		PermissionManage,
	}
}

// PermissionGrant gives one user one capability on one resource. ResourcePath
// caches the resource's full path so inheritable grants can be matched by
// prefix; the mover rewrites it when the resource moves.
type PermissionGrant struct {
	BaseModel
	DriveID        string         `gorm:"type:uuid;not null;index" json:"drive_id"`
	ResourceID     string         `gorm:"type:uuid;not null;index" json:"resource_id"`
	ResourcePath   string         `gorm:"type:text;not null" json:"resource_path"`
	GranteeUserID  string         `gorm:"type:uuid;not null;index" json:"grantee_user_id"`
	PermissionType PermissionType `gorm:"type:varchar(20);not null" json:"permission_type"`
	Inheritable    bool           `json:"inheritable"`
}
