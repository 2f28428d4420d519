package models

type Drive struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);not null;unique" json:"name"`
	OwnerUserID string `gorm:"type:uuid;not null;index" json:"owner_user_id"`
}
