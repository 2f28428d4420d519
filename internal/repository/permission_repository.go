package repository

import (
	"Shelved/internal/models"

	"gorm.io/gorm"
)

type PermissionRepository interface {
	GenericRepository[models.PermissionGrant]
	WithTx(tx *gorm.DB) PermissionRepository
	ListByResource(driveID, resourceID string) ([]models.PermissionGrant, error)
	ListInheritableByPathPrefix(driveID, path, granteeUserID string) ([]models.PermissionGrant, error)
	UpdateResourcePath(driveID, resourceID, newPath string) error
	DeleteByResource(resourceID string) error
}

type PermissionRepositoryImpl struct {
	GenericRepository[models.PermissionGrant]
	db *gorm.DB
}

func NewPermissionRepository(db *gorm.DB) PermissionRepository {
	return &PermissionRepositoryImpl{
		GenericRepository: NewGenericRepository[models.PermissionGrant](db),
		db:                db,
	}
}

func (r *PermissionRepositoryImpl) WithTx(tx *gorm.DB) PermissionRepository {
	return NewPermissionRepository(tx)
}

func (r *PermissionRepositoryImpl) ListByResource(driveID, resourceID string) ([]models.PermissionGrant, error) {
	var grants []models.PermissionGrant
	err := r.db.Where("drive_id = ? AND resource_id = ?", driveID, resourceID).Find(&grants).Error
	if err != nil {
		return nil, err
	}
	return grants, nil
}

// ListInheritableByPathPrefix finds inheritable grants for the user whose
// resource path is an ancestor of the given path.
func (r *PermissionRepositoryImpl) ListInheritableByPathPrefix(driveID, path, granteeUserID string) ([]models.PermissionGrant, error) {
	var grants []models.PermissionGrant
	err := r.db.Where(
		"drive_id = ? AND grantee_user_id = ? AND inheritable = ? AND ? LIKE resource_path || '%'",
		driveID, granteeUserID, true, path,
	).Find(&grants).Error
	if err != nil {
		return nil, err
	}
	return grants, nil
}

func (r *PermissionRepositoryImpl) UpdateResourcePath(driveID, resourceID, newPath string) error {
	return r.db.Model(&models.PermissionGrant{}).
		Where("drive_id = ? AND resource_id = ?", driveID, resourceID).
		Update("resource_path", newPath).Error
}

func (r *PermissionRepositoryImpl) DeleteByResource(resourceID string) error {
	return r.db.Unscoped().Delete(&models.PermissionGrant{}, "resource_id = ?", resourceID).Error
}
