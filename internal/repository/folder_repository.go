package repository

import (
	"Shelved/internal/models"
	"errors"

	"gorm.io/gorm"
)

type FolderRepository interface {
	GenericRepository[models.Folder]
	// WithTx returns a repository bound to an open transaction handle.
	WithTx(tx *gorm.DB) FolderRepository
	FindByIDInDrive(driveID, id string) (*models.Folder, error)
	FindByPath(driveID, fullPath string) (*models.Folder, error)
	ListByParent(driveID, parentID string, limit, offset int) ([]models.Folder, error)
	CountByParent(driveID, parentID string) (int64, error)
	HardDelete(id string) error
}

type FolderRepositoryImpl struct {
	GenericRepository[models.Folder]
	db *gorm.DB
}

func NewFolderRepository(db *gorm.DB) FolderRepository {
	return &FolderRepositoryImpl{
		GenericRepository: NewGenericRepository[models.Folder](db),
		db:                db,
	}
}

func (r *FolderRepositoryImpl) WithTx(tx *gorm.DB) FolderRepository {
	return NewFolderRepository(tx)
}

func (r *FolderRepositoryImpl) FindByIDInDrive(driveID, id string) (*models.Folder, error) {
	var folder models.Folder
	err := r.db.Where("id = ? AND drive_id = ?", id, driveID).First(&folder).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &folder, nil
}

func (r *FolderRepositoryImpl) FindByPath(driveID, fullPath string) (*models.Folder, error) {
	var folder models.Folder
	err := r.db.Where("drive_id = ? AND full_path = ?", driveID, fullPath).First(&folder).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &folder, nil
}

func (r *FolderRepositoryImpl) ListByParent(driveID, parentID string, limit, offset int) ([]models.Folder, error) {
	var folders []models.Folder
	query := r.db.Where("drive_id = ? AND parent_folder_id = ?", driveID, parentID).Order("name")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&folders).Error; err != nil {
		return nil, err
	}
	return folders, nil
}

func (r *FolderRepositoryImpl) CountByParent(driveID, parentID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Folder{}).
		Where("drive_id = ? AND parent_folder_id = ?", driveID, parentID).
		Count(&count).Error
	return count, err
}

func (r *FolderRepositoryImpl) HardDelete(id string) error {
	return r.db.Unscoped().Delete(&models.Folder{}, "id = ?", id).Error
}
