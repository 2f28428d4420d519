package repository

import (
	"Shelved/internal/models"
	"errors"

	"gorm.io/gorm"
)

type FileVersionRepository interface {
	GenericRepository[models.FileVersion]
	WithTx(tx *gorm.DB) FileVersionRepository
	FindByIDInDrive(driveID, id string) (*models.FileVersion, error)
	ListByFile(driveID, fileID string) ([]models.FileVersion, error)
	DeleteByFile(fileID string) error
}

type FileVersionRepositoryImpl struct {
	GenericRepository[models.FileVersion]
	db *gorm.DB
}

func NewFileVersionRepository(db *gorm.DB) FileVersionRepository {
	return &FileVersionRepositoryImpl{
		GenericRepository: NewGenericRepository[models.FileVersion](db),
		db:                db,
	}
}

func (r *FileVersionRepositoryImpl) WithTx(tx *gorm.DB) FileVersionRepository {
	return NewFileVersionRepository(tx)
}

func (r *FileVersionRepositoryImpl) FindByIDInDrive(driveID, id string) (*models.FileVersion, error) {
	var version models.FileVersion
	err := r.db.Where("id = ? AND drive_id = ?", id, driveID).First(&version).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &version, nil
}

func (r *FileVersionRepositoryImpl) ListByFile(driveID, fileID string) ([]models.FileVersion, error) {
	var versions []models.FileVersion
	err := r.db.Where("drive_id = ? AND file_id = ?", driveID, fileID).
		Order("file_version").Find(&versions).Error
	if err != nil {
		return nil, err
	}
	return versions, nil
}

func (r *FileVersionRepositoryImpl) DeleteByFile(fileID string) error {
	return r.db.Unscoped().Delete(&models.FileVersion{}, "file_id = ?", fileID).Error
}
