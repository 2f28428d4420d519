package repository

import (
	"Shelved/internal/models"
	"errors"
	"time"

	"gorm.io/gorm"
)

type FileRepository interface {
	GenericRepository[models.File]
	WithTx(tx *gorm.DB) FileRepository
	FindByIDInDrive(driveID, id string) (*models.File, error)
	FindByPath(driveID, fullPath string) (*models.File, error)
	ListByParent(driveID, parentID string, limit, offset int) ([]models.File, error)
	CountByParent(driveID, parentID string) (int64, error)
	ListExpired(now time.Time) ([]models.File, error)
	HardDelete(id string) error
}

type FileRepositoryImpl struct {
	GenericRepository[models.File]
	db *gorm.DB
}

func NewFileRepository(db *gorm.DB) FileRepository {
	return &FileRepositoryImpl{
		GenericRepository: NewGenericRepository[models.File](db),
		db:                db,
	}
}

func (r *FileRepositoryImpl) WithTx(tx *gorm.DB) FileRepository {
	return NewFileRepository(tx)
}

func (r *FileRepositoryImpl) FindByIDInDrive(driveID, id string) (*models.File, error) {
	var file models.File
	err := r.db.Where("id = ? AND drive_id = ?", id, driveID).First(&file).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &file, nil
}

func (r *FileRepositoryImpl) FindByPath(driveID, fullPath string) (*models.File, error) {
	var file models.File
	err := r.db.Where("drive_id = ? AND full_path = ?", driveID, fullPath).First(&file).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &file, nil
}

func (r *FileRepositoryImpl) ListByParent(driveID, parentID string, limit, offset int) ([]models.File, error) {
	var files []models.File
	query := r.db.Where("drive_id = ? AND parent_folder_id = ?", driveID, parentID).Order("name")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

func (r *FileRepositoryImpl) CountByParent(driveID, parentID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.File{}).
		Where("drive_id = ? AND parent_folder_id = ?", driveID, parentID).
		Count(&count).Error
	return count, err
}

func (r *FileRepositoryImpl) ListExpired(now time.Time) ([]models.File, error) {
	var files []models.File
	err := r.db.Where("expires_at IS NOT NULL AND expires_at <= ?", now).Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (r *FileRepositoryImpl) HardDelete(id string) error {
	return r.db.Unscoped().Delete(&models.File{}, "id = ?", id).Error
}
