package repository

import (
	"Shelved/internal/models"
	"errors"

	"gorm.io/gorm"
)

type DiskRepository interface {
	GenericRepository[models.Disk]
	WithTx(tx *gorm.DB) DiskRepository
	FindByIDInDrive(driveID, id string) (*models.Disk, error)
	ListByDrive(driveID string) ([]models.Disk, error)
}

type DiskRepositoryImpl struct {
	GenericRepository[models.Disk]
	db *gorm.DB
}

func NewDiskRepository(db *gorm.DB) DiskRepository {
	return &DiskRepositoryImpl{
		GenericRepository: NewGenericRepository[models.Disk](db),
		db:                db,
	}
}

func (r *DiskRepositoryImpl) WithTx(tx *gorm.DB) DiskRepository {
	return NewDiskRepository(tx)
}

func (r *DiskRepositoryImpl) FindByIDInDrive(driveID, id string) (*models.Disk, error) {
	var disk models.Disk
	err := r.db.Where("id = ? AND drive_id = ?", id, driveID).First(&disk).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &disk, nil
}

func (r *DiskRepositoryImpl) ListByDrive(driveID string) ([]models.Disk, error) {
	var disks []models.Disk
	if err := r.db.Where("drive_id = ?", driveID).Find(&disks).Error; err != nil {
		return nil, err
	}
	return disks, nil
}
