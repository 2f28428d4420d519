package repository

import (
	"Shelved/internal/models"
	"errors"

	"gorm.io/gorm"
)

type DriveRepository interface {
	GenericRepository[models.Drive]
	FindByName(name string) (*models.Drive, error)
}

type DriveRepositoryImpl struct {
	GenericRepository[models.Drive]
	db *gorm.DB
}

func NewDriveRepository(db *gorm.DB) DriveRepository {
	return &DriveRepositoryImpl{
		GenericRepository: NewGenericRepository[models.Drive](db),
		db:                db,
	}
}

func (r *DriveRepositoryImpl) FindByName(name string) (*models.Drive, error) {
	var drive models.Drive
	err := r.db.Where("name = ?", name).First(&drive).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &drive, nil
}
