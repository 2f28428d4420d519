package services

import (
	"Shelved/internal/apperr"
	"Shelved/internal/models"
	"Shelved/internal/repository"
	"fmt"

	"gorm.io/gorm"
)

// CreateDiskParams carries the backend coordinates of a new disk.
type CreateDiskParams struct {
	Name              string
	Type              models.DiskType
	Endpoint          string
	Bucket            string
	Region            string
	AccessKey         string
	SecretKey         string
	UseSSL            bool
	AutoExpireSeconds *int64
}

// DriveService manages drives and their disks. Creating a disk bootstraps its
// protected root and trash folders in the same transaction.
type DriveService interface {
	CreateDrive(name, ownerUserID string) (*models.Drive, error)
	GetDrive(driveID string) (*models.Drive, error)
	CreateDisk(driveID, userID string, params CreateDiskParams) (*models.Disk, error)
	GetDisk(driveID, diskID, userID string) (*models.Disk, error)
	ListDisks(driveID, userID string) ([]models.Disk, error)
}

type driveServiceImpl struct {
	db          *gorm.DB
	driveRepo   repository.DriveRepository
	diskRepo    repository.DiskRepository
	structure   StructureService
	permissions PermissionService
}

func NewDriveService(
	db *gorm.DB,
	driveRepo repository.DriveRepository,
	diskRepo repository.DiskRepository,
	structure StructureService,
	permissions PermissionService,
) DriveService {
	return &driveServiceImpl{
		db:          db,
		driveRepo:   driveRepo,
		diskRepo:    diskRepo,
		structure:   structure,
		permissions: permissions,
	}
}

func (s *driveServiceImpl) CreateDrive(name, ownerUserID string) (*models.Drive, error) {
	existing, err := s.driveRepo.FindByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("drive %q: %w", name, apperr.ErrConflictAbort)
	}
	drive := &models.Drive{
		Name:        name,
		OwnerUserID: ownerUserID,
	}
	if err := s.driveRepo.Create(drive); err != nil {
		return nil, err
	}
	return drive, nil
}

func (s *driveServiceImpl) GetDrive(driveID string) (*models.Drive, error) {
	drive, err := s.driveRepo.FindByID(driveID)
	if err != nil {
		return nil, fmt.Errorf("drive %s: %w", driveID, apperr.ErrNotFound)
	}
	return drive, nil
}

func (s *driveServiceImpl) CreateDisk(driveID, userID string, params CreateDiskParams) (*models.Disk, error) {
	owner, err := s.permissions.GetDriveOwnerID(driveID)
	if err != nil {
		return nil, err
	}
	if owner != userID {
		return nil, fmt.Errorf("user %s is not the drive owner: %w", userID, apperr.ErrPermissionDenied)
	}

	disk := &models.Disk{
		DriveID:           driveID,
		Name:              params.Name,
		Type:              params.Type,
		Endpoint:          params.Endpoint,
		Bucket:            params.Bucket,
		Region:            params.Region,
		AccessKey:         params.AccessKey,
		SecretKey:         params.SecretKey,
		UseSSL:            params.UseSSL,
		AutoExpireSeconds: params.AutoExpireSeconds,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.diskRepo.WithTx(tx).Create(disk); err != nil {
			return err
		}
		_, _, err := s.structure.EnsureRootFolderTx(tx, driveID, disk, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return disk, nil
}

func (s *driveServiceImpl) GetDisk(driveID, diskID, userID string) (*models.Disk, error) {
	disk, err := s.diskRepo.FindByIDInDrive(driveID, diskID)
	if err != nil {
		return nil, err
	}
	if disk == nil {
		return nil, fmt.Errorf("disk %s: %w", diskID, apperr.ErrNotFound)
	}
	return disk, nil
}

func (s *driveServiceImpl) ListDisks(driveID, userID string) ([]models.Disk, error) {
	return s.diskRepo.ListByDrive(driveID)
}
