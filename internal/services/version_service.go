package services

import (
	"Shelved/internal/apperr"
	"Shelved/internal/models"
	"Shelved/internal/repository"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VersionService maintains the append-only version chain of each file. Every
// method takes the open transaction handle of the calling operation.
type VersionService interface {
	CreateInitialVersion(tx *gorm.DB, file *models.File, userID string) (*models.FileVersion, error)
	SupersedeVersion(tx *gorm.DB, file *models.File, incoming VersionInput, userID string) (*models.FileVersion, error)
	RevertToVersion(tx *gorm.DB, file *models.File, versionID, userID string) (*models.FileVersion, error)
}

// VersionInput carries the fields of an incoming write that become the new
// head version.
type VersionInput struct {
	Name      string
	Extension string
	FileSize  int64
	RawURL    string
	Notes     string
}

type versionServiceImpl struct {
	versionRepo repository.FileVersionRepository
}

func NewVersionService(versionRepo repository.FileVersionRepository) VersionService {
	return &versionServiceImpl{versionRepo: versionRepo}
}

func (s *versionServiceImpl) CreateInitialVersion(tx *gorm.DB, file *models.File, userID string) (*models.FileVersion, error) {
	versionRepo := s.versionRepo.WithTx(tx)
	version := &models.FileVersion{
		BaseModel:   models.BaseModel{ID: uuid.NewString()},
		DriveID:     file.DriveID,
		FileID:      file.ID,
		Name:        file.Name,
		FileVersion: 1,
		Extension:   file.Extension,
		FileSize:    file.FileSize,
		RawURL:      file.RawURL,
		DiskID:      file.DiskID,
		CreatedBy:   userID,
	}
	if err := versionRepo.Create(version); err != nil {
		return nil, err
	}
	file.VersionID = version.ID
	return version, nil
}

// SupersedeVersion appends a new head to the chain: the new record points back
// at the old head, the old head's NextVersionID points forward, and the file's
// version pointer advances.
func (s *versionServiceImpl) SupersedeVersion(tx *gorm.DB, file *models.File, incoming VersionInput, userID string) (*models.FileVersion, error) {
	versionRepo := s.versionRepo.WithTx(tx)
	head, err := versionRepo.FindByIDInDrive(file.DriveID, file.VersionID)
	if err != nil {
		return nil, err
	}
	if head == nil {
		return nil, fmt.Errorf("version %s of file %s: %w", file.VersionID, file.ID, apperr.ErrNotFound)
	}

	version := &models.FileVersion{
		BaseModel:      models.BaseModel{ID: uuid.NewString()},
		DriveID:        file.DriveID,
		FileID:         file.ID,
		Name:           incoming.Name,
		FileVersion:    head.FileVersion + 1,
		PriorVersionID: &head.ID,
		Extension:      incoming.Extension,
		FileSize:       incoming.FileSize,
		RawURL:         incoming.RawURL,
		DiskID:         file.DiskID,
		CreatedBy:      userID,
		Notes:          incoming.Notes,
	}
	if err := versionRepo.Create(version); err != nil {
		return nil, err
	}

	head.NextVersionID = &version.ID
	if err := versionRepo.Update(head); err != nil {
		return nil, err
	}

	file.VersionID = version.ID
	file.Name = incoming.Name
	file.Extension = incoming.Extension
	file.FileSize = incoming.FileSize
	file.RawURL = incoming.RawURL
	file.LastUpdatedBy = userID
	return version, nil
}

// RevertToVersion appends the snapshot of a historical version as a brand-new
// head. History stays append-only; nothing is unlinked.
func (s *versionServiceImpl) RevertToVersion(tx *gorm.DB, file *models.File, versionID, userID string) (*models.FileVersion, error) {
	versionRepo := s.versionRepo.WithTx(tx)
	target, err := versionRepo.FindByIDInDrive(file.DriveID, versionID)
	if err != nil {
		return nil, err
	}
	if target == nil || target.FileID != file.ID {
		return nil, fmt.Errorf("version %s of file %s: %w", versionID, file.ID, apperr.ErrNotFound)
	}
	return s.SupersedeVersion(tx, file, VersionInput{
		Name:      target.Name,
		Extension: target.Extension,
		FileSize:  target.FileSize,
		RawURL:    target.RawURL,
		Notes:     fmt.Sprintf("reverted to version %d", target.FileVersion),
	}, userID)
}
