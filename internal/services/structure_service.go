package services

import (
	"Shelved/internal/apperr"
	"Shelved/internal/helpers"
	"Shelved/internal/models"
	"Shelved/internal/repository"
	"fmt"

	"gorm.io/gorm"
)

// StructureOptions apply to the terminal segment of EnsureFolderStructure.
type StructureOptions struct {
	ID                      string
	HasSovereignPermissions bool
	Notes                   string
	ExternalID              *string
	ExternalPayload         string
}

// StructureService materializes folder chains: the protected root and trash
// folders of a disk, and arbitrary paths segment by segment. All operations
// are idempotent.
type StructureService interface {
	EnsureRootFolder(driveID string, disk *models.Disk, userID string) (root, trash *models.Folder, err error)
	EnsureRootFolderTx(tx *gorm.DB, driveID string, disk *models.Disk, userID string) (root, trash *models.Folder, err error)
	EnsureFolderStructure(driveID, fullPath string, disk *models.Disk, userID string, opts *StructureOptions) (*models.Folder, error)
	EnsureFolderStructureTx(tx *gorm.DB, driveID, fullPath string, disk *models.Disk, userID string, opts *StructureOptions) (*models.Folder, error)
}

type structureServiceImpl struct {
	db         *gorm.DB
	folderRepo repository.FolderRepository
	diskRepo   repository.DiskRepository
	permRepo   repository.PermissionRepository
}

func NewStructureService(
	db *gorm.DB,
	folderRepo repository.FolderRepository,
	diskRepo repository.DiskRepository,
	permRepo repository.PermissionRepository,
) StructureService {
	return &structureServiceImpl{
		db:         db,
		folderRepo: folderRepo,
		diskRepo:   diskRepo,
		permRepo:   permRepo,
	}
}

func (s *structureServiceImpl) EnsureRootFolder(driveID string, disk *models.Disk, userID string) (*models.Folder, *models.Folder, error) {
	var root, trash *models.Folder
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		root, trash, err = s.EnsureRootFolderTx(tx, driveID, disk, userID)
		return err
	})
	return root, trash, err
}

func (s *structureServiceImpl) EnsureRootFolderTx(tx *gorm.DB, driveID string, disk *models.Disk, userID string) (*models.Folder, *models.Folder, error) {
	folderRepo := s.folderRepo.WithTx(tx)
	permRepo := s.permRepo.WithTx(tx)

	rootPath := helpers.RootPath(disk.ID)
	root, err := folderRepo.FindByPath(driveID, rootPath)
	if err != nil {
		return nil, nil, err
	}
	if root == nil {
		root = &models.Folder{
			DriveID:       driveID,
			DiskID:        disk.ID,
			Name:          "",
			FullPath:      rootPath,
			CreatedBy:     userID,
			LastUpdatedBy: userID,
		}
		if err := folderRepo.Create(root); err != nil {
			return nil, nil, err
		}
		// The creator gets every capability on root, inheritable down the
		// whole disk.
		for _, p := range models.AllPermissionTypes() {
			grant := &models.PermissionGrant{
				DriveID:        driveID,
				ResourceID:     root.ID,
				ResourcePath:   root.FullPath,
				GranteeUserID:  userID,
				PermissionType: p,
				Inheritable:    true,
			}
			if err := permRepo.Create(grant); err != nil {
				return nil, nil, err
			}
		}
	}

	trashPath := helpers.TrashPath(disk.ID)
	trash, err := folderRepo.FindByPath(driveID, trashPath)
	if err != nil {
		return nil, nil, err
	}
	if trash == nil {
		trash = &models.Folder{
			DriveID:                 driveID,
			DiskID:                  disk.ID,
			Name:                    ".trash",
			ParentFolderID:          &root.ID,
			FullPath:                trashPath,
			CreatedBy:               userID,
			LastUpdatedBy:           userID,
			HasSovereignPermissions: true,
		}
		if err := folderRepo.Create(trash); err != nil {
			return nil, nil, err
		}
	}

	if disk.RootFolderID == nil || disk.TrashFolderID == nil {
		disk.RootFolderID = &root.ID
		disk.TrashFolderID = &trash.ID
		if err := s.diskRepo.WithTx(tx).Update(disk); err != nil {
			return nil, nil, err
		}
	}

	return root, trash, nil
}

func (s *structureServiceImpl) EnsureFolderStructure(driveID, fullPath string, disk *models.Disk, userID string, opts *StructureOptions) (*models.Folder, error) {
	var folder *models.Folder
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		folder, err = s.EnsureFolderStructureTx(tx, driveID, fullPath, disk, userID, opts)
		return err
	})
	return folder, err
}

// EnsureFolderStructureTx walks path segments left to right from the disk
// root, reusing each existing folder or creating it. Calling it twice with the
// same path returns the same folder both times.
func (s *structureServiceImpl) EnsureFolderStructureTx(tx *gorm.DB, driveID, fullPath string, disk *models.Disk, userID string, opts *StructureOptions) (*models.Folder, error) {
	sanitized, err := helpers.SanitizePath(fullPath)
	if err != nil {
		return nil, err
	}
	folderRepo := s.folderRepo.WithTx(tx)

	rootPath := helpers.RootPath(disk.ID)
	root, err := folderRepo.FindByPath(driveID, rootPath)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, fmt.Errorf("disk %s has no root folder: %w", disk.ID, apperr.ErrNotFound)
	}

	segments := helpers.PathSegments(sanitized)
	current := root
	accumulated := rootPath
	for i, segment := range segments {
		accumulated = helpers.JoinPath(accumulated, segment, true)
		existing, err := folderRepo.FindByPath(driveID, accumulated)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			current = existing
			continue
		}
		folder := &models.Folder{
			DriveID:        driveID,
			DiskID:         disk.ID,
			Name:           segment,
			ParentFolderID: &current.ID,
			FullPath:       accumulated,
			CreatedBy:      userID,
			LastUpdatedBy:  userID,
		}
		if i == len(segments)-1 && opts != nil {
			folder.ID = opts.ID
			folder.HasSovereignPermissions = opts.HasSovereignPermissions
			folder.Notes = opts.Notes
			folder.ExternalID = opts.ExternalID
			folder.ExternalPayload = opts.ExternalPayload
		}
		if err := folderRepo.Create(folder); err != nil {
			return nil, err
		}
		current = folder
	}
	return current, nil
}
