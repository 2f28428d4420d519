package services

import (
	"Shelved/internal/apperr"
	"Shelved/internal/models"
	"Shelved/internal/repository"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// PermissionService is the capability-check collaborator. The engine only asks
// "what may this user do on this resource" — grant/role computation lives
// behind this interface, not in the engine.
type PermissionService interface {
	CheckDirectoryPermissions(resourceID, userID, driveID string) ([]models.PermissionType, error)
	GetDriveOwnerID(driveID string) (string, error)
}

type permissionServiceImpl struct {
	driveRepo  repository.DriveRepository
	folderRepo repository.FolderRepository
	fileRepo   repository.FileRepository
	permRepo   repository.PermissionRepository
}

func NewPermissionService(
	driveRepo repository.DriveRepository,
	folderRepo repository.FolderRepository,
	fileRepo repository.FileRepository,
	permRepo repository.PermissionRepository,
) PermissionService {
	return &permissionServiceImpl{
		driveRepo:  driveRepo,
		folderRepo: folderRepo,
		fileRepo:   fileRepo,
		permRepo:   permRepo,
	}
}

func (s *permissionServiceImpl) GetDriveOwnerID(driveID string) (string, error) {
	drive, err := s.driveRepo.FindByID(driveID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("drive %s: %w", driveID, apperr.ErrNotFound)
		}
		return "", err
	}
	return drive.OwnerUserID, nil
}

func (s *permissionServiceImpl) CheckDirectoryPermissions(resourceID, userID, driveID string) ([]models.PermissionType, error) {
	owner, err := s.GetDriveOwnerID(driveID)
	if err != nil {
		return nil, err
	}
	if owner == userID {
		return models.AllPermissionTypes(), nil
	}

	resourcePath, sovereign, err := s.resolveResource(driveID, resourceID)
	if err != nil {
		return nil, err
	}

	set := make(map[models.PermissionType]bool)
	direct, err := s.permRepo.ListByResource(driveID, resourceID)
	if err != nil {
		return nil, err
	}
	for _, g := range direct {
		if g.GranteeUserID == userID {
			set[g.PermissionType] = true
		}
	}
	if !sovereign {
		inherited, err := s.permRepo.ListInheritableByPathPrefix(driveID, resourcePath, userID)
		if err != nil {
			return nil, err
		}
		for _, g := range inherited {
			set[g.PermissionType] = true
		}
	}

	result := make([]models.PermissionType, 0, len(set))
	for p := range set {
		result = append(result, p)
	}
	return result, nil
}

func (s *permissionServiceImpl) resolveResource(driveID, resourceID string) (path string, sovereign bool, err error) {
	folder, err := s.folderRepo.FindByIDInDrive(driveID, resourceID)
	if err != nil {
		return "", false, err
	}
	if folder != nil {
		return folder.FullPath, folder.HasSovereignPermissions, nil
	}
	file, err := s.fileRepo.FindByIDInDrive(driveID, resourceID)
	if err != nil {
		return "", false, err
	}
	if file != nil {
		return file.FullPath, file.HasSovereignPermissions, nil
	}
	return "", false, fmt.Errorf("resource %s: %w", resourceID, apperr.ErrNotFound)
}

// HasPermission is the convenience predicate the engine operations use; manage
// implies everything.
func HasPermission(granted []models.PermissionType, need models.PermissionType) bool {
	for _, p := range granted {
		if p == need || p == models.PermissionManage {
			return true
		}
	}
	return false
}

func requirePermission(perm PermissionService, driveID, userID, resourceID string, need models.PermissionType) error {
	granted, err := perm.CheckDirectoryPermissions(resourceID, userID, driveID)
	if err != nil {
		return err
	}
	if !HasPermission(granted, need) {
		return fmt.Errorf("user %s lacks %s on %s: %w", userID, need, resourceID, apperr.ErrPermissionDenied)
	}
	return nil
}
