package services

import (
	"Shelved/internal/apperr"
	"Shelved/internal/config"
	"Shelved/internal/dto"
	"Shelved/internal/helpers"
	"Shelved/internal/mapper"
	"Shelved/internal/models"
	"Shelved/internal/repository"
	"Shelved/internal/storage"
	"context"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"
)

const defaultPageSize = 50

type ListDirectoryParams struct {
	FolderID string
	Path     string
	PageSize int
	Cursor   string
}

type CreateFolderParams struct {
	ID             string
	ParentFolderID string
	ParentPath     string
	Name           string
	DiskID         string
	ConflictPolicy models.ConflictPolicy
	Sovereign      bool
	Notes          string
	ExternalID     *string
}

type CreateFileParams struct {
	ID             string
	ParentFolderID string
	ParentPath     string
	Name           string
	DiskID         string
	FileSize       int64
	ConflictPolicy models.ConflictPolicy
	Notes          string
	ExternalID     *string
}

// DirectoryService is the read/create surface of the engine: listing,
// folder/file creation, metadata and path translation.
type DirectoryService interface {
	ListDirectory(driveID, userID string, params ListDirectoryParams) (*dto.DirectoryListingDTO, error)
	CreateFolder(driveID, userID string, params CreateFolderParams) (*models.Folder, error)
	CreateFile(driveID, userID string, params CreateFileParams) (*models.File, *storage.UploadTarget, error)
	CompleteUpload(driveID, userID, fileID string) (*models.File, error)
	RevertFileToVersion(driveID, userID, fileID, versionID string) (*models.File, error)
	GetFolderMetadata(driveID, folderID string) (*models.Folder, error)
	GetFileMetadata(driveID, fileID string) (*models.File, error)
	Translate(driveID, path string) (Resource, error)
}

type directoryServiceImpl struct {
	db             *gorm.DB
	folderRepo     repository.FolderRepository
	fileRepo       repository.FileRepository
	diskRepo       repository.DiskRepository
	conflict       ConflictService
	structure      StructureService
	versions       VersionService
	permissions    PermissionService
	storageFactory storage.Factory
	configuration  *config.Configuration
	logService     LogService
}

func NewDirectoryService(
	db *gorm.DB,
	folderRepo repository.FolderRepository,
	fileRepo repository.FileRepository,
	diskRepo repository.DiskRepository,
	conflict ConflictService,
	structure StructureService,
	versions VersionService,
	permissions PermissionService,
	storageFactory storage.Factory,
	configuration *config.Configuration,
	logService LogService,
) DirectoryService {
	return &directoryServiceImpl{
		db:             db,
		folderRepo:     folderRepo,
		fileRepo:       fileRepo,
		diskRepo:       diskRepo,
		conflict:       conflict,
		structure:      structure,
		versions:       versions,
		permissions:    permissions,
		storageFactory: storageFactory,
		configuration:  configuration,
		logService:     logService,
	}
}

// Translate resolves a full path to its entity by exact match against the
// stored full_path, branching on the trailing-separator folder convention.
func (s *directoryServiceImpl) Translate(driveID, path string) (Resource, error) {
	isFolder := helpers.IsFolderPath(path)
	sanitized, err := helpers.SanitizePath(path)
	if err != nil {
		return Resource{}, err
	}
	if isFolder {
		if !helpers.IsFolderPath(sanitized) {
			sanitized += helpers.PathSeparator
		}
		folder, err := s.folderRepo.FindByPath(driveID, sanitized)
		if err != nil {
			return Resource{}, err
		}
		if folder == nil {
			return Resource{}, fmt.Errorf("folder %s: %w", sanitized, apperr.ErrNotFound)
		}
		return FolderResource(folder), nil
	}
	file, err := s.fileRepo.FindByPath(driveID, sanitized)
	if err != nil {
		return Resource{}, err
	}
	if file == nil {
		return Resource{}, fmt.Errorf("file %s: %w", sanitized, apperr.ErrNotFound)
	}
	return FileResource(file), nil
}

func (s *directoryServiceImpl) ListDirectory(driveID, userID string, params ListDirectoryParams) (*dto.DirectoryListingDTO, error) {
	folder, err := s.resolveFolderRef(driveID, params.FolderID, params.Path)
	if err != nil {
		return nil, err
	}
	if err := requirePermission(s.permissions, driveID, userID, folder.ID, models.PermissionView); err != nil {
		return nil, err
	}

	pageSize := params.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	offset := 0
	if params.Cursor != "" {
		offset, err = strconv.Atoi(params.Cursor)
		if err != nil || offset < 0 {
			return nil, fmt.Errorf("invalid cursor %q", params.Cursor)
		}
	}

	totalFolders, err := s.folderRepo.CountByParent(driveID, folder.ID)
	if err != nil {
		return nil, err
	}
	totalFiles, err := s.fileRepo.CountByParent(driveID, folder.ID)
	if err != nil {
		return nil, err
	}

	// Folders paginate first; files start once the folder range is exhausted.
	var folders []models.Folder
	var files []models.File
	if int64(offset) < totalFolders {
		folders, err = s.folderRepo.ListByParent(driveID, folder.ID, pageSize, offset)
		if err != nil {
			return nil, err
		}
	}
	remaining := pageSize - len(folders)
	if remaining > 0 {
		fileOffset := offset + len(folders) - int(totalFolders)
		if fileOffset < 0 {
			fileOffset = 0
		}
		files, err = s.fileRepo.ListByParent(driveID, folder.ID, remaining, fileOffset)
		if err != nil {
			return nil, err
		}
	}

	nextCursor := ""
	consumed := offset + len(folders) + len(files)
	if int64(consumed) < totalFolders+totalFiles {
		nextCursor = strconv.Itoa(consumed)
	}

	breadcrumbs, err := s.breadcrumbsFor(driveID, folder)
	if err != nil {
		return nil, err
	}

	return &dto.DirectoryListingDTO{
		Folders:      mapper.ToFolderGetDTOs(folders),
		Files:        mapper.ToFileGetDTOs(files),
		TotalFolders: totalFolders,
		TotalFiles:   totalFiles,
		NextCursor:   nextCursor,
		Breadcrumbs:  breadcrumbs,
	}, nil
}

func (s *directoryServiceImpl) breadcrumbsFor(driveID string, folder *models.Folder) ([]dto.Breadcrumb, error) {
	var chain []dto.Breadcrumb
	current := folder
	for current != nil {
		chain = append([]dto.Breadcrumb{{
			ID:   current.ID,
			Name: current.Name,
			Path: current.FullPath,
		}}, chain...)
		if current.ParentFolderID == nil {
			break
		}
		parent, err := s.folderRepo.FindByIDInDrive(driveID, *current.ParentFolderID)
		if err != nil {
			return nil, err
		}
		current = parent
	}
	return chain, nil
}

func (s *directoryServiceImpl) resolveFolderRef(driveID, folderID, path string) (*models.Folder, error) {
	if folderID != "" {
		folder, err := s.folderRepo.FindByIDInDrive(driveID, folderID)
		if err != nil {
			return nil, err
		}
		if folder == nil {
			return nil, fmt.Errorf("folder %s: %w", folderID, apperr.ErrNotFound)
		}
		return folder, nil
	}
	if path == "" {
		return nil, fmt.Errorf("folder reference required: %w", apperr.ErrNotFound)
	}
	resource, err := s.Translate(driveID, path)
	if err != nil {
		return nil, err
	}
	if resource.Kind != ResourceFolder {
		return nil, fmt.Errorf("%s is not a folder: %w", path, apperr.ErrNotFound)
	}
	return resource.Folder, nil
}

func (s *directoryServiceImpl) CreateFolder(driveID, userID string, params CreateFolderParams) (*models.Folder, error) {
	disk, parent, err := s.prepareCreate(driveID, userID, params.DiskID, params.ParentFolderID, params.ParentPath)
	if err != nil {
		return nil, err
	}

	var folder *models.Folder
	err = s.db.Transaction(func(tx *gorm.DB) error {
		resolution, err := s.conflict.ResolveTx(tx, driveID, parent.FullPath, params.Name, true, params.ConflictPolicy)
		if err != nil {
			return err
		}
		folderRepo := s.folderRepo.WithTx(tx)
		if resolution.Abort() {
			existing, err := folderRepo.FindByPath(driveID, helpers.JoinPath(parent.FullPath, params.Name, true))
			if err != nil {
				return err
			}
			if existing != nil && params.ID != "" && existing.ID == params.ID {
				folder = existing
				return nil
			}
			return fmt.Errorf("folder %q in %s: %w", params.Name, parent.FullPath, apperr.ErrConflictAbort)
		}

		// Folders have no version chain: REPLACE and KEEP_NEWER merge into an
		// existing folder at the path instead of superseding it.
		existing, err := folderRepo.FindByPath(driveID, resolution.FullPath)
		if err != nil {
			return err
		}
		if existing != nil {
			folder = existing
			return nil
		}

		folder = &models.Folder{
			BaseModel:               models.BaseModel{ID: params.ID},
			DriveID:                 driveID,
			DiskID:                  disk.ID,
			Name:                    resolution.Name,
			ParentFolderID:          &parent.ID,
			FullPath:                resolution.FullPath,
			CreatedBy:               userID,
			LastUpdatedBy:           userID,
			HasSovereignPermissions: params.Sovereign,
			Notes:                   params.Notes,
			ExternalID:              params.ExternalID,
		}
		return folderRepo.Create(folder)
	})
	if err != nil {
		return nil, err
	}
	return folder, nil
}

func (s *directoryServiceImpl) CreateFile(driveID, userID string, params CreateFileParams) (*models.File, *storage.UploadTarget, error) {
	disk, parent, err := s.prepareCreate(driveID, userID, params.DiskID, params.ParentFolderID, params.ParentPath)
	if err != nil {
		return nil, nil, err
	}

	var file *models.File
	err = s.db.Transaction(func(tx *gorm.DB) error {
		file, err = s.createFileTx(tx, driveID, userID, disk, parent, params)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	target, err := s.uploadTargetFor(disk, file)
	if err != nil {
		return nil, nil, err
	}
	return file, target, nil
}

func (s *directoryServiceImpl) createFileTx(tx *gorm.DB, driveID, userID string, disk *models.Disk, parent *models.Folder, params CreateFileParams) (*models.File, error) {
	fileRepo := s.fileRepo.WithTx(tx)
	resolution, err := s.conflict.ResolveTx(tx, driveID, parent.FullPath, params.Name, false, params.ConflictPolicy)
	if err != nil {
		return nil, err
	}

	policy := models.NormalizeConflictPolicy(params.ConflictPolicy)
	if resolution.Abort() {
		existing, err := fileRepo.FindByPath(driveID, helpers.JoinPath(parent.FullPath, params.Name, false))
		if err != nil {
			return nil, err
		}
		if existing != nil && params.ID != "" && existing.ID == params.ID {
			return existing, nil
		}
		return nil, fmt.Errorf("file %q in %s: %w", params.Name, parent.FullPath, apperr.ErrConflictAbort)
	}

	if policy == models.ConflictReplace || policy == models.ConflictKeepNewer {
		existing, err := fileRepo.FindByPath(driveID, resolution.FullPath)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			if policy == models.ConflictKeepNewer && existing.UpdatedAt.After(time.Now()) {
				// The record on disk is newer than the incoming write; keep it
				// untouched.
				return existing, nil
			}
			_, ext := helpers.SplitExtension(resolution.Name)
			if _, err := s.versions.SupersedeVersion(tx, existing, VersionInput{
				Name:      resolution.Name,
				Extension: ext,
				FileSize:  params.FileSize,
			}, userID); err != nil {
				return nil, err
			}
			existing.RawURL = existing.ObjectKey()
			existing.UploadStatus = models.UploadStatusQueued
			return existing, fileRepo.Update(existing)
		}
	}

	_, ext := helpers.SplitExtension(resolution.Name)
	file := &models.File{
		BaseModel:      models.BaseModel{ID: params.ID},
		DriveID:        driveID,
		DiskID:         disk.ID,
		Name:           resolution.Name,
		ParentFolderID: &parent.ID,
		Extension:      ext,
		FullPath:       resolution.FullPath,
		FileSize:       params.FileSize,
		UploadStatus:   models.UploadStatusQueued,
		CreatedBy:      userID,
		LastUpdatedBy:  userID,
		Notes:          params.Notes,
		ExternalID:     params.ExternalID,
	}
	if disk.AutoExpireSeconds != nil {
		expires := time.Now().Add(time.Duration(*disk.AutoExpireSeconds) * time.Second)
		file.ExpiresAt = &expires
	}
	if err := fileRepo.Create(file); err != nil {
		return nil, err
	}
	if _, err := s.versions.CreateInitialVersion(tx, file, userID); err != nil {
		return nil, err
	}
	file.RawURL = file.ObjectKey()
	return file, fileRepo.Update(file)
}

func (s *directoryServiceImpl) uploadTargetFor(disk *models.Disk, file *models.File) (*storage.UploadTarget, error) {
	backend, err := s.storageFactory.ForDisk(disk)
	if err != nil {
		return nil, err
	}
	expiry := time.Duration(s.configuration.Storage.UploadURLExpiryMinutes) * time.Minute
	return backend.GenerateUploadTarget(context.Background(), file.ObjectKey(), expiry)
}

func (s *directoryServiceImpl) CompleteUpload(driveID, userID, fileID string) (*models.File, error) {
	file, err := s.fileRepo.FindByIDInDrive(driveID, fileID)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, fmt.Errorf("file %s: %w", fileID, apperr.ErrNotFound)
	}
	if err := requirePermission(s.permissions, driveID, userID, file.ID, models.PermissionUpload); err != nil {
		return nil, err
	}
	file.UploadStatus = models.UploadStatusCompleted
	file.LastUpdatedBy = userID
	if err := s.fileRepo.Update(file); err != nil {
		return nil, err
	}
	return file, nil
}

func (s *directoryServiceImpl) RevertFileToVersion(driveID, userID, fileID, versionID string) (*models.File, error) {
	file, err := s.fileRepo.FindByIDInDrive(driveID, fileID)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, fmt.Errorf("file %s: %w", fileID, apperr.ErrNotFound)
	}
	if err := requirePermission(s.permissions, driveID, userID, file.ID, models.PermissionEdit); err != nil {
		return nil, err
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.versions.RevertToVersion(tx, file, versionID, userID); err != nil {
			return err
		}
		return s.fileRepo.WithTx(tx).Update(file)
	})
	if err != nil {
		return nil, err
	}
	return file, nil
}

func (s *directoryServiceImpl) GetFolderMetadata(driveID, folderID string) (*models.Folder, error) {
	return s.folderRepo.FindByIDInDrive(driveID, folderID)
}

func (s *directoryServiceImpl) GetFileMetadata(driveID, fileID string) (*models.File, error) {
	return s.fileRepo.FindByIDInDrive(driveID, fileID)
}

// prepareCreate runs the non-transactional phase shared by folder and file
// creation: disk lookup, parent resolution, permission check.
func (s *directoryServiceImpl) prepareCreate(driveID, userID, diskID, parentFolderID, parentPath string) (*models.Disk, *models.Folder, error) {
	disk, err := s.diskRepo.FindByIDInDrive(driveID, diskID)
	if err != nil {
		return nil, nil, err
	}
	if disk == nil {
		return nil, nil, fmt.Errorf("disk %s: %w", diskID, apperr.ErrNotFound)
	}

	var parent *models.Folder
	if parentFolderID != "" {
		parent, err = s.folderRepo.FindByIDInDrive(driveID, parentFolderID)
		if err != nil {
			return nil, nil, err
		}
		if parent == nil {
			return nil, nil, fmt.Errorf("parent folder %s: %w", parentFolderID, apperr.ErrNotFound)
		}
	} else {
		path := parentPath
		if path == "" {
			path = helpers.RootPath(disk.ID)
		}
		parent, err = s.structure.EnsureFolderStructure(driveID, path, disk, userID, nil)
		if err != nil {
			return nil, nil, err
		}
	}
	if parent.Deleted {
		return nil, nil, fmt.Errorf("parent folder %s is trashed: %w", parent.ID, apperr.ErrInvalidTrashState)
	}
	if err := requirePermission(s.permissions, driveID, userID, parent.ID, models.PermissionUpload); err != nil {
		return nil, nil, err
	}
	return disk, parent, nil
}
