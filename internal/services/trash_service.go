package services

import (
	"Shelved/internal/apperr"
	"Shelved/internal/dto"
	"Shelved/internal/helpers"
	"Shelved/internal/mapper"
	"Shelved/internal/models"
	"Shelved/internal/repository"
	"Shelved/internal/storage"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RestoreParams selects where a trashed resource lands. DestFolderID names an
// existing folder; RestoreToPath names a folder path that is materialized
// segment by segment when it does not exist yet. With neither set the recorded
// prior parent is used, falling back to the disk root.
type RestoreParams struct {
	DestFolderID  *string
	RestoreToPath *string
	Policy        models.ConflictPolicy
}

// TrashService owns the resource lifecycle: active -> trashed -> restored, and
// the permanent-delete cascade. Trashed resources physically live under the
// disk's .trash folder with their subtree paths rewritten; restoring moves
// them back out.
type TrashService interface {
	DeleteResource(driveID, userID, resourceID string) (Resource, error)
	RestoreFromTrash(driveID, userID, resourceID string, params RestoreParams) (*dto.RestoreResultDTO, error)
	PermanentlyDelete(driveID, userID, resourceID string) error
	EmptyTrash(driveID, userID, diskID string) error

	// PurgeFile is the janitor entry point: the permanent-delete cascade for
	// one file, with no permission check.
	PurgeFile(file *models.File) error
}

type trashServiceImpl struct {
	db             *gorm.DB
	folderRepo     repository.FolderRepository
	fileRepo       repository.FileRepository
	versionRepo    repository.FileVersionRepository
	diskRepo       repository.DiskRepository
	permRepo       repository.PermissionRepository
	conflict       ConflictService
	mover          MoverService
	structure      StructureService
	permissions    PermissionService
	storageFactory storage.Factory
	logService     LogService
}

func NewTrashService(
	db *gorm.DB,
	folderRepo repository.FolderRepository,
	fileRepo repository.FileRepository,
	versionRepo repository.FileVersionRepository,
	diskRepo repository.DiskRepository,
	permRepo repository.PermissionRepository,
	conflict ConflictService,
	mover MoverService,
	structure StructureService,
	permissions PermissionService,
	storageFactory storage.Factory,
	logService LogService,
) TrashService {
	return &trashServiceImpl{
		db:             db,
		folderRepo:     folderRepo,
		fileRepo:       fileRepo,
		versionRepo:    versionRepo,
		diskRepo:       diskRepo,
		permRepo:       permRepo,
		conflict:       conflict,
		mover:          mover,
		structure:      structure,
		permissions:    permissions,
		storageFactory: storageFactory,
		logService:     logService,
	}
}

func (t *trashServiceImpl) findResource(driveID, resourceID string) (Resource, error) {
	folder, err := t.folderRepo.FindByIDInDrive(driveID, resourceID)
	if err != nil {
		return Resource{}, err
	}
	if folder != nil {
		return FolderResource(folder), nil
	}
	file, err := t.fileRepo.FindByIDInDrive(driveID, resourceID)
	if err != nil {
		return Resource{}, err
	}
	if file != nil {
		return FileResource(file), nil
	}
	return Resource{}, fmt.Errorf("resource %s: %w", resourceID, apperr.ErrNotFound)
}

func (t *trashServiceImpl) diskAndTrash(driveID, diskID string) (*models.Disk, *models.Folder, error) {
	disk, err := t.diskRepo.FindByIDInDrive(driveID, diskID)
	if err != nil {
		return nil, nil, err
	}
	if disk == nil {
		return nil, nil, fmt.Errorf("disk %s: %w", diskID, apperr.ErrNotFound)
	}
	if disk.TrashFolderID == nil {
		return nil, nil, fmt.Errorf("disk %s has no trash folder: %w", diskID, apperr.ErrInvalidTrashState)
	}
	trash, err := t.folderRepo.FindByIDInDrive(driveID, *disk.TrashFolderID)
	if err != nil {
		return nil, nil, err
	}
	if trash == nil {
		return nil, nil, fmt.Errorf("trash folder of disk %s: %w", diskID, apperr.ErrNotFound)
	}
	return disk, trash, nil
}

func (t *trashServiceImpl) isProtected(disk *models.Disk, folderID string) bool {
	if disk.RootFolderID != nil && *disk.RootFolderID == folderID {
		return true
	}
	if disk.TrashFolderID != nil && *disk.TrashFolderID == folderID {
		return true
	}
	return false
}

// DeleteResource moves a file or folder subtree into the disk's trash. The
// prior parent is recorded on every node so the subtree can be restored even
// after the original location disappears.
func (t *trashServiceImpl) DeleteResource(driveID, userID, resourceID string) (Resource, error) {
	resource, err := t.findResource(driveID, resourceID)
	if err != nil {
		return Resource{}, err
	}
	if resource.Deleted() {
		return Resource{}, fmt.Errorf("resource %s is already trashed: %w", resourceID, apperr.ErrInvalidTrashState)
	}
	disk, trash, err := t.diskAndTrash(driveID, resource.DiskID())
	if err != nil {
		return Resource{}, err
	}
	if resource.Kind == ResourceFolder && t.isProtected(disk, resource.ID()) {
		return Resource{}, fmt.Errorf("folder %s is the disk root or trash: %w", resource.ID(), apperr.ErrProtectedResource)
	}
	if err := requirePermission(t.permissions, driveID, userID, resourceID, models.PermissionDelete); err != nil {
		return Resource{}, err
	}

	err = t.db.Transaction(func(tx *gorm.DB) error {
		// Trashed siblings may already hold this name; KEEP_BOTH sidesteps
		// the unique path index.
		resolution, err := t.conflict.ResolveTx(tx, driveID, trash.FullPath, resource.Name(), resource.Kind == ResourceFolder, models.ConflictKeepBoth)
		if err != nil {
			return err
		}

		if resource.Kind == ResourceFile {
			file := resource.File
			prior := file.ParentFolderID
			file.Deleted = true
			file.RestoreTrashPriorFolderID = prior
			return t.mover.MoveFileCore(tx, userID, file, trash, resolution.Name)
		}

		folder := resource.Folder
		prior := folder.ParentFolderID
		folder.Deleted = true
		folder.RestoreTrashPriorFolderID = prior
		if _, _, err := t.markSubtreeTx(tx, driveID, folder.ID, true); err != nil {
			return err
		}
		return t.mover.MoveFolderCore(tx, userID, folder, trash, resolution.Name)
	})
	if err != nil {
		return Resource{}, err
	}
	return resource, nil
}

// markSubtreeTx walks the descendants of a folder (the folder itself is the
// caller's responsibility) and flips their trash state. Trashing records each
// node's own parent as the restore target; untrashing clears both fields.
// Returns the touched descendants.
func (t *trashServiceImpl) markSubtreeTx(tx *gorm.DB, driveID, rootFolderID string, trashing bool) ([]models.Folder, []models.File, error) {
	folderRepo := t.folderRepo.WithTx(tx)
	fileRepo := t.fileRepo.WithTx(tx)

	var folders []models.Folder
	var files []models.File
	queue := []string{rootFolderID}
	for len(queue) > 0 {
		parentID := queue[0]
		queue = queue[1:]

		childFolders, err := folderRepo.ListByParent(driveID, parentID, 0, 0)
		if err != nil {
			return nil, nil, err
		}
		for i := range childFolders {
			child := &childFolders[i]
			if trashing {
				child.Deleted = true
				child.RestoreTrashPriorFolderID = child.ParentFolderID
			} else {
				child.Deleted = false
				child.RestoreTrashPriorFolderID = nil
			}
			if err := folderRepo.Update(child); err != nil {
				return nil, nil, err
			}
			folders = append(folders, *child)
			queue = append(queue, child.ID)
		}

		childFiles, err := fileRepo.ListByParent(driveID, parentID, 0, 0)
		if err != nil {
			return nil, nil, err
		}
		for i := range childFiles {
			child := &childFiles[i]
			if trashing {
				child.Deleted = true
				child.RestoreTrashPriorFolderID = child.ParentFolderID
			} else {
				child.Deleted = false
				child.RestoreTrashPriorFolderID = nil
			}
			if err := fileRepo.Update(child); err != nil {
				return nil, nil, err
			}
			files = append(files, *child)
		}
	}
	return folders, files, nil
}

// RestoreFromTrash moves a trashed resource back into the live tree.
// Destination precedence: the explicit folder or path if given, else the
// recorded prior parent if it still exists untrashed, else the disk root.
func (t *trashServiceImpl) RestoreFromTrash(driveID, userID, resourceID string, params RestoreParams) (*dto.RestoreResultDTO, error) {
	resource, err := t.findResource(driveID, resourceID)
	if err != nil {
		return nil, err
	}
	if !resource.Deleted() {
		return nil, fmt.Errorf("resource %s is not trashed: %w", resourceID, apperr.ErrInvalidTrashState)
	}
	disk, _, err := t.diskAndTrash(driveID, resource.DiskID())
	if err != nil {
		return nil, err
	}

	dest, err := t.restoreDestination(driveID, userID, resource, params, disk)
	if err != nil {
		return nil, err
	}
	if err := requirePermission(t.permissions, driveID, userID, dest.ID, models.PermissionUpload); err != nil {
		return nil, err
	}

	policy := models.NormalizeConflictPolicy(params.Policy)
	result := &dto.RestoreResultDTO{}
	err = t.db.Transaction(func(tx *gorm.DB) error {
		resolution, err := t.conflict.ResolveTx(tx, driveID, dest.FullPath, resource.Name(), resource.Kind == ResourceFolder, policy)
		if err != nil {
			return err
		}
		if resolution.Abort() {
			return fmt.Errorf("restore %q into %s: %w", resource.Name(), dest.FullPath, apperr.ErrConflictAbort)
		}

		if resource.Kind == ResourceFile {
			file := resource.File
			file.Deleted = false
			file.RestoreTrashPriorFolderID = nil
			if err := t.mover.MoveFileCore(tx, userID, file, dest, resolution.Name); err != nil {
				return err
			}
			result.RestoredFiles = append(result.RestoredFiles, mapper.ToFileGetDTO(file))
			return nil
		}

		folder := resource.Folder
		folder.Deleted = false
		folder.RestoreTrashPriorFolderID = nil
		if err := t.mover.MoveFolderCore(tx, userID, folder, dest, resolution.Name); err != nil {
			return err
		}
		// Clearing flags after the move lets the result carry the restored
		// paths.
		folders, files, err := t.markSubtreeTx(tx, driveID, folder.ID, false)
		if err != nil {
			return err
		}
		result.RestoredFolders = append(mapper.ToFolderGetDTOs(folders), mapper.ToFolderGetDTO(folder))
		result.RestoredFiles = mapper.ToFileGetDTOs(files)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (t *trashServiceImpl) restoreDestination(driveID, userID string, resource Resource, params RestoreParams, disk *models.Disk) (*models.Folder, error) {
	if params.DestFolderID != nil {
		dest, err := t.folderRepo.FindByIDInDrive(driveID, *params.DestFolderID)
		if err != nil {
			return nil, err
		}
		if dest == nil {
			return nil, fmt.Errorf("destination folder %s: %w", *params.DestFolderID, apperr.ErrNotFound)
		}
		if dest.Deleted {
			return nil, fmt.Errorf("destination folder %s is trashed: %w", dest.ID, apperr.ErrInvalidTrashState)
		}
		return dest, nil
	}

	if params.RestoreToPath != nil {
		sanitized, err := helpers.SanitizePath(*params.RestoreToPath)
		if err != nil {
			return nil, err
		}
		if strings.HasPrefix(sanitized, helpers.TrashPath(disk.ID)) {
			return nil, fmt.Errorf("cannot restore into the trash: %w", apperr.ErrInvalidTrashState)
		}
		return t.structure.EnsureFolderStructure(driveID, sanitized, disk, userID, nil)
	}

	var priorID *string
	if resource.Kind == ResourceFolder {
		priorID = resource.Folder.RestoreTrashPriorFolderID
	} else {
		priorID = resource.File.RestoreTrashPriorFolderID
	}
	if priorID != nil {
		prior, err := t.folderRepo.FindByIDInDrive(driveID, *priorID)
		if err != nil {
			return nil, err
		}
		if prior != nil && !prior.Deleted {
			return prior, nil
		}
	}

	if disk.RootFolderID == nil {
		return nil, fmt.Errorf("disk %s has no root folder: %w", disk.ID, apperr.ErrNotFound)
	}
	root, err := t.folderRepo.FindByIDInDrive(driveID, *disk.RootFolderID)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, fmt.Errorf("root folder of disk %s: %w", disk.ID, apperr.ErrNotFound)
	}
	return root, nil
}

// PermanentlyDelete removes a resource and, for folders, its entire subtree:
// version rows, file rows, folder rows children before parents, and permission
// grants. Backing objects are removed from storage after the transaction
// commits.
func (t *trashServiceImpl) PermanentlyDelete(driveID, userID, resourceID string) error {
	resource, err := t.findResource(driveID, resourceID)
	if err != nil {
		return err
	}
	disk, _, err := t.diskAndTrash(driveID, resource.DiskID())
	if err != nil {
		return err
	}
	if resource.Kind == ResourceFolder && t.isProtected(disk, resource.ID()) {
		return fmt.Errorf("folder %s is the disk root or trash: %w", resource.ID(), apperr.ErrProtectedResource)
	}
	if err := requirePermission(t.permissions, driveID, userID, resourceID, models.PermissionDelete); err != nil {
		return err
	}

	var objectKeys []string
	err = t.db.Transaction(func(tx *gorm.DB) error {
		objectKeys, err = t.cascadeTx(tx, driveID, resource)
		return err
	})
	if err != nil {
		return err
	}
	t.dispatchObjectDeletes(disk, objectKeys)
	return nil
}

// EmptyTrash permanently deletes every direct child of the disk's trash
// folder. Requires delete permission on the trash folder itself, which only
// direct grants or drive ownership satisfy since the trash is sovereign.
func (t *trashServiceImpl) EmptyTrash(driveID, userID, diskID string) error {
	disk, trash, err := t.diskAndTrash(driveID, diskID)
	if err != nil {
		return err
	}
	if err := requirePermission(t.permissions, driveID, userID, trash.ID, models.PermissionDelete); err != nil {
		return err
	}

	var objectKeys []string
	err = t.db.Transaction(func(tx *gorm.DB) error {
		childFolders, err := t.folderRepo.WithTx(tx).ListByParent(driveID, trash.ID, 0, 0)
		if err != nil {
			return err
		}
		for i := range childFolders {
			keys, err := t.cascadeTx(tx, driveID, FolderResource(&childFolders[i]))
			if err != nil {
				return err
			}
			objectKeys = append(objectKeys, keys...)
		}
		childFiles, err := t.fileRepo.WithTx(tx).ListByParent(driveID, trash.ID, 0, 0)
		if err != nil {
			return err
		}
		for i := range childFiles {
			keys, err := t.cascadeTx(tx, driveID, FileResource(&childFiles[i]))
			if err != nil {
				return err
			}
			objectKeys = append(objectKeys, keys...)
		}
		return nil
	})
	if err != nil {
		return err
	}
	t.dispatchObjectDeletes(disk, objectKeys)
	return nil
}

func (t *trashServiceImpl) PurgeFile(file *models.File) error {
	disk, err := t.diskRepo.FindByIDInDrive(file.DriveID, file.DiskID)
	if err != nil {
		return err
	}
	if disk == nil {
		return fmt.Errorf("disk %s: %w", file.DiskID, apperr.ErrNotFound)
	}

	var objectKeys []string
	err = t.db.Transaction(func(tx *gorm.DB) error {
		objectKeys, err = t.cascadeTx(tx, file.DriveID, FileResource(file))
		return err
	})
	if err != nil {
		return err
	}
	t.dispatchObjectDeletes(disk, objectKeys)
	return nil
}

// cascadeTx deletes the resource's rows inside the open transaction and
// returns the storage keys of every version that had an uploaded object.
func (t *trashServiceImpl) cascadeTx(tx *gorm.DB, driveID string, resource Resource) ([]string, error) {
	if resource.Kind == ResourceFile {
		return t.cascadeFileTx(tx, driveID, resource.File)
	}

	folderRepo := t.folderRepo.WithTx(tx)
	fileRepo := t.fileRepo.WithTx(tx)
	permRepo := t.permRepo.WithTx(tx)

	// Collect the subtree root-first, then delete folders in reverse so every
	// folder goes after its children.
	var objectKeys []string
	ordered := []models.Folder{*resource.Folder}
	queue := []string{resource.Folder.ID}
	for len(queue) > 0 {
		parentID := queue[0]
		queue = queue[1:]

		childFiles, err := fileRepo.ListByParent(driveID, parentID, 0, 0)
		if err != nil {
			return nil, err
		}
		for i := range childFiles {
			keys, err := t.cascadeFileTx(tx, driveID, &childFiles[i])
			if err != nil {
				return nil, err
			}
			objectKeys = append(objectKeys, keys...)
		}

		childFolders, err := folderRepo.ListByParent(driveID, parentID, 0, 0)
		if err != nil {
			return nil, err
		}
		for i := range childFolders {
			ordered = append(ordered, childFolders[i])
			queue = append(queue, childFolders[i].ID)
		}
	}

	for i := len(ordered) - 1; i >= 0; i-- {
		folder := &ordered[i]
		if err := permRepo.DeleteByResource(folder.ID); err != nil {
			return nil, err
		}
		if err := folderRepo.HardDelete(folder.ID); err != nil {
			return nil, err
		}
	}
	return objectKeys, nil
}

func (t *trashServiceImpl) cascadeFileTx(tx *gorm.DB, driveID string, file *models.File) ([]string, error) {
	versions, err := t.versionRepo.WithTx(tx).ListByFile(driveID, file.ID)
	if err != nil {
		return nil, err
	}
	var objectKeys []string
	for _, v := range versions {
		if v.RawURL != "" {
			objectKeys = append(objectKeys, v.RawURL)
		}
	}
	if err := t.versionRepo.WithTx(tx).DeleteByFile(file.ID); err != nil {
		return nil, err
	}
	if err := t.permRepo.WithTx(tx).DeleteByResource(file.ID); err != nil {
		return nil, err
	}
	if err := t.fileRepo.WithTx(tx).HardDelete(file.ID); err != nil {
		return nil, err
	}
	return objectKeys, nil
}

func (t *trashServiceImpl) dispatchObjectDeletes(disk *models.Disk, keys []string) {
	if len(keys) == 0 {
		return
	}
	backend, err := t.storageFactory.ForDisk(disk)
	if err != nil {
		t.logService.Log.WithFields(logrus.Fields{
			"disk":  disk.ID,
			"error": err.Error(),
		}).Warn("object delete skipped: no storage backend")
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		for _, key := range keys {
			if err := backend.DeleteObject(ctx, key); err != nil {
				t.logService.Log.WithFields(logrus.Fields{
					"disk":  disk.ID,
					"key":   key,
					"error": err.Error(),
				}).Error("object delete failed")
			}
		}
	}()
}
