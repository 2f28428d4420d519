package services

import (
	"Shelved/internal/apperr"
	"Shelved/internal/helpers"
	"Shelved/internal/models"
	"Shelved/internal/repository"
	"Shelved/internal/storage"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// MoverService relocates and duplicates files and folder subtrees. Every
// public operation runs a prepare phase (permission checks, disk lookup,
// validation — no transaction) and a commit phase (one transaction in which
// all subtree writes happen). Object-storage side effects run after commit and
// never roll the transaction back.
type MoverService interface {
	MoveFile(driveID, userID, fileID, destFolderID string, policy models.ConflictPolicy) (*models.File, error)
	MoveFolder(driveID, userID, folderID, destFolderID string, policy models.ConflictPolicy) (*models.Folder, error)
	CopyFile(driveID, userID, fileID, destFolderID string, policy models.ConflictPolicy) (*models.File, error)
	CopyFolder(driveID, userID, folderID, destFolderID string, policy models.ConflictPolicy) (*models.Folder, error)
	RenameFile(driveID, userID, fileID, newName string, policy models.ConflictPolicy) (*models.File, error)
	RenameFolder(driveID, userID, folderID, newName string, policy models.ConflictPolicy) (*models.Folder, error)

	// Transaction-scoped cores, shared with the trash engine. They rewrite
	// identity fields and subtree paths but perform no permission checks and
	// no conflict resolution.
	MoveFileCore(tx *gorm.DB, userID string, file *models.File, dest *models.Folder, newName string) error
	MoveFolderCore(tx *gorm.DB, userID string, folder *models.Folder, dest *models.Folder, newName string) error
}

type moverServiceImpl struct {
	db             *gorm.DB
	folderRepo     repository.FolderRepository
	fileRepo       repository.FileRepository
	versionRepo    repository.FileVersionRepository
	diskRepo       repository.DiskRepository
	permRepo       repository.PermissionRepository
	conflict       ConflictService
	versions       VersionService
	permissions    PermissionService
	storageFactory storage.Factory
	logService     LogService
}

func NewMoverService(
	db *gorm.DB,
	folderRepo repository.FolderRepository,
	fileRepo repository.FileRepository,
	versionRepo repository.FileVersionRepository,
	diskRepo repository.DiskRepository,
	permRepo repository.PermissionRepository,
	conflict ConflictService,
	versions VersionService,
	permissions PermissionService,
	storageFactory storage.Factory,
	logService LogService,
) MoverService {
	return &moverServiceImpl{
		db:             db,
		folderRepo:     folderRepo,
		fileRepo:       fileRepo,
		versionRepo:    versionRepo,
		diskRepo:       diskRepo,
		permRepo:       permRepo,
		conflict:       conflict,
		versions:       versions,
		permissions:    permissions,
		storageFactory: storageFactory,
		logService:     logService,
	}
}

// preparedTransfer is the output of the prepare phase shared by all four
// public operations.
type preparedTransfer struct {
	source Resource
	dest   *models.Folder
	disk   *models.Disk
	policy models.ConflictPolicy
}

func (m *moverServiceImpl) prepare(driveID, userID, sourceID, destFolderID string, kind ResourceKind, needOnSource models.PermissionType, policy models.ConflictPolicy) (*preparedTransfer, error) {
	var source Resource
	if kind == ResourceFolder {
		folder, err := m.folderRepo.FindByIDInDrive(driveID, sourceID)
		if err != nil {
			return nil, err
		}
		if folder == nil {
			return nil, fmt.Errorf("folder %s: %w", sourceID, apperr.ErrNotFound)
		}
		source = FolderResource(folder)
	} else {
		file, err := m.fileRepo.FindByIDInDrive(driveID, sourceID)
		if err != nil {
			return nil, err
		}
		if file == nil {
			return nil, fmt.Errorf("file %s: %w", sourceID, apperr.ErrNotFound)
		}
		source = FileResource(file)
	}

	dest, err := m.folderRepo.FindByIDInDrive(driveID, destFolderID)
	if err != nil {
		return nil, err
	}
	if dest == nil {
		return nil, fmt.Errorf("destination folder %s: %w", destFolderID, apperr.ErrNotFound)
	}
	if dest.Deleted {
		return nil, fmt.Errorf("destination folder %s is trashed: %w", dest.ID, apperr.ErrInvalidTrashState)
	}

	if source.DiskID() != dest.DiskID {
		return nil, fmt.Errorf("%s -> %s: %w", source.DiskID(), dest.DiskID, apperr.ErrCrossDiskOperation)
	}

	disk, err := m.diskRepo.FindByIDInDrive(driveID, dest.DiskID)
	if err != nil {
		return nil, err
	}
	if disk == nil {
		return nil, fmt.Errorf("disk %s: %w", dest.DiskID, apperr.ErrNotFound)
	}

	if source.Kind == ResourceFolder && m.isProtected(disk, source.ID()) {
		return nil, fmt.Errorf("folder %s is the disk root or trash: %w", source.ID(), apperr.ErrProtectedResource)
	}

	if source.Kind == ResourceFolder {
		if err := m.checkCircular(driveID, source.ID(), dest); err != nil {
			return nil, err
		}
	}

	if err := requirePermission(m.permissions, driveID, userID, source.ID(), needOnSource); err != nil {
		return nil, err
	}
	if err := requirePermission(m.permissions, driveID, userID, dest.ID, models.PermissionUpload); err != nil {
		return nil, err
	}

	return &preparedTransfer{
		source: source,
		dest:   dest,
		disk:   disk,
		policy: models.NormalizeConflictPolicy(policy),
	}, nil
}

func (m *moverServiceImpl) isProtected(disk *models.Disk, folderID string) bool {
	if disk.RootFolderID != nil && *disk.RootFolderID == folderID {
		return true
	}
	if disk.TrashFolderID != nil && *disk.TrashFolderID == folderID {
		return true
	}
	return false
}

// checkCircular walks the destination's ancestor chain back to the disk root;
// finding the source folder in that chain means the move would orphan the
// subtree inside itself.
func (m *moverServiceImpl) checkCircular(driveID, sourceFolderID string, dest *models.Folder) error {
	if dest.ID == sourceFolderID {
		return fmt.Errorf("folder %s into itself: %w", sourceFolderID, apperr.ErrCircularReference)
	}
	current := dest
	for current.ParentFolderID != nil {
		if *current.ParentFolderID == sourceFolderID {
			return fmt.Errorf("folder %s into its descendant %s: %w", sourceFolderID, dest.ID, apperr.ErrCircularReference)
		}
		parent, err := m.folderRepo.FindByIDInDrive(driveID, *current.ParentFolderID)
		if err != nil {
			return err
		}
		if parent == nil {
			return nil
		}
		current = parent
	}
	return nil
}

func (m *moverServiceImpl) MoveFile(driveID, userID, fileID, destFolderID string, policy models.ConflictPolicy) (*models.File, error) {
	prepared, err := m.prepare(driveID, userID, fileID, destFolderID, ResourceFile, models.PermissionEdit, policy)
	if err != nil {
		return nil, err
	}
	file := prepared.source.File
	if file.Deleted {
		return nil, fmt.Errorf("file %s is trashed: %w", file.ID, apperr.ErrInvalidTrashState)
	}

	var result *models.File
	err = m.db.Transaction(func(tx *gorm.DB) error {
		result, err = m.moveFileTx(tx, driveID, userID, file, prepared.dest, file.Name, prepared.policy)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (m *moverServiceImpl) RenameFile(driveID, userID, fileID, newName string, policy models.ConflictPolicy) (*models.File, error) {
	file, err := m.fileRepo.FindByIDInDrive(driveID, fileID)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, fmt.Errorf("file %s: %w", fileID, apperr.ErrNotFound)
	}
	if file.ParentFolderID == nil {
		return nil, fmt.Errorf("file %s has no parent: %w", fileID, apperr.ErrNotFound)
	}
	return m.MoveFileWithName(driveID, userID, fileID, *file.ParentFolderID, newName, policy)
}

// MoveFileWithName is MoveFile with a rename applied in the same operation.
func (m *moverServiceImpl) MoveFileWithName(driveID, userID, fileID, destFolderID, newName string, policy models.ConflictPolicy) (*models.File, error) {
	prepared, err := m.prepare(driveID, userID, fileID, destFolderID, ResourceFile, models.PermissionEdit, policy)
	if err != nil {
		return nil, err
	}
	file := prepared.source.File
	if file.Deleted {
		return nil, fmt.Errorf("file %s is trashed: %w", file.ID, apperr.ErrInvalidTrashState)
	}

	var result *models.File
	err = m.db.Transaction(func(tx *gorm.DB) error {
		result, err = m.moveFileTx(tx, driveID, userID, file, prepared.dest, newName, prepared.policy)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (m *moverServiceImpl) moveFileTx(tx *gorm.DB, driveID, userID string, file *models.File, dest *models.Folder, name string, policy models.ConflictPolicy) (*models.File, error) {
	resolution, err := m.conflict.ResolveTx(tx, driveID, dest.FullPath, name, false, policy)
	if err != nil {
		return nil, err
	}
	fileRepo := m.fileRepo.WithTx(tx)

	if resolution.Abort() {
		existing, err := fileRepo.FindByPath(driveID, helpers.JoinPath(dest.FullPath, name, false))
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID == file.ID {
			return existing, nil
		}
		return nil, fmt.Errorf("file %q in %s: %w", name, dest.FullPath, apperr.ErrConflictAbort)
	}

	if policy == models.ConflictReplace || policy == models.ConflictKeepNewer {
		existing, err := fileRepo.FindByPath(driveID, resolution.FullPath)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != file.ID {
			if policy == models.ConflictKeepNewer && existing.UpdatedAt.After(file.UpdatedAt) {
				return existing, nil
			}
			// The destination file's identity survives: it gains a version
			// carrying the moved file's content, and the source row goes away.
			if _, err := m.versions.SupersedeVersion(tx, existing, VersionInput{
				Name:      existing.Name,
				Extension: file.Extension,
				FileSize:  file.FileSize,
				RawURL:    file.RawURL,
			}, userID); err != nil {
				return nil, err
			}
			if err := fileRepo.Update(existing); err != nil {
				return nil, err
			}
			if err := m.versionRepo.WithTx(tx).DeleteByFile(file.ID); err != nil {
				return nil, err
			}
			if err := m.permRepo.WithTx(tx).DeleteByResource(file.ID); err != nil {
				return nil, err
			}
			if err := fileRepo.HardDelete(file.ID); err != nil {
				return nil, err
			}
			return existing, nil
		}
	}

	if err := m.MoveFileCore(tx, userID, file, dest, resolution.Name); err != nil {
		return nil, err
	}
	return file, nil
}

func (m *moverServiceImpl) MoveFileCore(tx *gorm.DB, userID string, file *models.File, dest *models.Folder, newName string) error {
	file.Name = newName
	_, file.Extension = helpers.SplitExtension(newName)
	file.ParentFolderID = &dest.ID
	file.FullPath = helpers.JoinPath(dest.FullPath, newName, false)
	file.LastUpdatedBy = userID
	if err := m.fileRepo.WithTx(tx).Update(file); err != nil {
		return err
	}
	return m.permRepo.WithTx(tx).UpdateResourcePath(file.DriveID, file.ID, file.FullPath)
}

func (m *moverServiceImpl) MoveFolder(driveID, userID, folderID, destFolderID string, policy models.ConflictPolicy) (*models.Folder, error) {
	prepared, err := m.prepare(driveID, userID, folderID, destFolderID, ResourceFolder, models.PermissionEdit, policy)
	if err != nil {
		return nil, err
	}
	folder := prepared.source.Folder
	if folder.Deleted {
		return nil, fmt.Errorf("folder %s is trashed: %w", folder.ID, apperr.ErrInvalidTrashState)
	}

	err = m.db.Transaction(func(tx *gorm.DB) error {
		return m.moveFolderTx(tx, driveID, userID, folder, prepared.dest, folder.Name, prepared.policy)
	})
	if err != nil {
		return nil, err
	}
	return folder, nil
}

func (m *moverServiceImpl) RenameFolder(driveID, userID, folderID, newName string, policy models.ConflictPolicy) (*models.Folder, error) {
	folder, err := m.folderRepo.FindByIDInDrive(driveID, folderID)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, fmt.Errorf("folder %s: %w", folderID, apperr.ErrNotFound)
	}
	if folder.ParentFolderID == nil {
		return nil, fmt.Errorf("disk root cannot be renamed: %w", apperr.ErrProtectedResource)
	}
	prepared, err := m.prepare(driveID, userID, folderID, *folder.ParentFolderID, ResourceFolder, models.PermissionEdit, policy)
	if err != nil {
		return nil, err
	}
	err = m.db.Transaction(func(tx *gorm.DB) error {
		return m.moveFolderTx(tx, driveID, userID, folder, prepared.dest, newName, prepared.policy)
	})
	if err != nil {
		return nil, err
	}
	return folder, nil
}

func (m *moverServiceImpl) moveFolderTx(tx *gorm.DB, driveID, userID string, folder *models.Folder, dest *models.Folder, name string, policy models.ConflictPolicy) error {
	resolution, err := m.conflict.ResolveTx(tx, driveID, dest.FullPath, name, true, policy)
	if err != nil {
		return err
	}
	if resolution.Abort() {
		existing, err := m.folderRepo.WithTx(tx).FindByPath(driveID, helpers.JoinPath(dest.FullPath, name, true))
		if err != nil {
			return err
		}
		if existing != nil && existing.ID == folder.ID {
			return nil
		}
		return fmt.Errorf("folder %q in %s: %w", name, dest.FullPath, apperr.ErrConflictAbort)
	}
	if policy == models.ConflictReplace || policy == models.ConflictKeepNewer {
		// Folders have no version chain to supersede; an occupied path stays
		// a conflict unless the caller opts into KEEP_BOTH.
		existing, err := m.folderRepo.WithTx(tx).FindByPath(driveID, resolution.FullPath)
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != folder.ID {
			return fmt.Errorf("folder %q in %s: %w", name, dest.FullPath, apperr.ErrConflictAbort)
		}
	}
	return m.MoveFolderCore(tx, userID, folder, dest, resolution.Name)
}

// MoveFolderCore reparents the folder and rewrites the full path of every
// descendant by prefix substitution, walking the subtree with an explicit
// breadth-first queue.
func (m *moverServiceImpl) MoveFolderCore(tx *gorm.DB, userID string, folder *models.Folder, dest *models.Folder, newName string) error {
	folderRepo := m.folderRepo.WithTx(tx)
	fileRepo := m.fileRepo.WithTx(tx)
	permRepo := m.permRepo.WithTx(tx)

	oldPrefix := folder.FullPath
	newPrefix := helpers.JoinPath(dest.FullPath, newName, true)

	folder.Name = newName
	folder.ParentFolderID = &dest.ID
	folder.FullPath = newPrefix
	folder.LastUpdatedBy = userID
	if err := folderRepo.Update(folder); err != nil {
		return err
	}
	if err := permRepo.UpdateResourcePath(folder.DriveID, folder.ID, folder.FullPath); err != nil {
		return err
	}

	queue := []string{folder.ID}
	for len(queue) > 0 {
		parentID := queue[0]
		queue = queue[1:]

		childFolders, err := folderRepo.ListByParent(folder.DriveID, parentID, 0, 0)
		if err != nil {
			return err
		}
		for i := range childFolders {
			child := &childFolders[i]
			child.FullPath = newPrefix + strings.TrimPrefix(child.FullPath, oldPrefix)
			if err := folderRepo.Update(child); err != nil {
				return err
			}
			if err := permRepo.UpdateResourcePath(child.DriveID, child.ID, child.FullPath); err != nil {
				return err
			}
			queue = append(queue, child.ID)
		}

		childFiles, err := fileRepo.ListByParent(folder.DriveID, parentID, 0, 0)
		if err != nil {
			return err
		}
		for i := range childFiles {
			child := &childFiles[i]
			child.FullPath = newPrefix + strings.TrimPrefix(child.FullPath, oldPrefix)
			if err := fileRepo.Update(child); err != nil {
				return err
			}
			if err := permRepo.UpdateResourcePath(child.DriveID, child.ID, child.FullPath); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *moverServiceImpl) CopyFile(driveID, userID, fileID, destFolderID string, policy models.ConflictPolicy) (*models.File, error) {
	prepared, err := m.prepare(driveID, userID, fileID, destFolderID, ResourceFile, models.PermissionView, policy)
	if err != nil {
		return nil, err
	}

	var result *models.File
	var sideEffects []objectCopy
	err = m.db.Transaction(func(tx *gorm.DB) error {
		result, sideEffects, err = m.copyFileTx(tx, driveID, userID, prepared.source.File, prepared.dest, prepared.source.File.Name, prepared.policy)
		return err
	})
	if err != nil {
		return nil, err
	}
	m.dispatchObjectCopies(prepared.disk, sideEffects)
	return result, nil
}

// objectCopy is a post-commit cloud side effect.
type objectCopy struct {
	sourceKey string
	destKey   string
}

func (m *moverServiceImpl) copyFileTx(tx *gorm.DB, driveID, userID string, source *models.File, dest *models.Folder, name string, policy models.ConflictPolicy) (*models.File, []objectCopy, error) {
	resolution, err := m.conflict.ResolveTx(tx, driveID, dest.FullPath, name, false, policy)
	if err != nil {
		return nil, nil, err
	}
	fileRepo := m.fileRepo.WithTx(tx)

	if resolution.Abort() {
		return nil, nil, fmt.Errorf("file %q in %s: %w", name, dest.FullPath, apperr.ErrConflictAbort)
	}

	if policy == models.ConflictReplace || policy == models.ConflictKeepNewer {
		existing, err := fileRepo.FindByPath(driveID, resolution.FullPath)
		if err != nil {
			return nil, nil, err
		}
		if existing != nil && existing.ID != source.ID {
			if policy == models.ConflictKeepNewer && existing.UpdatedAt.After(source.UpdatedAt) {
				return existing, nil, nil
			}
			sourceKey := source.ObjectKey()
			if _, err := m.versions.SupersedeVersion(tx, existing, VersionInput{
				Name:      existing.Name,
				Extension: source.Extension,
				FileSize:  source.FileSize,
			}, userID); err != nil {
				return nil, nil, err
			}
			existing.RawURL = existing.ObjectKey()
			if err := fileRepo.Update(existing); err != nil {
				return nil, nil, err
			}
			return existing, []objectCopy{{sourceKey: sourceKey, destKey: existing.ObjectKey()}}, nil
		}
	}

	copyFile := &models.File{
		BaseModel:      models.BaseModel{ID: uuid.NewString()},
		DriveID:        driveID,
		DiskID:         source.DiskID,
		Name:           resolution.Name,
		ParentFolderID: &dest.ID,
		Extension:      source.Extension,
		FullPath:       resolution.FullPath,
		FileSize:       source.FileSize,
		UploadStatus:   source.UploadStatus,
		CreatedBy:      userID,
		LastUpdatedBy:  userID,
		ExpiresAt:      source.ExpiresAt,
		Notes:          source.Notes,
	}
	if err := fileRepo.Create(copyFile); err != nil {
		return nil, nil, err
	}
	if _, err := m.versions.CreateInitialVersion(tx, copyFile, userID); err != nil {
		return nil, nil, err
	}
	copyFile.RawURL = copyFile.ObjectKey()
	if err := fileRepo.Update(copyFile); err != nil {
		return nil, nil, err
	}
	return copyFile, []objectCopy{{sourceKey: source.ObjectKey(), destKey: copyFile.ObjectKey()}}, nil
}

func (m *moverServiceImpl) CopyFolder(driveID, userID, folderID, destFolderID string, policy models.ConflictPolicy) (*models.Folder, error) {
	prepared, err := m.prepare(driveID, userID, folderID, destFolderID, ResourceFolder, models.PermissionView, policy)
	if err != nil {
		return nil, err
	}

	var result *models.Folder
	var sideEffects []objectCopy
	err = m.db.Transaction(func(tx *gorm.DB) error {
		result, sideEffects, err = m.copyFolderTx(tx, driveID, userID, prepared.source.Folder, prepared.dest, prepared.policy)
		return err
	})
	if err != nil {
		return nil, err
	}
	m.dispatchObjectCopies(prepared.disk, sideEffects)
	return result, nil
}

// copyFolderTx copies the folder shallowly, then walks the source subtree
// breadth-first, duplicating every child inside the same transaction.
func (m *moverServiceImpl) copyFolderTx(tx *gorm.DB, driveID, userID string, source *models.Folder, dest *models.Folder, policy models.ConflictPolicy) (*models.Folder, []objectCopy, error) {
	folderRepo := m.folderRepo.WithTx(tx)
	fileRepo := m.fileRepo.WithTx(tx)

	resolution, err := m.conflict.ResolveTx(tx, driveID, dest.FullPath, source.Name, true, policy)
	if err != nil {
		return nil, nil, err
	}
	if resolution.Abort() {
		return nil, nil, fmt.Errorf("folder %q in %s: %w", source.Name, dest.FullPath, apperr.ErrConflictAbort)
	}

	root, err := folderRepo.FindByPath(driveID, resolution.FullPath)
	if err != nil {
		return nil, nil, err
	}
	if root == nil {
		root = &models.Folder{
			BaseModel:      models.BaseModel{ID: uuid.NewString()},
			DriveID:        driveID,
			DiskID:         source.DiskID,
			Name:           resolution.Name,
			ParentFolderID: &dest.ID,
			FullPath:       resolution.FullPath,
			CreatedBy:      userID,
			LastUpdatedBy:  userID,
			Notes:          source.Notes,
		}
		if err := folderRepo.Create(root); err != nil {
			return nil, nil, err
		}
	}

	var copies []objectCopy
	type pair struct {
		sourceID string
		target   *models.Folder
	}
	queue := []pair{{sourceID: source.ID, target: root}}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		childFolders, err := folderRepo.ListByParent(driveID, current.sourceID, 0, 0)
		if err != nil {
			return nil, nil, err
		}
		for i := range childFolders {
			child := &childFolders[i]
			childResolution, err := m.conflict.ResolveTx(tx, driveID, current.target.FullPath, child.Name, true, models.ConflictKeepBoth)
			if err != nil {
				return nil, nil, err
			}
			childCopy := &models.Folder{
				BaseModel:      models.BaseModel{ID: uuid.NewString()},
				DriveID:        driveID,
				DiskID:         child.DiskID,
				Name:           childResolution.Name,
				ParentFolderID: &current.target.ID,
				FullPath:       childResolution.FullPath,
				CreatedBy:      userID,
				LastUpdatedBy:  userID,
				Notes:          child.Notes,
			}
			if err := folderRepo.Create(childCopy); err != nil {
				return nil, nil, err
			}
			queue = append(queue, pair{sourceID: child.ID, target: childCopy})
		}

		childFiles, err := fileRepo.ListByParent(driveID, current.sourceID, 0, 0)
		if err != nil {
			return nil, nil, err
		}
		for i := range childFiles {
			child := &childFiles[i]
			_, fileCopies, err := m.copyFileTx(tx, driveID, userID, child, current.target, child.Name, models.ConflictKeepBoth)
			if err != nil {
				return nil, nil, err
			}
			copies = append(copies, fileCopies...)
		}
	}

	return root, copies, nil
}

// dispatchObjectCopies runs cloud-object copies after commit. Failures are
// logged and accepted as eventual-consistency gaps; they never fail the
// directory operation.
func (m *moverServiceImpl) dispatchObjectCopies(disk *models.Disk, copies []objectCopy) {
	if len(copies) == 0 {
		return
	}
	backend, err := m.storageFactory.ForDisk(disk)
	if err != nil {
		m.logService.Log.WithFields(logrus.Fields{
			"disk":  disk.ID,
			"error": err.Error(),
		}).Warn("object copy skipped: no storage backend")
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		for _, c := range copies {
			if err := backend.CopyObject(ctx, c.sourceKey, c.destKey); err != nil {
				m.logService.Log.WithFields(logrus.Fields{
					"disk":   disk.ID,
					"source": c.sourceKey,
					"dest":   c.destKey,
					"error":  err.Error(),
				}).Error("object copy failed")
			}
		}
	}()
}
