package services

import (
	"Shelved/internal/apperr"
	"Shelved/internal/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMoverService_MoveFile(t *testing.T) {
	env := newTestEnv(t)
	dest := env.mustCreateFolder(t, "", "archive")
	file := env.mustCreateFile(t, "", "doc.txt", 10)

	moved, err := env.mover.MoveFile(env.drive.ID, testOwner, file.ID, dest.ID, models.ConflictKeepBoth)

	assert.NoError(t, err)
	assert.Equal(t, file.ID, moved.ID)
	assert.Equal(t, env.disk.ID+"::/archive/doc.txt", moved.FullPath)
	assert.Equal(t, dest.ID, *moved.ParentFolderID)
}

func TestMoverService_MoveFileKeepsObjectKey(t *testing.T) {
	env := newTestEnv(t)
	dest := env.mustCreateFolder(t, "", "archive")
	file := env.mustCreateFile(t, "", "doc.txt", 10)
	keyBefore := file.ObjectKey()

	moved, err := env.mover.MoveFile(env.drive.ID, testOwner, file.ID, dest.ID, models.ConflictKeepBoth)

	assert.NoError(t, err)
	assert.Equal(t, keyBefore, moved.ObjectKey())
	// Moves never touch object storage.
	assert.Empty(t, env.storage.Storage.CopiedPairs())
}

func TestMoverService_MoveFolderRewritesSubtreePaths(t *testing.T) {
	env := newTestEnv(t)
	source := env.mustCreateFolder(t, "", "projects")
	env.mustCreateFolder(t, env.disk.ID+"::/projects", "api")
	env.mustCreateFile(t, env.disk.ID+"::/projects/api", "main.go", 10)
	dest := env.mustCreateFolder(t, "", "archive")

	moved, err := env.mover.MoveFolder(env.drive.ID, testOwner, source.ID, dest.ID, models.ConflictKeepBoth)

	assert.NoError(t, err)
	assert.Equal(t, env.disk.ID+"::/archive/projects/", moved.FullPath)

	sub, err := env.folderRepo.FindByPath(env.drive.ID, env.disk.ID+"::/archive/projects/api/")
	assert.NoError(t, err)
	assert.NotNil(t, sub)

	file, err := env.fileRepo.FindByPath(env.drive.ID, env.disk.ID+"::/archive/projects/api/main.go")
	assert.NoError(t, err)
	assert.NotNil(t, file)

	// The old subtree paths are gone.
	stale, err := env.folderRepo.FindByPath(env.drive.ID, env.disk.ID+"::/projects/")
	assert.NoError(t, err)
	assert.Nil(t, stale)
}

func TestMoverService_MoveFolderRewritesGrantPaths(t *testing.T) {
	env := newTestEnv(t)
	source := env.mustCreateFolder(t, "", "projects")
	dest := env.mustCreateFolder(t, "", "archive")
	grant := &models.PermissionGrant{
		DriveID:        env.drive.ID,
		ResourceID:     source.ID,
		ResourcePath:   source.FullPath,
		GranteeUserID:  "collab-1",
		PermissionType: models.PermissionView,
		Inheritable:    true,
	}
	assert.NoError(t, env.permRepo.Create(grant))

	_, err := env.mover.MoveFolder(env.drive.ID, testOwner, source.ID, dest.ID, models.ConflictKeepBoth)
	assert.NoError(t, err)

	grants, err := env.permRepo.ListByResource(env.drive.ID, source.ID)
	assert.NoError(t, err)
	if assert.Len(t, grants, 1) {
		assert.Equal(t, env.disk.ID+"::/archive/projects/", grants[0].ResourcePath)
	}
}

func TestMoverService_MoveIntoOwnDescendantRejected(t *testing.T) {
	env := newTestEnv(t)
	parent := env.mustCreateFolder(t, "", "a")
	child := env.mustCreateFolder(t, env.disk.ID+"::/a", "b")

	_, err := env.mover.MoveFolder(env.drive.ID, testOwner, parent.ID, child.ID, models.ConflictKeepBoth)
	assert.ErrorIs(t, err, apperr.ErrCircularReference)

	_, err = env.mover.MoveFolder(env.drive.ID, testOwner, parent.ID, parent.ID, models.ConflictKeepBoth)
	assert.ErrorIs(t, err, apperr.ErrCircularReference)
}

func TestMoverService_CrossDiskRejected(t *testing.T) {
	env := newTestEnv(t)
	other, err := env.drives.CreateDisk(env.drive.ID, testOwner, CreateDiskParams{
		Name: "secondary",
		Type: models.DiskTypeS3,
	})
	assert.NoError(t, err)
	file := env.mustCreateFile(t, "", "doc.txt", 10)

	_, err = env.mover.MoveFile(env.drive.ID, testOwner, file.ID, *other.RootFolderID, models.ConflictKeepBoth)

	assert.ErrorIs(t, err, apperr.ErrCrossDiskOperation)
}

func TestMoverService_MoveProtectedFolderRejected(t *testing.T) {
	env := newTestEnv(t)
	dest := env.mustCreateFolder(t, "", "archive")

	_, err := env.mover.MoveFolder(env.drive.ID, testOwner, env.root.ID, dest.ID, models.ConflictKeepBoth)
	assert.ErrorIs(t, err, apperr.ErrProtectedResource)

	_, err = env.mover.MoveFolder(env.drive.ID, testOwner, env.trashFolder.ID, dest.ID, models.ConflictKeepBoth)
	assert.ErrorIs(t, err, apperr.ErrProtectedResource)
}

func TestMoverService_MoveFileKeepBothRenames(t *testing.T) {
	env := newTestEnv(t)
	dest := env.mustCreateFolder(t, "", "archive")
	env.mustCreateFile(t, env.disk.ID+"::/archive", "doc.txt", 1)
	file := env.mustCreateFile(t, "", "doc.txt", 2)

	moved, err := env.mover.MoveFile(env.drive.ID, testOwner, file.ID, dest.ID, models.ConflictKeepBoth)

	assert.NoError(t, err)
	assert.Equal(t, "doc (2).txt", moved.Name)
	assert.Equal(t, env.disk.ID+"::/archive/doc (2).txt", moved.FullPath)
}

func TestMoverService_MoveFolderKeepBothSuffixesSubtree(t *testing.T) {
	env := newTestEnv(t)
	source := env.mustCreateFolder(t, "", "a")
	env.mustCreateFolder(t, env.disk.ID+"::/a", "b")
	env.mustCreateFile(t, env.disk.ID+"::/a/b", "c.txt", 10)
	dest := env.mustCreateFolder(t, "", "z")
	env.mustCreateFolder(t, env.disk.ID+"::/z", "a")

	moved, err := env.mover.MoveFolder(env.drive.ID, testOwner, source.ID, dest.ID, models.ConflictKeepBoth)

	assert.NoError(t, err)
	assert.Equal(t, "a (2)", moved.Name)
	assert.Equal(t, env.disk.ID+"::/z/a (2)/", moved.FullPath)

	// Descendants live under the suffixed root.
	file, err := env.fileRepo.FindByPath(env.drive.ID, env.disk.ID+"::/z/a (2)/b/c.txt")
	assert.NoError(t, err)
	assert.NotNil(t, file)

	// The folder that was already at the destination is untouched.
	occupied, err := env.folderRepo.FindByPath(env.drive.ID, env.disk.ID+"::/z/a/")
	assert.NoError(t, err)
	assert.NotNil(t, occupied)
}

func TestMoverService_MoveFileReplaceSupersedesDestination(t *testing.T) {
	env := newTestEnv(t)
	dest := env.mustCreateFolder(t, "", "archive")
	existing := env.mustCreateFile(t, env.disk.ID+"::/archive", "doc.txt", 1)
	source := env.mustCreateFile(t, "", "doc.txt", 2)

	moved, err := env.mover.MoveFile(env.drive.ID, testOwner, source.ID, dest.ID, models.ConflictReplace)

	assert.NoError(t, err)
	// The destination identity survives, carrying the source's content.
	assert.Equal(t, existing.ID, moved.ID)
	assert.Equal(t, int64(2), moved.FileSize)

	gone, err := env.fileRepo.FindByIDInDrive(env.drive.ID, source.ID)
	assert.NoError(t, err)
	assert.Nil(t, gone)

	versions, err := env.versionRepo.ListByFile(env.drive.ID, existing.ID)
	assert.NoError(t, err)
	assert.Len(t, versions, 2)
}

func TestMoverService_MoveFileKeepOriginalAborts(t *testing.T) {
	env := newTestEnv(t)
	dest := env.mustCreateFolder(t, "", "archive")
	env.mustCreateFile(t, env.disk.ID+"::/archive", "doc.txt", 1)
	file := env.mustCreateFile(t, "", "doc.txt", 2)

	_, err := env.mover.MoveFile(env.drive.ID, testOwner, file.ID, dest.ID, models.ConflictKeepOriginal)

	assert.ErrorIs(t, err, apperr.ErrConflictAbort)
}

func TestMoverService_CopyFileCreatesNewIdentity(t *testing.T) {
	env := newTestEnv(t)
	dest := env.mustCreateFolder(t, "", "archive")
	source := env.mustCreateFile(t, "", "doc.txt", 10)

	copied, err := env.mover.CopyFile(env.drive.ID, testOwner, source.ID, dest.ID, models.ConflictKeepBoth)

	assert.NoError(t, err)
	assert.NotEqual(t, source.ID, copied.ID)
	assert.Equal(t, env.disk.ID+"::/archive/doc.txt", copied.FullPath)
	assert.Equal(t, int64(10), copied.FileSize)

	versions, err := env.versionRepo.ListByFile(env.drive.ID, copied.ID)
	assert.NoError(t, err)
	assert.Len(t, versions, 1)

	assert.Eventually(t, func() bool {
		pairs := env.storage.Storage.CopiedPairs()
		return len(pairs) == 1 && pairs[0][0] == source.ObjectKey() && pairs[0][1] == copied.ObjectKey()
	}, time.Second, 10*time.Millisecond)
}

func TestMoverService_CopyFolderCopiesSubtree(t *testing.T) {
	env := newTestEnv(t)
	source := env.mustCreateFolder(t, "", "projects")
	env.mustCreateFolder(t, env.disk.ID+"::/projects", "api")
	env.mustCreateFile(t, env.disk.ID+"::/projects/api", "main.go", 10)
	dest := env.mustCreateFolder(t, "", "backup")

	copied, err := env.mover.CopyFolder(env.drive.ID, testOwner, source.ID, dest.ID, models.ConflictKeepBoth)

	assert.NoError(t, err)
	assert.NotEqual(t, source.ID, copied.ID)
	assert.Equal(t, env.disk.ID+"::/backup/projects/", copied.FullPath)

	copiedFile, err := env.fileRepo.FindByPath(env.drive.ID, env.disk.ID+"::/backup/projects/api/main.go")
	assert.NoError(t, err)
	assert.NotNil(t, copiedFile)

	// The original subtree is untouched.
	original, err := env.fileRepo.FindByPath(env.drive.ID, env.disk.ID+"::/projects/api/main.go")
	assert.NoError(t, err)
	assert.NotNil(t, original)

	assert.Eventually(t, func() bool {
		return len(env.storage.Storage.CopiedPairs()) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestMoverService_RenameFileRewritesPath(t *testing.T) {
	env := newTestEnv(t)
	file := env.mustCreateFile(t, "", "doc.txt", 10)

	renamed, err := env.mover.RenameFile(env.drive.ID, testOwner, file.ID, "notes.md", models.ConflictKeepBoth)

	assert.NoError(t, err)
	assert.Equal(t, "notes.md", renamed.Name)
	assert.Equal(t, "md", renamed.Extension)
	assert.Equal(t, env.disk.ID+"::/notes.md", renamed.FullPath)
}

func TestMoverService_RenameFolderRewritesSubtree(t *testing.T) {
	env := newTestEnv(t)
	folder := env.mustCreateFolder(t, "", "projects")
	env.mustCreateFile(t, env.disk.ID+"::/projects", "doc.txt", 10)

	renamed, err := env.mover.RenameFolder(env.drive.ID, testOwner, folder.ID, "work", models.ConflictKeepBoth)

	assert.NoError(t, err)
	assert.Equal(t, env.disk.ID+"::/work/", renamed.FullPath)

	file, err := env.fileRepo.FindByPath(env.drive.ID, env.disk.ID+"::/work/doc.txt")
	assert.NoError(t, err)
	assert.NotNil(t, file)
}

func TestMoverService_MoveTrashedFileRejected(t *testing.T) {
	env := newTestEnv(t)
	dest := env.mustCreateFolder(t, "", "archive")
	file := env.mustCreateFile(t, "", "doc.txt", 10)
	_, err := env.trash.DeleteResource(env.drive.ID, testOwner, file.ID)
	assert.NoError(t, err)

	_, err = env.mover.MoveFile(env.drive.ID, testOwner, file.ID, dest.ID, models.ConflictKeepBoth)

	assert.ErrorIs(t, err, apperr.ErrInvalidTrashState)
}

func TestMoverService_StrangerCannotMove(t *testing.T) {
	env := newTestEnv(t)
	dest := env.mustCreateFolder(t, "", "archive")
	file := env.mustCreateFile(t, "", "doc.txt", 10)

	_, err := env.mover.MoveFile(env.drive.ID, "intruder", file.ID, dest.ID, models.ConflictKeepBoth)

	assert.ErrorIs(t, err, apperr.ErrPermissionDenied)
}
