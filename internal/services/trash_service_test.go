package services

import (
	"Shelved/internal/apperr"
	"Shelved/internal/models"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTrashService_DeleteFileMovesIntoTrash(t *testing.T) {
	env := newTestEnv(t)
	file := env.mustCreateFile(t, "", "doc.txt", 10)
	priorParent := *file.ParentFolderID

	resource, err := env.trash.DeleteResource(env.drive.ID, testOwner, file.ID)

	assert.NoError(t, err)
	assert.Equal(t, ResourceFile, resource.Kind)
	trashed := resource.File
	assert.True(t, trashed.Deleted)
	assert.Equal(t, priorParent, *trashed.RestoreTrashPriorFolderID)
	assert.Equal(t, env.trashFolder.ID, *trashed.ParentFolderID)
	assert.True(t, strings.HasPrefix(trashed.FullPath, env.trashFolder.FullPath))
}

func TestTrashService_DeleteFolderMarksSubtree(t *testing.T) {
	env := newTestEnv(t)
	folder := env.mustCreateFolder(t, "", "projects")
	sub := env.mustCreateFolder(t, env.disk.ID+"::/projects", "api")
	file := env.mustCreateFile(t, env.disk.ID+"::/projects/api", "main.go", 10)

	_, err := env.trash.DeleteResource(env.drive.ID, testOwner, folder.ID)
	assert.NoError(t, err)

	subAfter, err := env.folderRepo.FindByIDInDrive(env.drive.ID, sub.ID)
	assert.NoError(t, err)
	assert.True(t, subAfter.Deleted)
	// Descendants restore to their own parent, not the subtree root's parent.
	assert.Equal(t, folder.ID, *subAfter.RestoreTrashPriorFolderID)
	assert.True(t, strings.HasPrefix(subAfter.FullPath, env.trashFolder.FullPath))

	fileAfter, err := env.fileRepo.FindByIDInDrive(env.drive.ID, file.ID)
	assert.NoError(t, err)
	assert.True(t, fileAfter.Deleted)
	assert.Equal(t, sub.ID, *fileAfter.RestoreTrashPriorFolderID)
}

func TestTrashService_DeleteProtectedFolderRejected(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.trash.DeleteResource(env.drive.ID, testOwner, env.root.ID)
	assert.ErrorIs(t, err, apperr.ErrProtectedResource)

	_, err = env.trash.DeleteResource(env.drive.ID, testOwner, env.trashFolder.ID)
	assert.ErrorIs(t, err, apperr.ErrProtectedResource)
}

func TestTrashService_DeleteTwiceRejected(t *testing.T) {
	env := newTestEnv(t)
	file := env.mustCreateFile(t, "", "doc.txt", 10)

	_, err := env.trash.DeleteResource(env.drive.ID, testOwner, file.ID)
	assert.NoError(t, err)

	_, err = env.trash.DeleteResource(env.drive.ID, testOwner, file.ID)
	assert.ErrorIs(t, err, apperr.ErrInvalidTrashState)
}

func TestTrashService_DeleteSameNameTwiceKeepsBoth(t *testing.T) {
	env := newTestEnv(t)
	first := env.mustCreateFile(t, "", "doc.txt", 1)
	_, err := env.trash.DeleteResource(env.drive.ID, testOwner, first.ID)
	assert.NoError(t, err)

	second := env.mustCreateFile(t, "", "doc.txt", 2)
	resource, err := env.trash.DeleteResource(env.drive.ID, testOwner, second.ID)
	assert.NoError(t, err)

	assert.Equal(t, "doc (2).txt", resource.File.Name)
}

func TestTrashService_RestoreFileToPriorParent(t *testing.T) {
	env := newTestEnv(t)
	folder := env.mustCreateFolder(t, "", "projects")
	file := env.mustCreateFile(t, env.disk.ID+"::/projects", "doc.txt", 10)
	originalPath := file.FullPath

	_, err := env.trash.DeleteResource(env.drive.ID, testOwner, file.ID)
	assert.NoError(t, err)

	result, err := env.trash.RestoreFromTrash(env.drive.ID, testOwner, file.ID, RestoreParams{Policy: models.ConflictKeepBoth})
	assert.NoError(t, err)
	if assert.Len(t, result.RestoredFiles, 1) {
		restored := result.RestoredFiles[0]
		assert.Equal(t, originalPath, restored.FullPath)
		assert.Equal(t, folder.ID, *restored.ParentFolderID)
		assert.False(t, restored.Deleted)
	}
}

func TestTrashService_RestoreFolderRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	folder := env.mustCreateFolder(t, "", "projects")
	env.mustCreateFolder(t, env.disk.ID+"::/projects", "api")
	env.mustCreateFile(t, env.disk.ID+"::/projects/api", "main.go", 10)

	_, err := env.trash.DeleteResource(env.drive.ID, testOwner, folder.ID)
	assert.NoError(t, err)

	result, err := env.trash.RestoreFromTrash(env.drive.ID, testOwner, folder.ID, RestoreParams{Policy: models.ConflictKeepBoth})
	assert.NoError(t, err)
	assert.Len(t, result.RestoredFolders, 2)
	assert.Len(t, result.RestoredFiles, 1)

	file, err := env.fileRepo.FindByPath(env.drive.ID, env.disk.ID+"::/projects/api/main.go")
	assert.NoError(t, err)
	if assert.NotNil(t, file) {
		assert.False(t, file.Deleted)
		assert.Nil(t, file.RestoreTrashPriorFolderID)
	}
}

func TestTrashService_RestoreToExplicitDestination(t *testing.T) {
	env := newTestEnv(t)
	dest := env.mustCreateFolder(t, "", "recovered")
	file := env.mustCreateFile(t, "", "doc.txt", 10)

	_, err := env.trash.DeleteResource(env.drive.ID, testOwner, file.ID)
	assert.NoError(t, err)

	result, err := env.trash.RestoreFromTrash(env.drive.ID, testOwner, file.ID, RestoreParams{DestFolderID: &dest.ID, Policy: models.ConflictKeepBoth})
	assert.NoError(t, err)
	if assert.Len(t, result.RestoredFiles, 1) {
		assert.Equal(t, env.disk.ID+"::/recovered/doc.txt", result.RestoredFiles[0].FullPath)
	}
}

func TestTrashService_RestoreToPathMaterializesFolders(t *testing.T) {
	env := newTestEnv(t)
	file := env.mustCreateFile(t, "", "report.txt", 10)

	_, err := env.trash.DeleteResource(env.drive.ID, testOwner, file.ID)
	assert.NoError(t, err)

	// Nothing under /recovered exists yet; the restore builds the chain.
	path := env.disk.ID + "::/recovered/2024/"
	result, err := env.trash.RestoreFromTrash(env.drive.ID, testOwner, file.ID, RestoreParams{RestoreToPath: &path, Policy: models.ConflictKeepBoth})
	assert.NoError(t, err)
	if assert.Len(t, result.RestoredFiles, 1) {
		assert.Equal(t, env.disk.ID+"::/recovered/2024/report.txt", result.RestoredFiles[0].FullPath)
		assert.False(t, result.RestoredFiles[0].Deleted)
	}

	for _, folderPath := range []string{env.disk.ID + "::/recovered/", env.disk.ID + "::/recovered/2024/"} {
		folder, err := env.folderRepo.FindByPath(env.drive.ID, folderPath)
		assert.NoError(t, err)
		assert.NotNil(t, folder)
	}
}

func TestTrashService_RestoreToPathIntoTrashRejected(t *testing.T) {
	env := newTestEnv(t)
	file := env.mustCreateFile(t, "", "report.txt", 10)

	_, err := env.trash.DeleteResource(env.drive.ID, testOwner, file.ID)
	assert.NoError(t, err)

	path := env.disk.ID + "::.trash/nested/"
	_, err = env.trash.RestoreFromTrash(env.drive.ID, testOwner, file.ID, RestoreParams{RestoreToPath: &path, Policy: models.ConflictKeepBoth})

	assert.ErrorIs(t, err, apperr.ErrInvalidTrashState)
}

func TestTrashService_RestoreFallsBackToRootWhenPriorGone(t *testing.T) {
	env := newTestEnv(t)
	folder := env.mustCreateFolder(t, "", "projects")
	file := env.mustCreateFile(t, env.disk.ID+"::/projects", "doc.txt", 10)

	_, err := env.trash.DeleteResource(env.drive.ID, testOwner, file.ID)
	assert.NoError(t, err)
	err = env.trash.PermanentlyDelete(env.drive.ID, testOwner, folder.ID)
	assert.NoError(t, err)

	result, err := env.trash.RestoreFromTrash(env.drive.ID, testOwner, file.ID, RestoreParams{Policy: models.ConflictKeepBoth})
	assert.NoError(t, err)
	if assert.Len(t, result.RestoredFiles, 1) {
		assert.Equal(t, env.disk.ID+"::/doc.txt", result.RestoredFiles[0].FullPath)
	}
}

func TestTrashService_RestoreUntrashedRejected(t *testing.T) {
	env := newTestEnv(t)
	file := env.mustCreateFile(t, "", "doc.txt", 10)

	_, err := env.trash.RestoreFromTrash(env.drive.ID, testOwner, file.ID, RestoreParams{Policy: models.ConflictKeepBoth})

	assert.ErrorIs(t, err, apperr.ErrInvalidTrashState)
}

func TestTrashService_RestoreConflictKeepBothRenames(t *testing.T) {
	env := newTestEnv(t)
	file := env.mustCreateFile(t, "", "doc.txt", 1)
	_, err := env.trash.DeleteResource(env.drive.ID, testOwner, file.ID)
	assert.NoError(t, err)
	env.mustCreateFile(t, "", "doc.txt", 2)

	result, err := env.trash.RestoreFromTrash(env.drive.ID, testOwner, file.ID, RestoreParams{Policy: models.ConflictKeepBoth})
	assert.NoError(t, err)
	if assert.Len(t, result.RestoredFiles, 1) {
		assert.Equal(t, "doc (2).txt", result.RestoredFiles[0].Name)
	}
}

func TestTrashService_PermanentDeleteCascades(t *testing.T) {
	env := newTestEnv(t)
	folder := env.mustCreateFolder(t, "", "projects")
	sub := env.mustCreateFolder(t, env.disk.ID+"::/projects", "api")
	file := env.mustCreateFile(t, env.disk.ID+"::/projects/api", "main.go", 10)
	objectKey := file.ObjectKey()

	err := env.trash.PermanentlyDelete(env.drive.ID, testOwner, folder.ID)
	assert.NoError(t, err)

	for _, id := range []string{folder.ID, sub.ID} {
		gone, err := env.folderRepo.FindByIDInDrive(env.drive.ID, id)
		assert.NoError(t, err)
		assert.Nil(t, gone)
	}
	goneFile, err := env.fileRepo.FindByIDInDrive(env.drive.ID, file.ID)
	assert.NoError(t, err)
	assert.Nil(t, goneFile)

	versions, err := env.versionRepo.ListByFile(env.drive.ID, file.ID)
	assert.NoError(t, err)
	assert.Empty(t, versions)

	assert.Eventually(t, func() bool {
		deleted := env.storage.Storage.DeletedKeys()
		return len(deleted) == 1 && deleted[0] == objectKey
	}, time.Second, 10*time.Millisecond)
}

func TestTrashService_PermanentDeleteProtectedRejected(t *testing.T) {
	env := newTestEnv(t)

	err := env.trash.PermanentlyDelete(env.drive.ID, testOwner, env.root.ID)

	assert.ErrorIs(t, err, apperr.ErrProtectedResource)
}

func TestTrashService_EmptyTrash(t *testing.T) {
	env := newTestEnv(t)
	file := env.mustCreateFile(t, "", "doc.txt", 10)
	folder := env.mustCreateFolder(t, "", "projects")
	_, err := env.trash.DeleteResource(env.drive.ID, testOwner, file.ID)
	assert.NoError(t, err)
	_, err = env.trash.DeleteResource(env.drive.ID, testOwner, folder.ID)
	assert.NoError(t, err)

	err = env.trash.EmptyTrash(env.drive.ID, testOwner, env.disk.ID)
	assert.NoError(t, err)

	folders, err := env.folderRepo.ListByParent(env.drive.ID, env.trashFolder.ID, 0, 0)
	assert.NoError(t, err)
	assert.Empty(t, folders)
	files, err := env.fileRepo.ListByParent(env.drive.ID, env.trashFolder.ID, 0, 0)
	assert.NoError(t, err)
	assert.Empty(t, files)
}

func TestTrashService_StrangerCannotDelete(t *testing.T) {
	env := newTestEnv(t)
	file := env.mustCreateFile(t, "", "doc.txt", 10)

	_, err := env.trash.DeleteResource(env.drive.ID, "intruder", file.ID)

	assert.ErrorIs(t, err, apperr.ErrPermissionDenied)
}
