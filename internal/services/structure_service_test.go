package services

import (
	"Shelved/internal/helpers"
	"Shelved/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStructureService_RootAndTrashBootstrapped(t *testing.T) {
	env := newTestEnv(t)

	assert.Equal(t, helpers.RootPath(env.disk.ID), env.root.FullPath)
	assert.Nil(t, env.root.ParentFolderID)

	assert.Equal(t, helpers.TrashPath(env.disk.ID), env.trashFolder.FullPath)
	assert.Equal(t, env.root.ID, *env.trashFolder.ParentFolderID)
	assert.True(t, env.trashFolder.HasSovereignPermissions)
}

func TestStructureService_RootBootstrapIsIdempotent(t *testing.T) {
	env := newTestEnv(t)

	root, trash, err := env.structure.EnsureRootFolder(env.drive.ID, env.disk, testOwner)

	assert.NoError(t, err)
	assert.Equal(t, env.root.ID, root.ID)
	assert.Equal(t, env.trashFolder.ID, trash.ID)
}

func TestStructureService_CreatesMissingSegments(t *testing.T) {
	env := newTestEnv(t)

	path := env.disk.ID + "::/a/b/c"
	folder, err := env.structure.EnsureFolderStructure(env.drive.ID, path, env.disk, testOwner, nil)

	assert.NoError(t, err)
	assert.Equal(t, "c", folder.Name)
	assert.Equal(t, env.disk.ID+"::/a/b/c/", folder.FullPath)

	parent, err := env.folderRepo.FindByPath(env.drive.ID, env.disk.ID+"::/a/b/")
	assert.NoError(t, err)
	if assert.NotNil(t, parent) {
		assert.Equal(t, parent.ID, *folder.ParentFolderID)
	}
}

func TestStructureService_ReusesExistingSegments(t *testing.T) {
	env := newTestEnv(t)

	path := env.disk.ID + "::/a/b/c"
	first, err := env.structure.EnsureFolderStructure(env.drive.ID, path, env.disk, testOwner, nil)
	assert.NoError(t, err)
	second, err := env.structure.EnsureFolderStructure(env.drive.ID, path, env.disk, testOwner, nil)
	assert.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	count, err := env.folderRepo.CountByParent(env.drive.ID, env.root.ID)
	assert.NoError(t, err)
	// .trash plus "a"
	assert.Equal(t, int64(2), count)
}

func TestStructureService_TerminalOptions(t *testing.T) {
	env := newTestEnv(t)

	opts := &StructureOptions{
		ID:                      "11111111-1111-1111-1111-111111111111",
		HasSovereignPermissions: true,
		Notes:                   "quarantine",
	}
	folder, err := env.structure.EnsureFolderStructure(env.drive.ID, env.disk.ID+"::/a/b", env.disk, testOwner, opts)

	assert.NoError(t, err)
	assert.Equal(t, opts.ID, folder.ID)
	assert.True(t, folder.HasSovereignPermissions)
	assert.Equal(t, "quarantine", folder.Notes)

	// Intermediate segments stay plain.
	a, err := env.folderRepo.FindByPath(env.drive.ID, env.disk.ID+"::/a/")
	assert.NoError(t, err)
	if assert.NotNil(t, a) {
		assert.False(t, a.HasSovereignPermissions)
	}
}

func TestStructureService_OwnerGetsInheritableGrantsOnRoot(t *testing.T) {
	env := newTestEnv(t)

	grants, err := env.permRepo.ListByResource(env.drive.ID, env.root.ID)

	assert.NoError(t, err)
	assert.Len(t, grants, len(models.AllPermissionTypes()))
	for _, g := range grants {
		assert.True(t, g.Inheritable)
		assert.Equal(t, testOwner, g.GranteeUserID)
	}
}
