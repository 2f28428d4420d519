package services

import (
	"Shelved/internal/helpers"
	"Shelved/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConflictService_NoCollision(t *testing.T) {
	env := newTestEnv(t)

	resolution, err := env.conflict.Resolve(env.drive.ID, env.root.FullPath, "report.pdf", false, models.ConflictKeepBoth)

	assert.NoError(t, err)
	assert.Equal(t, "report.pdf", resolution.Name)
	assert.Equal(t, helpers.JoinPath(env.root.FullPath, "report.pdf", false), resolution.FullPath)
	assert.False(t, resolution.Abort())
}

func TestConflictService_KeepOriginalAborts(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateFile(t, "", "report.pdf", 10)

	resolution, err := env.conflict.Resolve(env.drive.ID, env.root.FullPath, "report.pdf", false, models.ConflictKeepOriginal)

	assert.NoError(t, err)
	assert.True(t, resolution.Abort())
}

func TestConflictService_KeepBothSuffixesFiles(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateFile(t, "", "report.pdf", 10)

	resolution, err := env.conflict.Resolve(env.drive.ID, env.root.FullPath, "report.pdf", false, models.ConflictKeepBoth)

	assert.NoError(t, err)
	assert.Equal(t, "report (2).pdf", resolution.Name)
}

func TestConflictService_KeepBothSkipsTakenSuffixes(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateFile(t, "", "report.pdf", 10)
	env.mustCreateFile(t, "", "report (2).pdf", 10)

	resolution, err := env.conflict.Resolve(env.drive.ID, env.root.FullPath, "report.pdf", false, models.ConflictKeepBoth)

	assert.NoError(t, err)
	assert.Equal(t, "report (3).pdf", resolution.Name)
}

func TestConflictService_KeepBothSuffixesFolders(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateFolder(t, "", "projects")

	resolution, err := env.conflict.Resolve(env.drive.ID, env.root.FullPath, "projects", true, models.ConflictKeepBoth)

	assert.NoError(t, err)
	assert.Equal(t, "projects (2)", resolution.Name)
	assert.True(t, helpers.IsFolderPath(resolution.FullPath))
}

func TestConflictService_ReplaceReturnsRequestedPath(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateFile(t, "", "report.pdf", 10)

	resolution, err := env.conflict.Resolve(env.drive.ID, env.root.FullPath, "report.pdf", false, models.ConflictReplace)

	assert.NoError(t, err)
	assert.Equal(t, "report.pdf", resolution.Name)
}

func TestConflictService_EmptyPolicyDefaultsToKeepBoth(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateFile(t, "", "report.pdf", 10)

	resolution, err := env.conflict.Resolve(env.drive.ID, env.root.FullPath, "report.pdf", false, "")

	assert.NoError(t, err)
	assert.Equal(t, "report (2).pdf", resolution.Name)
}
