package services

import (
	"Shelved/database"
	"Shelved/internal/config"
	"Shelved/internal/models"
	"Shelved/internal/repository"
	"Shelved/internal/storage"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testOwner = "owner-1"

func testConfiguration() *config.Configuration {
	cfg := &config.Configuration{}
	cfg.Server.LogConfig.Level = "error"
	cfg.Server.LogConfig.Format = "text"
	cfg.Server.LogConfig.Output = "stdout"
	cfg.Server.CleanConfig.Schedule = "@hourly"
	cfg.Storage.UploadURLExpiryMinutes = 15
	return cfg
}

// testEnv wires the full service stack over an in-memory database and a
// recording storage backend, with one drive and one bootstrapped disk.
type testEnv struct {
	db          *gorm.DB
	folderRepo  repository.FolderRepository
	fileRepo    repository.FileRepository
	versionRepo repository.FileVersionRepository
	diskRepo    repository.DiskRepository
	driveRepo   repository.DriveRepository
	permRepo    repository.PermissionRepository
	conflict    ConflictService
	structure   StructureService
	versions    VersionService
	permissions PermissionService
	directory   DirectoryService
	mover       MoverService
	trash       TrashService
	drives      DriveService
	storage     *storage.MemoryFactory
	drive       *models.Drive
	disk        *models.Disk
	root        *models.Folder
	trashFolder *models.Folder
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	env := &testEnv{
		db:          db,
		folderRepo:  repository.NewFolderRepository(db),
		fileRepo:    repository.NewFileRepository(db),
		versionRepo: repository.NewFileVersionRepository(db),
		diskRepo:    repository.NewDiskRepository(db),
		driveRepo:   repository.NewDriveRepository(db),
		permRepo:    repository.NewPermissionRepository(db),
		storage:     storage.NewMemoryFactory(),
	}
	cfg := testConfiguration()
	logService := NewLogService(cfg)

	env.conflict = NewConflictService(env.folderRepo, env.fileRepo)
	env.structure = NewStructureService(db, env.folderRepo, env.diskRepo, env.permRepo)
	env.versions = NewVersionService(env.versionRepo)
	env.permissions = NewPermissionService(env.driveRepo, env.folderRepo, env.fileRepo, env.permRepo)
	env.directory = NewDirectoryService(db, env.folderRepo, env.fileRepo, env.diskRepo, env.conflict, env.structure, env.versions, env.permissions, env.storage, cfg, logService)
	env.mover = NewMoverService(db, env.folderRepo, env.fileRepo, env.versionRepo, env.diskRepo, env.permRepo, env.conflict, env.versions, env.permissions, env.storage, logService)
	env.trash = NewTrashService(db, env.folderRepo, env.fileRepo, env.versionRepo, env.diskRepo, env.permRepo, env.conflict, env.mover, env.structure, env.permissions, env.storage, logService)
	env.drives = NewDriveService(db, env.driveRepo, env.diskRepo, env.structure, env.permissions)

	env.drive, err = env.drives.CreateDrive("test-drive", testOwner)
	if err != nil {
		t.Fatalf("create drive: %v", err)
	}
	env.disk, err = env.drives.CreateDisk(env.drive.ID, testOwner, CreateDiskParams{
		Name: "primary",
		Type: models.DiskTypeS3,
	})
	if err != nil {
		t.Fatalf("create disk: %v", err)
	}
	env.root, err = env.folderRepo.FindByIDInDrive(env.drive.ID, *env.disk.RootFolderID)
	if err != nil || env.root == nil {
		t.Fatalf("root folder missing: %v", err)
	}
	env.trashFolder, err = env.folderRepo.FindByIDInDrive(env.drive.ID, *env.disk.TrashFolderID)
	if err != nil || env.trashFolder == nil {
		t.Fatalf("trash folder missing: %v", err)
	}
	return env
}

func (env *testEnv) mustCreateFolder(t *testing.T, parentPath, name string) *models.Folder {
	t.Helper()
	folder, err := env.directory.CreateFolder(env.drive.ID, testOwner, CreateFolderParams{
		ParentPath: parentPath,
		Name:       name,
		DiskID:     env.disk.ID,
	})
	if err != nil {
		t.Fatalf("create folder %q: %v", name, err)
	}
	return folder
}

func (env *testEnv) mustCreateFile(t *testing.T, parentPath, name string, size int64) *models.File {
	t.Helper()
	file, _, err := env.directory.CreateFile(env.drive.ID, testOwner, CreateFileParams{
		ParentPath: parentPath,
		Name:       name,
		DiskID:     env.disk.ID,
		FileSize:   size,
	})
	if err != nil {
		t.Fatalf("create file %q: %v", name, err)
	}
	return file
}
