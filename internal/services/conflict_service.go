package services

import (
	"Shelved/internal/helpers"
	"Shelved/internal/models"
	"Shelved/internal/repository"
	"fmt"

	"gorm.io/gorm"
)

// Resolution is the outcome of naming-conflict resolution. The zero value is
// the abort sentinel used by KEEP_ORIGINAL when the path is taken.
type Resolution struct {
	Name     string
	FullPath string
}

func (r Resolution) Abort() bool {
	return r.Name == "" && r.FullPath == ""
}

// ConflictService decides the final name and path for an entity entering a
// directory. Resolve reads outside any transaction (pre-resolution only);
// ResolveTx checks against an open transaction handle and is the variant every
// in-transaction operation must use.
type ConflictService interface {
	Resolve(driveID, dirPath, name string, isFolder bool, policy models.ConflictPolicy) (Resolution, error)
	ResolveTx(tx *gorm.DB, driveID, dirPath, name string, isFolder bool, policy models.ConflictPolicy) (Resolution, error)
}

type conflictServiceImpl struct {
	folderRepo repository.FolderRepository
	fileRepo   repository.FileRepository
}

func NewConflictService(folderRepo repository.FolderRepository, fileRepo repository.FileRepository) ConflictService {
	return &conflictServiceImpl{folderRepo: folderRepo, fileRepo: fileRepo}
}

func (s *conflictServiceImpl) Resolve(driveID, dirPath, name string, isFolder bool, policy models.ConflictPolicy) (Resolution, error) {
	return s.resolve(s.folderRepo, s.fileRepo, driveID, dirPath, name, isFolder, policy)
}

func (s *conflictServiceImpl) ResolveTx(tx *gorm.DB, driveID, dirPath, name string, isFolder bool, policy models.ConflictPolicy) (Resolution, error) {
	return s.resolve(s.folderRepo.WithTx(tx), s.fileRepo.WithTx(tx), driveID, dirPath, name, isFolder, policy)
}

func (s *conflictServiceImpl) resolve(
	folderRepo repository.FolderRepository,
	fileRepo repository.FileRepository,
	driveID, dirPath, name string,
	isFolder bool,
	policy models.ConflictPolicy,
) (Resolution, error) {
	exists := func(path string) (bool, error) {
		if helpers.IsFolderPath(path) {
			folder, err := folderRepo.FindByPath(driveID, path)
			return folder != nil, err
		}
		file, err := fileRepo.FindByPath(driveID, path)
		return file != nil, err
	}

	requested := helpers.JoinPath(dirPath, name, isFolder)

	switch models.NormalizeConflictPolicy(policy) {
	case models.ConflictReplace, models.ConflictKeepNewer:
		// The caller detects and supersedes whatever sits at the path.
		return Resolution{Name: name, FullPath: requested}, nil

	case models.ConflictKeepOriginal:
		taken, err := exists(requested)
		if err != nil {
			return Resolution{}, err
		}
		if taken {
			return Resolution{}, nil
		}
		return Resolution{Name: name, FullPath: requested}, nil

	case models.ConflictKeepBoth:
		taken, err := exists(requested)
		if err != nil {
			return Resolution{}, err
		}
		if !taken {
			return Resolution{Name: name, FullPath: requested}, nil
		}
		base, ext := name, ""
		if !isFolder {
			base, ext = helpers.SplitExtension(name)
		}
		for n := 2; ; n++ {
			candidate := fmt.Sprintf("%s (%d)", base, n)
			if ext != "" {
				candidate = fmt.Sprintf("%s.%s", candidate, ext)
			}
			candidatePath := helpers.JoinPath(dirPath, candidate, isFolder)
			taken, err := exists(candidatePath)
			if err != nil {
				return Resolution{}, err
			}
			if !taken {
				return Resolution{Name: candidate, FullPath: candidatePath}, nil
			}
		}

	default:
		return Resolution{}, fmt.Errorf("unknown conflict policy %q", policy)
	}
}
