package mapper

import (
	"Shelved/internal/dto"
	"Shelved/internal/helpers"
	"Shelved/internal/models"
)

func ToFolderGetDTO(folder *models.Folder) dto.FolderGetDTO {
	return dto.FolderGetDTO{
		ID:                      folder.ID,
		DriveID:                 folder.DriveID,
		DiskID:                  folder.DiskID,
		Name:                    folder.Name,
		ParentFolderID:          folder.ParentFolderID,
		FullPath:                folder.FullPath,
		DisplayPath:             helpers.ClipPath(folder.FullPath),
		Deleted:                 folder.Deleted,
		HasSovereignPermissions: folder.HasSovereignPermissions,
		Notes:                   folder.Notes,
		CreatedAt:               folder.CreatedAt,
		UpdatedAt:               folder.UpdatedAt,
	}
}

func ToFileGetDTO(file *models.File) dto.FileGetDTO {
	return dto.FileGetDTO{
		ID:             file.ID,
		DriveID:        file.DriveID,
		DiskID:         file.DiskID,
		Name:           file.Name,
		ParentFolderID: file.ParentFolderID,
		FullPath:       file.FullPath,
		DisplayPath:    helpers.ClipPath(file.FullPath),
		Extension:      file.Extension,
		FileSize:       file.FileSize,
		VersionID:      file.VersionID,
		UploadStatus:   string(file.UploadStatus),
		Deleted:        file.Deleted,
		ExpiresAt:      file.ExpiresAt,
		Notes:          file.Notes,
		CreatedAt:      file.CreatedAt,
		UpdatedAt:      file.UpdatedAt,
	}
}

func ToFolderGetDTOs(folders []models.Folder) []dto.FolderGetDTO {
	out := make([]dto.FolderGetDTO, 0, len(folders))
	for i := range folders {
		out = append(out, ToFolderGetDTO(&folders[i]))
	}
	return out
}

func ToFileGetDTOs(files []models.File) []dto.FileGetDTO {
	out := make([]dto.FileGetDTO, 0, len(files))
	for i := range files {
		out = append(out, ToFileGetDTO(&files[i]))
	}
	return out
}
