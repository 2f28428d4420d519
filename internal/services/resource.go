package services

import "Shelved/internal/models"

type ResourceKind string

const (
	ResourceFolder ResourceKind = "folder"
	ResourceFile   ResourceKind = "file"
)

// Resource is the tagged union over the two directory entity kinds. Exactly
// one of Folder/File is set, matching Kind.
type Resource struct {
	Kind   ResourceKind
	Folder *models.Folder
	File   *models.File
}

func FolderResource(f *models.Folder) Resource {
	return Resource{Kind: ResourceFolder, Folder: f}
}

func FileResource(f *models.File) Resource {
	return Resource{Kind: ResourceFile, File: f}
}

func (r Resource) ID() string {
	if r.Kind == ResourceFolder {
		return r.Folder.ID
	}
	return r.File.ID
}

func (r Resource) FullPath() string {
	if r.Kind == ResourceFolder {
		return r.Folder.FullPath
	}
	return r.File.FullPath
}

func (r Resource) DiskID() string {
	if r.Kind == ResourceFolder {
		return r.Folder.DiskID
	}
	return r.File.DiskID
}

func (r Resource) Name() string {
	if r.Kind == ResourceFolder {
		return r.Folder.Name
	}
	return r.File.Name
}

func (r Resource) Deleted() bool {
	if r.Kind == ResourceFolder {
		return r.Folder.Deleted
	}
	return r.File.Deleted
}

func (r Resource) ParentFolderID() *string {
	if r.Kind == ResourceFolder {
		return r.Folder.ParentFolderID
	}
	return r.File.ParentFolderID
}
