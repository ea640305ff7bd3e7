package content

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// Ext is the extension of content files.
const Ext = ".md"

// File describes one content file.
type File struct {
	Name    string
	Slug    string
	Path    string
	ModTime time.Time
}

// Repository gives read access to the content files of one collection.
type Repository interface {
	// ListFiles returns the addressable Markdown files in directory-listing order.
	ListFiles() ([]File, error)
	// Stat returns the file for slug, or a not-found error.
	Stat(slug string) (File, error)
	// ReadFile returns the full text of <slug>.md.
	ReadFile(slug string) ([]byte, error)
}

// FSRepository implements Repository over a flat directory of an fs.FS.
type FSRepository struct {
	fsys fs.FS
	dir  string
}

// compile-time check
var _ Repository = (*FSRepository)(nil)

// NewFSRepository serves the files at the root of fsys.
func NewFSRepository(fsys fs.FS) *FSRepository {
	return &FSRepository{fsys: fsys}
}

// NewDirRepository serves the files of an on-disk directory.
func NewDirRepository(dir string) *FSRepository {
	return &FSRepository{fsys: os.DirFS(dir), dir: dir}
}

// Dir returns the on-disk directory, or "" for repositories not backed by one.
func (r *FSRepository) Dir() string {
	return r.dir
}

func (r *FSRepository) ListFiles() ([]File, error) {
	entries, err := fs.ReadDir(r.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("listing content: %w", err)
	}
	var files []File
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Ext) {
			continue
		}
		// names no slug can address, such as ".md"
		if !validSlug(strings.TrimSuffix(e.Name(), Ext)) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		if !info.Mode().IsRegular() {
			continue
		}
		files = append(files, r.file(e.Name(), info))
	}
	return files, nil
}

func (r *FSRepository) Stat(slug string) (File, error) {
	if !validSlug(slug) {
		return File{}, notFoundError(slug)
	}
	name := slug + Ext
	info, err := fs.Stat(r.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return File{}, notFoundError(slug)
		}
		return File{}, fmt.Errorf("stat %s: %w", name, err)
	}
	if !info.Mode().IsRegular() {
		return File{}, notFoundError(slug)
	}
	return r.file(name, info), nil
}

func (r *FSRepository) ReadFile(slug string) ([]byte, error) {
	if !validSlug(slug) {
		return nil, notFoundError(slug)
	}
	name := slug + Ext
	data, err := fs.ReadFile(r.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, notFoundError(slug)
		}
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return data, nil
}

func (r *FSRepository) file(name string, info fs.FileInfo) File {
	f := File{
		Name:    name,
		Slug:    strings.TrimSuffix(name, Ext),
		Path:    name,
		ModTime: info.ModTime(),
	}
	if r.dir != "" {
		f.Path = filepath.Join(r.dir, name)
	}
	return f
}

// validSlug rejects anything that could address a file outside the
// collection directory.
func validSlug(slug string) bool {
	if slug == "" || strings.ContainsAny(slug, `/\`) || slug == "." || slug == ".." {
		return false
	}
	return fs.ValidPath(path.Clean(slug + Ext))
}
