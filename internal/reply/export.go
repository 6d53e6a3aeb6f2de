package reply

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zhubert/emailwriter/internal/errors"
)

// DefaultFilename is the name a downloaded reply is saved under.
const DefaultFilename = "email-reply.txt"

// maxNameAttempts caps the "name (n).ext" search.
const maxNameAttempts = 1000

// FileExporter saves reply text as a plain-text file.
type FileExporter struct {
	// Dir is the download directory. Empty means the working directory.
	Dir string
}

// NewFileExporter creates an exporter writing into dir.
func NewFileExporter(dir string) *FileExporter {
	return &FileExporter{Dir: dir}
}

// Download writes text to a new file named after filename. Existing files
// are never overwritten: like a browser, the exporter picks
// "name (1).ext", "name (2).ext", ... instead. It returns the path written.
func (x *FileExporter) Download(text, filename string) (string, error) {
	name := sanitizeFilename(filename)
	dir := x.Dir
	if dir == "" {
		dir = "."
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.ExportFailed(dir, err)
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	path := filepath.Join(dir, name)
	for i := 1; i <= maxNameAttempts; i++ {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if os.IsExist(err) {
			path = filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, i, ext))
			continue
		}
		if err != nil {
			return path, errors.ExportFailed(path, err)
		}
		if _, err := f.WriteString(text); err != nil {
			f.Close()
			return path, errors.ExportFailed(path, err)
		}
		if err := f.Close(); err != nil {
			return path, errors.ExportFailed(path, err)
		}
		return path, nil
	}
	return path, errors.ExportFailed(path, fmt.Errorf("no free file name after %d attempts", maxNameAttempts))
}

// sanitizeFilename strips directories so the artifact stays in Dir.
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	if name == "" || name == "." || name == ".." || name == string(filepath.Separator) {
		return DefaultFilename
	}
	return name
}
