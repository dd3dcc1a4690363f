package fileops

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// Entry is an immutable snapshot of one filesystem node at the time of the
// Stat call. When metadata access fails the Entry is degraded: only Name and
// Err are populated, and callers must check Failed() before reading the
// other fields.
type Entry struct {
	Name        string
	Path        string
	Size        int64
	Modified    time.Time
	Created     time.Time
	Mode        string
	IsDir       bool
	IsFile      bool
	Ext         string
	ContentType string
	Err         string
}

// Failed reports whether this is a degraded entry produced by a stat failure.
func (e Entry) Failed() bool {
	return e.Err != ""
}

// Stat captures a metadata snapshot for path. It never returns an error:
// permission failures and paths that vanish between check and stat both
// produce a degraded entry instead.
func Stat(path string) Entry {
	info, err := os.Stat(path)
	if err != nil {
		return Entry{Name: filepath.Base(path), Err: err.Error()}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	return Entry{
		Name:        info.Name(),
		Path:        abs,
		Size:        info.Size(),
		Modified:    info.ModTime(),
		Created:     createdTime(info),
		Mode:        info.Mode().String(),
		IsDir:       info.IsDir(),
		IsFile:      info.Mode().IsRegular(),
		Ext:         strings.ToLower(filepath.Ext(info.Name())),
		ContentType: contentType(abs, info),
	}
}

func contentType(path string, info fs.FileInfo) string {
	if info.IsDir() {
		return "inode/directory"
	}
	if !info.Mode().IsRegular() {
		return "unknown"
	}
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return "unknown"
	}
	return mtype.String()
}
