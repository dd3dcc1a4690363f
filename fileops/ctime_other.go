//go:build !linux

package fileops

import (
	"io/fs"
	"time"
)

// createdTime falls back to the modification time on platforms where the
// stat result does not carry a change or birth timestamp we can reach
// portably.
func createdTime(info fs.FileInfo) time.Time {
	return info.ModTime()
}
