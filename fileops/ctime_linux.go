//go:build linux

package fileops

import (
	"io/fs"
	"syscall"
	"time"
)

// createdTime returns the inode change time, the closest thing to a creation
// timestamp Linux exposes through stat.
func createdTime(info fs.FileInfo) time.Time {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(st.Ctim.Sec, st.Ctim.Nsec)
	}
	return info.ModTime()
}
