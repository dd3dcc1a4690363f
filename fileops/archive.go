package fileops

import (
	"archive/tar"
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Format selects the archive container written by Create.
type Format string

const (
	Zip     Format = "zip"
	Tar     Format = "tar"
	TarGzip Format = "tar.gz"
)

// ParseFormat maps a --format flag value onto the Format set.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case Zip, Tar, TarGzip:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// DetectFormat maps an archive filename onto a Format by suffix. Gzip
// compression is implied by the .gz and .tgz suffixes; anything outside the
// known suffixes is an ErrUnsupportedFormat, not a crash.
func DetectFormat(name string) (Format, error) {
	switch {
	case strings.HasSuffix(name, ".zip"):
		return Zip, nil
	case strings.HasSuffix(name, ".tar.gz"), strings.HasSuffix(name, ".tgz"):
		return TarGzip, nil
	case strings.HasSuffix(name, ".tar"):
		return Tar, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
}

// ArchiveResult reports the outcome for one input path during Create.
type ArchiveResult struct {
	Path    string
	Added   bool
	Missing bool
	Err     error
}

// Create writes an archive at archivePath containing each input path. A file
// is stored under its base name; a directory is walked and every descendant
// file stored relative to the directory's parent, so the directory's own
// name is the top-level entry. Missing inputs are skipped with a per-item
// result, not a hard failure.
func Create(archivePath string, format Format, inputs []string) ([]ArchiveResult, error) {
	out, err := os.Create(archivePath)
	if err != nil {
		return nil, err
	}

	var results []ArchiveResult
	switch format {
	case Zip:
		results, err = createZip(out, inputs)
	case Tar:
		results, err = createTar(out, inputs)
	case TarGzip:
		gz := gzip.NewWriter(out)
		results, err = createTar(gz, inputs)
		if cerr := gz.Close(); err == nil {
			err = cerr
		}
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return results, err
}

func createZip(w io.Writer, inputs []string) ([]ArchiveResult, error) {
	zw := zip.NewWriter(w)
	results := make([]ArchiveResult, 0, len(inputs))
	for _, input := range inputs {
		res := ArchiveResult{Path: input}
		info, err := os.Stat(input)
		switch {
		case os.IsNotExist(err):
			res.Missing = true
		case err != nil:
			res.Err = err
		case info.IsDir():
			res.Err = addZipDir(zw, input)
			res.Added = res.Err == nil
		default:
			res.Err = addZipFile(zw, input, filepath.Base(input))
			res.Added = res.Err == nil
		}
		results = append(results, res)
	}
	return results, zw.Close()
}

func addZipFile(zw *zip.Writer, path, name string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, f)
	return err
}

func addZipDir(zw *zip.Writer, dir string) error {
	parent := filepath.Dir(dir)
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(parent, path)
		if err != nil {
			return err
		}
		return addZipFile(zw, path, filepath.ToSlash(rel))
	})
}

func createTar(w io.Writer, inputs []string) ([]ArchiveResult, error) {
	tw := tar.NewWriter(w)
	results := make([]ArchiveResult, 0, len(inputs))
	for _, input := range inputs {
		res := ArchiveResult{Path: input}
		info, err := os.Stat(input)
		switch {
		case os.IsNotExist(err):
			res.Missing = true
		case err != nil:
			res.Err = err
		case info.IsDir():
			res.Err = addTarDir(tw, input)
			res.Added = res.Err == nil
		default:
			res.Err = addTarEntry(tw, input, filepath.Base(input), info)
			res.Added = res.Err == nil
		}
		results = append(results, res)
	}
	return results, tw.Close()
}

func addTarEntry(tw *tar.Writer, path, name string, info fs.FileInfo) error {
	hdr, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return err
	}
	hdr.Name = name
	if info.IsDir() {
		hdr.Name += "/"
	}
	if err := tw.WriteHeader(hdr); err != nil {
		return err
	}
	if info.IsDir() {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(tw, f)
	return err
}

func addTarDir(tw *tar.Writer, dir string) error {
	parent := filepath.Dir(dir)
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(parent, path)
		if err != nil {
			return err
		}
		return addTarEntry(tw, path, filepath.ToSlash(rel), info)
	})
}

// Extract unpacks the archive into dest, creating dest if absent. The format
// comes from the filename suffix, with tar compression detected the same
// way. Entries that would escape dest are skipped.
func Extract(archivePath, dest string) error {
	format, err := DetectFormat(archivePath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dest, 0755); err != nil {
		return err
	}
	if format == Zip {
		return extractZip(archivePath, dest)
	}
	return extractTar(archivePath, dest, format == TarGzip)
}

func extractZip(archivePath, dest string) error {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		target, ok := insideDest(dest, f.Name)
		if !ok {
			continue
		}
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return err
			}
			continue
		}

		src, err := f.Open()
		if err != nil {
			return err
		}
		err = writeExtracted(target, src, f.Mode().Perm())
		src.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func extractTar(archivePath, dest string, gzipped bool) error {
	file, err := os.Open(archivePath)
	if err != nil {
		return err
	}
	defer file.Close()

	var tr *tar.Reader
	if gzipped {
		gz, err := gzip.NewReader(file)
		if err != nil {
			return err
		}
		defer gz.Close()
		tr = tar.NewReader(gz)
	} else {
		tr = tar.NewReader(file)
	}

	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		target, ok := insideDest(dest, hdr.Name)
		if !ok {
			continue
		}
		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0755); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := writeExtracted(target, tr, fs.FileMode(hdr.Mode).Perm()); err != nil {
				return err
			}
		}
	}
}

func writeExtracted(target string, src io.Reader, perm fs.FileMode) error {
	if perm == 0 {
		perm = 0644
	}
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}
	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	_, err = io.Copy(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	return err
}

// insideDest joins an archive member name onto dest and rejects names that
// would escape it (zip-slip).
func insideDest(dest, name string) (string, bool) {
	target := filepath.Join(dest, filepath.FromSlash(name))
	if !strings.HasPrefix(target, filepath.Clean(dest)+string(os.PathSeparator)) {
		return "", false
	}
	return target, true
}

// ArchiveEntry describes one member of an archive without extracting it.
type ArchiveEntry struct {
	Name  string
	Size  int64
	IsDir bool
}

// ListArchive reads the archive's table of contents, detecting the format by
// filename suffix.
func ListArchive(archivePath string) ([]ArchiveEntry, error) {
	format, err := DetectFormat(archivePath)
	if err != nil {
		return nil, err
	}
	if format == Zip {
		return listZip(archivePath)
	}
	return listTar(archivePath, format == TarGzip)
}

func listZip(archivePath string) ([]ArchiveEntry, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	entries := make([]ArchiveEntry, 0, len(r.File))
	for _, f := range r.File {
		info := f.FileInfo()
		entries = append(entries, ArchiveEntry{Name: f.Name, Size: info.Size(), IsDir: info.IsDir()})
	}
	return entries, nil
}

func listTar(archivePath string, gzipped bool) ([]ArchiveEntry, error) {
	file, err := os.Open(archivePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var tr *tar.Reader
	if gzipped {
		gz, err := gzip.NewReader(file)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		tr = tar.NewReader(gz)
	} else {
		tr = tar.NewReader(file)
	}

	var entries []ArchiveEntry
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return entries, nil
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, ArchiveEntry{
			Name:  hdr.Name,
			Size:  hdr.Size,
			IsDir: hdr.Typeflag == tar.TypeDir,
		})
	}
}
