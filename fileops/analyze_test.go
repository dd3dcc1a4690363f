package fileops

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// analyzeFixture: two subdirectories, four files with known sizes and
// extensions, one of them extensionless.
func analyzeFixture(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	os.MkdirAll(filepath.Join(tmpDir, "src", "nested"), 0755)
	os.WriteFile(filepath.Join(tmpDir, "readme.txt"), make([]byte, 100), 0644)
	os.WriteFile(filepath.Join(tmpDir, "src", "main.go"), make([]byte, 400), 0644)
	os.WriteFile(filepath.Join(tmpDir, "src", "nested", "notes.TXT"), make([]byte, 50), 0644)
	os.WriteFile(filepath.Join(tmpDir, "src", "nested", "LICENSE"), make([]byte, 200), 0644)
	return tmpDir
}

func TestAnalyze(t *testing.T) {
	tmpDir := analyzeFixture(t)

	r, err := Analyze(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, 4, r.Files)
	assert.Equal(t, 2, r.Dirs)
	assert.Equal(t, int64(750), r.TotalSize)
	assert.Equal(t, int64(187), r.AverageSize(), "average is floored")

	// Histogram counts sum to the file count; extensions are lowercased.
	sum := 0
	for _, count := range r.Extensions {
		sum += count
	}
	assert.Equal(t, r.Files, sum)
	assert.Equal(t, 2, r.Extensions[".txt"])
	assert.Equal(t, 1, r.Extensions[".go"])
	assert.Equal(t, 1, r.Extensions[NoExtension])
}

func TestAnalyze_Largest(t *testing.T) {
	tmpDir := analyzeFixture(t)

	r, err := Analyze(tmpDir)
	require.NoError(t, err)

	require.Len(t, r.Largest, 4, "fewer than ten files means all of them")
	for i := 1; i < len(r.Largest); i++ {
		assert.GreaterOrEqual(t, r.Largest[i-1].Size, r.Largest[i].Size,
			"largest list must be non-increasing")
	}
	assert.Equal(t, int64(400), r.Largest[0].Size)
	assert.Equal(t, filepath.Join(tmpDir, "src", "main.go"), r.Largest[0].Path)
}

func TestAnalyze_LargestTruncatedToTen(t *testing.T) {
	tmpDir := t.TempDir()
	for i := 0; i < 15; i++ {
		path := filepath.Join(tmpDir, fmt.Sprintf("f%02d.bin", i))
		require.NoError(t, os.WriteFile(path, make([]byte, (i+1)*10), 0644))
	}

	r, err := Analyze(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, 15, r.Files)
	assert.Len(t, r.Largest, 10)
	assert.Equal(t, int64(150), r.Largest[0].Size)
	assert.Equal(t, 15, r.Extensions[".bin"], "full histogram is retained")
}

func TestAnalyze_TiesBrokenByPath(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{"ccc.dat", "aaa.dat", "bbb.dat"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), make([]byte, 64), 0644))
	}

	r, err := Analyze(tmpDir)
	require.NoError(t, err)

	require.Len(t, r.Largest, 3)
	assert.Equal(t, filepath.Join(tmpDir, "aaa.dat"), r.Largest[0].Path)
	assert.Equal(t, filepath.Join(tmpDir, "bbb.dat"), r.Largest[1].Path)
	assert.Equal(t, filepath.Join(tmpDir, "ccc.dat"), r.Largest[2].Path)
}

func TestAnalyze_EmptyDirectory(t *testing.T) {
	r, err := Analyze(t.TempDir())
	require.NoError(t, err)

	assert.Zero(t, r.Files)
	assert.Zero(t, r.Dirs)
	assert.Zero(t, r.TotalSize)
	assert.Zero(t, r.AverageSize())
	assert.Empty(t, r.Largest)
	assert.True(t, r.OldestModified.IsZero())
}

func TestAnalyze_TopExtensions(t *testing.T) {
	tmpDir := analyzeFixture(t)

	r, err := Analyze(tmpDir)
	require.NoError(t, err)

	top := r.TopExtensions(2)
	require.Len(t, top, 2)
	assert.Equal(t, ExtensionCount{Ext: ".txt", Count: 2}, top[0])

	all := r.TopExtensions(100)
	assert.Len(t, all, 3, "asking for more buckets than exist returns them all")
}

func TestAnalyze_Errors(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	_, err := Analyze(file)
	assert.ErrorIs(t, err, ErrExpectedDirectory)

	_, err = Analyze(filepath.Join(tmpDir, "missing"))
	assert.Error(t, err)
}
