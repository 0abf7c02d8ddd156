package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFonts(t *testing.T, files ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, f := range files {
		p := filepath.Join(dir, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
	}
	return dir
}

func TestScanDir(t *testing.T) {
	dir := writeFonts(t, "Inter/Inter-Bold.ttf", "Inter/Inter-Regular.ttf", "readme.txt", "Mono.OTF")
	list, err := ScanDir(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Inter/Inter-Bold.ttf", "Inter/Inter-Regular.ttf", "Mono.OTF"}, list)

	list, err = ScanDir(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestFind(t *testing.T) {
	dir := writeFonts(t, "Inter/Inter-Bold.ttf", "Inter/Inter-Regular.ttf", "Google_Sans_Code/GoogleSansCode-Medium.ttf")

	got, err := Find([]string{dir}, "inter")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Inter", "Inter-Regular.ttf"), got)

	got, err = Find([]string{dir}, "Google Sans")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Google_Sans_Code", "GoogleSansCode-Medium.ttf"), got)

	got, err = Find([]string{dir}, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Inter", "Inter-Regular.ttf"), got)

	_, err = Find([]string{dir}, "comic")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
