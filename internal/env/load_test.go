package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		line       string
		key, value string
		ok         bool
	}{
		{"A=1", "A", "1", true},
		{"  export B = two ", "B", "two", true},
		{`C="quoted value"`, "C", "quoted value", true},
		{"D='x'", "D", "x", true},
		{"# comment", "", "", false},
		{"", "", "", false},
		{"=nokey", "", "", false},
		{"novalue", "", "", false},
	}
	for _, tt := range tests {
		key, value, ok := parseLine(tt.line)
		assert.Equal(t, tt.ok, ok, tt.line)
		assert.Equal(t, tt.key, key, tt.line)
		assert.Equal(t, tt.value, value, tt.line)
	}
}

func TestLoadKeepsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SHOWCASE_TEST_NEW=fresh\nSHOWCASE_TEST_SET=file\n"), 0644))
	t.Setenv("SHOWCASE_TEST_SET", "process")
	t.Setenv("SHOWCASE_TEST_NEW", "")
	require.NoError(t, os.Unsetenv("SHOWCASE_TEST_NEW"))

	require.NoError(t, Load(path))
	assert.Equal(t, "fresh", os.Getenv("SHOWCASE_TEST_NEW"))
	assert.Equal(t, "process", os.Getenv("SHOWCASE_TEST_SET"))
}

func TestLoadMissingFile(t *testing.T) {
	assert.NoError(t, Load(filepath.Join(t.TempDir(), "absent")))
}

func TestTypedLookups(t *testing.T) {
	t.Setenv("SHOWCASE_TEST_INT", "12")
	t.Setenv("SHOWCASE_TEST_BOOL", "true")
	t.Setenv("SHOWCASE_TEST_BAD", "nope")

	assert.Equal(t, 12, Int("SHOWCASE_TEST_INT", 3))
	assert.Equal(t, 3, Int("SHOWCASE_TEST_BAD", 3))
	assert.True(t, Bool("SHOWCASE_TEST_BOOL", false))
	assert.False(t, Bool("SHOWCASE_TEST_BAD", false))
	assert.Equal(t, "nope", String("SHOWCASE_TEST_BAD", "d"))
	assert.Equal(t, "d", String("SHOWCASE_TEST_UNSET_KEY", "d"))
}
