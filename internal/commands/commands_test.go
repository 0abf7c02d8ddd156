package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		args []string
		ok   bool
	}{
		{"hello there", nil, false},
		{"cmdselect", nil, false},
		{"cmd", nil, true},
		{"cmd   ", nil, true},
		{"cmd select 3", []string{"select", "3"}, true},
		{`cmd param edge_color 1 0.5 "0.25"`, []string{"param", "edge_color", "1", "0.5", "0.25"}, true},
		{`cmd screenshot -out "my shot.png"`, []string{"screenshot", "-out", "my shot.png"}, true},
	}
	for _, tt := range tests {
		args, ok, err := Parse(tt.line)
		require.NoError(t, err, tt.line)
		assert.Equal(t, tt.ok, ok, tt.line)
		assert.Equal(t, tt.args, args, tt.line)
	}

	_, ok, err := Parse(`cmd select "unterminated`)
	assert.True(t, ok)
	assert.Error(t, err)
}

func TestExecute(t *testing.T) {
	r := NewRegistry()
	var gotName string
	var gotArgs []string
	fs := NewFlagSet("select")
	name := fs.String("name", "", "material name")
	r.Register("select", "[-name kind] [index]", fs, func(args []string) error {
		gotName = *name
		gotArgs = args
		return nil
	})

	ok, err := r.Run("cmd select -name fire 4")
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, "fire", gotName)
	assert.Equal(t, []string{"4"}, gotArgs)

	_, err = r.Run("cmd teleport")
	assert.ErrorIs(t, err, ErrUnknownCommand)

	_, err = r.Run("cmd")
	assert.ErrorIs(t, err, ErrMissingCommand)

	_, err = r.Run("cmd select -bogus")
	assert.Error(t, err)

	ok, err = r.Run("just text")
	assert.False(t, ok)
	assert.NoError(t, err)
}

func TestNamesAndHelp(t *testing.T) {
	r := NewRegistry()
	r.Register("next", "", nil, func([]string) error { return nil })
	r.Register("fps", "[on|off]", nil, func([]string) error { return nil })

	assert.Equal(t, []string{"fps", "next"}, r.Names())
	assert.Equal(t, []string{"fps [on|off]", "next"}, r.Help())
}
