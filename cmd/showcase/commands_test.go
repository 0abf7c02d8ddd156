package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shader-showcase/internal/commands"
	"shader-showcase/internal/debug"
	"shader-showcase/internal/engineconfig"
	"shader-showcase/internal/logger"
)

func TestOverlayToggle(t *testing.T) {
	var shown, pref bool
	toggle := overlayToggle("fps", &shown, &pref)

	require.NoError(t, toggle(nil))
	assert.True(t, shown)
	assert.True(t, pref)

	require.NoError(t, toggle([]string{"off"}))
	assert.False(t, shown)
	assert.False(t, pref)

	assert.Error(t, toggle([]string{"maybe"}))
	assert.Error(t, toggle([]string{"on", "off"}))
}

func TestRegisterCommands(t *testing.T) {
	reg := commands.NewRegistry()
	a := &app{prefs: engineconfig.Default(), log: logger.New(""), dbg: debug.New()}
	registerCommands(reg, a)

	assert.Equal(t, []string{"fps", "memalloc", "reload", "save", "screenshot", "window"}, reg.Names())

	ok, err := reg.Run("cmd memalloc on")
	require.True(t, ok)
	require.NoError(t, err)
	assert.True(t, a.dbg.ShowMemAlloc)
	assert.True(t, a.prefs.Debug.ShowMemAlloc)

	_, err = reg.Run("cmd reload -kind nope")
	assert.Error(t, err)
}
