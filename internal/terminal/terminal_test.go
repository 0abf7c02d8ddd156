package terminal

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shader-showcase/internal/commands"
	"shader-showcase/internal/logger"
)

func newTerminal() (*Terminal, *logger.Logger, *[]string) {
	log := logger.New("")
	reg := commands.NewRegistry()
	var ran []string
	reg.Register("echo", "<words>", nil, func(args []string) error {
		ran = append(ran, strings.Join(args, " "))
		return nil
	})
	reg.Register("fail", "", nil, func([]string) error { return errors.New("boom") })
	return New(log, reg), log, &ran
}

func last(log *logger.Logger) string {
	tail := log.Tail(1)
	if len(tail) == 0 {
		return ""
	}
	return tail[0]
}

func TestToggle(t *testing.T) {
	term, _, _ := newTerminal()
	assert.False(t, term.IsOpen())
	term.Toggle()
	assert.True(t, term.IsOpen())
	term.Toggle()
	assert.False(t, term.IsOpen())
}

func TestSubmitRunsCommands(t *testing.T) {
	term, log, ran := newTerminal()

	term.Submit(`cmd echo "hello world"`)
	assert.Equal(t, []string{"hello world"}, *ran)
	assert.Contains(t, log.Lines()[0], `> cmd echo "hello world"`)

	term.Submit("cmd fail")
	assert.Contains(t, last(log), "ERROR boom")

	term.Submit("cmd nope")
	assert.Contains(t, last(log), "unknown command")

	term.Submit("just chatting")
	assert.Contains(t, last(log), "> just chatting")
	assert.Len(t, *ran, 1)

	n := len(log.Lines())
	term.Submit("   ")
	assert.Len(t, log.Lines(), n)
}

func TestSubmitHelp(t *testing.T) {
	term, log, _ := newTerminal()
	term.Submit("cmd help")
	lines := log.Tail(2)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "echo <words>")
	assert.Contains(t, lines[1], "fail")
}

func TestRecall(t *testing.T) {
	term, _, _ := newTerminal()
	term.Submit("cmd echo a")
	term.Submit("cmd echo b")

	term.Recall(-1)
	assert.Equal(t, "cmd echo b", term.Input())
	term.Recall(-1)
	assert.Equal(t, "cmd echo a", term.Input())
	term.Recall(-1)
	assert.Equal(t, "cmd echo a", term.Input())
	term.Recall(1)
	term.Recall(1)
	assert.Equal(t, "", term.Input())
}
