package repl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Grounded on ailang/internal/repl/smoke_test.go's pattern of driving a REPL
// through its command/judgment entry points directly rather than Start's
// liner loop, which needs a real terminal.

func TestJudgeAnnotatedIdentityApplication(t *testing.T) {
	r := New("test")
	var buf bytes.Buffer
	r.Judge("(|x| x :: Bool -> Bool).true", &buf)
	assert.Contains(t, buf.String(), "Bool")
	assert.NotContains(t, buf.String(), "error")
}

func TestJudgeReportsErrorForUnboundVar(t *testing.T) {
	r := New("test")
	var buf bytes.Buffer
	r.Judge("y", &buf)
	assert.Contains(t, buf.String(), "error:")
}

func TestJudgeEachLineStartsFromEmptyContext(t *testing.T) {
	r := New("test")
	var first, second bytes.Buffer
	r.Judge("|x| x", &first)
	assert.Contains(t, first.String(), "error:")

	r.Judge("true", &second)
	assert.Contains(t, second.String(), "Bool")
	assert.NotContains(t, second.String(), "error")
}

func TestHandleCommandQuitStopsLoop(t *testing.T) {
	r := New("test")
	var buf bytes.Buffer
	stop := r.HandleCommand(":quit", &buf)
	assert.True(t, stop)
	assert.Contains(t, buf.String(), "Goodbye")
}

func TestHandleCommandHelpListsCommands(t *testing.T) {
	r := New("test")
	var buf bytes.Buffer
	stop := r.HandleCommand(":help", &buf)
	assert.False(t, stop)
	assert.Contains(t, buf.String(), "Commands:")
}

func TestHandleCommandHistoryTracksJudgedInput(t *testing.T) {
	r := New("test")
	var judged bytes.Buffer
	r.Judge("true", &judged)
	r.history = append(r.history, "true")

	var buf bytes.Buffer
	r.HandleCommand(":history", &buf)
	assert.Contains(t, buf.String(), "true")
}

func TestHandleCommandUnknownReportsError(t *testing.T) {
	r := New("test")
	var buf bytes.Buffer
	stop := r.HandleCommand(":bogus", &buf)
	assert.False(t, stop)
	assert.Contains(t, buf.String(), "unknown command")
}
