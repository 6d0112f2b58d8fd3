package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunPrintsTokens(t *testing.T) {
	path := writeFile(t, "a.aml", "scenario {\n  x = -5 # note\n}\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{path}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 6)
	assert.Regexp(t, `^1:1\s+SCENARIO\s+scenario\s*$`, lines[0])
	assert.Regexp(t, `^2:3\s+IDENTIFIER\s+x\s+x$`, lines[2])
	assert.Regexp(t, `^2:7\s+INTEGER\s+-5\s+-5$`, lines[4])
	assert.Contains(t, stderr.String(), "Tokenized")
}

func TestRunReportsIllegalCharacter(t *testing.T) {
	path := writeFile(t, "bad.aml", "x = 1\ny = a | b\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{path}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "error[E0001]: illegal character '|'")
	assert.Contains(t, stderr.String(), "bad.aml:2:7")
	assert.Contains(t, stderr.String(), "did you mean '||'?")
	assert.Contains(t, stderr.String(), "Tokenization failed")
}

func TestRunWithKeywordTable(t *testing.T) {
	table := writeFile(t, "kw.yaml", "keywords:\n  scenario: SCENARIO\n  pacchetto: PACKET\n")
	path := writeFile(t, "a.aml", "pacchetto packet")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-keywords", table, path}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "PACKET")
	assert.Contains(t, lines[1], "IDENTIFIER")
}

func TestRunBadKeywordTable(t *testing.T) {
	table := writeFile(t, "kw.yaml", "keywords:\n  plus: ADD\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-keywords", table, "unused.aml"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "error[E0900]")
	assert.Contains(t, stderr.String(), "not a reserved kind")
}

func TestRunPrintsRules(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-rules"}, &stdout, &stderr)
	require.Equal(t, 0, code)

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 1+7+27)
	assert.Regexp(t, `^0\s+content\s+STRING`, lines[1])
	assert.Regexp(t, `^2\s+content\s+INTEGER`, lines[3])
	assert.Regexp(t, `^7\s+simple\s+ADD_ASSIGN\s+\+=$`, lines[8])
}

func TestRunUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run(nil, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "Usage: aml-lex")

	stderr.Reset()
	assert.Equal(t, 1, run([]string{filepath.Join(t.TempDir(), "missing.aml")}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "failed to read file")
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "500ns", formatDuration(500*time.Nanosecond))
	assert.Equal(t, "1.5μs", formatDuration(1500*time.Nanosecond))
	assert.Equal(t, "2.0ms", formatDuration(2*time.Millisecond))
	assert.Equal(t, "1.50s", formatDuration(1500*time.Millisecond))
}
