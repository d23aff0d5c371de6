package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out, &errOut)
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	code = execute(cmd, &errOut)
	return code, out.String(), errOut.String()
}

func writeScript(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.lox")
	require.NoError(t, os.WriteFile(path, []byte(source), 0o600))
	return path
}

func TestRunFileSuccess(t *testing.T) {
	path := writeScript(t, "1 + 2 * 3;\n-4 == 4\n")

	code, stdout, stderr := runCLI(t, "", path)

	assert.Equal(t, exitOK, code)
	assert.Equal(t, "(+ 1 (* 2 3))\n(== (- 4) 4)\n", stdout)
	assert.Empty(t, stderr)
}

func TestRunFileDiagnostics(t *testing.T) {
	path := writeScript(t, "(1 + 2\n@")

	code, stdout, stderr := runCLI(t, "", path)

	assert.Equal(t, exitData, code)
	assert.Empty(t, stdout)
	assert.Equal(t,
		"[line 2] Error: Unexpected character\n[line 2] Error at end: Expect ')' after expression\n",
		stderr)
}

func TestRunFileMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.lox")

	code, _, stderr := runCLI(t, "", missing)

	assert.Equal(t, exitNoInput, code)
	assert.Contains(t, stderr, "reading script")
	assert.Contains(t, stderr, "nope.lox")
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"too many arguments", []string{"a.lox", "b.lox"}},
		{"unknown flag", []string{"--bogus"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, "", tt.args...)
			assert.Equal(t, exitUsage, code)
			assert.Contains(t, stderr, "Usage:")
		})
	}
}

func TestTokensFlag(t *testing.T) {
	path := writeScript(t, "!\"hi\"")

	code, stdout, _ := runCLI(t, "", "--tokens", "--ast=false", path)

	assert.Equal(t, exitOK, code)
	assert.Equal(t, "BANG ! \nSTRING \"hi\" hi\nEOF \n", stdout)
}

func TestDumpFlag(t *testing.T) {
	path := writeScript(t, "nil")

	code, stdout, _ := runCLI(t, "", "--ast=false", "--dump", path)

	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "LiteralExpr")
}

func TestMaxDepthFlag(t *testing.T) {
	path := writeScript(t, "((((1))))")

	code, _, stderr := runCLI(t, "", "--max-depth", "3", path)

	assert.Equal(t, exitData, code)
	assert.Contains(t, stderr, "Expression nesting too deep")
}

func TestRecoveryFlag(t *testing.T) {
	path := writeScript(t, "+; +;")

	_, _, withRecovery := runCLI(t, "", path)
	_, _, without := runCLI(t, "", "--recovery=false", path)

	assert.Equal(t, 2, strings.Count(withRecovery, "Error"))
	assert.Equal(t, 1, strings.Count(without, "Error"))
}

func TestPromptLinesAreIndependent(t *testing.T) {
	code, stdout, stderr := runCLI(t, "(1\n2 + 3\n(1\n")

	assert.Equal(t, exitOK, code, "prompt errors do not fail the session")
	assert.Equal(t, "> > (+ 2 3)\n> > \n", stdout)
	assert.Equal(t, 2, strings.Count(stderr, "[line 1] Error at end: Expect ')' after expression"))
}

func TestPromptCachesRepeatedLines(t *testing.T) {
	code, stdout, stderr := runCLI(t, "1 + 1\n1 + 1\n", "-v")

	assert.Equal(t, exitOK, code)
	assert.Equal(t, "> (+ 1 1)\n> (+ 1 1)\n> \n", stdout)
	assert.Contains(t, stderr, "cached=false")
	assert.Contains(t, stderr, "cached=true")
	assert.Contains(t, stderr, "hits=1")
}

func TestPromptEmptyInput(t *testing.T) {
	code, stdout, stderr := runCLI(t, "")

	assert.Equal(t, exitOK, code)
	assert.Equal(t, "> \n", stdout)
	assert.Empty(t, stderr)
}

func TestPromptLongLine(t *testing.T) {
	long := strings.Repeat("1 + ", 20000) + "1"

	code, stdout, stderr := runCLI(t, long+"\n2\n")

	assert.Equal(t, exitOK, code)
	assert.Empty(t, stderr)
	assert.True(t, strings.HasSuffix(stdout, "> 2\n> \n"), "later lines are still processed")
}

func TestPromptFinalLineWithoutNewline(t *testing.T) {
	code, stdout, _ := runCLI(t, "1\n2")

	assert.Equal(t, exitOK, code)
	assert.Equal(t, "> 1\n> 2\n\n", stdout)
}

func TestRunFileBypassesCache(t *testing.T) {
	path := writeScript(t, "1 + 1")
	var out, errOut bytes.Buffer
	d := newDriver(&options{ast: true, noColor: true, cacheSize: 16}, &out, &errOut)

	require.NoError(t, d.runFile(path))
	assert.Equal(t, "(+ 1 1)\n", out.String())
	assert.Nil(t, d.cache, "one-shot runs do not allocate a cache")
}
