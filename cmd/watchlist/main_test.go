package main

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const runMainEnv = "WATCHLIST_TEST_RUN_MAIN"

// TestMain lets the test binary stand in for the command when re-executed
func TestMain(m *testing.M) {
	if os.Getenv(runMainEnv) == "1" {
		os.Args = append([]string{"watchlist"}, os.Args[1:]...)
		main()
		return
	}
	os.Exit(m.Run())
}

func runCommand(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	cmd := exec.Command(os.Args[0], args...)
	cmd.Env = append(os.Environ(), runMainEnv+"=1", "WATCHLIST_LOGGING_LEVEL=error")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	code := 0
	if exitErr, ok := err.(*exec.ExitError); ok {
		code = exitErr.ExitCode()
	} else {
		require.NoError(t, err)
	}
	return code, stdout.String(), stderr.String()
}

func TestMainConvertsFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "tv.txt")
	require.NoError(t, os.WriteFile(in, []byte("NASDAQ:AAPL\nCRYPTOCAP:ETH-AMEX:USD\n"), 0644))
	out := filepath.Join(dir, "csv", "rows.csv")

	code, stdout, _ := runCommand(t, in, out)
	require.Equal(t, 0, code)
	assert.Equal(t, "Wrote 3 rows to "+out+"\n", stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "Exchange,Ticker\r\nNASDAQ,AAPL\r\nCRYPTOCAP,ETH\r\nAMEX,USD\r\n", string(data))
}

func TestMainExitCodes(t *testing.T) {
	dir := t.TempDir()

	code, stdout, _ := runCommand(t)
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, "Usage: watchlist")

	missing := filepath.Join(dir, "missing.txt")
	code, _, stderr := runCommand(t, missing, filepath.Join(dir, "out.csv"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "File not found: "+missing)

	in := filepath.Join(dir, "tv.txt")
	require.NoError(t, os.WriteFile(in, []byte("AAPL\n"), 0644))
	code, _, _ = runCommand(t, "-format", "pdf", in, filepath.Join(dir, "out.csv"))
	assert.Equal(t, 2, code)
}
