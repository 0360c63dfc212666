package cmd

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command in-process with args, capturing
// whatever it writes to os.Stdout -- encode/decode/dump print via
// fmt.Println(os.Stdout) rather than cmd.OutOrStdout(), so stdout
// itself must be redirected, matching the teacher's in-process
// command test style (preprocess_test.go) applied to a stream-based
// CLI instead of one that returns a value directly.
func runCLI(t *testing.T, args ...string) string {
	t.Helper()
	resetFlagsToDefaults()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	rootCmd.SetArgs(args)
	execErr := Execute()

	require.NoError(t, w.Close())
	out, readErr := io.ReadAll(r)
	require.NoError(t, readErr)
	require.NoError(t, execErr)
	return string(out)
}

// resetFlagsToDefaults restores the package-level flag variables to
// their cobra-declared defaults. Flag state otherwise leaks between
// in-process Execute() calls within one test binary, since pflag only
// calls Set on a flag actually present in the next invocation's args.
func resetFlagsToDefaults() {
	delimiterFlag = "comma"
	indentFlag = 2
	strictFlag = false
	keyFoldingFlag = "off"
	expandPathsFlag = "off"
	logLevelFlag = "info"
}

func TestEncodeCommandScalarAndInlineArray(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/in.json"
	require.NoError(t, os.WriteFile(path, []byte(`{"a":1,"b":[true,"x"]}`), 0o644))

	out := runCLI(t, "encode", path)
	assert.Equal(t, "a: 1\nb[2]: true,x\n", out)
}

func TestEncodeCommandRejectsUnknownDelimiter(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/in.json"
	require.NoError(t, os.WriteFile(path, []byte(`{"a":1}`), 0o644))

	resetFlagsToDefaults()
	rootCmd.SetArgs([]string{"encode", "--delimiter", "semicolon", path})
	err := Execute()
	assert.Error(t, err)
	resetFlagsToDefaults()
}
