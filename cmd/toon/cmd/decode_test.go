package cmd

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCommandTabularRows(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/in.toon"
	require.NoError(t, os.WriteFile(path, []byte("rows[2]{a,b}:\n  1,x\n  2,y"), 0o644))

	out := runCLI(t, "decode", path)
	assert.JSONEq(t, `{"rows":[{"a":1,"b":"x"},{"a":2,"b":"y"}]}`, out)
}

func TestDecodeCommandStrictFlagRejectsBadIndentation(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/in.toon"
	require.NoError(t, os.WriteFile(path, []byte("a:\n   b: 1"), 0o644))

	resetFlagsToDefaults()
	rootCmd.SetArgs([]string{"decode", "--strict", path})
	err := Execute()
	assert.Error(t, err)
	resetFlagsToDefaults()
}
