package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/photonforge/rtprep/internal/cli"
)

func newCommand(opts *cli.Options) *cobra.Command {
	cmd := &cobra.Command{Use: "rtprep", RunE: func(*cobra.Command, []string) error { return nil }}
	cli.BindFlags(cmd, opts)
	return cmd
}

func parse(t *testing.T, args ...string) (*cobra.Command, *cli.Options) {
	t.Helper()
	opts := &cli.Options{}
	cmd := newCommand(opts)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, opts
}

func TestDefaults(t *testing.T) {
	cmd, opts := parse(t)
	assert.Empty(t, opts.Report)
	assert.False(t, opts.SkipImages)
	assert.False(t, opts.Verbose)
	assert.False(t, opts.NoColor)
	assert.NoError(t, cli.ValidateFlags(cmd, opts))
}

func TestFlagParsing(t *testing.T) {
	cmd, opts := parse(t, "--report", "out.json", "--skip-images", "-v", "--no-color")
	assert.Equal(t, "out.json", opts.Report)
	assert.True(t, opts.SkipImages)
	assert.True(t, opts.Verbose)
	assert.True(t, opts.NoColor)
	assert.NoError(t, cli.ValidateFlags(cmd, opts))
}

func TestValidateFlagsRejectsFileAsReportDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	cmd, opts := parse(t, "--report", filepath.Join(file, "out.json"))
	err := cli.ValidateFlags(cmd, opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}
