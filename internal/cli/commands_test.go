package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/lootifier/pkg/config"
	"github.com/arthur-debert/lootifier/pkg/errors"
	"github.com/arthur-debert/lootifier/pkg/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cmdResult struct {
	stdout string
	stderr string
	err    error
}

func execute(t *testing.T, fsys afero.Fs, stdin string, args ...string) cmdResult {
	t.Helper()
	var stdout, stderr bytes.Buffer

	cmd := NewRootCmdWithFS(fsys)
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))

	err := cmd.Execute()
	return cmdResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func TestRootConvertsWithDefaults(t *testing.T) {
	env := testutil.NewTestEnvironment(t).WithFiles(map[string]string{
		"loadorder.txt":   "# MO2\nA.esm\nB.esm\nC.esp\n",
		"masterlist.yaml": "groups: []\n",
	})

	res := execute(t, env.FS, "")
	require.NoError(t, res.err)

	userlist := env.ReadFile("userlist.yaml")
	assert.Equal(t, userlist, res.stdout)
	assert.Contains(t, userlist, "name: 'C.esp'")
	assert.Contains(t, userlist, "after: 'B.esm'")
	assert.Empty(t, env.ReadFile("masterlist.yaml"))

	assert.Contains(t, res.stderr, "Wrote 2 group rules and 3 plugin rules to userlist.yaml")
	assert.Contains(t, res.stderr, "Cleared masterlist.yaml")
}

func TestRootCustomPaths(t *testing.T) {
	env := testutil.NewTestEnvironment(t).WithFiles(map[string]string{
		"profiles/Default/loadorder.txt": "A.esm\n",
		"loot/masterlist.yaml":           "keep",
	})

	res := execute(t, env.FS, "",
		"-i", "profiles/Default/loadorder.txt",
		"-o", "loot/userlist.yaml",
		"-m", "loot/masterlist.yaml",
		"--no-clear",
		"--print=false",
	)
	require.NoError(t, res.err)

	assert.Empty(t, res.stdout)
	assert.True(t, strings.HasPrefix(env.ReadFile("loot/userlist.yaml"), "groups: []\nplugins:\n"))
	assert.Equal(t, "keep", env.ReadFile("loot/masterlist.yaml"))
}

func TestRootStdinDryRun(t *testing.T) {
	env := testutil.NewTestEnvironment(t).WithFiles(map[string]string{"masterlist.yaml": "keep"})

	res := execute(t, env.FS, "A.esm\nO'Brien.esp\n", "-i", "-", "--dry-run", "--print=false")
	require.NoError(t, res.err)

	assert.Contains(t, res.stdout, "name: 'O''Brien.esp'")
	assert.Contains(t, res.stderr, "Dry run: userlist.yaml was not written")
	assert.Equal(t, "keep", env.ReadFile("masterlist.yaml"))

	assert.False(t, env.Exists("userlist.yaml"))
}

func TestRootMissingInput(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	res := execute(t, env.FS, "")
	require.Error(t, res.err)
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrSourceUnreadable))
	assert.Empty(t, res.stdout)
}

func TestRootInvalidFormat(t *testing.T) {
	env := testutil.NewTestEnvironment(t).WithFiles(map[string]string{"loadorder.txt": "A.esm\n"})

	res := execute(t, env.FS, "", "--format", "sparkly")
	assert.ErrorContains(t, res.err, "invalid --format")

	assert.False(t, env.Exists("userlist.yaml"))
}

func TestRootRejectsArgs(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	res := execute(t, env.FS, "", "loadorder.txt")
	assert.Error(t, res.err)
}

func TestRootEnvironmentOverride(t *testing.T) {
	env := testutil.NewTestEnvironment(t).WithFiles(map[string]string{"loadorder.txt": "A.esm\n"})
	t.Setenv("LOOTIFIER_OUTPUT", "from-env.yaml")

	res := execute(t, env.FS, "")
	require.NoError(t, res.err)

	assert.True(t, env.Exists("from-env.yaml"))

	res = execute(t, env.FS, "", "-o", "from-flag.yaml")
	require.NoError(t, res.err)
	assert.True(t, env.Exists("from-flag.yaml"))
}

func TestVersionCmd(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	res := execute(t, env.FS, "", "version")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "lootifier version dev")
	assert.Contains(t, res.stdout, "Commit:")
}

func TestConfigShow(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	t.Setenv("LOOTIFIER_INPUT", "custom.txt")

	res := execute(t, env.FS, "", "config", "show")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "input = ")
	assert.Contains(t, res.stdout, "custom.txt")
	assert.Contains(t, res.stdout, "clear_masterlist = true")
}

func TestConfigInit(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	res := execute(t, env.FS, "", "config", "init")
	require.NoError(t, res.err)
	assert.Equal(t, config.DefaultConfigContent(), env.ReadFile(config.ProjectFileName))

	res = execute(t, env.FS, "", "config", "init")
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrInvalidInput))

	res = execute(t, env.FS, "", "config", "init", "--force", "other.toml")
	require.NoError(t, res.err)
	assert.Equal(t, config.DefaultConfigContent(), env.ReadFile("other.toml"))
}

func TestManCmd(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	dir := filepath.Join(t.TempDir(), "man")

	res := execute(t, env.FS, "", "man", dir)
	require.NoError(t, res.err)

	_, err := os.Stat(filepath.Join(dir, "lootifier.1"))
	assert.NoError(t, err)
}

func TestCompletionCmd(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	res := execute(t, env.FS, "", "completion", "bash")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "lootifier")
}

func TestHelpTopics(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	res := execute(t, env.FS, "", "help", "topics")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "userlist")
	assert.Contains(t, res.stdout, "--dry-run")

	res = execute(t, env.FS, "", "help", "--no-clear")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Leave the masterlist untouched")

	res = execute(t, env.FS, "", "help", "masterlist")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "truncated")
}

func TestHelpTopicsHonorFormat(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	for _, args := range [][]string{
		{"--format", "text", "help", "userlist"},
		{"help", "--format", "text", "userlist"},
		{"help", "userlist"},
	} {
		res := execute(t, env.FS, "", args...)
		require.NoError(t, res.err, "args %v", args)
		assert.Contains(t, res.stdout, "Userlist", "args %v", args)
		assert.NotContains(t, res.stdout, "\x1b[", "args %v", args)
	}

	res := execute(t, env.FS, "", "help", "--format", "sparkly", "userlist")
	require.NoError(t, res.err)
	assert.NotContains(t, res.stdout, "\x1b[")
}

func TestRootReadsConfigFromInjectedFS(t *testing.T) {
	env := testutil.NewTestEnvironment(t).WithFiles(map[string]string{
		"loadorder.txt":        "A.esm\nB.esm\n",
		config.ProjectFileName: "output = \"from-config.yaml\"\nprint = false\n",
	})

	res := execute(t, env.FS, "")
	require.NoError(t, res.err)

	assert.True(t, env.Exists("from-config.yaml"))
	assert.False(t, env.Exists("userlist.yaml"))
	assert.Empty(t, res.stdout)
}

func TestConfigInitThenShow(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	res := execute(t, env.FS, "", "config", "init", "custom.toml")
	require.NoError(t, res.err)
	edited := strings.Replace(env.ReadFile("custom.toml"), `output = "userlist.yaml"`, `output = "edited.yaml"`, 1)
	env.WriteFile("custom.toml", edited)

	res = execute(t, env.FS, "", "--config", "custom.toml", "config", "show")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "edited.yaml")
}
