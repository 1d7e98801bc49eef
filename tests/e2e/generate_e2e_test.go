package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/lithammer/dedent"
	"github.com/stretchr/testify/require"

	"jsconfig-gen/tests/testutil"
)

func TestGenerateCommandE2E(t *testing.T) {
	root := testutil.RepoRoot(t)
	workDir := t.TempDir()
	listing := testutil.WriteFile(t, workDir, "ls.json", dedent.Dedent(`
		{
		  "name": "app",
		  "dependencies": {
		    "@orgscope/util": {"version": "1.0.0"},
		    "lodash": {"dependencies": {"@orgscope/root": {}}}
		  }
		}`))
	output := filepath.Join(workDir, "out", "jsconfig.json")

	cmd := exec.Command("go", "run", "./cmd/jsconfig-gen", "generate",
		"--listing", listing,
		"--template", filepath.Join(workDir, "jsconfig.template.json"),
		"--output", output,
	)
	cmd.Dir = root
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Contains(t, string(data), `"node_modules/@orgscope/util/process/*/process"`)
	require.Contains(t, string(data), `"node_modules/@orgscope/root/process/*/process"`)
	require.Contains(t, string(data), "\n    \"compilerOptions\"")
}

func TestGenerateCommandFailedListingE2E(t *testing.T) {
	root := testutil.RepoRoot(t)
	workDir := t.TempDir()
	output := filepath.Join(workDir, "jsconfig.json")

	cmd := exec.Command("go", "run", "./cmd/jsconfig-gen", "generate",
		"--project-dir", workDir,
		"--npm", filepath.Join(workDir, "missing-npm"),
		"--output", output,
	)
	cmd.Dir = root
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))
	require.NoFileExists(t, output)
}
