package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_TranscriptGolden(t *testing.T) {
	stdout, stderr, err := execute(t, "run", filepath.Join("testdata", "session.yaml"))

	// The script contains one absorbed division by zero.
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Equal(t, 1, strings.Count(stderr, "attempted to divide by zero"))

	g := goldie.New(t)
	g.Assert(t, "session_transcript", []byte(stdout))
}

func TestRun_CleanSession(t *testing.T) {
	stdout, stderr, err := execute(t, "run", filepath.Join("testdata", "session_ok.yaml"))

	require.NoError(t, err)
	assert.Contains(t, stdout, "1 add 2 = 3")
	assert.Contains(t, stdout, "9 divide 2 = 4.5")
	assert.NotContains(t, stderr, "attempted to divide by zero")
}

func TestRun_JSON(t *testing.T) {
	stdout, _, err := execute(t, "--format", "json", "run", filepath.Join("testdata", "session.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status, "the session itself completed")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 2, data["precision"])
	assert.EqualValues(t, 1, data["no_result_steps"])

	steps, ok := data["steps"].([]interface{})
	require.True(t, ok)
	require.Len(t, steps, 4)

	absorbed, ok := steps[2].(map[string]interface{})
	require.True(t, ok)
	assert.Nil(t, absorbed["result"], "absorbed step carries a null result")

	history, ok := data["history"].([]interface{})
	require.True(t, ok)
	assert.Len(t, history, 3, "the absorbed step writes no history entry")
}

func TestRun_MissingScript(t *testing.T) {
	stdout, _, err := execute(t, "run", filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, stdout, "Error [E005]")
}

func TestRun_BadStepOperation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
steps:
  - {op: modulo, a: 1, b: 2}
`), 0o644))

	stdout, _, err := execute(t, "run", path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, stdout, "Error [E002]")
	assert.Contains(t, stdout, "step 1")
}

func TestRun_ScriptPrecisionOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "precise.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
precision: 4
steps:
  - {op: divide, a: 10, b: 3}
`), 0o644))

	stdout, _, err := execute(t, "run", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "10 divide 3 = 3.3333")
}
