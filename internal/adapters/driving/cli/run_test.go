package cli

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

func TestRunCmd_Invoke(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "run", "storage.buckets.list", "-i", "projection=full")
	require.NoError(t, err)

	assert.Equal(t, "storage.buckets.list", ts.invoker.lastBlock)
	assert.Equal(t, map[string]any{"projection": "full"}, ts.invoker.lastInputs)

	var event map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &event))
	assert.Equal(t, "inv-1", event["invocation_id"])
	assert.Equal(t, float64(200), event["status_code"])
}

func TestRunCmd_InputsDoNotAccumulate(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "run", "storage.buckets.list", "-i", "a=1", "-i", "b=2")
	require.NoError(t, err)
	_, err = execute(t, "run", "storage.buckets.list", "-i", "c=3")
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"c": "3"}, ts.invoker.lastInputs)
}

func TestRunCmd_DataOnly(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "run", "storage.buckets.list", "--data")
	require.NoError(t, err)

	var data map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &data))
	assert.Equal(t, map[string]any{"kind": "storage#buckets"}, data)
}

func TestRunCmd_RawOut(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.invoker.event = &domain.OutputEvent{
		BlockID: "storage.objects.get", StatusCode: 200, Raw: []byte("file body"), ContentType: "text/plain",
	}
	dest := filepath.Join(t.TempDir(), "out.txt")

	out, errOut, err := executeWithInput(t, "", "run", "storage.objects.get",
		"-i", "bucket=b", "-i", "object=o", "-i", "alt=media", "--raw-out", dest)
	require.NoError(t, err)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "file body", string(data))
	assert.Contains(t, errOut, "Wrote 9 bytes")
	assert.NotContains(t, out, "raw")
}

func TestRunCmd_RawDataToStdout(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.invoker.event = &domain.OutputEvent{StatusCode: 200, Raw: []byte("plain text")}

	out, err := execute(t, "run", "storage.objects.get", "--data")

	require.NoError(t, err)
	assert.Equal(t, "plain text", out)
}

func TestRunCmd_APIErrorPrintsBody(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.invoker.err = domain.NewAPIError("GET", "https://x", http.StatusNotFound, []byte(`{"error":{"code":404}}`))

	_, errOut, err := executeWithInput(t, "", "run", "storage.objects.get")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, errOut, `{"error":{"code":404}}`)
}

func TestRunCmd_Preview(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.invoker.request = &domain.APIRequest{
		Method:      "POST",
		URL:         "https://storage.googleapis.com/storage/v1/b?project=p",
		Header:      http.Header{"X-Goog-User-Project": []string{"p"}},
		Body:        []byte(`{"name":"logs"}`),
		ContentType: "application/json",
	}

	out, err := execute(t, "run", "storage.buckets.insert", "--preview", "-i", "name=logs")

	require.NoError(t, err)
	assert.Contains(t, out, "POST https://storage.googleapis.com/storage/v1/b?project=p")
	assert.Contains(t, out, "X-Goog-User-Project: p")
	assert.Contains(t, out, `{"name":"logs"}`)
}

func TestRunCmd_PreviewMedia(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.invoker.request = &domain.APIRequest{Method: "POST", URL: "u", Body: []byte{1, 2, 3}, ContentType: "application/octet-stream"}

	out, err := execute(t, "run", "storage.objects.insert", "--preview")

	require.NoError(t, err)
	assert.Contains(t, out, "[3 bytes of application/octet-stream]")
}

func TestRunCmd_RequiresBlockID(t *testing.T) {
	_, err := execute(t, "run")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestRunCmd_NotConfigured(t *testing.T) {
	Configure(nil)

	_, err := execute(t, "run", "storage.buckets.list")

	assert.EqualError(t, err, "invoker not configured")
}

func TestCollectInputs(t *testing.T) {
	dir := t.TempDir()
	payload := filepath.Join(dir, "payload.bin")
	require.NoError(t, os.WriteFile(payload, []byte{0xde, 0xad}, 0600))
	jsonFile := filepath.Join(dir, "inputs.json")
	require.NoError(t, os.WriteFile(jsonFile, []byte(`{"bucket":"from-file","maxResults":5}`), 0600))
	yamlFile := filepath.Join(dir, "inputs.yaml")
	require.NoError(t, os.WriteFile(yamlFile, []byte("bucket: yaml-bucket\nlabels:\n  env: prod\n"), 0600))

	t.Run("pairs", func(t *testing.T) {
		inputs, err := collectInputs("", []string{"bucket=b", "filter=a=b", " name =x"})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"bucket": "b", "filter": "a=b", "name": "x"}, inputs)
	})

	t.Run("file reference", func(t *testing.T) {
		inputs, err := collectInputs("", []string{"media=@" + payload})
		require.NoError(t, err)
		assert.Equal(t, []byte{0xde, 0xad}, inputs["media"])
	})

	t.Run("json file merged under pairs", func(t *testing.T) {
		inputs, err := collectInputs(jsonFile, []string{"bucket=override"})
		require.NoError(t, err)
		assert.Equal(t, "override", inputs["bucket"])
		assert.Equal(t, float64(5), inputs["maxResults"])
	})

	t.Run("yaml file", func(t *testing.T) {
		inputs, err := collectInputs(yamlFile, nil)
		require.NoError(t, err)
		assert.Equal(t, "yaml-bucket", inputs["bucket"])
		assert.Equal(t, map[string]any{"env": "prod"}, inputs["labels"])
	})

	t.Run("missing equals", func(t *testing.T) {
		_, err := collectInputs("", []string{"bucket"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("empty key", func(t *testing.T) {
		_, err := collectInputs("", []string{"=value"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("missing referenced file", func(t *testing.T) {
		_, err := collectInputs("", []string{"media=@" + filepath.Join(dir, "nope")})
		assert.Error(t, err)
	})

	t.Run("invalid input file", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte("{"), 0600))
		_, err := collectInputs(bad, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
