package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// Envelope is the JSON shape every command writes with --json
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *EnvelopeError  `json:"error,omitempty"`
}

// EnvelopeError is the error half of Envelope
type EnvelopeError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// CaptureOutput runs fn with stdout redirected and returns what it wrote
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err, "failed to create stdout pipe")

	oldStdout := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = oldStdout }()

	outC := make(chan string, 1)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	fn()

	_ = w.Close()
	return <-outC
}

// DecodeEnvelope parses the --json output of a single command
func DecodeEnvelope(t *testing.T, output string) Envelope {
	t.Helper()

	var env Envelope
	require.NoError(t, json.Unmarshal([]byte(output), &env), "output is not a JSON envelope: %s", output)
	return env
}

// DecodeData asserts the command succeeded and decodes its payload into T
func DecodeData[T any](t *testing.T, output string) T {
	t.Helper()

	env := DecodeEnvelope(t, output)
	require.True(t, env.Success, "command reported failure: %+v", env.Error)

	var data T
	require.NoError(t, json.Unmarshal(env.Data, &data), "unexpected data payload: %s", env.Data)
	return data
}

// DecodeError asserts the command failed and returns its error details
func DecodeError(t *testing.T, output string) EnvelopeError {
	t.Helper()

	env := DecodeEnvelope(t, output)
	require.False(t, env.Success, "command unexpectedly succeeded")
	require.NotNil(t, env.Error, "failure envelope has no error")
	return *env.Error
}
