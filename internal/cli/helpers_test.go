package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/focup/internal/models"
	"github.com/thenoetrevino/focup/internal/services/task"
)

func TestParseTaskID(t *testing.T) {
	tests := []struct {
		arg     string
		want    int64
		wantErr bool
	}{
		{"1", 1, false},
		{"#42", 42, false},
		{" 7 ", 7, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.arg), func(t *testing.T) {
			got, err := ParseTaskID(tt.arg)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, ExitUsage, ExitCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantName string
	}{
		{"nil", nil, ExitSuccess, "ERROR"},
		{"not found", fmt.Errorf("task 3: %w", task.ErrTaskNotFound), ExitNotFound, "TASK_NOT_FOUND"},
		{"blank title", fmt.Errorf("failed to add task: %w", task.ErrEmptyTitle), ExitValidation, "VALIDATION_ERROR"},
		{"persistence", models.NewPersistenceError("insert", errors.New("disk full")), ExitError, "PERSISTENCE_ERROR"},
		{"usage", UsageError(errors.New("missing id")), ExitUsage, "USAGE_ERROR"},
		{"explicit", WithExitCode(ExitDataErr, errors.New("bad config")), ExitDataErr, "DATA_ERROR"},
		{"other", errors.New("boom"), ExitError, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, ExitCode(tt.err))
			if tt.err != nil {
				assert.Equal(t, tt.wantName, ErrorCode(tt.err))
			}
		})
	}
}

func TestWithExitCode_Nil(t *testing.T) {
	assert.NoError(t, WithExitCode(ExitUsage, nil))
}

func TestExitError_Unwrap(t *testing.T) {
	cause := errors.New("cause")
	err := WithExitCode(ExitUsage, cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "cause", err.Error())
}

func TestReportError_MarksReported(t *testing.T) {
	cause := fmt.Errorf("task 4: %w", task.ErrTaskNotFound)

	var err error
	stdout, _ := captureStd(t, func() {
		err = ReportError(&OutputFormatter{JSON: true}, cause)
	})

	assert.True(t, IsReported(err))
	assert.False(t, IsReported(cause))
	assert.ErrorIs(t, err, task.ErrTaskNotFound)
	assert.Equal(t, ExitNotFound, ExitCode(err))
	assert.Contains(t, stdout, "TASK_NOT_FOUND")
	assert.Contains(t, stdout, "focup list")
}
