package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskTypeValid(t *testing.T) {
	for _, taskType := range AllTaskTypes() {
		assert.True(t, taskType.Valid(), "%s should be valid", taskType)
	}
	assert.False(t, TaskType("essay").Valid())
	assert.False(t, TaskType("").Valid())
}

func TestDomainErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewUpstreamUnavailableError(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestDomainErrorWithContext(t *testing.T) {
	err := NewUnknownTaskTypeError("essay")
	assert.Equal(t, "essay", err.Context["task_type"])

	err = err.WithContext("extra", 1)
	assert.Equal(t, 1, err.Context["extra"])
}
