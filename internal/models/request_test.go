package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestStatusIsValid(t *testing.T) {
	valid := []RequestStatus{
		RequestStatusPending,
		RequestStatusInProgress,
		RequestStatusResolved,
		RequestStatusCompleted,
		RequestStatusRejected,
	}
	for _, s := range valid {
		assert.True(t, s.IsValid(), "статус %q должен быть валидным", s)
	}

	assert.False(t, RequestStatus("Vanished").IsValid())
	assert.False(t, RequestStatus("").IsValid())
	// Регистр имеет значение
	assert.False(t, RequestStatus("pending").IsValid())
}

func TestRequestStatusIsTerminalSuccess(t *testing.T) {
	assert.True(t, RequestStatusResolved.IsTerminalSuccess())
	assert.True(t, RequestStatusCompleted.IsTerminalSuccess())

	assert.False(t, RequestStatusPending.IsTerminalSuccess())
	assert.False(t, RequestStatusInProgress.IsTerminalSuccess())
	assert.False(t, RequestStatusRejected.IsTerminalSuccess())
}
