package tasks

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatsInvalidateTask(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	task, opts, err := NewStatsInvalidateTask(at)
	require.NoError(t, err)
	assert.Equal(t, TypeStatsInvalidate, task.Type())
	assert.Len(t, opts, 3)

	var p InvalidatePayload
	require.NoError(t, json.Unmarshal(task.Payload(), &p))
	assert.True(t, p.RequestedAt.Equal(at))
	assert.NotEmpty(t, p.RequestID)

	other, _, err := NewStatsInvalidateTask(at)
	require.NoError(t, err)
	var q InvalidatePayload
	require.NoError(t, json.Unmarshal(other.Payload(), &q))
	assert.NotEqual(t, p.RequestID, q.RequestID)
}
