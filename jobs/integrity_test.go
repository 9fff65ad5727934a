package jobs

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegrityScanTaskPayloadRoundTrip(t *testing.T) {
	task, err := NewIntegrityScanTask(IntegrityScanPayload{Since: "2024-01-01"})
	require.NoError(t, err)
	assert.Equal(t, TaskLedgerIntegrityScan, task.Type())
	assert.JSONEq(t, `{"since":"2024-01-01"}`, string(task.Payload()))

	task, err = NewIntegrityScanTask(IntegrityScanPayload{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(task.Payload()), "empty since is omitted")
}

func TestIntegrityHandleSkipsBadInput(t *testing.T) {
	scanner := NewIntegrityScanner(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	// Malformed payloads and dates are permanent failures; retrying the
	// same bytes cannot succeed.
	err := scanner.Handle(context.Background(), asynq.NewTask(TaskLedgerIntegrityScan, []byte("{not json")))
	assert.ErrorIs(t, err, asynq.SkipRetry)

	err = scanner.Handle(context.Background(), asynq.NewTask(TaskLedgerIntegrityScan, []byte(`{"since":"01/01/2024"}`)))
	assert.ErrorIs(t, err, asynq.SkipRetry)
}

func TestNullableDate(t *testing.T) {
	assert.Nil(t, nullableDate(time.Time{}))

	d, err := time.Parse("2006-01-02", "2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, any(d), nullableDate(d))
}
