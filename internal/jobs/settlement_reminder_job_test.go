package jobs

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"cargospace/internal/core/application/usecases/queries"
	"cargospace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUnsettledHandler struct {
	gotCutoff time.Time
	responses []queries.GetUnsettledShipmentsQueryResponse
	err       error
}

func (f *fakeUnsettledHandler) Handle(
	_ context.Context,
	query queries.GetUnsettledShipmentsQuery,
) ([]queries.GetUnsettledShipmentsQueryResponse, error) {
	f.gotCutoff = query.Cutoff()
	return f.responses, f.err
}

func TestSettlementReminderJob_Run(t *testing.T) {
	handler := &fakeUnsettledHandler{
		responses: []queries.GetUnsettledShipmentsQueryResponse{
			{
				ID:        kernel.NewUUID(),
				OwnerID:   kernel.NewUUID(),
				GoodsType: "electronics",
				CreatedAt: time.Now().UTC().Add(-2 * time.Hour),
			},
		},
	}

	job := NewSettlementReminderJob(handler, time.Hour, slog.Default())
	job.run(t.Context())

	require.False(t, handler.gotCutoff.IsZero())
	assert.WithinDuration(t, time.Now().UTC().Add(-time.Hour), handler.gotCutoff, time.Minute)
}

func TestSettlementReminderJob_Run_HandlerError(t *testing.T) {
	handler := &fakeUnsettledHandler{err: errors.New("db down")}

	job := NewSettlementReminderJob(handler, time.Hour, slog.Default())

	// Read-only job: a failing tick only logs and must not panic.
	assert.NotPanics(t, func() {
		job.run(t.Context())
	})
}
