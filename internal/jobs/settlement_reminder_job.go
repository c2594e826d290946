package jobs

import (
	"context"
	"log/slog"
	"time"

	"cargospace/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// unsettledShipmentsHandler is the slice of the query side the job needs,
// kept narrow so tests can substitute it.
type unsettledShipmentsHandler interface {
	Handle(ctx context.Context, query queries.GetUnsettledShipmentsQuery) ([]queries.GetUnsettledShipmentsQueryResponse, error)
}

// SettlementReminderJob periodically reports shipments that have sat in
// pending longer than maxPendingAge without a settlement transaction. It is
// read-only; the log lines are the product.
type SettlementReminderJob struct {
	handler       unsettledShipmentsHandler
	maxPendingAge time.Duration
	cron          *cron.Cron
	logger        *slog.Logger
}

// NewSettlementReminderJob creates a job reporting unsettled shipments older
// than maxPendingAge, checked once a minute.
func NewSettlementReminderJob(
	handler unsettledShipmentsHandler,
	maxPendingAge time.Duration,
	logger *slog.Logger,
) *SettlementReminderJob {
	return &SettlementReminderJob{
		handler:       handler,
		maxPendingAge: maxPendingAge,
		cron:          cron.New(cron.WithSeconds()),
		logger:        logger.With("component", "settlement_reminder_job"),
	}
}

// Start begins the settlement reminder job, running at the top of every
// minute.
func (j *SettlementReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		j.run(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Settlement reminder job started (running every minute)")
	return nil
}

// Stop stops the settlement reminder job.
func (j *SettlementReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Settlement reminder job stopped")
}

func (j *SettlementReminderJob) run(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-j.maxPendingAge)

	query, err := queries.NewGetUnsettledShipmentsQuery(cutoff)
	if err != nil {
		j.logger.ErrorContext(ctx, "Settlement reminder job failed to build query", "error", err)
		return
	}

	shipments, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Settlement reminder job failed", "error", err)
		return
	}

	for _, sh := range shipments {
		j.logger.WarnContext(ctx, "Shipment pending without settlement",
			"shipmentId", sh.ID.String(),
			"ownerId", sh.OwnerID.String(),
			"goodsType", sh.GoodsType,
			"pendingSince", sh.CreatedAt,
		)
	}
}
