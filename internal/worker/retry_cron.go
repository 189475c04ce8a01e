package worker

// retry_cron.go
// Background goroutine that periodically re-enqueues voucher rendering for
// saved documents whose voucher never materialized (worker crash, storage
// outage). The grace period keeps it from racing freshly enqueued jobs.

import (
	"context"
	"time"

	"github.com/talhasonu918-ctrl/CRM-Superadmin-sub002/internal/repository"

	"github.com/rs/zerolog/log"
)

const (
	retryTickInterval  = 5 * time.Minute
	retryBatchSize     = 10
	voucherGracePeriod = 10 * time.Minute
)

// RetryCronConfig holds all dependencies for the retry goroutine.
type RetryCronConfig struct {
	Docs       repository.DocumentRepository
	Dispatcher *Dispatcher
}

// StartRetryCron launches a background goroutine that ticks every 5 minutes,
// queries documents missing a voucher, and re-enqueues render jobs.
// It respects the context for graceful shutdown.
func StartRetryCron(ctx context.Context, cfg RetryCronConfig) {
	go func() {
		ticker := time.NewTicker(retryTickInterval)
		defer ticker.Stop()

		log.Info().Msg("retry_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("retry_cron: shutting down")
				return
			case <-ticker.C:
				processRetries(ctx, cfg)
			}
		}
	}()
}

func processRetries(ctx context.Context, cfg RetryCronConfig) {
	cutoff := time.Now().Add(-voucherGracePeriod)
	docs, err := cfg.Docs.ListMissingVouchers(ctx, cutoff, retryBatchSize)
	if err != nil {
		log.Error().Err(err).Msg("retry_cron: failed to query documents missing vouchers")
		return
	}
	if len(docs) == 0 {
		return
	}

	log.Info().Int("count", len(docs)).Msg("retry_cron: re-enqueueing voucher jobs")

	for i := range docs {
		doc := &docs[i]
		payload := VoucherJobPayload{DocumentID: doc.ID.String()}
		if err := cfg.Dispatcher.EnqueueVoucher(ctx, payload); err != nil {
			log.Warn().Err(err).Str("document", doc.DocumentNumber).
				Msg("retry_cron: failed to re-enqueue voucher job")
		}
	}
}
