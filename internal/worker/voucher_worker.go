package worker

// voucher_worker.go
// Processes voucher jobs from QueueVoucher: renders the PDF voucher for a
// saved stock document and, for goods-received notes, enqueues an email job
// so the supplier receives a copy.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/talhasonu918-ctrl/CRM-Superadmin-sub002/internal/infra"
	"github.com/talhasonu918-ctrl/CRM-Superadmin-sub002/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// VoucherJobPayload is the job envelope sent to QueueVoucher.
type VoucherJobPayload struct {
	DocumentID string `json:"document_id"`
}

// VoucherWorker renders stock document vouchers.
type VoucherWorker struct {
	docs        repository.DocumentRepository
	dispatcher  *Dispatcher
	rdb         *redis.Client
	storagePath string
}

func NewVoucherWorker(docs repository.DocumentRepository, dispatcher *Dispatcher, rdb *redis.Client, storagePath string) *VoucherWorker {
	return &VoucherWorker{docs: docs, dispatcher: dispatcher, rdb: rdb, storagePath: storagePath}
}

// Process handles a single voucher job:
//  1. Fetch the saved document (with lines and supplier)
//  2. Render the PDF voucher
//  3. Record the voucher path on the document
//  4. GRN with a supplier email on file → enqueue an email job
//
// Render failures go to the DLQ after retries; the document itself stays
// saved either way — the voucher is a derived artifact.
func (w *VoucherWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload VoucherJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("voucher_worker: invalid payload")
		return
	}

	docID, err := uuid.Parse(payload.DocumentID)
	if err != nil {
		log.Error().Str("document_id", payload.DocumentID).Msg("voucher_worker: invalid document_id")
		return
	}

	doc, err := w.docs.FindByID(ctx, docID)
	if err != nil {
		log.Error().Err(err).Str("document_id", payload.DocumentID).Msg("voucher_worker: document not found")
		return
	}

	var pdfPath string
	renderErr := withRetry(ctx, 3, func(attempt int) error {
		p, err := infra.GenerateVoucherPDF(doc, w.storagePath)
		if err != nil {
			log.Warn().Err(err).Int("attempt", attempt+1).
				Str("document", doc.DocumentNumber).
				Msg("voucher_worker: render attempt failed, retrying")
			return err
		}
		pdfPath = p
		return nil
	})
	if renderErr != nil {
		SendToDLQ(ctx, w.rdb, QueueVoucher, "voucher", raw, renderErr.Error(), 3)
		return
	}

	if err := w.docs.SetVoucherPath(ctx, docID, pdfPath); err != nil {
		log.Error().Err(err).Str("document", doc.DocumentNumber).Msg("voucher_worker: failed to record voucher path")
	}
	log.Info().Str("pdf", pdfPath).Str("document", doc.DocumentNumber).Msg("voucher_worker: voucher rendered")

	if doc.Supplier == nil || doc.Supplier.Email == nil || *doc.Supplier.Email == "" {
		return
	}
	emailJob := EmailJobPayload{
		ToEmail: *doc.Supplier.Email,
		Subject: fmt.Sprintf("Goods received — %s", doc.DocumentNumber),
		Body:    fmt.Sprintf("Attached is the goods received note %s for a total of %s.", doc.DocumentNumber, doc.GrandTotal.StringFixed(2)),
		PDFPath: pdfPath,
	}
	if err := w.dispatcher.EnqueueEmail(ctx, emailJob); err != nil {
		log.Warn().Err(err).Str("email", *doc.Supplier.Email).Msg("voucher_worker: failed to enqueue email")
	}
}
