package service

import (
	"context"
	"testing"
	"time"

	"github.com/talhasonu918-ctrl/CRM-Superadmin-sub002/internal/docedit"
	"github.com/talhasonu918-ctrl/CRM-Superadmin-sub002/internal/dto"
	"github.com/talhasonu918-ctrl/CRM-Superadmin-sub002/internal/model"
	"github.com/talhasonu918-ctrl/CRM-Superadmin-sub002/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

type stubResolver struct {
	products map[uuid.UUID]*docedit.ResolvedProduct
}

func newStubResolver() *stubResolver {
	return &stubResolver{products: make(map[uuid.UUID]*docedit.ResolvedProduct)}
}

func (r *stubResolver) add(name string, price float64) uuid.UUID {
	id := uuid.New()
	r.products[id] = &docedit.ResolvedProduct{
		ID:   id,
		Name: name,
		Units: []docedit.UnitOption{
			{Unit: "Unit", ConversionFactor: decimal.NewFromInt(1), IsDefault: true},
		},
		DefaultUnitPrice: decimal.NewFromFloat(price),
	}
	return id
}

func (r *stubResolver) LookupProduct(_ context.Context, id uuid.UUID) (*docedit.ResolvedProduct, error) {
	return r.products[id], nil
}

var _ docedit.ProductResolver = (*stubResolver)(nil)

// stubDocumentRepo records appended documents in memory.
type stubDocumentRepo struct {
	seq      int64
	appended []*model.StockDocument
}

func (r *stubDocumentRepo) NextSequence(_ context.Context, _ string, _ int) (int64, error) {
	r.seq++
	return r.seq, nil
}

func (r *stubDocumentRepo) Append(_ context.Context, doc *model.StockDocument) error {
	r.appended = append(r.appended, doc)
	return nil
}

func (r *stubDocumentRepo) FindByID(_ context.Context, id uuid.UUID) (*model.StockDocument, error) {
	for _, d := range r.appended {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, ErrDocumentNotFound
}

func (r *stubDocumentRepo) List(_ context.Context, _ dto.DocumentFilter) ([]model.StockDocument, int64, error) {
	return nil, 0, nil
}

func (r *stubDocumentRepo) SetVoucherPath(_ context.Context, _ uuid.UUID, _ string) error {
	return nil
}

func (r *stubDocumentRepo) ListMissingVouchers(_ context.Context, _ time.Time, _ int) ([]model.StockDocument, error) {
	return nil, nil
}

var _ repository.DocumentRepository = (*stubDocumentRepo)(nil)

// ── Helpers ───────────────────────────────────────────────────────────────────

func newTestEditor(t *testing.T) (EditorService, *stubResolver, *stubDocumentRepo) {
	t.Helper()
	resolver := newStubResolver()
	docs := &stubDocumentRepo{}
	return NewEditorService(resolver, docs, nil), resolver, docs
}

func strPtr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return &d
}

// openTransfer opens a transfer session with one filled line and header
// locations, ready to save.
func openTransfer(t *testing.T, svc EditorService, resolver *stubResolver) *dto.SessionResponse {
	t.Helper()
	ctx := context.Background()

	sess, err := svc.Open(ctx, dto.OpenSessionRequest{Type: "stock_transfer"})
	require.NoError(t, err)

	productID := resolver.add("Olive Oil 5L", 80)
	sid := uuid.MustParse(sess.ID)
	lineID := uuid.MustParse(sess.Lines[0].ID)

	_, err = svc.SelectProduct(ctx, sid, lineID, productID)
	require.NoError(t, err)
	_, err = svc.PatchLine(ctx, sid, lineID, dto.PatchLineRequest{Quantity: decPtr("4")})
	require.NoError(t, err)
	sess, err = svc.PatchHeader(ctx, sid, dto.PatchHeaderRequest{
		SourceLocation:      strPtr("Central Warehouse"),
		DestinationLocation: strPtr("Kitchen"),
	})
	require.NoError(t, err)
	return sess
}

// ── Session lifecycle ─────────────────────────────────────────────────────────

func TestOpenSeedsBlankLine(t *testing.T) {
	svc, _, _ := newTestEditor(t)

	sess, err := svc.Open(context.Background(), dto.OpenSessionRequest{Type: "goods_received"})
	require.NoError(t, err)

	assert.Equal(t, "goods_received", sess.Type)
	require.Len(t, sess.Lines, 1)
	assert.Nil(t, sess.Lines[0].ProductID)
	assert.Equal(t, 0, sess.Totals.LineCount)
}

func TestOpenRejectsUnknownType(t *testing.T) {
	svc, _, _ := newTestEditor(t)

	_, err := svc.Open(context.Background(), dto.OpenSessionRequest{Type: "invoice"})
	assert.Error(t, err)
}

func TestGetUnknownSessionFails(t *testing.T) {
	svc, _, _ := newTestEditor(t)

	_, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestDiscardRemovesSession(t *testing.T) {
	svc, _, _ := newTestEditor(t)
	ctx := context.Background()

	sess, err := svc.Open(ctx, dto.OpenSessionRequest{Type: "stock_adjustment"})
	require.NoError(t, err)
	sid := uuid.MustParse(sess.ID)

	require.NoError(t, svc.Discard(ctx, sid))
	_, err = svc.Get(ctx, sid)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, svc.Discard(ctx, sid), ErrSessionNotFound)
}

// ── Editing ───────────────────────────────────────────────────────────────────

func TestPatchLineRecomputesTotals(t *testing.T) {
	svc, resolver, _ := newTestEditor(t)
	ctx := context.Background()

	sess := openTransfer(t, svc, resolver)
	sid := uuid.MustParse(sess.ID)

	assert.Equal(t, "320", sess.Totals.Subtotal.String())

	lineID := uuid.MustParse(sess.Lines[0].ID)
	sess, err := svc.PatchLine(ctx, sid, lineID, dto.PatchLineRequest{UnitPrice: decPtr("100")})
	require.NoError(t, err)

	assert.Equal(t, "400", sess.Lines[0].LineTotal.String())
	assert.Equal(t, "400", sess.Totals.Subtotal.String())
}

func TestPatchHeaderDiscountAndTax(t *testing.T) {
	svc, resolver, _ := newTestEditor(t)
	ctx := context.Background()

	sess := openTransfer(t, svc, resolver)
	sid := uuid.MustParse(sess.ID)

	sess, err := svc.PatchHeader(ctx, sid, dto.PatchHeaderRequest{
		DiscountPercent: decPtr("10"),
		TaxPercent:      decPtr("5"),
	})
	require.NoError(t, err)

	// 320 − 32 = 288; 288 × 5% = 14.4
	assert.Equal(t, "32", sess.Totals.DiscountAmount.String())
	assert.Equal(t, "14.4", sess.Totals.TaxAmount.String())
	assert.Equal(t, "302.4", sess.Totals.GrandTotal.String())
}

// ── Save ──────────────────────────────────────────────────────────────────────

func TestSavePersistsAndResets(t *testing.T) {
	svc, resolver, docs := newTestEditor(t)
	ctx := context.Background()

	sess := openTransfer(t, svc, resolver)
	sid := uuid.MustParse(sess.ID)
	userID := uuid.New()

	resp, err := svc.Save(ctx, sid, userID)
	require.NoError(t, err)

	require.Len(t, docs.appended, 1)
	doc := docs.appended[0]
	assert.Equal(t, resp.DocumentNumber, doc.DocumentNumber)
	assert.Equal(t, "stock_transfer", doc.Type)
	assert.Equal(t, userID, doc.CreatedByID)
	require.Len(t, doc.Lines, 1)
	assert.Equal(t, "320", doc.Subtotal.String())

	// The session survives the save but is back to its opening state.
	after, err := svc.Get(ctx, sid)
	require.NoError(t, err)
	require.Len(t, after.Lines, 1)
	assert.Nil(t, after.Lines[0].ProductID)
	assert.Equal(t, 0, after.Totals.LineCount)
}

func TestSaveRejectsEmptySessionWithoutPersisting(t *testing.T) {
	svc, _, docs := newTestEditor(t)
	ctx := context.Background()

	sess, err := svc.Open(ctx, dto.OpenSessionRequest{Type: "stock_transfer"})
	require.NoError(t, err)
	sid := uuid.MustParse(sess.ID)

	_, err = svc.Save(ctx, sid, uuid.New())

	var verr *docedit.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, docedit.ReasonNoValidLines, verr.Reason)
	assert.Empty(t, docs.appended)

	// A rejected save must not touch the session.
	_, err = svc.Get(ctx, sid)
	assert.NoError(t, err)
}

func TestSaveReportsMissingHeaderField(t *testing.T) {
	svc, resolver, docs := newTestEditor(t)
	ctx := context.Background()

	sess, err := svc.Open(ctx, dto.OpenSessionRequest{Type: "stock_transfer"})
	require.NoError(t, err)
	sid := uuid.MustParse(sess.ID)
	lineID := uuid.MustParse(sess.Lines[0].ID)

	productID := resolver.add("Flour 25kg", 30)
	_, err = svc.SelectProduct(ctx, sid, lineID, productID)
	require.NoError(t, err)
	_, err = svc.PatchLine(ctx, sid, lineID, dto.PatchLineRequest{Quantity: decPtr("2")})
	require.NoError(t, err)
	_, err = svc.PatchHeader(ctx, sid, dto.PatchHeaderRequest{SourceLocation: strPtr("Central Warehouse")})
	require.NoError(t, err)

	_, err = svc.Save(ctx, sid, uuid.New())

	var verr *docedit.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, docedit.ReasonMissingLocation, verr.Reason)
	assert.Equal(t, "destination_location", verr.Field)
	assert.Empty(t, docs.appended)
}

func TestSaveDropsPlaceholderLines(t *testing.T) {
	svc, resolver, docs := newTestEditor(t)
	ctx := context.Background()

	sess := openTransfer(t, svc, resolver)
	sid := uuid.MustParse(sess.ID)

	// Two extra placeholder rows the user never filled in.
	_, err := svc.AddLine(ctx, sid)
	require.NoError(t, err)
	_, err = svc.AddLine(ctx, sid)
	require.NoError(t, err)

	resp, err := svc.Save(ctx, sid, uuid.New())
	require.NoError(t, err)

	assert.Equal(t, 1, resp.LineCount)
	require.Len(t, docs.appended, 1)
	assert.Len(t, docs.appended[0].Lines, 1)
}

func TestConsecutiveSavesAdvanceSequence(t *testing.T) {
	svc, resolver, _ := newTestEditor(t)
	ctx := context.Background()

	first := openTransfer(t, svc, resolver)
	resp1, err := svc.Save(ctx, uuid.MustParse(first.ID), uuid.New())
	require.NoError(t, err)

	second := openTransfer(t, svc, resolver)
	resp2, err := svc.Save(ctx, uuid.MustParse(second.ID), uuid.New())
	require.NoError(t, err)

	assert.NotEqual(t, resp1.DocumentNumber, resp2.DocumentNumber)
}
