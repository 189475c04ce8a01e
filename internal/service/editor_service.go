package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/talhasonu918-ctrl/CRM-Superadmin-sub002/internal/docedit"
	"github.com/talhasonu918-ctrl/CRM-Superadmin-sub002/internal/dto"
	"github.com/talhasonu918-ctrl/CRM-Superadmin-sub002/internal/model"
	"github.com/talhasonu918-ctrl/CRM-Superadmin-sub002/internal/repository"
	"github.com/talhasonu918-ctrl/CRM-Superadmin-sub002/internal/worker"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned for an unknown or discarded editor session.
var ErrSessionNotFound = errors.New("editor session not found")

// EditorService owns the open document editing sessions. Every mutation
// returns the full session state so the client renders the derived totals
// without a second round trip.
type EditorService interface {
	Open(ctx context.Context, req dto.OpenSessionRequest) (*dto.SessionResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.SessionResponse, error)
	AddLine(ctx context.Context, id uuid.UUID) (*dto.SessionResponse, error)
	RemoveLine(ctx context.Context, id, lineID uuid.UUID) (*dto.SessionResponse, error)
	PatchLine(ctx context.Context, id, lineID uuid.UUID, req dto.PatchLineRequest) (*dto.SessionResponse, error)
	SelectProduct(ctx context.Context, id, lineID, productID uuid.UUID) (*dto.SessionResponse, error)
	PatchHeader(ctx context.Context, id uuid.UUID, req dto.PatchHeaderRequest) (*dto.SessionResponse, error)
	Save(ctx context.Context, id, userID uuid.UUID) (*dto.SaveResponse, error)
	Discard(ctx context.Context, id uuid.UUID) error
}

// sessionEntry pairs a session with its own mutex so concurrent PATCHes on
// the same session serialize without blocking unrelated sessions.
type sessionEntry struct {
	mu   sync.Mutex
	sess *docedit.Session
}

type editorService struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*sessionEntry

	resolver   docedit.ProductResolver
	docs       repository.DocumentRepository
	dispatcher *worker.Dispatcher
}

func NewEditorService(resolver docedit.ProductResolver, docs repository.DocumentRepository, dispatcher *worker.Dispatcher) EditorService {
	return &editorService{
		sessions:   make(map[uuid.UUID]*sessionEntry),
		resolver:   resolver,
		docs:       docs,
		dispatcher: dispatcher,
	}
}

// ── Session lifecycle ─────────────────────────────────────────────────────────

func (s *editorService) Open(ctx context.Context, req dto.OpenSessionRequest) (*dto.SessionResponse, error) {
	t := docedit.DocType(req.Type)
	if !t.Valid() {
		return nil, fmt.Errorf("unknown document type %q", req.Type)
	}

	sess := docedit.NewSession(t, s.resolver)
	entry := &sessionEntry{sess: sess}

	s.mu.Lock()
	s.sessions[sess.ID] = entry
	s.mu.Unlock()

	return sessionToResponse(sess), nil
}

func (s *editorService) Get(ctx context.Context, id uuid.UUID) (*dto.SessionResponse, error) {
	entry, err := s.entry(id)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return sessionToResponse(entry.sess), nil
}

func (s *editorService) Discard(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

func (s *editorService) entry(id uuid.UUID) (*sessionEntry, error) {
	s.mu.RLock()
	entry, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return entry, nil
}

// ── Line mutations ────────────────────────────────────────────────────────────

func (s *editorService) AddLine(ctx context.Context, id uuid.UUID) (*dto.SessionResponse, error) {
	entry, err := s.entry(id)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	entry.sess.AddLine()
	return sessionToResponse(entry.sess), nil
}

func (s *editorService) RemoveLine(ctx context.Context, id, lineID uuid.UUID) (*dto.SessionResponse, error) {
	entry, err := s.entry(id)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	entry.sess.RemoveLine(lineID)
	return sessionToResponse(entry.sess), nil
}

// PatchLine applies whichever fields the request carries. Unknown line ids
// are a silent no-op, matching the rest of the editing surface: a stale
// client keystroke must never fail the whole session.
func (s *editorService) PatchLine(ctx context.Context, id, lineID uuid.UUID, req dto.PatchLineRequest) (*dto.SessionResponse, error) {
	entry, err := s.entry(id)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	sess := entry.sess
	if req.Quantity != nil {
		sess.SetQuantity(lineID, *req.Quantity)
	}
	if req.UnitPrice != nil {
		sess.SetUnitPrice(lineID, *req.UnitPrice)
	}
	if req.Unit != nil {
		sess.SetUnit(lineID, *req.Unit)
	}
	return sessionToResponse(sess), nil
}

func (s *editorService) SelectProduct(ctx context.Context, id, lineID, productID uuid.UUID) (*dto.SessionResponse, error) {
	entry, err := s.entry(id)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	entry.sess.SelectProduct(ctx, lineID, productID)
	return sessionToResponse(entry.sess), nil
}

// ── Header mutations ──────────────────────────────────────────────────────────

func (s *editorService) PatchHeader(ctx context.Context, id uuid.UUID, req dto.PatchHeaderRequest) (*dto.SessionResponse, error) {
	entry, err := s.entry(id)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	sess := entry.sess
	if req.Date != nil {
		d, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date: %w", err)
		}
		sess.SetDate(d)
	}
	if req.SourceLocation != nil {
		sess.SetSourceLocation(*req.SourceLocation)
	}
	if req.DestinationLocation != nil {
		sess.SetDestination(*req.DestinationLocation)
	}
	if req.Location != nil {
		sess.SetLocation(*req.Location)
	}
	if req.SupplierID != nil {
		if *req.SupplierID == "" {
			sess.SetSupplier(nil)
		} else {
			sid, err := uuid.Parse(*req.SupplierID)
			if err != nil {
				return nil, fmt.Errorf("invalid supplier_id: %w", err)
			}
			sess.SetSupplier(&sid)
		}
	}
	if req.DiscountPercent != nil {
		sess.SetDiscountPercent(*req.DiscountPercent)
	}
	if req.TaxPercent != nil {
		sess.SetTaxPercent(*req.TaxPercent)
	}
	if req.FreightAmount != nil {
		sess.SetFreight(*req.FreightAmount)
	}
	if req.Notes != nil {
		sess.SetNotes(*req.Notes)
	}
	return sessionToResponse(sess), nil
}

// ── Save ──────────────────────────────────────────────────────────────────────

// Save validates the session, freezes it into a document, persists it, and
// only then resets the session to its opening state. Validation failures
// surface as *docedit.ValidationError and leave the session untouched, so
// the user can fix the problem and save again.
func (s *editorService) Save(ctx context.Context, id, userID uuid.UUID) (*dto.SaveResponse, error) {
	entry, err := s.entry(id)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	sess := entry.sess
	if err := sess.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	seq, err := s.docs.NextSequence(ctx, string(sess.Type), now.Year())
	if err != nil {
		return nil, fmt.Errorf("allocating document sequence: %w", err)
	}

	snap, err := sess.Assemble(seq, now)
	if err != nil {
		return nil, err
	}

	doc := snapshotToModel(snap, userID)
	if err := s.docs.Append(ctx, doc); err != nil {
		return nil, fmt.Errorf("persisting document: %w", err)
	}

	// The document is durable — only now does the editor forget it.
	sess.Reset()

	// Voucher rendering is async and best-effort; the save already succeeded.
	if s.dispatcher != nil {
		_ = s.dispatcher.EnqueueVoucher(ctx, worker.VoucherJobPayload{DocumentID: doc.ID.String()})
	}

	return &dto.SaveResponse{
		ID:             doc.ID.String(),
		DocumentNumber: doc.DocumentNumber,
		Totals:         totalsToResponse(snap.Totals),
		LineCount:      len(snap.Lines),
	}, nil
}

// ── Mappers ───────────────────────────────────────────────────────────────────

func snapshotToModel(snap *docedit.DocumentSnapshot, userID uuid.UUID) *model.StockDocument {
	doc := &model.StockDocument{
		ID:              uuid.New(),
		DocumentNumber:  snap.DocumentNumber,
		Type:            string(snap.Type),
		Date:            snap.Date,
		SupplierID:      snap.SupplierID,
		DiscountPercent: snap.DiscountPercent,
		TaxPercent:      snap.TaxPercent,
		FreightAmount:   snap.FreightAmount,
		Subtotal:        snap.Totals.Subtotal,
		DiscountAmount:  snap.Totals.DiscountAmount,
		TaxAmount:       snap.Totals.TaxAmount,
		GrandTotal:      snap.Totals.GrandTotal,
		TotalQuantity:   snap.Totals.TotalQuantity,
		CreatedByID:     userID,
	}
	if snap.SourceLocation != "" {
		doc.SourceLocation = &snap.SourceLocation
	}
	if snap.DestinationLocation != "" {
		doc.DestinationLocation = &snap.DestinationLocation
	}
	if snap.Location != "" {
		doc.Location = &snap.Location
	}
	if snap.Notes != "" {
		doc.Notes = &snap.Notes
	}
	for _, l := range snap.Lines {
		doc.Lines = append(doc.Lines, model.StockDocumentLine{
			DocumentID:       doc.ID,
			ProductID:        *l.ProductID,
			DisplayName:      l.DisplayName,
			Unit:             l.Unit,
			ConversionFactor: l.ConversionFactor,
			Quantity:         l.Quantity,
			UnitPrice:        l.UnitPrice,
			LineTotal:        l.LineTotal,
		})
	}
	return doc
}

func sessionToResponse(sess *docedit.Session) *dto.SessionResponse {
	lines := sess.Lines()
	lineResps := make([]dto.LineResponse, 0, len(lines))
	for _, l := range lines {
		var pid *string
		if l.ProductID != nil {
			v := l.ProductID.String()
			pid = &v
		}
		opts := make([]dto.ProductUnitResponse, 0, len(l.UnitOptions))
		for _, o := range l.UnitOptions {
			opts = append(opts, dto.ProductUnitResponse{
				Unit:             o.Unit,
				ConversionFactor: o.ConversionFactor,
				IsDefault:        o.IsDefault,
			})
		}
		lineResps = append(lineResps, dto.LineResponse{
			ID:               l.ID.String(),
			ProductID:        pid,
			DisplayName:      l.DisplayName,
			Unit:             l.Unit,
			ConversionFactor: l.ConversionFactor,
			UnitOptions:      opts,
			Quantity:         l.Quantity,
			UnitPrice:        l.UnitPrice,
			LineTotal:        l.LineTotal,
		})
	}

	var supplierID *string
	if sess.Header.SupplierID != nil {
		v := sess.Header.SupplierID.String()
		supplierID = &v
	}

	return &dto.SessionResponse{
		ID:   sess.ID.String(),
		Type: string(sess.Type),
		Header: dto.HeaderResponse{
			Date:                sess.Header.Date.Format("2006-01-02"),
			SourceLocation:      sess.Header.SourceLocation,
			DestinationLocation: sess.Header.DestinationLocation,
			Location:            sess.Header.Location,
			SupplierID:          supplierID,
			DiscountPercent:     sess.Header.DiscountPercent,
			TaxPercent:          sess.Header.TaxPercent,
			FreightAmount:       sess.Header.FreightAmount,
			Notes:               sess.Header.Notes,
		},
		Lines:  lineResps,
		Totals: totalsToResponse(sess.Totals()),
	}
}

func totalsToResponse(t docedit.Totals) dto.TotalsResponse {
	return dto.TotalsResponse{
		Subtotal:       t.Subtotal,
		DiscountAmount: t.DiscountAmount,
		TaxableAmount:  t.TaxableAmount,
		TaxAmount:      t.TaxAmount,
		GrandTotal:     t.GrandTotal,
		TotalQuantity:  t.TotalQuantity,
		LineCount:      t.LineCount,
	}
}
