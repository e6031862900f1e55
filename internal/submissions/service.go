package submissions

import (
	"context"
	"strings"
	"time"

	"cardrequest-backend/internal/queue"
	"cardrequest-backend/internal/shared/metrics"
	"cardrequest-backend/internal/shared/telemetry"
	"cardrequest-backend/internal/validation"
)

// DefaultGeneratedBy fills meta.gerado_por when the client leaves it empty.
const DefaultGeneratedBy = "cardrequest-backend"

// Service validates, stores and renders submissions.
type Service struct {
	Repo    Repo
	Queue   queue.Client
	Now     func() time.Time
	Version string
}

// Result is what a successful Submit hands back to the caller.
type Result struct {
	Submission      Submission
	Payload         Payload
	Protocol        string
	Receipt         []byte
	ReceiptFileName string
	Eligibility     *Eligibility
}

// Validate reports field violations for p without touching storage.
func (s *Service) Validate(p Payload) validation.Violations {
	return Validate(p)
}

// Submit validates p, stores it and derives its protocol from the same timestamp as criado_em.
// A *ValidationError is returned when p is incomplete; nothing is stored in that case.
func (s *Service) Submit(ctx context.Context, p Payload, requestID string) (Result, error) {
	if s.Repo == nil {
		return Result{}, ErrNotConfigured
	}
	if v := Validate(p); !v.Empty() {
		metrics.IncSubmissionRejected()
		return Result{}, &ValidationError{Violations: v}
	}

	now := s.now()
	p.ProtocoloPreview = nil
	p.Status = StatusReceived
	if strings.TrimSpace(p.Consentimento.AceitoEm) == "" {
		p.Consentimento.AceitoEm = now.Format(TimestampLayout)
	}
	if strings.TrimSpace(p.Meta.GeradoPor) == "" {
		p.Meta.GeradoPor = DefaultGeneratedBy
	}
	if strings.TrimSpace(p.Meta.Versao) == "" {
		p.Meta.Versao = s.Version
	}

	sub, err := NewSubmission(p, now)
	if err != nil {
		return Result{}, err
	}

	start := time.Now()
	id, err := s.Repo.Create(ctx, sub)
	metrics.ObserveSave(start)
	if err != nil {
		telemetry.Error("submission.save_failed", map[string]any{
			"request_id": requestID,
			"error":      err,
		})
		return Result{}, err
	}
	metrics.IncSubmissionSaved()

	sub.ID = id
	protocol := Protocol(now, id)
	p.ProtocoloPreview = &protocol

	fileName, body := RenderReceipt(sub)
	result := Result{
		Submission:      sub,
		Payload:         p,
		Protocol:        protocol,
		Receipt:         body,
		ReceiptFileName: fileName,
	}
	if e, ok := AssessEligibility(p.Solicitacao.Limite.Value, p.Empresa.FaturamentoMensal.Value); ok {
		result.Eligibility = &e
	}

	telemetry.Info("submission.saved", map[string]any{
		"request_id":    requestID,
		"submission_id": id,
		"protocol":      protocol,
	})
	s.notify(ctx, sub, protocol, requestID)
	return result, nil
}

// List returns stored submissions newest first.
func (s *Service) List(ctx context.Context) ([]Summary, error) {
	if s.Repo == nil {
		return nil, ErrNotConfigured
	}
	return s.Repo.List(ctx)
}

// Receipt re-renders the receipt of a stored submission.
func (s *Service) Receipt(ctx context.Context, id int64) (string, []byte, error) {
	if s.Repo == nil {
		return "", nil, ErrNotConfigured
	}
	sub, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return "", nil, err
	}
	fileName, body := RenderReceipt(sub)
	return fileName, body, nil
}

// notify publishes submission.received. Failures are logged and never fail the submission.
func (s *Service) notify(ctx context.Context, sub Submission, protocol, requestID string) {
	if s.Queue == nil {
		return
	}
	msg := queue.Message{
		Event:        queue.EventSubmissionReceived,
		SubmissionID: sub.ID,
		Protocol:     protocol,
		RequestID:    requestID,
		EnqueuedAt:   s.now().UTC().Format(time.RFC3339),
		Version:      queue.MessageVersion,
	}
	if err := s.Queue.Send(ctx, msg); err != nil {
		telemetry.Error("submission.notify_failed", map[string]any{
			"request_id":    requestID,
			"submission_id": sub.ID,
			"error":         err,
		})
	}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
