package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/amaris/catalog-api/internal/core/domain"
	"github.com/amaris/catalog-api/internal/core/ports"
)

// QuoteService handles public quote submission and the staff workflow.
type QuoteService struct {
	quotes     ports.QuoteRepository
	products   ports.ProductRepository
	users      ports.UserRepository
	dedup      ports.QuoteDeduper
	dispatcher ports.NotificationDispatcher
	log        zerolog.Logger
}

func NewQuoteService(
	quotes ports.QuoteRepository,
	products ports.ProductRepository,
	users ports.UserRepository,
	dedup ports.QuoteDeduper,
	dispatcher ports.NotificationDispatcher,
	log zerolog.Logger,
) *QuoteService {
	return &QuoteService{
		quotes:     quotes,
		products:   products,
		users:      users,
		dedup:      dedup,
		dispatcher: dispatcher,
		log:        log,
	}
}

// Submit accepts a quote request from the public catalog. An identical
// submission inside the dedup window replays the original result instead of
// inserting a second quote, and staff notifications fan out asynchronously.
func (s *QuoteService) Submit(ctx context.Context, input ports.SubmitQuoteInput) (*ports.SubmitQuoteResult, error) {
	fingerprint := submissionFingerprint(input)

	if existingID, err := s.dedup.Seen(ctx, fingerprint); err != nil {
		s.log.Warn().Err(err).Msg("quote dedup check failed, accepting anyway")
	} else if existingID != "" {
		if existing, err := s.quotes.FindByID(ctx, existingID); err == nil {
			s.log.Info().Str("quote_id", existingID).Msg("idempotent quote replay")
			return &ports.SubmitQuoteResult{Quote: existing, AlreadyExisted: true}, nil
		}
	}

	productName := ""
	if input.ProductID != "" {
		product, err := s.products.FindByID(ctx, input.ProductID)
		if err != nil {
			if !errors.Is(err, domain.ErrProductNotFound) {
				return nil, err
			}
		} else {
			productName = product.Name
		}
	}

	now := time.Now().UTC()
	quote := &domain.Quote{
		ID:            uuid.NewString(),
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: input.CustomerPhone,
		CompanyName:   input.CompanyName,
		ProductID:     input.ProductID,
		ProductName:   productName,
		Message:       input.Message,
		Status:        domain.QuoteStatusNew,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.quotes.Create(ctx, quote); err != nil {
		return nil, err
	}

	if err := s.dedup.Mark(ctx, fingerprint, quote.ID); err != nil {
		s.log.Warn().Err(err).Str("quote_id", quote.ID).Msg("failed to set quote dedup key")
	}

	s.dispatcher.Enqueue(ports.QuoteNotificationInput{
		QuoteID:      quote.ID,
		CustomerName: quote.CustomerName,
	})

	s.log.Info().Str("quote_id", quote.ID).Str("customer_email", quote.CustomerEmail).Msg("quote submitted")
	return &ports.SubmitQuoteResult{Quote: quote}, nil
}

func (s *QuoteService) Get(ctx context.Context, id string) (*domain.Quote, error) {
	quote, err := s.quotes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.resolveAssignee(ctx, quote)
	return quote, nil
}

func (s *QuoteService) List(ctx context.Context, status domain.QuoteStatus) ([]domain.Quote, error) {
	if status != "" && !status.Valid() {
		return nil, domain.ErrInvalidQuoteStatus
	}
	quotes, err := s.quotes.List(ctx, status)
	if err != nil {
		return nil, err
	}
	for i := range quotes {
		s.resolveAssignee(ctx, &quotes[i])
	}
	return quotes, nil
}

// Stats reports per-status quote counts for the staff dashboard. Statuses
// with no quotes are reported explicitly as zero.
func (s *QuoteService) Stats(ctx context.Context) (*ports.QuoteStats, error) {
	counts, err := s.quotes.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	stats := &ports.QuoteStats{ByStatus: make(map[domain.QuoteStatus]int64, 3)}
	for _, status := range []domain.QuoteStatus{domain.QuoteStatusNew, domain.QuoteStatusContacted, domain.QuoteStatusClosed} {
		stats.ByStatus[status] = counts[status]
		stats.Total += counts[status]
	}
	return stats, nil
}

func (s *QuoteService) Update(ctx context.Context, id string, input ports.UpdateQuoteInput) (*domain.Quote, error) {
	quote, err := s.quotes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Status != "" {
		if !input.Status.Valid() {
			return nil, domain.ErrInvalidQuoteStatus
		}
		quote.Status = input.Status
	}
	if input.AssignedTo != "" {
		if _, err := s.users.FindByID(ctx, input.AssignedTo); err != nil {
			return nil, err
		}
		quote.AssignedTo = input.AssignedTo
	}
	quote.UpdatedAt = time.Now().UTC()

	if err := s.quotes.Update(ctx, quote); err != nil {
		return nil, err
	}
	s.resolveAssignee(ctx, quote)
	return quote, nil
}

func (s *QuoteService) Delete(ctx context.Context, id string) error {
	return s.quotes.Delete(ctx, id)
}

// resolveAssignee fills the display name of the assigned staff user.
// A deleted assignee leaves the name empty.
func (s *QuoteService) resolveAssignee(ctx context.Context, quote *domain.Quote) {
	if quote.AssignedTo == "" {
		return
	}
	user, err := s.users.FindByID(ctx, quote.AssignedTo)
	if err != nil {
		return
	}
	quote.AssignedToName = user.FirstName + " " + user.LastName
}

// submissionFingerprint hashes the fields that identify a public submission.
func submissionFingerprint(input ports.SubmitQuoteInput) string {
	h := sha256.New()
	h.Write([]byte(input.CustomerEmail))
	h.Write([]byte{0})
	h.Write([]byte(input.ProductID))
	h.Write([]byte{0})
	h.Write([]byte(input.Message))
	return hex.EncodeToString(h.Sum(nil))
}
