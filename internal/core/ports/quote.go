package ports

import (
	"context"

	"github.com/amaris/catalog-api/internal/core/domain"
)

type QuoteRepository interface {
	Create(ctx context.Context, quote *domain.Quote) error
	FindByID(ctx context.Context, id string) (*domain.Quote, error)
	// List returns all quotes, or only those with status when non-empty.
	List(ctx context.Context, status domain.QuoteStatus) ([]domain.Quote, error)
	// CountByStatus groups all quotes by workflow status.
	CountByStatus(ctx context.Context) (map[domain.QuoteStatus]int64, error)
	Update(ctx context.Context, quote *domain.Quote) error
	Delete(ctx context.Context, id string) error
}

// QuoteDeduper answers whether an identical public submission was already
// accepted recently, so form double-submits replay instead of inserting twice.
type QuoteDeduper interface {
	Seen(ctx context.Context, fingerprint string) (quoteID string, err error)
	Mark(ctx context.Context, fingerprint, quoteID string) error
}

// SubmitQuoteInput is the public quote-request form payload.
type SubmitQuoteInput struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	CompanyName   string
	ProductID     string
	Message       string
}

// SubmitQuoteResult reports the accepted quote. AlreadyExisted is true when
// the submission was an idempotent replay of a recent identical one.
type SubmitQuoteResult struct {
	Quote          *domain.Quote
	AlreadyExisted bool
}

// UpdateQuoteInput mutates workflow fields on an existing quote.
type UpdateQuoteInput struct {
	Status     domain.QuoteStatus
	AssignedTo string
}

// QuoteStats summarizes the quote pipeline for the staff dashboard. Every
// known status appears in ByStatus, zero-valued when no quote carries it.
type QuoteStats struct {
	Total    int64                        `json:"total"`
	ByStatus map[domain.QuoteStatus]int64 `json:"by_status"`
}

type QuoteService interface {
	Submit(ctx context.Context, input SubmitQuoteInput) (*SubmitQuoteResult, error)
	Get(ctx context.Context, id string) (*domain.Quote, error)
	List(ctx context.Context, status domain.QuoteStatus) ([]domain.Quote, error)
	Stats(ctx context.Context) (*QuoteStats, error)
	Update(ctx context.Context, id string, input UpdateQuoteInput) (*domain.Quote, error)
	Delete(ctx context.Context, id string) error
}
