package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// dedupTTL is the window inside which an identical quote submission is
// treated as a replay of the original rather than a new request.
const dedupTTL = 10 * time.Minute

// QuoteDeduper provides idempotency checks for public quote submissions.
// Key format: quote:dedup:<fingerprint>, value: the accepted quote id.
type QuoteDeduper struct {
	client *redis.Client
}

// NewQuoteDeduper creates a QuoteDeduper wrapping the given Redis client.
func NewQuoteDeduper(client *redis.Client) *QuoteDeduper {
	return &QuoteDeduper{client: client}
}

// Seen returns the id of the quote previously accepted for this fingerprint,
// or "" when the submission is new.
func (d *QuoteDeduper) Seen(ctx context.Context, fingerprint string) (string, error) {
	quoteID, err := d.client.Get(ctx, d.key(fingerprint)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("dedup check: %w", err)
	}
	return quoteID, nil
}

// Mark records the accepted quote for this fingerprint (expires after dedupTTL).
func (d *QuoteDeduper) Mark(ctx context.Context, fingerprint, quoteID string) error {
	return d.client.Set(ctx, d.key(fingerprint), quoteID, dedupTTL).Err()
}

func (d *QuoteDeduper) key(fingerprint string) string {
	return "quote:dedup:" + fingerprint
}
