package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/amaris/catalog-api/internal/api/metrics"
	"github.com/amaris/catalog-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes notification fan-out jobs to a fixed set of workers
// using consistent hashing on the quote id, so the fan-out for one quote is
// never processed twice concurrently.
type Dispatcher struct {
	workers []chan ports.QuoteNotificationInput
	service ports.NotificationService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.NotificationService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.QuoteNotificationInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.QuoteNotificationInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a fan-out job to the worker responsible for its quote id.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(input ports.QuoteNotificationInput) {
	idx := d.shardIndex(input.QuoteID)
	d.workers[idx] <- input
	metrics.FanoutQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps a quote id deterministically to a worker index.
func (d *Dispatcher) shardIndex(quoteID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(quoteID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.QuoteNotificationInput) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case input, ok := <-ch:
			if !ok {
				return
			}
			start := time.Now()
			if err := d.service.FanOutQuote(ctx, input); err != nil {
				d.log.Error().Err(err).
					Str("quote_id", input.QuoteID).
					Int("worker_id", id).
					Msg("notification fan-out failed")
				metrics.FanoutErrorsTotal.Inc()
			}
			metrics.FanoutDuration.Observe(time.Since(start).Seconds())
			metrics.FanoutQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))
		}
	}
}
