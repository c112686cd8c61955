package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/havenbridge/homecare-api/internal/api/metrics"
	"github.com/havenbridge/homecare-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
	sendTimeout    = 30 * time.Second
)

// Dispatcher delivers notifications on a fixed set of workers, sharded by
// recipient so mails to the same address keep their order. Enqueueing is
// decoupled from delivery: the triggering request returns as soon as the
// store write succeeds, and a failed send is logged, never surfaced.
type Dispatcher struct {
	workers []chan ports.Notification
	sender  ports.MailSender
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers workers. If
// numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sender ports.MailSender, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.Notification, numWorkers),
		sender:  sender,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.Notification, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Notify implements ports.Notifier. Non-blocking up to channelBuffer
// capacity per worker.
func (d *Dispatcher) Notify(n ports.Notification) {
	idx := d.shardIndex(n.To)
	d.workers[idx] <- n
	metrics.NotificationQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps a recipient address deterministically to a worker index.
func (d *Dispatcher) shardIndex(recipient string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(recipient))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.Notification) {
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-ch:
			if !ok {
				return
			}
			d.deliver(ctx, id, n)
			metrics.NotificationQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, workerID int, n ports.Notification) {
	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	if err := d.sender.Send(sendCtx, n); err != nil {
		metrics.NotificationsSentTotal.WithLabelValues(string(n.Kind), "error").Inc()
		d.log.Error().Err(err).
			Str("to", n.To).
			Str("kind", string(n.Kind)).
			Int("worker_id", workerID).
			Msg("notification delivery failed")
		return
	}
	metrics.NotificationsSentTotal.WithLabelValues(string(n.Kind), "ok").Inc()
}
