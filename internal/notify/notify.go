package notify

import (
	"context"
	"log"
	"sync"
	"time"
)

// Winner is the payload handed to the dispatcher when a guess wins.
type Winner struct {
	Email          string
	TreasureID     uint
	GuessID        uint
	Answer         string
	DistanceMeters int
}

// Sender delivers a single winner notice.
type Sender interface {
	Send(ctx context.Context, w Winner) error
}

// Dispatcher queues winner notices and delivers them from a single worker
// goroutine. Delivery is best effort: the submitting request has already
// completed by the time Send runs, and a failure is only logged.
type Dispatcher struct {
	sender  Sender
	queue   chan Winner
	done    chan struct{}
	once    sync.Once
	mu      sync.Mutex
	closed  bool
	timeout time.Duration
}

func NewDispatcher(sender Sender, buffer int) *Dispatcher {
	if buffer < 1 {
		buffer = 1
	}
	d := &Dispatcher{
		sender:  sender,
		queue:   make(chan Winner, buffer),
		done:    make(chan struct{}),
		timeout: 30 * time.Second,
	}
	go d.run()
	return d
}

// Dispatch enqueues a notice without blocking. A full or closed queue drops
// the notice with a log line rather than stalling the request path.
func (d *Dispatcher) Dispatch(w Winner) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		log.Printf("notify dispatcher closed, dropping notice email=%s treasure_id=%d", w.Email, w.TreasureID)
		return
	}
	select {
	case d.queue <- w:
	default:
		log.Printf("notify queue full, dropping notice email=%s treasure_id=%d", w.Email, w.TreasureID)
	}
}

// Close drains the queue and stops the worker. Dispatch calls racing a
// shutdown drop their notices instead of panicking.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		d.mu.Lock()
		d.closed = true
		d.mu.Unlock()
		close(d.queue)
		<-d.done
	})
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for w := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		if err := d.sender.Send(ctx, w); err != nil {
			log.Printf("winner notice failed email=%s treasure_id=%d: %v", w.Email, w.TreasureID, err)
		}
		cancel()
	}
}

// LogSender writes the notice to the process log. It is the default sender
// when SMTP is not configured.
type LogSender struct{}

func (LogSender) Send(_ context.Context, w Winner) error {
	log.Printf("winner notice email=%s treasure_id=%d distance=%dm", w.Email, w.TreasureID, w.DistanceMeters)
	return nil
}
