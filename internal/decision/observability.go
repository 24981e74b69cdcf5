package decision

import (
	"log"
	"sync"
	"sync/atomic"
	"time"
)

// InferenceObserver receives one event per answered question: which question
// was answered, how the fixed point converged and how long it took.
type InferenceObserver interface {
	ObserveInference(questionID string, diag Diagnostics, duration time.Duration)
}

type InferenceLogger struct {
	logger *log.Logger
}

func NewInferenceLogger(logger *log.Logger) *InferenceLogger {
	return &InferenceLogger{logger: logger}
}

func (l *InferenceLogger) ObserveInference(questionID string, diag Diagnostics, duration time.Duration) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.Printf("inference question=%s passes=%d capped=%t duration_ms=%.3f",
		questionID, diag.Passes, diag.Capped, float64(duration.Microseconds())/1000.0)
}

// AsyncInferenceObserver decouples observation from the answer hot path.
// Events that do not fit the buffer are dropped and counted.
type AsyncInferenceObserver struct {
	next    InferenceObserver
	events  chan inferenceEvent
	once    sync.Once
	mu      sync.RWMutex
	closed  bool
	wg      sync.WaitGroup
	dropped atomic.Uint64
}

type inferenceEvent struct {
	questionID string
	diag       Diagnostics
	duration   time.Duration
}

func NewAsyncInferenceObserver(next InferenceObserver, buffer int) *AsyncInferenceObserver {
	if buffer <= 0 {
		buffer = 1
	}

	o := &AsyncInferenceObserver{
		next:   next,
		events: make(chan inferenceEvent, buffer),
	}

	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		for ev := range o.events {
			if o.next == nil {
				continue
			}
			o.next.ObserveInference(ev.questionID, ev.diag, ev.duration)
		}
	}()

	return o
}

func (o *AsyncInferenceObserver) ObserveInference(questionID string, diag Diagnostics, duration time.Duration) {
	if o == nil {
		return
	}
	o.mu.RLock()
	if o.closed {
		o.mu.RUnlock()
		o.dropped.Add(1)
		return
	}
	select {
	case o.events <- inferenceEvent{questionID: questionID, diag: diag, duration: duration}:
	default:
		o.dropped.Add(1)
	}
	o.mu.RUnlock()
}

func (o *AsyncInferenceObserver) Dropped() uint64 {
	if o == nil {
		return 0
	}
	return o.dropped.Load()
}

func (o *AsyncInferenceObserver) Close() {
	if o == nil {
		return
	}
	o.once.Do(func() {
		o.mu.Lock()
		o.closed = true
		close(o.events)
		o.mu.Unlock()
		o.wg.Wait()
	})
}
