package schedule

import (
	"sync"
	"time"
)

// DefaultWatchInterval is how often a StatusWatcher re-evaluates.
const DefaultWatchInterval = time.Minute

// StatusWatcher re-evaluates the open/closed status once per interval
// and immediately whenever the schedule changes. The subscriber is only
// notified when the computed status actually differs from the previous
// one, so downstream consumers never see redundant updates.
//
// The watcher owns its goroutine: Start launches it, Stop tears it
// down. Callers must Stop a started watcher when the owning view goes
// away.
type StatusWatcher struct {
	// evalMu serializes whole evaluations so subscribers see
	// notifications in the order the statuses were computed, even when
	// SetWeek races the ticker.
	evalMu sync.Mutex

	mu       sync.Mutex
	week     Week
	interval time.Duration
	now      func() time.Time
	onChange func(OpenStatus)
	metrics  *Metrics

	last    *OpenStatus
	running bool
	stopCh  chan struct{}
}

// NewStatusWatcher creates a watcher over the given week. onChange may
// be nil when only Current is of interest.
func NewStatusWatcher(week Week, onChange func(OpenStatus)) *StatusWatcher {
	return &StatusWatcher{
		week:     week,
		interval: DefaultWatchInterval,
		now:      time.Now,
		onChange: onChange,
	}
}

// WithMetrics attaches Prometheus metrics to the watcher.
func (w *StatusWatcher) WithMetrics(m *Metrics) *StatusWatcher {
	w.metrics = m
	return w
}

// Start begins the evaluation loop. It evaluates once immediately and
// then once per interval until Stop is called. Calling Start on a
// running watcher is a no-op.
func (w *StatusWatcher) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.stopCh = make(chan struct{})
	stopCh := w.stopCh
	w.mu.Unlock()

	w.evaluate()

	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				w.evaluate()
			case <-stopCh:
				return
			}
		}
	}()
}

// Stop cancels the evaluation loop. Safe to call more than once and on
// a watcher that was never started.
func (w *StatusWatcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return
	}
	w.running = false
	close(w.stopCh)
}

// SetWeek swaps the schedule and re-evaluates immediately.
func (w *StatusWatcher) SetWeek(week Week) {
	w.mu.Lock()
	w.week = week
	w.mu.Unlock()
	w.evaluate()
}

// Current returns the most recently computed status, evaluating on the
// spot if the watcher has not run yet.
func (w *StatusWatcher) Current() OpenStatus {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.last == nil {
		st := Evaluate(w.week, w.now())
		w.last = &st
	}
	return *w.last
}

func (w *StatusWatcher) evaluate() {
	w.evalMu.Lock()
	defer w.evalMu.Unlock()

	w.mu.Lock()
	st := Evaluate(w.week, w.now())
	changed := w.last == nil || *w.last != st
	w.last = &st
	onChange := w.onChange
	metrics := w.metrics
	w.mu.Unlock()

	if metrics != nil {
		metrics.EvaluationsTotal.Inc()
		if st.IsOpen {
			metrics.BusinessOpen.Set(1)
		} else {
			metrics.BusinessOpen.Set(0)
		}
	}
	if changed && onChange != nil {
		onChange(st)
	}
}
