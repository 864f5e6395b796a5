package Heat2D

import (
	"fmt"
	"time"
)

type timeSpan struct {
	start   time.Time
	elapsed time.Duration
	running bool
}

// Timer accumulates wall-clock spans under named labels and carries the
// simulated-time counter, advanced by TimeStep once per iteration.
type Timer struct {
	TimeStep float64

	currentTime float64
	labels      map[string]*timeSpan
	order       []string
}

func NewTimer(timeStep float64) *Timer {
	return &Timer{
		TimeStep: timeStep,
		labels:   make(map[string]*timeSpan),
	}
}

func (t *Timer) Start(label string) {
	s, ok := t.labels[label]
	if !ok {
		s = &timeSpan{}
		t.labels[label] = s
		t.order = append(t.order, label)
	}
	s.start = time.Now()
	s.running = true
}

func (t *Timer) Stop(label string) {
	if s, ok := t.labels[label]; ok && s.running {
		s.elapsed += time.Since(s.start)
		s.running = false
	}
}

func (t *Timer) Elapsed(label string) time.Duration {
	if s, ok := t.labels[label]; ok {
		return s.elapsed
	}
	return 0
}

func (t *Timer) IncrementTime()       { t.currentTime += t.TimeStep }
func (t *Timer) CurrentTime() float64 { return t.currentTime }

func (t *Timer) PrintSummary() {
	var total time.Duration
	for _, label := range t.order {
		elapsed := t.labels[label].elapsed
		total += elapsed
		fmt.Printf("\t%-12s:%12.5fs\n", label, elapsed.Seconds())
	}
	fmt.Printf("\t%-12s:%12.5fs\n", "total", total.Seconds())
}
