package notion

import (
	"fmt"
	"io"
	"time"
)

// CallEvent records metadata about a single remote call to the store.
type CallEvent struct {
	RequestID string
	Op        string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about remote calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes call events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "[%s] notion_call id=%s op=%s latency_ms=%d status=%s\n",
		ts, event.RequestID, event.Op, event.LatencyMs, status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
