package llm

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// CallEvent records one round trip to the drafting engine.
type CallEvent struct {
	Task      TaskType
	Model     string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives an event after every model call, successful or not.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// eventCode names the classified failure for log lines and assertions.
// Classification happens before emission, so the codes mirror the package
// sentinels one to one.
func eventCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrRetryExhausted):
		return "RETRY_EXHAUSTED"
	default:
		return "UNKNOWN"
	}
}

// LogObserver writes one line per call to w, for PRODUCEOTRON_LLM_LOG_CALLS
// runs.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "[%s] draft_engine task=%s model=%s latency_ms=%d status=%s\n",
		time.Now().UTC().Format(time.RFC3339), event.Task, event.Model, event.LatencyMs, status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
