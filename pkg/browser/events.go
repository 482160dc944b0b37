package browser

import (
	"go.uber.org/zap"
)

// Reporter receives lifecycle and failure events from the session layer.
// Reporting sinks own persistence and formatting; the framework only emits.
type Reporter interface {
	SessionStarted(id string, kind Kind)
	SessionEnded(id string)
	ActionFailed(sessionID, locator, reason string)
}

// NewZapReporter returns a Reporter that writes structured records to log.
func NewZapReporter(log *zap.Logger) Reporter {
	return &zapReporter{log: log}
}

type zapReporter struct {
	log *zap.Logger
}

func (r *zapReporter) SessionStarted(id string, kind Kind) {
	r.log.Info("session started",
		zap.String("session_id", id),
		zap.String("backend", string(kind)))
}

func (r *zapReporter) SessionEnded(id string) {
	r.log.Info("session ended", zap.String("session_id", id))
}

func (r *zapReporter) ActionFailed(sessionID, locator, reason string) {
	r.log.Warn("action failed",
		zap.String("session_id", sessionID),
		zap.String("locator", locator),
		zap.String("reason", reason))
}

type nopReporter struct{}

func (nopReporter) SessionStarted(string, Kind)         {}
func (nopReporter) SessionEnded(string)                 {}
func (nopReporter) ActionFailed(string, string, string) {}
