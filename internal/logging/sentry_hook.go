package logging

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

// SentryHook forwards logrus entries of the given levels to Sentry.
type SentryHook struct {
	levels       []logrus.Level
	hub          *sentry.Hub
	flushTimeout time.Duration
}

func NewSentryHook(levels []logrus.Level) *SentryHook {
	return &SentryHook{
		levels:       levels,
		hub:          sentry.CurrentHub(),
		flushTimeout: 2 * time.Second,
	}
}

func (h *SentryHook) Levels() []logrus.Level {
	return h.levels
}

func (h *SentryHook) Fire(entry *logrus.Entry) error {
	event := h.toEvent(entry)
	h.hub.CaptureEvent(event)

	// the process is about to die, don't lose the event
	if entry.Level == logrus.FatalLevel || entry.Level == logrus.PanicLevel {
		h.hub.Flush(h.flushTimeout)
	}

	return nil
}

func (h *SentryHook) toEvent(entry *logrus.Entry) *sentry.Event {
	event := sentry.NewEvent()
	event.Level = sentryLevel(entry.Level)
	event.Message = entry.Message
	event.Timestamp = entry.Time
	event.Logger = "logrus"

	extra := make(map[string]any, len(entry.Data))
	for k, v := range entry.Data {
		if err, ok := v.(error); ok && k == logrus.ErrorKey {
			event.Exception = append(event.Exception, sentry.Exception{
				Type:  errorType(err),
				Value: err.Error(),
			})
			continue
		}
		extra[k] = v
	}
	event.Extra = extra

	return event
}

func errorType(err error) string {
	return fmt.Sprintf("%T", err)
}

func sentryLevel(level logrus.Level) sentry.Level {
	switch level {
	case logrus.PanicLevel, logrus.FatalLevel:
		return sentry.LevelFatal
	case logrus.ErrorLevel:
		return sentry.LevelError
	case logrus.WarnLevel:
		return sentry.LevelWarning
	case logrus.InfoLevel:
		return sentry.LevelInfo
	default:
		return sentry.LevelDebug
	}
}
