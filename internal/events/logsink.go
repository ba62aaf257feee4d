package events

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogSink writes events as JSON lines to a rotating file. It is pure
// observability output for the running session; nothing ever reads the file
// back.
type LogSink struct {
	mu      sync.Mutex
	writer  io.WriteCloser
	encoder *json.Encoder
	done    chan struct{}
}

// RotationConfig bounds the session log on disk.
type RotationConfig struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// NewLogSink creates a sink writing to path with lumberjack rotation.
func NewLogSink(path string, rotation RotationConfig) *LogSink {
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    rotation.MaxSizeMB,
		MaxBackups: rotation.MaxBackups,
		MaxAge:     rotation.MaxAgeDays,
		Compress:   rotation.Compress,
	}
	return newLogSink(w)
}

// NewLogSinkWriter creates a sink writing to an arbitrary writer. Used by
// tests to capture output.
func NewLogSinkWriter(w io.WriteCloser) *LogSink {
	return newLogSink(w)
}

func newLogSink(w io.WriteCloser) *LogSink {
	return &LogSink{
		writer:  w,
		encoder: json.NewEncoder(w),
		done:    make(chan struct{}),
	}
}

// Start begins draining the subscription. It returns immediately; the sink
// runs until the context is canceled or the channel is closed.
func (s *LogSink) Start(ctx context.Context, events <-chan Event) {
	go s.run(ctx, events)
}

func (s *LogSink) run(ctx context.Context, events <-chan Event) {
	defer close(s.done)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			s.write(event)
		}
	}
}

func (s *LogSink) write(event Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.encoder == nil {
		return
	}
	if err := s.encoder.Encode(event); err != nil {
		slog.Warn("log sink: failed to write event", "error", err, "event_type", event.Type())
	}
}

// Stop waits for the drain goroutine to finish and closes the writer.
func (s *LogSink) Stop() error {
	<-s.done

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.writer != nil {
		err := s.writer.Close()
		s.writer = nil
		s.encoder = nil
		return err
	}
	return nil
}
