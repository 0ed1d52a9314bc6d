package sink

import (
	"encoding/json"
	"io"
	"sync"

	"github.com/rs/zerolog"
)

// Sink accepts rendered result documents. Write must be safe for
// concurrent use; dispatcher workers share a single Sink.
type Sink interface {
	Write(doc Document) error
	Close() error
}

// LogSink writes each document as a structured log event, useful for
// local development and as a secondary trace alongside a durable Sink.
type LogSink struct {
	log zerolog.Logger
}

// NewLogSink wraps log as a Sink.
func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log.With().Str("component", "sink").Logger()}
}

func (s *LogSink) Write(doc Document) error {
	event := s.log.Info().Str("shipment_id", doc.ID).Str("waybill", doc.Waybill).Str("pdd", doc.PDD)
	if doc.Error != "" {
		event = event.Str("error", doc.Error)
	}
	event.Msg("result document")
	return nil
}

func (s *LogSink) Close() error { return nil }

// JSONLinesSink writes one JSON-encoded Document per line to an
// underlying io.Writer, serialized by a mutex since multiple dispatcher
// workers may write concurrently.
type JSONLinesSink struct {
	mu  sync.Mutex
	enc *json.Encoder
	wc  io.WriteCloser
}

// NewJSONLinesSink wraps wc as a Sink. wc is closed by Close.
func NewJSONLinesSink(wc io.WriteCloser) *JSONLinesSink {
	return &JSONLinesSink{enc: json.NewEncoder(wc), wc: wc}
}

func (s *JSONLinesSink) Write(doc Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enc.Encode(doc)
}

func (s *JSONLinesSink) Close() error {
	return s.wc.Close()
}

// Multi fans a single Write out to every underlying Sink, stopping at and
// returning the first error.
type Multi struct {
	sinks []Sink
}

// NewMulti combines sinks into one Sink.
func NewMulti(sinks ...Sink) *Multi {
	return &Multi{sinks: sinks}
}

func (m *Multi) Write(doc Document) error {
	for _, s := range m.sinks {
		if err := s.Write(doc); err != nil {
			return err
		}
	}
	return nil
}

func (m *Multi) Close() error {
	var first error
	for _, s := range m.sinks {
		if err := s.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
