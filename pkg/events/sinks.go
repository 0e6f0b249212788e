package events

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"time"

	opensearch "github.com/opensearch-project/opensearch-go/v2"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"
)

// LogSink writes every event to the standard logger using a bracketed
// tag plus an emoji keyed off severity, for quick visual scanning.
type LogSink struct{}

// NewLogSink returns a Sink that logs each event.
func NewLogSink() *LogSink { return &LogSink{} }

// Publish implements Sink.
func (s *LogSink) Publish(e Event) {
	switch e.Type {
	case TypeDocumentError:
		log.Printf("[EVENTS] ❌ %s case=%s file=%s err=%s", e.Type, e.CaseID, e.FileName, e.Error)
	case TypeCaseComplete:
		log.Printf("[EVENTS] ✅ %s case=%s %s", e.Type, e.CaseID, e.Message)
	default:
		log.Printf("[EVENTS] 📣 %s case=%s file=%s", e.Type, e.CaseID, e.FileName)
	}
}

// ChannelSink buffers events onto a fixed-size channel and drops the
// oldest buffered event on overflow rather than ever block the
// consolidator.
type ChannelSink struct {
	events chan Event
}

// NewChannelSink returns a ChannelSink with the given buffer capacity.
func NewChannelSink(capacity int) *ChannelSink {
	if capacity <= 0 {
		capacity = 1
	}
	return &ChannelSink{events: make(chan Event, capacity)}
}

// Publish implements Sink. Non-blocking: if the buffer is full, the
// oldest queued event is discarded to make room.
func (s *ChannelSink) Publish(e Event) {
	select {
	case s.events <- e:
	default:
		select {
		case <-s.events:
		default:
		}
		select {
		case s.events <- e:
		default:
		}
	}
}

// Events returns the receive side of the buffered channel for a consumer
// to drain.
func (s *ChannelSink) Events() <-chan Event { return s.events }

// MultiSink fans one Publish call out to every wrapped sink, so a
// caller can log events and index them without choosing one or the
// other.
type MultiSink struct {
	sinks []Sink
}

// NewMultiSink returns a Sink that publishes to every sink in sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

// Publish implements Sink.
func (s *MultiSink) Publish(e Event) {
	for _, sink := range s.sinks {
		sink.Publish(e)
	}
}

// OpenSearchSink indexes case_complete events into an OpenSearch index
// so finished cases become searchable without a separate indexing pass.
// It only indexes case_complete: per-document churn is not search-relevant.
type OpenSearchSink struct {
	client *opensearch.Client
	index  string
}

// NewOpenSearchSink builds a sink against the given OpenSearch addresses
// and index name.
func NewOpenSearchSink(addresses []string, username, password, index string) (*OpenSearchSink, error) {
	client, err := opensearch.NewClient(opensearch.Config{
		Addresses: addresses,
		Username:  username,
		Password:  password,
	})
	if err != nil {
		return nil, err
	}
	return &OpenSearchSink{client: client, index: index}, nil
}

// Publish implements Sink. Only case_complete events are indexed; the
// HTTP round trip runs on its own goroutine, so Publish returns without
// waiting for it. Indexing failures are logged and swallowed.
func (s *OpenSearchSink) Publish(e Event) {
	if e.Type != TypeCaseComplete {
		return
	}
	go s.indexEvent(e)
}

func (s *OpenSearchSink) indexEvent(e Event) {
	body, err := json.Marshal(e)
	if err != nil {
		log.Printf("[EVENTS] ❌ opensearch sink marshal error: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req := opensearchapi.IndexRequest{
		Index:      s.index,
		DocumentID: e.ID,
		Body:       bytes.NewReader(body),
	}

	res, err := req.Do(ctx, s.client)
	if err != nil {
		log.Printf("[EVENTS] ❌ opensearch sink publish error: %v", err)
		return
	}
	defer res.Body.Close()
	if res.IsError() {
		log.Printf("[EVENTS] ❌ opensearch sink publish error: status=%s", res.Status())
	}
}
