// Package events implements the event broadcaster: a thin adapter
// that constructs progress events and hands them to an injected sink.
// Publish must never block the consolidator, and the consolidator never
// awaits delivery or retries a failed publish.
package events

import (
	"log"
	"time"

	"github.com/google/uuid"
)

// Type enumerates the documented event points.
type Type string

const (
	TypeDocumentStart    Type = "document_start"
	TypeDocumentComplete Type = "document_complete"
	TypeDocumentError    Type = "document_error"
	TypeCaseStart        Type = "case_start"
	TypeCaseComplete     Type = "case_complete"
)

// Event is one JSON object describing progress on a case or document.
type Event struct {
	ID        string `json:"id"`
	Type      Type   `json:"type"`
	CaseID    string `json:"case_id"`
	Timestamp string `json:"timestamp"`
	FileName  string `json:"file_name,omitempty"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Sink is any object that can accept an Event. Publish must be
// non-blocking with respect to the caller: implementations are expected
// to queue internally or drop on overflow.
type Sink interface {
	Publish(e Event)
}

// Broadcaster constructs events and hands them to a Sink. It carries no
// business logic of its own — it is a thin adapter between consolidation steps and a sink.
type Broadcaster struct {
	sink Sink
	caseID string
}

// New returns a Broadcaster bound to the given sink. A nil sink is
// legal: Publish becomes a no-op, matching "sinks implement whatever
// queueing they need" — a caller that supplies no sink gets silence,
// not a panic.
func New(sink Sink) *Broadcaster {
	return &Broadcaster{sink: sink}
}

// WithCase returns a copy of the Broadcaster bound to a specific case id,
// so document-level events don't need to repeat it at every call site.
func (b *Broadcaster) WithCase(caseID string) *Broadcaster {
	return &Broadcaster{sink: b.sink, caseID: caseID}
}

func (b *Broadcaster) publish(e Event) {
	e.ID = uuid.NewString()
	e.CaseID = b.caseID
	e.Timestamp = time.Now().UTC().Format(time.RFC3339)

	if b.sink == nil {
		return
	}

	// Publish failures are logged and swallowed: the
	// consolidator's correctness never depends on event delivery.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[EVENTS] ❌ sink panicked publishing %s: %v", e.Type, r)
		}
	}()
	b.sink.Publish(e)
}

// CaseStart emits the case_start event. Must precede all document_* events.
func (b *Broadcaster) CaseStart(caseID string) {
	b.caseID = caseID
	b.publish(Event{Type: TypeCaseStart, Message: "consolidation started"})
}

// CaseComplete emits the case_complete event. Must follow all document_* events.
func (b *Broadcaster) CaseComplete(message string) {
	b.publish(Event{Type: TypeCaseComplete, Message: message})
}

// DocumentStart emits document_start for one file.
func (b *Broadcaster) DocumentStart(fileName string) {
	b.publish(Event{Type: TypeDocumentStart, FileName: fileName})
}

// DocumentComplete emits document_complete for one file.
func (b *Broadcaster) DocumentComplete(fileName string) {
	b.publish(Event{Type: TypeDocumentComplete, FileName: fileName})
}

// DocumentError emits document_error for one file.
func (b *Broadcaster) DocumentError(fileName string, err error) {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	b.publish(Event{Type: TypeDocumentError, FileName: fileName, Error: msg})
}
