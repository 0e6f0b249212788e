package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingSink struct {
	events []Event
}

func (r *recordingSink) Publish(e Event) {
	r.events = append(r.events, e)
}

func TestBroadcasterOrdering(t *testing.T) {
	sink := &recordingSink{}
	b := New(sink)

	b.CaseStart("case-1")
	b.DocumentStart("a.pdf")
	b.DocumentComplete("a.pdf")
	b.CaseComplete("done")

	assert.Len(t, sink.events, 4)
	assert.Equal(t, TypeCaseStart, sink.events[0].Type)
	assert.Equal(t, TypeDocumentStart, sink.events[1].Type)
	assert.Equal(t, TypeDocumentComplete, sink.events[2].Type)
	assert.Equal(t, TypeCaseComplete, sink.events[3].Type)

	for _, e := range sink.events {
		assert.Equal(t, "case-1", e.CaseID)
		assert.NotEmpty(t, e.ID)
		assert.NotEmpty(t, e.Timestamp)
	}
}

func TestBroadcasterNilSinkDoesNotPanic(t *testing.T) {
	b := New(nil)
	assert.NotPanics(t, func() {
		b.CaseStart("case-1")
		b.DocumentError("a.pdf", assert.AnError)
	})
}

func TestChannelSinkDropsOldestOnOverflow(t *testing.T) {
	sink := NewChannelSink(2)
	sink.Publish(Event{Type: TypeDocumentStart, FileName: "1"})
	sink.Publish(Event{Type: TypeDocumentStart, FileName: "2"})
	sink.Publish(Event{Type: TypeDocumentStart, FileName: "3"})

	first := <-sink.Events()
	second := <-sink.Events()

	assert.Equal(t, "2", first.FileName)
	assert.Equal(t, "3", second.FileName)
}

func TestPanicSinkIsSwallowed(t *testing.T) {
	b := New(panicSink{})
	assert.NotPanics(t, func() {
		b.CaseStart("case-1")
	})
}

type panicSink struct{}

func (panicSink) Publish(Event) { panic("boom") }
