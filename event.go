package gelfout

import (
	"sort"
	"time"
)

type Event struct {
	Fields map[string]interface{}

	// capture time; GELF wants fractional seconds since epoch
	received time.Time
}

func NewEvent() Event {
	var newEvt Event
	newEvt.Fields = make(map[string]interface{})
	newEvt.received = time.Now()
	return newEvt
}

func NewEventAt(t time.Time) Event {
	evt := NewEvent()
	evt.received = t
	return evt
}

func (evt *Event) Field(path ...string) *Field {
	// warning: don't try to be clever and split the path components
	//on "." to get smaller path components. It must be possible to
	//specify fields that contain a "." in the Name!
	//
	// no need to verify that the field currently exists
	// because we can also use this for setting values
	return &Field{
		Path:     path,
		original: evt,
	}
}

func (evt *Event) Set(field string, value any) {
	evt.Field(field).Set(value)
}

func (evt *Event) Get(field string) any {
	return evt.Field(field).MustGet()
}

// Timestamp reports when the event was captured, as fractional
// seconds since the Unix epoch. That's the representation GELF uses.
func (evt *Event) Timestamp() float64 {
	return float64(evt.received.UnixNano()) / float64(time.Second)
}

// Keys returns the top-level field names in sorted order.
// Getting an ordered set of keys is essential for deterministic output.
func (evt *Event) Keys() []string {
	keys := make([]string, 0, len(evt.Fields))
	for k := range evt.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ToMap returns a shallow copy of all top-level fields.
func (evt *Event) ToMap() map[string]any {
	m := make(map[string]any, len(evt.Fields))
	for k, v := range evt.Fields {
		m[k] = v
	}
	return m
}

func (evt *Event) Copy() Event {
	newEvt := NewEventAt(evt.received)
	for k, v := range evt.Fields {
		newEvt.Fields[k] = v
	}
	return newEvt
}
