package gelf

// Message is one outbound GELF payload: the four required keys plus
// zero or more _-prefixed custom fields. One is built per event and
// discarded after dispatch.
//
// Example:
//
//	{
//	 "version": "1.1",
//	 "host": "example.org",
//	 "short_message": "A short message that helps you identify what is going on",
//	 "full_message": "Backtrace here\n\nmore stuff",
//	 "timestamp": 1385053862.3072,
//	 "level": 1,
//	 "_user_id": 9001,
//	 "_some_info": "foo"
//	}
type Message map[string]any

func (m Message) ShortMessage() string {
	s, _ := m["short_message"].(string)
	return s
}

func (m Message) FullMessage() string {
	s, _ := m["full_message"].(string)
	return s
}

func (m Message) Host() string {
	s, _ := m["host"].(string)
	return s
}

func (m Message) Level() int {
	n, _ := m["level"].(int)
	return n
}
