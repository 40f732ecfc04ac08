package value

import "maps"

// Message is the composite kind: an opaque request or response payload with
// named headers and a raw body. Messages travel between workers and native
// functions by reference; Clone produces an independent copy when isolation
// is needed.
type Message struct {
	Headers map[string][]string
	Body    []byte
}

// NewMessage returns an empty message with an initialized header map.
func NewMessage() *Message {
	return &Message{Headers: make(map[string][]string)}
}

// Header returns the first value set for the named header, or "".
func (m *Message) Header(name string) string {
	if vs := m.Headers[name]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// SetHeader replaces the named header with a single value.
func (m *Message) SetHeader(name, v string) {
	if m.Headers == nil {
		m.Headers = make(map[string][]string)
	}
	m.Headers[name] = []string{v}
}

// Clone returns an independent deep copy of the message.
func (m *Message) Clone() *Message {
	if m == nil {
		return nil
	}
	c := &Message{
		Headers: make(map[string][]string, len(m.Headers)),
		Body:    append([]byte(nil), m.Body...),
	}
	for k, vs := range m.Headers {
		c.Headers[k] = append([]string(nil), vs...)
	}
	return c
}

// SetBody replaces the message body.
func (m *Message) SetBody(b []byte) {
	m.Body = b
}

// CopyHeadersFrom merges all headers from src, overwriting same-named ones.
func (m *Message) CopyHeadersFrom(src *Message) {
	if src == nil {
		return
	}
	if m.Headers == nil {
		m.Headers = make(map[string][]string, len(src.Headers))
	}
	maps.Copy(m.Headers, src.Headers)
}
