package transport

import (
	"encoding/json"
	"fmt"
	"net"
	"strconv"
	"sync"

	"github.com/nicwaller/gelfout/gelf"
)

type Protocol string

const (
	UDP Protocol = "udp"
	TCP Protocol = "tcp"
)

type Options struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`

	// ChunkSize is the largest UDP datagram payload sent without
	// chunking. Zero means DefaultChunkSize.
	ChunkSize int `yaml:"chunk_size"`

	Protocol Protocol `yaml:"protocol"`

	// Compress deflates UDP payloads before chunking.
	// Has no effect over TCP, which is framed with a null byte.
	Compress bool `yaml:"compress"`

	TLS *TLSOptions `yaml:"tls"`
}

// Writer delivers GELF messages to a Graylog server. It implements
// gelf.Notifier and is safe for concurrent use by multiple callers.
//
// The writer never filters by severity: the resolver already mapped
// every level, and a second independent filter here would silently
// drop messages.
type Writer struct {
	opts Options

	mu   sync.Mutex
	conn net.Conn
}

func NewWriter(opts Options) (*Writer, error) {
	if opts.Protocol == "" {
		opts.Protocol = UDP
	}
	if opts.ChunkSize == 0 {
		opts.ChunkSize = DefaultChunkSize
	}
	if opts.Protocol != UDP && opts.Protocol != TCP {
		return nil, fmt.Errorf("unsupported gelf protocol %q", opts.Protocol)
	}
	if opts.TLS != nil && opts.Protocol == UDP {
		return nil, fmt.Errorf("gelf TLS requires the tcp protocol")
	}
	return &Writer{opts: opts}, nil
}

func (w *Writer) Notify(m gelf.Message, timestamp float64) error {
	payload, err := encode(m, timestamp)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.conn == nil {
		conn, err := w.dial()
		if err != nil {
			return err
		}
		w.conn = conn
	}

	if w.opts.Protocol == TCP {
		// TCP framing is one null-terminated JSON document
		err = w.writeAll(append(payload, 0))
	} else {
		err = w.writeDatagrams(payload)
	}
	if err != nil {
		// drop the connection so the next call redials
		_ = w.conn.Close()
		w.conn = nil
	}
	return err
}

func (w *Writer) writeDatagrams(payload []byte) error {
	if w.opts.Compress {
		deflated, err := deflate(payload)
		if err != nil {
			return err
		}
		payload = deflated
	}
	datagrams, err := chunk(payload, w.opts.ChunkSize)
	if err != nil {
		return err
	}
	for _, datagram := range datagrams {
		if _, err := w.conn.Write(datagram); err != nil {
			return fmt.Errorf("failed writing gelf datagram: %w", err)
		}
	}
	return nil
}

func (w *Writer) writeAll(payload []byte) error {
	for len(payload) > 0 {
		n, err := w.conn.Write(payload)
		if err != nil {
			return fmt.Errorf("failed writing gelf frame: %w", err)
		}
		payload = payload[n:]
	}
	return nil
}

func (w *Writer) dial() (net.Conn, error) {
	addr := net.JoinHostPort(w.opts.Host, strconv.Itoa(w.opts.Port))
	if w.opts.TLS != nil {
		return w.opts.TLS.dial(addr, w.opts.Host)
	}
	conn, err := net.Dial(string(w.opts.Protocol), addr)
	if err != nil {
		return nil, fmt.Errorf("failed dialing graylog at %s: %w", addr, err)
	}
	return conn, nil
}

func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.conn == nil {
		return nil
	}
	err := w.conn.Close()
	w.conn = nil
	return err
}

// encode serializes a message with the wire-level fields the resolver
// doesn't own: the GELF version and the event timestamp.
func encode(m gelf.Message, timestamp float64) ([]byte, error) {
	wire := make(map[string]any, len(m)+2)
	for k, v := range m {
		wire[k] = v
	}
	wire["version"] = "1.1"
	wire["timestamp"] = timestamp
	dat, err := json.Marshal(wire)
	if err != nil {
		return nil, fmt.Errorf("failed encoding gelf message: %w", err)
	}
	return dat, nil
}
