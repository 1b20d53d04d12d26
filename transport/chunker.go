package transport

import (
	"bytes"
	"compress/zlib"
	"crypto/rand"
	"fmt"
)

const (
	// DefaultChunkSize is a WAN-safe UDP payload size.
	DefaultChunkSize = 1420

	// magic bytes marking a chunked GELF datagram
	chunkMagic0 = 0x1e
	chunkMagic1 = 0x0f

	chunkHeaderSize = 12
	maxChunks       = 128
)

// chunk splits a payload into chunked-GELF datagrams. A payload that
// fits in one datagram is passed through without a chunk header.
func chunk(payload []byte, chunkSize int) ([][]byte, error) {
	if len(payload) <= chunkSize {
		return [][]byte{payload}, nil
	}

	count := (len(payload) + chunkSize - 1) / chunkSize
	if count > maxChunks {
		return nil, fmt.Errorf("message needs %d chunks but gelf allows at most %d", count, maxChunks)
	}

	var messageID [8]byte
	if _, err := rand.Read(messageID[:]); err != nil {
		return nil, fmt.Errorf("failed generating chunk message id: %w", err)
	}

	datagrams := make([][]byte, 0, count)
	for seq := 0; seq < count; seq++ {
		start := seq * chunkSize
		end := start + chunkSize
		if end > len(payload) {
			end = len(payload)
		}

		datagram := make([]byte, 0, chunkHeaderSize+end-start)
		datagram = append(datagram, chunkMagic0, chunkMagic1)
		datagram = append(datagram, messageID[:]...)
		datagram = append(datagram, byte(seq), byte(count))
		datagram = append(datagram, payload[start:end]...)
		datagrams = append(datagrams, datagram)
	}
	return datagrams, nil
}

func deflate(payload []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(payload); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
