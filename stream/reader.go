// Package stream implements the C7 streaming frame reader: it reads an
// OBO document one frame at a time rather than materializing the whole
// ast.Document, tracking byte and line offsets as it goes so that
// callers processing large ontologies (GO, ChEBI) can report progress
// or resume a failed read.
package stream

import (
	"bufio"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/ha1tch/goobo/ast"
	"github.com/ha1tch/goobo/parser"
)

// scannerBufferSize matches the buffer the ChEBI OBO reader in the
// example pack sizes its scanner to, since full ontology files can have
// individual stanzas far past bufio.Scanner's 64KiB default.
const scannerBufferSize = 1 << 20

// Reader streams frames from an OBO document: one Header call followed
// by any number of Next calls until io.EOF.
type Reader struct {
	sc          *bufio.Scanner
	byteOffset  int
	lineOffset  int
	pendingLine string
	havePending bool
	done        bool

	correlationID uuid.UUID
	logger        *slog.Logger
}

// Option configures a Reader.
type Option func(*Reader)

// WithLogger attaches a structured logger; frame reads are logged at
// debug level tagged with the reader's correlation ID.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reader) { r.logger = logger }
}

// NewReader wraps r as a streaming frame source.
func NewReader(r io.Reader, opts ...Option) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, scannerBufferSize), scannerBufferSize)
	rd := &Reader{
		sc:            sc,
		correlationID: uuid.New(),
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(rd)
	}
	return rd
}

// ByteOffset reports the number of source bytes consumed so far.
func (r *Reader) ByteOffset() int { return r.byteOffset }

// LineOffset reports the number of source lines consumed so far.
func (r *Reader) LineOffset() int { return r.lineOffset }

func (r *Reader) scanLine() (string, bool) {
	if !r.sc.Scan() {
		return "", false
	}
	line := r.sc.Text()
	r.byteOffset += len(line) + 1
	r.lineOffset++
	return line, true
}

// Header consumes and returns the document's header frame. It must be
// called exactly once, before any call to Next.
func (r *Reader) Header() (*ast.HeaderFrame, error) {
	var b strings.Builder
	for {
		line, ok := r.scanLine()
		if !ok {
			if err := r.sc.Err(); err != nil {
				return nil, errors.Wrap(err, "stream: reading header")
			}
			r.done = true
			break
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "[") {
			r.pendingLine = line
			r.havePending = true
			break
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	hf, err := parser.ParseHeaderFrame(b.String())
	if err != nil {
		return nil, err
	}
	r.logger.Debug("stream: read header frame",
		"correlation_id", r.correlationID,
		"clauses", len(hf.Clauses),
		"line_offset", r.lineOffset,
	)
	return hf, nil
}

// Next reads and returns the following entity frame, or io.EOF once the
// document is exhausted.
func (r *Reader) Next() (ast.EntityFrame, error) {
	var b strings.Builder
	if r.havePending {
		b.WriteString(r.pendingLine)
		b.WriteByte('\n')
		r.havePending = false
	} else if r.done {
		return nil, io.EOF
	} else {
		line, ok := r.scanLine()
		if !ok {
			if err := r.sc.Err(); err != nil {
				return nil, errors.Wrap(err, "stream: reading frame")
			}
			return nil, io.EOF
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			return r.Next()
		}
		if !strings.HasPrefix(trimmed, "[") {
			return nil, errors.Errorf("stream: expected stanza header at line %d, got %q", r.lineOffset, line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	for {
		line, ok := r.scanLine()
		if !ok {
			if err := r.sc.Err(); err != nil {
				return nil, errors.Wrap(err, "stream: reading frame")
			}
			r.done = true
			break
		}
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "[") {
			r.pendingLine = line
			r.havePending = true
			break
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	frame, err := parser.ParseEntityFrame(b.String())
	if err != nil {
		return nil, err
	}
	r.logger.Debug("stream: read entity frame",
		"correlation_id", r.correlationID,
		"id", frame.FrameId().String(),
		"line_offset", r.lineOffset,
	)
	return frame, nil
}

// Collect drains the reader to the end of the document and assembles
// the result into a single ast.Document, for callers that want the
// streaming reader's lower peak memory during the read but the
// convenience of a materialized document afterward. Header must not
// have been called yet.
func (r *Reader) Collect() (*ast.Document, error) {
	header, err := r.Header()
	if err != nil {
		return nil, err
	}
	doc := &ast.Document{Header: *header}
	for {
		frame, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		doc.Entities = append(doc.Entities, frame)
	}
	return doc, nil
}
