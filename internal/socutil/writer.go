package socutil

import (
	"bytes"
	"io"
	"strings"
)

// WriteBuffer pairs a byte buffer with a destination writer and a flush
// policy, so a caller can accumulate small writes (one log line, one
// dumped event) and only hit the underlying writer once a chunk is worth
// sending. Prefixer below is built on one; most callers want Prefixer
// rather than a bare WriteBuffer.
type WriteBuffer struct {
	FlushPolicy
	To io.Writer
	bytes.Buffer
}

// FlushPolicy determines when a WriteBuffer should flush during its main
// write phase.
type FlushPolicy interface {
	ShouldFlush(b []byte) int
}

// FlushPolicyFunc is a convenience adaptor for FlushPolicy around a
// compatible anonymous function.
type FlushPolicyFunc func(b []byte) int

// ShouldFlush calls the receiver function.
func (f FlushPolicyFunc) ShouldFlush(b []byte) int { return f(b) }

// Flush writes all buffered bytes to To, regardless of FlushPolicy. Call
// this once after the main write phase (mdtokdump's log writer does this
// via Prefixer.Close, deferred in main).
func (buf *WriteBuffer) Flush() error {
	_, err := buf.WriteTo(buf.To)
	return err
}

// MaybeFlush writes the first N bytes of the buffer to To if FlushPolicy
// returns N > 0, discarding the written bytes from the buffer. A nil
// FlushPolicy defaults to FlushLineChunks, so by default a WriteBuffer
// only ever flushes on complete lines.
func (buf *WriteBuffer) MaybeFlush() error {
	if buf.FlushPolicy == nil {
		buf.FlushPolicy = FlushPolicyFunc(FlushLineChunks)
	}
	b := buf.Bytes()
	if n := buf.ShouldFlush(b); n > 0 {
		m, err := buf.To.Write(b[:n])
		buf.Next(m)
		return err
	}
	return nil
}

// FlushLineChunks is a FlushPolicy(Func) that flushes as large a chunk as
// possible, through the last written newline byte — so a log line split
// across several Write calls (as log.Output does: the message, then its
// own trailing newline) still reaches the underlying writer as whole
// lines, never a partial one.
func FlushLineChunks(b []byte) int {
	if i := bytes.LastIndexByte(b, '\n'); i >= 0 {
		return i + 1
	}
	return 0
}

// ErrWriter wraps a writer, latching the first error it returns and
// refusing all further writes once set. mdtokdump wraps stdout in one so
// DumpEvents can write every event without an inline error check per
// line; the dump loop only has to inspect ew.Err once, after the loop,
// to learn whether any write along the way failed.
type ErrWriter struct {
	io.Writer
	Err error
}

// Write passes through to Writer if Err is nil, retaining any returned
// error and refusing to write again afterward.
func (ew *ErrWriter) Write(p []byte) (n int, err error) {
	if ew.Err == nil {
		n, ew.Err = ew.Writer.Write(p)
	}
	return n, ew.Err
}

// PrefixWriter returns a writer that prepends prefix before every line
// written through it. mdtokdump uses this for its log output (`log.
// SetOutput(socutil.PrefixWriter("> log: ", os.Stderr))`), so diagnostic
// lines (read errors, the blackfriday node-count comparison) are visually
// set apart from the event dump itself when both streams land on the same
// terminal. The caller should Close it to flush any buffered partial
// final line.
func PrefixWriter(prefix string, w io.Writer) *Prefixer {
	var p Prefixer
	p.Buffer.To = w
	p.Prefix = prefix
	return &p
}

// Prefixer writes prefix before every line written to an underlying
// writer. Create with PrefixWriter. Set Skip true for a one-shot "don't
// add the next prefix" (useful when the caller has already written a
// prefix-equivalent lead-in itself).
type Prefixer struct {
	Prefix string
	Skip   bool
	Buffer WriteBuffer
}

// Close flushes all internally buffered bytes to the underlying writer.
func (p *Prefixer) Close() error { return p.Buffer.Flush() }

// Flush flushes all internally buffered bytes to the underlying writer.
func (p *Prefixer) Flush() error { return p.Buffer.Flush() }

// Write writes bytes to the internal buffer, inserting Prefix before
// every line, and then flushes all complete lines to the underlying
// writer.
func (p *Prefixer) Write(b []byte) (n int, err error) {
	first := true
	for len(b) > 0 {
		if !first {
			p.addPrefix()
		} else if i := p.Buffer.Len() - 1; i < 0 || p.Buffer.Bytes()[i] == '\n' {
			p.addPrefix()
			first = false
		} else {
			first = false
		}

		line := b
		if i := bytes.IndexByte(b, '\n'); i >= 0 {
			i++
			line = b[:i]
			b = b[i:]
		} else {
			b = nil
		}
		m, _ := p.Buffer.Write(line)
		n += m
	}
	return n, p.Buffer.MaybeFlush()
}

// WriteString writes a string to the internal buffer, inserting Prefix
// before every line, and then flushes all complete lines to the
// underlying writer.
func (p *Prefixer) WriteString(s string) (n int, err error) {
	first := true
	for len(s) > 0 {
		if !first {
			p.addPrefix()
		} else if i := p.Buffer.Len() - 1; i < 0 || p.Buffer.Bytes()[i] == '\n' {
			p.addPrefix()
			first = false
		} else {
			first = false
		}

		line := s
		if i := strings.IndexByte(s, '\n'); i >= 0 {
			i++
			line = s[:i]
			s = s[i:]
		} else {
			s = ""
		}
		m, _ := p.Buffer.WriteString(line)
		n += m
	}
	return n, p.Buffer.MaybeFlush()
}

func (p *Prefixer) addPrefix() {
	if p.Skip {
		p.Skip = false
	} else {
		p.Buffer.WriteString(p.Prefix)
	}
}
