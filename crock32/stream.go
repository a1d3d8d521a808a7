package crock32

import (
	"io"

	"github.com/pkg/errors"
)

// ErrClosed is returned by Writer.Write after Close.
var ErrClosed = errors.New("crock32: write to closed writer")

// DefaultReadSize is the chunk size Reader uses for reads from its source.
const DefaultReadSize = 4096

// maxEmptyReads bounds consecutive (0, nil) reads from a source, as bufio does.
const maxEmptyReads = 100

// Writer is an io.WriteCloser that encodes everything written to it and
// forwards the symbol text to an underlying writer.
type Writer struct {
	w      io.Writer
	enc    Encoder
	marker bool
	err    error
	closed bool
}

// NewWriter returns a Writer that writes symbol text to w. Close must be
// called to emit the final partial symbol; if marker is set, Close also
// appends Marker.
func NewWriter(w io.Writer, marker bool) *Writer {
	return &Writer{
		w:      w,
		marker: marker,
	}
}

// Write encodes p. Errors from the underlying writer are sticky.
func (w *Writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, ErrClosed
	}
	if w.err != nil {
		return 0, w.err
	}

	w.enc.encode(p)
	if err := w.emit(); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Close flushes the carried bits and the optional marker. It does not close
// the underlying writer. Calling Close more than once is a no-op.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if w.err != nil {
		return w.err
	}

	w.enc.finish(w.marker)
	return w.emit()
}

func (w *Writer) emit() error {
	if len(w.enc.out) == 0 {
		return nil
	}
	_, err := w.w.Write(w.enc.out)
	w.enc.out = w.enc.out[:0]
	if err != nil {
		w.err = errors.Wrap(err, "crock32: write symbol text")
		return w.err
	}
	return nil
}

// Reader is an io.Reader that decodes symbol text read from an underlying
// reader.
type Reader struct {
	r       io.Reader
	dec     Decoder
	buf     []byte
	pending []byte
	err     error
}

// NewReader returns a Reader decoding symbol text from r.
func NewReader(r io.Reader) *Reader {
	return NewReaderSize(r, DefaultReadSize)
}

// NewReaderSize returns a Reader that reads r in chunks of size bytes.
// A non-positive size selects DefaultReadSize.
func NewReaderSize(r io.Reader, size int) *Reader {
	if size <= 0 {
		size = DefaultReadSize
	}
	return &Reader{
		r:   r,
		buf: make([]byte, size),
	}
}

// Read fills p with decoded bytes. At the end of the source the carried
// bits are dropped and io.EOF is returned. Errors from the source are
// returned once every byte decoded before them has been read.
func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for len(r.pending) == 0 {
		if r.err != nil {
			return 0, r.err
		}
		r.fill()
	}

	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}

func (r *Reader) fill() {
	r.dec.out = r.dec.out[:0]

	for i := 0; i < maxEmptyReads; i++ {
		n, err := r.r.Read(r.buf)
		if n > 0 {
			r.dec.decode(r.buf[:n])
		}

		switch {
		case err == io.EOF:
			r.dec.finish(false)
			r.err = io.EOF
		case err != nil:
			r.err = errors.Wrap(err, "crock32: read symbol text")
		}

		if n > 0 || r.err != nil {
			r.pending = r.dec.out
			return
		}
	}
	r.err = io.ErrNoProgress
}
