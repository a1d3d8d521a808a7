package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tanagraspace/crock32/crock32"
)

// streamStats counts bytes moved by one encode or decode run.
type streamStats struct {
	BytesIn  int64
	BytesOut int64
}

// countingReader and countingWriter expose only Read and Write, which also
// keeps io.CopyBuffer from bypassing the configured chunk size.
type countingReader struct {
	r io.Reader
	n int64
}

func (cr *countingReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	cr.n += int64(n)
	return n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// encodeStream copies src to dst as symbol text.
func encodeStream(dst io.Writer, src io.Reader, chunkSize int, marker, newline bool) (streamStats, error) {
	in := &countingReader{r: src}
	out := &countingWriter{w: dst}

	w := crock32.NewWriter(out, marker)
	if _, err := io.CopyBuffer(w, in, make([]byte, chunkSize)); err != nil {
		return streamStats{BytesIn: in.n, BytesOut: out.n}, errors.Wrap(err, "encode")
	}
	if err := w.Close(); err != nil {
		return streamStats{BytesIn: in.n, BytesOut: out.n}, errors.Wrap(err, "encode")
	}
	if newline {
		if _, err := io.WriteString(out, "\n"); err != nil {
			return streamStats{BytesIn: in.n, BytesOut: out.n}, errors.Wrap(err, "write newline")
		}
	}
	return streamStats{BytesIn: in.n, BytesOut: out.n}, nil
}

// decodeStream copies the bytes encoded in src to dst.
func decodeStream(dst io.Writer, src io.Reader, chunkSize int) (streamStats, error) {
	in := &countingReader{r: src}
	out := &countingWriter{w: dst}

	r := crock32.NewReaderSize(in, chunkSize)
	if _, err := io.CopyBuffer(out, r, make([]byte, chunkSize)); err != nil {
		return streamStats{BytesIn: in.n, BytesOut: out.n}, errors.Wrap(err, "decode")
	}
	return streamStats{BytesIn: in.n, BytesOut: out.n}, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// openInput returns the file named by args[0], or stdin for no argument or "-".
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), "stdin", nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, args[0], errors.Wrapf(err, "open input %s", args[0])
	}
	return f, args[0], nil
}

// openOutput creates path, or returns stdout for "" and "-".
func openOutput(cmd *cobra.Command, path string) (io.WriteCloser, string, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{cmd.OutOrStdout()}, "stdout", nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, path, errors.Wrapf(err, "create output %s", path)
	}
	return f, path, nil
}
