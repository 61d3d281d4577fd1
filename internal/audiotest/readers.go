// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"io"
)

var ErrInjected = errors.New("injected failure")

// NonSeeker hides any Seek method of the wrapped reader, like a pipe.
type NonSeeker struct {
	R io.Reader
}

func (n NonSeeker) Read(p []byte) (int, error) { return n.R.Read(p) }

// BrokenSeeker implements io.Seeker but every call fails, which is how an
// *os.File attached to a pipe behaves.
type BrokenSeeker struct {
	R io.Reader
}

func (b BrokenSeeker) Read(p []byte) (int, error) { return b.R.Read(p) }

func (BrokenSeeker) Seek(int64, int) (int64, error) {
	return 0, errors.New("illegal seek")
}

// FailingWriter accepts Limit bytes and then returns ErrInjected.
type FailingWriter struct {
	Limit   int
	Written int
}

func (w *FailingWriter) Write(p []byte) (int, error) {
	room := w.Limit - w.Written
	if room <= 0 {
		return 0, ErrInjected
	}
	if len(p) > room {
		w.Written += room
		return room, ErrInjected
	}
	w.Written += len(p)
	return len(p), nil
}

// FailingReader returns ErrInjected on every read.
type FailingReader struct{}

func (FailingReader) Read([]byte) (int, error) { return 0, ErrInjected }
