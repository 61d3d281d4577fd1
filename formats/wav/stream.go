// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
)

// Stream tracks the read position of an underlying reader and moves it forward
// either by seeking or, for pipes and other non-seekable sources, by discarding
// bytes. It never reads ahead, so once the caller is done with the Stream the
// wrapped reader is positioned exactly where the Stream left it.
type Stream struct {
	r    io.Reader
	s    io.Seeker
	base int64
	pos  int64
}

// NewStream wraps r. A reader counts as seekable only when it implements
// io.Seeker and reports its current offset without error; an *os.File backed
// by a pipe fails that probe.
func NewStream(r io.Reader) *Stream {
	st := &Stream{r: r}

	if s, ok := r.(io.Seeker); ok {
		if off, err := s.Seek(0, io.SeekCurrent); err == nil {
			st.s = s
			st.base = off
		}
	}

	return st
}

// CanSeek reports whether skips are done by seeking instead of reading.
func (st *Stream) CanSeek() bool { return st.s != nil }

// Pos returns the offset relative to where the stream started.
func (st *Stream) Pos() int64 { return st.pos }

// Read reads from the wrapped reader and advances the position.
func (st *Stream) Read(p []byte) (int, error) {
	n, err := st.r.Read(p)
	st.pos += int64(n)
	return n, err
}

// SkipTo moves to offset, relative to the start of the stream. Moving
// backwards is only possible on seekable streams.
func (st *Stream) SkipTo(offset int64) error {
	if st.CanSeek() {
		if _, err := st.s.Seek(st.base+offset, io.SeekStart); err != nil {
			return fmt.Errorf("seeking to offset %d: %w", offset, err)
		}
		st.pos = offset
		return nil
	}

	if offset < st.pos {
		return fmt.Errorf("cannot rewind non-seekable stream from %d to %d", st.pos, offset)
	}

	n, err := io.CopyN(io.Discard, st.r, offset-st.pos)
	st.pos += n
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return fmt.Errorf("skipping to offset %d: %w", offset, err)
	}

	return nil
}
