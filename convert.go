// SPDX-License-Identifier: EPL-2.0

package wav2msu

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/ik5/wav2msu/formats/msu"
	"github.com/ik5/wav2msu/formats/wav"
)

// Options configures a conversion.
type Options struct {
	// LoopPoint is the frame, counted from the start of the main input,
	// where playback loops.
	LoopPoint int64
	// Intro, when set, is a WAV file played once before the main input.
	Intro io.Reader
	// Logger receives debug output. Nil disables logging.
	Logger *slog.Logger
}

// Conversion holds validated inputs, positioned at their sample data and
// ready to be written out.
type Conversion struct {
	in        io.Reader
	intro     io.Reader
	loopPoint int32
	introSize uint32
	dataSize  uint32
}

// NewConversion validates the intro, if any, and then in. Nothing is written
// anywhere; a failure here means no output should be created.
func NewConversion(in io.Reader, opts Options) (*Conversion, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	c := &Conversion{in: in}

	if opts.Intro != nil {
		size, err := wav.Validate(opts.Intro)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrIntroInvalid, err)
		}
		c.intro = opts.Intro
		c.introSize = size
		logger.Debug("intro validated",
			slog.Uint64("bytes", uint64(size)),
			slog.Int("frames", int(size)/wav.BytesPerFrame))
	}

	c.loopPoint = EffectiveLoopPoint(opts.LoopPoint, c.introSize)

	size, err := wav.Validate(in)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputInvalid, err)
	}
	c.dataSize = size
	logger.Debug("input validated",
		slog.Uint64("bytes", uint64(size)),
		slog.Int("frames", int(size)/wav.BytesPerFrame),
		slog.Int("loop_point", int(c.loopPoint)))

	return c, nil
}

// LoopPoint is the value written to the header, already offset by the intro.
func (c *Conversion) LoopPoint() int32 { return c.loopPoint }

// IntroSize is the intro's sample data length in bytes, 0 without an intro.
func (c *Conversion) IntroSize() uint32 { return c.introSize }

// DataSize is the main input's sample data length in bytes.
func (c *Conversion) DataSize() uint32 { return c.dataSize }

// WriteTo writes the MSU1 file to w, consuming the inputs.
func (c *Conversion) WriteTo(w io.Writer) (int64, error) {
	return msu.Assemble(w, c.loopPoint, c.intro, c.in)
}

// Convert validates in (and opts.Intro) and writes the MSU1 file to w.
// Nothing reaches w unless both inputs validate.
//
// Example:
//
//	in, _ := os.Open("track.wav")
//	out, _ := os.Create("track-1.pcm")
//	err := wav2msu.Convert(out, in, wav2msu.Options{LoopPoint: 0x1000})
func Convert(w io.Writer, in io.Reader, opts Options) error {
	c, err := NewConversion(in, opts)
	if err != nil {
		return err
	}

	if _, err := c.WriteTo(w); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
