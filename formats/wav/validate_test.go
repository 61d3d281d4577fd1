// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ik5/wav2msu/internal/audiotest"
)

type readerKind struct {
	name string
	wrap func([]byte) io.Reader
}

var readerKinds = []readerKind{
	{"seekable", func(b []byte) io.Reader { return bytes.NewReader(b) }},
	{"non-seekable", func(b []byte) io.Reader { return audiotest.NonSeeker{R: bytes.NewReader(b)} }},
	{"failing-seeker", func(b []byte) io.Reader { return audiotest.BrokenSeeker{R: bytes.NewReader(b)} }},
}

func TestValidate_ValidFile(t *testing.T) {
	t.Parallel()

	samples := audiotest.Samples(8, 1)
	data := audiotest.Fixture{Data: samples}.Bytes()

	for _, kind := range readerKinds {
		t.Run(kind.name, func(t *testing.T) {
			t.Parallel()

			r := kind.wrap(data)
			size, err := Validate(r)
			if err != nil {
				t.Fatalf("Validate() error = %v, want nil", err)
			}
			if size != 8 {
				t.Errorf("Validate() = %d, want 8", size)
			}

			// The reader must be left at the first sample byte.
			rest, err := io.ReadAll(r)
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}
			if !bytes.Equal(rest, samples) {
				t.Errorf("remaining bytes = %v, want %v", rest, samples)
			}
		})
	}
}

func TestValidate_ReturnsDataLengthField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		size uint32
	}{
		{"zero", 0},
		{"odd", 7},
		{"above int32", 0x80000004},
		{"max", 0xFFFFFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data := audiotest.Fixture{DataSize: audiotest.Size(tt.size)}.Bytes()
			size, err := Validate(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("Validate() error = %v, want nil", err)
			}
			if size != tt.size {
				t.Errorf("Validate() = %d, want %d", size, tt.size)
			}
		})
	}
}

func TestValidate_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		fixture audiotest.Fixture
		want    error
		check   func(*testing.T, *FormatError)
	}{
		{
			name:    "bad signature",
			fixture: audiotest.Fixture{Signature: "RIFX"},
			want:    ErrBadSignature,
			check: func(t *testing.T, fe *FormatError) {
				if fe.Signature != 0x58464952 {
					t.Errorf("Signature = 0x%x, want 0x58464952", fe.Signature)
				}
			},
		},
		{
			name:    "float format",
			fixture: audiotest.Fixture{Format: 3},
			want:    ErrNotPCM,
			check: func(t *testing.T, fe *FormatError) {
				if fe.Format != 3 {
					t.Errorf("Format = %d, want 3", fe.Format)
				}
			},
		},
		{
			name:    "mono",
			fixture: audiotest.Fixture{Channels: 1},
			want:    ErrFormatMismatch,
			check: func(t *testing.T, fe *FormatError) {
				if fe.Channels != 1 || fe.SampleRate != 44100 || fe.BitDepth != 16 {
					t.Errorf("observed = %dch %dHz %dbit, want 1ch 44100Hz 16bit",
						fe.Channels, fe.SampleRate, fe.BitDepth)
				}
			},
		},
		{
			name:    "48kHz",
			fixture: audiotest.Fixture{SampleRate: 48000},
			want:    ErrFormatMismatch,
			check: func(t *testing.T, fe *FormatError) {
				if fe.SampleRate != 48000 {
					t.Errorf("SampleRate = %d, want 48000", fe.SampleRate)
				}
			},
		},
		{
			name:    "24 bit",
			fixture: audiotest.Fixture{BitDepth: 24},
			want:    ErrFormatMismatch,
			check: func(t *testing.T, fe *FormatError) {
				if fe.BitDepth != 24 {
					t.Errorf("BitDepth = %d, want 24", fe.BitDepth)
				}
			},
		},
		{
			name:    "data marker elsewhere",
			fixture: audiotest.Fixture{Extra: []byte{0, 0, 0, 0}},
			want:    ErrDataMarkerMissing,
			check: func(t *testing.T, fe *FormatError) {
				if fe.Marker != 0x4b4e554a { // "JUNK"
					t.Errorf("Marker = 0x%x, want 0x4b4e554a", fe.Marker)
				}
			},
		},
	}

	for _, tt := range tests {
		for _, kind := range readerKinds {
			t.Run(tt.name+"/"+kind.name, func(t *testing.T) {
				t.Parallel()

				_, err := Validate(kind.wrap(tt.fixture.Bytes()))
				if !errors.Is(err, tt.want) {
					t.Fatalf("Validate() error = %v, want %v", err, tt.want)
				}

				var fe *FormatError
				if !errors.As(err, &fe) {
					t.Fatalf("Validate() error %T is not a *FormatError", err)
				}
				tt.check(t, fe)
			})
		}
	}
}

func TestValidate_FailureKindsAreSpecific(t *testing.T) {
	t.Parallel()

	_, err := Validate(bytes.NewReader(audiotest.Fixture{Format: 2}.Bytes()))

	for _, other := range []error{ErrBadSignature, ErrFormatMismatch, ErrDataMarkerMissing} {
		if errors.Is(err, other) {
			t.Errorf("Validate() error matches %v, want only ErrNotPCM", other)
		}
	}
}

func TestValidate_Truncated(t *testing.T) {
	t.Parallel()

	full := audiotest.Fixture{}.Bytes()

	for _, n := range []int{0, 2, 4, 10, 21, 30, 35, 38, 42} {
		for _, kind := range readerKinds {
			t.Run(kind.name, func(t *testing.T) {
				t.Parallel()

				_, err := Validate(kind.wrap(full[:n]))
				if err == nil {
					t.Fatalf("Validate(%d bytes) error = nil, want error", n)
				}
				if !errors.Is(err, io.ErrUnexpectedEOF) {
					t.Errorf("Validate(%d bytes) error = %v, want io.ErrUnexpectedEOF", n, err)
				}

				var fe *FormatError
				if errors.As(err, &fe) {
					t.Errorf("Validate(%d bytes) returned validation error %v for a short read", n, err)
				}
			})
		}
	}
}

func TestValidate_ReadError(t *testing.T) {
	t.Parallel()

	_, err := Validate(audiotest.FailingReader{})
	if !errors.Is(err, audiotest.ErrInjected) {
		t.Errorf("Validate() error = %v, want ErrInjected", err)
	}
}

func TestValidate_ReadsNoFurtherThanHeader(t *testing.T) {
	t.Parallel()

	// Trailing bytes after the declared sample data are not inspected.
	data := audiotest.Fixture{DataSize: audiotest.Size(2), Data: []byte("garbage trailing data")}.Bytes()
	r := audiotest.NonSeeker{R: bytes.NewReader(data)}

	if _, err := Validate(r); err != nil {
		t.Fatalf("Validate() error = %v, want nil", err)
	}

	rest, _ := io.ReadAll(r)
	if string(rest) != "garbage trailing data" {
		t.Errorf("remaining = %q, want the sample bytes untouched", rest)
	}
}

func TestValidate_SeekableStartsMidStream(t *testing.T) {
	t.Parallel()

	// Offsets are relative to where the reader is positioned when passed in.
	prefix := []byte("prefix")
	data := append(append([]byte{}, prefix...), audiotest.Fixture{Data: []byte{1, 2, 3, 4}}.Bytes()...)
	r := bytes.NewReader(data)
	if _, err := r.Seek(int64(len(prefix)), io.SeekStart); err != nil {
		t.Fatal(err)
	}

	size, err := Validate(r)
	if err != nil {
		t.Fatalf("Validate() error = %v, want nil", err)
	}
	if size != 4 {
		t.Errorf("Validate() = %d, want 4", size)
	}
}

func BenchmarkValidate(b *testing.B) {
	data := audiotest.Fixture{Data: make([]byte, 4096)}.Bytes()

	b.ReportAllocs()
	for b.Loop() {
		if _, err := Validate(bytes.NewReader(data)); err != nil {
			b.Fatal(err)
		}
	}
}
