// SPDX-License-Identifier: EPL-2.0

// Command wav2msu converts 16-bit 44.1kHz stereo WAV files to MSU1 audio.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ik5/wav2msu"
	"github.com/ik5/wav2msu/formats/msu"
	"github.com/ik5/wav2msu/formats/wav"
)

const version = "0.2.0"

const usage = "Usage: wav2msu [-o outfile] [-l looppoint] [-i introfile] [-n] [-v] FILE.wav\n"

const help = "wav2msu " + version + "\n\n" +
	usage +
	"Converts wave-files to a MSU1-compatible format.\n" +
	"Input is required to be a RIFF WAVE file in 16bit, 44.1kHz, 2ch PCM format.\n" +
	"Set filename to '-' to read from stdin.\n\n" +
	"Arguments:\n" +
	"  -i <file.wav>            Put <file.wav> before the main input file.\n" +
	"  -l <looppoint>           Set sample (relative to beginning of input file)\n" +
	"                           from which to loop, decimal or hexadecimal (0xabcd)\n" +
	"  -o <outfile.pcm>         Outputs to given filename, default is stdout\n" +
	"  -n                       Validate and describe the input, write nothing\n" +
	"  -v                       Verbose logging\n" +
	"  -version                 Print version\n" +
	"  -h                       Print this help\n"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type config struct {
	output    string
	loopPoint string
	intro     string
	input     string
	inspect   bool
	verbose   bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		cfg         config
		showHelp    bool
		showVersion bool
	)

	fs := flag.NewFlagSet("wav2msu", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }

	fs.StringVar(&cfg.output, "o", "", "Output file (default stdout)")
	fs.StringVar(&cfg.loopPoint, "l", "0", "Loop point in frames, decimal or 0x-prefixed hexadecimal")
	fs.StringVar(&cfg.intro, "i", "", "Intro WAV file to put before the main input")
	fs.BoolVar(&cfg.inspect, "n", false, "Validate and describe the input without writing")
	fs.BoolVar(&cfg.verbose, "v", false, "Verbose logging")
	fs.BoolVar(&showVersion, "version", false, "Display version information")
	fs.BoolVar(&showHelp, "h", false, "Print help")

	positional, err := parseArgs(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprint(stdout, help)
			return 0
		}
		return 1
	}

	if showHelp {
		fmt.Fprint(stdout, help)
		return 0
	}
	if showVersion {
		fmt.Fprintf(stdout, "wav2msu version %s\n", version)
		return 0
	}

	switch len(positional) {
	case 0:
		fmt.Fprint(stdout, help)
		return 0
	case 1:
		cfg.input = positional[0]
	default:
		fmt.Fprintln(stderr, "Too many input files.")
		fmt.Fprint(stderr, usage)
		return 1
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))

	if err := convert(cfg, stdin, stdout, stderr, logger); err != nil {
		fmt.Fprintf(stderr, "wav2msu: %v\n", err)
		return 1
	}

	return 0
}

// parseArgs accepts flags before and after the input file, the way getopt
// permutes arguments. Everything after "--" is positional.
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string

	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}

		rest := fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}

		consumed := len(args) - len(rest)
		if consumed > 0 && args[consumed-1] == "--" {
			return append(positional, rest...), nil
		}

		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

func convert(cfg config, stdin io.Reader, stdout, stderr io.Writer, logger *slog.Logger) error {
	loopPoint, err := wav2msu.ParseLoopPoint(cfg.loopPoint)
	if err != nil {
		return err
	}

	opts := wav2msu.Options{LoopPoint: loopPoint, Logger: logger}

	var intro io.Reader
	if cfg.intro != "" {
		f, err := os.Open(cfg.intro)
		if err != nil {
			return fmt.Errorf("can't open %s: %w", cfg.intro, err)
		}
		defer f.Close()
		intro = f
		opts.Intro = f
	}

	var in io.Reader
	if cfg.input == "-" {
		fmt.Fprintln(stderr, "wav2msu: Reading from stdin.")
		in = stdin
	} else {
		f, err := os.Open(cfg.input)
		if err != nil {
			return fmt.Errorf("can't open %s: %w", cfg.input, err)
		}
		defer f.Close()
		in = f
	}

	if cfg.inspect {
		describe(logger, "intro", intro)
		describe(logger, "input", in)
	}

	conv, err := wav2msu.NewConversion(in, opts)
	if err != nil {
		switch {
		case errors.Is(err, wav2msu.ErrIntroInvalid):
			hint(logger, cfg.intro, intro, err)
		case errors.Is(err, wav2msu.ErrInputInvalid):
			hint(logger, cfg.input, in, err)
		}
		return err
	}

	size := int64(msu.HeaderSize) + int64(conv.IntroSize()) + int64(conv.DataSize())

	if cfg.inspect {
		logger.Info("conversion valid",
			slog.Int("loop_point", int(conv.LoopPoint())),
			slog.Int64("output_bytes", size))
		return nil
	}

	out := stdout
	if cfg.output != "" {
		f, err := os.Create(cfg.output)
		if err != nil {
			return fmt.Errorf("can't open %s: %w", cfg.output, err)
		}
		defer f.Close()
		out = f
	}

	n, err := conv.WriteTo(out)
	if err != nil {
		return err
	}

	if f, ok := out.(*os.File); ok && cfg.output != "" {
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing %s: %w", cfg.output, err)
		}
	}

	logger.Debug("wrote output",
		slog.String("path", cfg.output),
		slog.Int64("bytes", n),
		slog.Int64("expected_bytes", size))

	return nil
}

// describe logs the chunk-level view of r when it can be inspected without
// disturbing the validator.
func describe(logger *slog.Logger, name string, r io.Reader) {
	rs, ok := r.(io.ReadSeeker)
	if !ok || !wav.NewStream(r).CanSeek() {
		return
	}

	info, err := wav.Probe(rs)
	if err != nil {
		logger.Warn("cannot inspect "+name, slog.Any("error", err))
		return
	}
	logger.Info(name, slog.String("format", info.String()))
}

// hint explains a data marker failure on a file that is otherwise a usable
// WAV with extra chunks in front of its samples.
func hint(logger *slog.Logger, path string, r io.Reader, err error) {
	if !errors.Is(err, wav.ErrDataMarkerMissing) {
		return
	}

	rs, ok := r.(io.ReadSeeker)
	if !ok || !wav.NewStream(r).CanSeek() {
		return
	}

	info, perr := wav.Probe(rs)
	if perr != nil || !info.Compatible() {
		return
	}

	logger.Warn("data chunk is not directly after the fmt chunk; re-save the file without metadata chunks",
		slog.String("file", path),
		slog.String("format", info.String()))
}
