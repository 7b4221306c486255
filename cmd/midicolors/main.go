// Command midicolors assigns a terminal colour and glyph to every MIDI
// program slot and writes the colour table as generated source.
//
// It is meant to run from a generate directive next to the consumer:
//
//	go run pkt.systems/midicolors/cmd/midicolors -q -o midi_symbols_256.hh
//
// and with --check in CI to catch a stale table.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"pkt.systems/midicolors"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

const (
	progName      = "midicolors"
	defaultOutput = "midi_symbols_256.hh"
)

type config struct {
	output      string
	format      string
	pkg         string
	stride      int
	color       string
	quiet       bool
	audition    string
	check       bool
	listFormats bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "%s: %v\n", progName, err)
		return exitUsage
	}

	if cfg.listFormats {
		fmt.Fprintln(stdout, strings.Join(midicolors.Formats(), "\n"))
		return exitOK
	}

	opts := *midicolors.DefaultOptions
	opts.Stride = cfg.stride
	opts.OnCollision = func(c midicolors.Collision) {
		fmt.Fprintf(stderr, "%s: color/symbol collision: %s\n", progName, c)
	}
	res, err := midicolors.Generate(&opts)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", progName, err)
		return exitError
	}

	out, err := midicolors.EmitBuffer(cfg.format, res, &midicolors.EmitOptions{Package: cfg.pkg})
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", progName, err)
		return exitUsage
	}

	// The report shares stdout with the artifact only when the artifact goes
	// elsewhere.
	reportTo := stdout
	if cfg.output == "-" {
		reportTo = stderr
	}
	if !cfg.quiet {
		renderer, err := newRenderer(reportTo, cfg.color)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", progName, err)
			return exitUsage
		}
		if _, err := reportTo.Write(midicolors.RenderReport(res, renderer)); err != nil {
			fmt.Fprintf(stderr, "%s: write error: %v\n", progName, err)
			return exitError
		}
	}

	if cfg.check {
		return checkOutput(cfg.output, out, stderr)
	}

	if err := writeOutput(cfg.output, out, stdout); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", progName, err)
		return exitError
	}

	if cfg.audition != "" {
		var mid bytes.Buffer
		if err := midicolors.WriteAudition(&mid, res); err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", progName, err)
			return exitError
		}
		if err := writeOutput(cfg.audition, mid.Bytes(), stdout); err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", progName, err)
			return exitError
		}
	}
	return exitOK
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := pflag.NewFlagSet(progName, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&cfg.output, "output", "o", defaultOutput, "write the generated table to `file` (- for stdout)")
	fs.StringVarP(&cfg.format, "format", "f", "c", "artifact format (see --list-formats)")
	fs.StringVar(&cfg.pkg, "package", "midicolors", "package clause for the go format")
	fs.IntVar(&cfg.stride, "stride", midicolors.DefaultOptions.Stride, "pool cursor stride between draws")
	fs.StringVar(&cfg.color, "color", "auto", "colorize the report: auto, always or never")
	fs.BoolVarP(&cfg.quiet, "quiet", "q", false, "do not print the report")
	fs.StringVar(&cfg.audition, "audition", "", "also write a MIDI `file` that plays every slot in table order")
	fs.BoolVar(&cfg.check, "check", false, "compare with the existing output instead of writing it; exit 1 on drift")
	fs.BoolVar(&cfg.listFormats, "list-formats", false, "print the artifact formats and exit")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [flags]\n", progName)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return cfg, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return cfg, nil
}

// newRenderer returns a report renderer for w in the requested colour mode.
func newRenderer(w io.Writer, mode string) (*lipgloss.Renderer, error) {
	renderer := lipgloss.NewRenderer(w)
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		if isTerminal(w) {
			renderer.SetColorProfile(termenv.ANSI256)
		} else {
			renderer.SetColorProfile(termenv.Ascii)
		}
	case "always":
		renderer.SetColorProfile(termenv.ANSI256)
	case "never":
		renderer.SetColorProfile(termenv.Ascii)
	default:
		return nil, fmt.Errorf("unknown color mode %q (use one of: auto, always, never)", mode)
	}
	return renderer, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func checkOutput(path string, want []byte, stderr io.Writer) int {
	if path == "-" {
		fmt.Fprintf(stderr, "%s: --check needs a file output\n", progName)
		return exitUsage
	}
	got, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", progName, err)
		return exitError
	}
	if !bytes.Equal(got, want) {
		fmt.Fprintf(stderr, "%s: %s is out of date\n", progName, path)
		return exitError
	}
	return exitOK
}
