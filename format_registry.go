package midicolors

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
)

const (
	formatDefaultName = "c"
	defaultGenerator  = "midicolors"
	defaultPackage    = "midicolors"
)

// EmitOptions controls the generated artifact.
type EmitOptions struct {
	// Generator names the producer in the generated-code banner. Default
	// "midicolors".
	Generator string
	// Package is the package clause of the "go" format. Default "midicolors".
	Package string
}

// DefaultEmitOptions holds the fallback emitter configuration.
var DefaultEmitOptions = &EmitOptions{Generator: defaultGenerator, Package: defaultPackage}

// An emitter renders the table fully into buf before anything reaches the
// destination writer.
type emitter func(buf *bytes.Buffer, res *Result, opts *EmitOptions) error

var formatRegistry = map[string]emitter{
	formatDefaultName: emitC,
	"h":               emitC,
	"header":          emitC,
	"go":              emitGo,
	"json":            emitJSON,
	"json-compact":    emitJSONCompact,
}

// Formats returns the sorted list of artifact format names.
func Formats() []string {
	names := make([]string, 0, len(formatRegistry))
	for name := range formatRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// resolveFormat returns the emitter for name, defaulting to
// formatDefaultName when name is blank.
func resolveFormat(name string) (emitter, error) {
	key := formatDefaultName
	if strings.TrimSpace(name) != "" {
		key = strings.ToLower(strings.TrimSpace(name))
	}
	e, ok := formatRegistry[key]
	if !ok {
		return nil, fmt.Errorf("unknown format %q (use one of: %s)", key, strings.Join(Formats(), ", "))
	}
	return e, nil
}

// Emit renders res.Table in the named format and writes it to w in one call.
func Emit(w io.Writer, format string, res *Result, opts *EmitOptions) error {
	out, err := EmitBuffer(format, res, opts)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// EmitBuffer renders res.Table in the named format into memory.
func EmitBuffer(format string, res *Result, opts *EmitOptions) ([]byte, error) {
	e, err := resolveFormat(format)
	if err != nil {
		return nil, err
	}
	if res == nil || res.Table == nil {
		return nil, fmt.Errorf("nothing to emit: no assignment table")
	}
	o := emitOptionsWithDefaults(opts)
	var buf bytes.Buffer
	if err := e(&buf, res, &o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func emitOptionsWithDefaults(opts *EmitOptions) EmitOptions {
	o := *DefaultEmitOptions
	if opts != nil {
		if opts.Generator != "" {
			o.Generator = opts.Generator
		}
		if opts.Package != "" {
			o.Package = opts.Package
		}
	}
	return o
}
