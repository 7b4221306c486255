// Package midicolors assigns a terminal colour and an ASCII glyph to each of
// the 256 MIDI program slots (128 General MIDI instruments followed by 128
// percussion keys) and renders the result as a static lookup table.
//
// The colours come from the xterm 256-colour palette. Saturated colours are
// kept for instruments and the rest (minus the very dark ones) for
// percussion. Each pool is bucketed by hue, bright and dark runs alternate
// between neighbouring buckets, and the buckets are interleaved so that
// consecutive draws differ in hue and brightness. Programs sharing a glyph
// therefore end up with colours that are easy to tell apart.
//
// The run is deterministic; generating twice yields identical artifacts.
//
// Basic usage:
//
//	res, err := midicolors.Generate(nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := midicolors.Emit(os.Stdout, "c", res, nil); err != nil {
//		log.Fatal(err)
//	}
//
// Diagnostics:
//
//	opts := *midicolors.DefaultOptions
//	opts.OnCollision = func(c midicolors.Collision) { log.Print(c) }
//	res, err := midicolors.Generate(&opts)
//	if err != nil {
//		log.Fatal(err)
//	}
//	_ = midicolors.WriteReport(os.Stdout, res)
package midicolors
