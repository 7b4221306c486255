package midicolors

import (
	"fmt"
	"io"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	auditionTicks    = 480 // ticks per quarter note
	auditionTempo    = 120.0
	auditionKey      = 60 // middle C for melodic programs
	auditionVelocity = 100
	melodicChannel   = 0
	drumChannel      = 9
)

// Audition builds a MIDI file that walks the table in program order: every
// melodic program plays one quarter note on channel 1 after a program
// change, and every named percussion key one quarter note on channel 10.
// Each slot carries a lyric event naming its program, glyph and colour, so a
// karaoke-capable player shows the glyph of what is sounding.
func Audition(res *Result) (*smf.SMF, error) {
	if res == nil || res.Table == nil {
		return nil, fmt.Errorf("nothing to audition: no assignment table")
	}
	s := smf.NewSMF1()
	s.TimeFormat = smf.MetricTicks(auditionTicks)

	track := smf.Track{}
	track = append(track, smf.Event{Delta: 0, Message: smf.Message(smf.MetaTrackSequenceName("midicolors audition"))})
	track = append(track, smf.Event{Delta: 0, Message: smf.Message(smf.MetaTempo(auditionTempo))})
	track = append(track, smf.Event{Delta: 0, Message: smf.Message(smf.MetaTimeSig(4, 4, 24, 8))})

	for _, a := range res.Table {
		ch, key := uint8(melodicChannel), uint8(auditionKey)
		if a.Program.IsPercussion() {
			if a.Program.Name() == "" {
				continue
			}
			ch, key = drumChannel, a.Program.Index()
		}
		label := fmt.Sprintf("%d %c %d %s", a.Program, a.Symbol, a.Color.ID, a.Program.Name())
		track = append(track, smf.Event{Delta: 0, Message: smf.Message(smf.MetaLyric(label))})
		if !a.Program.IsPercussion() {
			track = append(track, smf.Event{Delta: 0, Message: smf.Message(midi.ProgramChange(ch, a.Program.Index()))})
		}
		track = append(track, smf.Event{Delta: 0, Message: smf.Message(midi.NoteOn(ch, key, auditionVelocity))})
		track = append(track, smf.Event{Delta: auditionTicks, Message: smf.Message(midi.NoteOff(ch, key))})
	}

	track = append(track, smf.Event{Delta: 0, Message: smf.EOT})
	if err := s.Add(track); err != nil {
		return nil, fmt.Errorf("error adding audition track: %w", err)
	}
	return s, nil
}

// WriteAudition writes the audition MIDI file for res to w.
func WriteAudition(w io.Writer, res *Result) error {
	s, err := Audition(res)
	if err != nil {
		return err
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("error writing MIDI file: %w", err)
	}
	return nil
}
