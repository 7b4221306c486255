package midicolors

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// reporter renders the human-readable run summary. Colours degrade with the
// renderer's profile, so the same code serves terminals and plain files.
type reporter struct {
	buf     bytes.Buffer
	heading lipgloss.Style
	faint   lipgloss.Style
	glyphs  map[int]lipgloss.Style
	r       *lipgloss.Renderer
}

func newReporter(renderer *lipgloss.Renderer) *reporter {
	return &reporter{
		heading: renderer.NewStyle().Bold(true),
		faint:   renderer.NewStyle().Faint(true),
		glyphs:  make(map[int]lipgloss.Style),
		r:       renderer,
	}
}

func (rp *reporter) glyph(id int, s string) string {
	st, ok := rp.glyphs[id]
	if !ok {
		st = rp.r.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(id)))
		rp.glyphs[id] = st
	}
	return st.Render(s)
}

func (rp *reporter) section(title string) {
	rp.buf.WriteByte('\n')
	rp.buf.WriteString(rp.heading.Render(title))
	rp.buf.WriteByte('\n')
}

func (rp *reporter) swatch(colors []Color, s string) string {
	var b strings.Builder
	for _, c := range colors {
		b.WriteString(rp.glyph(c.ID, s))
	}
	return b.String()
}

// RenderReport returns the run summary: symbol counts, the colour catalog,
// hue buckets and pools, every assignment and a 16-wide block view of the
// final table. A nil renderer writes to os.Stdout's profile.
func RenderReport(res *Result, renderer *lipgloss.Renderer) []byte {
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	rp := newReporter(renderer)

	rp.section("Symbol counts")
	for _, key := range res.Symbols.Keys() {
		fmt.Fprintf(&rp.buf, "%d:%c %d\n", key.Category, key.Symbol, res.Symbols.Count(key))
	}

	rp.section("Available colors")
	for _, c := range Catalog(res.Palette) {
		fmt.Fprintf(&rp.buf, "%s  %.02f %.02f %.02f = %3d int=%.2f h=%.2f s=%.2f v=%.2f\n",
			rp.glyph(c.ID, "c"), c.R, c.G, c.B, c.ID, c.Intensity, c.H, c.S, c.V)
	}

	for _, pool := range []*Pool{res.Instruments, res.Percussion} {
		rp.section("Buckets (" + pool.Category.String() + ")")
		for _, b := range pool.Buckets {
			rp.buf.WriteString(rp.swatch(b, "X"))
			rp.buf.WriteByte('\n')
		}
	}

	rp.section("Pools")
	fmt.Fprintf(&rp.buf, "instruments (%d):\n%s\n", res.Instruments.Len(), rp.swatch(res.Instruments.Colors, "X"))
	fmt.Fprintf(&rp.buf, "percussion (%d):\n%s\n", res.Percussion.Len(), rp.swatch(res.Percussion.Colors, "D"))

	rp.section("Assigned")
	for _, a := range res.Table {
		name := a.Program.Name()
		if name == "" {
			name = rp.faint.Render("-")
		}
		fmt.Fprintf(&rp.buf, "%3d %s %s\n", a.Program, rp.glyph(a.Color.ID, string(a.Symbol)), name)
	}

	if len(res.Collisions) > 0 {
		rp.section(fmt.Sprintf("Collisions (%d)", len(res.Collisions)))
		for _, c := range res.Collisions {
			rp.buf.WriteString(c.String())
			rp.buf.WriteByte('\n')
		}
	}

	rp.buf.WriteByte('\n')
	for i, a := range res.Table {
		switch i {
		case 0:
			rp.buf.WriteString(rp.heading.Render("Instruments:") + "\n")
		case 128:
			rp.buf.WriteString("\n" + rp.heading.Render("Percussion:") + "\n")
		}
		if i%valuesPerLine == 0 {
			fmt.Fprintf(&rp.buf, "%3d ", a.Program.Index())
		}
		rp.buf.WriteString(rp.glyph(a.Color.ID, string(a.Symbol)))
		if i%valuesPerLine == valuesPerLine-1 {
			rp.buf.WriteByte('\n')
		}
	}
	return rp.buf.Bytes()
}

// WriteReport writes the run summary to w using a renderer bound to w, so
// colours are dropped automatically when w is not a terminal.
func WriteReport(w io.Writer, res *Result) error {
	_, err := w.Write(RenderReport(res, lipgloss.NewRenderer(w)))
	return err
}
