package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/chronox/pkg/chrono"
)

// Colours follow the control center palette
var (
	colorPrimary   = lipgloss.Color("#8B5CF6")
	colorSecondary = lipgloss.Color("#06B6D4")
	colorWarning   = lipgloss.Color("#F59E0B")
	colorSuccess   = lipgloss.Color("#10B981")
	colorMuted     = lipgloss.Color("#6B7280")
)

type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	ok      lipgloss.Style
	warn    lipgloss.Style
	muted   lipgloss.Style
	weekend lipgloss.Style
}

// newStyles renders for w, so output that is not a terminal stays plain
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(colorPrimary),
		label:   r.NewStyle().Foreground(colorSecondary),
		ok:      r.NewStyle().Foreground(colorSuccess),
		warn:    r.NewStyle().Bold(true).Foreground(colorWarning),
		muted:   r.NewStyle().Foreground(colorMuted),
		weekend: r.NewStyle().Foreground(colorWarning),
	}
}

// field prints one "label: value" line with the label padded to width
func (s styles) field(w io.Writer, label, value string) {
	fmt.Fprintf(w, "%s %s\n", s.label.Render(fmt.Sprintf("%-12s", label+":")), value)
}

// describe renders v with its clock, or for a zoned value with abbreviation,
// offset and zone name
func describe(r *chrono.Resolver, v chrono.Value) (string, error) {
	switch v.Kind {
	case chrono.KindPoint:
		return v.String() + " " + v.Clock.String(), nil
	case chrono.KindZoned:
		sys, err := chrono.Convert(r, v, chrono.Target{Kind: chrono.KindPoint, Clock: chrono.ClockSystem, Unit: chrono.UnitSecond})
		if err != nil {
			return "", err
		}
		info := v.Zone.Lookup(sys.Count)
		return v.String() + " " + info.Abbrev + " (" + formatOffset(v.Offset) + ") " + v.Zone.Name(), nil
	}
	return v.String(), nil
}

// formatOffset renders seconds east of UTC as +HH:MM, adding :SS when needed
func formatOffset(sec int64) string {
	sign := "+"
	if sec < 0 {
		sign, sec = "-", -sec
	}
	s := sign + pad2(sec/3600) + ":" + pad2(sec/60%60)
	if sec%60 != 0 {
		s += ":" + pad2(sec%60)
	}
	return s
}

func pad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}
