// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v2"

	"github.com/tfctl/builddiff/internal/builds"
	"github.com/tfctl/builddiff/internal/config"
	"github.com/tfctl/builddiff/internal/log"
)

// Presenter renders new builds to W.
type Presenter struct {
	W io.Writer
	// Format is one of text, json or yaml. Empty means text.
	Format string
	// RequestedBy includes the " by <name>" suffix in text output.
	RequestedBy bool
	// Palette styles text blocks. The zero Palette leaves output plain.
	Palette Palette
	// Ago appends the relative age of parsed queue times.
	Ago bool
	// Now is the reference time for Ago. Defaults to time.Now.
	Now func() time.Time
}

// Emit writes infos in the configured format. Text output of zero builds is
// empty.
func (p Presenter) Emit(infos []builds.Info) error {
	w := p.W
	if w == nil {
		w = os.Stdout
	}

	switch p.Format {
	case "json":
		if infos == nil {
			infos = []builds.Info{}
		}
		out, err := json.MarshalIndent(infos, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case "yaml":
		if infos == nil {
			infos = []builds.Info{}
		}
		out, err := yaml.Marshal(infos)
		if err != nil {
			return fmt.Errorf("failed to marshal yaml: %w", err)
		}
		_, err = w.Write(out)
		return err
	default:
		for i, info := range infos {
			if err := p.writeBlock(w, i, info); err != nil {
				return err
			}
		}
		return nil
	}
}

// writeBlock writes the text block of the i'th build. Detail lines alternate
// between the even and odd palette colors.
func (p Presenter) writeBlock(w io.Writer, i int, info builds.Info) error {
	title := p.Palette.paint(p.Palette.Title, fmt.Sprintf("'%s' at '%s'", info.Definition, info.QueueTime))
	if p.Ago && !info.Queued.IsZero() {
		title += " (" + p.age(info.Queued) + ")"
	}

	requestedBy := ""
	if p.RequestedBy {
		requestedBy = info.ByClause()
	}

	body := p.Palette.Even
	if i%2 == 1 {
		body = p.Palette.Odd
	}

	lines := []string{
		title,
		p.Palette.paint(body, fmt.Sprintf("   Build '%s' queued%s%s", info.BuildNumber, requestedBy, info.ForClause())),
		p.Palette.paint(body, fmt.Sprintf("   Rollout Type: %s, Select: %s", info.RolloutType, info.Select)),
	}
	if info.OverridesValidation() {
		lines = append(lines, p.Palette.paint(body, fmt.Sprintf("   Validation Duration Override: %sh", info.Hours)))
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func (p Presenter) age(t time.Time) string {
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	return humanize.RelTime(t, now(), "ago", "from now")
}

// Palette holds the colors of text output. A nil color leaves its lines plain.
type Palette struct {
	Title color.Color
	Even  color.Color
	Odd   color.Color
}

// Enabled reports whether any color is set.
func (pal Palette) Enabled() bool {
	return pal.Title != nil || pal.Even != nil || pal.Odd != nil
}

func (pal Palette) paint(c color.Color, s string) string {
	if c == nil {
		return s
	}
	return lipgloss.NewStyle().Foreground(c).Render(s)
}

// Colors returns the configured palette. Each of colors.title, colors.even and
// colors.odd wins when set; otherwise a default is picked for the terminal
// background so output stays readable on light and dark themes.
func Colors() Palette {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)
	return colorsFor("colors", isDark)
}

func colorsFor(key string, isDark bool) Palette {
	resolve := func(key string, light string, dark string) color.Color {
		if c, err := config.GetString(key); err == nil {
			log.Debugf("color from config: key=%s color=%s", key, c)
			return lipgloss.Color(c)
		}
		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	return Palette{
		Title: resolve(key+".title", "#b08800", "#f6be00"),
		Even:  resolve(key+".even", "#333333", "#ffffff"),
		Odd:   resolve(key+".odd", "#0088a0", "#00c8f0"),
	}
}
