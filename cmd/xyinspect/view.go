package main

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/palette"
	"github.com/charmbracelet/lipgloss"
	"github.com/midbel/xychart"
)

var (
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	borderCol = lipgloss.Color("#243141")

	boxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle    = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(baseDimFg)
	selectedStyle = lipgloss.NewStyle().Bold(true)
)

var heat = palette.RGBGradient{
	Colors: []color.RGBA{
		{R: 0x44, G: 0x01, B: 0x54, A: 0xff},
		{R: 0x3b, G: 0x52, B: 0x8b, A: 0xff},
		{R: 0x21, G: 0x90, B: 0x8d, A: 0xff},
		{R: 0x5d, G: 0xc9, B: 0x63, A: 0xff},
		{R: 0xfd, G: 0xe7, B: 0x25, A: 0xff},
	},
}

const heatWidth = 12

func (m model) View() string {
	title := m.chart.Title
	if title == "" {
		title = "xyinspect"
	}
	var parts []string
	parts = append(parts, titleStyle.Render(title))
	parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top,
		boxStyle.Render(m.viewLegend()),
		boxStyle.Render(m.viewValues()),
	))
	parts = append(parts, dimStyle.Render(m.status))
	parts = append(parts, dimStyle.Render(m.viewHelp()))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m model) viewLegend() string {
	var lines []string
	for i, it := range m.res.Legend {
		var (
			cursor = "  "
			swatch = lipgloss.NewStyle().Foreground(lipgloss.Color(it.Color)).Render("■")
			label  = it.Label
		)
		if i == m.selected {
			cursor = "▸ "
			label = selectedStyle.Render(label)
		}
		if !it.IsSeriesVisible {
			label = dimStyle.Render(it.Label + " (hidden)")
		}
		lines = append(lines, cursor+swatch+" "+label)
	}
	if len(lines) == 0 {
		return dimStyle.Render("no series")
	}
	return strings.Join(lines, "\n")
}

func (m model) viewValues() string {
	values := m.values()
	if len(values) == 0 {
		return dimStyle.Render("no values")
	}
	var (
		lines    []string
		lo, hi   = valueRange(values)
		item, ok = m.current()
	)
	for _, v := range values {
		if v.IsXValue {
			lines = append(lines, titleStyle.Render("x = "+v.Value))
			continue
		}
		name := v.Name
		if v.Accessor == xychart.AccessorY0 {
			name += " (y0)"
		}
		row := heatBar(v.Value, lo, hi) + " " + name + ": " + v.Value
		if ok && v.SeriesKey == item.Key {
			row = selectedStyle.Render(row)
		}
		lines = append(lines, row)
	}
	return strings.Join(lines, "\n")
}

func (m model) viewHelp() string {
	var list []string
	for _, b := range keys.help() {
		h := b.Help()
		list = append(list, h.Key+" "+h.Desc)
	}
	return strings.Join(list, " • ")
}

func valueRange(values []xychart.TooltipValue) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if v.IsXValue {
			continue
		}
		f, err := strconv.ParseFloat(v.Value, 64)
		if err != nil {
			continue
		}
		lo, hi = min(lo, f), max(hi, f)
	}
	return lo, hi
}

// heatBar draws a bar whose length and color follow the position of str
// between lo and hi.
func heatBar(str string, lo, hi float64) string {
	f, err := strconv.ParseFloat(str, 64)
	if err != nil || math.IsInf(lo, 0) {
		return strings.Repeat(" ", heatWidth)
	}
	ratio := 1.0
	if hi > lo {
		ratio = (f - lo) / (hi - lo)
	}
	var (
		n   = max(1, int(math.Round(ratio*heatWidth)))
		col = xychart.HexColor(heat.Map(ratio))
		bar = lipgloss.NewStyle().Foreground(lipgloss.Color(col)).Render(strings.Repeat("█", n))
	)
	return bar + strings.Repeat(" ", heatWidth-n)
}
