package svgout

import (
	"fmt"
	"strings"

	"github.com/midbel/xychart/curve"
)

type LineStyle int

const (
	StyleStraight LineStyle = iota
	StyleDotted
	StyleDashed
)

func (s *LineStyle) UnmarshalText(b []byte) error {
	switch str := string(b); str {
	case "", "straight":
		*s = StyleStraight
	case "dotted":
		*s = StyleDotted
	case "dashed":
		*s = StyleDashed
	default:
		return fmt.Errorf("%s: unknown line style", str)
	}
	return nil
}

func (s LineStyle) dashArray() string {
	switch s {
	case StyleDotted:
		return "1,5"
	case StyleDashed:
		return "10,5"
	default:
		return ""
	}
}

type Style struct {
	Line struct {
		Style LineStyle
		Width float64
	}
	Fill struct {
		Opacity float64
	}
	Text struct {
		Size     float64
		Color    string
		Families []string
	}
	Marker Marker
}

func DefaultStyle() Style {
	var s Style
	s.Line.Width = 1
	s.Fill.Opacity = 0.6
	s.Text.Size = FontSize
	s.Text.Color = "black"
	s.Text.Families = []string{"sans-serif"}
	s.Marker = Circle
	return s
}

func (s Style) stroke(color string, opacity float64) string {
	parts := []string{
		"fill:none",
		"stroke:" + color,
		"stroke-width:" + num(s.Line.Width),
		"stroke-opacity:" + num(opacity),
	}
	if arr := s.Line.Style.dashArray(); arr != "" {
		parts = append(parts, "stroke-dasharray:"+arr)
	}
	return strings.Join(parts, ";")
}

func (s Style) fill(color string, opacity float64) string {
	return fmt.Sprintf("fill:%s;fill-opacity:%s;stroke:none", color, num(s.Fill.Opacity*opacity))
}

func (s Style) text() string {
	return fmt.Sprintf("font-size:%spx;fill:%s;font-family:%s", num(s.Text.Size), s.Text.Color, strings.Join(s.Text.Families, ","))
}

func num(f float64) string {
	return curve.FormatNumber(f)
}

func translate(x, y float64) string {
	return fmt.Sprintf("translate(%s,%s)", num(x), num(y))
}
