package main

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/midbel/xychart"
)

type keyMap struct {
	Left   key.Binding
	Right  key.Binding
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous x"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next x"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "previous series"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "next series"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "show/hide series"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Toggle, k.Quit}
}

type model struct {
	width  int
	height int

	chart xychart.Chart
	res   xychart.Result
	xs    []any

	cursor   int
	selected int
	status   string
}

func newModel(chart xychart.Chart) (model, error) {
	m := model{
		chart: chart,
	}
	if err := m.compute(); err != nil {
		return m, err
	}
	m.status = fmt.Sprintf("%d series, %d x values", len(m.res.Legend), len(m.xs))
	return m, nil
}

// compute runs the pipeline again and keeps the crosshair in the new
// range of x values.
func (m *model) compute() error {
	res, err := m.chart.Compute()
	if err != nil {
		return err
	}
	m.res = res
	m.xs = res.Geometries.Index.Keys()
	if xs := res.Geometries.XScale; xs != nil {
		slices.SortStableFunc(m.xs, func(a, b any) int {
			return cmp.Compare(xs.Scale(a), xs.Scale(b))
		})
	}
	m.cursor = min(m.cursor, max(len(m.xs)-1, 0))
	m.selected = min(m.selected, max(len(m.res.Legend)-1, 0))
	return nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Left):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Right):
			if m.cursor < len(m.xs)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Up):
			if m.selected > 0 {
				m.selected--
			}
		case key.Matches(msg, keys.Down):
			if m.selected < len(m.res.Legend)-1 {
				m.selected++
			}
		case key.Matches(msg, keys.Toggle):
			m.toggle()
		}
	}
	return m, nil
}

func (m *model) toggle() {
	item, ok := m.current()
	if !ok {
		return
	}
	prev := m.chart.Deselected
	m.chart.Deselected = xychart.UpdateDeselectedDataSeries(prev, item.Value)
	if err := m.compute(); err != nil {
		m.chart.Deselected = prev
		m.status = "error: " + err.Error()
		return
	}
	state := "visible"
	if xychart.FindDataSeriesByColorValues(m.chart.Deselected, item.Value) >= 0 {
		state = "hidden"
	}
	m.status = fmt.Sprintf("%s: %s", item.Label, state)
}

func (m model) current() (xychart.LegendItem, bool) {
	if m.selected < 0 || m.selected >= len(m.res.Legend) {
		return xychart.LegendItem{}, false
	}
	return m.res.Legend[m.selected], true
}

// values gives the tooltip values at the crosshair.
func (m model) values() []xychart.TooltipValue {
	if m.cursor >= len(m.xs) {
		return nil
	}
	var (
		x  = m.xs[m.cursor]
		xs = m.res.Geometries.XScale
		px = xs.Scale(x) + xs.Bandwidth()/2
	)
	values := xychart.TooltipValuesAt(m.res.Geometries.Index, x, px, -1, m.chart.Specs, nil)
	if len(values) > 0 && values[0].IsXValue {
		values[0].Value = xychart.XValueFormatter(xs, time.RFC3339)(x)
	}
	return values
}
