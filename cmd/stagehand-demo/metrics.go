package main

import (
	"fmt"
	"math"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const metricsWindow = 40

var metricsBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))

type metricsTickMsg time.Time

// metricsModel shows a synthetic load chart. It keeps ticking while a
// sheet covers it, which makes the independent lifecycle of push content
// and modal content visible.
type metricsModel struct {
	samples []float64
	phase   float64
	width   int
	height  int
}

func newMetricsModel() tea.Model {
	return metricsModel{width: 60, height: 10}
}

func metricsTick() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return metricsTickMsg(t)
	})
}

func (m metricsModel) Init() tea.Cmd { return metricsTick() }

func (m metricsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case metricsTickMsg:
		m.phase += 0.4
		// Deterministic wave, no need for randomness in a demo.
		value := 50 + 35*math.Sin(m.phase) + 10*math.Sin(m.phase*2.7)
		m.samples = append(m.samples, value)
		if len(m.samples) > metricsWindow {
			m.samples = m.samples[len(m.samples)-metricsWindow:]
		}
		return m, metricsTick()
	}
	return m, nil
}

func (m metricsModel) View() string {
	if len(m.samples) == 0 {
		return hintStyle.Render("collecting samples...")
	}

	chartWidth := min(m.width-2, metricsWindow*2)
	chartHeight := m.height - 4
	if chartWidth < 10 {
		chartWidth = 10
	}
	if chartHeight < 4 {
		chartHeight = 4
	}

	bc := barchart.New(chartWidth, chartHeight,
		barchart.WithBarGap(1),
		barchart.WithBarWidth(1),
		barchart.WithNoAxis(),
	)
	for _, v := range m.samples {
		bc.Push(barchart.BarData{
			Label: "",
			Values: []barchart.BarValue{
				{Name: "load", Value: v, Style: metricsBarStyle},
			},
		})
	}
	bc.Draw()

	latest := m.samples[len(m.samples)-1]
	return lipgloss.JoinVertical(lipgloss.Left,
		headlineStyle.Render(fmt.Sprintf("Synthetic load · current %.0f", latest)),
		bc.View(),
		hintStyle.Render("esc back"),
	)
}
