package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/heatsim/internal/ftcs"
	"github.com/san-kum/heatsim/internal/thermo"
)

const (
	chartHeight = 14
	frameRate   = 30
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// LiveModel marches the FTCS recurrence one step per frame and renders the
// current profile.
type LiveModel struct {
	cfg     thermo.Config
	mat     *ftcs.Tridiag
	cur     thermo.Profile
	next    thermo.Profile
	b       []float64
	step    int
	t       float64
	running bool
	name    string
}

func NewLive(name string, cfg thermo.Config) (LiveModel, error) {
	if err := cfg.Validate(); err != nil {
		return LiveModel{}, err
	}
	mat, err := ftcs.Assemble(cfg.Grid.Nodes, cfg.Stepping(), cfg.Right.Kind)
	if err != nil {
		return LiveModel{}, err
	}

	m := LiveModel{
		cfg:     cfg,
		mat:     mat,
		next:    make(thermo.Profile, cfg.Grid.Nodes),
		b:       make([]float64, cfg.Grid.Nodes),
		running: true,
		name:    name,
	}
	m.cur = m.initialProfile()
	return m, nil
}

func (m LiveModel) initialProfile() thermo.Profile {
	p := make(thermo.Profile, m.cfg.Grid.Nodes)
	for i, x := range m.cfg.Grid.Points() {
		p[i] = m.cfg.Initial(x)
	}
	return p
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m LiveModel) Init() tea.Cmd { return tick() }

func (m LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.cur = m.initialProfile()
			m.step = 0
			m.t = 0
			m.running = true
		}
	case TickMsg:
		if m.running && m.step < m.cfg.Time.Steps {
			ftcs.Injection(m.b, m.cfg.Stepping(), m.cfg.Grid.Spacing(), m.t, m.cfg.Left, m.cfg.Right)
			m.mat.MulVecAdd(m.next, m.cur, m.b)
			m.cur, m.next = m.next, m.cur
			m.t += m.cfg.Time.Dt()
			m.step++
		}
		return m, tick()
	}
	return m, nil
}

func (m LiveModel) View() string {
	var sb strings.Builder

	sb.WriteString(headerStyle.Render(fmt.Sprintf("heatsim live — %s", m.name)))
	sb.WriteString("\n")
	sb.WriteString(graphStyle.Render(ProfileChart(m.cur, "temperature across the bar", chartHeight)))
	sb.WriteString("\n")

	s := m.cfg.Stepping()
	rows := []struct {
		label string
		value string
	}{
		{"time", fmt.Sprintf("%.1f / %.1f", m.t, m.cfg.Time.Duration)},
		{"step", fmt.Sprintf("%d / %d", m.step, m.cfg.Time.Steps)},
		{"stepping s", fmt.Sprintf("%.4f", s)},
		{"peak |T|", fmt.Sprintf("%.4f", m.cur.MaxAbs())},
	}
	for _, r := range rows {
		sb.WriteString(labelStyle.Render(r.label))
		sb.WriteString(valueStyle.Render(r.value))
		sb.WriteString("\n")
	}
	if s > thermo.StableLimit {
		sb.WriteString(warnStyle.Render(fmt.Sprintf("s = %.3f exceeds the 0.5 stability bound — expect divergence", s)))
		sb.WriteString("\n")
	}
	if m.step >= m.cfg.Time.Steps {
		sb.WriteString(valueStyle.Render("done"))
		sb.WriteString("\n")
	}

	sb.WriteString(helpStyle.Render("space pause · r reset · q quit"))
	return sb.String()
}

// RunLive drives the live view until the user quits.
func RunLive(name string, cfg thermo.Config) error {
	m, err := NewLive(name, cfg)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m).Run()
	return err
}
