// Package tui is the terminal rendering and control collaborator: it
// schedules simulation frames from its tick loop, feeds pointer and
// resize input, and exposes the force parameters as sliders.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/particlefield/internal/config"
	"github.com/san-kum/particlefield/internal/forces"
	"github.com/san-kum/particlefield/internal/metrics"
	"github.com/san-kum/particlefield/internal/sim"
	"github.com/san-kum/particlefield/internal/viz"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

// worldScale maps one braille sub-pixel to this many world units, so
// a typical terminal spans a viewport the default force radii were
// tuned for.
const worldScale = 6.0

// chromeRows is the screen estate reserved above and below the canvas
// for the header, status, sparkline, sliders and help line.
const chromeRows = 11

var palette = []string{"#00ccff", "#ff00ff", "#00ff88", "#ffaa00", "#ff4444"}

type slider struct {
	name string
	min  float64
	max  float64
	step float64
	get  func(p forces.Params) float64
	set  func(p *forces.Params, v float64)
}

func sliders() []slider {
	return []slider{
		{"attraction radius", 50, 300, 10,
			func(p forces.Params) float64 { return p.AttractionRadius },
			func(p *forces.Params, v float64) { p.AttractionRadius = v }},
		{"attraction strength", 5000, 100000, 5000,
			func(p forces.Params) float64 { return p.AttractionStrength },
			func(p *forces.Params, v float64) { p.AttractionStrength = v }},
		{"push radius", 10, 300, 10,
			func(p forces.Params) float64 { return p.PushRadius },
			func(p *forces.Params, v float64) { p.PushRadius = v }},
		{"push strength", 0, 100000, 5000,
			func(p forces.Params) float64 { return p.PushStrength },
			func(p *forces.Params, v float64) { p.PushStrength = v }},
		{"particle radius", 1, 30, 1,
			func(p forces.Params) float64 { return p.ParticleRadius },
			func(p *forces.Params, v float64) { p.ParticleRadius = v }},
	}
}

type model struct {
	cfg   *config.Config
	sim   *sim.Simulation
	sched *sim.ManualScheduler
	ke    *metrics.KineticEnergy

	sliders  []slider
	cursor   int
	count    int
	colorIdx int

	width, height int // terminal cells
	canvasH       int
	started       bool
	paused        bool
	start         time.Time
	lastFrame     time.Time
	fps           float64
	err           error
}

func New(cfg *config.Config) (*model, error) {
	s, err := sim.New(cfg)
	if err != nil {
		return nil, err
	}
	ke := metrics.NewKineticEnergy(60)
	s.AddObserver(ke)

	return &model{
		cfg:     cfg,
		sim:     s,
		sched:   sim.NewManualScheduler(),
		ke:      ke,
		sliders: sliders(),
		count:   cfg.Particles,
		width:   80,
		height:  24,
		start:   time.Now(),
	}, nil
}

// Run starts the bubbletea program.
func Run(cfg *config.Config) error {
	m, err := New(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = p.Run()
	return err
}

func (m *model) Init() tea.Cmd { return tick() }

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// viewport returns the world extent of the current canvas.
func (m *model) viewport() (w, h float64) {
	rows := m.canvasRows()
	return float64(m.width*2) * worldScale, float64(rows*4) * worldScale
}

func (m *model) canvasRows() int {
	rows := m.height - chromeRows
	if rows < 4 {
		rows = 4
	}
	return rows
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.canvasH = m.canvasRows()
		if m.started {
			w, h := m.viewport()
			m.sim.Post(sim.Resized{Width: w, Height: h})
		}
		return m, nil

	case tea.MouseMsg:
		if m.started {
			w, h := m.viewport()
			// mouse cell -> sub-pixel center -> world
			sx := float64(msg.X*2 + 1)
			sy := float64((msg.Y-1)*4 + 2) // canvas starts below the header row
			m.sim.Post(sim.PointerMoved{
				X: sx*worldScale - w/2,
				Y: h/2 - sy*worldScale,
			})
		}
		return m, nil

	case tickMsg:
		if !m.started {
			m.canvasH = m.canvasRows()
			w, h := m.viewport()
			if err := m.sim.Start(m.sched, w, h); err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.started = true
		}
		if !m.paused && m.sim.State() == sim.Running {
			now := time.Now()
			if !m.lastFrame.IsZero() {
				if dt := now.Sub(m.lastFrame).Seconds(); dt > 0 {
					m.fps = 1.0 / dt
				}
			}
			m.lastFrame = now
			m.sched.Fire(time.Since(m.start).Seconds())
		}
		return m, tick()
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.sim.Dispose()
		return m, tea.Quit
	case " ", "p":
		m.paused = !m.paused
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j", "tab":
		if m.cursor < len(m.sliders)-1 {
			m.cursor++
		}
	case "left", "h":
		m.adjust(-1)
	case "right", "l":
		m.adjust(1)
	case "n":
		m.setCount(m.count - 100)
	case "m":
		m.setCount(m.count + 100)
	case "c":
		m.colorIdx = (m.colorIdx + 1) % len(palette)
		m.sim.Post(sim.ColorChanged{Color: palette[m.colorIdx]})
	}
	return m, nil
}

func (m *model) adjust(dir float64) {
	s := m.sliders[m.cursor]
	p := m.sim.Params()
	v := s.get(p) + dir*s.step
	if v < s.min {
		v = s.min
	}
	if v > s.max {
		v = s.max
	}
	s.set(&p, v)
	m.sim.Post(sim.ParamsChanged{Params: p})
}

func (m *model) setCount(n int) {
	if n < 0 {
		n = 0
	}
	m.count = n
	m.sim.Post(sim.CountChanged{Count: n})
}

func (m *model) View() string {
	if !m.started {
		return dim.Render("starting...")
	}

	var b strings.Builder
	b.WriteString(cyan.Render("particlefield") +
		dim.Render(fmt.Sprintf("  %d particles  %.0f fps  move mouse to push", m.count, m.fps)))
	b.WriteString("\n")

	w, h := m.viewport()
	canvas := viz.NewCanvas(m.width, m.canvasH)
	viz.DrawField(canvas, m.sim.Renderables(), w, h, m.sim.Params().ParticleRadius)
	b.WriteString(canvas.Render())

	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.sliderPanel())
	b.WriteString(dim.Render("  tab/↑↓ select  ←→ adjust  n/m count  c color  space pause  q quit"))
	return b.String()
}

func (m *model) statusLine() string {
	state := green.Render("running")
	if m.paused {
		state = yellow.Render("paused")
	}
	line := fmt.Sprintf("%s  ke %.0f", state, m.ke.Value())
	if hist := m.ke.History(); len(hist) > 8 {
		line += "\n" + dim.Render(asciigraph.Plot(hist, asciigraph.Height(2), asciigraph.Width(m.width-10)))
	}
	return line
}

func (m *model) sliderPanel() string {
	var b strings.Builder
	p := m.sim.Params()
	for i, s := range m.sliders {
		marker := "  "
		style := dim
		if i == m.cursor {
			marker = "> "
			style = white
		}
		v := s.get(p)
		frac := (v - s.min) / (s.max - s.min)
		filled := int(frac * 20)
		bar := strings.Repeat("█", filled) + strings.Repeat("░", 20-filled)
		b.WriteString(style.Render(fmt.Sprintf("%s%-20s %s %8.0f", marker, s.name, bar, v)))
		b.WriteString("\n")
	}
	return b.String()
}
