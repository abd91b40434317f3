package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/rollsim/internal/grid"
	"github.com/san-kum/rollsim/internal/render"
	"github.com/san-kum/rollsim/internal/sim"
)

const (
	minFPS = 1
	maxFPS = 60
)

type TickMsg time.Time

// Player replays a frame log. Frame i > 0 is the grid after round i, so
// stats[i-1] describes it.
type Player struct {
	frames  render.Source
	stats   []sim.RoundStats
	frame   int
	fps     int
	paused  bool
	removed int
	width   int
	height  int
}

func NewPlayer(frames render.Source, stats []sim.RoundStats, fps int) Player {
	return Player{
		frames: frames,
		stats:  stats,
		fps:    clampFPS(fps),
		width:  80,
		height: 24,
	}
}

func clampFPS(fps int) int {
	return max(minFPS, min(maxFPS, fps))
}

func (m Player) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Player) Init() tea.Cmd { return m.tick() }

func (m Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case TickMsg:
		if !m.paused && m.frame < m.frames.Len()-1 {
			m = m.seek(m.frame + 1)
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Player) handleKey(msg tea.KeyMsg) (Player, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case " ":
		m.paused = !m.paused
	case "right", "l":
		m.paused = true
		m = m.seek(m.frame + 1)
	case "left", "h":
		m.paused = true
		m = m.seek(m.frame - 1)
	case "r":
		m = m.seek(0)
		m.paused = false
	case "+", "=":
		m.fps = clampFPS(m.fps * 2)
	case "-":
		m.fps = clampFPS(m.fps / 2)
	}
	return m, nil
}

// seek moves to frame i, clamped to the log, and recomputes the removal
// total up to it.
func (m Player) seek(i int) Player {
	i = max(0, min(m.frames.Len()-1, i))
	m.frame = i
	m.removed = 0
	for r := 0; r < i && r < len(m.stats); r++ {
		m.removed += m.stats[r].Removed
	}
	return m
}

func (m Player) Frame() int   { return m.frame }
func (m Player) Paused() bool { return m.paused }
func (m Player) Removed() int { return m.removed }

func (m Player) View() string {
	if m.frames.Len() == 0 {
		return Subtle.Render("no frames") + "\n"
	}
	g := m.frames.At(m.frame)

	var b strings.Builder
	b.WriteString(Title.Render("ROLLSIM") + "  " + Subtle.Render(fmt.Sprintf("%dx%d", g.Width(), g.Height())) + "\n\n")
	b.WriteString(Panel.Render(drawGrid(g)) + "\n")

	status := StatusRunning.Render("playing")
	if m.paused {
		status = StatusPaused.Render("paused")
	} else if m.frame == m.frames.Len()-1 {
		status = StatusPaused.Render("done")
	}
	b.WriteString(fmt.Sprintf("%s  %s  %s  %s  %s  %s\n",
		status,
		Metric("frame", fmt.Sprintf("%d/%d", m.frame, m.frames.Len()-1)),
		Metric("active", g.Count(grid.KindActive)),
		Metric("decaying", g.Count(grid.KindDecaying)),
		Metric("removed", m.removed),
		Metric("fps", m.fps),
	))
	b.WriteString(KeyHint.Render("space") + Subtle.Render(" pause  ") +
		KeyHint.Render("←/→") + Subtle.Render(" step  ") +
		KeyHint.Render("+/-") + Subtle.Render(" speed  ") +
		KeyHint.Render("r") + Subtle.Render(" restart  ") +
		KeyHint.Render("q") + Subtle.Render(" quit") + "\n")
	return b.String()
}

func drawGrid(g *grid.Grid) string {
	var b strings.Builder
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			b.WriteString(CellBlock(g.At(r, c)))
		}
		if r < g.Height()-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func RunPlayer(frames render.Source, stats []sim.RoundStats, fps int) error {
	_, err := tea.NewProgram(NewPlayer(frames, stats, fps), tea.WithAltScreen()).Run()
	return err
}
