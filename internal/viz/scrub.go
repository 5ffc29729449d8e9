package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/parafovea/fovea-sub006/internal/cache"
	"github.com/parafovea/fovea-sub006/internal/engine"
	"github.com/parafovea/fovea-sub006/internal/track"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

type tickMsg time.Time

// ScrubModel steps through an interpolated track one frame at a time,
// rendering the box on a Braille canvas with a motion sparkline below.
type ScrubModel struct {
	label    string
	seq      track.Sequence
	cache    *cache.FrameCache
	frame    int
	minFrame int
	maxFrame int
	fps      int
	playing  bool
	width    int
	height   int
	canvas   *Canvas
	xCenters []float64
	trail    []trailPoint

	// world bounds for mapping boxes onto the canvas
	minX, maxX, minY, maxY float64
}

func NewScrubModel(label string, seq track.Sequence, fps int) ScrubModel {
	if fps <= 0 {
		fps = 30
	}

	kfs := track.SortedKeyframes(seq.Keyframes)
	m := ScrubModel{
		label:  label,
		seq:    seq,
		cache:  cache.New(seq.Keyframes, seq.Segments),
		fps:    fps,
		width:  80,
		height: 24,
		canvas: NewCanvas(72, 16),
	}
	if len(kfs) > 0 {
		m.minFrame = kfs[0].FrameNumber
		m.maxFrame = kfs[len(kfs)-1].FrameNumber
		m.frame = m.minFrame
	}
	m.computeBounds(kfs)

	for _, box := range engine.Interpolate(seq.Keyframes, seq.Segments, seq.Visibility) {
		cx, cy := box.Center()
		m.xCenters = append(m.xCenters, cx)
		m.trail = append(m.trail, trailPoint{x: cx, y: cy, frame: box.FrameNumber})
	}
	return m
}

type trailPoint struct {
	x, y  float64
	frame int
}

func (m *ScrubModel) computeBounds(kfs []track.Keyframe) {
	if len(kfs) == 0 {
		m.maxX, m.maxY = 1, 1
		return
	}
	m.minX, m.maxX = kfs[0].X, kfs[0].X+kfs[0].Width
	m.minY, m.maxY = kfs[0].Y, kfs[0].Y+kfs[0].Height
	for _, kf := range kfs[1:] {
		m.minX = minF(m.minX, kf.X)
		m.maxX = maxF(m.maxX, kf.X+kf.Width)
		m.minY = minF(m.minY, kf.Y)
		m.maxY = maxF(m.maxY, kf.Y+kf.Height)
	}
	// 10% margin so boxes never hug the canvas edge
	padX := (m.maxX - m.minX) * 0.1
	padY := (m.maxY - m.minY) * 0.1
	if padX == 0 {
		padX = 1
	}
	if padY == 0 {
		padY = 1
	}
	m.minX -= padX
	m.maxX += padX
	m.minY -= padY
	m.maxY += padY
}

func (m ScrubModel) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m ScrubModel) Init() tea.Cmd { return nil }

func (m ScrubModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tickMsg:
		if !m.playing {
			return m, nil
		}
		m.frame++
		if m.frame > m.maxFrame {
			m.frame = m.minFrame
		}
		return m, m.tick()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.playing = !m.playing
			if m.playing {
				return m, m.tick()
			}
		case "left", "h":
			m.playing = false
			if m.frame > m.minFrame {
				m.frame--
			}
		case "right", "l":
			m.playing = false
			if m.frame < m.maxFrame {
				m.frame++
			}
		case "home", "g":
			m.frame = m.minFrame
		case "end", "G":
			m.frame = m.maxFrame
		}
	}
	return m, nil
}

func (m ScrubModel) View() string {
	var b strings.Builder

	b.WriteString("\n  " + cyan.Render(strings.ToUpper(m.label)))
	b.WriteString(dim.Render(fmt.Sprintf("  frame %d / %d", m.frame, m.maxFrame)))
	if m.playing {
		b.WriteString("  " + green.Render("▶"))
	} else {
		b.WriteString("  " + dim.Render("⏸"))
	}
	b.WriteString("\n\n")

	m.canvas.Clear()
	m.drawTrail()
	box := m.cache.GetBoxAtFrame(m.frame)
	visible := box != nil && m.seq.Visible(m.frame)
	if visible {
		x0, y0 := m.project(box.X, box.Y)
		x1, y1 := m.project(box.X+box.Width, box.Y+box.Height)
		m.canvas.DrawRect(x0, y0, x1, y1)
	}
	b.WriteString(m.canvas.String())

	if visible {
		cx, cy := box.Center()
		b.WriteString("  " + white.Render(fmt.Sprintf("x %.1f  y %.1f  w %.1f  h %.1f", box.X, box.Y, box.Width, box.Height)))
		b.WriteString(dim.Render(fmt.Sprintf("  center (%.1f, %.1f)", cx, cy)))
		if box.IsKeyframe {
			b.WriteString("  " + yellow.Render("KEYFRAME"))
		}
	} else {
		b.WriteString("  " + red.Render("HIDDEN"))
	}
	hits, misses := m.cache.Stats()
	b.WriteString(dim.Render(fmt.Sprintf("  cache %d hit / %d miss", hits, misses)))
	b.WriteString("\n\n")

	if len(m.xCenters) >= 2 {
		b.WriteString(asciigraph.Plot(m.xCenters,
			asciigraph.Height(6),
			asciigraph.Width(minInt(m.width-12, 70)),
			asciigraph.Caption("x center over visible frames")))
		b.WriteString("\n")
	}

	b.WriteString("\n  " + cyan.Render("space") + dim.Render(" play/pause  ") +
		cyan.Render("h/l") + dim.Render(" step  ") +
		cyan.Render("g/G") + dim.Render(" first/last  ") +
		cyan.Render("q") + dim.Render(" quit") + "\n")
	return b.String()
}

// drawTrail traces the center path of the frames scrubbed past so far.
func (m ScrubModel) drawTrail() {
	prev := -1
	var px, py int
	for _, p := range m.trail {
		if p.frame > m.frame {
			break
		}
		x, y := m.project(p.x, p.y)
		// Gaps in the trail mark hidden ranges.
		if prev >= 0 && p.frame == prev+1 {
			m.canvas.DrawLine(px, py, x, y)
		} else {
			m.canvas.Set(x, y)
		}
		px, py, prev = x, y, p.frame
	}
}

// project maps world coordinates onto the canvas sub-pixel grid.
func (m ScrubModel) project(x, y float64) (int, int) {
	px := (x - m.minX) / (m.maxX - m.minX) * float64(m.canvas.Width*2-1)
	py := (y - m.minY) / (m.maxY - m.minY) * float64(m.canvas.Height*4-1)
	return int(px), int(py)
}

// RunScrub starts the interactive scrubber in the alternate screen.
func RunScrub(label string, seq track.Sequence, fps int) error {
	_, err := tea.NewProgram(NewScrubModel(label, seq, fps), tea.WithAltScreen()).Run()
	return err
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
