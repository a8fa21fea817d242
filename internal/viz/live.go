package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/avelis/sortlab/internal/algorithms"
	"github.com/avelis/sortlab/internal/engine"
	"github.com/avelis/sortlab/internal/playback"
	"github.com/avelis/sortlab/internal/trace"
)

const (
	chartHeight   = 16
	frameInterval = time.Second / 30
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Model animates a trace through a playback controller. The controller is
// the only writer of playback state; the view just reads the cursor.
type Model struct {
	ctrl *playback.Controller
	cfg  engine.Config
	seq  []int

	// cumulative counters per step index, for the side panel and sparkline
	compareAt []int
	swapAt    []int

	width    int
	showHelp bool
	err      error
}

// NewModel generates a trace from cfg and loads it paused.
func NewModel(cfg engine.Config, delay time.Duration) Model {
	m := Model{
		ctrl:  playback.NewController(),
		cfg:   cfg,
		width: 100,
	}
	m.ctrl.SetDelay(delay)

	seq, tr, err := engine.Run(cfg)
	if err != nil {
		m.err = err
		return m
	}
	m.seq = seq
	m.load(tr)
	return m
}

// NewModelFromTrace wraps an already generated trace for playback. cfg seeds
// the randomize and algorithm-cycle controls; when its shape does not match
// the trace input (an explicit input list was played), size and value range
// are derived from the input so regeneration keeps the run's shape.
func NewModelFromTrace(tr *trace.Trace, cfg engine.Config, delay time.Duration) Model {
	cfg.Algorithm = tr.Algorithm
	if cfg.Size != len(tr.Input) && len(tr.Input) > 0 {
		cfg.Size = len(tr.Input)
		lo, hi := tr.Input[0], tr.Input[0]
		for _, v := range tr.Input {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		cfg.Min, cfg.Max = lo, hi
	}
	m := Model{
		ctrl:  playback.NewController(),
		cfg:   cfg,
		seq:   tr.Input,
		width: 100,
	}
	m.ctrl.SetDelay(delay)
	m.load(tr)
	return m
}

func (m *Model) load(tr *trace.Trace) {
	m.ctrl.Load(tr)

	m.compareAt = make([]int, tr.Len())
	m.swapAt = make([]int, tr.Len())
	compares, swaps := 0, 0
	for i, s := range tr.Steps {
		switch s.Kind {
		case trace.Compare:
			compares++
		case trace.Swap:
			swaps++
		}
		m.compareAt[i] = compares
		m.swapAt[i] = swaps
	}
}

// regenerate rebuilds the trace for the current algorithm over seq.
func (m *Model) regenerate() {
	tr, err := engine.Generate(m.seq, m.cfg.Algorithm)
	if err != nil {
		m.err = err
		return
	}
	m.load(tr)
}

func (m Model) Init() tea.Cmd { return tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		m.ctrl.Tick(time.Time(msg))
		return m, tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		switch m.ctrl.Status() {
		case playback.Playing:
			m.ctrl.Pause()
		case playback.Finished:
			m.ctrl.Restart()
			m.ctrl.Play()
		default:
			m.ctrl.Play()
		}
	case "right", "l":
		m.ctrl.Pause()
		m.ctrl.StepForward()
	case "left", "h":
		m.ctrl.Pause()
		m.ctrl.StepBackward()
	case "home", "g":
		m.ctrl.Pause()
		m.ctrl.Seek(0)
	case "end", "G":
		m.ctrl.Pause()
		if tr := m.ctrl.Trace(); tr != nil {
			m.ctrl.Seek(tr.Len() - 1)
		}
	case "+", "=":
		m.ctrl.SetDelay(m.ctrl.Delay() * 4 / 5)
	case "-", "_":
		m.ctrl.SetDelay(m.ctrl.Delay() * 5 / 4)
	case "r":
		m.cfg.Seed = time.Now().UnixNano()
		seq, tr, err := engine.Run(m.cfg)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.seq = seq
		m.load(tr)
	case "tab":
		names := algorithms.Names()
		for i, name := range names {
			if name == m.cfg.Algorithm {
				m.cfg.Algorithm = names[(i+1)%len(names)]
				break
			}
		}
		m.regenerate()
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("error: %v\n\npress q to quit\n", m.err)
	}
	tr := m.ctrl.Trace()
	if tr == nil {
		return "no trace loaded\n"
	}

	step, _ := m.ctrl.Current()
	chart := chartStyle.Render(renderBars(step, chartHeight))
	stats := statsStyle.Render(m.statsView(tr, step))
	main := lipgloss.JoinHorizontal(lipgloss.Top, chart, stats)

	if m.showHelp {
		return helpOverlay + "\n\n" + main
	}
	return main
}

func (m Model) statsView(tr *trace.Trace, step trace.Step) string {
	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(tr.Algorithm)) + "\n")
	s.WriteString(dimStyle.Render(algorithms.Info[tr.Algorithm]) + "\n\n")
	s.WriteString(m.statusLine() + "\n\n")

	cursor := m.ctrl.Cursor()
	s.WriteString(labelStyle.Render("Step") + valueStyle.Render(fmt.Sprintf("%d / %d", cursor+1, tr.Len())) + "\n")
	s.WriteString(labelStyle.Render("Action") + valueStyle.Render(describeStep(step)) + "\n")
	s.WriteString(labelStyle.Render("Comparisons") + valueStyle.Render(fmt.Sprintf("%d / %d", m.compareAt[cursor], tr.Comparisons)) + "\n")
	s.WriteString(labelStyle.Render("Swaps") + valueStyle.Render(fmt.Sprintf("%d / %d", m.swapAt[cursor], tr.Swaps)) + "\n")
	s.WriteString(labelStyle.Render("Delay") + valueStyle.Render(m.ctrl.Delay().String()) + "\n")
	s.WriteString(labelStyle.Render("Elements") + valueStyle.Render(fmt.Sprintf("%d", len(tr.Input))) + "\n")

	if cursor > 1 {
		series := make([]float64, cursor+1)
		for i := 0; i <= cursor; i++ {
			series[i] = float64(m.compareAt[i])
		}
		graph := asciigraph.Plot(series,
			asciigraph.Height(4),
			asciigraph.Width(28),
			asciigraph.Caption("comparisons"),
		)
		s.WriteString(graphStyle.Render(graph) + "\n")
	}

	s.WriteString(helpStyle.Render("\n──────────────────────\nSP:Play/Pause  ←→:Step\nR:Randomize  Tab:Algo\n+/-:Speed  ?:Help  Q:Quit"))
	return s.String()
}

func (m Model) statusLine() string {
	switch m.ctrl.Status() {
	case playback.Playing:
		return statusPlaying.Render("PLAYING")
	case playback.Paused:
		return statusPaused.Render("PAUSED")
	case playback.Finished:
		return statusFinished.Render("FINISHED")
	case playback.Ready:
		return statusPaused.Render("READY")
	default:
		return dimStyle.Render("IDLE")
	}
}

// renderBars draws the snapshot as a vertical bar chart, one column per
// element, colored by the current step kind.
func renderBars(step trace.Step, height int) string {
	vals := step.Snapshot
	if len(vals) == 0 {
		return dimStyle.Render("(empty sequence)")
	}

	maxV := vals[0]
	for _, v := range vals {
		if v > maxV {
			maxV = v
		}
	}
	if maxV < 1 {
		maxV = 1
	}

	heights := make([]int, len(vals))
	for i, v := range vals {
		h := v * height / maxV
		if h < 1 && v > 0 {
			h = 1
		}
		heights[i] = h
	}

	var b strings.Builder
	for row := height; row >= 1; row-- {
		for i := range vals {
			if heights[i] >= row {
				b.WriteString(barStyle(step, i).Render("█"))
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	for i := range vals {
		if i == step.I || i == step.J {
			b.WriteString(cursorStyle.Render("^"))
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func barStyle(step trace.Step, i int) lipgloss.Style {
	if step.Kind == trace.Done {
		return barSorted
	}
	if i != step.I && i != step.J {
		return barPlain
	}
	switch step.Kind {
	case trace.Compare:
		return barCompare
	case trace.Swap:
		return barSwap
	case trace.Pivot:
		return barPivot
	case trace.Merge:
		return barMerge
	default:
		return barPlain
	}
}

func describeStep(step trace.Step) string {
	switch step.Kind {
	case trace.Compare:
		return fmt.Sprintf("compare %d, %d", step.I, step.J)
	case trace.Swap:
		return fmt.Sprintf("swap %d, %d", step.I, step.J)
	case trace.Pivot:
		return fmt.Sprintf("pivot at %d", step.I)
	case trace.Merge:
		return fmt.Sprintf("merge write %d", step.I)
	case trace.Done:
		return "done"
	default:
		return string(step.Kind)
	}
}

const helpOverlay = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Play / Pause             ║
║  ← / h    - Step backward            ║
║  → / l    - Step forward             ║
║  Home/End - Jump to start / end      ║
║  +        - Faster playback          ║
║  -        - Slower playback          ║
║  R        - New random input         ║
║  Tab      - Next algorithm           ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`
