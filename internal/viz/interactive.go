package viz

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avelis/sortlab/internal/algorithms"
	"github.com/avelis/sortlab/internal/config"
	"github.com/avelis/sortlab/internal/engine"
)

const (
	stateMenu = iota
	stateConfig
	stateRun
)

var orders = []string{
	engine.OrderRandom,
	engine.OrderSorted,
	engine.OrderReversed,
	engine.OrderNearlySorted,
}

// App is the three-screen interactive shell: algorithm menu, run
// configuration, playback.
type App struct {
	state    int
	cursor   int
	names    []string
	selected string

	params      map[string]int
	paramNames  []string
	paramCursor int
	orderIdx    int
	editing     bool
	editBuf     string

	live          Model
	width, height int
}

func NewApp(cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	orderIdx := 0
	for i, o := range orders {
		if o == cfg.Order {
			orderIdx = i
		}
	}
	return &App{
		state: stateMenu,
		names: algorithms.Names(),
		params: map[string]int{
			"size":  cfg.Size,
			"min":   cfg.Min,
			"max":   cfg.Max,
			"seed":  int(cfg.Seed),
			"delay": cfg.DelayMs,
		},
		paramNames: []string{"size", "min", "max", "seed", "delay", "order"},
		orderIdx:   orderIdx,
		selected:   cfg.Algorithm,
		width:      100, height: 30,
	}
}

// RunInteractive starts the interactive shell and blocks until quit.
func RunInteractive(cfg *config.Config) error {
	p := tea.NewProgram(NewApp(cfg))
	_, err := p.Run()
	return err
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		if a.state == stateRun {
			newLive, cmd := a.live.Update(msg)
			a.live = newLive.(Model)
			return a, cmd
		}
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(msg)
	default:
		if a.state == stateRun {
			newLive, cmd := a.live.Update(msg)
			a.live = newLive.(Model)
			return a, cmd
		}
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.state {
	case stateMenu:
		return a.menuKey(msg)
	case stateConfig:
		return a.configKey(msg)
	case stateRun:
		if msg.String() == "esc" {
			a.state = stateMenu
			return a, nil
		}
		newLive, cmd := a.live.Update(msg)
		a.live = newLive.(Model)
		return a, cmd
	}
	return a, nil
}

func (a *App) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.names)-1 {
			a.cursor++
		}
	case "enter", " ":
		a.selected = a.names[a.cursor]
		a.state, a.paramCursor = stateConfig, 0
	}
	return a, nil
}

func (a *App) configKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.editing {
		switch msg.String() {
		case "enter":
			if val, err := strconv.Atoi(a.editBuf); err == nil {
				a.params[a.paramNames[a.paramCursor]] = val
			}
			a.editing, a.editBuf = false, ""
		case "esc":
			a.editing, a.editBuf = false, ""
		case "backspace":
			if len(a.editBuf) > 0 {
				a.editBuf = a.editBuf[:len(a.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '-' {
					a.editBuf += string(c)
				}
			}
		}
		return a, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "esc":
		a.state = stateMenu
	case "up", "k":
		if a.paramCursor > 0 {
			a.paramCursor--
		}
	case "down", "j":
		if a.paramCursor < len(a.paramNames)-1 {
			a.paramCursor++
		}
	case "left", "right":
		if a.paramNames[a.paramCursor] == "order" {
			if msg.String() == "right" {
				a.orderIdx = (a.orderIdx + 1) % len(orders)
			} else {
				a.orderIdx = (a.orderIdx + len(orders) - 1) % len(orders)
			}
		}
	case "enter":
		if a.paramNames[a.paramCursor] == "order" {
			a.orderIdx = (a.orderIdx + 1) % len(orders)
		} else {
			a.editing = true
			a.editBuf = ""
		}
	case "s", " ":
		return a.launch()
	}
	return a, nil
}

func (a *App) launch() (tea.Model, tea.Cmd) {
	seed := int64(a.params["seed"])
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := engine.Config{
		Algorithm: a.selected,
		Size:      a.params["size"],
		Min:       a.params["min"],
		Max:       a.params["max"],
		Seed:      seed,
		Order:     orders[a.orderIdx],
	}
	a.live = NewModel(cfg, time.Duration(a.params["delay"])*time.Millisecond)
	a.state = stateRun
	return a, a.live.Init()
}

func (a *App) View() string {
	switch a.state {
	case stateMenu:
		return a.menuView()
	case stateConfig:
		return a.configView()
	case stateRun:
		return a.live.View()
	}
	return ""
}

func (a *App) menuView() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("SORTLAB") + "\n")
	s.WriteString(dimStyle.Render("pick an algorithm") + "\n\n")
	for i, name := range a.names {
		line := fmt.Sprintf("%-10s %s", name, algorithms.Info[name])
		if i == a.cursor {
			s.WriteString(cursorStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + labelStyle.Render(line) + "\n")
		}
	}
	s.WriteString(helpStyle.Render("\n↑↓:Move  Enter:Select  Q:Quit"))
	return s.String()
}

func (a *App) configView() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(a.selected)) + "\n")
	s.WriteString(dimStyle.Render(algorithms.Info[a.selected]) + "\n\n")

	for i, name := range a.paramNames {
		var value string
		if name == "order" {
			value = orders[a.orderIdx]
		} else if a.editing && i == a.paramCursor {
			value = a.editBuf + "_"
		} else {
			value = strconv.Itoa(a.params[name])
		}
		line := fmt.Sprintf("%-8s %s", name, value)
		if i == a.paramCursor {
			s.WriteString(cursorStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + labelStyle.Render(line) + "\n")
		}
	}
	s.WriteString(helpStyle.Render("\n↑↓:Move  Enter:Edit/Cycle  S:Start  Esc:Back  Q:Quit"))
	return s.String()
}
