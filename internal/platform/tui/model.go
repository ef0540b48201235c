package tui

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arkanoid/internal/arkanoid"
	"github.com/vovakirdan/arkanoid/internal/assets"
	"github.com/vovakirdan/arkanoid/internal/core"
)

// helpStyle renders the key help line below the playfield.
var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       *arkanoid.Game
	background image.Image
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	shotDir    string
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// The playfield starts at width x height cells and follows window resizes.
// background may be nil.
func NewModel(game *arkanoid.Game, background image.Image, cfg core.RuntimeConfig, width, height int, logger *log.Logger) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	h := help.New()
	h.ShowAll = false

	return Model{
		game:       game,
		background: background,
		screen:     core.NewScreen(max(width, 1), max(height-1, 1)),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       h,
		logger:     logger,
		shotDir:    filepath.Join(os.Getenv("HOME"), ".arkanoid", "screenshots"),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		MapMouse(msg, m.viewport(), &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.inputFrame.Set(core.ActionQuit)
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// handleResize keeps the playfield one row shorter than the window for the
// help line. The round itself is independent of the cell grid.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(max(msg.Width, 1), max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m Model) viewport() arkanoid.Viewport {
	return arkanoid.NewViewport(m.screen.Width(), m.screen.Height(), m.game.Config())
}

// draw renders the background and the game into the screen buffer.
func (m *Model) draw() {
	m.screen.Clear()
	assets.Shade(m.screen, m.background)
	m.game.Render(m.screen)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Error("cannot create screenshot directory", "dir", m.shotDir, "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("arkanoid_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Error("cannot save screenshot", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the game and blocks until the
// player quits.
func Run(game *arkanoid.Game, background image.Image, cfg core.RuntimeConfig, width, height int, logger *log.Logger) error {
	model := NewModel(game, background, cfg, width, height, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse presses restart the round
	)

	_, err := p.Run()
	return err
}
