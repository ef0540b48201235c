// Package window runs the game in a desktop window with Ebitengine.
package window

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/arkanoid/internal/arkanoid"
	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
)

// Title is the window caption.
const Title = "Arkanoid Simulation"

// FontSize is the size of every label, in pixels.
const FontSize = 24

// Label positions.
var (
	scorePos = image.Pt(20, 20)
	hitsPos  = image.Pt(20, 50)

	// buttonLabelInset offsets the label from the button's top-left corner.
	buttonLabelInset = image.Pt(10, 10)
)

// Game adapts an arkanoid.Game to the ebiten.Game interface.
type Game struct {
	game       *arkanoid.Game
	cfg        config.Config
	background *ebiten.Image
	face       *text.GoTextFace
	frame      core.InputFrame
	logger     *log.Logger
}

// New creates the window adapter. background may be nil.
func New(game *arkanoid.Game, background image.Image, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("window: cannot load font: %w", err)
	}

	g := &Game{
		game:   game,
		cfg:    game.Config(),
		face:   &text.GoTextFace{Source: source, Size: FontSize},
		frame:  core.NewInputFrame(),
		logger: logger,
	}
	if background != nil {
		g.background = ebiten.NewImageFromImage(background)
	}
	return g, nil
}

// Update polls input and advances the game by one frame.
// Returns ebiten.Termination when the player quits.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.frame.Set(core.ActionQuit)
	}
	if g.frame.Has(core.ActionQuit) {
		g.logger.Info("quit", "score", g.game.State().Score, "hits", g.game.State().Hits)
		return ebiten.Termination
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.frame.Click(x, y)
	}

	g.game.Step(g.frame)
	g.frame.Clear()
	return nil
}

// Draw renders the current round.
func (g *Game) Draw(screen *ebiten.Image) {
	s := g.game.State()
	if s.GameOver() {
		g.drawGameOver(screen, s)
		return
	}

	if g.background != nil {
		screen.DrawImage(g.background, nil)
	}

	for _, b := range s.Bricks {
		fillRect(screen, b.Rect, b.Tier.Color())
	}
	fillRect(screen, s.Paddle.Rect, core.ColorWhite)

	cx, cy := s.Ball.Center()
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(s.Ball.W)/2, rgba(core.ColorWhite), true)

	g.drawText(screen, fmt.Sprintf("Score: %d", s.Score), scorePos)
	g.drawText(screen, fmt.Sprintf("Hits: %d", s.Hits), hitsPos)
}

func (g *Game) drawGameOver(screen *ebiten.Image, s arkanoid.State) {
	screen.Fill(rgba(core.ColorBlack))

	w, h := g.cfg.Screen.Width, g.cfg.Screen.Height
	g.drawText(screen, arkanoid.GameOverMessage(s), image.Pt(w/2-200, h/2-50))

	button := arkanoid.RestartButton(g.cfg)
	fillRect(screen, button, core.ColorGreen)
	g.drawText(screen, arkanoid.RestartLabel, image.Pt(button.X, button.Y).Add(buttonLabelInset))
}

func (g *Game) drawText(screen *ebiten.Image, s string, at image.Point) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	op.ColorScale.ScaleWithColor(rgba(core.ColorWhite))
	text.Draw(screen, s, g.face, op)
}

// Layout returns the fixed logical screen size; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Screen.Width, g.cfg.Screen.Height
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(g *Game, tps int) error {
	ebiten.SetWindowSize(g.cfg.Screen.Width, g.cfg.Screen.Height)
	ebiten.SetWindowTitle(Title)
	if tps > 0 {
		ebiten.SetTPS(tps)
	}

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

func fillRect(dst *ebiten.Image, r core.Rect, c core.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), rgba(c), true)
}

func rgba(c core.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: r, G: g, B: b, A: a}
}
