// Package ui draws the game with ebiten and feeds mouse input to the
// controller.
package ui

import (
	"errors"
	"image"
	"image/color"
	"log/slog"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Yxrk845/Buscaminas/internal/game"
	"github.com/Yxrk845/Buscaminas/internal/mines"
	"github.com/Yxrk845/Buscaminas/internal/ui/layout"
)

var (
	white     = color.RGBA{255, 255, 255, 255}
	black     = color.RGBA{0, 0, 0, 255}
	red       = color.RGBA{255, 0, 0, 255}
	blue      = color.RGBA{0, 0, 255, 255}
	green     = color.RGBA{0, 255, 0, 255}
	darkGreen = color.RGBA{0, 150, 0, 255}
	gray      = color.RGBA{200, 200, 200, 255}
	lightBlue = color.RGBA{173, 216, 230, 255}
	shade     = color.RGBA{40, 40, 40, 255}
)

var face = text.NewGoXFace(basicfont.Face7x13)

type Game struct {
	logger *slog.Logger
	ctrl   *game.Controller
}

func New(logger *slog.Logger, ctrl *game.Controller) *Game {
	return &Game{logger: logger, ctrl: ctrl}
}

// [Game] implements [ebiten.Game]
func (g *Game) Update() error {
	var events []game.Event

	x, y := ebiten.CursorPosition()
	screen, n := g.ctrl.Screen(), g.ctrl.Size()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if e, ok := layout.PrimaryEvent(screen, x, y, n); ok {
			events = append(events, e)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		if e, ok := layout.SecondaryEvent(screen, x, y, n); ok {
			events = append(events, e)
		}
	}
	if screen == game.BoardScreen {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			events = append(events, game.Press(game.ButtonReset))
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			events = append(events, game.Press(game.ButtonMenu))
		}
	}

	for _, e := range events {
		err := g.ctrl.HandleEvent(e)
		if errors.Is(err, game.ErrQuit) {
			g.logger.Info("quit")
			return ebiten.Termination
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.ctrl.Screen() {
	case game.MenuScreen:
		g.drawMenu(screen)
	case game.BoardScreen:
		g.drawBoard(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return layout.WindowSize, layout.WindowHeight
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	screen.Fill(shade)
	drawText(screen, layout.Title, image.Pt(layout.WindowSize/2, 150), white, 4)
	drawButton(screen, layout.PlayButton, green, white, 2)
	drawButton(screen, layout.QuitButton, red, white, 2)
}

func (g *Game) drawBoard(screen *ebiten.Image) {
	screen.Fill(white)

	n := g.ctrl.Size()
	for row := range n {
		for col := range n {
			drawCell(screen, row, col, g.ctrl.Status(row, col))
		}
	}

	drawButton(screen, layout.AIButton, lightBlue, black, 1)
	drawButton(screen, layout.MenuButton, lightBlue, black, 1)

	state := g.ctrl.State()
	var clr color.Color = black
	switch state {
	case mines.Lost:
		clr = red
	case mines.Won:
		clr = darkGreen
	}
	status := layout.StatusText(state)
	if state == mines.Playing {
		status += " (" + strconv.Itoa(g.ctrl.MinesRemaining()) + ")"
	}
	drawText(
		screen, status,
		image.Pt(layout.WindowSize/2, layout.WindowSize+layout.StatusBarHeight/2),
		clr, 2,
	)
}

func drawCell(screen *ebiten.Image, row, col int, status mines.CellStatus) {
	r := layout.CellRect(row, col)
	x, y := float32(r.Min.X), float32(r.Min.Y)
	w, h := float32(r.Dx()), float32(r.Dy())
	center := r.Min.Add(r.Max).Div(2)

	switch {
	case status == mines.ExplodedMine:
		vector.DrawFilledRect(screen, x, y, w, h, red, false)
	case status.Open():
		vector.DrawFilledRect(screen, x, y, w, h, white, false)
		if status > 0 {
			drawText(screen, status.String(), center, blue, 3)
		}
	default:
		vector.DrawFilledRect(screen, x, y, w, h, gray, false)
	}

	switch status {
	case mines.Flag, mines.CorrectFlag:
		drawFlag(screen, row, col)
	case mines.WrongFlag:
		drawFlag(screen, row, col)
		vector.StrokeLine(screen, x+8, y+8, x+w-8, y+h-8, 3, black, true)
		vector.StrokeLine(screen, x+w-8, y+8, x+8, y+h-8, 3, black, true)
	case mines.UnflaggedMine:
		vector.DrawFilledCircle(screen, float32(center.X), float32(center.Y), w/4, black, true)
	}

	vector.StrokeRect(screen, x, y, w, h, 1, black, false)
}

// drawFlag fills the flag triangle one scanline at a time.
func drawFlag(screen *ebiten.Image, row, col int) {
	tri := layout.FlagTriangle(row, col)
	top, tip, bottom := tri[0], tri[1], tri[2]
	for y := top.Y; y <= bottom.Y; y++ {
		var right int
		if y <= tip.Y {
			right = top.X + (tip.X-top.X)*(y-top.Y)/(tip.Y-top.Y)
		} else {
			right = tip.X - (tip.X-bottom.X)*(y-tip.Y)/(bottom.Y-tip.Y)
		}
		fy := float32(y) + 0.5
		vector.StrokeLine(screen, float32(top.X), fy, float32(right), fy, 1, red, false)
	}
}

func drawButton(screen *ebiten.Image, b layout.Button, fill, label color.Color, scale float64) {
	r := b.Rect
	vector.DrawFilledRect(
		screen,
		float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()),
		fill, false,
	)
	drawText(screen, b.Label, r.Min.Add(r.Max).Div(2), label, scale)
}

// drawText draws s centered on at, scaled up from the 7x13 bitmap face.
func drawText(screen *ebiten.Image, s string, at image.Point, clr color.Color, scale float64) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, face, op)
}
