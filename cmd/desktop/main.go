package main

import (
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"math/big"
	"os"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"dicegame/pkg/config"
	"dicegame/pkg/game"
	"dicegame/pkg/grid"
	"dicegame/pkg/judge"
	"dicegame/pkg/utils"
)

const (
	screenWidth  = 480
	screenHeight = 320

	dieSize    = 48
	dieGap     = 16
	diceCols   = 6
	diceLeft   = 24
	diceTop    = 48
	lineHeight = 18
)

var (
	background = color.RGBA{0x1e, 0x1e, 0x2e, 0xff}
	foreground = color.RGBA{0xcd, 0xd6, 0xf4, 0xff}
	errorColor = color.RGBA{0xf3, 0x8b, 0xa8, 0xff}
	okColor    = color.RGBA{0xa6, 0xe3, 0xa1, 0xff}
	pipColor   = color.RGBA{0x11, 0x11, 0x1b, 0xff}
)

// Game plays the rounds in a window. Everything except Update, Draw and
// Layout works without a display.
type Game struct {
	dealer game.Dealer
	target *big.Rat
	rounds int

	round     int
	incorrect int
	started   time.Time
	judge     *judge.Judge
	input     []rune
	message   string
	correct   bool
	summary   *game.Summary

	face    *text.GoXFace
	dieFace *ebiten.Image
}

func newGame(dealer game.Dealer, target *big.Rat, rounds int) *Game {
	g := &Game{
		dealer:  dealer,
		target:  target,
		rounds:  rounds,
		started: time.Now(),
	}
	g.nextRound()
	return g
}

func (g *Game) nextRound() {
	if g.round == g.rounds {
		g.summary = &game.Summary{
			Rounds:    g.rounds,
			Incorrect: g.incorrect,
			Elapsed:   time.Since(g.started),
		}
		g.judge = nil
		slog.Info("game finished", slog.String("summary", g.summary.String()))
		return
	}
	g.round++
	g.judge = judge.New(g.dealer.Deal(), g.target)
	g.input = g.input[:0]
}

// typeRunes appends printable characters to the input line.
func (g *Game) typeRunes(rs []rune) {
	if g.summary != nil {
		return
	}
	for _, r := range rs {
		if strconv.IsPrint(r) {
			g.input = append(g.input, r)
		}
	}
}

func (g *Game) backspace() {
	if len(g.input) > 0 {
		g.input = g.input[:len(g.input)-1]
	}
}

// submit judges the input line and moves to the next round when it is
// correct.
func (g *Game) submit() {
	if g.summary != nil {
		return
	}
	line := string(g.input)
	if err := g.judge.Check(line); err != nil {
		g.incorrect++
		g.correct = false
		g.message = fmt.Sprintf("Incorrect input: %v", err)
		slog.Debug("answer rejected",
			slog.Int("round", g.round),
			slog.String("stage", string(judge.StageOf(err))),
			slog.String("error", err.Error()),
		)
		return
	}
	g.correct = true
	g.message = "Correct!"
	slog.Info("round solved", slog.Int("round", g.round), slog.String("answer", line))
	g.nextRound()
}

func (g *Game) Update() error {
	g.typeRunes(ebiten.AppendInputChars(nil))
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) || inpututil.KeyPressDuration(ebiten.KeyBackspace) > 30 {
		g.backspace()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		g.submit()
	}
	if g.summary != nil && inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) drawText(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	if g.face == nil {
		g.face = text.NewGoXFace(basicfont.Face7x13)
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, g.face, op)
}

func (g *Game) drawDice(screen *ebiten.Image, hand []uint32) {
	if g.dieFace == nil {
		g.dieFace = ebiten.NewImage(dieSize, dieSize)
		g.dieFace.Fill(foreground)
	}
	for i, n := range hand {
		x, y := grid.GetGridCoords(i, diceCols)
		px := diceLeft + x*(dieSize+dieGap)
		py := diceTop + y*(dieSize+dieGap)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(px), float64(py))
		screen.DrawImage(g.dieFace, op)

		label := strconv.FormatUint(uint64(n), 10)
		g.drawText(screen, label, px+dieSize/2-len(label)*7/2, py+dieSize/2-7, pipColor)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	if g.summary != nil {
		g.drawText(screen, g.summary.String(), diceLeft, diceTop, foreground)
		g.drawText(screen, "Press Esc to quit.", diceLeft, diceTop+2*lineHeight, foreground)
		return
	}

	header := fmt.Sprintf("Round %d of %d    target %s", g.round, g.rounds, g.target.RatString())
	g.drawText(screen, header, diceLeft, 16, foreground)

	hand := g.judge.Hand()
	g.drawDice(screen, hand)

	rows := (len(hand) + diceCols - 1) / diceCols
	y := diceTop + rows*(dieSize+dieGap) + lineHeight
	g.drawText(screen, "> "+string(g.input)+"_", diceLeft, y, foreground)

	if g.message != "" {
		clr := errorColor
		if g.correct {
			clr = okColor
		}
		g.drawText(screen, g.message, diceLeft, y+2*lineHeight, clr)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	configPath := flag.String("config", "", "YAML config file (falls back to $DICEGAME_CONFIG)")
	rounds := flag.Int("rounds", -1, "number of rounds (default from config)")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Error loading config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	utils.InitLogger(conf.Logging, os.Stderr)

	if *rounds >= 0 {
		conf.Game.Rounds = *rounds
	}
	dealer, err := conf.Game.NewDealer()
	if err != nil {
		slog.Error("Error creating dealer", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(screenWidth*2, screenHeight*2)
	ebiten.SetWindowTitle("Dice Game")

	g := newGame(dealer, conf.Game.TargetRat(), conf.Game.Rounds)
	if err := ebiten.RunGame(g); err != nil {
		slog.Error("Exited game", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
