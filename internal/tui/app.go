// Package tui is a terminal frontend: the field is drawn in character cells
// and a keyboard cursor stands in for the mouse.
package tui

import (
	"context"
	"log"
	"time"

	"cake-defense/internal/audio"
	"cake-defense/internal/config"
	"cake-defense/internal/input"

	"github.com/gdamore/tcell/v2"
)

// runeKeys binds plain keys to controller commands. Space and Esc are
// handled as tcell keys.
var runeKeys = map[rune]input.Key{
	'1': input.KeySelect1,
	'2': input.KeySelect2,
	'3': input.KeySelect3,
	'4': input.KeySelect4,
	'r': input.KeyRestart,
	't': input.KeyCycle,
	'f': input.KeySpeed,
	'u': input.KeyUpgrade,
	's': input.KeySell,
	'm': input.KeyMove,
}

// App runs a controller in a terminal.
type App struct {
	screen   tcell.Screen
	ctrl     *input.Controller
	sound    *audio.SoundSystem // nil без звука
	renderer *Renderer

	cursorCol, cursorRow int
}

// NewApp wraps an initialized screen. sound may be nil.
func NewApp(screen tcell.Screen, ctrl *input.Controller, sound *audio.SoundSystem) *App {
	b := ctrl.Game().Balance
	a := &App{
		screen:   screen,
		ctrl:     ctrl,
		sound:    sound,
		renderer: NewRenderer(screen, b.Canvas.Width, b.Canvas.Height),
	}
	a.cursorCol, a.cursorRow = a.renderer.Viewport().ToCell(b.Canvas.Width/2, b.Canvas.Height/2)
	screen.EnableMouse()
	return a
}

// Cursor returns the cursor cell.
func (a *App) Cursor() (col, row int) { return a.cursorCol, a.cursorRow }

func (a *App) moveCursor(dc, dr int) {
	v := a.renderer.Viewport()
	a.cursorCol = min(max(a.cursorCol+dc, 0), v.Cols-1)
	a.cursorRow = min(max(a.cursorRow+dr, 0), v.Rows-1)
}

func (a *App) clickCursor() {
	x, y := a.renderer.Viewport().ToField(a.cursorCol, a.cursorRow)
	a.ctrl.Click(x, y)
}

// HandleEvent applies one terminal event and reports whether to keep
// running.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		col, row := ev.Position()
		if ev.Buttons()&tcell.ButtonPrimary != 0 && a.renderer.Viewport().Contains(col, row) {
			a.cursorCol, a.cursorRow = col, row
			a.clickCursor()
		} else if ev.Buttons()&tcell.ButtonSecondary != 0 {
			a.ctrl.Cancel()
		}
	case *tcell.EventResize:
		a.renderer.Resize()
		a.moveCursor(0, 0)
		a.screen.Sync()
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEscape:
		a.ctrl.Press(input.KeyCancel)
	case tcell.KeyEnter:
		a.clickCursor()
	case tcell.KeyUp:
		a.moveCursor(0, -1)
	case tcell.KeyDown:
		a.moveCursor(0, 1)
	case tcell.KeyLeft:
		a.moveCursor(-1, 0)
	case tcell.KeyRight:
		a.moveCursor(1, 0)
	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'q':
			return false
		case ' ':
			a.ctrl.Press(input.KeyPause)
		case 'v':
			if a.sound != nil {
				a.sound.ToggleMute()
			}
		default:
			if k, ok := runeKeys[r]; ok {
				a.ctrl.Press(k)
			}
		}
	}
	return true
}

// Frame advances the game by one frame and redraws.
func (a *App) Frame() {
	a.ctrl.Advance()
	a.renderer.Draw(a.ctrl, a.cursorCol, a.cursorRow)
}

// Run drives the game at config.TPS frames per second until the player
// quits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / config.TPS)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go a.screen.ChannelEvents(events, quit)

	log.Printf("TUI: running on a %dx%d field grid", a.renderer.Viewport().Cols, a.renderer.Viewport().Rows)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok || !a.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			a.Frame()
		}
	}
}
