// internal/state/session.go
package state

import (
	"image/color"
	"log"
	"time"

	"cake-defense/internal/app"
	"cake-defense/internal/assets"
	"cake-defense/internal/audio"
	"cake-defense/internal/config"
	"cake-defense/internal/input"
	"cake-defense/internal/ui"
	"cake-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Session bundles one game with its ebiten views. All states share it, so
// pausing or finishing keeps the field as it was.
type Session struct {
	Controller *input.Controller
	Sound      *audio.SoundSystem // nil без звука
	Fonts      *assets.Fonts
	Shapes     *render.ShapeRenderer
	Field      *ui.FieldRenderer
	HUD        *ui.HUD
	Panel      *ui.InfoPanel

	lastClickTime time.Time
}

func NewSession(g *app.Game, fonts *assets.Fonts, sound *audio.SoundSystem) *Session {
	shapes := render.NewShapeRenderer()
	return &Session{
		Controller: input.NewController(g),
		Sound:      sound,
		Fonts:      fonts,
		Shapes:     shapes,
		Field:      ui.NewFieldRenderer(g.Balance, ui.DefaultFieldColors(), shapes, fonts),
		HUD:        ui.NewHUD(fonts, shapes),
		Panel:      ui.NewInfoPanel(fonts),
	}
}

// handleKeys feeds this frame's key presses to the controller.
func (s *Session) handleKeys() {
	for _, k := range pressedKeys() {
		s.Controller.Press(k)
	}
	if s.Sound != nil && inpututil.IsKeyJustPressed(ebiten.KeyV) {
		on := s.Sound.ToggleMute()
		log.Printf("Session: sound on = %v", on)
	}
}

// handleClick routes a left click to the HUD, the info panel or the field.
// A right click cancels.
func (s *Session) handleClick() {
	c := s.Controller
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		c.Cancel()
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	x, y := ebiten.CursorPosition()

	if hit := s.HUD.HitTest(x, y); hit != ui.HUDNone {
		if time.Since(s.lastClickTime) < config.ClickCooldown*time.Millisecond {
			return
		}
		s.lastClickTime = time.Now()
		switch hit {
		case ui.HUDSpeed:
			c.CycleSpeed()
		case ui.HUDPause:
			c.Press(input.KeyPause)
		}
		return
	}
	if y >= config.ScreenHeight-config.HUDHeight {
		return
	}

	if c.Selected() != 0 && c.Mode() == input.ModeIdle {
		switch s.Panel.HitTest(x, y) {
		case ui.PanelUpgrade:
			c.Upgrade()
			return
		case ui.PanelMove:
			c.StartMove()
			return
		case ui.PanelSell:
			c.Sell()
			return
		case ui.PanelBody:
			return
		}
	}
	c.Click(float64(x), float64(y))
}

// Draw draws the field, the placement preview, the panel and the HUD.
func (s *Session) Draw(screen *ebiten.Image) {
	c := s.Controller
	g := c.Game()
	snap := g.Snapshot()
	s.Field.Draw(screen, snap, c.Selected())

	if c.Mode() != input.ModeIdle {
		s.drawGhost(screen, snap)
	}
	if c.Selected() != 0 && c.Mode() == input.ModeIdle {
		s.Panel.Draw(screen, g, c.Selected())
	}
	s.HUD.Sync(c)
	s.HUD.Draw(screen, c)
}

func (s *Session) drawGhost(screen *ebiten.Image, snap app.Snapshot) {
	c := s.Controller
	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)
	kind, legal := c.Preview(fx, fy)

	rangeRadius := c.Game().Balance.Towers.Get(kind).Range
	var from *app.TowerView
	if c.Mode() == input.ModeMoving {
		for i := range snap.Towers {
			if snap.Towers[i].ID == c.Selected() {
				from = &snap.Towers[i]
				rangeRadius = from.Range
			}
		}
	}
	s.Field.DrawGhost(screen, fx, fy, rangeRadius, legal, from)
}

// drawOverlay dims the screen and writes a title with a subtitle under it.
func (s *Session) drawOverlay(screen *ebiten.Image, title string, lines ...string) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.Overlay, false)
	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	ui.DrawCentered(screen, title, s.Fonts.Large, cx, cy-20, color.White)
	for i, line := range lines {
		ui.DrawCentered(screen, line, s.Fonts.Title, cx, cy+30+i*26, color.RGBA{0xCC, 0xCC, 0xCC, 255})
	}
}
