// internal/state/menu_state.go
package state

import (
	"fmt"
	"image/color"

	"cake-defense/internal/config"
	"cake-defense/internal/defs"
	"cake-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState — заставка со списком башен
type MenuState struct {
	sm      *StateMachine
	session *Session
}

func NewMenuState(sm *StateMachine, session *Session) *MenuState {
	return &MenuState{sm: sm, session: session}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.sm.SetState(NewPlayState(m.sm, m.session))
	}
	return nil
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.PanelBackground)
	fonts := m.session.Fonts
	cx := config.ScreenWidth / 2
	ui.DrawCentered(screen, "Cake Defense", fonts.Large, cx, 140, config.FrostingCol)

	balance := m.session.Controller.Game().Balance
	for i, kind := range defs.TowerKinds {
		def := balance.Towers.Get(kind)
		line := fmt.Sprintf("%d  %-12s $%-4d dmg %-3d range %.0f", i+1, def.Name, def.BaseCost, def.Damage, def.Range)
		ui.DrawCentered(screen, line, fonts.Regular, cx, 240+i*24, def.Color)
	}
	ui.DrawCentered(screen, "Click or press SPACE to start, Esc to quit", fonts.Title, cx, 420, color.White)
}

func (m *MenuState) Exit() {}
