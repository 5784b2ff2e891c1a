// internal/state/pause_state.go
package state

import (
	"time"

	"cake-defense/internal/component"
	"cake-defense/internal/config"
	"cake-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает поле; SPACE или кнопка паузы возвращают в игру.
type PauseState struct {
	sm      *StateMachine
	session *Session
}

func NewPauseState(sm *StateMachine, session *Session) *PauseState {
	return &PauseState{sm: sm, session: session}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) error {
	c := s.session.Controller
	resume := inpututil.IsKeyJustPressed(ebiten.KeySpace)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if s.session.HUD.HitTest(x, y) == ui.HUDPause &&
			time.Since(s.session.lastClickTime) >= config.ClickCooldown*time.Millisecond {
			s.session.lastClickTime = time.Now()
			resume = true
		}
	}

	if resume && c.Game().State() == component.Paused {
		c.Game().TogglePause()
	}
	if c.Game().State() != component.Paused {
		s.sm.SetState(NewPlayState(s.sm, s.session))
	}
	return nil
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.session.Draw(screen)
	s.session.drawOverlay(screen, "PAUSED", "Press SPACE to resume")
}

func (s *PauseState) Exit() {}
