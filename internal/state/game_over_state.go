// internal/state/game_over_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*GameOverState)(nil)

// GameOverState показывает итог; R или клик начинают заново.
type GameOverState struct {
	sm      *StateMachine
	session *Session
}

func NewGameOverState(sm *StateMachine, session *Session) *GameOverState {
	return &GameOverState{sm: sm, session: session}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.session.Controller.Restart()
		s.sm.SetState(NewPlayState(s.sm, s.session))
	}
	return nil
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.session.Draw(screen)
	stats := s.session.Controller.Game().Stats()
	s.session.drawOverlay(screen, stats.GameOverReason,
		stats.GameOverMessage,
		fmt.Sprintf("Final score: %d   Waves survived: %d   Ants killed: %d", stats.Score, stats.Wave, stats.AntsKilled),
		"Press R to play again",
	)
}

func (s *GameOverState) Exit() {}
