// internal/state/play_state.go
package state

import (
	"cake-defense/internal/component"

	"github.com/hajimehoshi/ebiten/v2"
)

var _ State = (*PlayState)(nil)

// PlayState — основное состояние: ввод, тики симуляции, отрисовка поля
type PlayState struct {
	sm      *StateMachine
	session *Session
}

func NewPlayState(sm *StateMachine, session *Session) *PlayState {
	return &PlayState{sm: sm, session: session}
}

func (p *PlayState) Enter() {}

func (p *PlayState) Update(deltaTime float64) error {
	p.session.handleKeys()
	p.session.handleClick()
	p.session.Controller.Advance()

	switch p.session.Controller.Game().State() {
	case component.Paused:
		p.sm.SetState(NewPauseState(p.sm, p.session))
	case component.GameOver:
		p.sm.SetState(NewGameOverState(p.sm, p.session))
	}
	return nil
}

func (p *PlayState) Draw(screen *ebiten.Image) {
	p.session.Draw(screen)
}

func (p *PlayState) Exit() {}
