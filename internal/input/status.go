package input

import (
	"fmt"

	"cake-defense/internal/component"
)

// StatusLine is the one-line economy read-out shown by both frontends.
func (c *Controller) StatusLine() string {
	s := c.game.Stats()
	name := c.game.Balance.Towers.Get(s.SelectedType).Name
	return fmt.Sprintf("$%d  Score %d  Wave %d  Cake %d/%d  %s $%d  x%d",
		s.Money, s.Score, s.Wave, s.RemainingSlices, s.TotalSlices, name, s.SelectedPrice, c.Speed())
}

// Hint describes what the next click will do, or why the last action was
// refused.
func (c *Controller) Hint() string {
	s := c.game.Stats()
	switch {
	case s.State == component.GameOver:
		return fmt.Sprintf("%s Final score %d. Press R to restart", s.GameOverReason, s.Score)
	case s.State == component.Paused:
		return "Paused. Press SPACE to resume"
	case !c.LastRejection.OK():
		return "Can't do that: " + c.LastRejection.String()
	case c.mode == ModePlacing:
		name := c.game.Balance.Towers.Get(s.SelectedType).Name
		return fmt.Sprintf("Click to place %s ($%d), Esc to cancel", name, s.SelectedPrice)
	case c.mode == ModeMoving:
		return "Click the new spot for the tower, Esc to cancel"
	case c.selected != 0:
		return "U upgrade, M move, S sell"
	}
	return "Click the field to build, 1-4 pick a tower"
}
