// internal/input/controller.go
package input

import (
	"log"

	"cake-defense/internal/app"
	"cake-defense/internal/component"
	"cake-defense/internal/defs"
	"cake-defense/internal/types"
)

// Mode — режим взаимодействия с полем
type Mode int

const (
	ModeIdle Mode = iota
	ModePlacing
	ModeMoving
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModePlacing:
		return "placing"
	case ModeMoving:
		return "moving"
	}
	return "unknown"
}

// Key is a frontend-neutral command key.
type Key int

const (
	KeyNone Key = iota
	KeySelect1
	KeySelect2
	KeySelect3
	KeySelect4
	KeyPause
	KeyCancel
	KeyRestart
	KeyCycle
	KeySpeed
	KeyUpgrade
	KeySell
	KeyMove
)

// Speeds are the tick multipliers offered by the speed button.
var Speeds = []int{1, 2, 4}

// Controller turns clicks and keys into game input hooks. It owns the UI
// selection (placing, selected tower, moving) and the speed multiplier; the
// game itself never sees them.
type Controller struct {
	game       *app.Game
	mode       Mode
	selected   types.EntityID
	speedIndex int
	// LastRejection is the reason the last refused action failed.
	LastRejection app.Rejection
}

func NewController(g *app.Game) *Controller {
	return &Controller{game: g}
}

func (c *Controller) Game() *app.Game          { return c.game }
func (c *Controller) Mode() Mode               { return c.mode }
func (c *Controller) Selected() types.EntityID { return c.selected }
func (c *Controller) Speed() int               { return Speeds[c.speedIndex] }

// Advance runs one frame worth of ticks at the current speed and returns
// how many ran.
func (c *Controller) Advance() int {
	n := 0
	for i := 0; i < c.Speed(); i++ {
		if !c.game.Step() {
			break
		}
		n++
	}
	if c.selected != 0 {
		if _, ok := c.game.World.Towers.Get(c.selected); !ok {
			c.clearSelection()
		}
	}
	return n
}

// Click handles a left click on the playfield at (x, y).
func (c *Controller) Click(x, y float64) {
	if c.game.State() != component.Playing {
		return
	}

	switch c.mode {
	case ModeMoving:
		if c.selected != 0 {
			if r := c.game.MoveTower(c.selected, x, y); !c.check(r) {
				return
			}
		}
		c.mode = ModeIdle
		return
	case ModePlacing:
		if _, r := c.game.PlaceTower(x, y, c.game.SelectedTowerType()); c.check(r) {
			c.mode = ModeIdle
			c.selected = 0
		}
		return
	}

	if id, ok := c.game.TowerAt(x, y); ok {
		if c.selected == id {
			c.selected = 0
		} else {
			c.selected = id
		}
		return
	}
	c.selected = 0
	c.mode = ModePlacing
}

// Upgrade upgrades the selected tower.
func (c *Controller) Upgrade() bool {
	if c.selected == 0 {
		return false
	}
	return c.check(c.game.UpgradeTower(c.selected))
}

// Sell sells the selected tower and clears the selection.
func (c *Controller) Sell() bool {
	if c.selected == 0 {
		return false
	}
	if _, r := c.game.SellTower(c.selected); !c.check(r) {
		return false
	}
	c.clearSelection()
	return true
}

// StartMove arms a move of the selected tower to the next click.
func (c *Controller) StartMove() bool {
	if c.selected == 0 || c.game.State() != component.Playing {
		return false
	}
	c.mode = ModeMoving
	return true
}

// Cancel drops any pending placement, move or selection.
func (c *Controller) Cancel() {
	c.clearSelection()
}

// CycleSpeed steps through Speeds and returns the new multiplier.
func (c *Controller) CycleSpeed() int {
	c.speedIndex = (c.speedIndex + 1) % len(Speeds)
	return c.Speed()
}

// Press handles a command key and reports whether it did anything.
func (c *Controller) Press(k Key) bool {
	switch k {
	case KeySelect1, KeySelect2, KeySelect3, KeySelect4:
		return c.check(c.game.SelectTowerType(int(k - KeySelect1)))
	case KeyCycle:
		c.game.CycleTowerType()
		return true
	case KeyPause:
		return c.game.TogglePause()
	case KeyCancel:
		c.Cancel()
		return true
	case KeyRestart:
		if c.game.State() != component.GameOver {
			return false
		}
		c.Restart()
		return true
	case KeySpeed:
		c.CycleSpeed()
		return true
	case KeyUpgrade:
		return c.Upgrade()
	case KeySell:
		return c.Sell()
	case KeyMove:
		return c.StartMove()
	}
	return false
}

// Restart restarts the game and resets the UI selection. The speed is kept.
func (c *Controller) Restart() {
	c.game.Restart()
	c.clearSelection()
	c.LastRejection = app.Accepted
}

// Preview reports whether the pending placement or move would be legal at
// (x, y), for the ghost tower drawn under the cursor.
func (c *Controller) Preview(x, y float64) (defs.TowerKind, bool) {
	switch c.mode {
	case ModePlacing:
		kind := c.game.SelectedTowerType()
		legal := c.game.CanPlaceTower(x, y).OK() && c.game.Stats().Money >= c.game.TowerPrice(kind)
		return kind, legal
	case ModeMoving:
		if t, ok := c.game.World.Towers.Get(c.selected); ok {
			return t.Kind, c.game.CanMoveTower(t.ID, x, y).OK()
		}
	}
	return c.game.SelectedTowerType(), false
}

func (c *Controller) clearSelection() {
	c.mode = ModeIdle
	c.selected = 0
}

func (c *Controller) check(r app.Rejection) bool {
	c.LastRejection = r
	if !r.OK() {
		log.Printf("Controller: rejected: %s", r)
		return false
	}
	return true
}
