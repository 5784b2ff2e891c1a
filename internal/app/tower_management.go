// internal/app/tower_management.go
package app

import (
	"log"

	"cake-defense/internal/component"
	"cake-defense/internal/defs"
	"cake-defense/internal/event"
	"cake-defense/internal/system"
	"cake-defense/internal/types"
	"cake-defense/internal/utils"
)

// PlaceTower attempts to place a tower of kind at (x, y). On success the
// price is paid and the new tower's ID returned.
func (g *Game) PlaceTower(x, y float64, kind defs.TowerKind) (types.EntityID, Rejection) {
	if r := g.checkPlaying(); !r.OK() {
		return 0, r
	}
	def := g.Balance.Towers.Get(kind)
	if r := g.canPlaceAt(x, y, 0); !r.OK() {
		return 0, r
	}
	price := g.WaveController.TowerPrice(kind)
	if !g.WaveController.Spend(price) {
		return 0, RejectInsufficientFunds
	}

	id := g.World.NewEntity()
	tower := component.NewTower(id, kind, x, y, def, g.Balance.TowerRules)
	g.World.Towers.Add(id, tower)

	g.EventDispatcher.Emit(event.TowerPlaced, towerData(tower, price))
	return id, Accepted
}

// checkPlaying refuses tower changes unless the game is running.
func (g *Game) checkPlaying() Rejection {
	switch g.State() {
	case component.GameOver:
		return RejectGameOver
	case component.Paused:
		return RejectPaused
	}
	return Accepted
}

// CanPlaceTower reports whether (x, y) is a legal spot for a new tower.
// Money is not checked.
func (g *Game) CanPlaceTower(x, y float64) Rejection {
	return g.canPlaceAt(x, y, 0)
}

// CanMoveTower reports whether tower id could be moved to (x, y). The tower
// itself is not an obstacle.
func (g *Game) CanMoveTower(id types.EntityID, x, y float64) Rejection {
	return g.canPlaceAt(x, y, id)
}

// canPlaceAt checks placement legality, ignoring the tower with ID ignore.
func (g *Game) canPlaceAt(x, y float64, ignore types.EntityID) Rejection {
	b := g.Balance
	if !b.Canvas.Contains(x, y) {
		return RejectOutOfBounds
	}
	if utils.Distance(x, y, b.Anthill.X, b.Anthill.Y) < b.Placement.MinAnthillDistance {
		return RejectTooCloseToAnthill
	}
	if utils.Distance(x, y, b.Cake.X, b.Cake.Y) < b.Placement.MinCakeDistance {
		return RejectTooCloseToCake
	}
	result := Accepted
	g.World.Towers.Each(func(id types.EntityID, t *component.Tower) bool {
		if id != ignore && utils.Distance(x, y, t.X, t.Y) < b.Placement.MinTowerDistance {
			result = RejectTooCloseToTower
			return false
		}
		return true
	})
	return result
}

// UpgradeTower raises a tower by one level if it is below max level and the
// upgrade is affordable.
func (g *Game) UpgradeTower(id types.EntityID) Rejection {
	if r := g.checkPlaying(); !r.OK() {
		return r
	}
	tower, ok := g.World.Towers.Get(id)
	if !ok {
		return RejectUnknownTower
	}
	if !tower.CanUpgrade() {
		return RejectMaxLevel
	}
	price := g.WaveController.UpgradePrice(tower)
	if !g.WaveController.Spend(price) {
		return RejectInsufficientFunds
	}
	tower.Upgrade()

	g.EventDispatcher.Emit(event.TowerUpgraded, towerData(tower, price))
	return Accepted
}

// SellTower removes a tower and refunds part of its base cost.
func (g *Game) SellTower(id types.EntityID) (int, Rejection) {
	if r := g.checkPlaying(); !r.OK() {
		return 0, r
	}
	tower, ok := g.World.Towers.Get(id)
	if !ok {
		return 0, RejectUnknownTower
	}
	refund := system.SellValue(tower.BaseCost(), g.Balance.TowerRules)
	g.World.Towers.Remove(id)
	g.WaveController.Earn(refund)

	g.EventDispatcher.Emit(event.TowerSold, towerData(tower, refund))
	return refund, Accepted
}

// MoveTower relocates a tower free of charge.
func (g *Game) MoveTower(id types.EntityID, x, y float64) Rejection {
	if r := g.checkPlaying(); !r.OK() {
		return r
	}
	tower, ok := g.World.Towers.Get(id)
	if !ok {
		return RejectUnknownTower
	}
	if r := g.canPlaceAt(x, y, id); !r.OK() {
		return r
	}
	tower.X, tower.Y = x, y

	g.EventDispatcher.Emit(event.TowerMoved, towerData(tower, 0))
	return Accepted
}

// TowerAt returns the tower within click range of (x, y), nearest first.
func (g *Game) TowerAt(x, y float64) (types.EntityID, bool) {
	var found types.EntityID
	best := g.Balance.Placement.SelectRadius
	g.World.Towers.Each(func(id types.EntityID, t *component.Tower) bool {
		if d := utils.Distance(x, y, t.X, t.Y); d <= best {
			found = id
			best = d
		}
		return true
	})
	return found, found != 0
}

// SelectTowerType picks the kind used by the next placement (0-based).
func (g *Game) SelectTowerType(index int) Rejection {
	if index < 0 || index >= len(defs.TowerKinds) {
		return RejectInvalidSelection
	}
	g.selectedType = defs.TowerKinds[index]
	return Accepted
}

// CycleTowerType advances the selection to the next kind.
func (g *Game) CycleTowerType() defs.TowerKind {
	g.selectedType = defs.TowerKinds[(int(g.selectedType)+1)%len(defs.TowerKinds)]
	log.Printf("Game: selected %s tower", g.selectedType)
	return g.selectedType
}

func (g *Game) SelectedTowerType() defs.TowerKind {
	return g.selectedType
}

// TowerPrice is the current placement price for kind.
func (g *Game) TowerPrice(kind defs.TowerKind) int {
	return g.WaveController.TowerPrice(kind)
}

// UpgradePrice is the current upgrade price for a tower.
func (g *Game) UpgradePrice(id types.EntityID) (int, bool) {
	tower, ok := g.World.Towers.Get(id)
	if !ok {
		return 0, false
	}
	return g.WaveController.UpgradePrice(tower), true
}

// SellValue is the refund a tower would give.
func (g *Game) SellValue(id types.EntityID) (int, bool) {
	tower, ok := g.World.Towers.Get(id)
	if !ok {
		return 0, false
	}
	return system.SellValue(tower.BaseCost(), g.Balance.TowerRules), true
}

func towerData(t *component.Tower, money int) event.TowerData {
	return event.TowerData{
		ID:    t.ID,
		Kind:  t.Kind,
		X:     t.X,
		Y:     t.Y,
		Level: t.Level,
		Money: money,
	}
}
