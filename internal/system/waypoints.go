// internal/system/waypoints.go
package system

import (
	"math"

	"cake-defense/internal/component"
	"cake-defense/internal/defs"
	"cake-defense/internal/utils"
)

// PathPlanner generates randomized multi-waypoint paths so ants spread over
// the whole field instead of following a single corridor.
type PathPlanner struct {
	balance *defs.Balance
	rng     *utils.PRNGService
}

func NewPathPlanner(balance *defs.Balance, rng *utils.PRNGService) *PathPlanner {
	return &PathPlanner{balance: balance, rng: rng}
}

// For builds a fresh path for the ant's current leg.
func (p *PathPlanner) For(ant *component.Ant) []component.Waypoint {
	if ant.Returning() {
		return p.Return(ant.X, ant.Y, ant.Carrying)
	}
	return p.Outbound()
}

// Outbound is a wide detour from the anthill ending on the cake.
func (p *PathPlanner) Outbound() []component.Waypoint {
	shape := p.balance.Paths
	start, end := p.balance.Anthill, p.balance.Cake

	n := shape.OutboundMin + p.rng.Intn(shape.OutboundExtra+1)
	waypoints := make([]component.Waypoint, 0, n+1)
	for i := 0; i < n; i++ {
		var x, y float64
		switch {
		case i == 0:
			x, y = p.scatter()
		case i == n-1:
			sx, sy := p.scatter()
			x = utils.Lerp(sx, end.X, shape.FinalApproach)
			y = utils.Lerp(sy, end.Y, shape.FinalApproach)
		default:
			heading := utils.Angle(start.X, start.Y, end.X, end.Y)
			angle := heading + p.rng.Signed(math.Pi)
			dist := shape.DetourMinDistance + p.rng.Float64()*shape.DetourRange
			cx, cy := (start.X+end.X)/2, (start.Y+end.Y)/2
			x = cx + math.Cos(angle)*dist
			y = cy + math.Sin(angle)*dist
		}
		waypoints = append(waypoints, p.clamp(x, y))
	}
	return append(waypoints, component.Waypoint{X: end.X, Y: end.Y})
}

// Return leads back to the anthill. Carriers follow tighter points along the
// direct line; empty-handed ants scatter around the anthill.
func (p *PathPlanner) Return(fromX, fromY float64, carrying bool) []component.Waypoint {
	shape := p.balance.Paths
	home := p.balance.Anthill

	var waypoints []component.Waypoint
	if carrying {
		n := shape.CarryMin + p.rng.Intn(shape.CarryExtra+1)
		for i := 0; i < n; i++ {
			progress := float64(i+1) / float64(n+1)
			deviation := shape.CarryDeviation - float64(i)*shape.CarryDeviationDec
			x := utils.Lerp(fromX, home.X, progress) + p.rng.Signed(deviation)
			y := utils.Lerp(fromY, home.Y, progress) + p.rng.Signed(deviation)
			waypoints = append(waypoints, p.clamp(x, y))
		}
	} else {
		n := shape.EmptyMin + p.rng.Intn(shape.EmptyExtra+1)
		for i := 0; i < n; i++ {
			x := home.X + p.rng.Signed(shape.EmptyScatterX)
			y := home.Y + p.rng.Signed(shape.EmptyScatterY)
			waypoints = append(waypoints, p.clamp(x, y))
		}
	}
	return append(waypoints, component.Waypoint{X: home.X, Y: home.Y})
}

// scatter picks a point uniformly inside the canvas inset by ScatterInset.
func (p *PathPlanner) scatter() (float64, float64) {
	c := p.balance.Canvas
	inset := p.balance.Paths.ScatterInset
	x := inset + p.rng.Float64()*(c.Width-2*inset)
	y := inset + p.rng.Float64()*(c.Height-2*inset)
	return x, y
}

func (p *PathPlanner) clamp(x, y float64) component.Waypoint {
	c := p.balance.Canvas
	return component.Waypoint{
		X: utils.Clamp(x, c.Margin, c.Width-c.Margin),
		Y: utils.Clamp(y, c.Margin, c.Height-c.Margin),
	}
}
