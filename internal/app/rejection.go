package app

// Rejection is the reason an input hook refused a request. Accepted is the
// zero value; any other value means nothing was changed.
type Rejection int

const (
	Accepted Rejection = iota
	RejectGameOver
	RejectPaused
	RejectInsufficientFunds
	RejectOutOfBounds
	RejectTooCloseToAnthill
	RejectTooCloseToCake
	RejectTooCloseToTower
	RejectMaxLevel
	RejectUnknownTower
	RejectInvalidSelection
)

func (r Rejection) OK() bool {
	return r == Accepted
}

func (r Rejection) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case RejectGameOver:
		return "game is over"
	case RejectPaused:
		return "game is paused"
	case RejectInsufficientFunds:
		return "not enough money"
	case RejectOutOfBounds:
		return "outside the field"
	case RejectTooCloseToAnthill:
		return "too close to the anthill"
	case RejectTooCloseToCake:
		return "too close to the cake"
	case RejectTooCloseToTower:
		return "too close to another tower"
	case RejectMaxLevel:
		return "tower is at max level"
	case RejectUnknownTower:
		return "no such tower"
	case RejectInvalidSelection:
		return "no such tower type"
	}
	return "unknown"
}
