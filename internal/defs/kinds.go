// internal/defs/kinds.go
package defs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownAntKind is returned when a configuration names an ant kind
	// that does not exist.
	ErrUnknownAntKind = errors.New("unknown ant kind")
	// ErrUnknownTowerKind is returned when a configuration names a tower
	// kind that does not exist.
	ErrUnknownTowerKind = errors.New("unknown tower kind")
)

// AntKind is the closed set of attacker tiers.
type AntKind int

const (
	AntWorker AntKind = iota
	AntSoldier
	AntQueen
	antKindCount
)

// AntKinds lists every ant kind in declaration order.
var AntKinds = [antKindCount]AntKind{AntWorker, AntSoldier, AntQueen}

func (k AntKind) String() string {
	switch k {
	case AntWorker:
		return "worker"
	case AntSoldier:
		return "soldier"
	case AntQueen:
		return "queen"
	}
	return fmt.Sprintf("AntKind(%d)", int(k))
}

// Valid reports whether k is one of the declared kinds.
func (k AntKind) Valid() bool {
	return k >= 0 && k < antKindCount
}

// ParseAntKind maps a configuration name onto an AntKind.
func ParseAntKind(name string) (AntKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "worker":
		return AntWorker, nil
	case "soldier":
		return AntSoldier, nil
	case "queen":
		return AntQueen, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAntKind, name)
}

func (k AntKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAntKind, int(k))
	}
	return []byte(k.String()), nil
}

func (k *AntKind) UnmarshalText(text []byte) error {
	parsed, err := ParseAntKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// TowerKind is the closed set of defender types.
type TowerKind int

const (
	TowerLight TowerKind = iota
	TowerRapid
	TowerHeavy
	TowerArea
	towerKindCount
)

// TowerKinds lists every tower kind in selection order (keys 1-4).
var TowerKinds = [towerKindCount]TowerKind{TowerLight, TowerRapid, TowerHeavy, TowerArea}

func (k TowerKind) String() string {
	switch k {
	case TowerLight:
		return "light"
	case TowerRapid:
		return "rapid"
	case TowerHeavy:
		return "heavy"
	case TowerArea:
		return "area"
	}
	return fmt.Sprintf("TowerKind(%d)", int(k))
}

// Valid reports whether k is one of the declared kinds.
func (k TowerKind) Valid() bool {
	return k >= 0 && k < towerKindCount
}

// Splashes reports whether projectiles of this kind deal area damage.
func (k TowerKind) Splashes() bool {
	switch k {
	case TowerArea:
		return true
	case TowerLight, TowerRapid, TowerHeavy:
		return false
	}
	panic(fmt.Sprintf("defs: %v", k))
}

// ParseTowerKind accepts both the short names and the legacy balance-sheet
// names (cannon, machineGun, heavyCannon, splash).
func ParseTowerKind(name string) (TowerKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "light", "cannon":
		return TowerLight, nil
	case "rapid", "machinegun", "machine_gun":
		return TowerRapid, nil
	case "heavy", "heavycannon", "heavy_cannon":
		return TowerHeavy, nil
	case "area", "splash":
		return TowerArea, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTowerKind, name)
}

func (k TowerKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTowerKind, int(k))
	}
	return []byte(k.String()), nil
}

func (k *TowerKind) UnmarshalText(text []byte) error {
	parsed, err := ParseTowerKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
