package state

import (
	"cake-defense/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyMap binds keyboard keys to controller commands.
var keyMap = map[ebiten.Key]input.Key{
	ebiten.KeyDigit1: input.KeySelect1,
	ebiten.KeyDigit2: input.KeySelect2,
	ebiten.KeyDigit3: input.KeySelect3,
	ebiten.KeyDigit4: input.KeySelect4,
	ebiten.KeySpace:  input.KeyPause,
	ebiten.KeyEscape: input.KeyCancel,
	ebiten.KeyR:      input.KeyRestart,
	ebiten.KeyT:      input.KeyCycle,
	ebiten.KeyF:      input.KeySpeed,
	ebiten.KeyU:      input.KeyUpgrade,
	ebiten.KeyS:      input.KeySell,
	ebiten.KeyM:      input.KeyMove,
}

// pressedKeys returns the commands whose keys went down this frame.
func pressedKeys() []input.Key {
	var keys []input.Key
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if cmd, ok := keyMap[k]; ok {
			keys = append(keys, cmd)
		}
	}
	return keys
}
