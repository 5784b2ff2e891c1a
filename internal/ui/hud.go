// internal/ui/hud.go
package ui

import (
	"image/color"

	"cake-defense/internal/assets"
	"cake-defense/internal/component"
	"cake-defense/internal/config"
	"cake-defense/internal/input"
	"cake-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HUDButton is a clickable HUD control.
type HUDButton int

const (
	HUDNone HUDButton = iota
	HUDSpeed
	HUDPause
)

// HUD — нижняя полоса: деньги, очки, торт, скорость и пауза; номер волны сверху.
type HUD struct {
	Speed  *SpeedButton
	Pause  *PauseButton
	Wave   *WaveIndicator
	Slices *SliceIndicator
	fonts  *assets.Fonts
	shapes *render.ShapeRenderer
}

func NewHUD(fonts *assets.Fonts, shapes *render.ShapeRenderer) *HUD {
	return &HUD{
		Speed:  NewSpeedButton(config.SpeedButtonX, config.HUDButtonY, config.HUDButtonSize, config.SpeedColors),
		Pause:  NewPauseButton(config.PauseButtonX, config.HUDButtonY, config.HUDButtonSize, config.PauseColor, config.PlayColor),
		Wave:   NewWaveIndicator(config.WaveIndicatorX, config.WaveIndicatorY),
		Slices: NewSliceIndicator(config.SliceIndicatorX, config.HUDButtonY),
		fonts:  fonts,
		shapes: shapes,
	}
}

// HitTest reports which HUD control (x, y) falls on.
func (h *HUD) HitTest(x, y int) HUDButton {
	fx, fy := float32(x), float32(y)
	switch {
	case h.Speed.Contains(fx, fy):
		return HUDSpeed
	case h.Pause.Contains(fx, fy):
		return HUDPause
	}
	return HUDNone
}

// Sync updates the button icons from the controller.
func (h *HUD) Sync(c *input.Controller) {
	for i, s := range input.Speeds {
		if s == c.Speed() {
			h.Speed.SetState(i)
		}
	}
	h.Pause.SetPaused(c.Game().State() == component.Paused)
}

func (h *HUD) Draw(screen *ebiten.Image, c *input.Controller) {
	stats := c.Game().Stats()
	top := float32(config.ScreenHeight - config.HUDHeight)
	vector.DrawFilledRect(screen, 0, top, config.ScreenWidth, config.HUDHeight, config.HUDBackground, false)

	text.Draw(screen, c.StatusLine(), h.fonts.Regular, 10, int(top)+19, config.TextLight)
	h.Slices.Draw(screen, stats.RemainingSlices, stats.SlicesDelivered, stats.TotalSlices)
	h.Speed.Draw(screen, h.shapes)
	h.Pause.Draw(screen, h.shapes)
	h.Wave.Draw(screen, stats.Wave, h.fonts.Title)

	hint := c.Hint()
	drawOutlined(screen, hint, h.fonts.Regular, config.ScreenWidth/2, int(top)-10, config.TextLight, color.RGBA{0, 0, 0, 255}, 1)
}
