// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"cake-defense/internal/app"
	"cake-defense/internal/assets"
	"cake-defense/internal/config"
	"cake-defense/internal/types"
	"cake-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	lineHeight = 18
	statsY     = 55
)

// PanelButton is what a click on the info panel hit.
type PanelButton int

const (
	PanelNone PanelButton = iota // мимо панели
	PanelBody                    // панель, но не кнопка
	PanelUpgrade
	PanelMove
	PanelSell
)

// Button представляет кликабельную кнопку в UI.
type Button struct {
	Rect image.Rectangle
	Text string
}

// InfoPanel shows the selected tower with its upgrade, move and sell buttons.
type InfoPanel struct {
	Rect          image.Rectangle
	UpgradeButton Button
	MoveButton    Button
	SellButton    Button
	levels        *LevelIndicator
	fonts         *assets.Fonts
}

// NewInfoPanel creates the panel at its fixed place in the top-left corner.
func NewInfoPanel(fonts *assets.Fonts) *InfoPanel {
	x, y := config.PanelX, config.PanelY
	by := y + config.PanelButtonsY
	return &InfoPanel{
		Rect:          image.Rect(x, y, x+config.PanelWidth, y+config.PanelHeight),
		UpgradeButton: Button{Rect: image.Rect(x+15, by, x+105, by+config.ButtonHeight)},
		MoveButton:    Button{Rect: image.Rect(x+115, by, x+185, by+config.ButtonHeight), Text: "MOVE"},
		SellButton:    Button{Rect: image.Rect(x+195, by, x+265, by+config.ButtonHeight)},
		levels:        NewLevelIndicator(float32(x+150), float32(y+statsY-10), config.StarColor),
		fonts:         fonts,
	}
}

// HitTest reports which part of the panel (x, y) falls on.
func (p *InfoPanel) HitTest(x, y int) PanelButton {
	pt := image.Pt(x, y)
	switch {
	case pt.In(p.UpgradeButton.Rect):
		return PanelUpgrade
	case pt.In(p.MoveButton.Rect):
		return PanelMove
	case pt.In(p.SellButton.Rect):
		return PanelSell
	case pt.In(p.Rect):
		return PanelBody
	}
	return PanelNone
}

// FireRate is shots per second at tps ticks per second, rounded to tenths.
func FireRate(interval, tps int) float64 {
	if interval <= 0 {
		return 0
	}
	return math.Round(float64(tps)/float64(interval)*10) / 10
}

// Draw draws the panel for tower id. Nothing is drawn if the tower is gone.
func (p *InfoPanel) Draw(screen *ebiten.Image, g *app.Game, id types.EntityID) {
	tower, ok := g.World.Towers.Get(id)
	if !ok {
		return
	}
	def := g.Balance.Towers.Get(tower.Kind)
	x, y := float32(p.Rect.Min.X), float32(p.Rect.Min.Y)
	w, h := float32(p.Rect.Dx()), float32(p.Rect.Dy())

	vector.DrawFilledRect(screen, x+3, y+3, w, h, render.WithAlpha(color.RGBA{0, 0, 0, 255}, 0.3), false)
	vector.DrawFilledRect(screen, x, y, w, h, render.WithAlpha(config.PanelBackground, config.PanelAlpha), false)
	vector.StrokeRect(screen, x, y, w, h, 1, render.WithAlpha(color.RGBA{255, 255, 255, 255}, 0.2), false)
	vector.DrawFilledRect(screen, x, y, w, config.PanelHeaderH, def.Color, false)

	left := p.Rect.Min.X + 15
	top := p.Rect.Min.Y
	text.Draw(screen, fmt.Sprintf("%s (Level %d)", def.Name, tower.Level), p.fonts.Title, left, top+24, color.White)

	p.levels.Draw(screen, tower.Level, g.Balance.TowerRules.MaxLevel)
	stats := []string{
		fmt.Sprintf("Damage: %d", tower.Damage),
		fmt.Sprintf("Range: %.0f", tower.Range),
		fmt.Sprintf("Fire Rate: %.1f/sec", FireRate(tower.FireInterval, config.TPS)),
	}
	for i, s := range stats {
		text.Draw(screen, s, p.fonts.Regular, left, top+statsY+i*lineHeight, config.TextLight)
	}

	money := g.Stats().Money
	if tower.CanUpgrade() {
		price, _ := g.UpgradePrice(id)
		p.UpgradeButton.Text = fmt.Sprintf("UPGRADE $%d", price)
		fill := config.DisabledColor
		if money >= price {
			fill = config.UpgradeColor
		}
		p.drawButton(screen, p.UpgradeButton, fill)
	} else {
		p.UpgradeButton.Text = "MAX LEVEL"
		p.drawButton(screen, p.UpgradeButton, config.MaxLevelColor)
	}
	p.drawButton(screen, p.MoveButton, config.MoveColor)

	refund, _ := g.SellValue(id)
	p.SellButton.Text = fmt.Sprintf("SELL $%d", refund)
	p.drawButton(screen, p.SellButton, config.SellColor)
}

func (p *InfoPanel) drawButton(screen *ebiten.Image, b Button, fill color.RGBA) {
	r := b.Rect
	x, y, w, h := float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, render.WithAlpha(fill, 0.8), false)
	vector.StrokeRect(screen, x, y, w, h, 1, fill, false)
	DrawCentered(screen, b.Text, p.fonts.Regular, r.Min.X+r.Dx()/2, r.Min.Y+r.Dy()/2, color.White)
}
