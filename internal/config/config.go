// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	TPS          = 60

	ClickCooldown = 150 // ms, защита от двойного клика
	MaxDeltaTime  = 0.06

	TowerSelectRadius = 25.0
	TowerBodyRadius   = 15.0
	BarrelLength      = 18.0
	ProjectileRadius  = 3.0
	ParticleRadius    = 3.0

	AnthillRadius         = 35.0
	AnthillEntranceRadius = 12.0
	CakeRadius            = 30.0

	PathWidth    = 25.0
	PathSegments = 8
	PathWobble   = 15.0

	GrassBlades = 200
	GrassAlpha  = 0.3
	GrassSeed   = 12345

	HealthBarWidth  = 16.0
	HealthBarHeight = 3.0

	PanelX        = 15
	PanelY        = 15
	PanelWidth    = 280
	PanelHeight   = 160
	PanelHeaderH  = 35
	PanelButtonsY = 125
	ButtonHeight  = 25

	PanelAlpha = 0.95
	RangeAlpha = 0.25
	GhostAlpha = 0.45

	HUDHeight       = 30
	SpeedButtonX    = 740
	PauseButtonX    = 775
	HUDButtonY      = ScreenHeight - HUDHeight/2
	HUDButtonSize   = 8.0
	WaveIndicatorX  = ScreenWidth / 2
	WaveIndicatorY  = 50
	SliceIndicatorX = 590
)

// Цвета заданы непрозрачными; прозрачность накладывается через render.WithAlpha.
var (
	GrassLight   = color.RGBA{0x9A, 0xCD, 0x32, 255}
	GrassDark    = color.RGBA{0x6B, 0x8E, 0x23, 255}
	GrassBlade   = color.RGBA{107, 142, 35, 255}
	PathColor    = color.RGBA{0x8B, 0x45, 0x13, 255}
	AnthillLight = color.RGBA{0xCD, 0x85, 0x3F, 255}
	AnthillDark  = color.RGBA{0x8B, 0x45, 0x13, 255}
	EntranceCol  = color.RGBA{0x65, 0x43, 0x21, 255}
	DirtColor    = color.RGBA{0xA0, 0x52, 0x2D, 255}

	CakeLight    = color.RGBA{0xFF, 0xEF, 0xD5, 255}
	CakeDark     = color.RGBA{0xDE, 0xB8, 0x87, 255}
	FrostingCol  = color.RGBA{0xFF, 0xB6, 0xC1, 255}
	CherryColor  = color.RGBA{0xFF, 0x00, 0x00, 255}
	LegColor     = color.RGBA{0x65, 0x43, 0x21, 255}
	BarrelColor  = color.RGBA{0x33, 0x33, 0x33, 255}
	StarColor    = color.RGBA{0xFF, 0xD7, 0x00, 255}
	ParticleTint = color.RGBA{0x8B, 0x00, 0x00, 255}

	HealthHigh = color.RGBA{0x32, 0xCD, 0x32, 255}
	HealthMid  = color.RGBA{0xFF, 0xD7, 0x00, 255}
	HealthLow  = color.RGBA{0xFF, 0x45, 0x00, 255}
	HealthBack = color.RGBA{0, 0, 0, 128}

	PanelBackground = color.RGBA{26, 46, 35, 255}
	UpgradeColor    = color.RGBA{0x4C, 0xAF, 0x50, 255}
	MaxLevelColor   = color.RGBA{0xFF, 0xC1, 0x07, 255}
	MoveColor       = color.RGBA{0x21, 0x96, 0xF3, 255}
	SellColor       = color.RGBA{0xF4, 0x43, 0x36, 255}
	DisabledColor   = color.RGBA{100, 100, 100, 255}

	HUDBackground = color.RGBA{0, 0, 0, 140}
	TextLight     = color.RGBA{240, 240, 240, 255}
	TextDark      = color.RGBA{20, 20, 30, 255}
	Overlay       = color.RGBA{0, 0, 0, 179}
	RangeColor    = color.RGBA{255, 255, 255, 255}
	GhostOK       = color.RGBA{255, 255, 255, 255}
	GhostBad      = color.RGBA{255, 60, 60, 255}
	BossWaveColor = color.RGBA{220, 40, 40, 255}
	WaveColor     = color.RGBA{0x21, 0x96, 0xF3, 255}

	// Цвета кнопки скорости по множителю: 1x, 2x, 4x
	SpeedColors = []color.RGBA{
		{70, 130, 180, 255},
		{255, 165, 0, 255},
		{220, 60, 60, 255},
	}
	PauseColor = color.RGBA{70, 130, 180, 255}
	PlayColor  = color.RGBA{50, 205, 50, 255}
)
