package assembly_compare

import "image/color"

// Named colors used across the charts.
var (
	skyBlue        = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	lightCoral     = color.RGBA{R: 240, G: 128, B: 128, A: 255}
	steelBlue      = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	darkOrange     = color.RGBA{R: 255, G: 140, A: 255}
	mediumSeaGreen = color.RGBA{R: 60, G: 179, B: 113, A: 255}
	salmon         = color.NRGBA{R: 250, G: 128, B: 114, A: 178}
	purple         = color.NRGBA{R: 128, B: 128, A: 153}
	indianRed      = color.RGBA{R: 205, G: 92, B: 92, A: 255}
	blue           = color.RGBA{B: 255, A: 255}
	red            = color.RGBA{R: 255, A: 255}
	green          = color.RGBA{G: 128, A: 255}
	orange         = color.RGBA{R: 255, G: 165, A: 255}

	goodColor = color.NRGBA{R: 0x2e, G: 0xcc, B: 0x71, A: 178}
	fairColor = color.NRGBA{R: 0xf3, G: 0x9c, B: 0x12, A: 178}
	poorColor = color.NRGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 178}
)

