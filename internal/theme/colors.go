package theme

// System accent colors. The Dark variants are tuned for dark backgrounds.
var (
	SystemBlue       = FromRGB8(0, 122, 255)
	SystemBlueDark   = FromRGB8(10, 132, 255)
	SystemGreen      = FromRGB8(52, 199, 89)
	SystemGreenDark  = FromRGB8(48, 209, 88)
	SystemRed        = FromRGB8(255, 59, 48)
	SystemRedDark    = FromRGB8(255, 69, 58)
	SystemOrange     = FromRGB8(255, 149, 0)
	SystemOrangeDark = FromRGB8(255, 159, 10)
	SystemYellow     = FromRGB8(255, 204, 0)
	SystemYellowDark = FromRGB8(255, 214, 10)
	SystemPurple     = FromRGB8(175, 82, 222)
	SystemPurpleDark = FromRGB8(191, 90, 242)
	SystemPink       = FromRGB8(255, 45, 85)
	SystemPinkDark   = FromRGB8(255, 55, 95)
	SystemTeal       = FromRGB8(48, 176, 199)
	SystemTealDark   = FromRGB8(64, 200, 224)
	SystemIndigo     = FromRGB8(88, 86, 214)
	SystemIndigoDark = FromRGB8(94, 92, 230)
	SystemMint       = FromRGB8(0, 199, 190)
	SystemMintDark   = FromRGB8(99, 230, 226)
	SystemBrown      = FromRGB8(162, 132, 94)
	SystemBrownDark  = FromRGB8(172, 142, 104)
)

// Neutral grays, 2 (darkest in light mode) through 6.
var (
	Gray2Light = FromRGB8(174, 174, 178)
	Gray3Light = FromRGB8(199, 199, 204)
	Gray4Light = FromRGB8(209, 209, 214)
	Gray5Light = FromRGB8(229, 229, 234)
	Gray6Light = FromRGB8(242, 242, 247)

	Gray2Dark = FromRGB8(99, 99, 102)
	Gray3Dark = FromRGB8(72, 72, 74)
	Gray4Dark = FromRGB8(58, 58, 60)
	Gray5Dark = FromRGB8(44, 44, 46)
	Gray6Dark = FromRGB8(28, 28, 30)
)

// Corner radii shared by the widget styles.
const (
	CornerRadius      = 8.0
	SmallCornerRadius = 6.0
	TinyCornerRadius  = 4.0
)
