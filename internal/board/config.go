package board

// Board geometry. Everything on screen is laid out from these values.
const (
	BoardSize    = 8   // cells per side
	CellSize     = 80  // pixels per cell
	TrayHeight   = 120 // staging area below the board
	UIMargin     = 20
	HeaderHeight = 60 // buttons and score
	FooterHeight = 40 // status line and copy button
)

// Derived layout.
const (
	WindowWidth  = BoardSize*CellSize + 2*UIMargin
	WindowHeight = HeaderHeight + BoardSize*CellSize + TrayHeight + FooterHeight + 4*UIMargin

	HeaderY = UIMargin

	BoardX = UIMargin
	BoardY = HeaderY + HeaderHeight + UIMargin

	// BoardPixels is the side length of the board in pixels.
	BoardPixels = BoardSize * CellSize

	TrayY = BoardY + BoardPixels + UIMargin

	FooterY = TrayY + TrayHeight + UIMargin
)

// TraySlots is the number of cell-sized parking slots in the tray.
const TraySlots = BoardSize

// maxBrightness is the overlap count that saturates a tile.
const maxBrightness = 3
