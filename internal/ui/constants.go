package ui

// UI-wide constants to avoid magic numbers scattered across the codebase.

// Window sizing. The board is laid out for a fixed 1080p surface and does
// not respond to resizes.
const (
	WindowWidth  float32 = 1920
	WindowHeight float32 = 1080
)

// Snippet layout
const (
	// SnippetPadding is the gap between on-screen snippets and from the
	// left wall of the screen.
	SnippetPadding float32 = 27.5

	// FocusedImageY is the top edge of the focused (large) photo.
	FocusedImageY float32 = 540

	// PeripheralImageY vertically centers the small photos against the
	// large one.
	PeripheralImageY float32 = 578.5

	// HeadingY and SubheadY place the focused snippet's text above and
	// below its photo.
	HeadingY      float32 = 480
	SubheadY      float32 = 830
	HeadingIndent float32 = 40
)

// Text sizing
const (
	HeadingTextSize float32 = 22
	SubheadTextSize float32 = 16
	ErrorTextSize   float32 = 20
)
