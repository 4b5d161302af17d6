package ui

import (
	"bytes"
	_ "embed"
	"image"
	"image/png"
	"sync"
)

// Chrome assets are baked into the binary the same way the media package
// bakes in the fallback logos.
var (
	//go:embed assets/background.png
	backgroundBytes []byte

	//go:embed assets/left_arrow.png
	leftArrowBytes []byte

	//go:embed assets/right_arrow.png
	rightArrowBytes []byte
)

var (
	chromeOnce sync.Once
	background image.Image
	leftArrow  image.Image
	rightArrow image.Image
)

// decodeChrome decodes the bundled chrome assets exactly once. These are our
// own images, so failing to decode them is a build defect worth stopping for.
func decodeChrome() {
	background = mustDecode(backgroundBytes, "background")
	leftArrow = mustDecode(leftArrowBytes, "left arrow")
	rightArrow = mustDecode(rightArrowBytes, "right arrow")
}

func mustDecode(data []byte, name string) image.Image {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		panic("ui: bundled " + name + " failed to decode: " + err.Error())
	}
	return img
}

// Background returns the full-screen backdrop image.
func Background() image.Image {
	chromeOnce.Do(decodeChrome)
	return background
}

// LeftArrow returns the previous-page indicator image.
func LeftArrow() image.Image {
	chromeOnce.Do(decodeChrome)
	return leftArrow
}

// RightArrow returns the next-page indicator image.
func RightArrow() image.Image {
	chromeOnce.Do(decodeChrome)
	return rightArrow
}
