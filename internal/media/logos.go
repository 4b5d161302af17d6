package media

import (
	"bytes"
	_ "embed"
	"image"
	"image/png"
	"sync"
)

// The fallback logos are baked into the binary. Bundling them as loose files
// would mean a filesystem read that can fail at runtime, and these are the
// images every frame leans on until real photos arrive.
var (
	//go:embed assets/logo_large.png
	logoLargeBytes []byte

	//go:embed assets/logo_small.png
	logoSmallBytes []byte
)

var (
	logoOnce  sync.Once
	logoLarge image.Image
	logoSmall image.Image
)

// decodeLogos decodes both bundled logos exactly once. These are our own
// assets baked into the binary, so a decode failure is a build defect and a
// stop-the-world moment.
func decodeLogos() {
	var err error
	logoLarge, err = png.Decode(bytes.NewReader(logoLargeBytes))
	if err != nil {
		panic("media: bundled large logo failed to decode: " + err.Error())
	}
	logoSmall, err = png.Decode(bytes.NewReader(logoSmallBytes))
	if err != nil {
		panic("media: bundled small logo failed to decode: " + err.Error())
	}
}

// LogoLarge returns the bundled fallback image for the focused size class.
// The decoded image is shared and must be treated as read-only.
func LogoLarge() image.Image {
	logoOnce.Do(decodeLogos)
	return logoLarge
}

// LogoSmall returns the bundled fallback image for the peripheral size class.
// The decoded image is shared and must be treated as read-only.
func LogoSmall() image.Image {
	logoOnce.Do(decodeLogos)
	return logoSmall
}
