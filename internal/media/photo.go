package media

import (
	"bytes"
	"image"
	"image/jpeg"
	"io"
	"net/http"
	"net/url"

	"github.com/nfnt/resize"

	"github.com/scoreloop/recapboard/internal/logging"
)

// Photo is a handle to a remote photo that may or may not have arrived yet.
// Construction fires off the download on its own goroutine; Image polls for
// the result without blocking. A Photo is meant to be owned by a single
// goroutine (the render loop); it is not safe for concurrent use.
type Photo struct {
	cached image.Image
	inbox  chan image.Image
}

// NewPhoto creates a photo handle for the given source URL and starts the
// download immediately. It never fails; download failures only ever show up
// as the photo never becoming ready.
func NewPhoto(src string) *Photo {
	return NewSizedPhoto(src, 0, 0)
}

// NewSizedPhoto is NewPhoto with a declared cut size. A downloaded image
// whose pixel dimensions differ from the declared size is downscaled to fit,
// so a misbehaving CDN cannot reflow the board. Zero dimensions skip the
// check.
func NewSizedPhoto(src string, width, height int) *Photo {
	p := &Photo{inbox: make(chan image.Image, 1)}
	go fetch(src, width, height, p.inbox)
	return p
}

// Image returns the downloaded photo, or nil if the download has not
// finished. Once a photo has been received it is cached and the same image
// is returned on every subsequent call; the channel is never touched again.
// A failed download is indistinguishable from one still in flight: both
// return nil.
func (p *Photo) Image() image.Image {
	if p.cached != nil {
		return p.cached
	}
	select {
	case img := <-p.inbox:
		p.cached = img
		return p.cached
	default:
		return nil
	}
}

// fetch runs the download pipeline for one photo. Every failure is terminal
// for this photo: log one line and return without sending. The inbox has
// capacity 1 and sees at most one send, so the send never blocks — even when
// the owning Photo is long gone.
func fetch(src string, width, height int, inbox chan<- image.Image) {
	target, err := url.Parse(src)
	if err != nil {
		logging.Logger.Warn().Str("src", src).Err(err).
			Msg("Failed to parse photo source as a URL")
		return
	}

	resp, err := http.Get(target.String())
	if err != nil {
		logging.Logger.Warn().Str("src", src).Err(err).
			Msg("Failed to establish connection for photo")
		return
	}
	defer resp.Body.Close()

	buf, err := io.ReadAll(resp.Body)
	if err != nil {
		logging.Logger.Warn().Str("src", src).Err(err).
			Msg("Failed to download photo")
		return
	}

	img, err := jpeg.Decode(bytes.NewReader(buf))
	if err != nil {
		logging.Logger.Warn().Str("src", src).Err(err).
			Msg("Photo did not parse as a JPEG")
		return
	}

	if width > 0 && height > 0 {
		bounds := img.Bounds()
		if bounds.Dx() != width || bounds.Dy() != height {
			img = resize.Resize(uint(width), uint(height), img, resize.Lanczos3)
		}
	}

	inbox <- img
}
