package ui

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/scoreloop/recapboard/internal/lineup"
	"github.com/scoreloop/recapboard/internal/logging"
)

// Board renders the lineup onto a fixed-size window at a fixed frame rate.
// Each frame it asks the lineup for the current page and rebuilds the canvas
// objects from whatever photos have arrived by then. All lineup access
// happens on the Fyne event goroutine: key handlers run there natively and
// the repaint ticker hops over via fyne.Do, so the lineup needs no locking.
type Board struct {
	window  fyne.Window
	lineup  *lineup.Lineup
	content *fyne.Container
	fps     int

	ticker *time.Ticker
	done   chan struct{}
}

// NewBoard creates the board, installs the key handlers, and paints the
// first frame.
func NewBoard(window fyne.Window, lu *lineup.Lineup, fps int) *Board {
	b := &Board{
		window:  window,
		lineup:  lu,
		content: container.NewWithoutLayout(),
		fps:     fps,
	}
	window.Canvas().SetOnTypedKey(b.onTypedKey)
	window.SetContent(b.content)
	b.redraw()
	return b
}

// Start begins the repaint loop. The loop runs until Stop is called.
func (b *Board) Start() {
	b.ticker = time.NewTicker(time.Second / time.Duration(b.fps))
	b.done = make(chan struct{})
	logging.Logger.Info().Int("fps", b.fps).Msg("Board repaint loop started")
	go func() {
		for {
			select {
			case <-b.done:
				return
			case <-b.ticker.C:
				fyne.Do(b.redraw)
			}
		}
	}()
}

// Stop halts the repaint loop. Photo downloads still in flight keep running;
// their sends land in inboxes nobody drains, which is harmless.
func (b *Board) Stop() {
	if b.ticker == nil {
		return
	}
	b.ticker.Stop()
	close(b.done)
	b.ticker = nil
}

// onTypedKey moves the cursor between frames. One key event is one move.
func (b *Board) onTypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyLeft:
		b.lineup.Left()
	case fyne.KeyRight:
		b.lineup.Right()
	case fyne.KeyEscape:
		b.window.Close()
	}
}

// redraw rebuilds the frame from the current page. Must run on the Fyne
// event goroutine.
func (b *Board) redraw() {
	objects := make([]fyne.CanvasObject, 0, 3*lineup.PageSize+3)

	backdrop := canvas.NewImageFromImage(Background())
	backdrop.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	objects = append(objects, backdrop)

	// The first snippet is padded off the left wall; each one after sits a
	// padding's width past the previous image's right edge.
	leftEdge := SnippetPadding
	for _, snippet := range b.lineup.Page() {
		width := float32(snippet.Image.Bounds().Dx())
		height := float32(snippet.Image.Bounds().Dy())

		photo := canvas.NewImageFromImage(snippet.Image)
		photo.Resize(fyne.NewSize(width, height))

		if snippet.Focused {
			photo.Move(fyne.NewPos(leftEdge, FocusedImageY))
			objects = append(objects, photo)

			heading := canvas.NewText(snippet.Headline, color.White)
			heading.TextSize = HeadingTextSize
			heading.TextStyle = fyne.TextStyle{Bold: true}
			heading.Move(fyne.NewPos(leftEdge+HeadingIndent, HeadingY))
			objects = append(objects, heading)

			subhead := canvas.NewText(snippet.Subhead, color.White)
			subhead.TextSize = SubheadTextSize
			subhead.Move(fyne.NewPos(leftEdge, SubheadY))
			objects = append(objects, subhead)
		} else {
			photo.Move(fyne.NewPos(leftEdge, PeripheralImageY))
			objects = append(objects, photo)
		}

		leftEdge += width + SnippetPadding
	}

	// The arrows tell the viewer whether there is a page to either side.
	if b.lineup.HasLess() {
		arrow := canvas.NewImageFromImage(LeftArrow())
		arrow.Resize(fyne.NewSize(float32(LeftArrow().Bounds().Dx()), float32(LeftArrow().Bounds().Dy())))
		arrow.Move(fyne.NewPos(0, 0))
		objects = append(objects, arrow)
	}
	if b.lineup.HasMore() {
		arrow := canvas.NewImageFromImage(RightArrow())
		arrow.Resize(fyne.NewSize(float32(RightArrow().Bounds().Dx()), float32(RightArrow().Bounds().Dy())))
		arrow.Move(fyne.NewPos(WindowWidth-float32(RightArrow().Bounds().Dx()), 0))
		objects = append(objects, arrow)
	}

	b.content.Objects = objects
	b.content.Refresh()
}
