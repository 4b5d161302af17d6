package lineup

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/scoreloop/recapboard/internal/logging"
	"github.com/scoreloop/recapboard/internal/media"
)

func TestMain(m *testing.M) {
	logging.Init(logging.Config{Level: "warn", Format: "json", Output: io.Discard})
	m.Run()
}

// jpegBytes encodes a solid-color test image of the given size.
func jpegBytes(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 30, G: 30, B: 200, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("Failed to encode test JPEG: %v", err)
	}
	return buf.Bytes()
}

// newTestLineup builds a lineup of n games whose photos never arrive, so
// every page renders the fallback logos.
func newTestLineup(t *testing.T, n int) *Lineup {
	t.Helper()

	games := make([]Game, 0, n)
	for i := 0; i < n; i++ {
		games = append(games, NewGame(
			fmt.Sprintf("Headline %d", i),
			fmt.Sprintf("Subhead %d", i),
			&media.Photo{},
			&media.Photo{},
		))
	}

	lu, err := New(games)
	if err != nil {
		t.Fatalf("Expected no error building lineup, got %v", err)
	}
	return lu
}

func TestLeftSaturatesAtZero(t *testing.T) {
	lu := newTestLineup(t, 14)

	for i := 0; i < 50; i++ {
		lu.Left()
	}
	if lu.Cursor() != 0 {
		t.Errorf("Expected cursor 0 after many lefts, got %d", lu.Cursor())
	}
}

func TestRightStopsShortOfLastGame(t *testing.T) {
	// The rightmost reachable index is len-2: the final game can never be
	// focused. The window math in Page stops one short of the end in the
	// same way, so the two bounds agree with each other.
	lu := newTestLineup(t, 14)

	for i := 0; i < 100; i++ {
		lu.Right()
	}
	if lu.Cursor() != 12 {
		t.Errorf("Expected cursor to stop at 12, got %d", lu.Cursor())
	}
}

func TestCursorStaysInRange(t *testing.T) {
	lu := newTestLineup(t, 14)

	moves := []func(){lu.Right, lu.Right, lu.Left, lu.Right, lu.Left, lu.Left, lu.Left, lu.Right}
	for round := 0; round < 40; round++ {
		for _, move := range moves {
			move()
			if lu.Cursor() < 0 || lu.Cursor() > 12 {
				t.Fatalf("Cursor %d escaped [0, 12]", lu.Cursor())
			}
		}
	}
}

func TestHasLess(t *testing.T) {
	lu := newTestLineup(t, 14)

	for cursor := 0; cursor <= 12; cursor++ {
		want := cursor >= PageSize
		if got := lu.HasLess(); got != want {
			t.Errorf("Cursor %d: expected HasLess %v, got %v", cursor, want, got)
		}
		lu.Right()
	}
}

func TestHasMore(t *testing.T) {
	lu := newTestLineup(t, 14)

	for cursor := 0; cursor <= 12; cursor++ {
		want := cursor < 14-PageSize
		if got := lu.HasMore(); got != want {
			t.Errorf("Cursor %d: expected HasMore %v, got %v", cursor, want, got)
		}
		lu.Right()
	}
}

func TestPageMiddle(t *testing.T) {
	// 14 games, cursor 7: page 1 covers indices 5 through 9 with the
	// focus at offset 2.
	lu := newTestLineup(t, 14)
	for i := 0; i < 7; i++ {
		lu.Right()
	}

	page := lu.Page()
	if len(page) != PageSize {
		t.Fatalf("Expected %d snippets, got %d", PageSize, len(page))
	}

	for i, snippet := range page {
		if snippet.Focused != (i == 2) {
			t.Errorf("Snippet %d: unexpected focus state %v", i, snippet.Focused)
		}
	}
	if page[2].Headline != "Headline 7" {
		t.Errorf("Expected focused headline 'Headline 7', got '%s'", page[2].Headline)
	}
	if !lu.HasLess() || !lu.HasMore() {
		t.Error("Expected pages on both sides at cursor 7")
	}
}

func TestPageLastIsShort(t *testing.T) {
	// At the max cursor the window covers indices 10 through 12. Index 13
	// is never visible: the window end stops one short of the length, the
	// same quirk that keeps the cursor off the final index.
	lu := newTestLineup(t, 14)
	for i := 0; i < 100; i++ {
		lu.Right()
	}

	page := lu.Page()
	if len(page) != 3 {
		t.Fatalf("Expected 3 snippets on the last page, got %d", len(page))
	}
	if !page[2].Focused {
		t.Error("Expected the last reachable game to be focused")
	}
	if page[2].Headline != "Headline 12" {
		t.Errorf("Expected focused headline 'Headline 12', got '%s'", page[2].Headline)
	}
	if lu.HasMore() {
		t.Error("Expected no further page at the max cursor")
	}
	if !lu.HasLess() {
		t.Error("Expected previous pages at the max cursor")
	}
}

func TestPageExactlyOneFocused(t *testing.T) {
	lu := newTestLineup(t, 14)

	for cursor := 0; cursor <= 12; cursor++ {
		page := lu.Page()
		if len(page) > PageSize {
			t.Errorf("Cursor %d: page has %d snippets", cursor, len(page))
		}

		focused := 0
		for _, snippet := range page {
			if snippet.Focused {
				focused++
			}
		}
		if focused != 1 {
			t.Errorf("Cursor %d: expected exactly 1 focused snippet, got %d", cursor, focused)
		}
		lu.Right()
	}
}

func TestPageFallsBackToLogos(t *testing.T) {
	lu := newTestLineup(t, 14)

	page := lu.Page()
	for i, snippet := range page {
		if snippet.Focused {
			if snippet.Image != media.LogoLarge() {
				t.Errorf("Snippet %d: expected the large fallback logo", i)
			}
		} else if snippet.Image != media.LogoSmall() {
			t.Errorf("Snippet %d: expected the small fallback logo", i)
		}
	}
}

func TestPageShowsDeliveredPhoto(t *testing.T) {
	payload := jpegBytes(t, 16, 16)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer server.Close()

	games := []Game{
		NewGame("First", "sub", media.NewPhoto(server.URL), media.NewPhoto(server.URL)),
		NewGame("Second", "sub", &media.Photo{}, &media.Photo{}),
	}
	lu, err := New(games)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Paging polls the visible photos; keep rendering frames until the
	// focused one stops falling back.
	stop := time.Now().Add(2 * time.Second)
	for time.Now().Before(stop) {
		page := lu.Page()
		if page[0].Image != media.LogoLarge() {
			if page[0].Image.Bounds().Dx() != 16 {
				t.Errorf("Expected the downloaded 16x16 photo, got %dx%d",
					page[0].Image.Bounds().Dx(), page[0].Image.Bounds().Dy())
			}
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("Photo never replaced the fallback logo")
}
