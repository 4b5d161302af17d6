package lineup

import (
	"image"

	"github.com/google/uuid"

	"github.com/scoreloop/recapboard/internal/media"
)

// Game is one recap entry in the lineup. The display text is immutable; the
// two photos stream in on their own and are polled every frame.
type Game struct {
	ID       string
	Headline string
	Subhead  string

	large *media.Photo
	small *media.Photo
}

// NewGame creates a lineup entry from its display text and photo handles.
func NewGame(headline, subhead string, large, small *media.Photo) Game {
	return Game{
		ID:       uuid.NewString(),
		Headline: headline,
		Subhead:  subhead,
		large:    large,
		small:    small,
	}
}

// Snippet is the per-frame renderable unit for one game. Exactly one snippet
// per page is focused; focused snippets carry the headline and subhead along
// with the large photo cut, peripheral snippets carry only the small cut.
type Snippet struct {
	Focused  bool
	Image    image.Image
	Headline string
	Subhead  string
}
