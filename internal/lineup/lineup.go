package lineup

import (
	"fmt"

	"github.com/scoreloop/recapboard/internal/media"
	"github.com/scoreloop/recapboard/internal/statsapi"
)

// PageSize is the number of snippets shown per page.
const PageSize = 5

// Lineup is a scrollable listing of games from a particular date. It is
// confined to the render goroutine; nothing here needs locking because the
// only cross-goroutine traffic is each Photo's own inbox.
type Lineup struct {
	games  []Game
	cursor int
}

// FromSchedule builds a lineup from the most recent date in a fetched
// schedule document, kicking off every photo download eagerly.
func FromSchedule(schedule *statsapi.Schedule) (*Lineup, error) {
	if len(schedule.Dates) == 0 {
		return nil, fmt.Errorf("schedule has no dates")
	}
	date := schedule.Dates[len(schedule.Dates)-1]
	if len(date.Games) < 2 {
		return nil, fmt.Errorf("schedule for %s has %d games, need at least 2", date.Date, len(date.Games))
	}

	games := make([]Game, 0, len(date.Games))
	for _, game := range date.Games {
		home := game.Content.Editorial.Recap.Home
		games = append(games, NewGame(
			home.Headline,
			home.Subhead,
			media.NewSizedPhoto(home.Photo.Cuts.Large.Src, home.Photo.Cuts.Large.Width, home.Photo.Cuts.Large.Height),
			media.NewSizedPhoto(home.Photo.Cuts.Small.Src, home.Photo.Cuts.Small.Width, home.Photo.Cuts.Small.Height),
		))
	}
	return &Lineup{games: games}, nil
}

// New builds a lineup directly from games. At least two games are required
// so the cursor bounds stay meaningful.
func New(games []Game) (*Lineup, error) {
	if len(games) < 2 {
		return nil, fmt.Errorf("lineup needs at least 2 games, got %d", len(games))
	}
	return &Lineup{games: games}, nil
}

// Len returns the number of games in the lineup.
func (l *Lineup) Len() int {
	return len(l.games)
}

// Cursor returns the index of the focused game.
func (l *Lineup) Cursor() int {
	return l.cursor
}

// Left moves the cursor one game to the left, stopping at the first game.
func (l *Lineup) Left() {
	if l.cursor > 0 {
		l.cursor--
	}
}

// Right moves the cursor one game to the right, stopping one short of the
// last index. The final game is deliberately unreachable; this clamp matches
// the window math in Page, which also stops one short (see lineup tests).
func (l *Lineup) Right() {
	if l.cursor < len(l.games)-2 {
		l.cursor++
	}
}

// HasMore reports whether there is an additional page of content to the
// right of the current page.
func (l *Lineup) HasMore() bool {
	return l.cursor < len(l.games)-PageSize
}

// HasLess reports whether there is an additional page of content to the
// left of the current page.
func (l *Lineup) HasLess() bool {
	return l.cursor > PageSize-1
}

// Page returns the snippets for the current page, polling each visible photo
// and substituting the bundled logo of the right size class for any that has
// not arrived. Polling caches delivered photos, so a Page call is where a
// photo's readiness becomes visible.
//
// E.g. with 14 games and the cursor on index 7, the page covers indices 5
// through 8 with index 7 focused.
func (l *Lineup) Page() []Snippet {
	page := l.cursor / PageSize
	// The left most snippet of this page.
	left := page * PageSize
	// The right end of the page falls off the map on the last page.
	right := left + PageSize
	if right > len(l.games)-1 {
		right = len(l.games) - 1
	}
	// The cursor may be 7, but the focus of this page is index 2.
	focus := l.cursor % PageSize

	snippets := make([]Snippet, 0, right-left)
	for i := range l.games[left:right] {
		game := &l.games[left+i]
		if i == focus {
			// If the photo hasn't come in over the network yet, this is
			// where we fall back to the appropriately sized logo.
			img := game.large.Image()
			if img == nil {
				img = media.LogoLarge()
			}
			snippets = append(snippets, Snippet{
				Focused:  true,
				Image:    img,
				Headline: game.Headline,
				Subhead:  game.Subhead,
			})
			continue
		}
		img := game.small.Image()
		if img == nil {
			img = media.LogoSmall()
		}
		snippets = append(snippets, Snippet{Image: img})
	}
	return snippets
}
