package statsapi

// Default schedule endpoint. The hydrate query asks the API to inline the
// editorial recap content for every game on the date.
const DefaultScheduleURL = "http://statsapi.mlb.com/api/v1/schedule?hydrate=" +
	"game(content(editorial(recap))),decisions&date=2018-06-10&sportId=1"

// Cut size labels used by the stats API photo cuts map.
const (
	CutLabelLarge = "480x270"
	CutLabelSmall = "320x180"
)

// Schedule is the top-level schedule document.
type Schedule struct {
	Copyright string `json:"copyright"`
	Dates     []Date `json:"dates"`
}

// Date groups the games played on a single calendar date.
type Date struct {
	Date  string `json:"date"`
	Games []Game `json:"games"`
}

// Game carries the hydrated content for one game.
type Game struct {
	Content Content `json:"content"`
}

// Content holds the editorial subtree of a game.
type Content struct {
	Editorial Editorial `json:"editorial"`
}

// Editorial holds the recap articles for a game.
type Editorial struct {
	Recap Recap `json:"recap"`
}

// Recap holds the home club's recap article.
type Recap struct {
	Home Home `json:"home"`
}

// Home is the recap article body: headline, subhead, and the photo cuts.
type Home struct {
	Headline string `json:"headline"`
	Subhead  string `json:"subhead"`
	Photo    Photos `json:"photo"`
}

// Photos wraps the per-size photo cuts map.
type Photos struct {
	Cuts Cuts `json:"cuts"`
}

// Cuts exposes the two cut sizes the board renders. The stats API keys the
// map by literal pixel-dimension labels.
type Cuts struct {
	Large Cut `json:"480x270"`
	Small Cut `json:"320x180"`
}

// Cut describes a single pre-sized photo rendition.
type Cut struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Src    string `json:"src"`
}
