package lineup

// Package lineup owns the paginated listing of game recaps: an ordered set
// of games, a scroll cursor, and the windowing math that turns the cursor
// into one page of renderable snippets per frame.
