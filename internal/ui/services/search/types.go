package search

import "github.com/RoaringBitmap/roaring/v2"

// State holds the result buffer for the last committed query
type State struct {
	Query   string          // committed query the buffer was built for
	Active  bool            // false when Query is empty
	Matches *roaring.Bitmap // catalog positions of matching records
	Literal bool            // query did not compile and was matched literally
}

// Event types
type SearchCompletedEvent struct {
	Query      string
	MatchCount int
	FirstMatch int // catalog position of first match (-1 if none)
	Literal    bool
}

type SearchClearedEvent struct{}
