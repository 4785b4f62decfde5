package domain

// Genre is the content category a contribution belongs to.
type Genre int

const (
	GenreUnselected Genre = iota
	GenreOriginal
	GenreTranslation
)

// String returns the label used in logs and the journal.
func (g Genre) String() string {
	switch g {
	case GenreOriginal:
		return "original"
	case GenreTranslation:
		return "translation"
	default:
		return "unselected"
	}
}

// Title returns the human readable card title for the genre.
func (g Genre) Title() string {
	switch g {
	case GenreOriginal:
		return "Original & reprinted Chinese articles"
	case GenreTranslation:
		return "Foreign article translation"
	default:
		return ""
	}
}

// Genres lists the selectable genres in display order.
var Genres = []Genre{GenreTranslation, GenreOriginal}

// DefaultUpstreams maps each genre to the canonical content repository
// contributions are submitted to.
var DefaultUpstreams = map[Genre]RepoIdentity{
	GenreOriginal:    {Owner: "FOSScope", Name: "Articles"},
	GenreTranslation: {Owner: "FOSScope", Name: "TranslateProject"},
}
