package db_models

import (
	"strings"

	"github.com/google/uuid"
)

type WishlistEntry struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;index;not null"`

	Title       string `gorm:"not null"`
	IssueNumber *string
	Publisher   *string

	Owner Account `gorm:"foreignKey:UserID"`
}

// MatchesComic reports whether a newly listed comic satisfies this wishlist
// entry. Titles and publishers compare case-insensitively; issue numbers
// compare as exact strings, matching the stored representation.
func (w *WishlistEntry) MatchesComic(comic *Comic) bool {
	if !strings.EqualFold(w.Title, comic.Title) {
		return false
	}
	if w.IssueNumber != nil && *w.IssueNumber != comic.IssueNumber {
		return false
	}
	if w.Publisher != nil && !strings.EqualFold(*w.Publisher, comic.Publisher) {
		return false
	}
	return true
}
