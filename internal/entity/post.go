package entity

import "time"

type Post struct {
	ID          string    `json:"id"`
	AuthorID    string    `json:"author_id"`
	Title       string    `json:"title"`
	Text        string    `json:"text"`
	PubDate     time.Time `json:"pub_date"`
	IsPublished bool      `json:"is_published"`
	ImageURL    string    `json:"image_url,omitempty"`
	CategoryID  string    `json:"category_id,omitempty"`
	LocationID  string    `json:"location_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Author   *User     `json:"author,omitempty"`
	Category *Category `json:"category,omitempty"`
	Location *Location `json:"location,omitempty"`
	Comments []Comment `json:"comments,omitempty"`
}

// VisibleAt reports whether the post is part of the public feed at the
// given instant: published, not scheduled for the future, and attached to
// a published category. The author bypasses this via VisibleTo.
func (p *Post) VisibleAt(now time.Time) bool {
	return p.IsPublished &&
		!p.PubDate.After(now) &&
		p.Category != nil &&
		p.Category.IsPublished
}

// VisibleTo reports whether the viewer identified by actorID may see the
// post. Authors always see their own posts, including scheduled and
// unpublished ones.
func (p *Post) VisibleTo(actorID string, now time.Time) bool {
	if actorID != "" && actorID == p.AuthorID {
		return true
	}
	return p.VisibleAt(now)
}
