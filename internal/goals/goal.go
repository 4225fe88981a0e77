package goals

import "time"

// Goal represents a single user-defined goal
type Goal struct {
	ID          int64
	Title       string
	Description string
	Category    string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SearchText returns the text the guidance engine matches against:
// title, description and category concatenated.
func (g *Goal) SearchText() string {
	text := g.Title
	if g.Description != "" {
		text += " " + g.Description
	}
	if g.Category != "" {
		text += " " + g.Category
	}
	return text
}
