package sse

import "github.com/osse101/JobHunter_Go/internal/domain"

// LevelUpPayload drives the level-up modal
type LevelUpPayload struct {
	OldLevel int    `json:"old_level"`
	NewLevel int    `json:"new_level"`
	Title    string `json:"title"`
}

// AchievementPayload drives the achievement toast
type AchievementPayload struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// StatePayload is pushed after every committed transition so clients can
// re-render without polling
type StatePayload struct {
	Operation string       `json:"operation"`
	Revision  uint64       `json:"revision"`
	State     domain.State `json:"state"`
}

// ConnectedPayload is the body of the first message on a stream
type ConnectedPayload struct {
	ClientID string   `json:"client_id"`
	Filters  []string `json:"filters,omitempty"`
}
