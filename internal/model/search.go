package model

// SearchQuery captures one train search as submitted from the home screen.
// Queries are ephemeral; a capped recent-searches list is persisted so the
// last few can be replayed.
type SearchQuery struct {
    From       string `json:"from"`
    To         string `json:"to"`
    Date       string `json:"date"`
    Passengers int    `json:"passengers"`
}
