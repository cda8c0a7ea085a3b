package model

// TrainClass describes one bookable class on a train. Catalog entries are
// rebuilt on every process start and the Available count is randomized at
// construction time, so it is a display value only and is never decremented
// by bookings.
//
// Fields:
//  Type      – short class code (SL, 3A, 2A, 1A, CC, EC, 2S).
//  Name      – human-readable class name (e.g. "Third AC").
//  Price     – fare per passenger in rupees.
//  Available – seat count shown to the user; not inventory.
type TrainClass struct {
    Type      string `json:"type"`
    Name      string `json:"name"`
    Price     int    `json:"price"`
    Available int    `json:"available"`
}

// Train is a static catalog entity. It is never persisted on its own; a
// booking embeds a full snapshot of the train it was made against, so the
// record stays readable even if the catalog changes between runs.
type Train struct {
    ID        string       `json:"id"`
    Number    string       `json:"number"`
    Name      string       `json:"name"`
    From      string       `json:"from"`
    To        string       `json:"to"`
    Departure string       `json:"departure"`
    Arrival   string       `json:"arrival"`
    Duration  string       `json:"duration"`
    Classes   []TrainClass `json:"classes"`
}
