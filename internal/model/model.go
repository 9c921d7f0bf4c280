// Package model defines the typed Silver-tier domain records this module
// validates, transforms, and upserts. Every record carries provenance
// columns (source, source URL, ingest timestamp) in addition to its
// domain fields.
package model

import "time"

// GameStatus is the canonical set of game lifecycle states.
type GameStatus string

const (
	StatusScheduled   GameStatus = "SCHEDULED"
	StatusLive        GameStatus = "LIVE"
	StatusFinal       GameStatus = "FINAL"
	StatusPostponed   GameStatus = "POSTPONED"
	StatusCancelled   GameStatus = "CANCELLED"
	StatusSuspended   GameStatus = "SUSPENDED"
	StatusRescheduled GameStatus = "RESCHEDULED"
)

// Provenance is embedded in every persisted record.
type Provenance struct {
	Source        string
	SourceURL     string
	IngestedAtUTC time.Time
}

// Game is the primary entity: one row per upstream game.
type Game struct {
	GameID      string // opaque 10-char string, leading zeros significant
	Season      string // e.g. "2024-25"
	GameDate    string // YYYY-MM-DD, local
	HomeTeamID  int
	AwayTeamID  int
	Status      GameStatus
	ArenaName   string
	Attendance  *int
	Provenance
}

// PbpEvent is one play-by-play event. Key: (GameID, EventIdx).
type PbpEvent struct {
	GameID         string
	EventIdx       int
	Period         int
	Clock          string // as-fetched clock string, never numeric
	ClockSeconds   float64
	SecondsElapsed float64
	TeamID         *int
	Player1ID      *int
	Player2ID      *int
	ActionType     *int
	ActionSubtype  *int
	Description    string
	Provenance
}

// ShotEvent is one shot attempt. Key: (GameID, PlayerID, Period, LocX, LocY).
type ShotEvent struct {
	GameID       string
	PlayerID     int
	Period       int
	LocX         int
	LocY         int
	TeamID       *int
	ShotMadeFlag int // 0 or 1
	EventNum     *int
	Provenance
}

// LineupStint is a 5-player on-court interval.
// Key: (GameID, TeamID, Period, LineupPlayerIDs).
type LineupStint struct {
	GameID          string
	TeamID          int
	Period          int
	LineupPlayerIDs [5]int // sorted ascending
	SecondsPlayed   float64
	Provenance
}

// StartingLineup is the 5 starters for one team in one game.
type StartingLineup struct {
	GameID    string
	TeamID    int
	PlayerIDs [5]int
	Provenance
}

// RefRole enumerates officiating roles.
type RefRole string

const (
	RoleCrewChief RefRole = "CREW_CHIEF"
	RoleReferee   RefRole = "REFEREE"
	RoleUmpire    RefRole = "UMPIRE"
	RoleOfficial  RefRole = "OFFICIAL"
)

// RefAssignment is one official assigned to one game.
// Key: (GameID, RefereeNameSlug).
type RefAssignment struct {
	GameID          string
	RefereeNameSlug string
	RefereeName     string
	Role            RefRole
	Provenance
}

// RefAlternate is one alternate official listed for a game but not assigned.
type RefAlternate struct {
	GameID          string
	RefereeNameSlug string
	RefereeName     string
	Provenance
}

// Outcome holds the final score and derived margin. Key: GameID.
type Outcome struct {
	GameID      string
	HomePoints  int
	AwayPoints  int
	TotalPoints int
	HomeWin     bool
	Margin      int
	Provenance
}

// GameIdCrosswalk maps an opaque source game ID to cross-provider aliases.
// Key: GameID. BrefGameID is unique when present.
type GameIdCrosswalk struct {
	GameID     string
	BrefGameID *string
	Provenance
}

// InjuryStatus tracks a player's pregame availability for one game.
// Key: (GameID, PlayerID). Best-effort: absence of rows is not an error.
type InjuryStatus struct {
	GameID   string
	PlayerID int
	Status   string // OUT, DOUBTFUL, QUESTIONABLE, PROBABLE, AVAILABLE
	Reason   string
	Provenance
}
