package rawio

// EndpointRecord is one endpoint's write result within a game's manifest entry.
type EndpointRecord struct {
	Bytes int    `json:"bytes"`
	SHA1  string `json:"sha1"`
	Gz    bool   `json:"gz"`
	OK    bool   `json:"ok"`
}

// GameRecord is one game's manifest entry for a date.
type GameRecord struct {
	GameID    string                    `json:"game_id"`
	Teams     []int                     `json:"teams,omitempty"`
	Endpoints map[string]EndpointRecord `json:"endpoints"`
	Errors    []string                  `json:"errors"`
}

// Summary aggregates a date's harvest outcome.
type Summary struct {
	Games       int `json:"games"`
	OKGames     int `json:"ok_games"`
	FailedGames int `json:"failed_games"`
	TotalBytes  int `json:"total_bytes"`
}

// Manifest is the per-date index of games × endpoints.
type Manifest struct {
	Date    string       `json:"date"`
	Games   []GameRecord `json:"games"`
	Summary Summary      `json:"summary"`
}

// merge folds rec into the manifest: if a game with the same ID already
// exists its endpoint map and errors are concatenated in place, otherwise
// rec is appended. Summary is recomputed by the caller.
func (m *Manifest) merge(rec GameRecord) {
	for i := range m.Games {
		if m.Games[i].GameID != rec.GameID {
			continue
		}
		existing := &m.Games[i]
		if existing.Endpoints == nil {
			existing.Endpoints = map[string]EndpointRecord{}
		}
		for name, ep := range rec.Endpoints {
			existing.Endpoints[name] = ep
		}
		existing.Errors = append(existing.Errors, rec.Errors...)
		if len(rec.Teams) > 0 {
			existing.Teams = rec.Teams
		}
		return
	}
	if rec.Endpoints == nil {
		rec.Endpoints = map[string]EndpointRecord{}
	}
	m.Games = append(m.Games, rec)
}

// recomputeSummary derives Summary from the current Games slice: a game
// counts as OK when it has at least one OK endpoint and no errors.
func (m *Manifest) recomputeSummary() {
	s := Summary{Games: len(m.Games)}
	for _, g := range m.Games {
		anyOK := false
		for _, ep := range g.Endpoints {
			if ep.OK {
				anyOK = true
			}
			s.TotalBytes += ep.Bytes
		}
		if anyOK && len(g.Errors) == 0 {
			s.OKGames++
		} else {
			s.FailedGames++
		}
	}
	m.Summary = s
}
