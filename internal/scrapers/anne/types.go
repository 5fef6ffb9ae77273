package anne

// Info is the profile table of a player page.
type Info struct {
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	SteamID  string `json:"steam_id"`
	PlayTime string `json:"play_time"`
	LastSeen string `json:"last_seen"`
}

// Detail is the ranking table of a player page.
type Detail struct {
	Rank           string `json:"rank"`
	Score          string `json:"score"`
	ScorePerMinute string `json:"score_per_minute"`
	InfectedKills  string `json:"infected_kills"`
	SurvivorKills  string `json:"survivor_kills"`
	Headshots      string `json:"headshots"`
	HeadshotRate   string `json:"headshot_rate"`
	MapsPlayed     string `json:"maps_played"`
}

// Errors counts the mistakes a player made against their own team.
type Errors struct {
	FriendlyFire       string `json:"friendly_fire"`
	TeammatesKilled    string `json:"teammates_killed"`
	TeammatesDowned    string `json:"teammates_downed"`
	TeammatesAbandoned string `json:"teammates_abandoned"`
	LetIntoSaferoom    string `json:"let_into_saferoom"`
	WitchesStartled    string `json:"witches_startled"`
}

// InfectedAverages holds the average special infected kills per map.
type InfectedAverages struct {
	Smoker  string `json:"smoker"`
	Boomer  string `json:"boomer"`
	Hunter  string `json:"hunter"`
	Charger string `json:"charger"`
	Spitter string `json:"spitter"`
	Jockey  string `json:"jockey"`
	Tank    string `json:"tank"`
}

type Survivor struct {
	MapsCleared        string `json:"maps_cleared"`
	PerfectEntries     string `json:"perfect_entries"`
	GasCansCollected   string `json:"gas_cans_collected"`
	AmmoDeployed       string `json:"ammo_deployed"`
	AdrenalineGiven    string `json:"adrenaline_given"`
	PillsGiven         string `json:"pills_given"`
	FirstAidGiven      string `json:"first_aid_given"`
	TeammatesRevived   string `json:"teammates_revived"`
	TeammatesDefibbed  string `json:"teammates_defibbed"`
	TeammatesRescued   string `json:"teammates_rescued"`
	TeammatesProtected string `json:"teammates_protected"`
	SavedFromSmoker    string `json:"saved_from_smoker"`
	SavedFromHunter    string `json:"saved_from_hunter"`
	SavedFromCharger   string `json:"saved_from_charger"`
	SavedFromJockey    string `json:"saved_from_jockey"`
	ChargersMeleed     string `json:"chargers_meleed"`
	TanksKilled        string `json:"tanks_killed"`
	WitchesCrowned     string `json:"witches_crowned"`
}

type Infected struct {
	SurvivorsIncapped string `json:"survivors_incapped"`
	SurvivorsDowned   string `json:"survivors_downed"`
	BoomerHits        string `json:"boomer_hits"`
	PerfectPounces    string `json:"perfect_pounces"`
	SuccessfulPounces string `json:"successful_pounces"`
	TankDamage        string `json:"tank_damage"`
	MultiCharges      string `json:"multi_charges"`
}

// PlayerRecord is everything the player page exposes. It is only ever
// returned fully populated.
type PlayerRecord struct {
	KillSummary      string           `json:"kill_summary"`
	Info             Info             `json:"info"`
	Detail           Detail           `json:"detail"`
	Errors           Errors           `json:"errors"`
	InfectedAverages InfectedAverages `json:"infected_averages"`
	Survivor         Survivor         `json:"survivor"`
	Infected         Infected         `json:"infected"`
}

// SearchResult is one row of the search or ranking table.
type SearchResult struct {
	Rank     string `json:"rank"`
	Name     string `json:"name"`
	Score    string `json:"score"`
	PlayTime string `json:"play_time"`
	LastSeen string `json:"last_seen"`
	SteamID  string `json:"steam_id"`
}
