package anne

// field binds one row of a stats table to its place in a PlayerRecord. The
// value is always the second cell of the row.
type field struct {
	name string
	set  func(r *PlayerRecord, v string)
}

type table struct {
	name   string
	fields []field
}

// playerTables lists the stats tables of a player page in page order, each
// with its rows in page order.
var playerTables = []table{
	{
		name: "info",
		fields: []field{
			{"name", func(r *PlayerRecord, v string) { r.Info.Name = v }},
			{"avatar", func(r *PlayerRecord, v string) { r.Info.Avatar = v }},
			{"steam_id", func(r *PlayerRecord, v string) { r.Info.SteamID = v }},
			{"play_time", func(r *PlayerRecord, v string) { r.Info.PlayTime = v }},
			{"last_seen", func(r *PlayerRecord, v string) { r.Info.LastSeen = v }},
		},
	},
	{
		name: "detail",
		fields: []field{
			{"rank", func(r *PlayerRecord, v string) { r.Detail.Rank = v }},
			{"score", func(r *PlayerRecord, v string) { r.Detail.Score = v }},
			{"score_per_minute", func(r *PlayerRecord, v string) { r.Detail.ScorePerMinute = v }},
			{"infected_kills", func(r *PlayerRecord, v string) { r.Detail.InfectedKills = v }},
			{"survivor_kills", func(r *PlayerRecord, v string) { r.Detail.SurvivorKills = v }},
			{"headshots", func(r *PlayerRecord, v string) { r.Detail.Headshots = v }},
			{"headshot_rate", func(r *PlayerRecord, v string) { r.Detail.HeadshotRate = v }},
			{"maps_played", func(r *PlayerRecord, v string) { r.Detail.MapsPlayed = v }},
		},
	},
	{
		name: "errors",
		fields: []field{
			{"friendly_fire", func(r *PlayerRecord, v string) { r.Errors.FriendlyFire = v }},
			{"teammates_killed", func(r *PlayerRecord, v string) { r.Errors.TeammatesKilled = v }},
			{"teammates_downed", func(r *PlayerRecord, v string) { r.Errors.TeammatesDowned = v }},
			{"teammates_abandoned", func(r *PlayerRecord, v string) { r.Errors.TeammatesAbandoned = v }},
			{"let_into_saferoom", func(r *PlayerRecord, v string) { r.Errors.LetIntoSaferoom = v }},
			{"witches_startled", func(r *PlayerRecord, v string) { r.Errors.WitchesStartled = v }},
		},
	},
	{
		name: "infected_averages",
		fields: []field{
			{"smoker", func(r *PlayerRecord, v string) { r.InfectedAverages.Smoker = v }},
			{"boomer", func(r *PlayerRecord, v string) { r.InfectedAverages.Boomer = v }},
			{"hunter", func(r *PlayerRecord, v string) { r.InfectedAverages.Hunter = v }},
			{"charger", func(r *PlayerRecord, v string) { r.InfectedAverages.Charger = v }},
			{"spitter", func(r *PlayerRecord, v string) { r.InfectedAverages.Spitter = v }},
			{"jockey", func(r *PlayerRecord, v string) { r.InfectedAverages.Jockey = v }},
			{"tank", func(r *PlayerRecord, v string) { r.InfectedAverages.Tank = v }},
		},
	},
	{
		name: "survivor",
		fields: []field{
			{"maps_cleared", func(r *PlayerRecord, v string) { r.Survivor.MapsCleared = v }},
			{"perfect_entries", func(r *PlayerRecord, v string) { r.Survivor.PerfectEntries = v }},
			{"gas_cans_collected", func(r *PlayerRecord, v string) { r.Survivor.GasCansCollected = v }},
			{"ammo_deployed", func(r *PlayerRecord, v string) { r.Survivor.AmmoDeployed = v }},
			{"adrenaline_given", func(r *PlayerRecord, v string) { r.Survivor.AdrenalineGiven = v }},
			{"pills_given", func(r *PlayerRecord, v string) { r.Survivor.PillsGiven = v }},
			{"first_aid_given", func(r *PlayerRecord, v string) { r.Survivor.FirstAidGiven = v }},
			{"teammates_revived", func(r *PlayerRecord, v string) { r.Survivor.TeammatesRevived = v }},
			{"teammates_defibbed", func(r *PlayerRecord, v string) { r.Survivor.TeammatesDefibbed = v }},
			{"teammates_rescued", func(r *PlayerRecord, v string) { r.Survivor.TeammatesRescued = v }},
			{"teammates_protected", func(r *PlayerRecord, v string) { r.Survivor.TeammatesProtected = v }},
			{"saved_from_smoker", func(r *PlayerRecord, v string) { r.Survivor.SavedFromSmoker = v }},
			{"saved_from_hunter", func(r *PlayerRecord, v string) { r.Survivor.SavedFromHunter = v }},
			{"saved_from_charger", func(r *PlayerRecord, v string) { r.Survivor.SavedFromCharger = v }},
			{"saved_from_jockey", func(r *PlayerRecord, v string) { r.Survivor.SavedFromJockey = v }},
			{"chargers_meleed", func(r *PlayerRecord, v string) { r.Survivor.ChargersMeleed = v }},
			{"tanks_killed", func(r *PlayerRecord, v string) { r.Survivor.TanksKilled = v }},
			{"witches_crowned", func(r *PlayerRecord, v string) { r.Survivor.WitchesCrowned = v }},
		},
	},
	{
		name: "infected",
		fields: []field{
			{"survivors_incapped", func(r *PlayerRecord, v string) { r.Infected.SurvivorsIncapped = v }},
			{"survivors_downed", func(r *PlayerRecord, v string) { r.Infected.SurvivorsDowned = v }},
			{"boomer_hits", func(r *PlayerRecord, v string) { r.Infected.BoomerHits = v }},
			{"perfect_pounces", func(r *PlayerRecord, v string) { r.Infected.PerfectPounces = v }},
			{"successful_pounces", func(r *PlayerRecord, v string) { r.Infected.SuccessfulPounces = v }},
			{"tank_damage", func(r *PlayerRecord, v string) { r.Infected.TankDamage = v }},
			{"multi_charges", func(r *PlayerRecord, v string) { r.Infected.MultiCharges = v }},
		},
	},
}
