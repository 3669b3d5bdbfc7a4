package fixture

// LineupPlayer is one player slot on a team sheet.
type LineupPlayer struct {
	ID     int64
	Name   string
	Number int
	Pos    string
	Grid   string
}

// TeamLineup is the team sheet of one side of a fixture.
type TeamLineup struct {
	Team        TeamRef
	Coach       PersonRef
	Formation   string
	StartXI     []LineupPlayer
	Substitutes []LineupPlayer
}
