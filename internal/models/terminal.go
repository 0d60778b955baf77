package model

// TerminalCommandRequest est le payload d'exécution d'une commande du terminal
type TerminalCommandRequest struct {
	Command string `json:"command"`
}

// TerminalCommandResponse contient les lignes renvoyées par le terminal
// ainsi que les compteurs mis à jour
type TerminalCommandResponse struct {
	Command          string   `json:"command"`
	Lines            []string `json:"lines"`
	PointsAwarded    int      `json:"points_awarded"`
	EasterEggFound   bool     `json:"easter_egg_found"`
	CommandsExecuted int      `json:"commands_executed"`
}

// PongScoreRequest est le payload de report d'un score de pong
type PongScoreRequest struct {
	Score int `json:"score"`
}
