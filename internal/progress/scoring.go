package progress

// Tags d'action du journal de productivité
const (
	ActionJobApplication    = "job_application"
	ActionTaskCreated       = "task_created"
	ActionTaskCompleted     = "task_completed"
	ActionAchievementUnlock = "achievement_unlocked"
	ActionTerminalCommand   = "terminal_command"
	ActionEasterEgg         = "easter_egg"
	ActionSavingsUpdate     = "savings_update"
	ActionJobsRefreshed     = "jobs_refreshed"
	ActionPongScore         = "pong_score"
)

// Barème canonique des points. Les révisions successives du système
// faisaient dériver ces valeurs ; on fige ici celles de la dernière
// révision, c'est une politique et non un calcul.
const (
	PointsJobApplication    = 15
	PointsTaskCreated       = 5
	PointsTaskCompleted     = 20
	PointsAchievementUnlock = 50
	PointsTerminalCommand   = 2
	PointsSavingsUpdate     = 10
	PointsJobsRefreshed     = 5
	PointsEasterEggKonami   = 50
	PointsEasterEggSmall    = 10
)
