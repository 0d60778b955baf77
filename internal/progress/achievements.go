package progress

// Kinds d'achievements — catalogue fermé, semé au premier accès utilisateur
const (
	AchFirstJobApply      = "first_job_apply"
	AchSavingsMilestone25 = "savings_milestone_25"
	AchSavingsMilestone50 = "savings_milestone_50"
	AchTaskMaster         = "task_master"
	AchTerminalNinja      = "terminal_ninja"
	AchPongChampion       = "pong_champion"
	AchEasterHunter       = "easter_hunter"
	AchStreakWeek         = "streak_week"
)

// Seuils des prédicats de déblocage
const (
	TaskMasterThreshold    = 10
	TerminalNinjaThreshold = 50
	PongChampionThreshold  = 200
	EasterHunterThreshold  = 5
	StreakWeekThreshold    = 7
)

// AchievementDef décrit un achievement du catalogue
type AchievementDef struct {
	Kind        string
	Title       string
	Description string
	Icon        string
}

// AchievementCatalog liste les 8 achievements semés pour chaque
// nouvel utilisateur, tous verrouillés
var AchievementCatalog = []AchievementDef{
	{AchFirstJobApply, "First Steps", "Submit your first job application", "🚀"},
	{AchSavingsMilestone25, "Quarter Way There", "Reach 25% of your savings goal", "💰"},
	{AchSavingsMilestone50, "Halfway Hero", "Reach 50% of your savings goal", "💎"},
	{AchTaskMaster, "Task Master", "Complete 10 tasks", "✅"},
	{AchTerminalNinja, "Terminal Ninja", "Execute 50 terminal commands", "⚡"},
	{AchPongChampion, "Pong Champion", "Score 200 points in pong", "🏓"},
	{AchEasterHunter, "Easter Hunter", "Discover 5 hidden easter eggs", "🥚"},
	{AchStreakWeek, "Week Warrior", "Keep a 7 day activity streak", "🔥"},
}

// KnownAchievementKind indique si le kind fait partie du catalogue
func KnownAchievementKind(kind string) bool {
	for _, def := range AchievementCatalog {
		if def.Kind == kind {
			return true
		}
	}
	return false
}

// SavingsMilestoneReached évalue les prédicats des paliers d'épargne,
// bonus de streak inclus (même ratio que SavingsProgress)
func SavingsMilestoneReached(current, goal float64, dailyStreak int, milestone float64) bool {
	if goal <= 0 {
		return false
	}
	return (current+StreakBonus(dailyStreak))/goal >= milestone
}

// TaskMasterReached : au moins 10 tasks complétées
func TaskMasterReached(completedTasks int) bool {
	return completedTasks >= TaskMasterThreshold
}

// TerminalNinjaReached : au moins 50 commandes exécutées
func TerminalNinjaReached(commandsExecuted int) bool {
	return commandsExecuted >= TerminalNinjaThreshold
}

// PongChampionReached : score de partie d'au moins 200
func PongChampionReached(score int) bool {
	return score >= PongChampionThreshold
}

// EasterHunterReached : au moins 5 easter eggs découverts
func EasterHunterReached(easterEggs int) bool {
	return easterEggs >= EasterHunterThreshold
}

// StreakWeekReached : streak d'au moins 7 jours
func StreakWeekReached(dailyStreak int) bool {
	return dailyStreak >= StreakWeekThreshold
}
