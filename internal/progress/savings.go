package progress

import (
	"math"
)

// BonusPerStreakDay est le bonus d'épargne par jour de streak.
// Valeur de la dernière révision (10 dans les précédentes).
const BonusPerStreakDay = 25.0

// StreakBonus est le montant dérivé ajouté à l'épargne brute
func StreakBonus(dailyStreak int) float64 {
	if dailyStreak < 0 {
		return 0
	}
	return float64(dailyStreak) * BonusPerStreakDay
}

// SavingsProgress calcule la progression vers l'objectif, bonus de
// streak inclus, bornée à [0,100]. Un objectif non positif donne 0.
func SavingsProgress(current, goal float64, dailyStreak int) float64 {
	if goal <= 0 {
		return 0
	}
	progress := (current + StreakBonus(dailyStreak)) / goal * 100
	return math.Min(100, math.Max(0, progress))
}

// MonthsToGoal estime le nombre de mois restants à raison d'un dixième
// de l'objectif par mois, jamais moins de 1.
func MonthsToGoal(current, goal float64) int {
	if goal <= 0 {
		return 1
	}
	months := math.Floor((goal - current) / (goal / 10))
	if months < 1 {
		return 1
	}
	return int(months)
}

// MonthlyTarget est la cible mensuelle dérivée de l'objectif
func MonthlyTarget(goal float64) float64 {
	return goal / 10
}
