// Package scoring turns a day's raw activity counts into normalized
// 0-100 productivity signals.
package scoring

import "math"

// ActivityData is one day's worth of aggregated activity.
type ActivityData struct {
	CompletedTasks             int
	TotalTasks                 int
	CompletedPomodoros         int
	WaterIntake                int // ml consumed
	WaterGoal                  int // ml target
	CompletedHabits            int
	TotalHabits                int
	DistractionBlockingMinutes int
}

// ScoreMetrics holds the five 0-100 sub-scores and the weighted overall.
type ScoreMetrics struct {
	Tasks    int `json:"tasks"`
	Pomodoro int `json:"pomodoro"`
	Water    int `json:"water"`
	Habits   int `json:"habits"`
	Focus    int `json:"focus"`
	Overall  int `json:"overall"`
}

// Fixed weights for the overall score; they sum to 1.00.
const (
	taskWeight     = 0.30
	pomodoroWeight = 0.25
	waterWeight    = 0.15
	habitWeight    = 0.20
	focusWeight    = 0.10
)

func round(f float64) int {
	return int(math.Round(f))
}

// percent rounds completed/total to a whole percentage, 0 when total is 0.
func percent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return round(float64(completed) / float64(total) * 100)
}

// CalculateScores computes the five sub-scores and their weighted
// combination.
func CalculateScores(d ActivityData) ScoreMetrics {
	taskScore := percent(d.CompletedTasks, d.TotalTasks)

	// 12 points per completed pomodoro, so 9 sessions saturate
	pomodoroScore := min(d.CompletedPomodoros*12, 100)

	waterScore := 0
	if d.WaterGoal > 0 {
		waterScore = min(round(float64(d.WaterIntake)/float64(d.WaterGoal)*100), 100)
	}

	habitScore := percent(d.CompletedHabits, d.TotalHabits)

	// one point per 10 minutes of distraction blocking
	focusScore := min(round(float64(d.DistractionBlockingMinutes)/10), 100)

	overall := round(
		float64(taskScore)*taskWeight +
			float64(pomodoroScore)*pomodoroWeight +
			float64(waterScore)*waterWeight +
			float64(habitScore)*habitWeight +
			float64(focusScore)*focusWeight,
	)

	return ScoreMetrics{
		Tasks:    taskScore,
		Pomodoro: pomodoroScore,
		Water:    waterScore,
		Habits:   habitScore,
		Focus:    focusScore,
		Overall:  overall,
	}
}

// ScoreColor maps a score to its presentation tier class. Boundaries are
// inclusive on the lower end: exactly 90 is "excellent", exactly 75 "good".
func ScoreColor(score int) string {
	switch {
	case score >= 90:
		return "excellent"
	case score >= 75:
		return "good"
	case score >= 60:
		return "average"
	case score >= 40:
		return "below-average"
	default:
		return "needs-improvement"
	}
}

// ScoreLabel returns the display label for a score's tier.
func ScoreLabel(score int) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 75:
		return "Good"
	case score >= 60:
		return "Average"
	case score >= 40:
		return "Below Average"
	default:
		return "Needs Improvement"
	}
}

// MotivationalMessage returns the encouragement line for a score's tier.
func MotivationalMessage(score int) string {
	switch {
	case score >= 90:
		return "Outstanding work! You're crushing your productivity goals! 🚀"
	case score >= 75:
		return "Great job! You're making excellent progress! 💪"
	case score >= 60:
		return "Good effort! Keep pushing to reach your potential! 📈"
	case score >= 40:
		return "You're on the right track, let's boost that productivity! 💡"
	default:
		return "Every small step counts. Let's build momentum together! 🌱"
	}
}

// GenerateProductivityInsights builds the list of per-dimension insight
// sentences, in a fixed evaluation order. The groups are independent, so
// the result holds between 0 and 4 entries. A dimension with no data
// (zero tasks, zero habits) contributes nothing rather than a misleading
// insight.
func GenerateProductivityInsights(d ActivityData) []string {
	var insights []string

	if d.TotalTasks > 0 {
		completion := float64(d.CompletedTasks) / float64(d.TotalTasks)
		if completion > 0.8 {
			insights = append(insights, "You have excellent task completion rates! 🎯")
		} else if completion < 0.5 {
			insights = append(insights, "Consider breaking down larger tasks into smaller, manageable chunks.")
		}
	}

	if d.CompletedPomodoros >= 6 {
		insights = append(insights, "Your focus sessions are on point! Great time management! ⏰")
	} else if d.CompletedPomodoros < 3 {
		insights = append(insights, "Try incorporating more focused work sessions with the Pomodoro technique.")
	}

	if float64(d.WaterIntake) >= float64(d.WaterGoal)*0.9 {
		insights = append(insights, "Excellent hydration! Your body and mind thank you! 💧")
	} else if float64(d.WaterIntake) < float64(d.WaterGoal)*0.6 {
		insights = append(insights, "Remember to stay hydrated for optimal cognitive performance.")
	}

	if d.TotalHabits > 0 {
		if float64(d.CompletedHabits)/float64(d.TotalHabits) > 0.8 {
			insights = append(insights, "Your habit consistency is impressive! Building strong routines! 🔄")
		}
	}

	return insights
}
