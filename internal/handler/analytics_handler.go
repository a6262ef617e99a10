package handler

import (
	"fmt"
	"math"
	"net/http"
	"time"

	"productivity-api/internal/scoring"
	"productivity-api/internal/store"
)

// The dashboard's blocker score is a fixed placeholder: no real blocking
// telemetry exists, the block list is bookkeeping only.
const mockBlockerScore = 95

// Likewise the scoring engine gets a fixed count of blocking minutes.
const mockBlockingMinutes = 480

type dashboardScores struct {
	Tasks    int `json:"tasks"`
	Pomodoro int `json:"pomodoro"`
	Water    int `json:"water"`
	Habits   int `json:"habits"`
	Blocker  int `json:"blocker"`
	Overall  int `json:"overall"`
}

type dashboardResponse struct {
	TasksCompleted string          `json:"tasksCompleted"`
	PomodorosToday int             `json:"pomodorosToday"`
	WaterIntake    string          `json:"waterIntake"`
	DailyScore     string          `json:"dailyScore"`
	Scores         dashboardScores `json:"scores"`
}

// Dashboard aggregates today's activity with a simple unweighted average
// of four sub-scores. This is intentionally a different formula from the
// weighted engine behind Scores; the two never agreed upstream and are
// kept as independent aggregates.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID := uid(r)
	today := store.DayKey(time.Now())

	tasks := h.store.ListTasks(userID)
	completedTasks := 0
	for _, t := range tasks {
		if t.Status == "completed" {
			completedTasks++
		}
	}
	totalTasks := len(tasks)

	completedPomodoros := 0
	for _, s := range h.store.ListPomodoroSessions(userID, today) {
		if s.Completed {
			completedPomodoros++
		}
	}

	totalWater := 0
	for _, in := range h.store.ListWaterIntake(userID, today) {
		totalWater += in.Amount
	}

	entries := h.store.ListHabitEntries(userID, today)
	completedHabits := 0
	for _, e := range entries {
		if e.Completed {
			completedHabits++
		}
	}

	taskScore := 0
	if totalTasks > 0 {
		taskScore = int(math.Round(float64(completedTasks) / float64(totalTasks) * 100))
	}
	pomodoroScore := min(completedPomodoros*12, 100)
	waterScore := min(int(math.Round(float64(totalWater)/2500*100)), 100)
	habitScore := 0
	if len(entries) > 0 {
		habitScore = int(math.Round(float64(completedHabits) / float64(len(entries)) * 100))
	}
	overall := int(math.Round(float64(taskScore+pomodoroScore+waterScore+habitScore) / 4))

	writeJSON(w, http.StatusOK, dashboardResponse{
		TasksCompleted: fmt.Sprintf("%d/%d", completedTasks, totalTasks),
		PomodorosToday: completedPomodoros,
		WaterIntake:    fmt.Sprintf("%.1fL / 2.5L", float64(totalWater)/1000),
		DailyScore:     fmt.Sprintf("%d/100", overall),
		Scores: dashboardScores{
			Tasks:    taskScore,
			Pomodoro: pomodoroScore,
			Water:    waterScore,
			Habits:   habitScore,
			Blocker:  mockBlockerScore,
			Overall:  overall,
		},
	})
}

type scoresResponse struct {
	Date     string               `json:"date"`
	Scores   scoring.ScoreMetrics `json:"scores"`
	Label    string               `json:"label"`
	Color    string               `json:"color"`
	Message  string               `json:"message"`
	Insights []string             `json:"insights"`
}

// Scores runs the weighted five-factor engine over one day's activity.
func (h *Handler) Scores(w http.ResponseWriter, r *http.Request) {
	userID := uid(r)
	date := r.URL.Query().Get("date")
	if date == "" {
		date = store.DayKey(time.Now())
	}

	data := h.activityData(userID, date)
	metrics := scoring.CalculateScores(data)

	writeJSON(w, http.StatusOK, scoresResponse{
		Date:     date,
		Scores:   metrics,
		Label:    scoring.ScoreLabel(metrics.Overall),
		Color:    scoring.ScoreColor(metrics.Overall),
		Message:  scoring.MotivationalMessage(metrics.Overall),
		Insights: scoring.GenerateProductivityInsights(data),
	})
}

// activityData gathers the day's counts the engine consumes.
func (h *Handler) activityData(userID, date string) scoring.ActivityData {
	tasks := h.store.ListTasks(userID)
	completedTasks := 0
	for _, t := range tasks {
		if t.Status == "completed" {
			completedTasks++
		}
	}

	completedPomodoros := 0
	for _, s := range h.store.ListPomodoroSessions(userID, date) {
		if s.Completed {
			completedPomodoros++
		}
	}

	totalWater := 0
	for _, in := range h.store.ListWaterIntake(userID, date) {
		totalWater += in.Amount
	}

	entries := h.store.ListHabitEntries(userID, date)
	completedHabits := 0
	for _, e := range entries {
		if e.Completed {
			completedHabits++
		}
	}

	settings := h.store.GetUserSettings(userID)

	return scoring.ActivityData{
		CompletedTasks:             completedTasks,
		TotalTasks:                 len(tasks),
		CompletedPomodoros:         completedPomodoros,
		WaterIntake:                totalWater,
		WaterGoal:                  settings.WaterDailyGoal,
		CompletedHabits:            completedHabits,
		TotalHabits:                len(entries),
		DistractionBlockingMinutes: mockBlockingMinutes,
	}
}

type weeklyResponse struct {
	Productivity []int    `json:"productivity"`
	Labels       []string `json:"labels"`
}

// Weekly serves a fixed series; there is no historical aggregation yet.
func (h *Handler) Weekly(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, weeklyResponse{
		Productivity: []int{75, 82, 78, 85, 90, 88, 87},
		Labels:       []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
	})
}
