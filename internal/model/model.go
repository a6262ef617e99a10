package model

import "time"

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Task struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	Priority      string     `json:"priority"` // high, medium, low
	Status        string     `json:"status"`   // pending, in_progress, completed
	DueDate       *time.Time `json:"dueDate,omitempty"`
	EstimatedTime *int       `json:"estimatedTime,omitempty"` // minutes
	Category      string     `json:"category,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
}

type Event struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	Location        string    `json:"location,omitempty"`
	ReminderMinutes int       `json:"reminderMinutes"`
	CreatedAt       time.Time `json:"createdAt"`
}

type PomodoroSession struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Type      string     `json:"type"`     // focus, short_break, long_break
	Duration  int        `json:"duration"` // minutes
	Completed bool       `json:"completed"`
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime,omitempty"`
}

type Note struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Tags        []string  `json:"tags"`
	Attachments []string  `json:"attachments"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type WaterIntake struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Amount    int       `json:"amount"` // ml
	Date      string    `json:"date"`   // YYYY-MM-DD
	Timestamp time.Time `json:"timestamp"`
}

type Habit struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Frequency   string    `json:"frequency"` // daily, weekly
	TargetCount int       `json:"targetCount"`
	Color       string    `json:"color"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

type HabitEntry struct {
	ID        string    `json:"id"`
	HabitID   string    `json:"habitId"`
	UserID    string    `json:"userId"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Completed bool      `json:"completed"`
	Count     int       `json:"count"`
	Timestamp time.Time `json:"timestamp"`
}

type DistractionSite struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	URL       string    `json:"url"`
	Name      string    `json:"name"`
	IsBlocked bool      `json:"isBlocked"`
	CreatedAt time.Time `json:"createdAt"`
}

type UserSettings struct {
	ID                    string `json:"id"`
	UserID                string `json:"userId"`
	PomodoroFocusTime     int    `json:"pomodoroFocusTime"`     // minutes
	PomodoroShortBreak    int    `json:"pomodoroShortBreak"`    // minutes
	PomodoroLongBreak     int    `json:"pomodoroLongBreak"`     // minutes
	WaterDailyGoal        int    `json:"waterDailyGoal"`        // ml
	WaterReminderInterval int    `json:"waterReminderInterval"` // minutes
	Theme                 string `json:"theme"`
	Notifications         bool   `json:"notifications"`
}

// DefaultSettings returns the settings every user starts with.
func DefaultSettings(userID string) UserSettings {
	return UserSettings{
		UserID:                userID,
		PomodoroFocusTime:     25,
		PomodoroShortBreak:    5,
		PomodoroLongBreak:     15,
		WaterDailyGoal:        2500,
		WaterReminderInterval: 60,
		Theme:                 "light",
		Notifications:         true,
	}
}
