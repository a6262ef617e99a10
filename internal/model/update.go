package model

import "time"

// Partial update payloads. A nil field means "leave as is", matching the
// shallow-merge semantics of PUT: only supplied fields overwrite.

type TaskUpdate struct {
	Title         *string    `json:"title"`
	Description   *string    `json:"description"`
	Priority      *string    `json:"priority"`
	Status        *string    `json:"status"`
	DueDate       *time.Time `json:"dueDate"`
	EstimatedTime *int       `json:"estimatedTime"`
	Category      *string    `json:"category"`
}

type EventUpdate struct {
	Title           *string    `json:"title"`
	Description     *string    `json:"description"`
	StartTime       *time.Time `json:"startTime"`
	EndTime         *time.Time `json:"endTime"`
	Location        *string    `json:"location"`
	ReminderMinutes *int       `json:"reminderMinutes"`
}

type PomodoroSessionUpdate struct {
	Type      *string    `json:"type"`
	Duration  *int       `json:"duration"`
	Completed *bool      `json:"completed"`
	EndTime   *time.Time `json:"endTime"`
}

type NoteUpdate struct {
	Title       *string   `json:"title"`
	Content     *string   `json:"content"`
	Tags        *[]string `json:"tags"`
	Attachments *[]string `json:"attachments"`
}

type HabitUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Frequency   *string `json:"frequency"`
	TargetCount *int    `json:"targetCount"`
	Color       *string `json:"color"`
	IsActive    *bool   `json:"isActive"`
}

type HabitEntryUpdate struct {
	Completed *bool `json:"completed"`
	Count     *int  `json:"count"`
}

type DistractionSiteUpdate struct {
	URL       *string `json:"url"`
	Name      *string `json:"name"`
	IsBlocked *bool   `json:"isBlocked"`
}

type UserSettingsUpdate struct {
	PomodoroFocusTime     *int    `json:"pomodoroFocusTime"`
	PomodoroShortBreak    *int    `json:"pomodoroShortBreak"`
	PomodoroLongBreak     *int    `json:"pomodoroLongBreak"`
	WaterDailyGoal        *int    `json:"waterDailyGoal"`
	WaterReminderInterval *int    `json:"waterReminderInterval"`
	Theme                 *string `json:"theme"`
	Notifications         *bool   `json:"notifications"`
}
