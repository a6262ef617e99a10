package store_test

import (
	"testing"
	"time"

	"productivity-api/internal/model"
	"productivity-api/internal/store"
)

const (
	userA = "user-a"
	userB = "user-b"
)

func newTask(userID, title string) *model.Task {
	return &model.Task{
		UserID:   userID,
		Title:    title,
		Priority: "medium",
		Status:   "pending",
	}
}

func TestTaskRoundTrip(t *testing.T) {
	st := store.New()

	task := newTask(userA, "write report")
	st.CreateTask(task)
	if task.ID == "" {
		t.Fatal("no id assigned")
	}
	if task.CreatedAt.IsZero() {
		t.Fatal("no createdAt assigned")
	}

	tasks := st.ListTasks(userA)
	if len(tasks) != 1 {
		t.Fatalf("got %d tasks, want 1", len(tasks))
	}
	if tasks[0].ID != task.ID || tasks[0].Title != "write report" {
		t.Errorf("listed task = %+v", tasks[0])
	}

	if !st.DeleteTask(task.ID, userA) {
		t.Fatal("delete returned false")
	}
	if got := st.ListTasks(userA); len(got) != 0 {
		t.Errorf("task still listed after delete: %v", got)
	}
}

func TestTaskCompletionTimestamp(t *testing.T) {
	st := store.New()
	task := newTask(userA, "x")
	st.CreateTask(task)

	status := "in_progress"
	updated, ok := st.UpdateTask(task.ID, userA, model.TaskUpdate{Status: &status})
	if !ok {
		t.Fatal("update failed")
	}
	if updated.CompletedAt != nil {
		t.Error("completedAt set on non-completed status")
	}

	status = "completed"
	updated, ok = st.UpdateTask(task.ID, userA, model.TaskUpdate{Status: &status})
	if !ok {
		t.Fatal("update failed")
	}
	if updated.CompletedAt == nil {
		t.Error("completedAt not set when status became completed")
	}
}

func TestUpdateIsShallowMerge(t *testing.T) {
	st := store.New()
	task := newTask(userA, "original")
	task.Category = "work"
	st.CreateTask(task)

	prio := "high"
	updated, _ := st.UpdateTask(task.ID, userA, model.TaskUpdate{Priority: &prio})
	if updated.Title != "original" || updated.Category != "work" {
		t.Errorf("unsupplied fields changed: %+v", updated)
	}
	if updated.Priority != "high" {
		t.Errorf("priority = %q, want high", updated.Priority)
	}
}

func TestUnknownIDsReturnAbsent(t *testing.T) {
	st := store.New()

	if _, ok := st.UpdateTask("nope", userA, model.TaskUpdate{}); ok {
		t.Error("update of unknown id succeeded")
	}
	if st.DeleteTask("nope", userA) {
		t.Error("delete of unknown id returned true")
	}
	if _, ok := st.GetTask("nope"); ok {
		t.Error("get of unknown id succeeded")
	}
}

func TestPerUserIsolation(t *testing.T) {
	st := store.New()
	st.CreateTask(newTask(userA, "mine"))
	st.CreateTask(newTask(userB, "theirs"))

	for _, task := range st.ListTasks(userA) {
		if task.UserID != userA {
			t.Errorf("user A list contains %q owned by %q", task.Title, task.UserID)
		}
	}
	if n := len(st.ListTasks(userA)); n != 1 {
		t.Errorf("user A sees %d tasks, want 1", n)
	}
	if n := len(st.ListTasks(userB)); n != 1 {
		t.Errorf("user B sees %d tasks, want 1", n)
	}
}

func TestWaterIntakeDayFilter(t *testing.T) {
	st := store.New()
	today := store.DayKey(time.Now())

	st.AddWaterIntake(&model.WaterIntake{UserID: userA, Amount: 250, Date: today})
	st.AddWaterIntake(&model.WaterIntake{UserID: userA, Amount: 500, Date: "2020-01-01"})
	st.AddWaterIntake(&model.WaterIntake{UserID: userB, Amount: 300, Date: today})

	got := st.ListWaterIntake(userA, today)
	if len(got) != 1 {
		t.Fatalf("got %d entries, want 1", len(got))
	}
	if got[0].Amount != 250 {
		t.Errorf("amount = %d, want 250", got[0].Amount)
	}
	if got[0].Timestamp.IsZero() {
		t.Error("timestamp not assigned")
	}
}

func TestPomodoroSessionDayFilter(t *testing.T) {
	st := store.New()

	s := &model.PomodoroSession{UserID: userA, Type: "focus", Duration: 25}
	st.CreatePomodoroSession(s)
	if s.StartTime.IsZero() {
		t.Fatal("startTime not assigned")
	}

	today := store.DayKey(time.Now())
	if got := st.ListPomodoroSessions(userA, today); len(got) != 1 {
		t.Errorf("today's sessions = %d, want 1", len(got))
	}
	if got := st.ListPomodoroSessions(userA, "1999-12-31"); len(got) != 0 {
		t.Errorf("other day's sessions = %d, want 0", len(got))
	}
	// empty date means all sessions
	if got := st.ListPomodoroSessions(userA, ""); len(got) != 1 {
		t.Errorf("unfiltered sessions = %d, want 1", len(got))
	}
}

func TestHabitEntryUpsert(t *testing.T) {
	st := store.New()
	habit := &model.Habit{UserID: userA, Name: "read", Frequency: "daily", TargetCount: 1, IsActive: true}
	st.CreateHabit(habit)
	today := store.DayKey(time.Now())

	first := st.UpsertHabitEntry(&model.HabitEntry{
		HabitID: habit.ID, UserID: userA, Date: today, Completed: false, Count: 1,
	})
	second := st.UpsertHabitEntry(&model.HabitEntry{
		HabitID: habit.ID, UserID: userA, Date: today, Completed: true, Count: 2,
	})

	if first.ID != second.ID {
		t.Errorf("second check-in created a new entry: %q vs %q", first.ID, second.ID)
	}
	entries := st.ListHabitEntries(userA, today)
	if len(entries) != 1 {
		t.Fatalf("got %d entries for the day, want 1", len(entries))
	}
	if !entries[0].Completed || entries[0].Count != 2 {
		t.Errorf("entry not updated in place: %+v", entries[0])
	}
}

func TestNoteUpdateRefreshesTimestamp(t *testing.T) {
	st := store.New()
	note := &model.Note{UserID: userA, Title: "n", Content: "v1"}
	st.CreateNote(note)
	if note.Tags == nil || note.Attachments == nil {
		t.Fatal("tags/attachments not defaulted to empty lists")
	}

	before := note.UpdatedAt
	time.Sleep(5 * time.Millisecond)
	content := "v2"
	updated, _ := st.UpdateNote(note.ID, userA, model.NoteUpdate{Content: &content})
	if !updated.UpdatedAt.After(before) {
		t.Error("updatedAt not refreshed on mutation")
	}
}

func TestSettingsAutoCreate(t *testing.T) {
	st := store.New()

	got := st.GetUserSettings(userA)
	if got.ID == "" {
		t.Fatal("settings not created on first read")
	}
	if got.PomodoroFocusTime != 25 || got.WaterDailyGoal != 2500 || got.Theme != "light" || !got.Notifications {
		t.Errorf("unexpected defaults: %+v", got)
	}

	// second read returns the same record
	again := st.GetUserSettings(userA)
	if again.ID != got.ID {
		t.Errorf("settings re-created: %q vs %q", again.ID, got.ID)
	}

	goal := 3000
	updated := st.UpdateUserSettings(userA, model.UserSettingsUpdate{WaterDailyGoal: &goal})
	if updated.WaterDailyGoal != 3000 {
		t.Errorf("waterDailyGoal = %d, want 3000", updated.WaterDailyGoal)
	}
	if updated.PomodoroFocusTime != 25 {
		t.Errorf("untouched field changed: %+v", updated)
	}
}

func TestUserSeedCreatesSettings(t *testing.T) {
	st := store.New()
	st.CreateUser(&model.User{ID: "fixed-id", Username: "demo"})

	u, ok := st.GetUser("fixed-id")
	if !ok || u.Username != "demo" {
		t.Fatalf("seeded user missing: %+v ok=%v", u, ok)
	}
	if got := st.GetUserSettings("fixed-id"); got.WaterDailyGoal != 2500 {
		t.Errorf("settings not created with user: %+v", got)
	}
}

func TestRefreshTokenRotation(t *testing.T) {
	st := store.New()
	exp := time.Now().Add(time.Hour)

	st.CreateRefreshToken(userA, "hash-1", exp)
	if _, ok := st.RotateRefreshToken("hash-1", userA, "hash-2", exp); !ok {
		t.Fatal("rotation failed")
	}

	old, ok := st.GetRefreshTokenByHash("hash-1")
	if !ok || !old.Revoked {
		t.Errorf("old token not revoked: %+v ok=%v", old, ok)
	}
	fresh, ok := st.GetRefreshTokenByHash("hash-2")
	if !ok || fresh.Revoked {
		t.Errorf("new token unusable: %+v ok=%v", fresh, ok)
	}
	if old.ReplacedBy != fresh.ID {
		t.Errorf("old token does not point at replacement")
	}

	st.RevokeAllRefreshTokens(userA)
	fresh, _ = st.GetRefreshTokenByHash("hash-2")
	if !fresh.Revoked {
		t.Error("RevokeAll left a live token")
	}
}

func TestMutationsScopedToOwner(t *testing.T) {
	st := store.New()
	task := newTask(userA, "private")
	st.CreateTask(task)

	title := "hijacked"
	if _, ok := st.UpdateTask(task.ID, userB, model.TaskUpdate{Title: &title}); ok {
		t.Error("update with wrong owner succeeded")
	}
	if st.DeleteTask(task.ID, userB) {
		t.Error("delete with wrong owner succeeded")
	}

	tasks := st.ListTasks(userA)
	if len(tasks) != 1 || tasks[0].Title != "private" {
		t.Fatalf("task changed by foreign mutation: %+v", tasks)
	}

	note := &model.Note{UserID: userA, Title: "n", Content: "body"}
	st.CreateNote(note)
	content := "overwritten"
	if _, ok := st.UpdateNote(note.ID, userB, model.NoteUpdate{Content: &content}); ok {
		t.Error("note update with wrong owner succeeded")
	}
	if st.DeleteNote(note.ID, userB) {
		t.Error("note delete with wrong owner succeeded")
	}
	if got := st.ListNotes(userA); len(got) != 1 || got[0].Content != "body" {
		t.Fatalf("note changed by foreign mutation: %+v", got)
	}
}

func TestCreateStoresCopy(t *testing.T) {
	st := store.New()
	task := newTask(userA, "original")
	st.CreateTask(task)

	// The caller's struct must stay independent of the stored record.
	task.Title = "scribbled"
	if got := st.ListTasks(userA); got[0].Title != "original" {
		t.Errorf("caller mutation leaked into store: %q", got[0].Title)
	}

	title := "renamed"
	st.UpdateTask(task.ID, userA, model.TaskUpdate{Title: &title})
	if task.Title != "scribbled" {
		t.Errorf("store update leaked into caller struct: %q", task.Title)
	}
}
