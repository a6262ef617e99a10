package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"productivity-api/internal/middleware"
	"productivity-api/internal/store"
)

type Handler struct {
	store  *store.Store
	secret string
}

func New(st *store.Store, secret string) *Handler {
	return &Handler{store: st, secret: secret}
}

// Routes wires every endpoint onto a ServeMux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/register", h.Register)
	mux.HandleFunc("POST /api/auth/login", h.Login)
	mux.HandleFunc("POST /api/auth/refresh", h.Refresh)
	mux.HandleFunc("POST /api/auth/logout", h.Logout)

	mux.HandleFunc("GET /api/tasks", h.ListTasks)
	mux.HandleFunc("POST /api/tasks", h.CreateTask)
	mux.HandleFunc("PUT /api/tasks/{id}", h.UpdateTask)
	mux.HandleFunc("DELETE /api/tasks/{id}", h.DeleteTask)

	mux.HandleFunc("GET /api/events", h.ListEvents)
	mux.HandleFunc("POST /api/events", h.CreateEvent)
	mux.HandleFunc("PUT /api/events/{id}", h.UpdateEvent)
	mux.HandleFunc("DELETE /api/events/{id}", h.DeleteEvent)

	mux.HandleFunc("GET /api/pomodoro/sessions", h.ListPomodoroSessions)
	mux.HandleFunc("POST /api/pomodoro/sessions", h.CreatePomodoroSession)
	mux.HandleFunc("PUT /api/pomodoro/sessions/{id}", h.UpdatePomodoroSession)

	mux.HandleFunc("GET /api/notes", h.ListNotes)
	mux.HandleFunc("POST /api/notes", h.CreateNote)
	mux.HandleFunc("PUT /api/notes/{id}", h.UpdateNote)
	mux.HandleFunc("DELETE /api/notes/{id}", h.DeleteNote)

	mux.HandleFunc("GET /api/water", h.ListWaterIntake)
	mux.HandleFunc("POST /api/water", h.AddWaterIntake)

	mux.HandleFunc("GET /api/habits", h.ListHabits)
	mux.HandleFunc("POST /api/habits", h.CreateHabit)
	mux.HandleFunc("GET /api/habits/entries", h.ListHabitEntries)
	mux.HandleFunc("POST /api/habits/entries", h.CreateHabitEntry)
	mux.HandleFunc("PUT /api/habits/entries/{id}", h.UpdateHabitEntry)
	mux.HandleFunc("PUT /api/habits/{id}", h.UpdateHabit)
	mux.HandleFunc("DELETE /api/habits/{id}", h.DeleteHabit)

	mux.HandleFunc("GET /api/distraction-sites", h.ListDistractionSites)
	mux.HandleFunc("POST /api/distraction-sites", h.CreateDistractionSite)
	mux.HandleFunc("PUT /api/distraction-sites/{id}", h.UpdateDistractionSite)
	mux.HandleFunc("DELETE /api/distraction-sites/{id}", h.DeleteDistractionSite)

	mux.HandleFunc("GET /api/settings", h.GetSettings)
	mux.HandleFunc("PUT /api/settings", h.UpdateSettings)

	mux.HandleFunc("GET /api/analytics/dashboard", h.Dashboard)
	mux.HandleFunc("GET /api/analytics/scores", h.Scores)
	mux.HandleFunc("GET /api/analytics/weekly", h.Weekly)

	return mux
}

// uid returns the caller resolved by the auth middleware.
func uid(r *http.Request) string {
	return middleware.UserID(r.Context())
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func writeMessage(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"message": msg})
}

func decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
