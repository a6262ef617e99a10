package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"productivity-api/internal/handler"
	"productivity-api/internal/middleware"
	"productivity-api/internal/model"
	"productivity-api/internal/store"
)

func main() {
	_ = godotenv.Load()
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	port := env("PORT", "8080")
	demoUserID := env("DEMO_USER_ID", "mock-user-123")

	st := store.New()

	// seed the demo user every unauthenticated request acts as
	st.CreateUser(&model.User{ID: demoUserID, Username: "demo"})
	log.Printf("demo user %s ready", demoUserID)

	h := handler.New(st, secret)

	rl := middleware.NewRateLimiter(5, 10)
	srv := &http.Server{
		Addr: ":" + port,
		Handler: middleware.CORS(
			middleware.RateLimit(rl)(
				middleware.Auth(secret, demoUserID)(h.Routes()),
			),
		),
	}

	go func() {
		log.Printf("http on :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("http: %v", err)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	log.Println("shutting down")
	srv.Close()
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
