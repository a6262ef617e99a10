package handler

import (
	"net/http"
	"time"

	"productivity-api/internal/auth"
	"productivity-api/internal/model"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	UserID       string `json:"userId"`
	Username     string `json:"username,omitempty"`
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func (h *Handler) issueTokens(w http.ResponseWriter, userID, username string) {
	tok, err := auth.MakeToken(userID, h.secret)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	raw, hash, err := auth.GenerateRefreshToken()
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	h.store.CreateRefreshToken(userID, hash, time.Now().Add(auth.RefreshTokenTTL))

	writeJSON(w, http.StatusOK, tokenResponse{
		UserID:       userID,
		Username:     username,
		Token:        tok,
		RefreshToken: raw,
	})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decode(r, &req); err != nil || req.Username == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "username and password required")
		return
	}
	if len(req.Password) < 8 {
		writeMessage(w, http.StatusBadRequest, "password too short")
		return
	}

	// don't reveal which usernames exist
	if _, exists := h.store.UserByUsername(req.Username); exists {
		writeMessage(w, http.StatusConflict, "registration failed")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	u := &model.User{Username: req.Username, PasswordHash: hash}
	h.store.CreateUser(u)

	h.issueTokens(w, u.ID, u.Username)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decode(r, &req); err != nil || req.Username == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "username and password required")
		return
	}

	u, ok := h.store.UserByUsername(req.Username)
	if !ok || !auth.CheckPassword(u.PasswordHash, req.Password) {
		writeMessage(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	h.issueTokens(w, u.ID, u.Username)
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := decode(r, &req); err != nil || req.RefreshToken == "" {
		writeMessage(w, http.StatusBadRequest, "refresh token required")
		return
	}

	oldHash := auth.HashRefreshToken(req.RefreshToken)
	rt, ok := h.store.GetRefreshTokenByHash(oldHash)
	if !ok || rt.Revoked || time.Now().After(rt.ExpiresAt) {
		writeMessage(w, http.StatusUnauthorized, "invalid refresh token")
		return
	}

	raw, newHash, err := auth.GenerateRefreshToken()
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	if _, ok := h.store.RotateRefreshToken(oldHash, rt.UserID, newHash, time.Now().Add(auth.RefreshTokenTTL)); !ok {
		writeMessage(w, http.StatusUnauthorized, "invalid refresh token")
		return
	}

	tok, err := auth.MakeToken(rt.UserID, h.secret)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{
		UserID:       rt.UserID,
		Token:        tok,
		RefreshToken: raw,
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.store.RevokeAllRefreshTokens(uid(r))
	writeMessage(w, http.StatusOK, "logged out")
}
