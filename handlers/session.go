// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/leads-report/auth"
	"github.com/danielhkuo/leads-report/cliparse"
	"github.com/danielhkuo/leads-report/middleware"
)

// SessionCookie holds the signed login token
const SessionCookie = "leads_session"

// Messages shown by the password gate
const (
	AccessDeniedMessage = "Access Denied - Enter Correct Password"
	WelcomeMessage      = "Welcome to the Interactive Dashboard!"
)

type SessionHandler struct {
	cfg   cliparse.Config
	pages *pages
	now   func() time.Time
}

func NewSessionHandler(cfg cliparse.Config) *SessionHandler {
	return &SessionHandler{cfg: cfg, pages: mustParsePages(), now: time.Now}
}

// Login handles POST /login
// A correct password sets the session cookie and returns to the dashboard
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.pages.gate(w, http.StatusBadRequest)
		return
	}

	password := r.PostFormValue("password")
	if err := auth.CheckPassword(password, h.cfg.Password, h.cfg.PasswordHash); err != nil {
		slog.Warn("dashboard login rejected",
			"request_id", middleware.RequestID(r.Context()),
			"remote", middleware.GetClientIP(r),
		)
		h.pages.gate(w, http.StatusUnauthorized)
		return
	}

	token, err := auth.GenerateSessionToken(h.cfg.SessionSalt, h.now())
	if err != nil {
		slog.Error("failed to generate session token", "error", err)
		h.pages.errorPage(w, http.StatusInternalServerError, "Could not start a session")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cfg.SessionMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})

	slog.Info("dashboard login", "remote", middleware.GetClientIP(r))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout handles POST /logout
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Authorized reports whether the request carries a valid session
func (h *SessionHandler) Authorized(r *http.Request) bool {
	c, err := r.Cookie(SessionCookie)
	if err != nil {
		return false
	}
	err = auth.ValidateSessionToken(c.Value, h.cfg.SessionSalt, h.cfg.SessionMaxAge, h.now())
	return err == nil
}

// Require rejects requests without a session with a JSON 401
func (h *SessionHandler) Require(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.Authorized(r) {
			middleware.ErrorResponse(w, http.StatusUnauthorized, AccessDeniedMessage)
			return
		}
		next(w, r)
	}
}
