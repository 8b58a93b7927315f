package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (app *application) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		app.logger.Info("request",
			zap.String("remote_addr", r.RemoteAddr),
			zap.String("method", r.Method),
			zap.String("uri", r.URL.RequestURI()),
			zap.Duration("elapsed", time.Since(start)))
	})
}

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				app.serverError(w, fmt.Errorf("%s", err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func secureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "deny")
		next.ServeHTTP(w, r)
	})
}

// identifyBrowser pins the request to a browser namespace. The id lives in a
// long-lived cookie of its own, so it outlasts the session that caches it:
// an expired or lost session reattaches to the same cart and users.
func (app *application) identifyBrowser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if c, err := r.Cookie(browserCookie); err == nil {
			if u, err := uuid.Parse(c.Value); err == nil {
				id = u.String()
			}
		}
		if id == "" {
			id = app.session.GetString(r.Context(), browserIDKey)
		}
		if id == "" {
			id = uuid.NewString()
		}
		if app.session.GetString(r.Context(), browserIDKey) != id {
			app.session.Put(r.Context(), browserIDKey, id)
		}

		http.SetCookie(w, &http.Cookie{
			Name:     browserCookie,
			Value:    id,
			Path:     "/",
			MaxAge:   int(browserCookieAge.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		next.ServeHTTP(w, r)
	})
}
