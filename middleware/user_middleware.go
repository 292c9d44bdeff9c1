package middleware

import (
	"context"
	"net/http"

	"github.com/deencards/deencards-api/config"
	"github.com/google/uuid"
)

type contextKey string

const profileKey contextKey = "profile"

const profileCookie = "dc_profile"

// EnsureProfile reads or creates the anonymous profile cookie identifying
// this browser profile. No sign-in is ever required; the cookie only scopes
// exported state. It never rejects a request.
func EnsureProfile(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		profileID := ""
		if cookie, err := r.Cookie(profileCookie); err == nil {
			profileID = cookie.Value
		}
		if profileID == "" {
			profileID = uuid.New().String()
			SetProfileCookie(w, profileID)
		}

		ctx := context.WithValue(r.Context(), profileKey, profileID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SetProfileCookie pins the profile cookie to profileID. Restoring an
// exported profile rewrites the cookie through here.
func SetProfileCookie(w http.ResponseWriter, profileID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     profileCookie,
		Value:    profileID,
		Path:     "/",
		MaxAge:   365 * 24 * 3600,
		HttpOnly: true,
		Secure:   config.Env.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ProfileID returns the anonymous profile ID attached by EnsureProfile.
func ProfileID(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(profileKey).(string)
	return id, ok && id != ""
}
