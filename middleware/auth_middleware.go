package middleware

import (
	"log"
	"net/http"
	"net/url"
	"time"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"

	"github.com/deencards/deencards-api/config"
)

// EnsureValidToken validates Auth0 bearer tokens when AUTH0_DOMAIN is
// configured. The provider is optional and usually disabled, so with no
// domain this is a pass-through and every request stays anonymous. Even when
// enabled, credentials are optional: a missing token is not an error.
func EnsureValidToken() func(next http.Handler) http.Handler {
	if config.Env.Auth0Domain == "" {
		return func(next http.Handler) http.Handler { return next }
	}

	issuerURL, err := url.Parse("https://" + config.Env.Auth0Domain + "/")
	if err != nil {
		log.Printf("auth: bad AUTH0_DOMAIN, running without token validation: %v", err)
		return func(next http.Handler) http.Handler { return next }
	}

	provider := jwks.NewCachingProvider(issuerURL, 5*time.Minute)
	jwtValidator, err := validator.New(
		provider.KeyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{config.Env.Auth0Audience},
	)
	if err != nil {
		log.Printf("auth: validator setup failed, running without token validation: %v", err)
		return func(next http.Handler) http.Handler { return next }
	}

	middleware := jwtmiddleware.New(
		jwtValidator.ValidateToken,
		jwtmiddleware.WithCredentialsOptional(true),
	)

	return func(next http.Handler) http.Handler {
		return middleware.CheckJWT(next)
	}
}
