package config

import "os"

type Environment struct {
	IsDevelopment bool
	Domain        string
	Port          string
	DBURL         string
	StatePath     string
	Auth0Domain   string
	Auth0Audience string
	CookieSecure  bool
}

var Env Environment

func init() {
	// Get domain from environment variable
	domain := os.Getenv("COOKIE_DOMAIN")

	// If no domain is set, we're in development
	isDev := domain == ""
	if isDev {
		domain = "localhost"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	statePath := os.Getenv("STATE_PATH")
	if statePath == "" {
		statePath = "deencards.db"
	}

	Env = Environment{
		IsDevelopment: isDev,
		Domain:        domain,
		Port:          port,
		DBURL:         os.Getenv("DB_URL"),
		StatePath:     statePath,
		Auth0Domain:   os.Getenv("AUTH0_DOMAIN"),
		Auth0Audience: os.Getenv("AUTH0_AUDIENCE"),
		CookieSecure:  !isDev,
	}
}
