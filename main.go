package main

import (
	"log"
	"net/http"
	"os"

	"github.com/deencards/deencards-api/config"
	"github.com/deencards/deencards-api/handlers"
	"github.com/deencards/deencards-api/middleware"
	"github.com/deencards/deencards-api/notify"
	"github.com/deencards/deencards-api/session"
	"github.com/deencards/deencards-api/sheets"
	"github.com/deencards/deencards-api/storage"
	"github.com/deencards/deencards-api/stores"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func init() {
	// Load .env file if not in production environment
	if os.Getenv("RAILWAY_ENVIRONMENT_NAME") == "" {
		err := godotenv.Load()
		if err != nil {
			log.Printf("Warning: .env file not found, environment variables might not be loaded: %v", err)
		}
	}
}

func main() {
	// State database. A failure degrades to the unavailable medium: the study
	// flow keeps working, progress and preferences are just not kept.
	var kv storage.KV
	if err := config.Connect(); err != nil {
		log.Printf("Warning: state database unavailable, running without persistence: %v", err)
		kv = storage.Unavailable{}
	} else {
		kv = storage.NewDB(config.Database)
	}

	bus := notify.NewBus()
	authMiddleware := middleware.EnsureValidToken()

	storeHandler := &handlers.StoreHandler{
		Sheets:    sheets.NewClient("", nil),
		Progress:  stores.NewProgress(kv, bus),
		Daily:     stores.NewDaily(kv, bus),
		Saved:     stores.NewSaved(kv, bus),
		Bookmarks: stores.NewBookmarks(kv, bus),
		Notes:     stores.NewNotes(kv, bus),
		Settings:  stores.NewSettings(kv, bus),
		Sessions:  session.NewManager(),
		Bus:       bus,
	}
	defer storeHandler.Sessions.CloseAll()

	mux := http.NewServeMux()

	// Decks
	mux.HandleFunc("GET /api/decks", storeHandler.ListDecks)
	mux.HandleFunc("GET /api/decks/{slug}/cards", storeHandler.GetDeckCards)

	// Progress
	mux.HandleFunc("GET /api/progress/{slug}", storeHandler.GetDeckProgress)
	mux.HandleFunc("POST /api/progress/{slug}/reset", storeHandler.ResetDeckProgress)
	mux.HandleFunc("GET /api/daily", storeHandler.GetDaily)
	mux.HandleFunc("POST /api/daily/reset", storeHandler.ResetDaily)

	// Saved cards
	mux.HandleFunc("GET /api/saved", storeHandler.GetSaved)
	mux.HandleFunc("POST /api/saved/toggle", storeHandler.ToggleSaved)
	mux.HandleFunc("DELETE /api/saved/{uid}", storeHandler.RemoveSaved)

	// Bookmarks & notes
	mux.HandleFunc("GET /api/bookmarks", storeHandler.GetBookmarks)
	mux.HandleFunc("POST /api/bookmarks/toggle", storeHandler.ToggleBookmark)
	mux.HandleFunc("GET /api/notes", storeHandler.GetNotes)
	mux.HandleFunc("PUT /api/notes", storeHandler.SaveNote)

	// Settings
	mux.HandleFunc("GET /api/settings", storeHandler.GetSettings)
	mux.HandleFunc("PUT /api/settings", storeHandler.UpdateSettings)

	// Study sessions
	mux.HandleFunc("POST /api/sessions", storeHandler.StartSession)
	mux.HandleFunc("GET /api/sessions/{sessionID}", storeHandler.GetSession)
	mux.HandleFunc("POST /api/sessions/{sessionID}/answer", storeHandler.AnswerSession)
	mux.HandleFunc("POST /api/sessions/{sessionID}/{action}", storeHandler.TransitionSession)
	mux.HandleFunc("DELETE /api/sessions/{sessionID}", storeHandler.CloseSession)

	// Profile export
	mux.HandleFunc("GET /api/export-key", storeHandler.ExportKey)
	mux.HandleFunc("POST /api/import-key", storeHandler.ImportKey)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	// Configure CORS with specific options
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "https://deencards.vercel.app"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(authMiddleware(middleware.EnsureProfile(mux)))

	serverAddr := "0.0.0.0:" + config.Env.Port
	log.Printf("Listening on %s", serverAddr)
	if err := http.ListenAndServe(serverAddr, corsHandler); err != nil {
		log.Fatalf("server: %v", err)
	}
}
