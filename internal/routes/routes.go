package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"UGEM_BACK-END/internal/config"
	"UGEM_BACK-END/internal/handlers"
	"UGEM_BACK-END/internal/middleware"
)

// Handlers groups everything SetupRoutes wires into the mux
type Handlers struct {
	Auth           *handlers.AuthHandler
	ForgotPassword *handlers.ForgotPasswordHandler
	GoogleAuth     *handlers.GoogleAuthHandler
	Candidates     *handlers.CandidateHandler
	Profile        *handlers.ProfileHandler
	Uploads        *handlers.UploadHandler
	OG             *handlers.OGHandler
	Health         *handlers.HealthHandler
}

// SetupRoutes configures all application routes
func SetupRoutes(h Handlers, cfg *config.Config) {
	// Health check routes
	http.HandleFunc("/healthz", h.Health.Health)
	http.HandleFunc("/livez", h.Health.Livez)
	http.HandleFunc("/readyz", h.Health.Readyz)

	// Authentication routes
	http.HandleFunc("/api/auth/register", h.Auth.Register)
	http.HandleFunc("/api/auth/login", h.Auth.Login)
	http.HandleFunc("/api/auth/forgot-password", h.ForgotPassword.ForgotPassword)
	http.HandleFunc("/api/auth/verify-reset-code", h.ForgotPassword.VerifyResetCode)
	http.HandleFunc("/api/auth/reset-password", h.ForgotPassword.ResetPassword)

	// Google OAuth routes
	if cfg.IsGoogleOAuthConfigured() {
		http.HandleFunc("/api/auth/google/login", h.GoogleAuth.GoogleLogin)
		http.HandleFunc("/api/auth/google/callback", h.GoogleAuth.GoogleCallback)
	}

	// Candidate registry routes. The collection GET is public, mutation goes
	// through the collection dispatcher which checks auth per method.
	http.HandleFunc("/api/candidates", candidateCollection(h.Candidates, cfg))
	http.HandleFunc("/api/candidates/mine", middleware.AuthMiddleware(h.Candidates.Mine, &cfg.JWT))
	http.HandleFunc("/api/candidates/", candidateItem(h.Candidates, cfg))

	// Profile routes
	http.HandleFunc("/api/profile", middleware.AuthMiddleware(h.Profile.Handle, &cfg.JWT))

	// Upload proxy
	http.HandleFunc("/api/uploads/image", middleware.AuthMiddleware(h.Uploads.UploadImage, &cfg.JWT))

	// Social preview image
	http.HandleFunc("/api/og", h.OG.Image)

	// API documentation
	http.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Root route
	http.HandleFunc("/", rootHandler)
}

// candidateCollection keeps GET public while POST requires a session token
func candidateCollection(h *handlers.CandidateHandler, cfg *config.Config) http.HandlerFunc {
	authed := middleware.AuthMiddleware(h.HandleCollection, &cfg.JWT)
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			h.HandleCollection(w, r)
			return
		}
		authed(w, r)
	}
}

// candidateItem keeps the detail GET public while PUT/DELETE require auth
func candidateItem(h *handlers.CandidateHandler, cfg *config.Config) http.HandlerFunc {
	authed := middleware.AuthMiddleware(h.HandleItem, &cfg.JWT)
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			h.HandleItem(w, r)
			return
		}
		authed(w, r)
	}
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("UGEM backend is running."))
}
