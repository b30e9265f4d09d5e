package routes

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/anashany189-droid/ShareEstate1/controllers"
	"github.com/anashany189-droid/ShareEstate1/insight"
	"github.com/anashany189-droid/ShareEstate1/middleware"
	"github.com/anashany189-droid/ShareEstate1/store"
)

func optionsHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
		"service":   "shareestate-api",
	})
}

func InitRouter(st *store.Store, provider insight.Provider, cache *insight.MarketCache) *mux.Router {
	r := mux.NewRouter()

	// Health check endpoint for Docker health checks (root level)
	r.Handle("/health", http.HandlerFunc(healthHandler)).Methods(http.MethodGet)

	// CORS - origins from CORS_ALLOWED_ORIGINS (comma-separated) or defaults
	origins := []string{
		"http://localhost:3000", "http://localhost:5173",
		"http://127.0.0.1:3000", "http://127.0.0.1:5173",
	}
	if originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS"); originsEnv != "" {
		for _, p := range strings.Split(originsEnv, ",") {
			if o := strings.TrimSpace(p); o != "" {
				origins = append(origins, o)
			}
		}
	}
	r.Use(func(next http.Handler) http.Handler {
		return handlers.CORS(
			handlers.AllowedOrigins(origins),
			handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
			handlers.AllowedHeaders([]string{"Content-Type", "X-Requested-With", "X-Request-ID"}),
			handlers.AllowCredentials(),
		)(next)
	})

	api := r.PathPrefix("/v1").Subrouter()

	// Catch-all OPTIONS handler for CORS preflight
	api.PathPrefix("/").HandlerFunc(optionsHandler).Methods(http.MethodOptions)

	// Reads are cheap; invest mutates the ledger; AI calls hit an upstream.
	readLimiter := middleware.NewIPRateLimiter(300, time.Minute)
	investLimiter := middleware.NewIPRateLimiter(30, time.Minute)
	aiLimiter := middleware.NewIPRateLimiter(20, 5*time.Minute)

	properties := controllers.NewPropertiesController(st, provider)
	portfolio := controllers.NewPortfolioController(st)
	insights := controllers.NewInsightsController(cache)

	api.Handle("/properties", readLimiter.Middleware(http.HandlerFunc(properties.List))).Methods(http.MethodGet)
	api.Handle("/properties/{id}", readLimiter.Middleware(http.HandlerFunc(properties.Get))).Methods(http.MethodGet)
	api.Handle("/properties/{id}/analyze", aiLimiter.Middleware(http.HandlerFunc(properties.Analyze))).Methods(http.MethodPost)

	api.Handle("/insights/market", aiLimiter.Middleware(http.HandlerFunc(insights.Market))).Methods(http.MethodGet)

	api.Handle("/portfolio", readLimiter.Middleware(http.HandlerFunc(portfolio.Get))).Methods(http.MethodGet)
	api.Handle("/portfolio/transactions", readLimiter.Middleware(http.HandlerFunc(portfolio.Transactions))).Methods(http.MethodGet)
	api.Handle("/invest", investLimiter.Middleware(http.HandlerFunc(portfolio.Invest))).Methods(http.MethodPost)

	// Health check under the API prefix as well
	api.Handle("/health", http.HandlerFunc(healthHandler)).Methods(http.MethodGet)

	return r
}
