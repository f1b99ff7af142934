package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// ===========================================================================
// CORS Middleware
// Lets the dashboard frontend call the API from another origin
// ===========================================================================

// CORS builds the gin-contrib/cors middleware.
// allowedOrigins: allowed origins ("*" allows any)
func CORS(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", RequestIDHeader},
		ExposeHeaders: []string{RequestIDHeader, TotalCountHeader},
		MaxAge:        24 * time.Hour,
	}

	for _, o := range allowedOrigins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			break
		}
	}
	if !cfg.AllowAllOrigins {
		cfg.AllowOrigins = allowedOrigins
	}

	return cors.New(cfg)
}

// TotalCountHeader response header carrying the filtered total of array listings
const TotalCountHeader = "X-Total-Count"
