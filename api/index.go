package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/arnavshah/training-calendar-go/pkg/catalog"
	"github.com/arnavshah/training-calendar-go/pkg/database"
	"github.com/arnavshah/training-calendar-go/pkg/handlers"
)

var r *gin.Engine

func init() {
	// Load .env if it exists (for local testing with vercel dev)
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	db := database.InitDB()
	h := handlers.NewHandler(db, catalog.MustLoad())

	gin.SetMode(gin.ReleaseMode)
	r = gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	h.RegisterRoutes(r)
}

// Handler is the entry point for Vercel Go Runtime
func Handler(w http.ResponseWriter, r_req *http.Request) {
	r.ServeHTTP(w, r_req)
}
