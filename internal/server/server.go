package server

import (
	"net/http"

	"treasure-hunt/internal/config"
	"treasure-hunt/internal/geo"
	"treasure-hunt/internal/hunt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Server struct {
	conn     *gorm.DB
	cfg      config.Config
	registry *hunt.Registry
	ledger   *hunt.Ledger
}

func New(conn *gorm.DB, cfg config.Config, geocoder geo.Geocoder, notifier hunt.Notifier) *Server {
	registry := hunt.NewRegistry(conn, geocoder)
	return &Server{
		conn:     conn,
		cfg:      cfg,
		registry: registry,
		ledger:   hunt.NewLedger(conn, registry, geocoder, notifier),
	}
}

func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/treasures", s.handleCreateTreasure)
	r.PUT("/treasures/:id/deactivate", s.handleDeactivateTreasure)
	r.DELETE("/treasures/:id", s.handleDestroyTreasure)
	r.GET("/treasures/:id/winners", s.handleListWinners)
	r.POST("/guesses", s.handleCreateGuess)

	return r
}
