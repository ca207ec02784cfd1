package server

import (
	"net/http"

	"treasure-hunt/internal/hunt"

	"github.com/gin-gonic/gin"
)

type treasureParams struct {
	Answer string `json:"answer" binding:"required"`
}

var treasureMessages = bindMessages{
	"Answer": {"required": hunt.MsgAnswerBlank},
}

func (s *Server) handleCreateTreasure(c *gin.Context) {
	var params treasureParams
	if !bindJSON(c, &params, treasureMessages, hunt.MsgAnswerBlank) {
		return
	}
	treasure, err := s.registry.Create(c.Request.Context(), params.Answer)
	if err != nil {
		renderHuntError(c, err)
		return
	}
	c.JSON(http.StatusCreated, treasure)
}

func (s *Server) handleDeactivateTreasure(c *gin.Context) {
	treasure, err := s.registry.Deactivate(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderHuntError(c, err)
		return
	}
	c.JSON(http.StatusOK, treasure)
}

func (s *Server) handleDestroyTreasure(c *gin.Context) {
	if err := s.registry.Destroy(c.Request.Context(), c.Param("id")); err != nil {
		renderHuntError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleListWinners(c *gin.Context) {
	opts, err := hunt.ParsePageOptions(c.Query("page"), c.Query("per_page"), c.Query("order"))
	if err != nil {
		renderHuntError(c, err)
		return
	}
	winners, err := s.registry.Winners(c.Request.Context(), c.Param("id"), opts)
	if err != nil {
		renderHuntError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": winners})
}
