package server

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// guessConfirmation is returned whether or not the guess won; the email
// notification is the only winner signal.
const guessConfirmation = "Thank you! You will receive an email if your guess wins!"

// treasureRef accepts a treasure id given as either a JSON number or a
// JSON string ("5"). Anything else fails the bind.
type treasureRef string

func (r *treasureRef) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*r = treasureRef(n.String())
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*r = treasureRef(s)
	return nil
}

type guessParams struct {
	TreasureID treasureRef `json:"treasure_id"`
	Email      string      `json:"email"`
	Answer     string      `json:"answer"`
}

func (s *Server) handleCreateGuess(c *gin.Context) {
	var params guessParams
	if !bindJSON(c, &params, nil, "request body must be valid JSON") {
		return
	}
	_, err := s.ledger.Submit(c.Request.Context(), string(params.TreasureID), params.Email, params.Answer)
	if err != nil {
		renderHuntError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": guessConfirmation})
}
