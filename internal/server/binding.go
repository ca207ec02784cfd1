package server

import (
	"errors"
	"log"
	"net/http"

	"treasure-hunt/internal/hunt"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type bindMessages map[string]map[string]string

// bindJSON decodes the request body, turning binding failures into the
// field-attributed 400 list shape the validation errors use.
func bindJSON(c *gin.Context, req any, messages bindMessages, fallback string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": []string{resolveBindError(err, messages, fallback)}})
		return false
	}
	return true
}

func resolveBindError(err error, messages bindMessages, fallback string) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, verr := range verrs {
			if fieldMsgs, ok := messages[verr.Field()]; ok {
				if msg, ok := fieldMsgs[verr.Tag()]; ok {
					return msg
				}
			}
		}
	}
	if fallback != "" {
		return fallback
	}
	return "invalid request"
}

// renderHuntError maps the hunt error taxonomy onto the HTTP contract:
// missing treasures are 404 with a single message, validation failures are
// 400 with a message list, bad page options are 400 with a single message.
func renderHuntError(c *gin.Context, err error) {
	var notFound *hunt.NotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Message})
		return
	}
	var validation *hunt.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Messages})
		return
	}
	var pageOption *hunt.PageOptionError
	if errors.As(err, &pageOption) {
		c.JSON(http.StatusBadRequest, gin.H{"error": pageOption.Message})
		return
	}
	log.Printf("request failed: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
