package hunt

import (
	"encoding/json"
	"log"

	"treasure-hunt/internal/db"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// recordEvent appends an audit row. Best effort: a failure is logged and
// never surfaced to the caller.
func recordEvent(conn *gorm.DB, eventType string, treasureID, guessID *uint, payload map[string]any) {
	if conn == nil {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("event %s payload not marshaled: %v", eventType, err)
		return
	}
	event := db.Event{
		TreasureID: treasureID,
		GuessID:    guessID,
		Type:       eventType,
		Payload:    datatypes.JSON(data),
	}
	if err := conn.Create(&event).Error; err != nil {
		log.Printf("event %s not recorded: %v", eventType, err)
	}
}
