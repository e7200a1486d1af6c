package events

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/neggmmm/brandbite-sub000/models"
)

// NotificationListener persists every published event as a Notification row
// so staff can review what happened after the fact.
func NotificationListener(db *gorm.DB) Listener {
	return func(msg Message) error {
		n := models.Notification{
			RestaurantID: msg.RestaurantID,
			Event:        msg.Event,
			Message:      describe(msg),
		}
		return db.Create(&n).Error
	}
}

func describe(msg Message) string {
	switch data := msg.Data.(type) {
	case models.Booking:
		return fmt.Sprintf("%s: booking %s for %d on %s %s-%s",
			msg.Event, data.Reference, data.PartySize, data.Date, data.StartTime, data.EndTime)
	case models.Table:
		return fmt.Sprintf("%s: table %s is now %s", msg.Event, data.TableNumber, data.Status)
	default:
		return msg.Event
	}
}
