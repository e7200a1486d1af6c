package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/neggmmm/brandbite-sub000/models"
	"github.com/neggmmm/brandbite-sub000/utils"
)

func TestPublishReachesListeners(t *testing.T) {
	utils.InitLogger()
	hub := NewHub()
	defer hub.Close()

	got := make(chan Message, 1)
	hub.AddListener(func(msg Message) error {
		got <- msg
		return nil
	})

	booking := models.Booking{Reference: "BK-TEST1234", RestaurantID: 7}
	hub.Publish(EventBookingConfirmed, 7, booking)

	select {
	case msg := <-got:
		assert.Equal(t, EventBookingConfirmed, msg.Event)
		assert.Equal(t, uint(7), msg.RestaurantID)
	case <-time.After(2 * time.Second):
		t.Fatal("listener never received the event")
	}
}

func TestPublishNeverBlocks(t *testing.T) {
	utils.InitLogger()
	hub := NewHub()
	defer hub.Close()

	block := make(chan struct{})
	hub.AddListener(func(msg Message) error {
		<-block
		return nil
	})

	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			hub.Publish(EventTableUpdated, 1, models.Table{ID: uint(i)})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a slow listener")
	}
	close(block)
}

func TestListenerErrorIsSwallowed(t *testing.T) {
	utils.InitLogger()
	hub := NewHub()

	calls := make(chan string, 2)
	hub.AddListener(func(msg Message) error {
		calls <- "first"
		return assert.AnError
	})
	hub.AddListener(func(msg Message) error {
		calls <- "second"
		return nil
	})

	hub.Publish(EventBookingNew, 1, models.Booking{})
	hub.Close() // drains the queue

	assert.Len(t, calls, 2, "a failing listener must not stop the others")
}
