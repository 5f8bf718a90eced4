//go:build integration

package main_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shareit-backend/internal/application"
	"shareit-backend/internal/events"
	"shareit-backend/internal/repository"
)

// TestBookingLifecycle walks the full flow through the real stores: two
// users, a listed item, a booking, the owner's approval and the emitted
// events on booking.events.
func TestBookingLifecycle(t *testing.T) {
	infra := setupContainers(t)
	defer infra.Cleanup()

	stack := setupServiceStack(t, infra.DB, infra.KafkaBrokers)
	defer stack.CleanupProducer()

	ctx := context.Background()

	owner, err := stack.Users.Create(ctx, application.CreateUserRequest{
		Name: "owner", Email: "owner@mail.com",
	})
	require.NoError(t, err)
	booker, err := stack.Users.Create(ctx, application.CreateUserRequest{
		Name: "booker", Email: "booker@mail.com",
	})
	require.NoError(t, err)

	item, err := stack.Items.Create(ctx, owner.ID, application.CreateItemRequest{
		Name: "drill", Description: "cordless drill",
	})
	require.NoError(t, err)
	assert.True(t, item.Available)

	start := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	end := start.Add(time.Hour)
	created, err := stack.Bookings.Create(ctx, booker.ID, application.CreateBookingRequest{
		ItemID: item.ID,
		Start:  &start,
		End:    &end,
	})
	require.NoError(t, err)
	assert.Equal(t, "WAITING", created.Status)

	ce := consumeOneEvent(t, infra.KafkaBrokers, events.TopicBookingEvents,
		events.BookingCreated, 15*time.Second)
	var createdEvt events.BookingCreatedEvent
	require.NoError(t, ce.ParseData(&createdEvt))
	assert.Equal(t, created.ID, createdEvt.BookingID)
	assert.Equal(t, item.ID, createdEvt.ItemID)
	assert.Equal(t, booker.ID, createdEvt.BookerID)

	approved, err := stack.Bookings.UpdateStatus(ctx, owner.ID, created.ID, true)
	require.NoError(t, err)
	assert.Equal(t, "APPROVED", approved.Status)

	ce = consumeOneEvent(t, infra.KafkaBrokers, events.TopicBookingEvents,
		events.BookingStatusChanged, 15*time.Second)
	var statusEvt events.BookingStatusChangedEvent
	require.NoError(t, ce.ParseData(&statusEvt))
	assert.Equal(t, created.ID, statusEvt.BookingID)
	assert.Equal(t, "APPROVED", statusEvt.Status)

	// The status change is visible to both participants.
	got, err := stack.Bookings.FindByID(ctx, created.ID, booker.ID)
	require.NoError(t, err)
	assert.Equal(t, "APPROVED", got.Status)

	// State queries classify the booking as future for booker and owner.
	future, err := stack.Bookings.FindByBookerAndState(ctx, booker.ID, "FUTURE", 0, 10)
	require.NoError(t, err)
	require.Len(t, future, 1)
	assert.Equal(t, created.ID, future[0].ID)

	ownerView, err := stack.Bookings.FindByOwnerAndState(ctx, owner.ID, "ALL", 0, 10)
	require.NoError(t, err)
	require.Len(t, ownerView, 1)
}

// TestCommentAfterCompletedBooking verifies the comment gate against the
// real stores: only a booker whose approved booking already started may
// comment.
func TestCommentAfterCompletedBooking(t *testing.T) {
	infra := setupContainers(t)
	defer infra.Cleanup()

	stack := setupServiceStack(t, infra.DB, infra.KafkaBrokers)
	defer stack.CleanupProducer()

	ctx := context.Background()

	owner, err := stack.Users.Create(ctx, application.CreateUserRequest{
		Name: "owner", Email: "owner@mail.com",
	})
	require.NoError(t, err)
	booker, err := stack.Users.Create(ctx, application.CreateUserRequest{
		Name: "booker", Email: "booker@mail.com",
	})
	require.NoError(t, err)

	item, err := stack.Items.Create(ctx, owner.ID, application.CreateItemRequest{
		Name: "drill", Description: "cordless drill",
	})
	require.NoError(t, err)

	// Seed a finished approved booking directly.
	now := time.Now().UTC()
	model := repository.BookingModel{
		StartDate: now.Add(-2 * time.Hour),
		EndDate:   now.Add(-time.Hour),
		ItemID:    item.ID,
		BookerID:  booker.ID,
		Status:    "APPROVED",
	}
	require.NoError(t, infra.DB.Create(&model).Error)

	comment, err := stack.Items.AddComment(ctx, item.ID, booker.ID, "worked great")
	require.NoError(t, err)
	assert.Equal(t, "worked great", comment.Text)
	assert.Equal(t, "booker", comment.AuthorName)

	// The owner never booked the item and cannot comment.
	_, err = stack.Items.AddComment(ctx, item.ID, owner.ID, "my own item")
	require.Error(t, err)

	view, err := stack.Items.FindByID(ctx, item.ID, owner.ID)
	require.NoError(t, err)
	require.Len(t, view.Comments, 1)
	require.NotNil(t, view.LastBooking)
	assert.Equal(t, model.ID, view.LastBooking.ID)
}
