package booking

import "time"

// Booking is the aggregate root for a reservation of an item over a time
// window. A new booking always starts in WAITING; the item owner later
// approves or rejects it.
type Booking struct {
	id       int64
	start    time.Time
	end      time.Time
	itemID   int64
	bookerID int64
	status   Status
}

// New creates a booking in WAITING status, pending its first save.
// Interval and ownership validation happens in the application service,
// where the check order is part of the contract.
func New(itemID, bookerID int64, start, end time.Time) *Booking {
	return &Booking{
		start:    start,
		end:      end,
		itemID:   itemID,
		bookerID: bookerID,
		status:   StatusWaiting,
	}
}

// Reconstruct rebuilds a Booking from persistence data (no validation).
func Reconstruct(id, itemID, bookerID int64, start, end time.Time, status Status) *Booking {
	return &Booking{
		id:       id,
		start:    start,
		end:      end,
		itemID:   itemID,
		bookerID: bookerID,
		status:   status,
	}
}

func (b *Booking) ID() int64        { return b.id }
func (b *Booking) Start() time.Time { return b.start }
func (b *Booking) End() time.Time   { return b.end }
func (b *Booking) ItemID() int64    { return b.itemID }
func (b *Booking) BookerID() int64  { return b.bookerID }
func (b *Booking) Status() Status   { return b.status }

// Approve marks the booking approved.
func (b *Booking) Approve() {
	b.status = StatusApproved
}

// Reject marks the booking rejected.
func (b *Booking) Reject() {
	b.status = StatusRejected
}
