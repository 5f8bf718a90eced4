package application

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"shareit-backend/internal/domain"
	bookingDomain "shareit-backend/internal/domain/booking"
	itemDomain "shareit-backend/internal/domain/item"
	requestDomain "shareit-backend/internal/domain/request"
	userDomain "shareit-backend/internal/domain/user"
)

// In-memory repository fakes. They replicate the store contract, including
// the not-found messages, so service behavior can be tested without a
// database.

type memUserRepo struct {
	seq   int64
	users map[int64]*userDomain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[int64]*userDomain.User{}}
}

func (r *memUserRepo) FindByID(_ context.Context, id int64) (*userDomain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.NewNotFoundError(fmt.Sprintf("User with id=%d not exists", id))
	}
	return u, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*userDomain.User, error) {
	for _, u := range r.users {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindAll(_ context.Context) ([]*userDomain.User, error) {
	ids := make([]int64, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	list := make([]*userDomain.User, len(ids))
	for i, id := range ids {
		list[i] = r.users[id]
	}
	return list, nil
}

func (r *memUserRepo) Save(_ context.Context, u *userDomain.User) (*userDomain.User, error) {
	r.seq++
	saved := userDomain.Reconstruct(r.seq, u.Name(), u.Email())
	r.users[r.seq] = saved
	return saved, nil
}

func (r *memUserRepo) Update(_ context.Context, u *userDomain.User) (*userDomain.User, error) {
	r.users[u.ID()] = u
	return u, nil
}

func (r *memUserRepo) DeleteByID(_ context.Context, id int64) error {
	delete(r.users, id)
	return nil
}

type memItemRepo struct {
	seq   int64
	items map[int64]*itemDomain.Item
}

func newMemItemRepo() *memItemRepo {
	return &memItemRepo{items: map[int64]*itemDomain.Item{}}
}

func (r *memItemRepo) FindByID(_ context.Context, id int64) (*itemDomain.Item, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, domain.NewNotFoundError(fmt.Sprintf("Item with id=%d not exists", id))
	}
	return it, nil
}

func (r *memItemRepo) FindAllByOwnerID(_ context.Context, ownerID int64) ([]*itemDomain.Item, error) {
	return r.collect(func(it *itemDomain.Item) bool { return it.OwnerID() == ownerID }), nil
}

func (r *memItemRepo) FindAllByRequestID(_ context.Context, requestID int64) ([]*itemDomain.Item, error) {
	return r.collect(func(it *itemDomain.Item) bool {
		return it.RequestID() != nil && *it.RequestID() == requestID
	}), nil
}

func (r *memItemRepo) Search(_ context.Context, text string) ([]*itemDomain.Item, error) {
	needle := strings.ToLower(text)
	return r.collect(func(it *itemDomain.Item) bool {
		return it.Available() &&
			(strings.Contains(strings.ToLower(it.Name()), needle) ||
				strings.Contains(strings.ToLower(it.Description()), needle))
	}), nil
}

func (r *memItemRepo) Save(_ context.Context, it *itemDomain.Item) (*itemDomain.Item, error) {
	r.seq++
	saved := itemDomain.Reconstruct(r.seq, it.Name(), it.Description(), it.Available(), it.OwnerID(), it.RequestID())
	r.items[r.seq] = saved
	return saved, nil
}

func (r *memItemRepo) Update(_ context.Context, it *itemDomain.Item) (*itemDomain.Item, error) {
	r.items[it.ID()] = it
	return it, nil
}

func (r *memItemRepo) collect(match func(*itemDomain.Item) bool) []*itemDomain.Item {
	ids := make([]int64, 0, len(r.items))
	for id, it := range r.items {
		if match(it) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	list := make([]*itemDomain.Item, len(ids))
	for i, id := range ids {
		list[i] = r.items[id]
	}
	return list
}

type memBookingRepo struct {
	seq      int64
	bookings map[int64]*bookingDomain.Booking
	items    *memItemRepo
}

func newMemBookingRepo(items *memItemRepo) *memBookingRepo {
	return &memBookingRepo{bookings: map[int64]*bookingDomain.Booking{}, items: items}
}

func (r *memBookingRepo) FindByID(_ context.Context, id int64) (*bookingDomain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.NewNotFoundError(fmt.Sprintf("Booking with id=%d not exists", id))
	}
	return b, nil
}

func (r *memBookingRepo) FindAllByBookerID(_ context.Context, bookerID int64) ([]*bookingDomain.Booking, error) {
	return r.collect(func(b *bookingDomain.Booking) bool { return b.BookerID() == bookerID }), nil
}

func (r *memBookingRepo) FindAllByItemOwnerID(_ context.Context, ownerID int64) ([]*bookingDomain.Booking, error) {
	return r.collect(func(b *bookingDomain.Booking) bool {
		it, ok := r.items.items[b.ItemID()]
		return ok && it.OwnerID() == ownerID
	}), nil
}

func (r *memBookingRepo) FindAllByItemID(_ context.Context, itemID int64) ([]*bookingDomain.Booking, error) {
	return r.collect(func(b *bookingDomain.Booking) bool { return b.ItemID() == itemID }), nil
}

func (r *memBookingRepo) FindAllByItemIDAndBookerID(_ context.Context, itemID, bookerID int64) ([]*bookingDomain.Booking, error) {
	return r.collect(func(b *bookingDomain.Booking) bool {
		return b.ItemID() == itemID && b.BookerID() == bookerID
	}), nil
}

func (r *memBookingRepo) Save(_ context.Context, b *bookingDomain.Booking) (*bookingDomain.Booking, error) {
	r.seq++
	saved := bookingDomain.Reconstruct(r.seq, b.ItemID(), b.BookerID(), b.Start(), b.End(), b.Status())
	r.bookings[r.seq] = saved
	return saved, nil
}

func (r *memBookingRepo) Update(_ context.Context, b *bookingDomain.Booking) (*bookingDomain.Booking, error) {
	r.bookings[b.ID()] = b
	return b, nil
}

func (r *memBookingRepo) collect(match func(*bookingDomain.Booking) bool) []*bookingDomain.Booking {
	ids := make([]int64, 0, len(r.bookings))
	for id, b := range r.bookings {
		if match(b) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	list := make([]*bookingDomain.Booking, len(ids))
	for i, id := range ids {
		list[i] = r.bookings[id]
	}
	return list
}

type memRequestRepo struct {
	seq      int64
	requests map[int64]*requestDomain.ItemRequest
}

func newMemRequestRepo() *memRequestRepo {
	return &memRequestRepo{requests: map[int64]*requestDomain.ItemRequest{}}
}

func (r *memRequestRepo) FindByID(_ context.Context, id int64) (*requestDomain.ItemRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, domain.NewNotFoundError(fmt.Sprintf("Request with id=%d not exists", id))
	}
	return req, nil
}

func (r *memRequestRepo) FindAllByRequestorID(_ context.Context, requestorID int64) ([]*requestDomain.ItemRequest, error) {
	return r.collect(func(req *requestDomain.ItemRequest) bool {
		return req.RequestorID() == requestorID
	}), nil
}

func (r *memRequestRepo) FindAllByOtherUsers(_ context.Context, userID int64, from, size int) ([]*requestDomain.ItemRequest, error) {
	all := r.collect(func(req *requestDomain.ItemRequest) bool {
		return req.RequestorID() != userID
	})
	if from >= len(all) {
		return []*requestDomain.ItemRequest{}, nil
	}
	end := from + size
	if end > len(all) {
		end = len(all)
	}
	return all[from:end], nil
}

func (r *memRequestRepo) Save(_ context.Context, req *requestDomain.ItemRequest) (*requestDomain.ItemRequest, error) {
	r.seq++
	saved := requestDomain.Reconstruct(r.seq, req.RequestorID(), req.Description(), req.Created())
	r.requests[r.seq] = saved
	return saved, nil
}

// collect returns matching requests newest first, mirroring the store
// ordering contract.
func (r *memRequestRepo) collect(match func(*requestDomain.ItemRequest) bool) []*requestDomain.ItemRequest {
	list := make([]*requestDomain.ItemRequest, 0, len(r.requests))
	for _, req := range r.requests {
		if match(req) {
			list = append(list, req)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Created().After(list[j].Created()) })
	return list
}

// fixture bundles the fakes and services under test around a fixed clock.
type fixture struct {
	users    *memUserRepo
	items    *memItemRepo
	comments *memCommentRepo
	bookings *memBookingRepo
	requests *memRequestRepo

	userService    *UserService
	itemService    *ItemService
	bookingService *BookingService
	requestService *RequestService
}

type memCommentRepo struct {
	seq      int64
	comments map[int64]*itemDomain.Comment
}

func newMemCommentRepo() *memCommentRepo {
	return &memCommentRepo{comments: map[int64]*itemDomain.Comment{}}
}

func (r *memCommentRepo) FindAllByItemID(_ context.Context, itemID int64) ([]*itemDomain.Comment, error) {
	list := make([]*itemDomain.Comment, 0)
	for _, c := range r.comments {
		if c.ItemID() == itemID {
			list = append(list, c)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Created().Before(list[j].Created()) })
	return list, nil
}

func (r *memCommentRepo) Save(_ context.Context, c *itemDomain.Comment) (*itemDomain.Comment, error) {
	r.seq++
	saved := itemDomain.ReconstructComment(r.seq, c.ItemID(), c.AuthorID(), c.Text(), c.Created())
	r.comments[r.seq] = saved
	return saved, nil
}

func newFixture(now time.Time) *fixture {
	log := zap.NewNop()
	clock := func() time.Time { return now }

	users := newMemUserRepo()
	items := newMemItemRepo()
	comments := newMemCommentRepo()
	bookings := newMemBookingRepo(items)
	requests := newMemRequestRepo()

	return &fixture{
		users:    users,
		items:    items,
		comments: comments,
		bookings: bookings,
		requests: requests,

		userService:    NewUserService(users, log),
		itemService:    NewItemService(items, comments, bookings, users, log, clock),
		bookingService: NewBookingService(bookings, items, users, nil, log, clock),
		requestService: NewRequestService(requests, items, users, log, clock),
	}
}

func (f *fixture) seedUser(name, email string) *userDomain.User {
	u, _ := userDomain.New(name, email)
	saved, _ := f.users.Save(context.Background(), u)
	return saved
}

func (f *fixture) seedItem(ownerID int64, name string, available bool) *itemDomain.Item {
	it, _ := itemDomain.New(ownerID, name, name+" description", &available, nil)
	saved, _ := f.items.Save(context.Background(), it)
	return saved
}

func (f *fixture) seedBooking(itemID, bookerID int64, start, end time.Time, status bookingDomain.Status) *bookingDomain.Booking {
	b := bookingDomain.Reconstruct(0, itemID, bookerID, start, end, status)
	saved, _ := f.bookings.Save(context.Background(), b)
	return saved
}

func (f *fixture) seedRequest(requestorID int64, description string, created time.Time) *requestDomain.ItemRequest {
	r := requestDomain.Reconstruct(0, requestorID, description, created)
	saved, _ := f.requests.Save(context.Background(), r)
	return saved
}
