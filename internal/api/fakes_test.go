package api

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Rrens/space-reservation/internal/domain"
	"github.com/google/uuid"
)

// memoryStore backs the four repositories with maps for router tests
type memoryStore struct {
	mu           sync.Mutex
	nextID       int64
	spaces       map[int64]domain.Space
	rooms        map[int64]domain.Room
	reservations map[int64]domain.Reservation
	users        map[uuid.UUID]domain.User
	supplies     []domain.Supply
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		spaces:       map[int64]domain.Space{},
		rooms:        map[int64]domain.Room{},
		reservations: map[int64]domain.Reservation{},
		users:        map[uuid.UUID]domain.User{},
		supplies: []domain.Supply{
			{ID: 1, Name: "desk", Size: &domain.Size{Width: 120, Height: 60}},
			{ID: 2, Name: "chair", Size: &domain.Size{Width: 50, Height: 50}},
		},
	}
}

func (s *memoryStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memoryStore) repositories() Repositories {
	return Repositories{
		Spaces:       memorySpaces{s},
		Rooms:        memoryRooms{s},
		Reservations: memoryReservations{s},
		Users:        memoryUsers{s},
		Supplies:     memorySupplies{s},
	}
}

type memorySpaces struct{ s *memoryStore }

func (r memorySpaces) FindAll(ctx context.Context) ([]domain.Space, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []domain.Space{}
	for _, sp := range r.s.spaces {
		out = append(out, r.withRooms(sp))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memorySpaces) FindByID(ctx context.Context, id int64) (*domain.Space, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sp, ok := r.s.spaces[id]
	if !ok {
		return nil, nil
	}
	sp = r.withRooms(sp)
	return &sp, nil
}

func (r memorySpaces) withRooms(sp domain.Space) domain.Space {
	sp.Rooms = nil
	for _, room := range r.s.rooms {
		if room.SpaceID == sp.ID {
			sp.Rooms = append(sp.Rooms, room)
		}
	}
	return sp
}

func (r memorySpaces) Save(ctx context.Context, space *domain.Space) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	space.ID = r.s.id()
	r.s.spaces[space.ID] = *space
	return nil
}

func (r memorySpaces) Update(ctx context.Context, space *domain.Space) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.spaces[space.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.spaces[space.ID] = *space
	return nil
}

func (r memorySpaces) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.spaces[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.spaces, id)
	return nil
}

type memoryRooms struct{ s *memoryStore }

func (r memoryRooms) FindByID(ctx context.Context, id int64) (*domain.Room, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	room, ok := r.s.rooms[id]
	if !ok {
		return nil, nil
	}
	return &room, nil
}

func (r memoryRooms) FindBySpaceID(ctx context.Context, spaceID int64) ([]domain.Room, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Room
	for _, room := range r.s.rooms {
		if room.SpaceID == spaceID {
			out = append(out, room)
		}
	}
	return out, nil
}

func (r memoryRooms) Save(ctx context.Context, room *domain.Room) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.spaces[room.SpaceID]; !ok {
		return domain.ErrReferenceNotFound
	}
	room.ID = r.s.id()
	if err := r.s.setAssets(room.ID, room.Assets); err != nil {
		return err
	}
	r.s.rooms[room.ID] = *room
	return nil
}

func (r memoryRooms) Update(ctx context.Context, id int64, update *domain.RoomUpdate) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	room, ok := r.s.rooms[id]
	if !ok {
		return domain.ErrNotFound
	}
	if update.Name != nil {
		room.Name = *update.Name
	}
	if update.Description != nil {
		room.Description = update.Description
	}
	if update.Position != nil {
		room.Position = update.Position
	}
	if update.Size != nil {
		room.Size = update.Size
	}
	if update.Assets != nil {
		if err := r.s.setAssets(id, update.Assets); err != nil {
			return err
		}
		room.Assets = update.Assets
	}
	r.s.rooms[id] = room
	return nil
}

func (r memoryRooms) DeleteByIDs(ctx context.Context, ids []int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, id := range ids {
		delete(r.s.rooms, id)
	}
	return nil
}

func (s *memoryStore) setAssets(roomID int64, assets []domain.Asset) error {
	for _, a := range assets {
		if a.SupplyID != nil && !s.hasSupply(*a.SupplyID) {
			return domain.ErrReferenceNotFound
		}
	}
	for i := range assets {
		assets[i].ID = s.id()
		assets[i].RoomID = roomID
	}
	return nil
}

func (s *memoryStore) hasSupply(id int64) bool {
	for _, supply := range s.supplies {
		if supply.ID == id {
			return true
		}
	}
	return false
}

type memorySupplies struct{ s *memoryStore }

func (r memorySupplies) FindAll(ctx context.Context) ([]domain.Supply, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return append([]domain.Supply{}, r.s.supplies...), nil
}

type memoryReservations struct{ s *memoryStore }

func (r memoryReservations) filter(keep func(domain.Reservation) bool) []domain.Reservation {
	out := []domain.Reservation{}
	for _, res := range r.s.reservations {
		if keep(res) {
			out = append(out, res)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r memoryReservations) FindAll(ctx context.Context) ([]domain.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.filter(func(domain.Reservation) bool { return true }), nil
}

func (r memoryReservations) FindByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	res, ok := r.s.reservations[id]
	if !ok {
		return nil, nil
	}
	return &res, nil
}

func (r memoryReservations) FindByRoomID(ctx context.Context, roomID int64) ([]domain.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.filter(func(res domain.Reservation) bool { return res.RoomID == roomID }), nil
}

func (r memoryReservations) FindByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.filter(func(res domain.Reservation) bool { return res.UserID == userID }), nil
}

func (r memoryReservations) FindOverlapping(ctx context.Context, roomID int64, start, end time.Time, excludeID int64) ([]domain.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.filter(func(res domain.Reservation) bool {
		return res.RoomID == roomID && res.ID != excludeID &&
			res.StartTime.Before(end) && start.Before(res.EndTime)
	}), nil
}

func (r memoryReservations) Save(ctx context.Context, reservation *domain.Reservation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	reservation.ID = r.s.id()
	r.s.reservations[reservation.ID] = *reservation
	return nil
}

func (r memoryReservations) Update(ctx context.Context, reservation *domain.Reservation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.reservations[reservation.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.reservations[reservation.ID] = *reservation
	return nil
}

func (r memoryReservations) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.reservations[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.reservations, id)
	return nil
}

type memoryUsers struct{ s *memoryStore }

func (r memoryUsers) FindAll(ctx context.Context) ([]domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []domain.User{}
	for _, u := range r.s.users {
		out = append(out, u)
	}
	return out, nil
}

func (r memoryUsers) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r memoryUsers) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == strings.ToLower(email) {
			return &u, nil
		}
	}
	return nil, nil
}

func (r memoryUsers) Save(ctx context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	r.s.users[user.ID] = *user
	return nil
}

func (r memoryUsers) Update(ctx context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.users[user.ID] = *user
	return nil
}

func (r memoryUsers) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.users, id)
	return nil
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
