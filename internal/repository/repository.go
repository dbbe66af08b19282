package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/toolshare/toolshare-server/internal/models"
	"github.com/toolshare/toolshare-server/internal/storage"
)

// Repository defines the entity store operations. Creates assign fresh
// collision-resistant ids (uuid v4) unless the entity already carries one;
// no cross-entity invariant is enforced here — the service layer owns
// coupled updates.
type Repository interface {
	// Users
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)

	// Tools
	CreateTool(ctx context.Context, tool *models.Tool) error
	UpdateTool(ctx context.Context, tool *models.Tool) error
	DeleteTool(ctx context.Context, id string) error
	GetTool(ctx context.Context, id string) (*models.Tool, error)
	ListTools(ctx context.Context) ([]models.Tool, error)

	// Groups
	CreateGroup(ctx context.Context, group *models.Group) error
	UpdateGroup(ctx context.Context, group *models.Group) error
	DeleteGroup(ctx context.Context, id string) error
	GetGroup(ctx context.Context, id string) (*models.Group, error)
	GetGroupByInviteCode(ctx context.Context, code string) (*models.Group, error)
	ListGroups(ctx context.Context) ([]models.Group, error)

	// Bookings (append-only history: no delete)
	CreateBooking(ctx context.Context, booking *models.Booking) error
	UpdateBooking(ctx context.Context, booking *models.Booking) error
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
}

// StoreRepository implements Repository on top of the abstract collection
// store. A single mutex serializes read-modify-write cycles so concurrent
// requests cannot interleave a load and a save of the same collection.
type StoreRepository struct {
	mu    sync.Mutex
	store storage.Store
}

// NewStoreRepository creates a repository over the given store.
func NewStoreRepository(store storage.Store) *StoreRepository {
	return &StoreRepository{store: store}
}

// GetStore exposes the underlying store (used by seeding and tests).
func (r *StoreRepository) GetStore() storage.Store {
	return r.store
}

// Users

func (r *StoreRepository) CreateUser(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var users []models.User
	if err := r.store.Get(ctx, storage.CollectionUsers, &users); err != nil {
		return err
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	users = append(users, *user)
	return r.store.Set(ctx, storage.CollectionUsers, users)
}

func (r *StoreRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	users, err := r.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (r *StoreRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := r.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (r *StoreRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.store.Get(ctx, storage.CollectionUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Tools

func (r *StoreRepository) CreateTool(ctx context.Context, tool *models.Tool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var tools []models.Tool
	if err := r.store.Get(ctx, storage.CollectionTools, &tools); err != nil {
		return err
	}
	if tool.ID == "" {
		tool.ID = uuid.New().String()
	}
	if tool.GroupIDs == nil {
		tool.GroupIDs = []string{}
	}
	tools = append(tools, *tool)
	return r.store.Set(ctx, storage.CollectionTools, tools)
}

func (r *StoreRepository) UpdateTool(ctx context.Context, tool *models.Tool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var tools []models.Tool
	if err := r.store.Get(ctx, storage.CollectionTools, &tools); err != nil {
		return err
	}
	for i := range tools {
		if tools[i].ID == tool.ID {
			tools[i] = *tool
			return r.store.Set(ctx, storage.CollectionTools, tools)
		}
	}
	return fmt.Errorf("tool %s not found", tool.ID)
}

func (r *StoreRepository) DeleteTool(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var tools []models.Tool
	if err := r.store.Get(ctx, storage.CollectionTools, &tools); err != nil {
		return err
	}
	kept := tools[:0]
	for _, t := range tools {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	return r.store.Set(ctx, storage.CollectionTools, kept)
}

func (r *StoreRepository) GetTool(ctx context.Context, id string) (*models.Tool, error) {
	tools, err := r.ListTools(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tools {
		if tools[i].ID == id {
			return &tools[i], nil
		}
	}
	return nil, nil
}

func (r *StoreRepository) ListTools(ctx context.Context) ([]models.Tool, error) {
	var tools []models.Tool
	if err := r.store.Get(ctx, storage.CollectionTools, &tools); err != nil {
		return nil, err
	}
	return tools, nil
}

// Groups

func (r *StoreRepository) CreateGroup(ctx context.Context, group *models.Group) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var groups []models.Group
	if err := r.store.Get(ctx, storage.CollectionGroups, &groups); err != nil {
		return err
	}
	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	groups = append(groups, *group)
	return r.store.Set(ctx, storage.CollectionGroups, groups)
}

func (r *StoreRepository) UpdateGroup(ctx context.Context, group *models.Group) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var groups []models.Group
	if err := r.store.Get(ctx, storage.CollectionGroups, &groups); err != nil {
		return err
	}
	for i := range groups {
		if groups[i].ID == group.ID {
			groups[i] = *group
			return r.store.Set(ctx, storage.CollectionGroups, groups)
		}
	}
	return fmt.Errorf("group %s not found", group.ID)
}

func (r *StoreRepository) DeleteGroup(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var groups []models.Group
	if err := r.store.Get(ctx, storage.CollectionGroups, &groups); err != nil {
		return err
	}
	kept := groups[:0]
	for _, g := range groups {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	return r.store.Set(ctx, storage.CollectionGroups, kept)
}

func (r *StoreRepository) GetGroup(ctx context.Context, id string) (*models.Group, error) {
	groups, err := r.ListGroups(ctx)
	if err != nil {
		return nil, err
	}
	for i := range groups {
		if groups[i].ID == id {
			return &groups[i], nil
		}
	}
	return nil, nil
}

// GetGroupByInviteCode matches codes exactly (case-sensitive).
func (r *StoreRepository) GetGroupByInviteCode(ctx context.Context, code string) (*models.Group, error) {
	groups, err := r.ListGroups(ctx)
	if err != nil {
		return nil, err
	}
	for i := range groups {
		if groups[i].InviteCode == code {
			return &groups[i], nil
		}
	}
	return nil, nil
}

func (r *StoreRepository) ListGroups(ctx context.Context) ([]models.Group, error) {
	var groups []models.Group
	if err := r.store.Get(ctx, storage.CollectionGroups, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// Bookings

func (r *StoreRepository) CreateBooking(ctx context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var bookings []models.Booking
	if err := r.store.Get(ctx, storage.CollectionBookings, &bookings); err != nil {
		return err
	}
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	bookings = append(bookings, *booking)
	return r.store.Set(ctx, storage.CollectionBookings, bookings)
}

func (r *StoreRepository) UpdateBooking(ctx context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var bookings []models.Booking
	if err := r.store.Get(ctx, storage.CollectionBookings, &bookings); err != nil {
		return err
	}
	for i := range bookings {
		if bookings[i].ID == booking.ID {
			bookings[i] = *booking
			return r.store.Set(ctx, storage.CollectionBookings, bookings)
		}
	}
	return fmt.Errorf("booking %s not found", booking.ID)
}

func (r *StoreRepository) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	bookings, err := r.ListBookings(ctx)
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		if bookings[i].ID == id {
			return &bookings[i], nil
		}
	}
	return nil, nil
}

func (r *StoreRepository) ListBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.store.Get(ctx, storage.CollectionBookings, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
