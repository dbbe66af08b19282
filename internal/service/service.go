package service

import (
	"context"
	"time"

	"github.com/toolshare/toolshare-server/internal/annotate"
	"github.com/toolshare/toolshare-server/internal/models"
	"github.com/toolshare/toolshare-server/internal/repository"
)

// Service defines all the business logic operations. The acting user is
// always an explicit parameter — there is no ambient session state.
type Service interface {
	// Authentication / identity
	SignUp(ctx context.Context, req models.SignUpRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	GetUser(ctx context.Context, userID string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.UserSummary, error)

	// Tool catalog
	CreateTool(ctx context.Context, ownerID string, req models.CreateToolRequest) (*models.Tool, error)
	UpdateTool(ctx context.Context, actorID, toolID string, req models.UpdateToolRequest) (*models.Tool, error)
	DeleteTool(ctx context.Context, actorID, toolID string) error
	AnalyzeToolImage(ctx context.Context, image string) *models.ToolSuggestion

	// Group membership & invites
	CreateGroup(ctx context.Context, ownerID string, req models.CreateGroupRequest) (*models.Group, error)
	UpdateGroup(ctx context.Context, actorID, groupID string, req models.UpdateGroupRequest) (*models.Group, error)
	DeleteGroup(ctx context.Context, actorID, groupID string) error
	JoinGroup(ctx context.Context, userID, inviteCode string) (*models.Group, bool, error)
	RemoveMember(ctx context.Context, actorID, groupID, memberID string) (*models.Group, error)
	GroupInvite(ctx context.Context, actorID, groupID string) (*models.GroupInviteResponse, error)
	ShareToolsToGroup(ctx context.Context, actorID, groupID string, toolIDs []string) error

	// Booking lifecycle
	CreateBooking(ctx context.Context, borrowerID string, req models.CreateBookingRequest) (*models.Booking, error)
	ApproveBooking(ctx context.Context, actorID, bookingID string) (*models.Booking, error)
	RejectBooking(ctx context.Context, actorID, bookingID string) (*models.Booking, error)
	CompleteBooking(ctx context.Context, actorID, bookingID string) (*models.Booking, error)

	// Derived views
	MyTools(ctx context.Context, userID string) ([]models.Tool, error)
	MyGroups(ctx context.Context, userID string) ([]models.Group, error)
	MarketTools(ctx context.Context, userID string) ([]models.MarketTool, error)
	MyBookings(ctx context.Context, userID string) ([]models.Booking, error)
	MyLendingHistory(ctx context.Context, userID string) ([]models.Booking, error)
	IncomingRequests(ctx context.Context, userID string) ([]models.Booking, error)
	ActiveBorrows(ctx context.Context, userID string) ([]models.Booking, error)
	Dashboard(ctx context.Context, userID string) (*models.DashboardResponse, error)
}

// DefaultService implements the Service interface
type DefaultService struct {
	repo          repository.Repository
	annotator     annotate.Annotator
	jwtSecret     []byte
	tokenDuration time.Duration
}

// NewDefaultService creates a new DefaultService
func NewDefaultService(repo repository.Repository, annotator annotate.Annotator, jwtSecret string) *DefaultService {
	return &DefaultService{
		repo:          repo,
		annotator:     annotator,
		jwtSecret:     []byte(jwtSecret),
		tokenDuration: 24 * time.Hour,
	}
}
