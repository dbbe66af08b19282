package service

import (
	"context"
	"fmt"
	"time"

	"github.com/toolshare/toolshare-server/internal/models"
)

// The derivation layer: pure projections over snapshots of the stores and an
// explicit session user. Nothing here mutates state, and every projection is
// recomputed from a fresh scan on each call.

// MyTools returns the tools owned by the user.
func (s *DefaultService) MyTools(ctx context.Context, userID string) ([]models.Tool, error) {
	tools, err := s.repo.ListTools(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing tools: %w", err)
	}
	mine := []models.Tool{}
	for _, t := range tools {
		if t.OwnerID == userID {
			mine = append(mine, t)
		}
	}
	return mine, nil
}

// MyGroups returns the groups the user belongs to.
func (s *DefaultService) MyGroups(ctx context.Context, userID string) ([]models.Group, error) {
	groups, err := s.repo.ListGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing groups: %w", err)
	}
	mine := []models.Group{}
	for i := range groups {
		if groups[i].IsMember(userID) {
			mine = append(mine, groups[i])
		}
	}
	return mine, nil
}

// MarketTools returns tools owned by others and shared into at least one of
// the user's groups, each decorated with the owner name, the active approved
// booking if any, and the day after that booking ends as the earliest date
// for a queued "request for when available".
func (s *DefaultService) MarketTools(ctx context.Context, userID string) ([]models.MarketTool, error) {
	tools, err := s.repo.ListTools(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing tools: %w", err)
	}
	myGroups, err := s.MyGroups(ctx, userID)
	if err != nil {
		return nil, err
	}
	bookings, err := s.repo.ListBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing bookings: %w", err)
	}
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	myGroupIDs := make(map[string]bool, len(myGroups))
	for _, g := range myGroups {
		myGroupIDs[g.ID] = true
	}
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}

	market := []models.MarketTool{}
	for _, t := range tools {
		if t.OwnerID == userID {
			continue
		}
		shared := false
		for _, gid := range t.GroupIDs {
			if myGroupIDs[gid] {
				shared = true
				break
			}
		}
		if !shared {
			continue
		}

		entry := models.MarketTool{Tool: t, OwnerName: names[t.OwnerID]}
		if active := activeBookingFor(bookings, t.ID); active != nil {
			entry.ActiveBooking = active
			entry.NextAvailableDate = dayAfter(active.EndDate)
		}
		market = append(market, entry)
	}
	return market, nil
}

// MyBookings returns the user's borrowing history.
func (s *DefaultService) MyBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.filterBookings(ctx, func(b *models.Booking) bool {
		return b.BorrowerID == userID
	})
}

// MyLendingHistory returns every booking against the user's tools.
func (s *DefaultService) MyLendingHistory(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.filterBookings(ctx, func(b *models.Booking) bool {
		return b.OwnerID == userID
	})
}

// IncomingRequests returns pending requests awaiting the user's decision.
func (s *DefaultService) IncomingRequests(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.filterBookings(ctx, func(b *models.Booking) bool {
		return b.OwnerID == userID && b.Status == models.BookingPending
	})
}

// ActiveBorrows returns the user's currently approved loans.
func (s *DefaultService) ActiveBorrows(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.filterBookings(ctx, func(b *models.Booking) bool {
		return b.BorrowerID == userID && b.Status == models.BookingApproved
	})
}

// Dashboard assembles every projection in one response.
func (s *DefaultService) Dashboard(ctx context.Context, userID string) (*models.DashboardResponse, error) {
	myTools, err := s.MyTools(ctx, userID)
	if err != nil {
		return nil, err
	}
	myGroups, err := s.MyGroups(ctx, userID)
	if err != nil {
		return nil, err
	}
	market, err := s.MarketTools(ctx, userID)
	if err != nil {
		return nil, err
	}
	myBookings, err := s.MyBookings(ctx, userID)
	if err != nil {
		return nil, err
	}
	lending, err := s.MyLendingHistory(ctx, userID)
	if err != nil {
		return nil, err
	}
	incoming, err := s.IncomingRequests(ctx, userID)
	if err != nil {
		return nil, err
	}
	active, err := s.ActiveBorrows(ctx, userID)
	if err != nil {
		return nil, err
	}

	borrowedOut := []models.Tool{}
	for _, t := range myTools {
		if t.Status == models.ToolBorrowed {
			borrowedOut = append(borrowedOut, t)
		}
	}

	return &models.DashboardResponse{
		Status:             "success",
		MyTools:            myTools,
		MyGroups:           myGroups,
		MarketTools:        market,
		MyBookings:         myBookings,
		MyLendingHistory:   lending,
		IncomingRequests:   incoming,
		ActiveBorrows:      active,
		MyToolsBorrowedOut: borrowedOut,
	}, nil
}

func (s *DefaultService) filterBookings(ctx context.Context, keep func(*models.Booking) bool) ([]models.Booking, error) {
	bookings, err := s.repo.ListBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing bookings: %w", err)
	}
	matched := []models.Booking{}
	for i := range bookings {
		if keep(&bookings[i]) {
			matched = append(matched, bookings[i])
		}
	}
	return matched, nil
}

func activeBookingFor(bookings []models.Booking, toolID string) *models.Booking {
	for i := range bookings {
		if bookings[i].ToolID == toolID && bookings[i].Status == models.BookingApproved {
			return &bookings[i]
		}
	}
	return nil
}

// dayAfter returns the ISO date one day after the given one, or empty if the
// date does not parse.
func dayAfter(date string) string {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return ""
	}
	return d.AddDate(0, 0, 1).Format(dateLayout)
}
