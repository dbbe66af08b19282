package service

import (
	"context"
	"fmt"
	"time"

	"github.com/toolshare/toolshare-server/internal/models"
)

const dateLayout = "2006-01-02"

// CreateBooking files a borrowing request. The tool must exist, the borrower
// must not be its owner, and the two must share at least one group. Tool
// availability is deliberately not required: a request against a borrowed
// tool queues for when it comes back. New bookings always start PENDING.
func (s *DefaultService) CreateBooking(ctx context.Context, borrowerID string, req models.CreateBookingRequest) (*models.Booking, error) {
	if err := validateBookingDates(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}
	if req.Logistics != models.LogisticsPickup && req.LogisticsDetails == "" {
		return nil, fmt.Errorf("logistics details are required for %s: %w", req.Logistics, ErrValidation)
	}

	tool, err := s.getTool(ctx, req.ToolID)
	if err != nil {
		return nil, err
	}
	if tool.OwnerID == borrowerID {
		return nil, fmt.Errorf("cannot borrow your own tool: %w", ErrValidation)
	}

	visible, err := s.toolVisibleTo(ctx, tool, borrowerID)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, fmt.Errorf("tool is not shared with any of your groups: %w", ErrForbidden)
	}

	booking := &models.Booking{
		ToolID:           tool.ID,
		BorrowerID:       borrowerID,
		OwnerID:          tool.OwnerID,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		Reason:           req.Reason,
		Logistics:        req.Logistics,
		LogisticsDetails: req.LogisticsDetails,
		Status:           models.BookingPending,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.repo.CreateBooking(ctx, booking); err != nil {
		return nil, fmt.Errorf("error creating booking: %w", err)
	}
	return booking, nil
}

// ApproveBooking moves PENDING → APPROVED and hands the tool to the
// borrower. Approval is the only transition that takes a tool out of
// AVAILABLE. Tool owner only.
func (s *DefaultService) ApproveBooking(ctx context.Context, actorID, bookingID string) (*models.Booking, error) {
	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !canDecide(actorID, booking) {
		return nil, fmt.Errorf("only the tool owner may approve a booking: %w", ErrForbidden)
	}
	if booking.Status != models.BookingPending {
		return nil, fmt.Errorf("booking is %s, not PENDING: %w", booking.Status, ErrInvalidState)
	}

	// Check-then-act: resolve the tool before the first write so a missing
	// tool aborts with nothing mutated.
	tool, err := s.getTool(ctx, booking.ToolID)
	if err != nil {
		return nil, err
	}

	booking.Status = models.BookingApproved
	if err := s.repo.UpdateBooking(ctx, booking); err != nil {
		return nil, fmt.Errorf("error approving booking: %w", err)
	}

	tool.Status = models.ToolBorrowed
	tool.CurrentHolderID = booking.BorrowerID
	if err := s.repo.UpdateTool(ctx, tool); err != nil {
		return nil, fmt.Errorf("error updating tool status: %w", err)
	}
	return booking, nil
}

// RejectBooking moves PENDING → REJECTED. The tool is untouched. Tool owner
// only.
func (s *DefaultService) RejectBooking(ctx context.Context, actorID, bookingID string) (*models.Booking, error) {
	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !canDecide(actorID, booking) {
		return nil, fmt.Errorf("only the tool owner may reject a booking: %w", ErrForbidden)
	}
	if booking.Status != models.BookingPending {
		return nil, fmt.Errorf("booking is %s, not PENDING: %w", booking.Status, ErrInvalidState)
	}

	booking.Status = models.BookingRejected
	if err := s.repo.UpdateBooking(ctx, booking); err != nil {
		return nil, fmt.Errorf("error rejecting booking: %w", err)
	}
	return booking, nil
}

// CompleteBooking records the return: APPROVED → COMPLETED, tool back to
// AVAILABLE with the holder cleared. Either side of the loan may complete.
// A booking whose tool has since been deleted still completes; only the
// tool write is skipped.
func (s *DefaultService) CompleteBooking(ctx context.Context, actorID, bookingID string) (*models.Booking, error) {
	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !canComplete(actorID, booking) {
		return nil, fmt.Errorf("only the borrower or the owner may complete a booking: %w", ErrForbidden)
	}
	if booking.Status != models.BookingApproved {
		return nil, fmt.Errorf("booking is %s, not APPROVED: %w", booking.Status, ErrInvalidState)
	}

	tool, err := s.repo.GetTool(ctx, booking.ToolID)
	if err != nil {
		return nil, fmt.Errorf("error getting tool: %w", err)
	}

	booking.Status = models.BookingCompleted
	if err := s.repo.UpdateBooking(ctx, booking); err != nil {
		return nil, fmt.Errorf("error completing booking: %w", err)
	}

	if tool != nil {
		tool.Status = models.ToolAvailable
		tool.CurrentHolderID = ""
		if err := s.repo.UpdateTool(ctx, tool); err != nil {
			return nil, fmt.Errorf("error updating tool status: %w", err)
		}
	}
	return booking, nil
}

// Authorization checks, consolidated per transition.

func canDecide(actorID string, booking *models.Booking) bool {
	return actorID == booking.OwnerID
}

func canComplete(actorID string, booking *models.Booking) bool {
	return actorID == booking.OwnerID || actorID == booking.BorrowerID
}

func validateBookingDates(start, end string) error {
	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return fmt.Errorf("invalid start date %q: %w", start, ErrValidation)
	}
	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return fmt.Errorf("invalid end date %q: %w", end, ErrValidation)
	}
	if endDate.Before(startDate) {
		return fmt.Errorf("end date is before start date: %w", ErrValidation)
	}
	return nil
}

// toolVisibleTo reports whether the tool is shared into any group the user
// belongs to. Ids of deleted groups simply never match.
func (s *DefaultService) toolVisibleTo(ctx context.Context, tool *models.Tool, userID string) (bool, error) {
	groups, err := s.repo.ListGroups(ctx)
	if err != nil {
		return false, fmt.Errorf("error listing groups: %w", err)
	}
	for i := range groups {
		if !groups[i].IsMember(userID) {
			continue
		}
		if tool.SharedInto(groups[i].ID) {
			return true, nil
		}
	}
	return false, nil
}

func (s *DefaultService) getBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking, err := s.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("error getting booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking not found: %w", ErrNotFound)
	}
	return booking, nil
}
