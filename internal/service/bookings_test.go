package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toolshare/toolshare-server/internal/models"
)

// Fixture: u1 and u2 share group g1; t1 is owned by u2 and shared into g1.
func bookingFixture(t *testing.T) (*DefaultService, *models.Tool) {
	svc, repo := newTestService(t)
	mustUser(t, repo, "u1", "Alex")
	mustUser(t, repo, "u2", "Jordan")
	mustGroup(t, repo, "g1", "u1", "DIY-1234", "u1", "u2")
	tool := mustTool(t, repo, "t1", "u2", "g1")
	return svc, tool
}

func TestCreateBookingStartsPending(t *testing.T) {
	svc, tool := bookingFixture(t)
	ctx := context.Background()

	booking, err := svc.CreateBooking(ctx, "u1", validBookingRequest(tool.ID))
	require.NoError(t, err)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, models.BookingPending, booking.Status)
	assert.Equal(t, "u1", booking.BorrowerID)
	assert.Equal(t, "u2", booking.OwnerID, "owner is captured from the tool at creation time")

	// The tool is untouched by a mere request.
	stored, err := svc.repo.GetTool(ctx, tool.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ToolAvailable, stored.Status)
	assert.Empty(t, stored.CurrentHolderID)
}

func TestCreateBookingValidation(t *testing.T) {
	svc, tool := bookingFixture(t)
	ctx := context.Background()

	// End before start.
	req := validBookingRequest(tool.ID)
	req.StartDate, req.EndDate = "2026-09-03", "2026-09-01"
	_, err := svc.CreateBooking(ctx, "u1", req)
	assert.ErrorIs(t, err, ErrValidation)

	// Unparseable date.
	req = validBookingRequest(tool.ID)
	req.StartDate = "next tuesday"
	_, err = svc.CreateBooking(ctx, "u1", req)
	assert.ErrorIs(t, err, ErrValidation)

	// MEET logistics require details.
	req = validBookingRequest(tool.ID)
	req.Logistics = models.LogisticsMeet
	_, err = svc.CreateBooking(ctx, "u1", req)
	assert.ErrorIs(t, err, ErrValidation)

	req.LogisticsDetails = "Parking lot on 5th"
	_, err = svc.CreateBooking(ctx, "u1", req)
	assert.NoError(t, err)

	// Own tool.
	_, err = svc.CreateBooking(ctx, "u2", validBookingRequest(tool.ID))
	assert.ErrorIs(t, err, ErrValidation)

	// Unknown tool.
	_, err = svc.CreateBooking(ctx, "u1", validBookingRequest("missing"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateBookingRequiresSharedGroup(t *testing.T) {
	svc, repo := newTestService(t)
	mustUser(t, repo, "u1", "Alex")
	mustUser(t, repo, "u2", "Jordan")
	// u2's tool is shared into a group u1 does not belong to.
	mustGroup(t, repo, "g2", "u2", "OTHER1", "u2")
	tool := mustTool(t, repo, "t9", "u2", "g2")

	_, err := svc.CreateBooking(context.Background(), "u1", validBookingRequest(tool.ID))
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestApproveBookingHandsToolToBorrower(t *testing.T) {
	svc, tool := bookingFixture(t)
	ctx := context.Background()

	booking, err := svc.CreateBooking(ctx, "u1", validBookingRequest(tool.ID))
	require.NoError(t, err)

	approved, err := svc.ApproveBooking(ctx, "u2", booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingApproved, approved.Status)

	stored, err := svc.repo.GetTool(ctx, tool.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ToolBorrowed, stored.Status)
	assert.Equal(t, "u1", stored.CurrentHolderID)
}

func TestApprovePermissionAndState(t *testing.T) {
	svc, tool := bookingFixture(t)
	ctx := context.Background()

	booking, err := svc.CreateBooking(ctx, "u1", validBookingRequest(tool.ID))
	require.NoError(t, err)

	// Borrower cannot approve their own request.
	_, err = svc.ApproveBooking(ctx, "u1", booking.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.ApproveBooking(ctx, "u2", booking.ID)
	require.NoError(t, err)

	// Approving twice is an invalid transition.
	_, err = svc.ApproveBooking(ctx, "u2", booking.ID)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestRejectLeavesToolAvailable(t *testing.T) {
	svc, tool := bookingFixture(t)
	ctx := context.Background()

	booking, err := svc.CreateBooking(ctx, "u1", validBookingRequest(tool.ID))
	require.NoError(t, err)

	rejected, err := svc.RejectBooking(ctx, "u2", booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingRejected, rejected.Status)

	stored, err := svc.repo.GetTool(ctx, tool.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ToolAvailable, stored.Status)
	assert.Empty(t, stored.CurrentHolderID)
}

func TestRejectNonPendingIsNoOp(t *testing.T) {
	svc, tool := bookingFixture(t)
	ctx := context.Background()

	booking, err := svc.CreateBooking(ctx, "u1", validBookingRequest(tool.ID))
	require.NoError(t, err)
	_, err = svc.ApproveBooking(ctx, "u2", booking.ID)
	require.NoError(t, err)

	// Rejecting an APPROVED booking must change nothing.
	_, err = svc.RejectBooking(ctx, "u2", booking.ID)
	assert.ErrorIs(t, err, ErrInvalidState)

	stored, err := svc.repo.GetBooking(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingApproved, stored.Status)

	storedTool, err := svc.repo.GetTool(ctx, tool.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ToolBorrowed, storedTool.Status)
	assert.Equal(t, "u1", storedTool.CurrentHolderID)
}

func TestCompleteReturnsTool(t *testing.T) {
	svc, tool := bookingFixture(t)
	ctx := context.Background()

	booking, err := svc.CreateBooking(ctx, "u1", validBookingRequest(tool.ID))
	require.NoError(t, err)
	_, err = svc.ApproveBooking(ctx, "u2", booking.ID)
	require.NoError(t, err)

	completed, err := svc.CompleteBooking(ctx, "u1", booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCompleted, completed.Status)

	stored, err := svc.repo.GetTool(ctx, tool.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ToolAvailable, stored.Status)
	assert.Empty(t, stored.CurrentHolderID, "holder is cleared on return")
}

func TestCompletePermissions(t *testing.T) {
	svc, repo := newTestService(t)
	mustUser(t, repo, "u1", "Alex")
	mustUser(t, repo, "u2", "Jordan")
	mustUser(t, repo, "u3", "Casey")
	mustGroup(t, repo, "g1", "u1", "DIY-1234", "u1", "u2", "u3")
	tool := mustTool(t, repo, "t1", "u2", "g1")
	ctx := context.Background()

	booking, err := svc.CreateBooking(ctx, "u1", validBookingRequest(tool.ID))
	require.NoError(t, err)
	_, err = svc.ApproveBooking(ctx, "u2", booking.ID)
	require.NoError(t, err)

	// A third party may not complete someone else's loan.
	_, err = svc.CompleteBooking(ctx, "u3", booking.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	// The owner may.
	_, err = svc.CompleteBooking(ctx, "u2", booking.ID)
	assert.NoError(t, err)
}

func TestTerminalStatesAreImmutable(t *testing.T) {
	svc, tool := bookingFixture(t)
	ctx := context.Background()

	booking, err := svc.CreateBooking(ctx, "u1", validBookingRequest(tool.ID))
	require.NoError(t, err)
	_, err = svc.ApproveBooking(ctx, "u2", booking.ID)
	require.NoError(t, err)
	_, err = svc.CompleteBooking(ctx, "u2", booking.ID)
	require.NoError(t, err)

	for _, attempt := range []func() error{
		func() error { _, err := svc.ApproveBooking(ctx, "u2", booking.ID); return err },
		func() error { _, err := svc.RejectBooking(ctx, "u2", booking.ID); return err },
		func() error { _, err := svc.CompleteBooking(ctx, "u2", booking.ID); return err },
	} {
		assert.ErrorIs(t, attempt(), ErrInvalidState)
	}

	stored, err := svc.repo.GetBooking(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCompleted, stored.Status)
}

func TestQueuedRequestAgainstBorrowedTool(t *testing.T) {
	svc, tool := bookingFixture(t)
	ctx := context.Background()

	first, err := svc.CreateBooking(ctx, "u1", validBookingRequest(tool.ID))
	require.NoError(t, err)
	_, err = svc.ApproveBooking(ctx, "u2", first.ID)
	require.NoError(t, err)

	// A second request against the now-borrowed tool is accepted and queues
	// as PENDING.
	req := validBookingRequest(tool.ID)
	req.StartDate, req.EndDate = "2026-09-04", "2026-09-06"
	second, err := svc.CreateBooking(ctx, "u1", req)
	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, second.Status)

	stored, err := svc.repo.GetTool(ctx, tool.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ToolBorrowed, stored.Status)
}

func TestCompleteWithDeletedToolStillCompletes(t *testing.T) {
	svc, tool := bookingFixture(t)
	ctx := context.Background()

	booking, err := svc.CreateBooking(ctx, "u1", validBookingRequest(tool.ID))
	require.NoError(t, err)
	_, err = svc.ApproveBooking(ctx, "u2", booking.ID)
	require.NoError(t, err)

	// Remove the tool behind the engine's back (weak reference).
	require.NoError(t, svc.repo.DeleteTool(ctx, tool.ID))

	completed, err := svc.CompleteBooking(ctx, "u1", booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCompleted, completed.Status)
}
