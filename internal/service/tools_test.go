package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toolshare/toolshare-server/internal/models"
)

func TestCreateToolStartsAvailable(t *testing.T) {
	svc, repo := newTestService(t)
	mustUser(t, repo, "u1", "Alex")

	tool, err := svc.CreateTool(context.Background(), "u1", models.CreateToolRequest{
		Name:        "Angle Grinder",
		Description: "4-1/2 inch, 11 amp",
		Price:       65,
		Category:    "Power Tools",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, tool.ID)
	assert.Equal(t, "u1", tool.OwnerID)
	assert.Equal(t, models.ToolAvailable, tool.Status)
	assert.Empty(t, tool.CurrentHolderID)
	assert.NotNil(t, tool.GroupIDs)
}

func TestUpdateToolOwnerOnly(t *testing.T) {
	svc, repo := newTestService(t)
	mustUser(t, repo, "u1", "Alex")
	mustUser(t, repo, "u2", "Jordan")
	tool := mustTool(t, repo, "t1", "u1")

	_, err := svc.UpdateTool(context.Background(), "u2", tool.ID, models.UpdateToolRequest{Name: "Stolen"})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateToolMaintenanceToggle(t *testing.T) {
	svc, repo := newTestService(t)
	mustUser(t, repo, "u1", "Alex")
	tool := mustTool(t, repo, "t1", "u1")
	ctx := context.Background()

	updated, err := svc.UpdateTool(ctx, "u1", tool.ID, models.UpdateToolRequest{
		Name:   tool.Name,
		Status: models.ToolMaintenance,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ToolMaintenance, updated.Status)

	updated, err = svc.UpdateTool(ctx, "u1", tool.ID, models.UpdateToolRequest{
		Name:   tool.Name,
		Status: models.ToolAvailable,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ToolAvailable, updated.Status)
}

func TestUpdateToolStatusLockedWhileBorrowed(t *testing.T) {
	svc, repo := newTestService(t)
	mustUser(t, repo, "u1", "Alex")
	mustUser(t, repo, "u2", "Jordan")
	mustGroup(t, repo, "g1", "u1", "DIY-1234", "u1", "u2")
	tool := mustTool(t, repo, "t1", "u2", "g1")
	ctx := context.Background()

	booking, err := svc.CreateBooking(ctx, "u1", validBookingRequest(tool.ID))
	require.NoError(t, err)
	_, err = svc.ApproveBooking(ctx, "u2", booking.ID)
	require.NoError(t, err)

	_, err = svc.UpdateTool(ctx, "u2", tool.ID, models.UpdateToolRequest{
		Name:   tool.Name,
		Status: models.ToolMaintenance,
	})
	assert.ErrorIs(t, err, ErrInvalidState)

	// Non-status edits still go through while borrowed.
	updated, err := svc.UpdateTool(ctx, "u2", tool.ID, models.UpdateToolRequest{
		Name: "Renamed While Out",
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed While Out", updated.Name)
	assert.Equal(t, models.ToolBorrowed, updated.Status)
	assert.Equal(t, "u1", updated.CurrentHolderID)
}

func TestDeleteToolRefusedWhileBorrowed(t *testing.T) {
	svc, repo := newTestService(t)
	mustUser(t, repo, "u1", "Alex")
	mustUser(t, repo, "u2", "Jordan")
	mustGroup(t, repo, "g1", "u1", "DIY-1234", "u1", "u2")
	tool := mustTool(t, repo, "t1", "u2", "g1")
	ctx := context.Background()

	booking, err := svc.CreateBooking(ctx, "u1", validBookingRequest(tool.ID))
	require.NoError(t, err)
	_, err = svc.ApproveBooking(ctx, "u2", booking.ID)
	require.NoError(t, err)

	err = svc.DeleteTool(ctx, "u2", tool.ID)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestDeleteToolRejectsPendingRequests(t *testing.T) {
	svc, repo := newTestService(t)
	mustUser(t, repo, "u1", "Alex")
	mustUser(t, repo, "u2", "Jordan")
	mustGroup(t, repo, "g1", "u1", "DIY-1234", "u1", "u2")
	tool := mustTool(t, repo, "t1", "u2", "g1")
	ctx := context.Background()

	booking, err := svc.CreateBooking(ctx, "u1", validBookingRequest(tool.ID))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTool(ctx, "u2", tool.ID))

	gone, err := repo.GetTool(ctx, tool.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	// The pending request was rejected, not deleted: history survives.
	stored, err := repo.GetBooking(ctx, booking.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, models.BookingRejected, stored.Status)
}

func TestDeleteToolOwnerOnly(t *testing.T) {
	svc, repo := newTestService(t)
	mustUser(t, repo, "u1", "Alex")
	mustUser(t, repo, "u2", "Jordan")
	tool := mustTool(t, repo, "t1", "u1")

	err := svc.DeleteTool(context.Background(), "u2", tool.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

// For every tool, status == BORROWED iff a holder is present — across a full
// borrow/return cycle.
func TestHolderIffBorrowedInvariant(t *testing.T) {
	svc, repo := newTestService(t)
	mustUser(t, repo, "u1", "Alex")
	mustUser(t, repo, "u2", "Jordan")
	mustGroup(t, repo, "g1", "u1", "DIY-1234", "u1", "u2")
	tool := mustTool(t, repo, "t1", "u2", "g1")
	ctx := context.Background()

	checkInvariant := func() {
		tools, err := repo.ListTools(ctx)
		require.NoError(t, err)
		for _, tl := range tools {
			if tl.Status == models.ToolBorrowed {
				assert.NotEmpty(t, tl.CurrentHolderID, "borrowed tool %s has no holder", tl.ID)
			} else {
				assert.Empty(t, tl.CurrentHolderID, "non-borrowed tool %s has a holder", tl.ID)
			}
		}
	}

	checkInvariant()

	booking, err := svc.CreateBooking(ctx, "u1", validBookingRequest(tool.ID))
	require.NoError(t, err)
	checkInvariant()

	_, err = svc.ApproveBooking(ctx, "u2", booking.ID)
	require.NoError(t, err)
	checkInvariant()

	_, err = svc.CompleteBooking(ctx, "u1", booking.ID)
	require.NoError(t, err)
	checkInvariant()
}
