package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/toolshare/toolshare-server/internal/models"
	"github.com/toolshare/toolshare-server/internal/repository"
	"github.com/toolshare/toolshare-server/internal/storage"
)

func newTestService(t *testing.T) (*DefaultService, repository.Repository) {
	t.Helper()
	repo := repository.NewStoreRepository(storage.NewMemoryStore())
	svc := NewDefaultService(repo, nil, "test-secret-key")
	return svc, repo
}

func mustUser(t *testing.T, repo repository.Repository, id, name string) *models.User {
	t.Helper()
	user := &models.User{ID: id, Name: name, Email: name + "@example.com"}
	require.NoError(t, repo.CreateUser(context.Background(), user))
	return user
}

func mustGroup(t *testing.T, repo repository.Repository, id, ownerID, code string, memberIDs ...string) *models.Group {
	t.Helper()
	if len(memberIDs) == 0 {
		memberIDs = []string{ownerID}
	}
	group := &models.Group{ID: id, Name: "Group " + id, OwnerID: ownerID, MemberIDs: memberIDs, InviteCode: code}
	require.NoError(t, repo.CreateGroup(context.Background(), group))
	return group
}

func mustTool(t *testing.T, repo repository.Repository, id, ownerID string, groupIDs ...string) *models.Tool {
	t.Helper()
	if groupIDs == nil {
		groupIDs = []string{}
	}
	tool := &models.Tool{
		ID: id, OwnerID: ownerID, Name: "Tool " + id,
		Status: models.ToolAvailable, GroupIDs: groupIDs,
	}
	require.NoError(t, repo.CreateTool(context.Background(), tool))
	return tool
}

func validBookingRequest(toolID string) models.CreateBookingRequest {
	return models.CreateBookingRequest{
		ToolID:    toolID,
		StartDate: "2026-09-01",
		EndDate:   "2026-09-03",
		Reason:    "Weekend project",
		Logistics: models.LogisticsPickup,
	}
}
