package service

import (
	"context"
	"crypto/rand"
	"fmt"

	"github.com/toolshare/toolshare-server/internal/models"
	"github.com/toolshare/toolshare-server/internal/qr"
)

const (
	inviteCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	inviteCodeLength   = 6
	inviteCodeRetries  = 5
)

// generateInviteCode draws a short code from an unambiguous alphabet using a
// cryptographically random byte source.
func generateInviteCode() (string, error) {
	buf := make([]byte, inviteCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating invite code: %w", err)
	}
	code := make([]byte, inviteCodeLength)
	for i, b := range buf {
		code[i] = inviteCodeAlphabet[int(b)%len(inviteCodeAlphabet)]
	}
	return string(code), nil
}

// newUniqueInviteCode retries generation until the code does not collide
// with an existing group.
func (s *DefaultService) newUniqueInviteCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < inviteCodeRetries; attempt++ {
		code, err := generateInviteCode()
		if err != nil {
			return "", err
		}
		existing, err := s.repo.GetGroupByInviteCode(ctx, code)
		if err != nil {
			return "", fmt.Errorf("error checking invite code: %w", err)
		}
		if existing == nil {
			return code, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique invite code")
}

// CreateGroup creates a sharing circle with the creator as owner and sole
// member.
func (s *DefaultService) CreateGroup(ctx context.Context, ownerID string, req models.CreateGroupRequest) (*models.Group, error) {
	code, err := s.newUniqueInviteCode(ctx)
	if err != nil {
		return nil, err
	}

	group := &models.Group{
		Name:       req.Name,
		OwnerID:    ownerID,
		MemberIDs:  []string{ownerID},
		InviteCode: code,
	}
	if err := s.repo.CreateGroup(ctx, group); err != nil {
		return nil, fmt.Errorf("error creating group: %w", err)
	}
	return group, nil
}

// UpdateGroup renames a group. Owner only.
func (s *DefaultService) UpdateGroup(ctx context.Context, actorID, groupID string, req models.UpdateGroupRequest) (*models.Group, error) {
	group, err := s.getGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group.OwnerID != actorID {
		return nil, fmt.Errorf("only the owner may rename a group: %w", ErrForbidden)
	}

	group.Name = req.Name
	if err := s.repo.UpdateGroup(ctx, group); err != nil {
		return nil, fmt.Errorf("error updating group: %w", err)
	}
	return group, nil
}

// DeleteGroup removes a group. Owner only. Tools keep their group id list
// untouched; the views treat ids of deleted groups as non-matching.
func (s *DefaultService) DeleteGroup(ctx context.Context, actorID, groupID string) error {
	group, err := s.getGroup(ctx, groupID)
	if err != nil {
		return err
	}
	if group.OwnerID != actorID {
		return fmt.Errorf("only the owner may delete a group: %w", ErrForbidden)
	}
	if err := s.repo.DeleteGroup(ctx, groupID); err != nil {
		return fmt.Errorf("error deleting group: %w", err)
	}
	return nil
}

// JoinGroup resolves an invite code (exact, case-sensitive match) and adds
// the user. Joining a group the user already belongs to is an idempotent
// success; the second return value reports that case so callers can notify.
func (s *DefaultService) JoinGroup(ctx context.Context, userID, inviteCode string) (*models.Group, bool, error) {
	group, err := s.repo.GetGroupByInviteCode(ctx, inviteCode)
	if err != nil {
		return nil, false, fmt.Errorf("error resolving invite code: %w", err)
	}
	if group == nil {
		return nil, false, fmt.Errorf("no group with that invite code: %w", ErrNotFound)
	}

	if group.IsMember(userID) {
		return group, true, nil
	}

	group.MemberIDs = append(group.MemberIDs, userID)
	if err := s.repo.UpdateGroup(ctx, group); err != nil {
		return nil, false, fmt.Errorf("error joining group: %w", err)
	}
	return group, false, nil
}

// RemoveMember drops a member from a group. The owner may remove anyone but
// themselves; any other member may remove only themselves. The owner can
// never be removed, which preserves the owner-in-members invariant.
func (s *DefaultService) RemoveMember(ctx context.Context, actorID, groupID, memberID string) (*models.Group, error) {
	group, err := s.getGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	if memberID == group.OwnerID {
		return nil, fmt.Errorf("the group owner cannot be removed: %w", ErrInvalidState)
	}
	if actorID != group.OwnerID && actorID != memberID {
		return nil, fmt.Errorf("only the owner may remove other members: %w", ErrForbidden)
	}
	if !group.IsMember(memberID) {
		return nil, fmt.Errorf("user is not a member of this group: %w", ErrNotFound)
	}

	kept := make([]string, 0, len(group.MemberIDs))
	for _, id := range group.MemberIDs {
		if id != memberID {
			kept = append(kept, id)
		}
	}
	group.MemberIDs = kept

	if err := s.repo.UpdateGroup(ctx, group); err != nil {
		return nil, fmt.Errorf("error removing member: %w", err)
	}
	return group, nil
}

// GroupInvite returns the group's invite code together with the join URL and
// the QR image URL. Members only.
func (s *DefaultService) GroupInvite(ctx context.Context, actorID, groupID string) (*models.GroupInviteResponse, error) {
	group, err := s.getGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !group.IsMember(actorID) {
		return nil, fmt.Errorf("only members may view the invite: %w", ErrForbidden)
	}

	return &models.GroupInviteResponse{
		Status:     "success",
		InviteCode: group.InviteCode,
		JoinURL:    qr.JoinURL(group.InviteCode),
		QRImageURL: qr.ImageURL(group.InviteCode),
	}, nil
}

// ShareToolsToGroup reconciles which of the caller's tools are shared into
// the group: tools in toolIDs gain the group id, the caller's other tools
// lose it. Tools owned by other users are never touched.
func (s *DefaultService) ShareToolsToGroup(ctx context.Context, actorID, groupID string, toolIDs []string) error {
	group, err := s.getGroup(ctx, groupID)
	if err != nil {
		return err
	}
	if !group.IsMember(actorID) {
		return fmt.Errorf("only members may share tools into a group: %w", ErrForbidden)
	}

	selected := make(map[string]bool, len(toolIDs))
	for _, id := range toolIDs {
		selected[id] = true
	}

	tools, err := s.repo.ListTools(ctx)
	if err != nil {
		return fmt.Errorf("error listing tools: %w", err)
	}

	for i := range tools {
		tool := tools[i]
		if tool.OwnerID != actorID {
			continue
		}

		inGroup := tool.SharedInto(groupID)
		switch {
		case selected[tool.ID] && !inGroup:
			tool.GroupIDs = append(tool.GroupIDs, groupID)
		case !selected[tool.ID] && inGroup:
			kept := make([]string, 0, len(tool.GroupIDs))
			for _, id := range tool.GroupIDs {
				if id != groupID {
					kept = append(kept, id)
				}
			}
			tool.GroupIDs = kept
		default:
			continue
		}

		if err := s.repo.UpdateTool(ctx, &tool); err != nil {
			return fmt.Errorf("error updating tool groups: %w", err)
		}
	}
	return nil
}

func (s *DefaultService) getGroup(ctx context.Context, groupID string) (*models.Group, error) {
	group, err := s.repo.GetGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("error getting group: %w", err)
	}
	if group == nil {
		return nil, fmt.Errorf("group not found: %w", ErrNotFound)
	}
	return group, nil
}
