package service

import (
	"context"
	"fmt"

	"github.com/toolshare/toolshare-server/internal/models"
)

// CreateTool catalogs a new tool for the owner. New tools always start
// AVAILABLE with no holder.
func (s *DefaultService) CreateTool(ctx context.Context, ownerID string, req models.CreateToolRequest) (*models.Tool, error) {
	groupIDs := req.GroupIDs
	if groupIDs == nil {
		groupIDs = []string{}
	}

	tool := &models.Tool{
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Price:       req.Price,
		Category:    req.Category,
		Status:      models.ToolAvailable,
		GroupIDs:    groupIDs,
	}
	if err := s.repo.CreateTool(ctx, tool); err != nil {
		return nil, fmt.Errorf("error creating tool: %w", err)
	}
	return tool, nil
}

// UpdateTool edits a tool. Owner only. Owners may toggle between AVAILABLE
// and MAINTENANCE; BORROWED belongs to the booking engine, so a borrowed
// tool's status cannot be edited by hand and BORROWED cannot be hand-set.
func (s *DefaultService) UpdateTool(ctx context.Context, actorID, toolID string, req models.UpdateToolRequest) (*models.Tool, error) {
	tool, err := s.getTool(ctx, toolID)
	if err != nil {
		return nil, err
	}
	if tool.OwnerID != actorID {
		return nil, fmt.Errorf("only the owner may edit a tool: %w", ErrForbidden)
	}

	if req.Status != "" && req.Status != tool.Status {
		if tool.Status == models.ToolBorrowed {
			return nil, fmt.Errorf("cannot change status while the tool is borrowed: %w", ErrInvalidState)
		}
		tool.Status = req.Status
	}

	tool.Name = req.Name
	tool.Description = req.Description
	tool.Image = req.Image
	tool.Price = req.Price
	tool.Category = req.Category
	if req.GroupIDs != nil {
		tool.GroupIDs = req.GroupIDs
	}

	if err := s.repo.UpdateTool(ctx, tool); err != nil {
		return nil, fmt.Errorf("error updating tool: %w", err)
	}
	return tool, nil
}

// DeleteTool removes a tool from the catalog. Owner only. Deletion is
// refused while the tool is out on loan or has an approved booking waiting
// for handover; pending requests against the tool are rejected as part of
// the delete. Terminal bookings stay behind as history.
func (s *DefaultService) DeleteTool(ctx context.Context, actorID, toolID string) error {
	tool, err := s.getTool(ctx, toolID)
	if err != nil {
		return err
	}
	if tool.OwnerID != actorID {
		return fmt.Errorf("only the owner may delete a tool: %w", ErrForbidden)
	}
	if tool.Status == models.ToolBorrowed {
		return fmt.Errorf("cannot delete a tool that is currently borrowed: %w", ErrInvalidState)
	}

	bookings, err := s.repo.ListBookings(ctx)
	if err != nil {
		return fmt.Errorf("error listing bookings: %w", err)
	}
	var pending []models.Booking
	for _, b := range bookings {
		if b.ToolID != toolID {
			continue
		}
		if b.Status == models.BookingApproved {
			return fmt.Errorf("cannot delete a tool with an approved booking: %w", ErrInvalidState)
		}
		if b.Status == models.BookingPending {
			pending = append(pending, b)
		}
	}

	for i := range pending {
		pending[i].Status = models.BookingRejected
		if err := s.repo.UpdateBooking(ctx, &pending[i]); err != nil {
			return fmt.Errorf("error rejecting pending booking: %w", err)
		}
	}

	if err := s.repo.DeleteTool(ctx, toolID); err != nil {
		return fmt.Errorf("error deleting tool: %w", err)
	}
	return nil
}

// AnalyzeToolImage asks the annotation service for name/description/price/
// category suggestions. Absence (nil) on any failure; never an error.
func (s *DefaultService) AnalyzeToolImage(ctx context.Context, image string) *models.ToolSuggestion {
	if s.annotator == nil {
		return nil
	}
	return s.annotator.AnalyzeToolImage(ctx, image)
}

func (s *DefaultService) getTool(ctx context.Context, toolID string) (*models.Tool, error) {
	tool, err := s.repo.GetTool(ctx, toolID)
	if err != nil {
		return nil, fmt.Errorf("error getting tool: %w", err)
	}
	if tool == nil {
		return nil, fmt.Errorf("tool not found: %w", ErrNotFound)
	}
	return tool, nil
}
