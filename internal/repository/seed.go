package repository

import (
	"context"

	"github.com/toolshare/toolshare-server/internal/models"
)

// demo password for all seeded accounts: "password" (bcrypt, cost 10)
const demoPasswordHash = "$2a$10$CwTycUXWue0Thq9StjUM0uJ8ikD3ey7Dx0cVZVZNvoYCH9rT0C0hG"

// SeedDemoData installs the demo neighborhood fixture when the user
// collection is still empty. Safe to call on every startup.
func SeedDemoData(ctx context.Context, repo Repository) error {
	existing, err := repo.ListUsers(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	users := []models.User{
		{ID: "u1", Name: "Alex", Email: "alex@example.com", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Alex", Password: demoPasswordHash},
		{ID: "u2", Name: "Jordan", Email: "jordan@example.com", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Jordan", Password: demoPasswordHash},
		{ID: "u3", Name: "Casey", Email: "casey@example.com", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Casey", Password: demoPasswordHash},
	}
	for i := range users {
		if err := repo.CreateUser(ctx, &users[i]); err != nil {
			return err
		}
	}

	group := models.Group{
		ID:         "g1",
		Name:       "Neighborhood DIY",
		OwnerID:    "u1",
		MemberIDs:  []string{"u1", "u2", "u3"},
		InviteCode: "DIY-1234",
	}
	if err := repo.CreateGroup(ctx, &group); err != nil {
		return err
	}

	tools := []models.Tool{
		{
			ID: "t1", OwnerID: "u2", Name: "Cordless Drill",
			Description: "18V Brushless Compact Drill/Driver",
			Image:       "https://images.unsplash.com/photo-1504148455328-c376907d081c?auto=format&fit=crop&w=400&q=80",
			Price:       120, Category: "Power Tools",
			Status: models.ToolAvailable, GroupIDs: []string{"g1"},
		},
		{
			ID: "t2", OwnerID: "u1", Name: "Circular Saw",
			Description: "7-1/4-Inch Circular Saw with Electric Brake",
			Image:       "https://images.unsplash.com/photo-1572981779307-38b8cabb2407?auto=format&fit=crop&w=400&q=80",
			Price:       89, Category: "Power Tools",
			Status: models.ToolAvailable, GroupIDs: []string{"g1"},
		},
		{
			ID: "t3", OwnerID: "u1", Name: "Socket Set",
			Description: "Standard and Metric Mechanic Tool Set",
			Image:       "https://images.unsplash.com/photo-1635339295551-7f98555776d7?auto=format&fit=crop&w=400&q=80",
			Price:       150, Category: "Hand Tools",
			Status: models.ToolAvailable, GroupIDs: []string{},
		},
	}
	for i := range tools {
		if err := repo.CreateTool(ctx, &tools[i]); err != nil {
			return err
		}
	}

	return nil
}
