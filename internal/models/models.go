package models

import (
	"time"
)

// ToolStatus is the availability state of a tool.
type ToolStatus string

const (
	ToolAvailable   ToolStatus = "AVAILABLE"
	ToolBorrowed    ToolStatus = "BORROWED"
	ToolMaintenance ToolStatus = "MAINTENANCE"
)

// BookingStatus is the lifecycle state of a booking. PENDING is the initial
// state; REJECTED and COMPLETED are terminal.
type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingApproved  BookingStatus = "APPROVED"
	BookingRejected  BookingStatus = "REJECTED"
	BookingCompleted BookingStatus = "COMPLETED"
)

// Logistics describes how a borrowed tool changes hands.
type Logistics string

const (
	LogisticsPickup Logistics = "PICKUP"
	LogisticsMeet   Logistics = "MEET"
	LogisticsDrop   Logistics = "DROP"
)

// User represents a registered user
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	Password  string    `json:"-"` // bcrypt hash, never serialized to clients
	CreatedAt time.Time `json:"createdAt"`
}

// Tool represents a physical item cataloged by an owner for lending.
// CurrentHolderID is set if and only if Status is BORROWED.
type Tool struct {
	ID              string     `json:"id"`
	OwnerID         string     `json:"ownerId"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	Image           string     `json:"image"`
	Price           float64    `json:"price"`
	Category        string     `json:"category"`
	Status          ToolStatus `json:"status"`
	CurrentHolderID string     `json:"currentHolderId,omitempty"`
	GroupIDs        []string   `json:"groupIds"`
}

// SharedInto reports whether the tool is shared into the given group.
func (t *Tool) SharedInto(groupID string) bool {
	for _, id := range t.GroupIDs {
		if id == groupID {
			return true
		}
	}
	return false
}

// Group represents a sharing circle joined via invite code.
// OwnerID is always present in MemberIDs.
type Group struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	OwnerID    string   `json:"ownerId"`
	MemberIDs  []string `json:"memberIds"`
	InviteCode string   `json:"inviteCode"`
}

// IsMember reports whether the user belongs to the group.
func (g *Group) IsMember(userID string) bool {
	for _, id := range g.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// Booking represents a borrowing transaction between a borrower and a tool's
// owner. Bookings are never deleted; they form the lending history.
type Booking struct {
	ID               string        `json:"id"`
	ToolID           string        `json:"toolId"`
	BorrowerID       string        `json:"borrowerId"`
	OwnerID          string        `json:"ownerId"`
	StartDate        string        `json:"startDate"` // ISO 8601 date (2006-01-02)
	EndDate          string        `json:"endDate"`
	Reason           string        `json:"reason"`
	Logistics        Logistics     `json:"logistics"`
	LogisticsDetails string        `json:"logisticsDetails,omitempty"`
	Status           BookingStatus `json:"status"`
	CreatedAt        time.Time     `json:"createdAt"`
}

// Terminal reports whether the booking has reached a final state.
func (b *Booking) Terminal() bool {
	return b.Status == BookingRejected || b.Status == BookingCompleted
}
