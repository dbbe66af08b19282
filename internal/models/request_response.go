package models

// Request models
type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateToolRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Price       float64  `json:"price" binding:"gte=0"`
	Category    string   `json:"category"`
	GroupIDs    []string `json:"groupIds"`
}

type UpdateToolRequest struct {
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	Price       float64    `json:"price" binding:"gte=0"`
	Category    string     `json:"category"`
	Status      ToolStatus `json:"status" binding:"omitempty,oneof=AVAILABLE MAINTENANCE"`
	GroupIDs    []string   `json:"groupIds"`
}

type AnalyzeToolImageRequest struct {
	Image string `json:"image" binding:"required"` // base64 payload, data-URL prefix tolerated
}

type CreateGroupRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateGroupRequest struct {
	Name string `json:"name" binding:"required"`
}

type JoinGroupRequest struct {
	InviteCode string `json:"inviteCode" binding:"required"`
}

type ShareToolsRequest struct {
	ToolIDs []string `json:"toolIds" binding:"required"`
}

type CreateBookingRequest struct {
	ToolID           string    `json:"toolId" binding:"required"`
	StartDate        string    `json:"startDate" binding:"required"`
	EndDate          string    `json:"endDate" binding:"required"`
	Reason           string    `json:"reason"`
	Logistics        Logistics `json:"logistics" binding:"required,oneof=PICKUP MEET DROP"`
	LogisticsDetails string    `json:"logisticsDetails"`
}

// Response models
type AuthResponse struct {
	Status    string `json:"status"`
	UserID    string `json:"userId,omitempty"`
	Email     string `json:"email,omitempty"`
	Name      string `json:"name,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
	Token     string `json:"token,omitempty"`
	ExpiresIn int    `json:"expiresIn,omitempty"`
}

// ToolSuggestion carries annotation-service guesses for a photographed tool.
// All fields may be empty; an absent suggestion never blocks tool creation.
type ToolSuggestion struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	EstimatedPrice float64 `json:"estimatedPrice"`
	Category       string  `json:"category"`
}

type AnalyzeToolImageResponse struct {
	Status     string          `json:"status"`
	Suggestion *ToolSuggestion `json:"suggestion,omitempty"`
}

type JoinGroupResponse struct {
	Status        string `json:"status"`
	Message       string `json:"message,omitempty"`
	AlreadyMember bool   `json:"alreadyMember"`
	Group         Group  `json:"group"`
}

type GroupInviteResponse struct {
	Status     string `json:"status"`
	InviteCode string `json:"inviteCode"`
	JoinURL    string `json:"joinUrl"`
	QRImageURL string `json:"qrImageUrl"`
}

// MarketTool is a marketplace entry: a tool visible to the session user
// because they share at least one group with its owner. ActiveBooking and
// NextAvailableDate back the "request for when available" flow.
type MarketTool struct {
	Tool              Tool     `json:"tool"`
	OwnerName         string   `json:"ownerName"`
	ActiveBooking     *Booking `json:"activeBooking,omitempty"`
	NextAvailableDate string   `json:"nextAvailableDate,omitempty"`
}

type DashboardResponse struct {
	Status             string       `json:"status"`
	MyTools            []Tool       `json:"myTools"`
	MyGroups           []Group      `json:"myGroups"`
	MarketTools        []MarketTool `json:"marketTools"`
	MyBookings         []Booking    `json:"myBookings"`
	MyLendingHistory   []Booking    `json:"myLendingHistory"`
	IncomingRequests   []Booking    `json:"incomingRequests"`
	ActiveBorrows      []Booking    `json:"activeBorrows"`
	MyToolsBorrowedOut []Tool       `json:"myToolsBorrowedOut"`
}

// UserSummary is the public slice of a user record used for name resolution.
type UserSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

type ErrorResponse struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}
