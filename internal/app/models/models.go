package models

import (
	"errors"
	"fmt"
	"math"
	"time"
)

type (
	User struct {
		ID           int64     `json:"id"`
		Username     string    `json:"username"`
		PasswordHash string    `json:"password"`
		Role         Role      `json:"role"`
		CreatedAt    time.Time `json:"created_at"`
	}
	Service struct {
		ID           int64     `json:"id"`
		Game         string    `json:"game"`
		Category     Category  `json:"category"`
		Name         string    `json:"name"`
		Description  string    `json:"description"`
		PriceBase    int64     `json:"price_base"`
		PricePerUnit int64     `json:"price_per_unit"`
		UnitName     string    `json:"unit_name"`
		CreatedAt    time.Time `json:"created_at"`
	}
	Order struct {
		ID           int64     `json:"id"`
		UserID       int64     `json:"user_id"`
		ServiceID    int64     `json:"service_id"`
		Game         string    `json:"game"`
		UID          string    `json:"uid"`
		Server       string    `json:"server"`
		GameUsername string    `json:"game_username"`
		GamePassword string    `json:"game_password"`
		TotalPrice   int64     `json:"total_price"`
		Status       Status    `json:"status"`
		StartValue   float64   `json:"start_value"`
		CurrentValue float64   `json:"current_value"`
		TargetValue  float64   `json:"target_value"`
		Notes        string    `json:"notes"`
		CreatedAt    time.Time `json:"created_at"`
	}
	Review struct {
		ID        int64     `json:"id"`
		OrderID   *int64    `json:"order_id"`
		UserID    int64     `json:"user_id"`
		Rating    int       `json:"rating"`
		Comment   string    `json:"comment"`
		CreatedAt time.Time `json:"created_at"`
	}
	Counters struct {
		Users    int64 `json:"users"`
		Services int64 `json:"services"`
		Orders   int64 `json:"orders"`
		Reviews  int64 `json:"reviews"`
	}

	// Identity is what a bearer token vouches for.
	Identity struct {
		ID       int64
		Username string
		Role     Role
	}

	// OrderDraft holds the caller-supplied fields of a new order.
	OrderDraft struct {
		ServiceID    int64
		Game         string
		UID          string
		Server       string
		GameUsername string
		GamePassword string
		TotalPrice   int64
		StartValue   float64
		TargetValue  float64
		Notes        string
	}
	// OrderPatch lists the only fields an admin may change on an order.
	OrderPatch struct {
		Status       *Status
		CurrentValue *float64
	}

	OrderView struct {
		Order
		ServiceName     string
		ServiceCategory Category
		Username        string
	}
	ReviewView struct {
		Review
		Username string
	}
	Stats struct {
		Revenue         int64
		ActiveOrders    int
		TotalUsers      int
		CompletedOrders int
	}
)

var (
	ErrMissingField     = errors.New("missing required field")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
	ErrInvalidStatus    = errors.New("unknown order status")
	ErrServiceMismatch  = errors.New("draft references another service")
	ErrEmptyOrderPatch  = errors.New("nothing to update")
	ErrInvalidRoleValue = errors.New("unknown role")
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleAdmin
}

type Category string

const (
	CategoryDaily   Category = "daily"
	CategoryExplore Category = "explore"
	CategoryEndgame Category = "endgame"
)

func (c Category) String() string {
	return string(c)
}

type Status string

func (s Status) String() string {
	return string(s)
}

const (
	PENDING    Status = "pending"
	PROCESSING Status = "processing"
	COMPLETED  Status = "completed"
	CANCELLED  Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case PENDING, PROCESSING, COMPLETED, CANCELLED:
		return true
	}
	return false
}

func (s Status) Active() bool {
	return s == PENDING || s == PROCESSING
}

func (s Status) Terminal() bool {
	return s == COMPLETED || s == CANCELLED
}

// Quote applies the pricing rule of the service to a progress range.
// Endgame services always cost the base price.
func (s Service) Quote(start, target float64) int64 {
	if s.Category == CategoryEndgame {
		return s.PriceBase
	}
	units := math.Max(0, target-start)
	return s.PriceBase + int64(math.Round(units*float64(s.PricePerUnit)))
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

func NewUser(username, passwordHash string, role Role, now time.Time) (*User, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username", ErrMissingField)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("%w: password", ErrMissingField)
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRoleValue, role)
	}
	return &User{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    now,
	}, nil
}

// NewOrder builds a pending order for the given service. passwordEnvelope
// must already be encrypted. A zero total price is replaced by the quote.
func NewOrder(userID int64, service Service, draft OrderDraft, passwordEnvelope string, now time.Time) (*Order, error) {
	if draft.ServiceID != service.ID {
		return nil, ErrServiceMismatch
	}
	required := [][2]string{
		{"uid", draft.UID},
		{"server", draft.Server},
		{"game_username", draft.GameUsername},
		{"game_password", passwordEnvelope},
	}
	for _, field := range required {
		if field[1] == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingField, field[0])
		}
	}
	game := draft.Game
	if game == "" {
		game = service.Game
	}
	total := draft.TotalPrice
	if total == 0 {
		total = service.Quote(draft.StartValue, draft.TargetValue)
	}
	return &Order{
		UserID:       userID,
		ServiceID:    service.ID,
		Game:         game,
		UID:          draft.UID,
		Server:       draft.Server,
		GameUsername: draft.GameUsername,
		GamePassword: passwordEnvelope,
		TotalPrice:   total,
		Status:       PENDING,
		StartValue:   draft.StartValue,
		CurrentValue: draft.StartValue,
		TargetValue:  draft.TargetValue,
		Notes:        draft.Notes,
		CreatedAt:    now,
	}, nil
}

func NewReview(userID int64, orderID *int64, rating int, comment string, now time.Time) (*Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	if comment == "" {
		return nil, fmt.Errorf("%w: comment", ErrMissingField)
	}
	return &Review{
		OrderID:   orderID,
		UserID:    userID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: now,
	}, nil
}

// Validate rejects empty patches and unknown statuses.
func (p OrderPatch) Validate() error {
	if p.Status == nil && p.CurrentValue == nil {
		return ErrEmptyOrderPatch
	}
	if p.Status != nil && !p.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, *p.Status)
	}
	return nil
}

// Apply mutates the order in place.
func (p OrderPatch) Apply(o *Order) {
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.CurrentValue != nil {
		o.CurrentValue = *p.CurrentValue
	}
}
