package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/mailru/easyjson"
	appErrors "github.com/zaiboost/zaiboost/internal/app/errors"
	"github.com/zaiboost/zaiboost/internal/app/logger"
	"github.com/zaiboost/zaiboost/internal/app/models"
	"go.uber.org/zap"
)

type (
	//easyjson:json
	CredentialsDto struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	//easyjson:json
	AuthResponse struct {
		ID       int64  `json:"id"`
		Username string `json:"username"`
		Role     string `json:"role"`
		Token    string `json:"token"`
	}

	//easyjson:json
	ServiceDTO struct {
		ID           int64     `json:"id"`
		Game         string    `json:"game"`
		Category     string    `json:"category"`
		Name         string    `json:"name"`
		Description  string    `json:"description"`
		PriceBase    int64     `json:"price_base"`
		PricePerUnit int64     `json:"price_per_unit"`
		UnitName     string    `json:"unit_name"`
		CreatedAt    time.Time `json:"created_at"`
	}
	//easyjson:json
	ServiceDTOSlice []ServiceDTO

	//easyjson:json
	CreateOrderDto struct {
		ServiceID    int64   `json:"service_id"`
		Game         string  `json:"game"`
		UID          string  `json:"uid"`
		Server       string  `json:"server"`
		GameUsername string  `json:"game_username"`
		GamePassword string  `json:"game_password"`
		TotalPrice   float64 `json:"total_price"`
		StartValue   float64 `json:"start_value"`
		TargetValue  float64 `json:"target_value"`
		Notes        string  `json:"notes"`
	}
	//easyjson:json
	OrderCreatedResponse struct {
		ID      int64  `json:"id"`
		Message string `json:"message"`
	}
	//easyjson:json
	UpdateOrderDto struct {
		Status       *string  `json:"status"`
		CurrentValue *float64 `json:"current_value"`
	}
	//easyjson:json
	SuccessResponse struct {
		Success bool `json:"success"`
	}
	//easyjson:json
	OrderDTO struct {
		ID              int64     `json:"id"`
		UserID          int64     `json:"user_id"`
		ServiceID       int64     `json:"service_id"`
		Game            string    `json:"game"`
		UID             string    `json:"uid"`
		Server          string    `json:"server"`
		GameUsername    string    `json:"game_username"`
		GamePassword    *string   `json:"game_password"`
		TotalPrice      int64     `json:"total_price"`
		Status          string    `json:"status"`
		StartValue      float64   `json:"start_value"`
		CurrentValue    float64   `json:"current_value"`
		TargetValue     float64   `json:"target_value"`
		Notes           string    `json:"notes"`
		CreatedAt       time.Time `json:"created_at"`
		ServiceName     string    `json:"service_name"`
		ServiceCategory string    `json:"service_category"`
		Username        string    `json:"username,omitempty"`
	}
	//easyjson:json
	OrderDTOSlice []OrderDTO

	//easyjson:json
	StatsResponse struct {
		Revenue         int64 `json:"revenue"`
		ActiveOrders    int   `json:"activeOrders"`
		TotalUsers      int   `json:"totalUsers"`
		CompletedOrders int   `json:"completedOrders"`
	}

	//easyjson:json
	CreateReviewDto struct {
		OrderID *int64  `json:"order_id"`
		Rating  float64 `json:"rating"`
		Comment string  `json:"comment"`
	}
	//easyjson:json
	ReviewCreatedResponse struct {
		ID int64 `json:"id"`
	}
	//easyjson:json
	ReviewDTO struct {
		ID        int64     `json:"id"`
		OrderID   *int64    `json:"order_id"`
		UserID    int64     `json:"user_id"`
		Rating    int       `json:"rating"`
		Comment   string    `json:"comment"`
		CreatedAt time.Time `json:"created_at"`
		Username  string    `json:"username"`
	}
	//easyjson:json
	ReviewDTOSlice []ReviewDTO

	//easyjson:json
	HealthResponse struct {
		Status string  `json:"status"`
		Uptime float64 `json:"uptime"`
	}
)

// requiredField pairs a request field name with whether it was supplied.
type requiredField struct {
	name    string
	present bool
}

// checkRequired reports every absent field at once. Empty strings and
// zero numbers count as absent.
func checkRequired(fields ...requiredField) error {
	var missing []string
	for _, f := range fields {
		if !f.present {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return appErrors.NewMissingFields(missing...)
	}
	return nil
}

func decodeBody(r *http.Request, v easyjson.Unmarshaler) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return appErrors.NewWithCode(err, errMsgUnableReadBody, http.StatusBadRequest)
	}
	if err = easyjson.Unmarshal(body, v); err != nil {
		return appErrors.NewWithCode(err, errMsgUnableParseBody, http.StatusBadRequest)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, code int, v easyjson.Marshaler) {
	rawBytes, err := easyjson.Marshal(v)
	if err != nil {
		logger.Log.Error("failed to marshal response", zap.Error(err))
		WriteJSONErrorResponse(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(rawBytes)
}

func toServiceDTOs(services []models.Service) ServiceDTOSlice {
	out := make(ServiceDTOSlice, 0, len(services))
	for _, s := range services {
		out = append(out, ServiceDTO{
			ID:           s.ID,
			Game:         s.Game,
			Category:     s.Category.String(),
			Name:         s.Name,
			Description:  s.Description,
			PriceBase:    s.PriceBase,
			PricePerUnit: s.PricePerUnit,
			UnitName:     s.UnitName,
			CreatedAt:    s.CreatedAt,
		})
	}
	return out
}

// toOrderDTOs maps order views. An empty stored password is rendered as null.
func toOrderDTOs(orders []models.OrderView) OrderDTOSlice {
	out := make(OrderDTOSlice, 0, len(orders))
	for _, o := range orders {
		dto := OrderDTO{
			ID:              o.ID,
			UserID:          o.UserID,
			ServiceID:       o.ServiceID,
			Game:            o.Game,
			UID:             o.UID,
			Server:          o.Server,
			GameUsername:    o.GameUsername,
			TotalPrice:      o.TotalPrice,
			Status:          o.Status.String(),
			StartValue:      o.StartValue,
			CurrentValue:    o.CurrentValue,
			TargetValue:     o.TargetValue,
			Notes:           o.Notes,
			CreatedAt:       o.CreatedAt,
			ServiceName:     o.ServiceName,
			ServiceCategory: o.ServiceCategory.String(),
			Username:        o.Username,
		}
		if o.GamePassword != "" {
			password := o.GamePassword
			dto.GamePassword = &password
		}
		out = append(out, dto)
	}
	return out
}

func toReviewDTOs(reviews []models.ReviewView) ReviewDTOSlice {
	out := make(ReviewDTOSlice, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, ReviewDTO{
			ID:        r.ID,
			OrderID:   r.OrderID,
			UserID:    r.UserID,
			Rating:    r.Rating,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt,
			Username:  r.Username,
		})
	}
	return out
}
