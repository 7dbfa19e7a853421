package dto

type HoldRequest struct {
	CourtIDs       []string `json:"courtIds" binding:"required,min=1,dive,required"`
	StartAt        string   `json:"startAt" binding:"required"`
	EndAt          string   `json:"endAt" binding:"required"`
	TotalCents     *int64   `json:"totalCents"`
	PaymentMethod  string   `json:"paymentMethod" binding:"omitempty,oneof=cash split digital"`
	PartySize      int      `json:"partySize" binding:"gte=0"`
	UserID         string   `json:"userId"`
	GuestName      string   `json:"guestName"`
	GuestPhone     string   `json:"guestPhone"`
	TelegramChatID *int64   `json:"telegramChatId"`
}

type ConfirmRequest struct {
	BookingID     string `json:"bookingId" binding:"required"`
	PaymentMethod string `json:"paymentMethod" binding:"omitempty,oneof=cash split digital"`
}

type ConfirmSeriesRequest struct {
	PaymentMethod string `json:"paymentMethod" binding:"omitempty,oneof=cash split digital"`
}

type JoinRequest struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
}

type RecurringPattern struct {
	Frequency string `json:"frequency" binding:"omitempty,oneof=weekly"`
	Interval  int    `json:"interval" binding:"gte=0"`
	Weekdays  []int  `json:"weekdays" binding:"dive,gte=0,lte=6"`
	Until     string `json:"until"`
	Count     int    `json:"count" binding:"gte=0"`
}

type RecurringRequest struct {
	CourtID        string           `json:"court_id" binding:"required"`
	UserID         string           `json:"user_id"`
	GuestName      string           `json:"guest_name"`
	GuestPhone     string           `json:"guest_phone"`
	TelegramChatID *int64           `json:"telegram_chat_id"`
	StartAt        string           `json:"start_at" binding:"required"`
	EndAt          string           `json:"end_at" binding:"required"`
	PaymentMethod  string           `json:"payment_method" binding:"omitempty,oneof=cash split digital"`
	PartySize      int              `json:"party_size" binding:"gte=0"`
	Recurring      RecurringPattern `json:"recurring"`
	SkipConflicts  bool             `json:"skipConflicts"`
}

type CalculateRequest struct {
	CourtID   string   `json:"court_id"`
	CourtIDs  []string `json:"court_ids"`
	StartTime string   `json:"start_time" binding:"required"`
	EndTime   string   `json:"end_time" binding:"required"`
}

type RateRuleRequest struct {
	CourtID         *string `json:"court_id"`
	HourlyRateCents int64   `json:"hourly_rate_cents" binding:"gte=0"`
	Weekdays        []int   `json:"weekdays" binding:"required,min=1,dive,gte=0,lte=6"`
	StartTime       string  `json:"start_time" binding:"required"`
	EndTime         string  `json:"end_time" binding:"required"`
}

type CreateCourtRequest struct {
	Name string `json:"name" binding:"required"`
}
