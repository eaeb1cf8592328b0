package api

import "time"

// UserRole enumerates marketplace roles.
type UserRole string

const (
	RolePassenger UserRole = "passenger"
	RoleDriver    UserRole = "driver"
	RoleOwner     UserRole = "owner"
	RoleAdmin     UserRole = "admin"
)

// KYCStatus enumerates compliance verification states.
type KYCStatus string

const (
	KYCPending    KYCStatus = "pending"
	KYCInProgress KYCStatus = "in_progress"
	KYCApproved   KYCStatus = "approved"
	KYCRejected   KYCStatus = "rejected"
)

// RideStatus enumerates the ride and parcel delivery lifecycle.
type RideStatus string

const (
	RideCreated    RideStatus = "created"
	RidePaid       RideStatus = "paid"
	RideAssigned   RideStatus = "assigned"
	RideInProgress RideStatus = "in_progress"
	RideCompleted  RideStatus = "completed"
	RideCancelled  RideStatus = "cancelled"
)

// VehicleType enumerates supported EV categories.
type VehicleType string

const (
	VehicleCar     VehicleType = "car"
	VehicleBike    VehicleType = "bike"
	VehicleScooter VehicleType = "scooter"
	VehicleCycle   VehicleType = "cycle"
)

// VehicleStatus enumerates listing approval and availability states.
type VehicleStatus string

const (
	ListingPending  VehicleStatus = "pending"
	ListingApproved VehicleStatus = "approved"
	ListingRejected VehicleStatus = "rejected"
	ListingActive   VehicleStatus = "active"
	ListingInactive VehicleStatus = "inactive"
)

// RentalStatus enumerates the P2P rental lifecycle.
type RentalStatus string

const (
	RentalCreated   RentalStatus = "created"
	RentalPaid      RentalStatus = "paid"
	RentalActive    RentalStatus = "active"
	RentalReturned  RentalStatus = "returned"
	RentalCancelled RentalStatus = "cancelled"
)

// PaymentStatus enumerates payment processing states.
type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentProcessing PaymentStatus = "processing"
	PaymentCompleted  PaymentStatus = "completed"
	PaymentFailed     PaymentStatus = "failed"
	PaymentRefunded   PaymentStatus = "refunded"
)

// User is the backend user record.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	FullName  string    `json:"full_name"`
	Role      UserRole  `json:"role"`
	KYCStatus KYCStatus `json:"kyc_status"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TokenResponse is returned by the login endpoint.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// Ride is a ride booking record.
type Ride struct {
	ID              string      `json:"id"`
	PassengerID     string      `json:"passenger_id"`
	DriverID        *string     `json:"driver_id"`
	PickupLat       float64     `json:"pickup_lat"`
	PickupLng       float64     `json:"pickup_lng"`
	PickupAddress   string      `json:"pickup_address"`
	DropLat         float64     `json:"drop_lat"`
	DropLng         float64     `json:"drop_lng"`
	DropAddress     string      `json:"drop_address"`
	VehicleType     VehicleType `json:"vehicle_type"`
	EstimatedFare   *float64    `json:"estimated_fare"`
	FinalFare       *float64    `json:"final_fare"`
	Status          RideStatus  `json:"status"`
	PaymentIntentID *string     `json:"payment_intent_id"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// RideCreate is the booking request payload.
type RideCreate struct {
	PickupLat     float64     `json:"pickup_lat" validate:"min=-90,max=90"`
	PickupLng     float64     `json:"pickup_lng" validate:"min=-180,max=180"`
	PickupAddress string      `json:"pickup_address" validate:"required"`
	DropLat       float64     `json:"drop_lat" validate:"min=-90,max=90"`
	DropLng       float64     `json:"drop_lng" validate:"min=-180,max=180"`
	DropAddress   string      `json:"drop_address" validate:"required"`
	VehicleType   VehicleType `json:"vehicle_type" validate:"required,oneof=car bike scooter cycle"`
}

// RideUpdate carries partial ride mutations.
type RideUpdate struct {
	Status    *RideStatus `json:"status,omitempty"`
	DriverID  *string     `json:"driver_id,omitempty"`
	FinalFare *float64    `json:"final_fare,omitempty"`
}

// Parcel is a parcel delivery record.
type Parcel struct {
	ID              string             `json:"id"`
	SenderID        string             `json:"sender_id"`
	DriverID        *string            `json:"driver_id"`
	PickupLat       float64            `json:"pickup_lat"`
	PickupLng       float64            `json:"pickup_lng"`
	PickupAddress   string             `json:"pickup_address"`
	DropLat         float64            `json:"drop_lat"`
	DropLng         float64            `json:"drop_lng"`
	DropAddress     string             `json:"drop_address"`
	RecipientName   string             `json:"recipient_name"`
	RecipientPhone  string             `json:"recipient_phone"`
	WeightKg        *float64           `json:"weight_kg"`
	Dimensions      map[string]float64 `json:"dimensions"`
	EstimatedFare   *float64           `json:"estimated_fare"`
	FinalFare       *float64           `json:"final_fare"`
	Status          RideStatus         `json:"status"`
	PaymentIntentID *string            `json:"payment_intent_id"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// ParcelCreate is the parcel submission payload.
type ParcelCreate struct {
	PickupLat      float64            `json:"pickup_lat" validate:"min=-90,max=90"`
	PickupLng      float64            `json:"pickup_lng" validate:"min=-180,max=180"`
	PickupAddress  string             `json:"pickup_address" validate:"required"`
	DropLat        float64            `json:"drop_lat" validate:"min=-90,max=90"`
	DropLng        float64            `json:"drop_lng" validate:"min=-180,max=180"`
	DropAddress    string             `json:"drop_address" validate:"required"`
	RecipientName  string             `json:"recipient_name" validate:"required"`
	RecipientPhone string             `json:"recipient_phone" validate:"required"`
	WeightKg       *float64           `json:"weight_kg,omitempty" validate:"omitempty,gt=0"`
	Dimensions     map[string]float64 `json:"dimensions,omitempty"`
}

// ParcelUpdate carries partial parcel mutations.
type ParcelUpdate struct {
	Status    *RideStatus `json:"status,omitempty"`
	DriverID  *string     `json:"driver_id,omitempty"`
	FinalFare *float64    `json:"final_fare,omitempty"`
}

// Vehicle is an EV listing record.
type Vehicle struct {
	ID                 string        `json:"id"`
	OwnerID            string        `json:"owner_id"`
	VehicleType        VehicleType   `json:"vehicle_type"`
	Make               string        `json:"make"`
	Model              string        `json:"model"`
	Year               *int          `json:"year"`
	RegistrationNumber string        `json:"registration_number"`
	BatteryCapacity    *float64      `json:"battery_capacity"`
	RangeKm            *float64      `json:"range_km"`
	HourlyRate         float64       `json:"hourly_rate"`
	DailyRate          float64       `json:"daily_rate"`
	DepositAmount      float64       `json:"deposit_amount"`
	Status             VehicleStatus `json:"status"`
	LocationLat        *float64      `json:"location_lat"`
	LocationLng        *float64      `json:"location_lng"`
	Photos             []string      `json:"photos"`
	Features           []string      `json:"features"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

// VehicleCreate is the listing registration payload.
type VehicleCreate struct {
	VehicleType        VehicleType `json:"vehicle_type" validate:"required,oneof=car bike scooter cycle"`
	Make               string      `json:"make" validate:"required"`
	Model              string      `json:"model" validate:"required"`
	Year               *int        `json:"year,omitempty" validate:"omitempty,min=1990,max=2100"`
	RegistrationNumber string      `json:"registration_number" validate:"required"`
	BatteryCapacity    *float64    `json:"battery_capacity,omitempty" validate:"omitempty,gt=0"`
	RangeKm            *float64    `json:"range_km,omitempty" validate:"omitempty,gt=0"`
	HourlyRate         float64     `json:"hourly_rate" validate:"gt=0"`
	DailyRate          float64     `json:"daily_rate" validate:"gt=0"`
	DepositAmount      float64     `json:"deposit_amount" validate:"gte=0"`
	LocationLat        *float64    `json:"location_lat,omitempty" validate:"omitempty,min=-90,max=90"`
	LocationLng        *float64    `json:"location_lng,omitempty" validate:"omitempty,min=-180,max=180"`
	Photos             []string    `json:"photos,omitempty"`
	Features           []string    `json:"features,omitempty"`
}

// VehicleUpdate carries partial listing mutations, including the ops
// approve/reject decision.
type VehicleUpdate struct {
	Make            *string        `json:"make,omitempty"`
	Model           *string        `json:"model,omitempty"`
	Year            *int           `json:"year,omitempty"`
	BatteryCapacity *float64       `json:"battery_capacity,omitempty"`
	RangeKm         *float64       `json:"range_km,omitempty"`
	HourlyRate      *float64       `json:"hourly_rate,omitempty"`
	DailyRate       *float64       `json:"daily_rate,omitempty"`
	DepositAmount   *float64       `json:"deposit_amount,omitempty"`
	LocationLat     *float64       `json:"location_lat,omitempty"`
	LocationLng     *float64       `json:"location_lng,omitempty"`
	Photos          []string       `json:"photos,omitempty"`
	Features        []string       `json:"features,omitempty"`
	Status          *VehicleStatus `json:"status,omitempty"`
	RejectionReason *string        `json:"rejection_reason,omitempty"`
}

// VehicleFilters narrows vehicle search results. The backend returns
// approved listings only unless IncludeUnapproved asks for the full
// set, pending and rejected included.
type VehicleFilters struct {
	VehicleType       VehicleType
	Lat, Lng          *float64
	RadiusKm          *float64
	MinRate           *float64
	MaxRate           *float64
	IncludeUnapproved bool
}

// Rental is a P2P rental record.
type Rental struct {
	ID                     string       `json:"id"`
	RenterID               string       `json:"renter_id"`
	VehicleID              string       `json:"vehicle_id"`
	StartTime              time.Time    `json:"start_time"`
	EndTime                time.Time    `json:"end_time"`
	HourlyRate             float64      `json:"hourly_rate"`
	TotalAmount            float64      `json:"total_amount"`
	DepositAmount          float64      `json:"deposit_amount"`
	Status                 RentalStatus `json:"status"`
	PaymentIntentID        *string      `json:"payment_intent_id"`
	DepositPaymentIntentID *string      `json:"deposit_payment_intent_id"`
	ReturnPhotos           []string     `json:"return_photos"`
	ReturnNotes            *string      `json:"return_notes"`
	CreatedAt              time.Time    `json:"created_at"`
	UpdatedAt              time.Time    `json:"updated_at"`
}

// RentalCreate is the rental booking payload.
type RentalCreate struct {
	VehicleID string    `json:"vehicle_id" validate:"required"`
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
}

// RentalUpdate carries partial rental mutations.
type RentalUpdate struct {
	Status       *RentalStatus `json:"status,omitempty"`
	ReturnPhotos []string      `json:"return_photos,omitempty"`
	ReturnNotes  *string       `json:"return_notes,omitempty"`
}

// RentalReturn is the vehicle return payload.
type RentalReturn struct {
	ReturnPhotos []string `json:"return_photos,omitempty"`
	ReturnNotes  string   `json:"return_notes,omitempty"`
}

// PaymentIntentCreate requests a payment intent for an entity.
type PaymentIntentCreate struct {
	EntityType string  `json:"entity_type" validate:"required,oneof=ride parcel rental deposit"`
	EntityID   string  `json:"entity_id" validate:"required"`
	Amount     float64 `json:"amount" validate:"gt=0"`
}

// PaymentIntent is the gateway-side intent handle.
type PaymentIntent struct {
	PaymentIntentID string  `json:"payment_intent_id"`
	ClientSecret    *string `json:"client_secret"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	Status          string  `json:"status"`
}

// Payment is a settled or pending payment record.
type Payment struct {
	ID              string        `json:"id"`
	PaymentIntentID string        `json:"payment_intent_id"`
	UserID          string        `json:"user_id"`
	EntityType      string        `json:"entity_type"`
	EntityID        string        `json:"entity_id"`
	Amount          float64       `json:"amount"`
	Currency        string        `json:"currency"`
	Status          PaymentStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// RewardAccount is the user's points balance.
type RewardAccount struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	PointsBalance int       `json:"points_balance"`
	Tier          string    `json:"tier"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// RewardEvent is a points-earning event.
type RewardEvent struct {
	ID           string         `json:"id"`
	UserID       string         `json:"user_id"`
	EventType    string         `json:"event_type"`
	PointsEarned int            `json:"points_earned"`
	EntityType   *string        `json:"entity_type"`
	EntityID     *string        `json:"entity_id"`
	Metadata     map[string]any `json:"metadata"`
	CreatedAt    time.Time      `json:"created_at"`
}

// RewardEventCreate reports an event that accrues points. The backend
// owns the point rules; the client only names the event.
type RewardEventCreate struct {
	EventType  string         `json:"event_type" validate:"required"`
	EntityType *string        `json:"entity_type,omitempty"`
	EntityID   *string        `json:"entity_id,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// RedemptionRequest spends reward points.
type RedemptionRequest struct {
	Points         int            `json:"points" validate:"gt=0"`
	RedemptionType string         `json:"redemption_type" validate:"required,oneof=discount cashback gift_card"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

// Redemption is the result of spending points.
type Redemption struct {
	Success        bool   `json:"success"`
	PointsRedeemed int    `json:"points_redeemed"`
	NewBalance     int    `json:"new_balance"`
	RedemptionID   string `json:"redemption_id"`
}

// KYCDocument is a submitted compliance document.
type KYCDocument struct {
	ID            string         `json:"id"`
	UserID        string         `json:"user_id"`
	DocumentType  string         `json:"document_type"`
	DocumentURL   *string        `json:"document_url"`
	ExtractedData map[string]any `json:"extracted_data"`
	Status        KYCStatus      `json:"status"`
	ExpiryDate    *time.Time     `json:"expiry_date"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// KYCDocumentCreate is the document submission payload.
type KYCDocumentCreate struct {
	DocumentType  string         `json:"document_type" validate:"required,oneof=license rc insurance fitness"`
	DocumentURL   string         `json:"document_url,omitempty" validate:"omitempty,url"`
	ExtractedData map[string]any `json:"extracted_data,omitempty"`
	ExpiryDate    *time.Time     `json:"expiry_date,omitempty"`
}

// AuditLog is an audit trail entry.
type AuditLog struct {
	ID            string         `json:"id"`
	CorrelationID *string        `json:"correlation_id"`
	EventType     string         `json:"event_type"`
	UserID        *string        `json:"user_id"`
	EntityType    *string        `json:"entity_type"`
	EntityID      *string        `json:"entity_id"`
	Action        string         `json:"action"`
	Details       map[string]any `json:"details"`
	IPAddress     *string        `json:"ip_address"`
	UserAgent     *string        `json:"user_agent"`
	CreatedAt     time.Time      `json:"created_at"`
}
