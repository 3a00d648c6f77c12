package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"market/internal/domain/entity"
)

// View models are the read-side shapes exposed by the usecases. Each is built
// by a pure projection function from an entity, so the derivations (min price,
// min delivery time) are testable without any transport or storage.

// ProfileView is the public shape of a user with their profile.
type ProfileView struct {
	User         uuid.UUID `json:"user"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Type         string    `json:"type"`
	Location     string    `json:"location"`
	Tel          string    `json:"tel"`
	Description  string    `json:"description"`
	WorkingHours string    `json:"working_hours"`
	File         string    `json:"file,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewProfileView projects a user with a non-nil profile into its view.
func NewProfileView(user *entity.User) *ProfileView {
	view := &ProfileView{
		User:      user.ID,
		Username:  user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
	if user.Profile != nil {
		view.Type = user.Profile.Type.String()
		view.Location = user.Profile.Location
		view.Tel = user.Profile.Tel
		view.Description = user.Profile.Description
		view.WorkingHours = user.Profile.WorkingHours
		view.File = user.Profile.File
	}

	return view
}

// OfferDetailView is the full shape of one tier.
type OfferDetailView struct {
	ID                 uuid.UUID       `json:"id"`
	Title              string          `json:"title"`
	Revisions          int             `json:"revisions"`
	DeliveryTimeInDays int             `json:"delivery_time_in_days"`
	Price              decimal.Decimal `json:"price"`
	Features           []string        `json:"features"`
	OfferType          string          `json:"offer_type"`
}

// NewOfferDetailView projects a tier row into its view.
func NewOfferDetailView(detail *entity.OfferDetail) *OfferDetailView {
	features := detail.Features
	if features == nil {
		features = []string{}
	}

	return &OfferDetailView{
		ID:                 detail.ID,
		Title:              detail.Title,
		Revisions:          detail.Revisions,
		DeliveryTimeInDays: detail.DeliveryTimeInDays,
		Price:              detail.Price,
		Features:           features,
		OfferType:          detail.OfferType.String(),
	}
}

// OfferView is the shape of an offer with its derived aggregates. MinPrice and
// MinDeliveryTime are null only when the offer has no details, which a healthy
// store never produces.
type OfferView struct {
	ID              uuid.UUID          `json:"id"`
	User            uuid.UUID          `json:"user"`
	Title           string             `json:"title"`
	Image           string             `json:"image,omitempty"`
	Description     string             `json:"description"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
	Details         []*OfferDetailView `json:"details"`
	MinPrice        *decimal.Decimal   `json:"min_price"`
	MinDeliveryTime *int               `json:"min_delivery_time"`
}

// NewOfferView projects an offer and computes its aggregates.
func NewOfferView(offer *entity.Offer) *OfferView {
	details := make([]*OfferDetailView, 0, len(offer.Details))
	for _, d := range offer.Details {
		details = append(details, NewOfferDetailView(d))
	}

	return &OfferView{
		ID:              offer.ID,
		User:            offer.UserID,
		Title:           offer.Title,
		Image:           offer.Image,
		Description:     offer.Description,
		CreatedAt:       offer.CreatedAt,
		UpdatedAt:       offer.UpdatedAt,
		Details:         details,
		MinPrice:        offer.MinPrice(),
		MinDeliveryTime: offer.MinDeliveryTime(),
	}
}

// OfferPage is the paginated envelope for offer listings.
type OfferPage struct {
	Count    int64        `json:"count"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
	Results  []*OfferView `json:"results"`
}

// OrderView is the shape of an order. Both parties appear as raw ids.
type OrderView struct {
	ID                 uuid.UUID       `json:"id"`
	CustomerUser       uuid.UUID       `json:"customer_user"`
	BusinessUser       uuid.UUID       `json:"business_user"`
	Title              string          `json:"title"`
	Revisions          int             `json:"revisions"`
	DeliveryTimeInDays int             `json:"delivery_time_in_days"`
	Price              decimal.Decimal `json:"price"`
	Features           []string        `json:"features"`
	OfferType          string          `json:"offer_type"`
	Status             string          `json:"status"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// NewOrderView projects an order into its view.
func NewOrderView(order *entity.Order) *OrderView {
	features := order.Features
	if features == nil {
		features = []string{}
	}

	return &OrderView{
		ID:                 order.ID,
		CustomerUser:       order.CustomerUserID,
		BusinessUser:       order.BusinessUserID,
		Title:              order.Title,
		Revisions:          order.Revisions,
		DeliveryTimeInDays: order.DeliveryTimeInDays,
		Price:              order.Price,
		Features:           features,
		OfferType:          order.OfferType.String(),
		Status:             order.Status.String(),
		CreatedAt:          order.CreatedAt,
		UpdatedAt:          order.UpdatedAt,
	}
}

// ReviewView is the shape of a review.
type ReviewView struct {
	ID           uuid.UUID `json:"id"`
	BusinessUser uuid.UUID `json:"business_user"`
	Reviewer     uuid.UUID `json:"reviewer"`
	Rating       int       `json:"rating"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewReviewView projects a review into its view.
func NewReviewView(review *entity.Review) *ReviewView {
	return &ReviewView{
		ID:           review.ID,
		BusinessUser: review.BusinessUserID,
		Reviewer:     review.ReviewerID,
		Rating:       review.Rating,
		Description:  review.Description,
		CreatedAt:    review.CreatedAt,
		UpdatedAt:    review.UpdatedAt,
	}
}

// StatsView is the platform aggregate projection. AverageRating is always a
// finite number, zero when no reviews exist.
type StatsView struct {
	ReviewCount          int64   `json:"review_count"`
	AverageRating        float64 `json:"average_rating"`
	BusinessProfileCount int64   `json:"business_profile_count"`
	OfferCount           int64   `json:"offer_count"`
}
