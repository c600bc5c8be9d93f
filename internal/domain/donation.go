package domain

import (
	"context"
	"time"
)

// FoodType distinguishes cooked meals, which spoil, from packed food, which does not.
type FoodType string

const (
	FoodTypeCooked FoodType = "Cooked"
	FoodTypePacked FoodType = "Packed"
)

// DonationStatus is the lifecycle state of a donation.
type DonationStatus string

const (
	DonationStatusPending   DonationStatus = "pending"
	DonationStatusAvailable DonationStatus = "available"
	DonationStatusClaimed   DonationStatus = "claimed"
)

// CookedSafetyWindow is how long cooked food stays safe to distribute after listing.
const CookedSafetyWindow = 4 * time.Hour

// Cities lists the accepted values for the city field of donations and NGO requests.
var Cities = []string{
	"Mumbai", "Delhi", "Bangalore", "Hyderabad", "Chennai",
	"Kolkata", "Pune", "Ahmedabad", "Jaipur", "Other",
}

// Donation represents a surplus-food listing submitted by a donor.
// swagger:model Donation
type Donation struct {
	ID            int64          `json:"id"`
	DonorName     string         `json:"donorName"`
	ContactNumber string         `json:"contactNumber"`
	FoodType      FoodType       `json:"foodType"`
	Quantity      string         `json:"quantity"`
	City          string         `json:"city"`
	Area          *string        `json:"area"`
	IsFresh       bool           `json:"isFresh"`
	Status        DonationStatus `json:"status"`
	SafeUntil     *time.Time     `json:"safeUntil"`
	CreatedAt     time.Time      `json:"createdAt"`
}

// NewDonation builds an available donation from validated input. SafeUntil is
// derived from the food type and createdAt. ID is set by the repository on create.
func NewDonation(in DonationInput, createdAt time.Time) *Donation {
	return &Donation{
		DonorName:     in.DonorName,
		ContactNumber: in.ContactNumber,
		FoodType:      FoodType(in.FoodType),
		Quantity:      in.Quantity,
		City:          in.City,
		Area:          in.Area,
		IsFresh:       true,
		Status:        DonationStatusAvailable,
		SafeUntil:     SafeUntilFor(FoodType(in.FoodType), createdAt),
		CreatedAt:     createdAt,
	}
}

// SafeUntilFor returns the freshness deadline for food listed at createdAt.
// Packed food never expires and yields nil.
func SafeUntilFor(foodType FoodType, createdAt time.Time) *time.Time {
	if foodType != FoodTypeCooked {
		return nil
	}
	t := createdAt.Add(CookedSafetyWindow)
	return &t
}

// IsClaimable reports whether the donation is available and still safe at now.
func (d *Donation) IsClaimable(now time.Time) bool {
	if d.Status != DonationStatusAvailable {
		return false
	}
	return d.SafeUntil == nil || d.SafeUntil.After(now)
}

// DonationRepository defines storage for donations.
type DonationRepository interface {
	Create(ctx context.Context, donation *Donation) error
	// List returns every donation, newest first.
	List(ctx context.Context) ([]*Donation, error)
	// ListClaimable returns donations that are claimable at now, newest first.
	ListClaimable(ctx context.Context, now time.Time) ([]*Donation, error)
}

// DonationService defines the donation lifecycle.
type DonationService interface {
	CreateDonation(ctx context.Context, in DonationInput) (*Donation, error)
	ListDonations(ctx context.Context) ([]*Donation, error)
	ListInventory(ctx context.Context) ([]*Donation, error)
}
