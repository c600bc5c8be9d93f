package domain

import (
	"context"
	"time"
)

// NgoRequestStatusOpen is the only status an NGO request is created with.
const NgoRequestStatusOpen = "open"

// NgoRequest is a stated food requirement submitted by an NGO.
// swagger:model NgoRequest
type NgoRequest struct {
	ID            int64     `json:"id"`
	NgoName       string    `json:"ngoName"`
	ContactNumber string    `json:"contactNumber"`
	Requirements  string    `json:"requirements"`
	City          string    `json:"city"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NewNgoRequest returns an open NgoRequest from validated input. ID is set by the repository on create.
func NewNgoRequest(in NgoRequestInput, createdAt time.Time) *NgoRequest {
	return &NgoRequest{
		NgoName:       in.NgoName,
		ContactNumber: in.ContactNumber,
		Requirements:  in.Requirements,
		City:          in.City,
		Status:        NgoRequestStatusOpen,
		CreatedAt:     createdAt,
	}
}

// NgoRequestRepository defines storage for NGO requests
type NgoRequestRepository interface {
	Create(ctx context.Context, req *NgoRequest) error
	List(ctx context.Context) ([]*NgoRequest, error)
}

// NgoRequestService defines the business logic for NGO requests
type NgoRequestService interface {
	CreateNgoRequest(ctx context.Context, in NgoRequestInput) (*NgoRequest, error)
	ListNgoRequests(ctx context.Context) ([]*NgoRequest, error)
}
