// Package status stores client liveness pings; the frontend posts one
// on load.
package status

import (
	"context"
	"time"
)

// listLimit caps the status-check listing.
const listLimit = 1000

type Check struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

//go:generate mockgen -source=status.go -destination=mocks/repository.go -package=mocks

type Repository interface {
	Insert(ctx context.Context, c Check) error
	List(ctx context.Context, limit int) ([]Check, error)
}
