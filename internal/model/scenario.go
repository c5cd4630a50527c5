// Package model defines domain types shared by the runway CLI surfaces.
package model

import (
	"time"

	"github.com/theledgerdev/runway/internal/engine"
)

// Scenario is a named, saved set of simulation parameters.
type Scenario struct {
	Name   string
	Params engine.SimulationParams

	// NetRevenueRetention is an optional growth signal attached to the
	// scenario; nil when the user has not supplied one.
	NetRevenueRetention *float64

	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
