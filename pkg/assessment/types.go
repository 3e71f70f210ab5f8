// Package assessment defines the core data model for Readyscope.
// These types are the shared vocabulary across all modules.
package assessment

import (
	"time"

	"github.com/google/uuid"
)

// Dimension is a named readiness dimension with a strategic weight.
// The weights of a dimension set sum to 1.0.
type Dimension struct {
	Key    string         `json:"key" yaml:"key"`       // machine key: "data_maturity"
	Name   string         `json:"name" yaml:"name"`     // human name: "Data maturity"
	Weight float64        `json:"weight" yaml:"weight"` // 0-1, catalog weights sum to 1
	Guide  map[int]string `json:"guide,omitempty" yaml:"guide,omitempty"`
}

// Response is a single assessor answer for one dimension.
type Response struct {
	Dimension string `json:"dimension" yaml:"dimension"` // dimension key
	Rating    int    `json:"rating" yaml:"rating"`       // 1-5 maturity rating
	Notes     string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Profile describes the organization being assessed.
type Profile struct {
	Name     string `json:"name" yaml:"name"`
	Industry string `json:"industry,omitempty" yaml:"industry,omitempty"`
	Size     string `json:"size,omitempty" yaml:"size,omitempty"` // small, medium, large, enterprise
}

// Assessment is a recorded set of responses for an organization.
// Immutable once recorded.
type Assessment struct {
	ID         string     `json:"id" yaml:"id"`
	Profile    Profile    `json:"profile" yaml:"profile"`
	Responses  []Response `json:"responses" yaml:"responses"`
	AssessedAt time.Time  `json:"assessed_at" yaml:"assessed_at"`
	Assessor   string     `json:"assessor,omitempty" yaml:"assessor,omitempty"`
}

// New creates an assessment with a fresh ID and timestamp.
func New(profile Profile, responses []Response) *Assessment {
	return &Assessment{
		ID:         uuid.New().String(),
		Profile:    profile,
		Responses:  responses,
		AssessedAt: time.Now().UTC(),
	}
}

// Rating returns the recorded rating for a dimension key, or 0 if absent.
func (a *Assessment) Rating(dimensionKey string) int {
	for _, r := range a.Responses {
		if r.Dimension == dimensionKey {
			return r.Rating
		}
	}
	return 0
}

// ResponseMap indexes responses by dimension key.
func (a *Assessment) ResponseMap() map[string]Response {
	m := make(map[string]Response, len(a.Responses))
	for _, r := range a.Responses {
		m[r.Dimension] = r
	}
	return m
}
