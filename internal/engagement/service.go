// Package engagement manages consulting engagement state: client
// organizations, their engagements, and stored assessment scores.
package engagement

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Service provides organization and engagement management backed by Postgres.
type Service struct {
	db *sql.DB
}

// Organization represents a client organization.
type Organization struct {
	ID        string
	Name      string
	Industry  *string
	Size      *string
	CreatedAt time.Time
}

// Engagement represents one consulting engagement with an organization.
type Engagement struct {
	ID        string
	OrgID     string
	Name      string
	Status    string
	CreatedAt time.Time
}

// NewService creates a new engagement Service.
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// CreateOrganization creates a new client organization.
func (s *Service) CreateOrganization(ctx context.Context, name, industry, size string) (*Organization, error) {
	o := &Organization{}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO organizations (name, industry, org_size)
		 VALUES ($1, NULLIF($2, ''), NULLIF($3, ''))
		 RETURNING id, name, industry, org_size, created_at`,
		name, industry, size,
	).Scan(&o.ID, &o.Name, &o.Industry, &o.Size, &o.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create organization: %w", err)
	}
	return o, nil
}

// GetOrganizationByName looks up an organization by name.
func (s *Service) GetOrganizationByName(ctx context.Context, name string) (*Organization, error) {
	o := &Organization{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, industry, org_size, created_at
		 FROM organizations WHERE name = $1`,
		name,
	).Scan(&o.ID, &o.Name, &o.Industry, &o.Size, &o.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get organization by name %s: %w", name, err)
	}
	return o, nil
}

// UpsertEngagement creates or updates an engagement for an organization.
func (s *Service) UpsertEngagement(ctx context.Context, orgID, name string) (*Engagement, error) {
	e := &Engagement{}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO engagements (org_id, name, status)
		 VALUES ($1, $2, 'active')
		 ON CONFLICT (org_id, name) DO UPDATE
		   SET status = engagements.status
		 RETURNING id, org_id, name, status, created_at`,
		orgID, name,
	).Scan(&e.ID, &e.OrgID, &e.Name, &e.Status, &e.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert engagement %s: %w", name, err)
	}
	return e, nil
}

// ListEngagements returns all engagements for an organization.
func (s *Service) ListEngagements(ctx context.Context, orgID string) ([]Engagement, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, org_id, name, status, created_at
		 FROM engagements WHERE org_id = $1 ORDER BY name`,
		orgID,
	)
	if err != nil {
		return nil, fmt.Errorf("list engagements: %w", err)
	}
	defer rows.Close()

	var engagements []Engagement
	for rows.Next() {
		var e Engagement
		if err := rows.Scan(&e.ID, &e.OrgID, &e.Name, &e.Status, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan engagement: %w", err)
		}
		engagements = append(engagements, e)
	}
	return engagements, rows.Err()
}

// ListAllEngagements returns all engagements across all organizations.
func (s *Service) ListAllEngagements(ctx context.Context) ([]Engagement, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, org_id, name, status, created_at
		 FROM engagements ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list all engagements: %w", err)
	}
	defer rows.Close()

	var engagements []Engagement
	for rows.Next() {
		var e Engagement
		if err := rows.Scan(&e.ID, &e.OrgID, &e.Name, &e.Status, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan engagement: %w", err)
		}
		engagements = append(engagements, e)
	}
	return engagements, rows.Err()
}

// EnsureOrgAndEngagement gets or creates an organization (by name) and an
// engagement under it. Returns orgID, engagementID, and any error.
func (s *Service) EnsureOrgAndEngagement(ctx context.Context, orgName, industry, size, engagementName string) (string, string, error) {
	o, err := s.GetOrganizationByName(ctx, orgName)
	if err != nil {
		o, err = s.CreateOrganization(ctx, orgName, industry, size)
		if err != nil {
			// Could be a race condition; try getting again
			if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "unique") {
				o, err = s.GetOrganizationByName(ctx, orgName)
				if err != nil {
					return "", "", fmt.Errorf("ensure organization: %w", err)
				}
			} else {
				return "", "", fmt.Errorf("ensure organization: %w", err)
			}
		}
	}

	e, err := s.UpsertEngagement(ctx, o.ID, engagementName)
	if err != nil {
		return "", "", fmt.Errorf("ensure engagement: %w", err)
	}

	return o.ID, e.ID, nil
}

// ScoreRow represents a stored assessment score record.
type ScoreRow struct {
	ID             string
	OrgID          string
	EngagementID   string
	AssessmentID   string
	TotalScore     float64
	Band           string
	Maturity       string
	TimelineMonths int
	Breakdown      json.RawMessage
	Gaps           json.RawMessage
	StorageRef     string
	CreatedAt      time.Time
}

// InsertScore stores a score record for an engagement.
func (s *Service) InsertScore(ctx context.Context, row *ScoreRow) (*ScoreRow, error) {
	out := &ScoreRow{}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO scores (org_id, engagement_id, assessment_id, total_score,
		                     band, maturity, timeline_months, breakdown, gaps, storage_ref)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, org_id, engagement_id, assessment_id, total_score,
		           band, maturity, timeline_months, breakdown, gaps, storage_ref, created_at`,
		row.OrgID, row.EngagementID, row.AssessmentID, row.TotalScore,
		row.Band, row.Maturity, row.TimelineMonths, row.Breakdown, row.Gaps, row.StorageRef,
	).Scan(
		&out.ID, &out.OrgID, &out.EngagementID, &out.AssessmentID, &out.TotalScore,
		&out.Band, &out.Maturity, &out.TimelineMonths, &out.Breakdown, &out.Gaps, &out.StorageRef, &out.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert score: %w", err)
	}
	return out, nil
}

// ListScoresByEngagement returns all scores for an engagement, newest first.
func (s *Service) ListScoresByEngagement(ctx context.Context, engagementID string) ([]ScoreRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, org_id, engagement_id, assessment_id, total_score,
		        band, maturity, timeline_months, breakdown, gaps, storage_ref, created_at
		 FROM scores WHERE engagement_id = $1 ORDER BY created_at DESC`,
		engagementID,
	)
	if err != nil {
		return nil, fmt.Errorf("list scores: %w", err)
	}
	defer rows.Close()

	var scores []ScoreRow
	for rows.Next() {
		var sc ScoreRow
		if err := rows.Scan(
			&sc.ID, &sc.OrgID, &sc.EngagementID, &sc.AssessmentID, &sc.TotalScore,
			&sc.Band, &sc.Maturity, &sc.TimelineMonths, &sc.Breakdown, &sc.Gaps, &sc.StorageRef, &sc.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		scores = append(scores, sc)
	}
	return scores, rows.Err()
}

// GetScoreByAssessment returns the score record for an assessment ID.
func (s *Service) GetScoreByAssessment(ctx context.Context, assessmentID string) (*ScoreRow, error) {
	sc := &ScoreRow{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, org_id, engagement_id, assessment_id, total_score,
		        band, maturity, timeline_months, breakdown, gaps, storage_ref, created_at
		 FROM scores WHERE assessment_id = $1
		 ORDER BY created_at DESC LIMIT 1`,
		assessmentID,
	).Scan(
		&sc.ID, &sc.OrgID, &sc.EngagementID, &sc.AssessmentID, &sc.TotalScore,
		&sc.Band, &sc.Maturity, &sc.TimelineMonths, &sc.Breakdown, &sc.Gaps, &sc.StorageRef, &sc.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("get score for assessment %s: %w", assessmentID, err)
	}
	return sc, nil
}
