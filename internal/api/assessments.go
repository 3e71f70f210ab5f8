package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/readyscope/readyscope/internal/engagement"
	"github.com/readyscope/readyscope/pkg/assessment"
	"github.com/readyscope/readyscope/pkg/scoring"
)

// submitRequest is the JSON body for POST /v1/assessments.
type submitRequest struct {
	Profile    assessment.Profile    `json:"profile"`
	Responses  []assessment.Response `json:"responses"`
	Assessor   string                `json:"assessor,omitempty"`
	Engagement string                `json:"engagement,omitempty"`
}

type submitResponse struct {
	AssessmentID string               `json:"assessment_id"`
	OrgID        string               `json:"org_id"`
	EngagementID string               `json:"engagement_id"`
	Result       *scoring.ScoreResult `json:"result"`
}

func (h *Handler) handleSubmitAssessment(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Profile.Name == "" {
		writeError(w, http.StatusBadRequest, "profile.name is required")
		return
	}
	if len(req.Responses) == 0 {
		writeError(w, http.StatusBadRequest, "responses are required")
		return
	}

	a := assessment.New(req.Profile, req.Responses)
	a.Assessor = req.Assessor

	result, err := h.engine.Score(a)
	if err != nil {
		var ve *scoring.ValidationError
		if errors.As(err, &ve) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "scoring failed: "+err.Error())
		return
	}

	ctx := r.Context()
	engagementName := req.Engagement
	if engagementName == "" {
		engagementName = "default"
	}

	orgID, engagementID, err := h.engagementSvc.EnsureOrgAndEngagement(
		ctx, req.Profile.Name, req.Profile.Industry, req.Profile.Size, engagementName)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to ensure org/engagement: "+err.Error())
		return
	}

	// Store the raw assessment and the scored result as blobs.
	assessData, err := json.Marshal(a)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to marshal assessment: "+err.Error())
		return
	}
	if err := h.storage.PutAssessment(ctx, orgID, a.ID, assessData); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to store assessment: "+err.Error())
		return
	}

	resultData, err := json.Marshal(result)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to marshal result: "+err.Error())
		return
	}
	if err := h.storage.PutReport(ctx, orgID, a.ID, resultData); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to store report: "+err.Error())
		return
	}

	breakdown, err := json.Marshal(result.Breakdown)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to marshal breakdown: "+err.Error())
		return
	}
	gaps, err := json.Marshal(scoring.AnalyzeGaps(result))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to marshal gaps: "+err.Error())
		return
	}

	if _, err := h.engagementSvc.InsertScore(ctx, &engagement.ScoreRow{
		OrgID:          orgID,
		EngagementID:   engagementID,
		AssessmentID:   a.ID,
		TotalScore:     result.Total,
		Band:           result.Band,
		Maturity:       result.Maturity.String(),
		TimelineMonths: result.TimelineMonths,
		Breakdown:      breakdown,
		Gaps:           gaps,
		StorageRef:     orgID + "/reports/" + a.ID,
	}); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to store score: "+err.Error())
		return
	}

	h.log.Info("assessment scored",
		zap.String("assessment_id", a.ID),
		zap.String("org", req.Profile.Name),
		zap.Float64("total", result.Total),
		zap.String("band", result.Band))

	writeJSON(w, http.StatusOK, submitResponse{
		AssessmentID: a.ID,
		OrgID:        orgID,
		EngagementID: engagementID,
		Result:       result,
	})
}

func (h *Handler) handleGetAssessment(w http.ResponseWriter, r *http.Request) {
	assessmentID := r.PathValue("assessmentID")

	row, err := h.engagementSvc.GetScoreByAssessment(r.Context(), assessmentID)
	if err != nil {
		writeError(w, http.StatusNotFound, "assessment not found: "+assessmentID)
		return
	}

	data, err := h.storage.GetAssessment(r.Context(), row.OrgID, assessmentID)
	if err != nil {
		writeError(w, http.StatusNotFound, "assessment blob not found: "+assessmentID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

func (h *Handler) handleGetReport(w http.ResponseWriter, r *http.Request) {
	assessmentID := r.PathValue("assessmentID")

	row, err := h.engagementSvc.GetScoreByAssessment(r.Context(), assessmentID)
	if err != nil {
		writeError(w, http.StatusNotFound, "assessment not found: "+assessmentID)
		return
	}

	data, err := h.storage.GetReport(r.Context(), row.OrgID, assessmentID)
	if err != nil {
		writeError(w, http.StatusNotFound, "report not found: "+assessmentID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

func (h *Handler) handleListEngagements(w http.ResponseWriter, r *http.Request) {
	engagements, err := h.engagementSvc.ListAllEngagements(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list engagements: "+err.Error())
		return
	}
	if engagements == nil {
		engagements = []engagement.Engagement{}
	}
	writeJSON(w, http.StatusOK, engagements)
}
