package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"flight-recovery-service/internal/domain/entity"
	"flight-recovery-service/pkg/logger"
)

// Recoverer resolves recovery requests
type Recoverer interface {
	Recover(ctx context.Context, pnr, lastName string) (*entity.RecoveryEnvelope, error)
}

// ProfileChecker answers eligibility and profile questions
type ProfileChecker interface {
	CheckEligibility(ctx context.Context, lastName, emailOrPhone string) (entity.EligibilityResult, error)
	CheckBatch(ctx context.Context, requests []entity.EligibilityRequest) ([]entity.BatchEligibilityResult, error)
	FindProfile(ctx context.Context, lastName, emailOrPhone string) (entity.ProfileLookupResult, error)
	CompleteInfo(ctx context.Context, lastName, emailOrPhone string) (entity.CompleteUserInfo, error)
}

// RecoveryRequest is the body of POST /api/recover
type RecoveryRequest struct {
	PNR      string `json:"pnr"`
	LastName string `json:"last_name"`
}

// BatchEligibilityRequest is the body of POST /api/eligibility/batch
type BatchEligibilityRequest struct {
	Users []entity.EligibilityRequest `json:"users"`
}

// RecoveryHandler contains HTTP handlers for the recovery API
type RecoveryHandler struct {
	recoverer Recoverer
	profiles  ProfileChecker
	logger    logger.Logger
}

// NewRecoveryHandler creates a new RecoveryHandler
func NewRecoveryHandler(recoverer Recoverer, profiles ProfileChecker, logger logger.Logger) *RecoveryHandler {
	return &RecoveryHandler{
		recoverer: recoverer,
		profiles:  profiles,
		logger:    logger,
	}
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// Recover handles POST /api/recover. Every terminal envelope, including
// validation and not-found outcomes, is a 200; only data source failures are 5xx.
func (h *RecoveryHandler) Recover(w http.ResponseWriter, r *http.Request) {
	var req RecoveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	envelope, err := h.recoverer.Recover(r.Context(), req.PNR, req.LastName)
	if err != nil {
		h.logger.Error("Recovery request failed", "pnr", req.PNR, "error", err)
		respondError(w, http.StatusBadGateway, "Recovery data source unavailable")
		return
	}

	respondJSON(w, http.StatusOK, envelope)
}

// CheckEligibility handles POST /api/eligibility
func (h *RecoveryHandler) CheckEligibility(w http.ResponseWriter, r *http.Request) {
	var req entity.EligibilityRequest
	if !h.decodePassenger(w, r, &req) {
		return
	}

	result, err := h.profiles.CheckEligibility(r.Context(), req.LastName, req.EmailOrPhone)
	if err != nil {
		h.logger.Error("Eligibility check failed", "error", err)
		respondError(w, http.StatusBadGateway, "Profile store unavailable")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// CheckBatch handles POST /api/eligibility/batch
func (h *RecoveryHandler) CheckBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchEligibilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	results, err := h.profiles.CheckBatch(r.Context(), req.Users)
	if err != nil {
		h.logger.Error("Batch eligibility check failed", "error", err)
		respondError(w, http.StatusBadGateway, "Profile store unavailable")
		return
	}

	respondJSON(w, http.StatusOK, results)
}

// FindProfile handles POST /api/profile
func (h *RecoveryHandler) FindProfile(w http.ResponseWriter, r *http.Request) {
	var req entity.EligibilityRequest
	if !h.decodePassenger(w, r, &req) {
		return
	}

	result, err := h.profiles.FindProfile(r.Context(), req.LastName, req.EmailOrPhone)
	if err != nil {
		h.logger.Error("Profile lookup failed", "error", err)
		respondError(w, http.StatusBadGateway, "Profile store unavailable")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// CompleteInfo handles POST /api/profile/complete
func (h *RecoveryHandler) CompleteInfo(w http.ResponseWriter, r *http.Request) {
	var req entity.EligibilityRequest
	if !h.decodePassenger(w, r, &req) {
		return
	}

	result, err := h.profiles.CompleteInfo(r.Context(), req.LastName, req.EmailOrPhone)
	if err != nil {
		h.logger.Error("Complete info lookup failed", "error", err)
		respondError(w, http.StatusBadGateway, "Profile store unavailable")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// decodePassenger reads a passenger identity and requires both fields
func (h *RecoveryHandler) decodePassenger(w http.ResponseWriter, r *http.Request, req *entity.EligibilityRequest) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if req.LastName == "" || req.EmailOrPhone == "" {
		respondError(w, http.StatusBadRequest, "Both last_name and email_or_phone are required")
		return false
	}
	return true
}
