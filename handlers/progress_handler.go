package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"mamaeEmFormaAPI/internal/progress"
	"mamaeEmFormaAPI/middleware"
	"mamaeEmFormaAPI/services"
)

type ProgressHandler struct {
	progressService *services.ProgressService
}

func NewProgressHandler(progressService *services.ProgressService) *ProgressHandler {
	return &ProgressHandler{
		progressService: progressService,
	}
}

type toggleFunc func(ctx context.Context, userID, itemID string) (*progress.UserProgress, error)

// GET /api/v1/progress - Current progress, rolled over to today
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	p, err := h.progressService.FetchProgress(ctx, userID)
	if err != nil {
		respondWithServiceError(w, "fetch progress", err)
		return
	}

	respondWithJSON(w, http.StatusOK, p)
}

// PATCH /api/v1/progress - Partial overwrite
func (h *ProgressHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var update progress.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validateUpdate(update); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.progressService.UpdateProgress(ctx, userID, update)
	if err != nil {
		respondWithServiceError(w, "update progress", err)
		return
	}

	respondWithJSON(w, http.StatusOK, p)
}

func validateUpdate(u progress.Update) error {
	if u.CurrentDay != nil && (*u.CurrentDay < 1 || *u.CurrentDay > progress.ProgramDays) {
		return fmt.Errorf("currentDay must be between 1 and %d", progress.ProgramDays)
	}
	if u.Streak != nil && *u.Streak < 1 {
		return fmt.Errorf("streak must be at least 1")
	}
	if u.DiastasisResult.Value != nil && *u.DiastasisResult.Value < 0 {
		return fmt.Errorf("diastasisResult must not be negative")
	}
	if u.BirthType.Value != nil && !u.BirthType.Value.Valid() {
		return fmt.Errorf("birthType must be normal or cesarea")
	}
	return nil
}

func (h *ProgressHandler) toggle(w http.ResponseWriter, r *http.Request, op string, fn toggleFunc) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	itemID := strings.TrimSpace(mux.Vars(r)["id"])
	if itemID == "" {
		respondWithError(w, http.StatusBadRequest, "Missing item ID")
		return
	}

	p, err := fn(ctx, userID, itemID)
	if err != nil {
		respondWithServiceError(w, op, err)
		return
	}

	respondWithJSON(w, http.StatusOK, p)
}

// POST /api/v1/progress/exercise/{id}/toggle
func (h *ProgressHandler) ToggleExercise(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, "toggle exercise", h.progressService.ToggleExercise)
}

// POST /api/v1/progress/recipe/{id}/toggle
func (h *ProgressHandler) ToggleFavoriteRecipe(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, "toggle recipe", h.progressService.ToggleFavoriteRecipe)
}

// POST /api/v1/progress/shopping/{id}/toggle
func (h *ProgressHandler) ToggleShoppingItem(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, "toggle shopping item", h.progressService.ToggleShoppingItem)
}

// POST /api/v1/progress/video/{id}/toggle
func (h *ProgressHandler) ToggleVideoWatched(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, "toggle video", h.progressService.ToggleVideoWatched)
}

// POST /api/v1/progress/diastasis - {"result": 2} or {"result": null}
func (h *ProgressHandler) SetDiastasisResult(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req struct {
		Result *int `json:"result"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Result != nil && *req.Result < 0 {
		respondWithError(w, http.StatusBadRequest, "result must not be negative")
		return
	}

	p, err := h.progressService.SetDiastasisResult(ctx, userID, req.Result)
	if err != nil {
		respondWithServiceError(w, "set diastasis result", err)
		return
	}

	respondWithJSON(w, http.StatusOK, p)
}

// POST /api/v1/progress/birth-type - {"type": "normal"|"cesarea"|null}
func (h *ProgressHandler) SetBirthType(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req struct {
		Type *progress.BirthType `json:"type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Type != nil && !req.Type.Valid() {
		respondWithError(w, http.StatusBadRequest, "type must be normal or cesarea")
		return
	}

	p, err := h.progressService.SetBirthType(ctx, userID, req.Type)
	if err != nil {
		respondWithServiceError(w, "set birth type", err)
		return
	}

	respondWithJSON(w, http.StatusOK, p)
}

// POST /api/v1/progress/advance-day
func (h *ProgressHandler) AdvanceDay(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	p, err := h.progressService.AdvanceDay(ctx, userID)
	if err != nil {
		respondWithServiceError(w, "advance day", err)
		return
	}

	respondWithJSON(w, http.StatusOK, p)
}

// POST /api/v1/progress/reset-cycle
func (h *ProgressHandler) ResetCycle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	p, err := h.progressService.ResetCycle(ctx, userID)
	if err != nil {
		respondWithServiceError(w, "reset cycle", err)
		return
	}

	respondWithJSON(w, http.StatusOK, p)
}
