package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"mamaeEmFormaAPI/internal/progress"
	"mamaeEmFormaAPI/middleware"
	"mamaeEmFormaAPI/services"
)

type CatalogHandler struct {
	catalogService  *services.CatalogService
	progressService *services.ProgressService
}

func NewCatalogHandler(catalogService *services.CatalogService, progressService *services.ProgressService) *CatalogHandler {
	return &CatalogHandler{
		catalogService:  catalogService,
		progressService: progressService,
	}
}

// GET /api/v1/exercises?birthType=normal|cesarea
// Without the query parameter the user's stored birth type is used.
func (h *CatalogHandler) GetExercises(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var birthType *progress.BirthType
	if q := r.URL.Query().Get("birthType"); q != "" {
		bt := progress.BirthType(q)
		if !bt.Valid() {
			respondWithError(w, http.StatusBadRequest, "birthType must be normal or cesarea")
			return
		}
		birthType = &bt
	} else {
		p, err := h.progressService.FetchProgress(ctx, userID)
		if err != nil {
			respondWithServiceError(w, "fetch exercises", err)
			return
		}
		birthType = p.BirthType
	}

	respondWithJSON(w, http.StatusOK, h.catalogService.Exercises(birthType))
}

// GET /api/v1/shopping - Shopping list with the user's check marks
func (h *CatalogHandler) GetShoppingList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	p, err := h.progressService.FetchProgress(ctx, userID)
	if err != nil {
		respondWithServiceError(w, "fetch shopping list", err)
		return
	}

	respondWithJSON(w, http.StatusOK, h.catalogService.ShoppingCategories(p.CheckedShoppingItems))
}

// GET /api/v1/meals?day=seg
func (h *CatalogHandler) GetMeals(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.catalogService.Meals(r.URL.Query().Get("day")))
}

// GET /api/v1/videos
func (h *CatalogHandler) GetVideos(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.catalogService.Videos())
}

// GET /api/v1/faqs
func (h *CatalogHandler) GetFAQs(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.catalogService.FAQs())
}

// GET /api/v1/quote/{day}
func (h *CatalogHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	day, err := strconv.Atoi(mux.Vars(r)["day"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid day")
		return
	}

	respondWithJSON(w, http.StatusOK, h.catalogService.QuoteForDay(day))
}
