package preset

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	dto "quantlab_backend/internal/api/dto/preset"
	"quantlab_backend/internal/converter"
	"quantlab_backend/internal/middleware"
	"quantlab_backend/internal/service"
	"quantlab_backend/pkg/req"
	"quantlab_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.PresetService
}

type Handler struct {
	serv service.PresetService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Save сохраняет пресет параметров текущего пользователя
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	payload, err := req.Decode[dto.SaveRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	saved, err := h.serv.Save(r.Context(), converter.SaveRequestToPreset(payload, userID))
	if err != nil {
		log.Println("preset save error:", err)
		http.Error(w, "failed to save preset", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToPresetResponse(*saved))
}

// List - пресеты пользователя для туториала из query-параметра tutorial
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	tutorial := r.URL.Query().Get("tutorial")
	if tutorial == "" {
		http.Error(w, "tutorial query param is required", http.StatusBadRequest)
		return
	}

	presets, err := h.serv.List(r.Context(), userID, tutorial)
	if err != nil {
		log.Println("preset list error:", err)
		http.Error(w, "failed to list presets", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPresetListResponse(presets))
}

// Get - пресет по ID
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	preset, err := h.serv.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "preset not found", http.StatusNotFound)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPresetResponse(*preset))
}

// Delete удаляет пресет по ID
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	err := h.serv.Delete(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		log.Println("preset delete error:", err)
		http.Error(w, "failed to delete preset", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
