package tutorial

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	dto "quantlab_backend/internal/api/dto/tutorial"
	"quantlab_backend/internal/converter"
	"quantlab_backend/internal/service"
	"quantlab_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.TutorialService
}

type Handler struct {
	serv service.TutorialService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// List - имена доступных туториалов
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, dto.ListResponse{Tutorials: h.serv.List()})
}

// Defaults - декларации параметров туториала для построения слайдеров
func (h *Handler) Defaults(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	info, err := h.serv.Defaults(name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTutorialDefaultsResponse(*info))
}
