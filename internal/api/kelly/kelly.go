package kelly

import (
	"log"
	"net/http"

	dto "quantlab_backend/internal/api/dto/kelly"
	"quantlab_backend/internal/converter"
	"quantlab_backend/internal/service"
	"quantlab_backend/pkg/req"
	"quantlab_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.KellyService
}

type Handler struct {
	serv service.KellyService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Calculate - расчет туториала по критерию Келли
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.CalculateRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.Calculate(converter.ToKellyCalcRequest(payload))
	if err != nil {
		log.Println("kelly calculate error:", err)
		http.Error(w, "calculation failed", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToKellyResponse(*result))
}
