package spectral

import (
	"log"
	"net/http"

	dto "quantlab_backend/internal/api/dto/spectral"
	"quantlab_backend/internal/converter"
	"quantlab_backend/internal/service"
	"quantlab_backend/pkg/req"
	"quantlab_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.SpectralService
}

type Handler struct {
	serv service.SpectralService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Calculate - синтез ряда и оценка спектра
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.CalculateRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.Calculate(converter.ToSpectralCalcRequest(payload))
	if err != nil {
		log.Println("spectral calculate error:", err)
		http.Error(w, "calculation failed", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpectralResponse(*result))
}

// Nyquist - автономная проверка частот на алиасинг
func (h *Handler) Nyquist(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.NyquistRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.Nyquist(converter.ToNyquistRequest(payload))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToNyquistInfo(result))
}
