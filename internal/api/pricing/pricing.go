package pricing

import (
	"log"
	"net/http"

	dto "quantlab_backend/internal/api/dto/pricing"
	"quantlab_backend/internal/converter"
	"quantlab_backend/internal/service"
	"quantlab_backend/pkg/req"
	"quantlab_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.PricingService
}

type Handler struct {
	serv service.PricingService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Calculate - расчет туториала по ценообразованию опционов
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.CalculateRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.Calculate(converter.ToPricingCalcRequest(payload))
	if err != nil {
		log.Println("pricing calculate error:", err)
		http.Error(w, "calculation failed", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPricingResponse(*result))
}
