package converter

import (
	dto "quantlab_backend/internal/api/dto/preset"
	"quantlab_backend/internal/model"
)

func SaveRequestToPreset(req dto.SaveRequest, userID int) *model.Preset {
	return &model.Preset{
		UserID:   userID,
		Tutorial: req.Tutorial,
		Name:     req.Name,
		Numbers:  req.Params,
		Enums:    req.Options,
	}
}

func ToPresetResponse(preset model.Preset) dto.PresetResponse {
	return dto.PresetResponse{
		ID:        preset.ID,
		Tutorial:  preset.Tutorial,
		Name:      preset.Name,
		Params:    preset.Numbers,
		Options:   preset.Enums,
		CreatedAt: preset.CreatedAt,
	}
}

func ToPresetListResponse(presets []model.Preset) dto.ListResponse {
	result := make([]dto.PresetResponse, len(presets))
	for i, p := range presets {
		result[i] = ToPresetResponse(p)
	}
	return dto.ListResponse{Presets: result}
}
