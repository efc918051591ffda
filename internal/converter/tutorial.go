package converter

import (
	dto "quantlab_backend/internal/api/dto/tutorial"
	"quantlab_backend/internal/model"
)

func ToTutorialDefaultsResponse(info model.TutorialInfo) dto.DefaultsResponse {
	res := dto.DefaultsResponse{
		Name:    info.Name,
		Numbers: make(map[string]dto.NumberParam, len(info.Numbers)),
		Enums:   make(map[string]dto.EnumParam, len(info.Enums)),
	}
	for key, p := range info.Numbers {
		res.Numbers[key] = dto.NumberParam(p)
	}
	for key, p := range info.Enums {
		res.Enums[key] = dto.EnumParam(p)
	}
	return res
}
