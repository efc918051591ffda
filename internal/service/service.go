package service

import (
	"context"

	"quantlab_backend/internal/model"
	"quantlab_backend/internal/quant/spectral"
)

type PricingService interface {
	Calculate(req model.CalcRequest) (*model.PricingResult, error)
}

type SpectralService interface {
	Calculate(req model.CalcRequest) (*model.SpectralResult, error)
	Nyquist(req model.NyquistRequest) (spectral.NyquistResult, error)
}

type KellyService interface {
	Calculate(req model.CalcRequest) (*model.KellyResult, error)
}

type VWAPService interface {
	Calculate(req model.CalcRequest) (*model.VWAPResult, error)
}

type TutorialService interface {
	List() []string
	Defaults(name string) (*model.TutorialInfo, error)
}

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, login, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, sessionID, refreshToken string) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}

type PresetService interface {
	Save(ctx context.Context, preset *model.Preset) (*model.Preset, error)
	Get(ctx context.Context, userID int, presetID string) (*model.Preset, error)
	List(ctx context.Context, userID int, tutorial string) ([]model.Preset, error)
	Delete(ctx context.Context, userID int, presetID string) error
}
