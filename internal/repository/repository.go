package repository

import (
	"context"

	"quantlab_backend/internal/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}

type PresetRepository interface {
	CreatePreset(ctx context.Context, preset *model.Preset) error
	GetPreset(ctx context.Context, userID int, presetID string) (*model.Preset, error)
	ListPresets(ctx context.Context, userID int, tutorial string) ([]model.Preset, error)
	DeletePreset(ctx context.Context, userID int, presetID string) error
	CountPresets(ctx context.Context, userID int, tutorial string) (int, error)
	DeleteOldestPreset(ctx context.Context, userID int, tutorial string) error
}
