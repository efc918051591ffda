package preset

import (
	"context"
	"errors"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"

	"quantlab_backend/internal/model"
	"quantlab_backend/internal/repository"
	"quantlab_backend/internal/service"
)

// Лимит пресетов на пользователя в рамках одного туториала
const maxPresetsPerTutorial = 20

type serv struct {
	repo      repository.PresetRepository
	txManager trm.Manager
}

func NewPresetService(repo repository.PresetRepository, txManager trm.Manager) service.PresetService {
	return &serv{
		repo:      repo,
		txManager: txManager,
	}
}

// Save сохраняет пресет. При переполнении лимита вытесняется самый старый.
// Подсчет и вытеснение идут в одной транзакции с записью
func (s *serv) Save(ctx context.Context, preset *model.Preset) (*model.Preset, error) {
	if preset.Name == "" {
		return nil, errors.New("preset name is empty")
	}
	if preset.Tutorial == "" {
		return nil, errors.New("preset tutorial is empty")
	}

	preset.ID = uuid.NewString()
	preset.CreatedAt = time.Now()

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		count, err := s.repo.CountPresets(ctx, preset.UserID, preset.Tutorial)
		if err != nil {
			return err
		}

		if count >= maxPresetsPerTutorial {
			if err := s.repo.DeleteOldestPreset(ctx, preset.UserID, preset.Tutorial); err != nil {
				return err
			}
		}

		return s.repo.CreatePreset(ctx, preset)
	})
	if err != nil {
		return nil, err
	}

	return preset, nil
}

func (s *serv) Get(ctx context.Context, userID int, presetID string) (*model.Preset, error) {
	return s.repo.GetPreset(ctx, userID, presetID)
}

func (s *serv) List(ctx context.Context, userID int, tutorial string) ([]model.Preset, error) {
	return s.repo.ListPresets(ctx, userID, tutorial)
}

func (s *serv) Delete(ctx context.Context, userID int, presetID string) error {
	return s.repo.DeletePreset(ctx, userID, presetID)
}
