package preset_repo

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"quantlab_backend/internal/model"
	"quantlab_backend/internal/repository"
)

const (
	table        = "presets"
	colID        = "preset_id"
	colUserID    = "user_id"
	colTutorial  = "tutorial"
	colName      = "name"
	colNumbers   = "numbers"
	colEnums     = "enums"
	colCreatedAt = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewPresetRepository(dbc *pgxpool.Pool) repository.PresetRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreatePreset - сохраняет пресет параметров. Параметры кладутся в jsonb
func (r *repo) CreatePreset(ctx context.Context, preset *model.Preset) error {
	numbers, err := json.Marshal(preset.Numbers)
	if err != nil {
		return fmt.Errorf("failed to marshal preset numbers: %w", err)
	}
	enums, err := json.Marshal(preset.Enums)
	if err != nil {
		return fmt.Errorf("failed to marshal preset enums: %w", err)
	}

	// Формируем запрос
	query := sq.Insert(table).
		Columns(colID, colUserID, colTutorial, colName, colNumbers, colEnums, colCreatedAt).
		Values(preset.ID, preset.UserID, preset.Tutorial, preset.Name, numbers, enums, preset.CreatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// GetPreset - возвращает пресет пользователя по ID
func (r *repo) GetPreset(ctx context.Context, userID int, presetID string) (*model.Preset, error) {
	// Формируем запрос
	query := sq.Select(colID, colUserID, colTutorial, colName, colNumbers, colEnums, colCreatedAt).
		From(table).
		Where(sq.Eq{colID: presetID, colUserID: userID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	row := r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...)
	return scanPreset(row)
}

// ListPresets - пресеты пользователя для туториала, свежие первыми
func (r *repo) ListPresets(ctx context.Context, userID int, tutorial string) ([]model.Preset, error) {
	// Формируем запрос
	query := sq.Select(colID, colUserID, colTutorial, colName, colNumbers, colEnums, colCreatedAt).
		From(table).
		Where(sq.Eq{colUserID: userID, colTutorial: tutorial}).
		OrderBy(colCreatedAt + " DESC").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var presets []model.Preset
	for rows.Next() {
		preset, err := scanPreset(rows)
		if err != nil {
			return nil, err
		}
		presets = append(presets, *preset)
	}

	return presets, rows.Err()
}

// DeletePreset - удаляет пресет пользователя
func (r *repo) DeletePreset(ctx context.Context, userID int, presetID string) error {
	// Формируем запрос
	query := sq.Delete(table).
		Where(sq.Eq{colID: presetID, colUserID: userID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// CountPresets - количество пресетов пользователя для туториала
func (r *repo) CountPresets(ctx context.Context, userID int, tutorial string) (int, error) {
	// Формируем запрос
	query := sq.Select("COUNT(*)").
		From(table).
		Where(sq.Eq{colUserID: userID, colTutorial: tutorial}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// DeleteOldestPreset - удаляет самый старый пресет пользователя для туториала
func (r *repo) DeleteOldestPreset(ctx context.Context, userID int, tutorial string) error {
	// Подзапрос с сортировкой: squirrel не умеет DELETE ... LIMIT
	sub := sq.Select(colID).
		From(table).
		Where(sq.Eq{colUserID: userID, colTutorial: tutorial}).
		OrderBy(colCreatedAt + " ASC").
		Limit(1)

	subStr, args, err := sub.ToSql()
	if err != nil {
		return err
	}

	query := sq.Delete(table).
		Where(colID+" IN ("+subStr+")", args...).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPreset(row rowScanner) (*model.Preset, error) {
	var (
		preset  model.Preset
		numbers []byte
		enums   []byte
	)

	err := row.Scan(&preset.ID, &preset.UserID, &preset.Tutorial, &preset.Name, &numbers, &enums, &preset.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(numbers, &preset.Numbers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal preset numbers: %w", err)
	}
	if err := json.Unmarshal(enums, &preset.Enums); err != nil {
		return nil, fmt.Errorf("failed to unmarshal preset enums: %w", err)
	}

	return &preset, nil
}
