package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/volunteer-manager/pkg/core/model"
	"github.com/jakechorley/volunteer-manager/pkg/db"
)

// LoadModel builds the model from the latest saved snapshot.
// Nothing saved yet, or saved data that fails validation, gives an empty model; the latter is
// logged as a warning and the invalid data is replaced on the next save.
// Errors reading the store are returned.
func LoadModel(ctx context.Context, store db.SnapshotStore, prefs model.UserPrefs, logger *zap.Logger) (*model.Model, error) {
	logger.Debug("Loading saved data")

	snapshot, err := store.LoadSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load saved data: %w", err)
	}

	if snapshot == nil {
		logger.Info("No saved data found, starting with empty lists")
		return model.NewEmptyModel(prefs), nil
	}

	m, err := snapshot.ToModel(prefs)
	if err != nil {
		logger.Warn("Saved data is not in the correct format, starting with empty lists",
			zap.String("snapshot_id", snapshot.ID),
			zap.Error(err))
		return model.NewEmptyModel(prefs), nil
	}

	logger.Debug("Loaded saved data",
		zap.String("snapshot_id", snapshot.ID),
		zap.Time("saved_at", snapshot.SavedAt),
		zap.Int("volunteers", len(snapshot.Volunteers)),
		zap.Int("events", len(snapshot.Events)))

	return m, nil
}
