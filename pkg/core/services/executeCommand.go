package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/volunteer-manager/pkg/core/commands"
	"github.com/jakechorley/volunteer-manager/pkg/core/model"
	"github.com/jakechorley/volunteer-manager/pkg/core/parser"
	"github.com/jakechorley/volunteer-manager/pkg/db"
)

// ErrSave is returned when a command succeeded but the result could not be saved
var ErrSave = errors.New("could not save data")

// ExecuteCommand parses and runs one line of command text against m.
// After a successful command that changes the lists, the whole model is saved to store.
// If that save fails the change stays in m and the returned error wraps ErrSave.
func ExecuteCommand(ctx context.Context, store db.SnapshotStore, m *model.Model, logger *zap.Logger, text string) (commands.Result, error) {
	logger.Debug("Executing command", zap.String("text", text))

	cmd, err := parser.Parse(text)
	if err != nil {
		logger.Debug("Failed to parse command", zap.Error(err))
		return commands.Result{}, err
	}

	result, err := cmd.Execute(m)
	if err != nil {
		logger.Debug("Command failed", zap.String("command", fmt.Sprintf("%T", cmd)), zap.Error(err))
		return commands.Result{}, err
	}

	if !commands.Mutates(cmd) {
		return result, nil
	}

	snapshot := db.FromModel(m)
	if err := store.SaveSnapshot(ctx, snapshot); err != nil {
		return result, fmt.Errorf("%w: %w", ErrSave, err)
	}

	logger.Debug("Saved data",
		zap.String("snapshot_id", snapshot.ID),
		zap.Int("volunteers", len(snapshot.Volunteers)),
		zap.Int("events", len(snapshot.Events)))

	return result, nil
}
