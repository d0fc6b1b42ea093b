package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/volunteer-manager/internal/config"
	"github.com/jakechorley/volunteer-manager/pkg/clients/sheetsclient"
	"github.com/jakechorley/volunteer-manager/pkg/core/model"
	"github.com/jakechorley/volunteer-manager/pkg/db"
)

// RosterReader defines the sheets operation needed to import volunteers
type RosterReader interface {
	ReadRoster(spreadsheetID, tab string) ([]sheetsclient.RosterRow, error)
}

// RowError describes a roster row that could not be imported
type RowError struct {
	Row     int
	Name    string
	Message string
}

// ImportResult summarises a roster import
type ImportResult struct {
	Added      []string
	Duplicates []string
	Invalid    []RowError
}

// ImportVolunteers adds every valid roster volunteer that is not already in m.
// Rows are validated like vcreate input; invalid rows and volunteers already present are
// reported rather than failing the import. The model is saved once if anything was added.
func ImportVolunteers(
	ctx context.Context,
	store db.SnapshotStore,
	m *model.Model,
	roster RosterReader,
	cfg *config.Config,
	logger *zap.Logger,
) (*ImportResult, error) {
	if cfg.Sheets.RosterSheetID == "" || cfg.Sheets.RosterTab == "" {
		return nil, fmt.Errorf("roster sheet is not configured: set sheets.rosterSheetID and sheets.rosterTab")
	}

	logger.Debug("Reading roster",
		zap.String("spreadsheet_id", cfg.Sheets.RosterSheetID),
		zap.String("tab", cfg.Sheets.RosterTab))

	rows, err := roster.ReadRoster(cfg.Sheets.RosterSheetID, cfg.Sheets.RosterTab)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}

	logger.Debug("Read roster", zap.Int("rows", len(rows)))

	result := &ImportResult{}
	for _, row := range rows {
		v, err := volunteerFromRow(row)
		if err != nil {
			result.Invalid = append(result.Invalid, RowError{Row: row.Row, Name: row.Name, Message: err.Error()})
			continue
		}

		if err := m.AddVolunteer(v); err != nil {
			if !errors.Is(err, model.ErrDuplicateEntity) {
				return nil, fmt.Errorf("failed to add volunteer from row %d: %w", row.Row, err)
			}
			result.Duplicates = append(result.Duplicates, row.Name)
			continue
		}
		result.Added = append(result.Added, v.Name().String())
	}

	logger.Info("Imported roster",
		zap.Int("added", len(result.Added)),
		zap.Int("duplicates", len(result.Duplicates)),
		zap.Int("invalid", len(result.Invalid)))

	if len(result.Added) == 0 {
		return result, nil
	}

	if err := store.SaveSnapshot(ctx, db.FromModel(m)); err != nil {
		return result, fmt.Errorf("%w: %w", ErrSave, err)
	}

	return result, nil
}

// volunteerFromRow validates a roster row with the same rules as typed input
func volunteerFromRow(row sheetsclient.RosterRow) (model.Volunteer, error) {
	name, err := model.NewName(row.Name)
	if err != nil {
		return model.Volunteer{}, err
	}
	phone, err := model.NewPhone(row.Phone)
	if err != nil {
		return model.Volunteer{}, err
	}
	email, err := model.NewEmail(row.Email)
	if err != nil {
		return model.Volunteer{}, err
	}
	address, err := model.NewAddress(row.Address)
	if err != nil {
		return model.Volunteer{}, err
	}
	skills, err := model.NewSkills(row.Skills)
	if err != nil {
		return model.Volunteer{}, err
	}

	return model.NewVolunteer(name, phone, email, address, skills), nil
}
