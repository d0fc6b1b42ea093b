package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jakechorley/volunteer-manager/internal/config"
	"github.com/jakechorley/volunteer-manager/pkg/clients/sheetsclient"
	"github.com/jakechorley/volunteer-manager/pkg/core/model"
)

// EventPublisher defines the sheets operation needed to publish events
type EventPublisher interface {
	PublishEvents(spreadsheetID, tab string, events []sheetsclient.PublishedEvent) error
}

// PublishEvents writes the full event list, in list order, to the configured publish tab.
// Recurring events also show their next occurrence after now.
// It returns the number of events published.
func PublishEvents(
	ctx context.Context,
	m *model.Model,
	publisher EventPublisher,
	cfg *config.Config,
	now time.Time,
	logger *zap.Logger,
) (int, error) {
	if cfg.Sheets.PublishSheetID == "" || cfg.Sheets.PublishTab == "" {
		return 0, fmt.Errorf("publish sheet is not configured: set sheets.publishSheetID and sheets.publishTab")
	}

	events := m.Events()
	published := make([]sheetsclient.PublishedEvent, 0, len(events))
	for _, e := range events {
		published = append(published, toPublishedEvent(e, now))
	}

	logger.Debug("Publishing events",
		zap.String("spreadsheet_id", cfg.Sheets.PublishSheetID),
		zap.String("tab", cfg.Sheets.PublishTab),
		zap.Int("count", len(published)))

	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("publish cancelled: %w", err)
	}

	if err := publisher.PublishEvents(cfg.Sheets.PublishSheetID, cfg.Sheets.PublishTab, published); err != nil {
		return 0, fmt.Errorf("failed to publish events: %w", err)
	}

	logger.Info("Published events", zap.String("tab", cfg.Sheets.PublishTab), zap.Int("count", len(published)))
	return len(published), nil
}

func toPublishedEvent(e model.Event, now time.Time) sheetsclient.PublishedEvent {
	p := sheetsclient.PublishedEvent{
		Name:        e.Name().String(),
		DateAndTime: e.DateAndTime().String(),
		Location:    e.Location().String(),
		Roles:       stringsOf(e.Roles()),
		Materials:   stringsOf(e.Materials()),
		Description: e.Description().String(),
	}

	if budget, ok := e.Budget(); ok {
		p.Budget = budget.String()
	}

	if _, ok := e.Recurrence(); ok {
		if next, ok := e.NextOccurrence(now); ok {
			p.NextOccurrence = next.Format(model.DateAndTimeLayout)
		}
	}

	return p
}

func stringsOf[T interface{ String() string }](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}
