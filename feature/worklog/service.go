package worklog

import (
	"context"
	"errors"
	"strings"

	"collector-stats/core/rowstore"

	"go.uber.org/zap"
)

// Entry is one work-log row to append. Either Collector or RigID must be
// set so the row can be attributed during reconciliation.
type Entry struct {
	Collector string  `json:"collector,omitempty"`
	RigID     string  `json:"rig_id,omitempty"`
	Site      string  `json:"site,omitempty"`
	Hours     float64 `json:"hours"`
}

// ErrInvalidEntry is returned for rows that could never be attributed.
var ErrInvalidEntry = errors.New("work log entry needs a collector or rig id and positive hours")

// Service appends work-log rows to the authoritative store.
type Service struct {
	client rowstore.Client
	logger *zap.Logger
}

// NewService creates a new worklog service.
func NewService(client rowstore.Client, logger *zap.Logger) *Service {
	return &Service{client: client, logger: logger}
}

// Append writes one work-log row and returns the store's acknowledgement
// message. The caller sees the row on the next cache refresh, not instantly.
func (s *Service) Append(ctx context.Context, entry Entry) (string, error) {
	if err := validate(entry); err != nil {
		return "", err
	}

	result, err := s.client.Fetch(ctx, rowstore.Request{
		Action: rowstore.ActionAppendWorkLog,
		Body:   entry,
	})
	if err != nil {
		return "", err
	}

	s.logger.Info("Appended work log",
		zap.String("collector", entry.Collector),
		zap.String("rig_id", entry.RigID),
		zap.Float64("hours", entry.Hours),
	)
	return result.Message, nil
}

func validate(entry Entry) error {
	if strings.TrimSpace(entry.Collector) == "" && strings.TrimSpace(entry.RigID) == "" {
		return ErrInvalidEntry
	}
	if entry.Hours <= 0 {
		return ErrInvalidEntry
	}
	return nil
}
