// Package generator synthesizes a combined value proposition across several
// targets' latest scan data.
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/marketlens/marketlens/internal/common"
	"github.com/marketlens/marketlens/internal/llm"
	"github.com/marketlens/marketlens/internal/repository"
)

const systemPrompt = `You are an expert product strategist. Your goal is to synthesize multiple competitor value propositions into one "Perfect Value Proposition".

Rules for generation:
1. **Summary Synthesis**: Read all summaries and benefits. Create a single, compelling narrative that combines the best features of all inputs into a coherent "sweet spot" description.
2. **Median Calculation**: For any numeric fields found across the inputs (like "APR", "Annual Fee", "Bonus Points", "Cash Back %"), you MUST calculate the mathematical MEDIAN of the available values.
   - Example: If inputs are 15%, 20%, 25%, the "sweet spot" APR is 20%.
   - Explicitly mention that these values represent the "market median" or "sweet spot".
3. **Format**: Return the result in clean Markdown. Use headers for "Value Proposition Summary" and "Key Sweet Spot Metrics".`

// AvailableScan is a target whose latest successful scan can feed the
// generator.
type AvailableScan struct {
	TargetID   uuid.UUID
	TargetName string
	TargetURL  string
	ScanID     uuid.UUID
	ScanDate   time.Time
}

type Service struct {
	chat    llm.ChatClient
	targets repository.TargetRepository
	scans   repository.ScanRepository
	logger  *slog.Logger
}

func NewService(
	chat llm.ChatClient,
	targets repository.TargetRepository,
	scans repository.ScanRepository,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{chat: chat, targets: targets, scans: scans, logger: logger}
}

// ListAvailable returns, per target the user owns, the latest successful
// scan. Targets never scanned successfully are omitted. An optional query
// filters by target name, case-insensitive.
func (s *Service) ListAvailable(ctx context.Context, userID uuid.UUID, query string) ([]AvailableScan, error) {
	targets, err := s.targets.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]AvailableScan, 0, len(targets))
	for _, t := range targets {
		if query != "" && !strings.Contains(strings.ToLower(t.Name), query) {
			continue
		}
		latest, err := s.scans.LatestSuccessForTarget(ctx, t.ID)
		if err != nil {
			return nil, err
		}
		if latest == nil {
			continue
		}
		out = append(out, AvailableScan{
			TargetID:   t.ID,
			TargetName: t.Name,
			TargetURL:  t.URL,
			ScanID:     latest.ID,
			ScanDate:   latest.CreatedAt,
		})
	}
	return out, nil
}

// Generate synthesizes the markdown value proposition from the selected
// scans. Every scan must belong to a target the user owns.
func (s *Service) Generate(ctx context.Context, userID uuid.UUID, scanIDs []uuid.UUID) (string, error) {
	if len(scanIDs) == 0 {
		return "", common.NewAppError("NO_SCANS_SELECTED", "at least one scan is required", common.ErrInvalidInput)
	}

	var inputs []string
	for _, id := range scanIDs {
		scan, err := s.scans.GetByID(ctx, id)
		if err != nil {
			return "", err
		}
		target, err := s.targets.GetByID(ctx, scan.TargetID)
		if err != nil {
			return "", err
		}
		if target.UserID != userID {
			return "", common.NewAppError("SCAN_FORBIDDEN", id.String(), common.ErrUnauthorized)
		}

		data := "No data"
		if scan.ExtractedData != nil && strings.TrimSpace(*scan.ExtractedData) != "" {
			data = *scan.ExtractedData
		}
		inputs = append(inputs, fmt.Sprintf("Target: %s\nData: %s\n---", target.Name, data))
	}

	s.logger.Info("generator.start", "user_id", userID, "scans", len(scanIDs))

	reply, err := s.chat.Complete(ctx, llm.CompletionRequest{
		System: systemPrompt,
		User: fmt.Sprintf("Here are the value propositions from the selected competitors:\n\n%s\n\nGenerate the Perfect Value Proposition.",
			strings.Join(inputs, "\n\n")),
	})
	if err != nil {
		return "", fmt.Errorf("value proposition generation: %w", err)
	}

	s.logger.Info("generator.ok", "user_id", userID, "chars", len(reply))
	return reply, nil
}
