// Package discovery proposes new targets for a topic via the LLM and manages
// the proposal lifecycle (pending → promoted or dismissed).
package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/marketlens/marketlens/constants"
	"github.com/marketlens/marketlens/internal/common"
	"github.com/marketlens/marketlens/internal/entity"
	"github.com/marketlens/marketlens/internal/llm"
	"github.com/marketlens/marketlens/internal/repository"
)

const minTopicLen = 5

const systemPrompt = "You are a helpful assistant that generates a list of target URLs " +
	"based on a user's topic. You must return a valid JSON object with a 'proposals' " +
	"array. Each item in the array must have: 'url', 'title', 'description'."

type proposalReply struct {
	Proposals []struct {
		URL         string `json:"url"`
		Title       string `json:"title"`
		Description string `json:"description"`
	} `json:"proposals"`
}

type Service struct {
	chat      llm.ChatClient
	proposals repository.ProposalRepository
	targets   repository.TargetRepository
	logger    *slog.Logger
}

func NewService(
	chat llm.ChatClient,
	proposals repository.ProposalRepository,
	targets repository.TargetRepository,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{chat: chat, proposals: proposals, targets: targets, logger: logger}
}

// Generate asks the LLM for candidate URLs on the topic and persists them as
// PENDING proposals for the user.
func (s *Service) Generate(ctx context.Context, userID uuid.UUID, topic string) ([]*entity.ProposedTarget, error) {
	topic = strings.TrimSpace(topic)
	if len(topic) < minTopicLen {
		return nil, common.NewAppError("TOPIC_TOO_SHORT",
			fmt.Sprintf("topic must be at least %d characters", minTopicLen),
			common.ErrInvalidInput)
	}

	s.logger.Info("discovery.generate.start", "user_id", userID, "topic", topic)

	reply, err := s.chat.Complete(ctx, llm.CompletionRequest{
		System:   systemPrompt,
		User:     fmt.Sprintf("Topic: %s. Return 5-10 relevant URLs that would be good candidates for analyzing value propositions.", topic),
		JSONMode: true,
	})
	if err != nil {
		return nil, fmt.Errorf("proposal generation: %w", err)
	}

	var parsed proposalReply
	if err := json.Unmarshal([]byte(reply), &parsed); err != nil {
		return nil, common.NewAppError("PROPOSALS_MALFORMED",
			"model reply is not the expected proposals object", common.ErrInternal)
	}
	if len(parsed.Proposals) == 0 {
		return nil, common.NewAppError("PROPOSALS_EMPTY",
			"model returned no proposals", common.ErrInternal)
	}

	batch := make([]*entity.ProposedTarget, 0, len(parsed.Proposals))
	for _, p := range parsed.Proposals {
		if strings.TrimSpace(p.URL) == "" {
			continue
		}
		prop := &entity.ProposedTarget{
			UserID:       userID,
			URL:          p.URL,
			Title:        p.Title,
			SourcePrompt: topic,
		}
		if desc := strings.TrimSpace(p.Description); desc != "" {
			prop.Description = &desc
		}
		batch = append(batch, prop)
	}
	if len(batch) == 0 {
		return nil, common.NewAppError("PROPOSALS_EMPTY",
			"model returned no usable proposals", common.ErrInternal)
	}

	created, err := s.proposals.CreateBatch(ctx, batch)
	if err != nil {
		return nil, err
	}
	s.logger.Info("discovery.generate.ok", "user_id", userID, "count", len(created))
	return created, nil
}

// List returns the user's proposals, newest first.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*entity.ProposedTarget, error) {
	return s.proposals.ListByUser(ctx, userID)
}

// Promote turns one proposal into a monthly-schedule target and marks the
// proposal PROMOTED.
func (s *Service) Promote(ctx context.Context, userID, proposalID uuid.UUID) (*entity.Target, error) {
	prop, err := s.owned(ctx, userID, proposalID)
	if err != nil {
		return nil, err
	}

	target, err := s.targets.Create(ctx, &entity.Target{
		UserID:   userID,
		URL:      prop.URL,
		Name:     prop.Title,
		Schedule: string(constants.ScheduleMonthly),
	})
	if err != nil {
		return nil, err
	}
	if err := s.proposals.SetStatus(ctx, proposalID, constants.ProposalPromoted); err != nil {
		return nil, err
	}

	s.logger.Info("discovery.promote", "proposal_id", proposalID, "target_id", target.ID)
	return target, nil
}

// Dismiss marks one proposal DISMISSED.
func (s *Service) Dismiss(ctx context.Context, userID, proposalID uuid.UUID) error {
	if _, err := s.owned(ctx, userID, proposalID); err != nil {
		return err
	}
	if err := s.proposals.SetStatus(ctx, proposalID, constants.ProposalDismissed); err != nil {
		return err
	}
	s.logger.Info("discovery.dismiss", "proposal_id", proposalID)
	return nil
}

func (s *Service) owned(ctx context.Context, userID, proposalID uuid.UUID) (*entity.ProposedTarget, error) {
	prop, err := s.proposals.GetByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if prop.UserID != userID {
		return nil, common.NewAppError("PROPOSAL_FORBIDDEN",
			proposalID.String(), common.ErrUnauthorized)
	}
	return prop, nil
}
