package server

import (
	"context"

	marketlensv1 "github.com/marketlens/marketlens/gen/proto/marketlens/v1"
)

func (s *TrackerService) GenerateProposals(ctx context.Context, req *marketlensv1.GenerateProposalsRequest) (*marketlensv1.GenerateProposalsResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	proposals, err := s.discovery.Generate(ctx, userID, req.GetTopic())
	if err != nil {
		s.logger.Error("rpc.generate_proposals", "err", err)
		return nil, toStatus(err)
	}
	out := make([]*marketlensv1.Proposal, len(proposals))
	for i, p := range proposals {
		out[i] = toProtoProposal(p)
	}
	return &marketlensv1.GenerateProposalsResponse{Proposals: out}, nil
}

func (s *TrackerService) ListProposals(ctx context.Context, _ *marketlensv1.ListProposalsRequest) (*marketlensv1.ListProposalsResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	proposals, err := s.discovery.List(ctx, userID)
	if err != nil {
		s.logger.Error("rpc.list_proposals", "err", err)
		return nil, toStatus(err)
	}
	out := make([]*marketlensv1.Proposal, len(proposals))
	for i, p := range proposals {
		out[i] = toProtoProposal(p)
	}
	return &marketlensv1.ListProposalsResponse{Proposals: out}, nil
}

func (s *TrackerService) PromoteProposal(ctx context.Context, req *marketlensv1.PromoteProposalRequest) (*marketlensv1.PromoteProposalResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	proposalID, err := parseUUID(req.GetProposalId(), "proposal_id")
	if err != nil {
		return nil, err
	}
	target, err := s.discovery.Promote(ctx, userID, proposalID)
	if err != nil {
		s.logger.Error("rpc.promote_proposal", "proposal_id", proposalID, "err", err)
		return nil, toStatus(err)
	}
	return &marketlensv1.PromoteProposalResponse{Target: toProtoTarget(target)}, nil
}

func (s *TrackerService) DismissProposal(ctx context.Context, req *marketlensv1.DismissProposalRequest) (*marketlensv1.DismissProposalResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	proposalID, err := parseUUID(req.GetProposalId(), "proposal_id")
	if err != nil {
		return nil, err
	}
	if err := s.discovery.Dismiss(ctx, userID, proposalID); err != nil {
		s.logger.Error("rpc.dismiss_proposal", "proposal_id", proposalID, "err", err)
		return nil, toStatus(err)
	}
	return &marketlensv1.DismissProposalResponse{}, nil
}
