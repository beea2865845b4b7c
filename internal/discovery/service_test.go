package discovery

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketlens/marketlens/constants"
	"github.com/marketlens/marketlens/internal/common"
	"github.com/marketlens/marketlens/internal/entity"
	"github.com/marketlens/marketlens/internal/llm"
	"github.com/marketlens/marketlens/internal/repository"
)

type stubChat struct {
	reply   string
	err     error
	lastReq llm.CompletionRequest
}

func (s *stubChat) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	s.lastReq = req
	return s.reply, s.err
}

type fakeProposals struct {
	byID     map[uuid.UUID]*entity.ProposedTarget
	statuses map[uuid.UUID]constants.ProposalStatus
	created  []*entity.ProposedTarget
}

func newFakeProposals(props ...*entity.ProposedTarget) *fakeProposals {
	f := &fakeProposals{
		byID:     map[uuid.UUID]*entity.ProposedTarget{},
		statuses: map[uuid.UUID]constants.ProposalStatus{},
	}
	for _, p := range props {
		f.byID[p.ID] = p
	}
	return f
}

func (f *fakeProposals) CreateBatch(ctx context.Context, proposals []*entity.ProposedTarget) ([]*entity.ProposedTarget, error) {
	for _, p := range proposals {
		p.ID = uuid.New()
		p.Status = string(constants.ProposalPending)
		f.byID[p.ID] = p
	}
	f.created = append(f.created, proposals...)
	return proposals, nil
}

func (f *fakeProposals) GetByID(ctx context.Context, id uuid.UUID) (*entity.ProposedTarget, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, common.NewAppError("PROPOSAL_NOT_FOUND", id.String(), common.ErrNotFound)
	}
	return p, nil
}

func (f *fakeProposals) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ProposedTarget, error) {
	var out []*entity.ProposedTarget
	for _, p := range f.byID {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProposals) SetStatus(ctx context.Context, id uuid.UUID, status constants.ProposalStatus) error {
	f.statuses[id] = status
	return nil
}

type fakeTargets struct {
	created []*entity.Target
}

func (f *fakeTargets) Create(ctx context.Context, t *entity.Target) (*entity.Target, error) {
	t.ID = uuid.New()
	f.created = append(f.created, t)
	return t, nil
}

func (f *fakeTargets) GetByID(context.Context, uuid.UUID) (*entity.Target, error) { return nil, nil }
func (f *fakeTargets) ListByUser(context.Context, uuid.UUID) ([]*entity.Target, error) {
	return nil, nil
}
func (f *fakeTargets) ListActive(context.Context) ([]*entity.Target, error) { return nil, nil }
func (f *fakeTargets) UpdateConfig(context.Context, uuid.UUID, repository.TargetConfigUpdate) error {
	return nil
}
func (f *fakeTargets) SetMasterData(context.Context, uuid.UUID, string) error { return nil }
func (f *fakeTargets) Delete(context.Context, uuid.UUID) error                { return nil }

func TestGenerate_PersistsPendingProposals(t *testing.T) {
	userID := uuid.New()
	chat := &stubChat{reply: `{"proposals":[
		{"url":"https://a.example/offers","title":"A","description":"competitor A"},
		{"url":"https://b.example/cards","title":"B","description":""}
	]}`}
	props := newFakeProposals()
	svc := NewService(chat, props, &fakeTargets{}, nil)

	out, err := svc.Generate(context.Background(), userID, "premium travel cards")
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.True(t, chat.lastReq.JSONMode)
	assert.Contains(t, chat.lastReq.User, "premium travel cards")
	assert.Equal(t, "https://a.example/offers", out[0].URL)
	require.NotNil(t, out[0].Description)
	assert.Equal(t, "competitor A", *out[0].Description)
	assert.Nil(t, out[1].Description)
	for _, p := range out {
		assert.Equal(t, userID, p.UserID)
		assert.Equal(t, "premium travel cards", p.SourcePrompt)
		assert.Equal(t, string(constants.ProposalPending), p.Status)
	}
}

func TestGenerate_RejectsShortTopic(t *testing.T) {
	svc := NewService(&stubChat{}, newFakeProposals(), &fakeTargets{}, nil)

	_, err := svc.Generate(context.Background(), uuid.New(), "abc")
	require.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestGenerate_MalformedReply(t *testing.T) {
	svc := NewService(&stubChat{reply: "not json"}, newFakeProposals(), &fakeTargets{}, nil)

	_, err := svc.Generate(context.Background(), uuid.New(), "travel cards")
	require.Error(t, err)
	require.NotErrorIs(t, err, common.ErrInvalidInput)
}

func TestGenerate_ChatFailurePropagates(t *testing.T) {
	svc := NewService(&stubChat{err: errors.New("quota exceeded")}, newFakeProposals(), &fakeTargets{}, nil)

	_, err := svc.Generate(context.Background(), uuid.New(), "travel cards")
	require.ErrorContains(t, err, "quota exceeded")
}

func TestPromote_CreatesMonthlyTargetAndMarksPromoted(t *testing.T) {
	userID := uuid.New()
	prop := &entity.ProposedTarget{
		ID:     uuid.New(),
		UserID: userID,
		URL:    "https://a.example/offers",
		Title:  "A",
		Status: string(constants.ProposalPending),
	}
	props := newFakeProposals(prop)
	targets := &fakeTargets{}
	svc := NewService(&stubChat{}, props, targets, nil)

	target, err := svc.Promote(context.Background(), userID, prop.ID)
	require.NoError(t, err)

	assert.Equal(t, prop.URL, target.URL)
	assert.Equal(t, prop.Title, target.Name)
	assert.Equal(t, string(constants.ScheduleMonthly), target.Schedule)
	assert.Equal(t, constants.ProposalPromoted, props.statuses[prop.ID])
}

func TestPromote_ForeignProposalRejected(t *testing.T) {
	prop := &entity.ProposedTarget{ID: uuid.New(), UserID: uuid.New(), URL: "https://a.example", Title: "A"}
	props := newFakeProposals(prop)
	targets := &fakeTargets{}
	svc := NewService(&stubChat{}, props, targets, nil)

	_, err := svc.Promote(context.Background(), uuid.New(), prop.ID)
	require.ErrorIs(t, err, common.ErrUnauthorized)
	assert.Empty(t, targets.created)
}

func TestDismiss(t *testing.T) {
	userID := uuid.New()
	prop := &entity.ProposedTarget{ID: uuid.New(), UserID: userID, URL: "https://a.example", Title: "A"}
	props := newFakeProposals(prop)
	svc := NewService(&stubChat{}, props, &fakeTargets{}, nil)

	require.NoError(t, svc.Dismiss(context.Background(), userID, prop.ID))
	assert.Equal(t, constants.ProposalDismissed, props.statuses[prop.ID])
}
