package job

import (
	"context"
	"errors"
	"testing"

	"github.com/goccy/go-json"

	"github.com/joeljosepholawale/campustng/internal/model"
	"github.com/joeljosepholawale/campustng/internal/pkg/push"
	"github.com/joeljosepholawale/campustng/internal/repository"
)

type fakeOutboxRepo struct {
	repository.OutboxRepo
	pending []*model.OutboxEvent
	sent    []uint64
	failed  map[uint64]string
}

func (r *fakeOutboxRepo) FetchPending(_ context.Context, _ int) ([]*model.OutboxEvent, error) {
	return r.pending, nil
}

func (r *fakeOutboxRepo) MarkSent(_ context.Context, id uint64) error {
	r.sent = append(r.sent, id)
	return nil
}

func (r *fakeOutboxRepo) MarkFailed(_ context.Context, id uint64, _ int, reason string) error {
	if r.failed == nil {
		r.failed = make(map[uint64]string)
	}
	r.failed[id] = reason
	return nil
}

type mailCall struct {
	to      string
	subject string
}

type fakeMailer struct {
	calls []mailCall
	err   error
}

func (m *fakeMailer) Send(_ context.Context, to, subject, _ string) error {
	m.calls = append(m.calls, mailCall{to, subject})
	return m.err
}

type fakePushSender struct {
	messages []push.Message
}

func (s *fakePushSender) Send(_ context.Context, messages []push.Message) error {
	s.messages = append(s.messages, messages...)
	return nil
}

func mustPayload(t *testing.T, v any) string {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return string(raw)
}

func TestOutboxDispatchesByKind(t *testing.T) {
	emailBody := mustPayload(t, model.EmailPayload{To: "ada@unilag.edu.ng", Subject: "Verify your email", HTML: "<p>1234</p>"})
	pushBody := mustPayload(t, model.PushPayload{
		Token: "ExponentPushToken[abc]",
		Title: "New message",
		Body:  "is this available?",
		Data:  map[string]string{"conversationId": "7"},
	})
	repo := &fakeOutboxRepo{pending: []*model.OutboxEvent{
		{ID: 1, Kind: model.OutboxKindEmail, Payload: emailBody},
		{ID: 2, Kind: model.OutboxKindPush, Payload: pushBody},
	}}
	mailer := &fakeMailer{}
	sender := &fakePushSender{}

	NewOutboxJob(repo, mailer, sender).Run()

	if len(repo.sent) != 2 {
		t.Fatalf("sent = %v, want both events marked", repo.sent)
	}
	if len(mailer.calls) != 1 || mailer.calls[0].to != "ada@unilag.edu.ng" {
		t.Fatalf("mail calls = %+v", mailer.calls)
	}
	if len(sender.messages) != 1 {
		t.Fatalf("push messages = %d, want 1", len(sender.messages))
	}
	msg := sender.messages[0]
	if msg.To != "ExponentPushToken[abc]" || msg.Sound != "default" {
		t.Fatalf("push message = %+v", msg)
	}
	if msg.Data["conversationId"] != "7" {
		t.Fatalf("push data = %v", msg.Data)
	}
}

func TestOutboxMarksFailures(t *testing.T) {
	emailBody := mustPayload(t, model.EmailPayload{To: "ada@unilag.edu.ng", Subject: "Hi", HTML: "<p>x</p>"})
	repo := &fakeOutboxRepo{pending: []*model.OutboxEvent{
		{ID: 1, Kind: model.OutboxKindEmail, Payload: emailBody, Attempts: 2},
		{ID: 2, Kind: "carrier-pigeon", Payload: "{}"},
	}}
	mailer := &fakeMailer{err: errors.New("brevo 503")}

	NewOutboxJob(repo, mailer, &fakePushSender{}).Run()

	if len(repo.sent) != 0 {
		t.Fatalf("sent = %v, want none", repo.sent)
	}
	if repo.failed[1] == "" || repo.failed[2] == "" {
		t.Fatalf("failed = %v, want both events recorded", repo.failed)
	}
}
