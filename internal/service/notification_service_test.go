package service

import (
	"context"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/joeljosepholawale/campustng/internal/model"
)

func TestConversationUnread(t *testing.T) {
	now := time.Now()
	earlier := now.Add(-time.Hour)
	later := now.Add(time.Hour)

	conv := func(buyerReadAt, sellerReadAt *time.Time) *model.Conversation {
		return &model.Conversation{
			ID:               1,
			BuyerID:          10,
			SellerID:         20,
			BuyerLastReadAt:  buyerReadAt,
			SellerLastReadAt: sellerReadAt,
		}
	}
	msg := func(senderID uint64, at time.Time) *model.Message {
		return &model.Message{ConversationID: 1, SenderID: senderID, CreatedAt: at}
	}

	tests := []struct {
		name   string
		conv   *model.Conversation
		latest *model.Message
		userID uint64
		want   bool
	}{
		{
			name:   "no messages",
			conv:   conv(nil, nil),
			latest: nil,
			userID: 10,
			want:   false,
		},
		{
			name:   "own message never unread",
			conv:   conv(nil, nil),
			latest: msg(10, now),
			userID: 10,
			want:   false,
		},
		{
			name:   "buyer never read",
			conv:   conv(nil, nil),
			latest: msg(20, now),
			userID: 10,
			want:   true,
		},
		{
			name:   "buyer read before latest",
			conv:   conv(&earlier, nil),
			latest: msg(20, now),
			userID: 10,
			want:   true,
		},
		{
			name:   "buyer read after latest",
			conv:   conv(&later, nil),
			latest: msg(20, now),
			userID: 10,
			want:   false,
		},
		{
			name:   "seller side uses its own marker",
			conv:   conv(&later, nil),
			latest: msg(10, now),
			userID: 20,
			want:   true,
		},
		{
			name:   "seller read after latest",
			conv:   conv(nil, &later),
			latest: msg(10, now),
			userID: 20,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := conversationUnread(tt.conv, tt.latest, tt.userID)
			if got != tt.want {
				t.Fatalf("conversationUnread() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnreadCountsCombinesBadges(t *testing.T) {
	notifRepo := &fakeNotificationRepo{unread: 3}
	convRepo := newFakeConversationRepo(
		&model.Conversation{ID: 1, BuyerID: 10, SellerID: 20},
		&model.Conversation{ID: 2, BuyerID: 10, SellerID: 30},
	)
	convRepo.latest[1] = &model.Message{ConversationID: 1, SenderID: 20, CreatedAt: time.Now()}
	convRepo.latest[2] = &model.Message{ConversationID: 2, SenderID: 10, CreatedAt: time.Now()}

	svc := NewNotificationService(notifRepo, convRepo, newFakeUserRepo(), &fakeOutboxRepo{})
	counts, err := svc.UnreadCounts(context.Background(), 10)
	if err != nil {
		t.Fatalf("UnreadCounts() error = %v", err)
	}
	if counts.Notifications != 3 {
		t.Fatalf("Notifications = %d, want 3", counts.Notifications)
	}
	if counts.Messages != 1 {
		t.Fatalf("Messages = %d, want 1", counts.Messages)
	}
}

func TestNotifyStoresDataOnRow(t *testing.T) {
	notifRepo := &fakeNotificationRepo{}
	userRepo := newFakeUserRepo(&model.User{ID: 1, Email: "a@uni.edu.ng"})
	svc := NewNotificationService(notifRepo, newFakeConversationRepo(), userRepo, &fakeOutboxRepo{})

	svc.Notify(context.Background(), 1, "MESSAGE", "New message", "hi", map[string]string{"conversationId": "7"})
	svc.Notify(context.Background(), 1, "FOLLOW", "New follower", "someone followed you", nil)

	if len(notifRepo.created) != 2 {
		t.Fatalf("created %d notifications, want 2", len(notifRepo.created))
	}
	if notifRepo.created[0].Data == nil {
		t.Fatal("notification with payload stored no data")
	}
	var stored map[string]string
	if err := json.Unmarshal([]byte(*notifRepo.created[0].Data), &stored); err != nil {
		t.Fatalf("unmarshal stored data: %v", err)
	}
	if stored["conversationId"] != "7" {
		t.Fatalf("stored data = %v, want conversationId 7", stored)
	}
	if notifRepo.created[1].Data != nil {
		t.Fatalf("notification without payload stored data %q", *notifRepo.created[1].Data)
	}
}

func TestNotifyQueuesPushOnlyWithToken(t *testing.T) {
	notifRepo := &fakeNotificationRepo{}
	outbox := &fakeOutboxRepo{}
	userRepo := newFakeUserRepo(
		&model.User{ID: 1, Email: "a@uni.edu.ng", ExpoPushToken: ptrStr("ExponentPushToken[abc]")},
		&model.User{ID: 2, Email: "b@uni.edu.ng"},
	)

	svc := NewNotificationService(notifRepo, newFakeConversationRepo(), userRepo, outbox)

	svc.Notify(context.Background(), 1, "FOLLOW", "New follower", "someone followed you", nil)
	svc.Notify(context.Background(), 2, "FOLLOW", "New follower", "someone followed you", nil)

	if len(notifRepo.created) != 2 {
		t.Fatalf("created %d notifications, want 2", len(notifRepo.created))
	}
	if len(outbox.events) != 1 {
		t.Fatalf("queued %d push events, want 1", len(outbox.events))
	}
	if outbox.events[0].Kind != model.OutboxKindPush {
		t.Fatalf("event kind = %q, want %q", outbox.events[0].Kind, model.OutboxKindPush)
	}
}
