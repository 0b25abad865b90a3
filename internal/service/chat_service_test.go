package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/joeljosepholawale/campustng/internal/api/dto"
	"github.com/joeljosepholawale/campustng/internal/model"
)

func newChatFixture() (*fakeConversationRepo, *fakeProductRepo, *recordingNotifier, ChatService) {
	convRepo := newFakeConversationRepo()
	productRepo := newFakeProductRepo(
		&model.Product{ID: 5, UserID: 20, Title: "Mini Fridge", IsActive: true},
	)
	userRepo := newFakeUserRepo(
		&model.User{ID: 10, Email: "buyer@uni.edu.ng", FirstName: ptrStr("Bola")},
		&model.User{ID: 20, Email: "seller@uni.edu.ng", FirstName: ptrStr("Ada")},
	)
	notifier := &recordingNotifier{}
	svc := NewChatService(convRepo, productRepo, userRepo, notifier)
	return convRepo, productRepo, notifier, svc
}

func TestStartConversationRejectsSelf(t *testing.T) {
	_, _, _, svc := newChatFixture()

	_, err := svc.StartConversation(context.Background(), 20, &dto.StartConversationDTO{ProductID: 5, Text: "hi"})
	if !errors.Is(err, ErrSelfConversation) {
		t.Fatalf("err = %v, want ErrSelfConversation", err)
	}
}

func TestStartConversationCreatesLazily(t *testing.T) {
	convRepo, _, notifier, svc := newChatFixture()

	first, err := svc.StartConversation(context.Background(), 10, &dto.StartConversationDTO{ProductID: 5, Text: "is this available?"})
	if err != nil {
		t.Fatalf("StartConversation() error = %v", err)
	}
	if len(convRepo.conversations) != 1 {
		t.Fatalf("conversations = %d, want 1", len(convRepo.conversations))
	}
	if first.BuyerID != 10 || first.SellerID != 20 {
		t.Fatalf("conversation parties = buyer %d seller %d", first.BuyerID, first.SellerID)
	}

	second, err := svc.StartConversation(context.Background(), 10, &dto.StartConversationDTO{ProductID: 5, Text: "still there?"})
	if err != nil {
		t.Fatalf("second StartConversation() error = %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("second message created a new conversation: %d != %d", second.ID, first.ID)
	}
	if len(convRepo.messages) != 2 {
		t.Fatalf("messages = %d, want 2", len(convRepo.messages))
	}

	// Both messages notify the seller, not the sender.
	if len(notifier.calls) != 2 {
		t.Fatalf("notifications = %d, want 2", len(notifier.calls))
	}
	for _, call := range notifier.calls {
		if call.userID != 20 {
			t.Fatalf("notified user %d, want seller 20", call.userID)
		}
		if call.notifType != "MESSAGE" {
			t.Fatalf("notifType = %q", call.notifType)
		}
	}
}

func TestSendMessageRequiresParticipant(t *testing.T) {
	convRepo, _, _, svc := newChatFixture()
	convRepo.conversations[1] = &model.Conversation{ID: 1, ProductID: 5, BuyerID: 10, SellerID: 20}

	_, err := svc.SendMessage(context.Background(), 99, 1, "let me in")
	if !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("err = %v, want ErrAccessDenied", err)
	}

	_, err = svc.SendMessage(context.Background(), 99, 404, "ghost thread")
	if !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("missing conversation err = %v, want ErrAccessDenied", err)
	}
}

func TestSendMessageNotifiesOtherParty(t *testing.T) {
	convRepo, _, notifier, svc := newChatFixture()
	convRepo.conversations[1] = &model.Conversation{ID: 1, ProductID: 5, BuyerID: 10, SellerID: 20}

	msg, err := svc.SendMessage(context.Background(), 20, 1, "yes, still available")
	if err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}
	if msg.SenderID != 20 {
		t.Fatalf("SenderID = %d", msg.SenderID)
	}
	if msg.SenderName != "Ada" {
		t.Fatalf("SenderName = %q", msg.SenderName)
	}

	if len(notifier.calls) != 1 || notifier.calls[0].userID != 10 {
		t.Fatalf("notifications = %+v, want one for buyer 10", notifier.calls)
	}
	if notifier.calls[0].data["conversationId"] != "1" {
		t.Fatalf("notification data = %v", notifier.calls[0].data)
	}
}

func TestSendMessagePreviewKeepsRunesWhole(t *testing.T) {
	convRepo, _, notifier, svc := newChatFixture()
	convRepo.conversations[1] = &model.Conversation{ID: 1, ProductID: 5, BuyerID: 10, SellerID: 20}

	text := strings.Repeat("₦", 130)
	if _, err := svc.SendMessage(context.Background(), 10, 1, text); err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}

	if len(notifier.calls) != 1 {
		t.Fatalf("notifications = %d, want 1", len(notifier.calls))
	}
	preview := notifier.calls[0].message
	if !utf8.ValidString(preview) {
		t.Fatalf("preview %q is not valid utf-8", preview)
	}
	if got := utf8.RuneCountInString(preview); got != 120 {
		t.Fatalf("preview runes = %d, want 120", got)
	}
}

func TestMarkReadPicksParticipantSide(t *testing.T) {
	convRepo, _, _, svc := newChatFixture()
	convRepo.conversations[1] = &model.Conversation{ID: 1, ProductID: 5, BuyerID: 10, SellerID: 20}

	if err := svc.MarkRead(context.Background(), 10, 1); err != nil {
		t.Fatalf("MarkRead(buyer) error = %v", err)
	}
	if err := svc.MarkRead(context.Background(), 20, 1); err != nil {
		t.Fatalf("MarkRead(seller) error = %v", err)
	}

	if len(convRepo.markedRead) != 2 {
		t.Fatalf("markedRead = %d calls", len(convRepo.markedRead))
	}
	if !convRepo.markedRead[0].asBuyer {
		t.Fatal("buyer mark should use buyer column")
	}
	if convRepo.markedRead[1].asBuyer {
		t.Fatal("seller mark should use seller column")
	}

	if err := svc.MarkRead(context.Background(), 99, 1); !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("outsider err = %v, want ErrAccessDenied", err)
	}
}
