package service

import (
	"context"
	"os"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/joeljosepholawale/campustng/internal/api/config"
	"github.com/joeljosepholawale/campustng/internal/model"
	"github.com/joeljosepholawale/campustng/internal/pkg/payment"
	"github.com/joeljosepholawale/campustng/internal/pkg/redis"
	"github.com/joeljosepholawale/campustng/internal/repository"
)

func TestMain(m *testing.M) {
	config.Cfg = &config.Config{
		Server:      config.ServerConfig{FrontendURL: "campustng://"},
		JWT:         config.JWTConfig{Secret: "test-secret", ExpireHours: 24},
		Flutterwave: config.FlutterwaveConfig{Currency: "NGN"},
	}
	// Cache and pub/sub calls fail fast and are swallowed by the services.
	redis.Rdb = goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 10 * time.Millisecond,
		MaxRetries:  -1,
	})
	os.Exit(m.Run())
}

func ptrStr(s string) *string { return &s }

type fakeUserRepo struct {
	repository.UserRepo
	users   map[uint64]*model.User
	updated map[uint64]map[string]interface{}
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	r := &fakeUserRepo{
		users:   make(map[uint64]*model.User),
		updated: make(map[uint64]map[string]interface{}),
	}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) GetUserById(_ context.Context, id uint64) (*model.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *model.User) error {
	user.ID = uint64(len(r.users) + 1)
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) UpdateUserFields(_ context.Context, id uint64, fields map[string]interface{}) error {
	r.updated[id] = fields
	return nil
}

type fakeProductRepo struct {
	repository.ProductRepo
	products map[uint64]*model.Product
}

func newFakeProductRepo(products ...*model.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[uint64]*model.Product)}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) GetProductById(_ context.Context, id uint64) (*model.Product, error) {
	return r.products[id], nil
}

type creditCall struct {
	reference     string
	productID     uint64
	promotedUntil time.Time
}

type fakeTransactionRepo struct {
	repository.TransactionRepo
	byRef    map[string]*model.Transaction
	created  []*model.Transaction
	credited []creditCall
}

func newFakeTransactionRepo(txs ...*model.Transaction) *fakeTransactionRepo {
	r := &fakeTransactionRepo{byRef: make(map[string]*model.Transaction)}
	for _, tx := range txs {
		r.byRef[tx.Reference] = tx
	}
	return r
}

func (r *fakeTransactionRepo) CreateTransaction(_ context.Context, tx *model.Transaction) error {
	r.created = append(r.created, tx)
	r.byRef[tx.Reference] = tx
	return nil
}

func (r *fakeTransactionRepo) GetByReference(_ context.Context, reference string) (*model.Transaction, error) {
	return r.byRef[reference], nil
}

func (r *fakeTransactionRepo) CreditBoost(_ context.Context, reference string, productID uint64, promotedUntil time.Time) (bool, error) {
	tx, ok := r.byRef[reference]
	if !ok || tx.Status != model.TransactionPending {
		return false, nil
	}
	tx.Status = model.TransactionSuccessful
	r.credited = append(r.credited, creditCall{reference, productID, promotedUntil})
	return true, nil
}

type fakeBoostPlanRepo struct {
	repository.BoostPlanRepo
	plans map[uint64]*model.BoostPlan
}

func newFakeBoostPlanRepo(plans ...*model.BoostPlan) *fakeBoostPlanRepo {
	r := &fakeBoostPlanRepo{plans: make(map[uint64]*model.BoostPlan)}
	for _, p := range plans {
		r.plans[p.ID] = p
	}
	return r
}

func (r *fakeBoostPlanRepo) GetPlanById(_ context.Context, id uint64) (*model.BoostPlan, error) {
	return r.plans[id], nil
}

type markReadCall struct {
	conversationID uint64
	asBuyer        bool
}

type fakeConversationRepo struct {
	repository.ConversationRepo
	conversations map[uint64]*model.Conversation
	latest        map[uint64]*model.Message
	messages      []*model.Message
	markedRead    []markReadCall
}

func newFakeConversationRepo(convs ...*model.Conversation) *fakeConversationRepo {
	r := &fakeConversationRepo{
		conversations: make(map[uint64]*model.Conversation),
		latest:        make(map[uint64]*model.Message),
	}
	for _, c := range convs {
		r.conversations[c.ID] = c
	}
	return r
}

func (r *fakeConversationRepo) GetConversationById(_ context.Context, id uint64) (*model.Conversation, error) {
	return r.conversations[id], nil
}

func (r *fakeConversationRepo) GetByTriple(_ context.Context, productID, buyerID, sellerID uint64) (*model.Conversation, error) {
	for _, c := range r.conversations {
		if c.ProductID == productID && c.BuyerID == buyerID && c.SellerID == sellerID {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeConversationRepo) CreateConversation(_ context.Context, conv *model.Conversation) error {
	conv.ID = uint64(len(r.conversations) + 1)
	r.conversations[conv.ID] = conv
	return nil
}

func (r *fakeConversationRepo) ListByUser(_ context.Context, userID uint64) ([]*model.Conversation, error) {
	result := make([]*model.Conversation, 0)
	for _, c := range r.conversations {
		if c.BuyerID == userID || c.SellerID == userID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (r *fakeConversationRepo) CreateMessage(_ context.Context, msg *model.Message) error {
	msg.ID = uint64(len(r.messages) + 1)
	r.messages = append(r.messages, msg)
	r.latest[msg.ConversationID] = msg
	return nil
}

func (r *fakeConversationRepo) LatestMessages(_ context.Context, conversationIDs []uint64) (map[uint64]*model.Message, error) {
	result := make(map[uint64]*model.Message)
	for _, id := range conversationIDs {
		if msg, ok := r.latest[id]; ok {
			result[id] = msg
		}
	}
	return result, nil
}

func (r *fakeConversationRepo) MarkRead(_ context.Context, conversationID uint64, asBuyer bool, _ time.Time) error {
	r.markedRead = append(r.markedRead, markReadCall{conversationID, asBuyer})
	return nil
}

type fakeNotificationRepo struct {
	repository.NotificationRepo
	created []*model.Notification
	unread  int64
}

func (r *fakeNotificationRepo) CreateNotification(_ context.Context, notif *model.Notification) error {
	r.created = append(r.created, notif)
	return nil
}

func (r *fakeNotificationRepo) CountUnread(_ context.Context, _ uint64) (int64, error) {
	return r.unread, nil
}

type fakeOutboxRepo struct {
	repository.OutboxRepo
	events []*model.OutboxEvent
}

func (r *fakeOutboxRepo) CreateEvent(_ context.Context, event *model.OutboxEvent) error {
	r.events = append(r.events, event)
	return nil
}

type notifyCall struct {
	userID    uint64
	notifType string
	title     string
	message   string
	data      map[string]string
}

type recordingNotifier struct {
	NotificationService
	calls []notifyCall
}

func (n *recordingNotifier) Notify(_ context.Context, userID uint64, notifType, title, message string, data map[string]string) {
	n.calls = append(n.calls, notifyCall{userID, notifType, title, message, data})
}

type fakeGateway struct {
	initLink   string
	initErr    error
	initReqs   []*payment.InitializeRequest
	verifyData *payment.VerifyData
	verifyErr  error
}

func (g *fakeGateway) InitializePayment(_ context.Context, req *payment.InitializeRequest) (string, error) {
	g.initReqs = append(g.initReqs, req)
	return g.initLink, g.initErr
}

func (g *fakeGateway) VerifyTransaction(_ context.Context, _ string) (*payment.VerifyData, error) {
	return g.verifyData, g.verifyErr
}
