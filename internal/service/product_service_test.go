package service

import (
	"context"
	"testing"

	"github.com/joeljosepholawale/campustng/internal/api/dto"
	"github.com/joeljosepholawale/campustng/internal/model"
	"github.com/joeljosepholawale/campustng/internal/repository"
)

type creatingProductRepo struct {
	*fakeProductRepo
	created []*model.Product
}

func (r *creatingProductRepo) CreateProduct(_ context.Context, product *model.Product) error {
	product.ID = uint64(len(r.products) + 1)
	r.products[product.ID] = product
	r.created = append(r.created, product)
	return nil
}

type fakeFollowRepo struct {
	repository.FollowRepo
	followers map[uint64][]uint64
}

func (r *fakeFollowRepo) ListFollowers(_ context.Context, userID uint64) ([]uint64, error) {
	return r.followers[userID], nil
}

func TestCreateProductNotifiesFollowers(t *testing.T) {
	productRepo := &creatingProductRepo{fakeProductRepo: newFakeProductRepo()}
	categoryRepo := &fakeCategoryRepo{categories: map[uint64]*model.Category{1: {ID: 1, Name: "Textbooks"}}}
	followRepo := &fakeFollowRepo{followers: map[uint64][]uint64{10: {21, 22}}}
	userRepo := newFakeUserRepo(&model.User{ID: 10, Email: "ada@unilag.edu.ng", FirstName: ptrStr("Ada")})
	notifier := &recordingNotifier{}
	svc := NewProductService(productRepo, categoryRepo, followRepo, userRepo, notifier)

	created, err := svc.Create(context.Background(), 10, &dto.CreateProductDTO{
		Title:      "Calculus Textbook",
		Price:      4500,
		CategoryID: 1,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID == 0 {
		t.Fatal("created product has no id")
	}

	if len(notifier.calls) != 2 {
		t.Fatalf("notifications = %d, want one per follower", len(notifier.calls))
	}
	notified := map[uint64]bool{}
	for _, call := range notifier.calls {
		notified[call.userID] = true
		if call.notifType != "NEW_DROP" || call.title != "New Drop" {
			t.Fatalf("call = %+v", call)
		}
		if call.data["productId"] == "" {
			t.Fatalf("call data = %v, want productId", call.data)
		}
	}
	if !notified[21] || !notified[22] {
		t.Fatalf("notified = %v, want followers 21 and 22", notified)
	}
}

func TestCreateProductNoFollowersNoNotifications(t *testing.T) {
	productRepo := &creatingProductRepo{fakeProductRepo: newFakeProductRepo()}
	categoryRepo := &fakeCategoryRepo{categories: map[uint64]*model.Category{1: {ID: 1, Name: "Textbooks"}}}
	followRepo := &fakeFollowRepo{followers: map[uint64][]uint64{}}
	userRepo := newFakeUserRepo(&model.User{ID: 10, Email: "ada@unilag.edu.ng"})
	notifier := &recordingNotifier{}
	svc := NewProductService(productRepo, categoryRepo, followRepo, userRepo, notifier)

	if _, err := svc.Create(context.Background(), 10, &dto.CreateProductDTO{Title: "Desk Lamp", Price: 2000, CategoryID: 1}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if len(notifier.calls) != 0 {
		t.Fatalf("notifications = %+v, want none", notifier.calls)
	}
}
