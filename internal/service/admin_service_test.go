package service

import (
	"context"
	"errors"
	"testing"

	"github.com/joeljosepholawale/campustng/internal/api/dto"
	"github.com/joeljosepholawale/campustng/internal/model"
	"github.com/joeljosepholawale/campustng/internal/repository"
)

type fakeCategoryRepo struct {
	repository.CategoryRepo
	categories map[uint64]*model.Category
	inUse      map[uint64]int64
	deleted    []uint64
}

func (r *fakeCategoryRepo) GetCategoryById(_ context.Context, id uint64) (*model.Category, error) {
	return r.categories[id], nil
}

func (r *fakeCategoryRepo) CountProductsInCategory(_ context.Context, id uint64) (int64, error) {
	return r.inUse[id], nil
}

func (r *fakeCategoryRepo) DeleteCategory(_ context.Context, id uint64) error {
	r.deleted = append(r.deleted, id)
	return nil
}

type fakeSchoolRepo struct {
	repository.SchoolRepo
	schools map[uint64]*model.School
	deleted []uint64
	updated []*model.School
}

func (r *fakeSchoolRepo) GetSchoolById(_ context.Context, id uint64) (*model.School, error) {
	return r.schools[id], nil
}

func (r *fakeSchoolRepo) UpdateSchool(_ context.Context, school *model.School) error {
	r.updated = append(r.updated, school)
	return nil
}

func (r *fakeSchoolRepo) DeleteSchool(_ context.Context, id uint64) error {
	r.deleted = append(r.deleted, id)
	return nil
}

type updatableBoostPlanRepo struct {
	*fakeBoostPlanRepo
	updated []*model.BoostPlan
}

func (r *updatableBoostPlanRepo) UpdatePlan(_ context.Context, plan *model.BoostPlan) error {
	r.updated = append(r.updated, plan)
	return nil
}

type broadcastUserRepo struct {
	*fakeUserRepo
	activeIDs []uint64
}

func (r *broadcastUserRepo) ListActiveUserIDs(_ context.Context) ([]uint64, error) {
	return r.activeIDs, nil
}

func TestBanUserRejectsSelf(t *testing.T) {
	userRepo := newFakeUserRepo(&model.User{ID: 7, Email: "admin@unilag.edu.ng", IsActive: true})
	svc := NewAdminService(userRepo, nil, nil, nil, nil, nil, nil, nil, nil, &recordingNotifier{})

	if err := svc.BanUser(context.Background(), 7, 7); !errors.Is(err, ErrSelfBan) {
		t.Fatalf("err = %v, want ErrSelfBan", err)
	}
	if err := svc.BanUser(context.Background(), 7, 404); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestDeleteCategoryGuardsInUse(t *testing.T) {
	categoryRepo := &fakeCategoryRepo{
		categories: map[uint64]*model.Category{
			1: {ID: 1, Name: "Textbooks"},
			2: {ID: 2, Name: "Ghost Town"},
		},
		inUse: map[uint64]int64{1: 12},
	}
	svc := NewAdminService(nil, nil, nil, nil, nil, categoryRepo, nil, nil, nil, &recordingNotifier{})

	if err := svc.DeleteCategory(context.Background(), 1); !errors.Is(err, ErrCategoryInUse) {
		t.Fatalf("err = %v, want ErrCategoryInUse", err)
	}
	if err := svc.DeleteCategory(context.Background(), 2); err != nil {
		t.Fatalf("empty category delete error = %v", err)
	}
	if len(categoryRepo.deleted) != 1 || categoryRepo.deleted[0] != 2 {
		t.Fatalf("deleted = %v, want [2]", categoryRepo.deleted)
	}
}

type updatableCategoryRepo struct {
	*fakeCategoryRepo
	updated []*model.Category
}

func (r *updatableCategoryRepo) GetCategoryByName(_ context.Context, name string) (*model.Category, error) {
	for _, category := range r.categories {
		if category.Name == name {
			return category, nil
		}
	}
	return nil, nil
}

func (r *updatableCategoryRepo) UpdateCategory(_ context.Context, category *model.Category) error {
	r.updated = append(r.updated, category)
	return nil
}

func TestUpdateCategoryPartial(t *testing.T) {
	categoryRepo := &updatableCategoryRepo{
		fakeCategoryRepo: &fakeCategoryRepo{categories: map[uint64]*model.Category{
			1: {ID: 1, Name: "Textbooks"},
			2: {ID: 2, Name: "Electronics"},
		}},
	}
	svc := NewAdminService(nil, nil, nil, nil, nil, categoryRepo, nil, nil, nil, &recordingNotifier{})

	newName := "Books & Stationery"
	category, err := svc.UpdateCategory(context.Background(), 1, &dto.UpdateCategoryDTO{Name: &newName})
	if err != nil {
		t.Fatalf("UpdateCategory() error = %v", err)
	}
	if category.Name != "Books & Stationery" {
		t.Fatalf("category = %+v", category)
	}
	if len(categoryRepo.updated) != 1 {
		t.Fatalf("updated = %+v, want one category", categoryRepo.updated)
	}

	taken := "Electronics"
	if _, err = svc.UpdateCategory(context.Background(), 1, &dto.UpdateCategoryDTO{Name: &taken}); !errors.Is(err, ErrParamInvalid) {
		t.Fatalf("duplicate name err = %v, want ErrParamInvalid", err)
	}
	if _, err = svc.UpdateCategory(context.Background(), 404, &dto.UpdateCategoryDTO{Name: &newName}); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("missing category err = %v, want ErrCategoryNotFound", err)
	}
}

func TestRejectSchoolOnlyUnapproved(t *testing.T) {
	schoolRepo := &fakeSchoolRepo{schools: map[uint64]*model.School{
		1: {ID: 1, Name: "University of Lagos", IsApproved: true},
		2: {ID: 2, Name: "Totally Real University", IsApproved: false},
	}}
	svc := NewAdminService(nil, nil, nil, nil, nil, nil, nil, nil, schoolRepo, &recordingNotifier{})

	if err := svc.RejectSchool(context.Background(), 1); !errors.Is(err, ErrParamInvalid) {
		t.Fatalf("approved school err = %v, want ErrParamInvalid", err)
	}
	if err := svc.RejectSchool(context.Background(), 2); err != nil {
		t.Fatalf("RejectSchool() error = %v", err)
	}
	if len(schoolRepo.deleted) != 1 || schoolRepo.deleted[0] != 2 {
		t.Fatalf("deleted = %v, want [2]", schoolRepo.deleted)
	}
}

func TestUpdateBoostPlanPartial(t *testing.T) {
	planRepo := &updatableBoostPlanRepo{
		fakeBoostPlanRepo: newFakeBoostPlanRepo(&model.BoostPlan{ID: 3, Name: "7-Day Boost", Price: 1000, DurationDays: 7, IsActive: true}),
	}
	svc := NewAdminService(nil, nil, nil, nil, nil, nil, planRepo, nil, nil, &recordingNotifier{})

	newPrice := 1200.0
	inactive := false
	plan, err := svc.UpdateBoostPlan(context.Background(), 3, &dto.UpdateBoostPlanDTO{Price: &newPrice, IsActive: &inactive})
	if err != nil {
		t.Fatalf("UpdateBoostPlan() error = %v", err)
	}
	if plan.Price != 1200 || plan.Name != "7-Day Boost" || plan.DurationDays != 7 {
		t.Fatalf("plan = %+v", plan)
	}
	if len(planRepo.updated) != 1 || planRepo.updated[0].IsActive {
		t.Fatalf("updated = %+v, want one inactive plan", planRepo.updated)
	}

	_, err = svc.UpdateBoostPlan(context.Background(), 404, &dto.UpdateBoostPlanDTO{Price: &newPrice})
	if !errors.Is(err, ErrPlanNotFound) {
		t.Fatalf("missing plan err = %v, want ErrPlanNotFound", err)
	}
}

func TestBroadcastNotifiesActiveUsers(t *testing.T) {
	userRepo := &broadcastUserRepo{fakeUserRepo: newFakeUserRepo(), activeIDs: []uint64{1, 2, 3}}
	notifier := &recordingNotifier{}
	svc := NewAdminService(userRepo, nil, nil, nil, nil, nil, nil, nil, nil, notifier)

	sent, err := svc.Broadcast(context.Background(), &dto.BroadcastDTO{Title: "Maintenance", Message: "Downtime tonight at 10pm"})
	if err != nil {
		t.Fatalf("Broadcast() error = %v", err)
	}
	if sent != 3 {
		t.Fatalf("sent = %d, want 3", sent)
	}
	if len(notifier.calls) != 3 {
		t.Fatalf("notifications = %d, want 3", len(notifier.calls))
	}
	for _, call := range notifier.calls {
		if call.notifType != "SYSTEM" || call.title != "Maintenance" {
			t.Fatalf("call = %+v", call)
		}
	}
}
