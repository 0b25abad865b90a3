package service

import (
	"context"
	"testing"

	"github.com/joeljosepholawale/campustng/internal/api/dto"
	"github.com/joeljosepholawale/campustng/internal/model"
	"github.com/joeljosepholawale/campustng/internal/repository"
)

type listingSchoolRepo struct {
	*fakeSchoolRepo
	lastFilter *repository.SchoolFilter
	results    []*model.School
}

func (r *listingSchoolRepo) ListSchools(_ context.Context, filter *repository.SchoolFilter) ([]*model.School, error) {
	r.lastFilter = filter
	return r.results, nil
}

func TestListSchoolsPassesFilters(t *testing.T) {
	repo := &listingSchoolRepo{
		fakeSchoolRepo: &fakeSchoolRepo{},
		results: []*model.School{
			{ID: 1, Name: "University of Lagos", Type: "university", State: "Lagos"},
		},
	}
	svc := NewSchoolService(repo)

	schools, err := svc.List(context.Background(), &dto.ListSchoolsDTO{
		Search: "lagos",
		State:  "Lagos",
		Type:   "university",
	})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(schools) != 1 || schools[0].Name != "University of Lagos" {
		t.Fatalf("schools = %+v", schools)
	}

	if repo.lastFilter == nil {
		t.Fatal("repo never received a filter")
	}
	if !repo.lastFilter.ApprovedOnly {
		t.Error("public listing must only include approved schools")
	}
	if repo.lastFilter.Search != "lagos" || repo.lastFilter.State != "Lagos" || repo.lastFilter.Type != "university" {
		t.Fatalf("filter = %+v", repo.lastFilter)
	}
}

func TestListSchoolsDefaultsToApproved(t *testing.T) {
	repo := &listingSchoolRepo{fakeSchoolRepo: &fakeSchoolRepo{}}
	svc := NewSchoolService(repo)

	if _, err := svc.List(context.Background(), &dto.ListSchoolsDTO{}); err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if !repo.lastFilter.ApprovedOnly {
		t.Error("unfiltered listing must still hide unapproved schools")
	}
}
