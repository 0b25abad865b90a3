package service

import (
	"context"

	"github.com/joeljosepholawale/campustng/internal/api/dto"
	"github.com/joeljosepholawale/campustng/internal/model"
	"github.com/joeljosepholawale/campustng/internal/repository"
)

type SchoolService interface {
	List(ctx context.Context, listDTO *dto.ListSchoolsDTO) ([]*dto.SchoolDTO, error)
	Suggest(ctx context.Context, createDTO *dto.CreateSchoolDTO) (*dto.SchoolDTO, error)
}

type SchoolServiceImpl struct {
	schoolRepo repository.SchoolRepo
}

func NewSchoolService(schoolRepo repository.SchoolRepo) SchoolService {
	return &SchoolServiceImpl{schoolRepo: schoolRepo}
}

func (s *SchoolServiceImpl) List(ctx context.Context, listDTO *dto.ListSchoolsDTO) ([]*dto.SchoolDTO, error) {
	schools, err := s.schoolRepo.ListSchools(ctx, &repository.SchoolFilter{
		ApprovedOnly: true,
		Search:       listDTO.Search,
		State:        listDTO.State,
		Type:         listDTO.Type,
	})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.SchoolDTO, 0, len(schools))
	for _, school := range schools {
		result = append(result, toSchoolDTO(school))
	}
	return result, nil
}

// Suggest records a user-submitted school. It stays hidden until an admin
// approves it.
func (s *SchoolServiceImpl) Suggest(ctx context.Context, createDTO *dto.CreateSchoolDTO) (*dto.SchoolDTO, error) {
	school := &model.School{
		Name:  createDTO.Name,
		Type:  createDTO.Type,
		State: createDTO.State,
		City:  createDTO.City,
	}
	if err := s.schoolRepo.CreateSchool(ctx, school); err != nil {
		return nil, err
	}
	return toSchoolDTO(school), nil
}

func toSchoolDTO(school *model.School) *dto.SchoolDTO {
	return &dto.SchoolDTO{
		ID:      school.ID,
		Name:    school.Name,
		Type:    school.Type,
		State:   school.State,
		City:    school.City,
		LogoURL: school.LogoURL,
	}
}
