package service

import (
	"context"

	"github.com/jinzhu/copier"

	"github.com/joeljosepholawale/campustng/internal/api/dto"
	"github.com/joeljosepholawale/campustng/internal/model"
	"github.com/joeljosepholawale/campustng/internal/repository"
)

// ListingService covers the non-product listing types: offered services and
// buyer requests.
type ListingService interface {
	ListServices(ctx context.Context, listDTO *dto.ListListingsDTO) ([]*dto.ServiceDTO, int64, error)
	GetService(ctx context.Context, serviceID uint64) (*dto.ServiceDTO, error)
	CreateService(ctx context.Context, userID uint64, createDTO *dto.CreateServiceDTO) (*dto.ServiceDTO, error)
	UpdateService(ctx context.Context, userID, serviceID uint64, updateDTO *dto.UpdateServiceDTO) (*dto.ServiceDTO, error)
	DeleteService(ctx context.Context, userID, serviceID uint64) error

	ListRequests(ctx context.Context, listDTO *dto.ListListingsDTO) ([]*dto.RequestDTO, int64, error)
	GetRequest(ctx context.Context, requestID uint64) (*dto.RequestDTO, error)
	CreateRequest(ctx context.Context, userID uint64, createDTO *dto.CreateRequestDTO) (*dto.RequestDTO, error)
	UpdateRequest(ctx context.Context, userID, requestID uint64, updateDTO *dto.UpdateRequestDTO) (*dto.RequestDTO, error)
	DeleteRequest(ctx context.Context, userID, requestID uint64) error
}

type ListingServiceImpl struct {
	serviceRepo repository.ServiceRepo
	requestRepo repository.RequestRepo
}

func NewListingService(serviceRepo repository.ServiceRepo, requestRepo repository.RequestRepo) ListingService {
	return &ListingServiceImpl{
		serviceRepo: serviceRepo,
		requestRepo: requestRepo,
	}
}

func (s *ListingServiceImpl) ListServices(ctx context.Context, listDTO *dto.ListListingsDTO) ([]*dto.ServiceDTO, int64, error) {
	services, total, err := s.serviceRepo.ListServices(ctx, listDTO.Search, listDTO.UserID, listDTO.Offset(), listDTO.PageSize())
	if err != nil {
		return nil, 0, err
	}

	result := make([]*dto.ServiceDTO, 0, len(services))
	for _, svc := range services {
		result = append(result, toServiceDTO(svc))
	}
	return result, total, nil
}

func (s *ListingServiceImpl) GetService(ctx context.Context, serviceID uint64) (*dto.ServiceDTO, error) {
	svc, err := s.serviceRepo.GetServiceById(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if svc == nil || !svc.IsActive {
		return nil, ErrServiceNotFound
	}
	return toServiceDTO(svc), nil
}

func (s *ListingServiceImpl) CreateService(ctx context.Context, userID uint64, createDTO *dto.CreateServiceDTO) (*dto.ServiceDTO, error) {
	svc := &model.Service{}
	if err := copier.Copy(svc, createDTO); err != nil {
		return nil, err
	}
	svc.UserID = userID
	svc.IsActive = true

	if err := s.serviceRepo.CreateService(ctx, svc); err != nil {
		return nil, err
	}
	return s.GetService(ctx, svc.ID)
}

func (s *ListingServiceImpl) UpdateService(ctx context.Context, userID, serviceID uint64, updateDTO *dto.UpdateServiceDTO) (*dto.ServiceDTO, error) {
	svc, err := s.serviceRepo.GetServiceById(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	if svc.UserID != userID {
		return nil, ErrNotOwner
	}

	if err = copier.CopyWithOption(svc, updateDTO, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, err
	}
	if err = s.serviceRepo.UpdateService(ctx, svc); err != nil {
		return nil, err
	}
	return toServiceDTO(svc), nil
}

func (s *ListingServiceImpl) DeleteService(ctx context.Context, userID, serviceID uint64) error {
	svc, err := s.serviceRepo.GetServiceById(ctx, serviceID)
	if err != nil {
		return err
	}
	if svc == nil {
		return ErrServiceNotFound
	}
	if svc.UserID != userID {
		return ErrNotOwner
	}
	return s.serviceRepo.DeleteService(ctx, serviceID)
}

func (s *ListingServiceImpl) ListRequests(ctx context.Context, listDTO *dto.ListListingsDTO) ([]*dto.RequestDTO, int64, error) {
	requests, total, err := s.requestRepo.ListRequests(ctx, listDTO.Search, listDTO.UserID, listDTO.Offset(), listDTO.PageSize())
	if err != nil {
		return nil, 0, err
	}

	result := make([]*dto.RequestDTO, 0, len(requests))
	for _, req := range requests {
		result = append(result, toRequestDTO(req))
	}
	return result, total, nil
}

func (s *ListingServiceImpl) GetRequest(ctx context.Context, requestID uint64) (*dto.RequestDTO, error) {
	req, err := s.requestRepo.GetRequestById(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req == nil || !req.IsActive {
		return nil, ErrRequestNotFound
	}
	return toRequestDTO(req), nil
}

func (s *ListingServiceImpl) CreateRequest(ctx context.Context, userID uint64, createDTO *dto.CreateRequestDTO) (*dto.RequestDTO, error) {
	req := &model.Request{}
	if err := copier.Copy(req, createDTO); err != nil {
		return nil, err
	}
	req.UserID = userID
	req.IsActive = true

	if err := s.requestRepo.CreateRequest(ctx, req); err != nil {
		return nil, err
	}
	return s.GetRequest(ctx, req.ID)
}

func (s *ListingServiceImpl) UpdateRequest(ctx context.Context, userID, requestID uint64, updateDTO *dto.UpdateRequestDTO) (*dto.RequestDTO, error) {
	req, err := s.requestRepo.GetRequestById(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, ErrRequestNotFound
	}
	if req.UserID != userID {
		return nil, ErrNotOwner
	}

	if err = copier.CopyWithOption(req, updateDTO, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, err
	}
	if err = s.requestRepo.UpdateRequest(ctx, req); err != nil {
		return nil, err
	}
	return toRequestDTO(req), nil
}

func (s *ListingServiceImpl) DeleteRequest(ctx context.Context, userID, requestID uint64) error {
	req, err := s.requestRepo.GetRequestById(ctx, requestID)
	if err != nil {
		return err
	}
	if req == nil {
		return ErrRequestNotFound
	}
	if req.UserID != userID {
		return ErrNotOwner
	}
	return s.requestRepo.DeleteRequest(ctx, requestID)
}

func toServiceDTO(svc *model.Service) *dto.ServiceDTO {
	return &dto.ServiceDTO{
		ID:            svc.ID,
		Title:         svc.Title,
		Description:   svc.Description,
		Price:         svc.Price,
		ImageURL:      svc.ImageURL,
		CreatedAt:     svc.CreatedAt,
		ProviderID:    svc.UserID,
		ProviderName:  displayName(&svc.User),
		ProviderPhoto: svc.User.ProfilePhotoURL,
	}
}

func toRequestDTO(req *model.Request) *dto.RequestDTO {
	return &dto.RequestDTO{
		ID:             req.ID,
		Title:          req.Title,
		Description:    req.Description,
		Budget:         req.Budget,
		CreatedAt:      req.CreatedAt,
		RequesterID:    req.UserID,
		RequesterName:  displayName(&req.User),
		RequesterPhoto: req.User.ProfilePhotoURL,
	}
}
