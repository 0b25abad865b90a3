package service

import (
	"context"

	"github.com/joeljosepholawale/campustng/internal/api/dto"
	"github.com/joeljosepholawale/campustng/internal/model"
	"github.com/joeljosepholawale/campustng/internal/pkg/consts"
	"github.com/joeljosepholawale/campustng/internal/pkg/redis"
	"github.com/joeljosepholawale/campustng/internal/repository"
)

type AdminService interface {
	Stats(ctx context.Context) (*dto.PlatformStatsDTO, error)
	ListUsers(ctx context.Context, listDTO *dto.ListUsersDTO) ([]*dto.UserDTO, int64, error)
	BanUser(ctx context.Context, adminID, userID uint64) error
	UnbanUser(ctx context.Context, userID uint64) error
	ApproveIDVerification(ctx context.Context, userID uint64) error
	ListReports(ctx context.Context, listDTO *dto.ListReportsDTO) ([]*dto.ReportDTO, int64, error)
	ResolveReport(ctx context.Context, reportID uint64, status string) error
	RemoveProduct(ctx context.Context, productID uint64) error
	RemoveService(ctx context.Context, serviceID uint64) error
	RemoveRequest(ctx context.Context, requestID uint64) error
	CreateCategory(ctx context.Context, createDTO *dto.CreateCategoryDTO) (*dto.CategoryDTO, error)
	UpdateCategory(ctx context.Context, categoryID uint64, updateDTO *dto.UpdateCategoryDTO) (*dto.CategoryDTO, error)
	DeleteCategory(ctx context.Context, categoryID uint64) error
	CreateBoostPlan(ctx context.Context, createDTO *dto.CreateBoostPlanDTO) (*dto.BoostPlanDTO, error)
	UpdateBoostPlan(ctx context.Context, planID uint64, updateDTO *dto.UpdateBoostPlanDTO) (*dto.BoostPlanDTO, error)
	ListTransactions(ctx context.Context, page *dto.PageDTO) ([]*dto.TransactionDTO, int64, error)
	ListIDVerificationQueue(ctx context.Context, page *dto.PageDTO) ([]*dto.UserDTO, int64, error)
	RejectIDVerification(ctx context.Context, userID uint64) error
	ApproveSchool(ctx context.Context, schoolID uint64) error
	RejectSchool(ctx context.Context, schoolID uint64) error
	Broadcast(ctx context.Context, broadcastDTO *dto.BroadcastDTO) (int, error)
}

type AdminServiceImpl struct {
	userRepo        repository.UserRepo
	productRepo     repository.ProductRepo
	serviceRepo     repository.ServiceRepo
	requestRepo     repository.RequestRepo
	reportRepo      repository.ReportRepo
	categoryRepo    repository.CategoryRepo
	boostPlanRepo   repository.BoostPlanRepo
	transactionRepo repository.TransactionRepo
	schoolRepo      repository.SchoolRepo
	notificationSvc NotificationService
}

func NewAdminService(
	userRepo repository.UserRepo,
	productRepo repository.ProductRepo,
	serviceRepo repository.ServiceRepo,
	requestRepo repository.RequestRepo,
	reportRepo repository.ReportRepo,
	categoryRepo repository.CategoryRepo,
	boostPlanRepo repository.BoostPlanRepo,
	transactionRepo repository.TransactionRepo,
	schoolRepo repository.SchoolRepo,
	notificationSvc NotificationService,
) AdminService {
	return &AdminServiceImpl{
		userRepo:        userRepo,
		productRepo:     productRepo,
		serviceRepo:     serviceRepo,
		requestRepo:     requestRepo,
		reportRepo:      reportRepo,
		categoryRepo:    categoryRepo,
		boostPlanRepo:   boostPlanRepo,
		transactionRepo: transactionRepo,
		schoolRepo:      schoolRepo,
		notificationSvc: notificationSvc,
	}
}

func (s *AdminServiceImpl) Stats(ctx context.Context) (*dto.PlatformStatsDTO, error) {
	users, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.CountProducts(ctx)
	if err != nil {
		return nil, err
	}
	_, pending, err := s.reportRepo.ListReports(ctx, model.ReportPending, 0, 1)
	if err != nil {
		return nil, err
	}

	return &dto.PlatformStatsDTO{
		TotalUsers:     users,
		TotalProducts:  products,
		PendingReports: pending,
	}, nil
}

func (s *AdminServiceImpl) ListUsers(ctx context.Context, listDTO *dto.ListUsersDTO) ([]*dto.UserDTO, int64, error) {
	users, total, err := s.userRepo.ListUsers(ctx, listDTO.Search, listDTO.Offset(), listDTO.PageSize())
	if err != nil {
		return nil, 0, err
	}

	result := make([]*dto.UserDTO, 0, len(users))
	for _, user := range users {
		result = append(result, toUserDTO(user, true))
	}
	return result, total, nil
}

func (s *AdminServiceImpl) BanUser(ctx context.Context, adminID, userID uint64) error {
	if adminID == userID {
		return ErrSelfBan
	}

	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return s.userRepo.UpdateUserFields(ctx, userID, map[string]interface{}{"is_active": false})
}

func (s *AdminServiceImpl) UnbanUser(ctx context.Context, userID uint64) error {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return s.userRepo.UpdateUserFields(ctx, userID, map[string]interface{}{"is_active": true})
}

func (s *AdminServiceImpl) ApproveIDVerification(ctx context.Context, userID uint64) error {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.IDCardURL == nil || *user.IDCardURL == "" {
		return ErrIDCardRequired
	}

	if err = s.userRepo.UpdateUserFields(ctx, userID, map[string]interface{}{"is_id_verified": true}); err != nil {
		return err
	}
	s.notificationSvc.Notify(ctx, userID, "SYSTEM", "ID verified",
		"Your student ID has been verified", nil)
	return nil
}

func (s *AdminServiceImpl) ListReports(ctx context.Context, listDTO *dto.ListReportsDTO) ([]*dto.ReportDTO, int64, error) {
	reports, total, err := s.reportRepo.ListReports(ctx, listDTO.Status, listDTO.Offset(), listDTO.PageSize())
	if err != nil {
		return nil, 0, err
	}

	result := make([]*dto.ReportDTO, 0, len(reports))
	for _, report := range reports {
		result = append(result, &dto.ReportDTO{
			ID:               report.ID,
			Reason:           report.Reason,
			Status:           report.Status,
			ReporterID:       report.ReporterID,
			ReporterName:     displayName(&report.Reporter),
			ReportedUserID:   report.ReportedUserID,
			ReportedUserName: displayName(&report.ReportedUser),
			CreatedAt:        report.CreatedAt,
		})
	}
	return result, total, nil
}

func (s *AdminServiceImpl) ResolveReport(ctx context.Context, reportID uint64, status string) error {
	report, err := s.reportRepo.GetReportById(ctx, reportID)
	if err != nil {
		return err
	}
	if report == nil {
		return ErrReportNotFound
	}
	return s.reportRepo.UpdateReportStatus(ctx, reportID, status)
}

func (s *AdminServiceImpl) RemoveProduct(ctx context.Context, productID uint64) error {
	product, err := s.productRepo.GetProductById(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}

	if err = s.productRepo.DeleteProduct(ctx, productID); err != nil {
		return err
	}
	s.notificationSvc.Notify(ctx, product.UserID, "SYSTEM", "Listing removed",
		"Your listing \""+product.Title+"\" was removed by a moderator", nil)
	return nil
}

func (s *AdminServiceImpl) RemoveService(ctx context.Context, serviceID uint64) error {
	svc, err := s.serviceRepo.GetServiceById(ctx, serviceID)
	if err != nil {
		return err
	}
	if svc == nil {
		return ErrServiceNotFound
	}

	if err = s.serviceRepo.DeleteService(ctx, serviceID); err != nil {
		return err
	}
	s.notificationSvc.Notify(ctx, svc.UserID, "SYSTEM", "Listing removed",
		"Your service \""+svc.Title+"\" was removed by a moderator", nil)
	return nil
}

func (s *AdminServiceImpl) RemoveRequest(ctx context.Context, requestID uint64) error {
	req, err := s.requestRepo.GetRequestById(ctx, requestID)
	if err != nil {
		return err
	}
	if req == nil {
		return ErrRequestNotFound
	}

	if err = s.requestRepo.DeleteRequest(ctx, requestID); err != nil {
		return err
	}
	s.notificationSvc.Notify(ctx, req.UserID, "SYSTEM", "Listing removed",
		"Your request \""+req.Title+"\" was removed by a moderator", nil)
	return nil
}

func (s *AdminServiceImpl) CreateCategory(ctx context.Context, createDTO *dto.CreateCategoryDTO) (*dto.CategoryDTO, error) {
	existing, err := s.categoryRepo.GetCategoryByName(ctx, createDTO.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrParamInvalid
	}

	category := &model.Category{
		Name:        createDTO.Name,
		Description: createDTO.Description,
	}
	if err = s.categoryRepo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return &dto.CategoryDTO{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
	}, nil
}

func (s *AdminServiceImpl) UpdateCategory(ctx context.Context, categoryID uint64, updateDTO *dto.UpdateCategoryDTO) (*dto.CategoryDTO, error) {
	category, err := s.categoryRepo.GetCategoryById(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	if updateDTO.Name != nil && *updateDTO.Name != category.Name {
		existing, err := s.categoryRepo.GetCategoryByName(ctx, *updateDTO.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrParamInvalid
		}
		category.Name = *updateDTO.Name
	}
	if updateDTO.Description != nil {
		category.Description = updateDTO.Description
	}
	if err = s.categoryRepo.UpdateCategory(ctx, category); err != nil {
		return nil, err
	}
	return &dto.CategoryDTO{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
	}, nil
}

func (s *AdminServiceImpl) DeleteCategory(ctx context.Context, categoryID uint64) error {
	category, err := s.categoryRepo.GetCategoryById(ctx, categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}

	inUse, err := s.categoryRepo.CountProductsInCategory(ctx, categoryID)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return ErrCategoryInUse
	}
	return s.categoryRepo.DeleteCategory(ctx, categoryID)
}

func (s *AdminServiceImpl) CreateBoostPlan(ctx context.Context, createDTO *dto.CreateBoostPlanDTO) (*dto.BoostPlanDTO, error) {
	plan := &model.BoostPlan{
		Name:         createDTO.Name,
		Price:        createDTO.Price,
		DurationDays: createDTO.DurationDays,
		IsActive:     true,
	}
	if err := s.boostPlanRepo.CreatePlan(ctx, plan); err != nil {
		return nil, err
	}
	_ = redis.DeleteKey(ctx, consts.BoostPlansKey)

	return &dto.BoostPlanDTO{
		ID:           plan.ID,
		Name:         plan.Name,
		Price:        plan.Price,
		DurationDays: plan.DurationDays,
	}, nil
}

func (s *AdminServiceImpl) UpdateBoostPlan(ctx context.Context, planID uint64, updateDTO *dto.UpdateBoostPlanDTO) (*dto.BoostPlanDTO, error) {
	plan, err := s.boostPlanRepo.GetPlanById(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}

	if updateDTO.Name != nil {
		plan.Name = *updateDTO.Name
	}
	if updateDTO.Price != nil {
		plan.Price = *updateDTO.Price
	}
	if updateDTO.DurationDays != nil {
		plan.DurationDays = *updateDTO.DurationDays
	}
	if updateDTO.IsActive != nil {
		plan.IsActive = *updateDTO.IsActive
	}
	if err = s.boostPlanRepo.UpdatePlan(ctx, plan); err != nil {
		return nil, err
	}
	_ = redis.DeleteKey(ctx, consts.BoostPlansKey)

	return &dto.BoostPlanDTO{
		ID:           plan.ID,
		Name:         plan.Name,
		Price:        plan.Price,
		DurationDays: plan.DurationDays,
	}, nil
}

func (s *AdminServiceImpl) ListTransactions(ctx context.Context, page *dto.PageDTO) ([]*dto.TransactionDTO, int64, error) {
	records, total, err := s.transactionRepo.ListAll(ctx, page.Offset(), page.PageSize())
	if err != nil {
		return nil, 0, err
	}

	result := make([]*dto.TransactionDTO, 0, len(records))
	for _, record := range records {
		result = append(result, &dto.TransactionDTO{
			ID:        record.ID,
			Reference: record.Reference,
			Amount:    record.Amount,
			Status:    record.Status,
			Type:      record.Type,
			ProductID: record.ProductID,
			CreatedAt: record.CreatedAt,
		})
	}
	return result, total, nil
}

func (s *AdminServiceImpl) ListIDVerificationQueue(ctx context.Context, page *dto.PageDTO) ([]*dto.UserDTO, int64, error) {
	users, total, err := s.userRepo.ListPendingIDVerifications(ctx, page.Offset(), page.PageSize())
	if err != nil {
		return nil, 0, err
	}

	result := make([]*dto.UserDTO, 0, len(users))
	for _, user := range users {
		result = append(result, toUserDTO(user, true))
	}
	return result, total, nil
}

func (s *AdminServiceImpl) RejectIDVerification(ctx context.Context, userID uint64) error {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.IDCardURL == nil || *user.IDCardURL == "" {
		return ErrIDCardRequired
	}

	// Clearing the card URL lets the user resubmit.
	if err = s.userRepo.UpdateUserFields(ctx, userID, map[string]interface{}{
		"id_card_url":    nil,
		"is_id_verified": false,
	}); err != nil {
		return err
	}
	s.notificationSvc.Notify(ctx, userID, "SYSTEM", "ID verification rejected",
		"Your student ID could not be verified. Please submit a clearer photo.", nil)
	return nil
}

func (s *AdminServiceImpl) ApproveSchool(ctx context.Context, schoolID uint64) error {
	school, err := s.schoolRepo.GetSchoolById(ctx, schoolID)
	if err != nil {
		return err
	}
	if school == nil {
		return ErrSchoolNotFound
	}
	school.IsApproved = true
	return s.schoolRepo.UpdateSchool(ctx, school)
}

func (s *AdminServiceImpl) RejectSchool(ctx context.Context, schoolID uint64) error {
	school, err := s.schoolRepo.GetSchoolById(ctx, schoolID)
	if err != nil {
		return err
	}
	if school == nil {
		return ErrSchoolNotFound
	}
	if school.IsApproved {
		return ErrParamInvalid
	}
	return s.schoolRepo.DeleteSchool(ctx, schoolID)
}

// Broadcast queues an announcement for every active account. Delivery rides
// the normal notification path so push tokens and outbox retries apply.
func (s *AdminServiceImpl) Broadcast(ctx context.Context, broadcastDTO *dto.BroadcastDTO) (int, error) {
	ids, err := s.userRepo.ListActiveUserIDs(ctx)
	if err != nil {
		return 0, err
	}
	for _, id := range ids {
		s.notificationSvc.Notify(ctx, id, "SYSTEM", broadcastDTO.Title, broadcastDTO.Message, nil)
	}
	return len(ids), nil
}
