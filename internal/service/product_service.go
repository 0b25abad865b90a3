package service

import (
	"context"
	log "log/slog"
	"strconv"

	"github.com/jinzhu/copier"

	"github.com/joeljosepholawale/campustng/internal/api/dto"
	"github.com/joeljosepholawale/campustng/internal/model"
	"github.com/joeljosepholawale/campustng/internal/repository"
)

type ProductService interface {
	ListCategories(ctx context.Context) ([]*dto.CategoryDTO, error)
	Browse(ctx context.Context, browseDTO *dto.BrowseProductsDTO) ([]*dto.ProductDTO, int64, error)
	GetProduct(ctx context.Context, productID, viewerID uint64) (*dto.ProductDTO, error)
	ListByUser(ctx context.Context, userID uint64, page *dto.PageDTO) ([]*dto.ProductDTO, int64, error)
	Create(ctx context.Context, userID uint64, createDTO *dto.CreateProductDTO) (*dto.ProductDTO, error)
	Update(ctx context.Context, userID, productID uint64, updateDTO *dto.UpdateProductDTO) (*dto.ProductDTO, error)
	Delete(ctx context.Context, userID, productID uint64) error
	Bookmark(ctx context.Context, productID uint64) error
}

type ProductServiceImpl struct {
	productRepo     repository.ProductRepo
	categoryRepo    repository.CategoryRepo
	followRepo      repository.FollowRepo
	userRepo        repository.UserRepo
	notificationSvc NotificationService
}

func NewProductService(
	productRepo repository.ProductRepo,
	categoryRepo repository.CategoryRepo,
	followRepo repository.FollowRepo,
	userRepo repository.UserRepo,
	notificationSvc NotificationService,
) ProductService {
	return &ProductServiceImpl{
		productRepo:     productRepo,
		categoryRepo:    categoryRepo,
		followRepo:      followRepo,
		userRepo:        userRepo,
		notificationSvc: notificationSvc,
	}
}

func (s *ProductServiceImpl) ListCategories(ctx context.Context) ([]*dto.CategoryDTO, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CategoryDTO, 0, len(categories))
	for _, category := range categories {
		result = append(result, &dto.CategoryDTO{
			ID:          category.ID,
			Name:        category.Name,
			Description: category.Description,
		})
	}
	return result, nil
}

func (s *ProductServiceImpl) Browse(ctx context.Context, browseDTO *dto.BrowseProductsDTO) ([]*dto.ProductDTO, int64, error) {
	filter := &repository.ProductFilter{
		Search:      browseDTO.Search,
		CategoryID:  browseDTO.CategoryID,
		ListingType: browseDTO.ListingType,
		Condition:   browseDTO.Condition,
		MinPrice:    browseDTO.MinPrice,
		MaxPrice:    browseDTO.MaxPrice,
		SchoolID:    browseDTO.SchoolID,
		Sort:        browseDTO.Sort,
		Offset:      browseDTO.Offset(),
		Limit:       browseDTO.PageSize(),
	}

	products, total, err := s.productRepo.ListProducts(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return toProductDTOs(products), total, nil
}

func (s *ProductServiceImpl) GetProduct(ctx context.Context, productID, viewerID uint64) (*dto.ProductDTO, error) {
	product, err := s.productRepo.GetProductById(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, ErrProductNotFound
	}

	// Owners browsing their own listing don't inflate the view counter.
	if viewerID != product.UserID {
		if err = s.productRepo.IncrementViews(ctx, productID); err == nil {
			product.Views++
		}
	}
	return toProductDTO(product), nil
}

func (s *ProductServiceImpl) ListByUser(ctx context.Context, userID uint64, page *dto.PageDTO) ([]*dto.ProductDTO, int64, error) {
	filter := &repository.ProductFilter{
		UserID: userID,
		Offset: page.Offset(),
		Limit:  page.PageSize(),
	}
	products, total, err := s.productRepo.ListProducts(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return toProductDTOs(products), total, nil
}

func (s *ProductServiceImpl) Create(ctx context.Context, userID uint64, createDTO *dto.CreateProductDTO) (*dto.ProductDTO, error) {
	category, err := s.categoryRepo.GetCategoryById(ctx, createDTO.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	product := &model.Product{}
	if err = copier.Copy(product, createDTO); err != nil {
		return nil, err
	}
	product.UserID = userID
	product.IsActive = true
	if product.ListingType == "" {
		product.ListingType = "Sale"
	}

	if err = s.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}

	s.notifyFollowers(ctx, userID, product)

	return s.GetProduct(ctx, product.ID, userID)
}

// notifyFollowers tells everyone following the seller about the new listing.
func (s *ProductServiceImpl) notifyFollowers(ctx context.Context, sellerID uint64, product *model.Product) {
	followerIDs, err := s.followRepo.ListFollowers(ctx, sellerID)
	if err != nil {
		log.ErrorContext(ctx, "list followers for new listing", "seller_id", sellerID, "err", err)
		return
	}
	if len(followerIDs) == 0 {
		return
	}

	seller, err := s.userRepo.GetUserById(ctx, sellerID)
	if err != nil || seller == nil {
		return
	}

	data := map[string]string{"productId": strconv.FormatUint(product.ID, 10)}
	for _, followerID := range followerIDs {
		s.notificationSvc.Notify(ctx, followerID, "NEW_DROP", "New Drop",
			displayName(seller)+" just listed \""+product.Title+"\"", data)
	}
}

func (s *ProductServiceImpl) Update(ctx context.Context, userID, productID uint64, updateDTO *dto.UpdateProductDTO) (*dto.ProductDTO, error) {
	product, err := s.productRepo.GetProductById(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if product.UserID != userID {
		return nil, ErrNotOwner
	}

	if updateDTO.CategoryID != nil {
		category, err := s.categoryRepo.GetCategoryById(ctx, *updateDTO.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, ErrCategoryNotFound
		}
	}

	if err = copier.CopyWithOption(product, updateDTO, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, err
	}
	if err = s.productRepo.UpdateProduct(ctx, product); err != nil {
		return nil, err
	}
	return s.GetProduct(ctx, productID, userID)
}

func (s *ProductServiceImpl) Delete(ctx context.Context, userID, productID uint64) error {
	product, err := s.productRepo.GetProductById(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	if product.UserID != userID {
		return ErrNotOwner
	}
	return s.productRepo.DeleteProduct(ctx, productID)
}

func (s *ProductServiceImpl) Bookmark(ctx context.Context, productID uint64) error {
	product, err := s.productRepo.GetProductById(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil || !product.IsActive {
		return ErrProductNotFound
	}
	return s.productRepo.IncrementBookmarks(ctx, productID)
}

func toProductDTO(product *model.Product) *dto.ProductDTO {
	productDTO := &dto.ProductDTO{}
	_ = copier.Copy(productDTO, product)

	productDTO.CategoryName = product.Category.Name
	productDTO.SellerID = product.UserID
	productDTO.SellerName = displayName(&product.User)
	productDTO.SellerPhoto = product.User.ProfilePhotoURL
	productDTO.StoreName = product.User.StoreName
	return productDTO
}

func toProductDTOs(products []*model.Product) []*dto.ProductDTO {
	result := make([]*dto.ProductDTO, 0, len(products))
	for _, product := range products {
		result = append(result, toProductDTO(product))
	}
	return result
}
