package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/joeljosepholawale/campustng/internal/api/dto"
	"github.com/joeljosepholawale/campustng/internal/pkg/response"
	"github.com/joeljosepholawale/campustng/internal/pkg/util"
	"github.com/joeljosepholawale/campustng/internal/service"
)

type ProductHandler struct {
	productSvc service.ProductService
}

func NewProductHandler(productSvc service.ProductService) *ProductHandler {
	return &ProductHandler{productSvc: productSvc}
}

func (s *ProductHandler) ListCategories(c *gin.Context) {
	categories, err := s.productSvc.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, categories)
}

func (s *ProductHandler) Browse(c *gin.Context) {
	var browseDTO dto.BrowseProductsDTO
	if err := c.ShouldBindQuery(&browseDTO); err != nil {
		response.Error(c, err)
		return
	}

	products, total, err := s.productSvc.Browse(c.Request.Context(), &browseDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.PagedDTO{
		Items: products,
		Total: total,
		Page:  browseDTO.Page,
		Limit: browseDTO.PageSize(),
	})
}

func (s *ProductHandler) Get(c *gin.Context) {
	productID, err := parseIDParam(c, "product_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	viewerID := c.GetUint64("user_id")

	product, err := s.productSvc.GetProduct(c.Request.Context(), productID, viewerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, product)
}

func (s *ProductHandler) ListByUser(c *gin.Context) {
	targetID, err := parseIDParam(c, "user_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var page dto.PageDTO
	if err = c.ShouldBindQuery(&page); err != nil {
		response.Error(c, err)
		return
	}

	products, total, err := s.productSvc.ListByUser(c.Request.Context(), targetID, &page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.PagedDTO{
		Items: products,
		Total: total,
		Page:  page.Page,
		Limit: page.PageSize(),
	})
}

func (s *ProductHandler) Create(c *gin.Context) {
	var createDTO dto.CreateProductDTO
	if err := c.ShouldBind(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}

	userID := c.GetUint64("user_id")
	product, err := s.productSvc.Create(c.Request.Context(), userID, &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, product)
}

func (s *ProductHandler) Update(c *gin.Context) {
	productID, err := parseIDParam(c, "product_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var updateDTO dto.UpdateProductDTO
	if err = c.ShouldBind(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}

	userID := c.GetUint64("user_id")
	product, err := s.productSvc.Update(c.Request.Context(), userID, productID, &updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, product)
}

func (s *ProductHandler) Delete(c *gin.Context) {
	productID, err := parseIDParam(c, "product_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	if err = s.productSvc.Delete(c.Request.Context(), userID, productID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ProductHandler) Bookmark(c *gin.Context) {
	productID, err := parseIDParam(c, "product_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err = s.productSvc.Bookmark(c.Request.Context(), productID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
