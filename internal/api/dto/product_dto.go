package dto

import "time"

type CreateProductDTO struct {
	Title       string  `json:"title" binding:"required" validate:"min=3,max=150"`
	Description string  `json:"description" validate:"max=5000"`
	Price       float64 `json:"price" binding:"required" validate:"gt=0"`
	CategoryID  uint64  `json:"categoryId" binding:"required"`
	Condition   string  `json:"condition" validate:"omitempty,max=30"`
	ListingType string  `json:"listingType" validate:"omitempty,oneof=Sale Rent Swap"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,max=255"`
	ImageURL2   *string `json:"imageUrl2" validate:"omitempty,max=255"`
}

type UpdateProductDTO struct {
	Title       *string  `json:"title" validate:"omitempty,min=3,max=150"`
	Description *string  `json:"description" validate:"omitempty,max=5000"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	CategoryID  *uint64  `json:"categoryId"`
	Condition   *string  `json:"condition" validate:"omitempty,max=30"`
	ListingType *string  `json:"listingType" validate:"omitempty,oneof=Sale Rent Swap"`
	ImageURL    *string  `json:"imageUrl" validate:"omitempty,max=255"`
	ImageURL2   *string  `json:"imageUrl2" validate:"omitempty,max=255"`
	IsSold      *bool    `json:"isSold"`
	IsActive    *bool    `json:"isActive"`
}

type BrowseProductsDTO struct {
	PageDTO
	Search      string  `form:"search"`
	CategoryID  uint64  `form:"categoryId"`
	ListingType string  `form:"listingType"`
	Condition   string  `form:"condition"`
	MinPrice    float64 `form:"minPrice"`
	MaxPrice    float64 `form:"maxPrice"`
	SchoolID    uint64  `form:"schoolId"`
	Sort        string  `form:"sort"`
}

type ProductDTO struct {
	ID            uint64     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Price         float64    `json:"price"`
	Condition     string     `json:"condition"`
	ListingType   string     `json:"listingType"`
	ImageURL      *string    `json:"imageUrl"`
	ImageURL2     *string    `json:"imageUrl2"`
	Views         int64      `json:"views"`
	Bookmarks     int64      `json:"bookmarks"`
	IsSold        bool       `json:"isSold"`
	IsPromoted    bool       `json:"isPromoted"`
	PromotedUntil *time.Time `json:"promotedUntil"`
	CreatedAt     time.Time  `json:"createdAt"`

	CategoryID   uint64  `json:"categoryId"`
	CategoryName string  `json:"categoryName"`
	SellerID     uint64  `json:"sellerId"`
	SellerName   string  `json:"sellerName"`
	SellerPhoto  *string `json:"sellerPhoto"`
	StoreName    *string `json:"storeName"`
}

type CategoryDTO struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type CreateCategoryDTO struct {
	Name        string  `json:"name" binding:"required" validate:"min=2,max=80"`
	Description *string `json:"description" validate:"omitempty,max=255"`
}

type UpdateCategoryDTO struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=80"`
	Description *string `json:"description" validate:"omitempty,max=255"`
}
