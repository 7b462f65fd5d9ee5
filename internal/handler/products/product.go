// File: internal/handler/products/product.go
// Package products 實作商品 CRUD、搜尋與篩選
package products

import (
	"net/http"
	"strconv"

	"gocart/internal/api"
	"gocart/internal/database"
	"gocart/internal/model"
	"gocart/internal/store"

	"github.com/gosimple/slug"
	"github.com/labstack/echo/v4"
)

// 測試用接縫
var (
	createProduct          = store.CreateProduct
	updateProduct          = store.UpdateProduct
	deleteProduct          = store.DeleteProduct
	listProducts           = store.ListProducts
	getProductBySlug       = store.GetProductBySlug
	searchProducts         = store.SearchProducts
	filterProducts         = store.FilterProducts
	listProductsByCategory = store.ListProductsByCategory
	listRelatedProducts    = store.ListRelatedProducts
	getCategoryBySlug      = store.GetCategoryBySlug
)

// CreateProductHandler 建立新商品（管理員限定）
// @Summary     Create a product
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       request body api.ProductRequest true "商品資料"
// @Success     201 {object} model.Product
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /product/create-product [post]
func CreateProductHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ProductRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		product := &model.Product{
			Name:        req.Name,
			Slug:        slug.Make(req.Name),
			Description: req.Description,
			Price:       req.Price,
			CategoryID:  req.CategoryID,
			Quantity:    req.Quantity,
			Shipping:    req.Shipping,
		}
		created, err := createProduct(c.Request().Context(), db, product)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error while creating product"})
		}
		return c.JSON(http.StatusCreated, created)
	}
}

// UpdateProductHandler 更新商品（管理員限定）
// @Summary     Update a product
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       pid     path int                true "商品 ID"
// @Param       request body api.ProductRequest true "商品資料"
// @Success     200 {object} model.Product
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /product/update-product/{pid} [put]
func UpdateProductHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		pid, err := strconv.Atoi(c.Param("pid"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid product ID"})
		}
		var req api.ProductRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		product := &model.Product{
			ID:          pid,
			Name:        req.Name,
			Slug:        slug.Make(req.Name),
			Description: req.Description,
			Price:       req.Price,
			CategoryID:  req.CategoryID,
			Quantity:    req.Quantity,
			Shipping:    req.Shipping,
		}
		if err := updateProduct(c.Request().Context(), db, product); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error while updating product"})
		}
		return c.JSON(http.StatusOK, product)
	}
}

// DeleteProductHandler 刪除商品（管理員限定）
// @Summary     Delete a product
// @Tags        products
// @Produce     json
// @Param       pid path int true "商品 ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /product/delete-product/{pid} [delete]
func DeleteProductHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		pid, err := strconv.Atoi(c.Param("pid"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid product ID"})
		}
		if err := deleteProduct(c.Request().Context(), db, pid); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error while deleting product"})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
