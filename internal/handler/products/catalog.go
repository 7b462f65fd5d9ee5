// File: internal/handler/products/catalog.go
package products

import (
	"errors"
	"net/http"
	"strconv"

	"gocart/internal/api"
	"gocart/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

const relatedProductLimit = 3

// ListProductsHandler 取得所有商品，新到舊排序
// @Summary     List all products
// @Tags        products
// @Produce     json
// @Success     200 {array} model.Product
// @Failure     500 {object} api.ErrorResponse
// @Router      /product/get-product [get]
func ListProductsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		products, err := listProducts(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error while getting products"})
		}
		return c.JSON(http.StatusOK, products)
	}
}

// GetProductHandler 以 slug 取得單一商品
// @Summary     Get a product by slug
// @Tags        products
// @Produce     json
// @Param       slug path string true "商品 slug"
// @Success     200 {object} model.Product
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /product/get-product/{slug} [get]
func GetProductHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		product, err := getProductBySlug(c.Request().Context(), db, c.Param("slug"))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Product not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error while getting product"})
		}
		return c.JSON(http.StatusOK, product)
	}
}

// SearchProductsHandler 以關鍵字搜尋商品名稱與描述
// @Summary     Search products
// @Tags        products
// @Produce     json
// @Param       keyword path string true "搜尋關鍵字"
// @Success     200 {array} model.Product
// @Failure     500 {object} api.ErrorResponse
// @Router      /product/search/{keyword} [get]
func SearchProductsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		products, err := searchProducts(c.Request().Context(), db, c.Param("keyword"))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error In Search Product API"})
		}
		return c.JSON(http.StatusOK, products)
	}
}

// FilterProductsHandler 依分類與價格區間篩選商品
// @Summary     Filter products
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       request body api.ProductFiltersRequest true "篩選條件"
// @Success     200 {array} model.Product
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /product/product-filters [post]
func FilterProductsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ProductFiltersRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}

		var minPrice, maxPrice float64
		if len(req.Radio) >= 2 {
			minPrice, maxPrice = req.Radio[0], req.Radio[1]
		}
		products, err := filterProducts(c.Request().Context(), db, req.Checked, minPrice, maxPrice)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error while filtering products"})
		}
		return c.JSON(http.StatusOK, products)
	}
}

// ProductsByCategoryHandler 取得指定分類下的商品
// @Summary     List products of a category
// @Tags        products
// @Produce     json
// @Param       slug path string true "分類 slug"
// @Success     200 {array} model.Product
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /product/product-category/{slug} [get]
func ProductsByCategoryHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		category, err := getCategoryBySlug(c.Request().Context(), db, c.Param("slug"))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Category not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error while getting products"})
		}
		products, err := listProductsByCategory(c.Request().Context(), db, category.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error while getting products"})
		}
		return c.JSON(http.StatusOK, products)
	}
}

// RelatedProductsHandler 取得同分類的其他商品，最多三筆
// @Summary     List related products
// @Tags        products
// @Produce     json
// @Param       pid path int true "商品 ID"
// @Param       cid path int true "分類 ID"
// @Success     200 {array} model.Product
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /product/related-product/{pid}/{cid} [get]
func RelatedProductsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		pid, err := strconv.Atoi(c.Param("pid"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid product ID"})
		}
		cid, err := strconv.Atoi(c.Param("cid"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid category ID"})
		}
		products, err := listRelatedProducts(c.Request().Context(), db, cid, pid, relatedProductLimit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error while getting related products"})
		}
		return c.JSON(http.StatusOK, products)
	}
}
