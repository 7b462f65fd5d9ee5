// File: internal/handler/categories/category.go
// Package categories 實作分類 CRUD 與快取的公開清單查詢
package categories

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"gocart/internal/api"
	"gocart/internal/cache"
	"gocart/internal/database"
	"gocart/internal/model"
	"gocart/internal/store"

	"github.com/gosimple/slug"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// 測試用接縫
var (
	createCategory    = store.CreateCategory
	updateCategory    = store.UpdateCategory
	listCategories    = store.ListCategories
	getCategoryBySlug = store.GetCategoryBySlug
	deleteCategory    = store.DeleteCategory
)

// 分類清單的快取鍵與 TTL，任何分類異動時清除
const (
	listCacheKey = "categories:list"
	listCacheTTL = 5 * time.Minute
)

func invalidateList(c echo.Context, rdb cache.Cache) {
	if err := rdb.Del(c.Request().Context(), listCacheKey).Err(); err != nil {
		c.Logger().Warnf("category cache invalidation failed: %v", err)
	}
}

// CreateCategoryHandler 建立新分類（管理員限定）
// @Summary     Create a category
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       request body api.CategoryRequest true "分類資料"
// @Success     201 {object} model.Category
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /category/create-category [post]
func CreateCategoryHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CategoryRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		category := &model.Category{Name: req.Name, Slug: slug.Make(req.Name)}
		created, err := createCategory(c.Request().Context(), db, category)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error while creating category"})
		}
		invalidateList(c, rdb)
		return c.JSON(http.StatusCreated, created)
	}
}

// UpdateCategoryHandler 更新分類名稱（管理員限定）
// @Summary     Update a category
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       id      path int                 true "分類 ID"
// @Param       request body api.CategoryRequest true "分類資料"
// @Success     200 {object} model.Category
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /category/update-category/{id} [put]
func UpdateCategoryHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid category ID"})
		}
		var req api.CategoryRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		category := &model.Category{ID: id, Name: req.Name, Slug: slug.Make(req.Name)}
		if err := updateCategory(c.Request().Context(), db, category); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error while updating category"})
		}
		invalidateList(c, rdb)
		return c.JSON(http.StatusOK, category)
	}
}

// ListCategoriesHandler 取得所有分類，優先讀取快取
// @Summary     List all categories
// @Tags        categories
// @Produce     json
// @Success     200 {array} model.Category
// @Failure     500 {object} api.ErrorResponse
// @Router      /category/get-category [get]
func ListCategoriesHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		// 快取命中即不觸碰資料庫；快取故障視同未命中
		if raw, err := rdb.Get(ctx, listCacheKey).Result(); err == nil {
			var cached []model.Category
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return c.JSON(http.StatusOK, cached)
			}
		}

		categories, err := listCategories(ctx, db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error while getting all categories"})
		}

		if data, err := json.Marshal(categories); err == nil {
			if err := rdb.Set(ctx, listCacheKey, data, listCacheTTL).Err(); err != nil {
				c.Logger().Warnf("category cache write failed: %v", err)
			}
		}
		return c.JSON(http.StatusOK, categories)
	}
}

// GetCategoryHandler 以 slug 取得單一分類
// @Summary     Get a category by slug
// @Tags        categories
// @Produce     json
// @Param       slug path string true "分類 slug"
// @Success     200 {object} model.Category
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /category/single-category/{slug} [get]
func GetCategoryHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		category, err := getCategoryBySlug(c.Request().Context(), db, c.Param("slug"))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Category not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error while getting category"})
		}
		return c.JSON(http.StatusOK, category)
	}
}

// DeleteCategoryHandler 刪除分類（管理員限定）
// @Summary     Delete a category
// @Tags        categories
// @Produce     json
// @Param       id path int true "分類 ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /category/delete-category/{id} [delete]
func DeleteCategoryHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid category ID"})
		}
		if err := deleteCategory(c.Request().Context(), db, id); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error while deleting category"})
		}
		invalidateList(c, rdb)
		return c.NoContent(http.StatusNoContent)
	}
}
