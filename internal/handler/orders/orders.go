// File: internal/handler/orders/orders.go
// Package orders 實作結帳、訂單查詢與狀態管理
package orders

import (
	"errors"
	"net/http"
	"strconv"

	"gocart/internal/api"
	"gocart/internal/database"
	"gocart/internal/middleware"
	"gocart/internal/model"
	"gocart/internal/notify"
	"gocart/internal/service"
	"gocart/internal/store"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// 測試用接縫
var (
	getUserByID       = store.GetUserByID
	getProductByID    = store.GetProductByID
	createOrder       = store.CreateOrder
	getOrderByID      = store.GetOrderByID
	listOrdersByBuyer = store.ListOrdersByBuyer
	listAllOrders     = store.ListAllOrders
	updateOrderStatus = store.UpdateOrderStatus
	newTransactionID  = uuid.NewString
)

func claimsFrom(c echo.Context) (*service.CustomClaims, bool) {
	claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
	return claims, ok && claims != nil
}

// CheckoutHandler 建立訂單並記錄付款交易
// 金額由伺服器端以商品目前價格計算，不信任客戶端
// @Summary     Checkout the cart
// @Tags        orders
// @Accept      json
// @Produce     json
// @Param       request body api.CheckoutRequest true "購物車內容"
// @Success     201 {object} model.Order
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /order/checkout [post]
func CheckoutHandler(db database.DB, n *notify.Notifier) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CheckoutRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		claims, ok := claimsFrom(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		buyer, err := getUserByID(c.Request().Context(), db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error while creating order"})
		}

		var amount float64
		items := make([]model.OrderProduct, 0, len(req.Cart))
		for _, item := range req.Cart {
			product, err := getProductByID(c.Request().Context(), db, item.ProductID)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Unknown product in cart"})
				}
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error while creating order"})
			}
			amount += product.Price * float64(item.Quantity)
			items = append(items, model.OrderProduct{
				ProductID: product.ID,
				Name:      product.Name,
				Price:     product.Price,
				Quantity:  item.Quantity,
			})
		}

		order := &model.Order{
			BuyerID:       buyer.ID,
			TransactionID: newTransactionID(),
			Amount:        amount,
			Status:        model.StatusNotProcessed,
			Products:      items,
		}
		created, err := createOrder(c.Request().Context(), db, order)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error while creating order"})
		}

		n.OrderCreated(*created, *buyer)
		return c.JSON(http.StatusCreated, created)
	}
}

// MyOrdersHandler 取得當前使用者的訂單
// @Summary     List own orders
// @Tags        orders
// @Produce     json
// @Success     200 {array} model.Order
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /auth/orders [get]
func MyOrdersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := claimsFrom(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		orders, err := listOrdersByBuyer(c.Request().Context(), db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error while getting orders"})
		}
		return c.JSON(http.StatusOK, orders)
	}
}

// AllOrdersHandler 取得全部訂單（管理員限定）
// @Summary     List all orders
// @Tags        orders
// @Produce     json
// @Success     200 {array} model.Order
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /auth/all-orders [get]
func AllOrdersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		orders, err := listAllOrders(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error while getting orders"})
		}
		return c.JSON(http.StatusOK, orders)
	}
}

// OrderStatusHandler 更新訂單狀態並通知買家（管理員限定）
// @Summary     Update order status
// @Tags        orders
// @Accept      json
// @Produce     json
// @Param       orderId path int                    true "訂單 ID"
// @Param       request body api.OrderStatusRequest true "新狀態"
// @Success     200 {object} model.Order
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /auth/order-status/{orderId} [put]
func OrderStatusHandler(db database.DB, n *notify.Notifier) echo.HandlerFunc {
	return func(c echo.Context) error {
		orderID, err := strconv.Atoi(c.Param("orderId"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid order ID"})
		}
		var req api.OrderStatusRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		if !model.ValidOrderStatus(req.Status) {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid order status"})
		}

		order, err := getOrderByID(c.Request().Context(), db, orderID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Order not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error while updating order"})
		}

		if err := updateOrderStatus(c.Request().Context(), db, orderID, req.Status); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error while updating order"})
		}
		order.Status = req.Status

		if buyer, err := getUserByID(c.Request().Context(), db, order.BuyerID); err == nil {
			n.OrderStatusChanged(*order, *buyer, req.Status)
		} else {
			c.Logger().Warnf("buyer lookup for notification failed: %v", err)
		}

		return c.JSON(http.StatusOK, order)
	}
}
