package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ohio-order/middleware"
	"ohio-order/models"
	"ohio-order/repositories"
	"ohio-order/services"
)

// OrderAPIController exposes the order page's view model and actions as JSON.
type OrderAPIController struct {
	orders   *services.OrderService
	activity *repositories.ActivityRepository
}

func NewOrderAPIController(orders *services.OrderService, activity *repositories.ActivityRepository) *OrderAPIController {
	return &OrderAPIController{orders: orders, activity: activity}
}

func fail(c *gin.Context, message string, err error) {
	c.JSON(statusFor(err), models.ErrorResponse{
		Success: false,
		Message: message,
		Error:   describe(err),
	})
}

// @Summary Get current order
// @Description Current order of the table session with local edits and page state
// @Tags Pesanan
// @Produce json
// @Param X-Session-Id header string false "Session ID"
// @Success 200 {object} models.Response{data=models.PesananView}
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/pesanan [get]
func (ctrl *OrderAPIController) GetPesanan(c *gin.Context) {
	view, err := ctrl.orders.Load(c.Request.Context(), middleware.CurrentSession(c))
	if err != nil {
		fail(c, "No active order found", err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Order retrieved successfully", Data: view})
}

// @Summary Increase item quantity
// @Tags Pesanan
// @Produce json
// @Param id path string true "Order item ID"
// @Success 200 {object} models.Response{data=models.Order}
// @Failure 409 {object} models.ErrorResponse
// @Router /api/v1/pesanan/items/{id}/increase [post]
func (ctrl *OrderAPIController) Increase(c *gin.Context) {
	order, err := ctrl.orders.IncreaseQuantity(c.Request.Context(), middleware.CurrentSession(c), c.Param("id"))
	if err != nil {
		fail(c, "Failed to update quantity", err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Quantity updated", Data: order})
}

// @Summary Decrease item quantity
// @Description At quantity one the item is not decreased; the delete confirmation is opened instead
// @Tags Pesanan
// @Produce json
// @Param id path string true "Order item ID"
// @Success 200 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Router /api/v1/pesanan/items/{id}/decrease [post]
func (ctrl *OrderAPIController) Decrease(c *gin.Context) {
	order, removal, err := ctrl.orders.DecreaseQuantity(c.Request.Context(), middleware.CurrentSession(c), c.Param("id"))
	if err != nil {
		fail(c, "Failed to update quantity", err)
		return
	}

	message, pendingDelete := "Quantity updated", ""
	if removal {
		message, pendingDelete = "Confirm removal of this item", c.Param("id")
	}
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: message,
		Data: gin.H{
			"order":           order,
			"confirmRemoval":  removal,
			"pendingDeleteId": pendingDelete,
		},
	})
}

// @Summary Remove order item
// @Tags Pesanan
// @Produce json
// @Param id path string true "Order item ID"
// @Success 200 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Router /api/v1/pesanan/items/{id} [delete]
func (ctrl *OrderAPIController) RemoveItem(c *gin.Context) {
	if err := ctrl.orders.RemoveItem(c.Request.Context(), middleware.CurrentSession(c), c.Param("id")); err != nil {
		fail(c, "Failed to remove item", err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Item has been removed from your order."})
}

// @Summary Save order
// @Description Sends the quantities of every local item to the order service
// @Tags Pesanan
// @Produce json
// @Success 200 {object} models.Response{data=models.Order}
// @Failure 502 {object} models.ErrorResponse
// @Router /api/v1/pesanan/save [post]
func (ctrl *OrderAPIController) Save(c *gin.Context) {
	order, err := ctrl.orders.Save(c.Request.Context(), middleware.CurrentSession(c))
	if err != nil {
		fail(c, "Failed to save order", err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Your order has been saved successfully.", Data: order})
}

// @Summary Proceed to checkout
// @Description Reuses the session's checkout or creates one
// @Tags Pesanan
// @Produce json
// @Success 200 {object} models.Response{data=models.CheckoutResult}
// @Success 201 {object} models.Response{data=models.CheckoutResult}
// @Failure 502 {object} models.ErrorResponse
// @Router /api/v1/pesanan/checkout [post]
func (ctrl *OrderAPIController) Checkout(c *gin.Context) {
	result, err := ctrl.orders.ConfirmCheckout(c.Request.Context(), middleware.CurrentSession(c))
	if err != nil {
		fail(c, "Checkout Failed", err)
		return
	}

	status, message := http.StatusOK, "Taking you to your existing checkout..."
	if result.Created {
		status, message = http.StatusCreated, "Proceeding to checkout..."
	}
	c.JSON(status, models.Response{Success: true, Message: message, Data: result})
}

// @Summary Order activity
// @Description Settled actions recorded for the session
// @Tags Pesanan
// @Produce json
// @Param limit query int false "Max entries" default(50)
// @Success 200 {object} models.Response{data=[]models.OrderActivity}
// @Router /api/v1/pesanan/activity [get]
func (ctrl *OrderAPIController) Activity(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	activities, err := ctrl.activity.ListBySession(c.Request.Context(), middleware.CurrentSession(c).ID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to load activity", Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Activity retrieved successfully", Data: activities})
}
