package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ohio-order/middleware"
	"ohio-order/services"
)

const pesananPath = "/pesanan"

// PesananController serves the diner's order page. Every action redirects
// back to the page, which renders the draft and the toasts it produced.
type PesananController struct {
	orders    *services.OrderService
	checkouts *services.CheckoutService
}

func NewPesananController(orders *services.OrderService, checkouts *services.CheckoutService) *PesananController {
	return &PesananController{orders: orders, checkouts: checkouts}
}

func (ctrl *PesananController) Show(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	view, err := ctrl.orders.Load(c.Request.Context(), sess)
	if err != nil {
		c.HTML(http.StatusOK, "pesanan.html", gin.H{
			"Title":  "My Orders",
			"Error":  err.Error(),
			"Toasts": ctrl.orders.TakeToasts(c.Request.Context(), sess),
		})
		return
	}

	c.HTML(http.StatusOK, "pesanan.html", gin.H{
		"Title": "My Orders",
		"View":  view,
	})
}

func (ctrl *PesananController) back(c *gin.Context, title string, err error) {
	if err != nil && !alreadyToasted(err) {
		ctrl.orders.Warn(c.Request.Context(), middleware.CurrentSession(c), title, describe(err))
	}
	c.Redirect(http.StatusSeeOther, pesananPath)
}

func (ctrl *PesananController) Increase(c *gin.Context) {
	_, err := ctrl.orders.IncreaseQuantity(c.Request.Context(), middleware.CurrentSession(c), c.Param("id"))
	ctrl.back(c, "Update Failed", err)
}

func (ctrl *PesananController) Decrease(c *gin.Context) {
	_, _, err := ctrl.orders.DecreaseQuantity(c.Request.Context(), middleware.CurrentSession(c), c.Param("id"))
	ctrl.back(c, "Update Failed", err)
}

func (ctrl *PesananController) Save(c *gin.Context) {
	_, err := ctrl.orders.Save(c.Request.Context(), middleware.CurrentSession(c))
	ctrl.back(c, "Save Failed", err)
}

func (ctrl *PesananController) RequestDelete(c *gin.Context) {
	err := ctrl.orders.RequestRemove(c.Request.Context(), middleware.CurrentSession(c), c.Param("id"))
	ctrl.back(c, "Remove Failed", err)
}

func (ctrl *PesananController) ConfirmDelete(c *gin.Context) {
	_, err := ctrl.orders.ConfirmRemove(c.Request.Context(), middleware.CurrentSession(c))
	ctrl.back(c, "Remove Failed", err)
}

func (ctrl *PesananController) CancelDelete(c *gin.Context) {
	err := ctrl.orders.CancelRemove(c.Request.Context(), middleware.CurrentSession(c))
	ctrl.back(c, "Remove Failed", err)
}

func (ctrl *PesananController) OpenCheckout(c *gin.Context) {
	err := ctrl.orders.OpenCheckout(c.Request.Context(), middleware.CurrentSession(c))
	ctrl.back(c, "Checkout Failed", err)
}

func (ctrl *PesananController) CancelCheckout(c *gin.Context) {
	err := ctrl.orders.CancelCheckout(c.Request.Context(), middleware.CurrentSession(c))
	ctrl.back(c, "Checkout Failed", err)
}

func (ctrl *PesananController) ConfirmCheckout(c *gin.Context) {
	_, err := ctrl.orders.ConfirmCheckout(c.Request.Context(), middleware.CurrentSession(c))
	if err != nil {
		ctrl.back(c, "Checkout Failed", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/checkout")
}

func (ctrl *PesananController) ShowCheckout(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	data := gin.H{
		"Title":  "Checkout",
		"Toasts": ctrl.orders.TakeToasts(c.Request.Context(), sess),
	}

	checkout, err := ctrl.checkouts.Current(c.Request.Context(), sess)
	if err != nil {
		data["Error"] = err.Error()
		var userErr *services.UserError
		if !errors.As(err, &userErr) {
			data["Error"] = "Failed to load checkout"
		}
	} else {
		data["Checkout"] = checkout
	}
	c.HTML(http.StatusOK, "checkout.html", data)
}

func (ctrl *PesananController) ShowMenu(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	c.HTML(http.StatusOK, "menu.html", gin.H{
		"Title":     "Menu",
		"NomorMeja": sess.NomorMeja,
		"Toasts":    ctrl.orders.TakeToasts(c.Request.Context(), sess),
	})
}
