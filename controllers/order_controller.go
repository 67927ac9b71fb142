package controllers

import (
	"errors"

	"github.com/bhagatankit05/Restuarant-App/pkg/resp"
	"github.com/bhagatankit05/Restuarant-App/services"
	"github.com/bhagatankit05/Restuarant-App/utils"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{svc: svc}
}

// Every input problem during order creation is the client's fault, so the
// menu-item lookup failures map to 400 here, unlike the catalog endpoints.
func orderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrOrderItemNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrEmptyOrder),
		errors.Is(err, services.ErrMenuItemNotFound),
		errors.Is(err, services.ErrMenuItemUnavailable),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrOrderNotPending):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.svc.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		orderError(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders
func (oc *OrderController) List(c *gin.Context) {
	orders, err := oc.svc.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	order, err := oc.svc.GetForUser(utils.CurrentUserID(c), c.Param("id"))
	if err != nil {
		orderError(c, err)
		return
	}
	resp.OK(c, order)
}

type UpdateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// PUT /orders/:id/status
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	var req UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.svc.UpdateStatus(utils.CurrentUserID(c), c.Param("id"), req.Status)
	if err != nil {
		orderError(c, err)
		return
	}
	resp.OK(c, order)
}

type UpdateItemReq struct {
	Quantity int `json:"quantity"`
}

// PUT /orders/:id/items/:itemId
func (oc *OrderController) UpdateItem(c *gin.Context) {
	var req UpdateItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.svc.UpdateItemQuantity(
		utils.CurrentUserID(c), c.Param("id"), c.Param("itemId"), req.Quantity)
	if err != nil {
		orderError(c, err)
		return
	}
	resp.OK(c, order)
}

// DELETE /orders/:id/items/:itemId
func (oc *OrderController) RemoveItem(c *gin.Context) {
	order, deleted, err := oc.svc.RemoveItem(
		utils.CurrentUserID(c), c.Param("id"), c.Param("itemId"))
	if err != nil {
		orderError(c, err)
		return
	}
	if deleted {
		resp.OK(c, gin.H{"message": "order deleted (no items remaining)"})
		return
	}
	resp.OK(c, order)
}

// DELETE /orders/:id
func (oc *OrderController) Delete(c *gin.Context) {
	if err := oc.svc.Delete(utils.CurrentUserID(c), c.Param("id")); err != nil {
		orderError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "order deleted"})
}
