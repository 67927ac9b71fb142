package controllers

import (
	"errors"

	"github.com/bhagatankit05/Restuarant-App/pkg/resp"
	"github.com/bhagatankit05/Restuarant-App/services"
	"github.com/gin-gonic/gin"
)

type MenuController struct {
	svc *services.MenuService
}

func NewMenuController(svc *services.MenuService) *MenuController {
	return &MenuController{svc: svc}
}

// GET /menu
func (ctl *MenuController) List(c *gin.Context) {
	items, err := ctl.svc.List(c.Request.Context())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /menu/:id
func (ctl *MenuController) Get(c *gin.Context) {
	item, err := ctl.svc.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrMenuItemNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// POST /menu
func (ctl *MenuController) Create(c *gin.Context) {
	var req services.CreateMenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ctl.svc.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMenuFieldsRequired),
			errors.Is(err, services.ErrInvalidCategory),
			errors.Is(err, services.ErrNegativePrice):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, item)
}

// PUT /menu/:id
func (ctl *MenuController) Update(c *gin.Context) {
	var req services.UpdateMenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ctl.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMenuItemNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrInvalidCategory),
			errors.Is(err, services.ErrNegativePrice):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, item)
}

// DELETE /menu/:id
func (ctl *MenuController) Delete(c *gin.Context) {
	if err := ctl.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, services.ErrMenuItemNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "menu item deleted"})
}
