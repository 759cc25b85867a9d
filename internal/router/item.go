package router

import (
	"net/http"

	"github.com/ductran2702/code-challenge-backend/internal/handler"
	"github.com/ductran2702/code-challenge-backend/internal/model/item"
	"github.com/labstack/echo/v4"
)

func registerItemRoutes(r *echo.Echo, h *handler.Handlers) {
	items := r.Group("/items")

	items.POST("", handler.Handle(h.Item.Handler, h.Item.CreateItem, http.StatusCreated, &item.CreateItemPayload{}))
	items.GET("", handler.Handle(h.Item.Handler, h.Item.GetItems, http.StatusOK, &item.GetItemsQuery{}))
	items.GET("/:id", handler.Handle(h.Item.Handler, h.Item.GetItemByID, http.StatusOK, &item.GetItemByIDPayload{}))
	items.PUT("/:id", handler.Handle(h.Item.Handler, h.Item.UpdateItem, http.StatusOK, &item.UpdateItemPayload{}))
	items.DELETE("/:id", handler.Handle(h.Item.Handler, h.Item.DeleteItem, http.StatusOK, &item.DeleteItemPayload{}))
}
