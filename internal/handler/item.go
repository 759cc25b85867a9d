package handler

import (
	"github.com/ductran2702/code-challenge-backend/internal/model/item"
	"github.com/ductran2702/code-challenge-backend/internal/server"
	"github.com/ductran2702/code-challenge-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// ItemHandler serves the /items endpoints.
type ItemHandler struct {
	Handler
	itemService *service.ItemService
}

func NewItemHandler(s *server.Server, itemService *service.ItemService) *ItemHandler {
	return &ItemHandler{
		Handler:     NewHandler(s),
		itemService: itemService,
	}
}

func (h *ItemHandler) CreateItem(c echo.Context, payload *item.CreateItemPayload) (*item.Item, error) {
	return h.itemService.CreateItem(c.Request().Context(), payload)
}

func (h *ItemHandler) GetItems(c echo.Context, query *item.GetItemsQuery) ([]item.Item, error) {
	return h.itemService.GetItems(c.Request().Context(), query)
}

func (h *ItemHandler) GetItemByID(c echo.Context, payload *item.GetItemByIDPayload) (*item.Item, error) {
	return h.itemService.GetItemByID(c.Request().Context(), payload.ID)
}

func (h *ItemHandler) UpdateItem(c echo.Context, payload *item.UpdateItemPayload) (*item.Item, error) {
	return h.itemService.UpdateItem(c.Request().Context(), payload)
}

// DeleteItem answers with the removed item so clients can show or undo it.
func (h *ItemHandler) DeleteItem(c echo.Context, payload *item.DeleteItemPayload) (*item.DeleteItemResponse, error) {
	deleted, err := h.itemService.DeleteItem(c.Request().Context(), payload.ID)
	if err != nil {
		return nil, err
	}

	return &item.DeleteItemResponse{
		Message: "Item deleted",
		Item:    *deleted,
	}, nil
}
