package handler

import (
	"github.com/labstack/echo/v4"

	"vendio/internal/domain/entity"
	"vendio/internal/usecase"
	"vendio/pkg/response"
	"vendio/pkg/utils"
)

type ProductHandler struct {
	catalogUseCase *usecase.CatalogUseCase
}

func NewProductHandler(catalogUseCase *usecase.CatalogUseCase) *ProductHandler {
	return &ProductHandler{
		catalogUseCase: catalogUseCase,
	}
}

type createProductRequest struct {
	Name                string  `json:"name"`
	Description         string  `json:"description"`
	Price               float64 `json:"price" validate:"omitempty,gte=0"`
	Type                string  `json:"type" validate:"required,oneof=physical digital service booking"`
	Stock               *int    `json:"stock"`
	DigitalLink         string  `json:"digital_link"`
	GenerateDescription bool    `json:"generate_description"`
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	storeID := c.Get("store_id").(string)

	product, err := h.catalogUseCase.AddProduct(c.Request().Context(), storeID, usecase.AddProductInput{
		Name:                req.Name,
		Description:         req.Description,
		Price:               req.Price,
		Type:                entity.ProductType(req.Type),
		Stock:               req.Stock,
		DigitalLink:         req.DigitalLink,
		GenerateDescription: req.GenerateDescription,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	storeID := c.Get("store_id").(string)
	query := c.QueryParam("q")

	products, err := h.catalogUseCase.ListProducts(c.Request().Context(), storeID, query)
	if err != nil {
		return response.Error(c, err)
	}

	params := utils.GetPaginationParams(c)
	window := utils.Paginate(products, params.Offset, params.PageSize)

	return response.Paginated(c, window, int64(len(products)), params.Page, params.PageSize)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id := c.Param("id")

	product, err := h.catalogUseCase.GetProduct(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

// createSlotRequest carries no required tags on purpose: a partially
// filled slot form is quietly ignored rather than rejected.
type createSlotRequest struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func (h *ProductHandler) CreateSlot(c echo.Context) error {
	var req createSlotRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	productID := c.Param("id")

	slot, err := h.catalogUseCase.AddBookingSlot(c.Request().Context(), productID, req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return response.Error(c, err)
	}
	if slot == nil {
		return response.Success(c, nil)
	}

	return response.Created(c, slot)
}

func (h *ProductHandler) ListSlots(c echo.Context) error {
	productID := c.Param("id")

	slots, err := h.catalogUseCase.ListBookingSlots(c.Request().Context(), productID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, slots)
}

func (h *ProductHandler) DeleteSlot(c echo.Context) error {
	slotID := c.Param("slotId")

	if err := h.catalogUseCase.RemoveBookingSlot(c.Request().Context(), slotID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Slot removed"})
}
