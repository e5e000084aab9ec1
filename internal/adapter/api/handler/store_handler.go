package handler

import (
	"github.com/labstack/echo/v4"

	"vendio/internal/usecase"
	"vendio/pkg/response"
)

type StoreHandler struct {
	storeUseCase *usecase.StoreUseCase
}

func NewStoreHandler(storeUseCase *usecase.StoreUseCase) *StoreHandler {
	return &StoreHandler{
		storeUseCase: storeUseCase,
	}
}

func (h *StoreHandler) GetMyStore(c echo.Context) error {
	uid := c.Get("uid").(string)

	store, err := h.storeUseCase.GetVendorStore(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, store)
}

type updateThemeRequest struct {
	PrimaryColor string `json:"primary_color" validate:"omitempty,hexcolor"`
	FontFamily   string `json:"font_family"`
	BorderRadius string `json:"border_radius"`
}

func (h *StoreHandler) UpdateTheme(c echo.Context) error {
	var req updateThemeRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	store, err := h.storeUseCase.UpdateTheme(c.Request().Context(), uid, usecase.UpdateThemeInput{
		PrimaryColor: req.PrimaryColor,
		FontFamily:   req.FontFamily,
		BorderRadius: req.BorderRadius,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, store)
}

type onboardingRequest struct {
	Name         string `json:"name" validate:"required"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	PrimaryColor string `json:"primary_color" validate:"omitempty,hexcolor"`
}

func (h *StoreHandler) CompleteOnboarding(c echo.Context) error {
	var req onboardingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	store, err := h.storeUseCase.CompleteOnboarding(c.Request().Context(), uid, usecase.OnboardingInput{
		Name:         req.Name,
		Slug:         req.Slug,
		Description:  req.Description,
		PrimaryColor: req.PrimaryColor,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, store)
}

// GetStorefront is the public storefront view, addressed by slug.
func (h *StoreHandler) GetStorefront(c echo.Context) error {
	slug := c.Param("slug")

	storefront, err := h.storeUseCase.GetStorefront(c.Request().Context(), slug)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, storefront)
}
