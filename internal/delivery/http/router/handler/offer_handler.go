package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"

	"market/internal/delivery/http/middleware"
	"market/internal/delivery/http/response"
	"market/internal/usecase"
)

// OfferHandlerParams holds dependencies for OfferHandler, injected by Fx.
type OfferHandlerParams struct {
	fx.In

	OfferUC usecase.OfferUsecase
	Logger  *slog.Logger
}

// OfferHandler holds dependencies for offer-related handlers.
type OfferHandler struct {
	offerUC usecase.OfferUsecase
	logger  *slog.Logger
}

// NewOfferHandler is the constructor for OfferHandler.
func NewOfferHandler(params OfferHandlerParams) *OfferHandler {
	return &OfferHandler{
		offerUC: params.OfferUC,
		logger:  params.Logger,
	}
}

// ListOffers handles the public catalog listing with filters and pagination.
func (h *OfferHandler) ListOffers(c echo.Context) error {
	input, err := parseOfferListQuery(c)
	if err != nil {
		return err
	}

	page, err := h.offerUC.ListOffers(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "")
}

// CreateOffer handles publishing a new offer with its three tiers.
func (h *OfferHandler) CreateOffer(c echo.Context) error {
	principalID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input usecase.CreateOfferInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid offer input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	view, err := h.offerUC.CreateOffer(c.Request().Context(), principalID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, view, "Offer created successfully")
}

// GetOffer retrieves one offer with its tiers and aggregates.
func (h *OfferHandler) GetOffer(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_OFFER_ID", "Invalid offer ID format")
	}

	view, err := h.offerUC.GetOffer(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// GetOfferDetail retrieves a single tier row.
func (h *OfferHandler) GetOfferDetail(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_DETAIL_ID", "Invalid offer detail ID format")
	}

	view, err := h.offerUC.GetOfferDetail(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// UpdateOffer applies a partial update with tier-matched details.
func (h *OfferHandler) UpdateOffer(c echo.Context) error {
	principalID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_OFFER_ID", "Invalid offer ID format")
	}

	var input usecase.UpdateOfferInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid offer input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	view, err := h.offerUC.UpdateOffer(c.Request().Context(), principalID, id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Offer updated successfully")
}

// DeleteOffer removes the caller's offer and its tiers.
func (h *OfferHandler) DeleteOffer(c echo.Context) error {
	principalID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_OFFER_ID", "Invalid offer ID format")
	}

	if err := h.offerUC.DeleteOffer(c.Request().Context(), principalID, id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// parseOfferListQuery reads the catalog filters out of the query string.
func parseOfferListQuery(c echo.Context) (*usecase.OfferListInput, error) {
	input := &usecase.OfferListInput{
		Search:   c.QueryParam("search"),
		Ordering: c.QueryParam("ordering"),
	}

	if raw := c.QueryParam("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid page parameter")
		}
		input.Page = page
	}

	if raw := c.QueryParam("page_size"); raw != "" {
		pageSize, err := strconv.Atoi(raw)
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid page_size parameter")
		}
		input.PageSize = pageSize
	}

	if raw := c.QueryParam("creator_id"); raw != "" {
		creatorID, err := uuid.Parse(raw)
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid creator_id parameter")
		}
		input.CreatorID = &creatorID
	}

	if raw := c.QueryParam("min_price"); raw != "" {
		minPrice, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid min_price parameter")
		}
		input.MinPrice = &minPrice
	}

	if raw := c.QueryParam("max_delivery_time"); raw != "" {
		maxDelivery, err := strconv.Atoi(raw)
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid max_delivery_time parameter")
		}
		input.MaxDeliveryTime = &maxDelivery
	}

	return input, nil
}
