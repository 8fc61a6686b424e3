package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/airlinehq/airline-api/internal/api/metrics"
	"github.com/airlinehq/airline-api/internal/core/domain"
	"github.com/airlinehq/airline-api/internal/core/ports"
)

type RouteHandler struct {
	routeService ports.RouteService
}

func NewRouteHandler(routeService ports.RouteService) *RouteHandler {
	return &RouteHandler{routeService: routeService}
}

func (h *RouteHandler) List(c echo.Context) error {
	page, limit, err := pageParams(c)
	if err != nil {
		return err
	}

	routes, total, err := h.routeService.List(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newListResponse(routes, len(routes), page, limit, total))
}

func (h *RouteHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	route, err := h.routeService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Success: true, Data: route})
}

func (h *RouteHandler) Create(c echo.Context) error {
	var req createRouteRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	route, err := h.routeService.Create(c.Request().Context(), ports.CreateRouteInput{
		Origin:            req.Origin,
		Destination:       req.Destination,
		Distance:          req.Distance,
		EstimatedDuration: req.EstimatedDuration,
	})
	if err != nil {
		return err
	}

	metrics.RouteMutationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, dataResponse{Success: true, Data: route})
}

func (h *RouteHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateRouteRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	route, err := h.routeService.Update(c.Request().Context(), id, ports.UpdateRouteInput{
		Origin:            req.Origin,
		Destination:       req.Destination,
		Distance:          req.Distance,
		EstimatedDuration: req.EstimatedDuration,
	})
	if err != nil {
		return err
	}

	metrics.RouteMutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, dataResponse{Success: true, Data: route})
}

func (h *RouteHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.routeService.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.RouteMutationsTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "route deleted"})
}
