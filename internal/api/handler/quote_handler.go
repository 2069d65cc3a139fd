package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/amaris/catalog-api/internal/api/metrics"
	"github.com/amaris/catalog-api/internal/core/domain"
	"github.com/amaris/catalog-api/internal/core/ports"
)

// QuoteHandler handles public quote submission and the staff quote workflow.
type QuoteHandler struct {
	service ports.QuoteService
}

func NewQuoteHandler(service ports.QuoteService) *QuoteHandler {
	return &QuoteHandler{service: service}
}

type submitQuoteRequest struct {
	CustomerName  string `json:"customer_name"  validate:"required"`
	CustomerEmail string `json:"customer_email" validate:"required,email"`
	CustomerPhone string `json:"customer_phone"`
	CompanyName   string `json:"company_name"`
	ProductID     string `json:"product_id"`
	Message       string `json:"message"        validate:"required"`
}

type updateQuoteRequest struct {
	Status     string `json:"status"      validate:"omitempty,oneof=new contacted closed"`
	AssignedTo string `json:"assigned_to"`
}

type quoteListResponse struct {
	Records []domain.Quote `json:"records"`
}

// Submit handles POST /v1/quotes, the public quote request form.
//
// @Summary      Submit a quote request
// @Description  Public endpoint. An identical submission repeated within the dedup window replays the original quote instead of creating a second one.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body      submitQuoteRequest  true  "Quote request"
// @Success      201   {object}  domain.Quote
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/quotes [post]
func (h *QuoteHandler) Submit(c echo.Context) error {
	var req submitQuoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.service.Submit(c.Request().Context(), ports.SubmitQuoteInput{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		CompanyName:   req.CompanyName,
		ProductID:     req.ProductID,
		Message:       req.Message,
	})
	if err != nil {
		return err
	}

	if result.AlreadyExisted {
		metrics.QuotesDedupTotal.WithLabelValues("hit").Inc()
		return c.JSON(http.StatusOK, result.Quote)
	}
	metrics.QuotesDedupTotal.WithLabelValues("miss").Inc()
	metrics.QuotesSubmittedTotal.Inc()
	return c.JSON(http.StatusCreated, result.Quote)
}

// List handles GET /v1/quotes, optionally filtered by status.
//
// @Summary      List quotes
// @Tags         quotes
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status (new, contacted, closed)"
// @Success      200     {object}  quoteListResponse
// @Failure      401     {object}  map[string]string
// @Failure      403     {object}  map[string]string
// @Router       /v1/quotes [get]
func (h *QuoteHandler) List(c echo.Context) error {
	quotes, err := h.service.List(c.Request().Context(), domain.QuoteStatus(c.QueryParam("status")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, quoteListResponse{Records: quotes})
}

// Stats handles GET /v1/quotes/stats for the staff dashboard.
//
// @Summary      Count quotes by workflow status
// @Tags         quotes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.QuoteStats
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /v1/quotes/stats [get]
func (h *QuoteHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Get handles GET /v1/quotes/:id.
//
// @Summary      Get a quote
// @Tags         quotes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Quote id"
// @Success      200  {object}  domain.Quote
// @Failure      404  {object}  map[string]string
// @Router       /v1/quotes/{id} [get]
func (h *QuoteHandler) Get(c echo.Context) error {
	quote, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, quote)
}

// Update handles PUT /v1/quotes/:id for workflow status and assignment.
//
// @Summary      Update a quote's status or assignee
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Quote id"
// @Param        body  body      updateQuoteRequest  true  "Fields to update"
// @Success      200   {object}  domain.Quote
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/quotes/{id} [put]
func (h *QuoteHandler) Update(c echo.Context) error {
	var req updateQuoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	quote, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateQuoteInput{
		Status:     domain.QuoteStatus(req.Status),
		AssignedTo: req.AssignedTo,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, quote)
}

// Delete handles DELETE /v1/quotes/:id.
//
// @Summary      Delete a quote
// @Tags         quotes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Quote id"
// @Success      204  "quote deleted"
// @Failure      404  {object}  map[string]string
// @Router       /v1/quotes/{id} [delete]
func (h *QuoteHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
