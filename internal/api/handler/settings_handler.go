package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/amaris/catalog-api/internal/core/ports"
)

// SettingsHandler reads and updates the company settings singleton.
type SettingsHandler struct {
	service ports.SettingsService
}

func NewSettingsHandler(service ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

type settingsRequest struct {
	Name            string            `json:"name" validate:"required"`
	LogoURL         string            `json:"logo_url"`
	ContactEmail    string            `json:"contact_email" validate:"omitempty,email"`
	ContactPhone    string            `json:"contact_phone"`
	Address         string            `json:"address"`
	SocialMedia     map[string]string `json:"social_media"`
	HomepageContent string            `json:"homepage_content"`
	AboutContent    string            `json:"about_content"`
}

// Get handles GET /v1/settings. Public, feeds the site chrome.
//
// @Summary      Get company settings
// @Tags         settings
// @Produce      json
// @Success      200  {object}  domain.CompanySettings
// @Failure      404  {object}  map[string]string
// @Router       /v1/settings [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	settings, err := h.service.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}

// Update handles PUT /v1/settings.
//
// @Summary      Update company settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      settingsRequest  true  "Settings"
// @Success      200   {object}  domain.CompanySettings
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/settings [put]
func (h *SettingsHandler) Update(c echo.Context) error {
	var req settingsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	settings, err := h.service.Update(c.Request().Context(), ports.SettingsInput{
		Name:            req.Name,
		LogoURL:         req.LogoURL,
		ContactEmail:    req.ContactEmail,
		ContactPhone:    req.ContactPhone,
		Address:         req.Address,
		SocialMedia:     req.SocialMedia,
		HomepageContent: req.HomepageContent,
		AboutContent:    req.AboutContent,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}
