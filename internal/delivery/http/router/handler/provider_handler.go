package handler

import (
	"log/slog"
	"net/http"
	"time"

	"catalog/internal/delivery/http/response"
	"catalog/internal/domain/entity"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProviderHandler holds dependencies for provider-related handlers.
type ProviderHandler struct {
	uc     usecase.ProviderUsecase
	logger *slog.Logger
}

// NewProviderHandler is the constructor for ProviderHandler, injected by Fx.
func NewProviderHandler(uc usecase.ProviderUsecase, logger *slog.Logger) *ProviderHandler {
	return &ProviderHandler{
		uc:     uc,
		logger: logger,
	}
}

// providerResponse is the JSON shape of a provider.
type providerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newProviderResponse(provider *entity.Provider) providerResponse {
	return providerResponse{
		ID:        provider.ID,
		Name:      provider.Name,
		Email:     provider.Email,
		Phone:     provider.Phone,
		CreatedAt: provider.CreatedAt,
		UpdatedAt: provider.UpdatedAt,
	}
}

// Create handles the provider creation request.
func (h *ProviderHandler) Create(c echo.Context) error {
	var input *usecase.CreateProviderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid provider input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	provider, err := h.uc.CreateProvider(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newProviderResponse(provider), "Provider created successfully")
}

// Get handles the single-provider lookup request.
func (h *ProviderHandler) Get(c echo.Context) error {
	id, err := parsePathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	provider, err := h.uc.GetProvider(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProviderResponse(provider), "")
}

// List handles the paginated provider listing request.
func (h *ProviderHandler) List(c echo.Context) error {
	query, err := parseListQuery(c.QueryParams())
	if err != nil {
		return errors.WithStack(err)
	}

	page, err := h.uc.ListProviders(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]providerResponse, 0, len(page.Items))
	for _, provider := range page.Items {
		items = append(items, newProviderResponse(provider))
	}

	return response.Success(c, http.StatusOK, pageResponse[providerResponse]{
		Items:   items,
		Total:   page.Total,
		Page:    page.PageNum,
		PerPage: page.PerPage,
	}, "")
}

// Update handles the provider update request.
func (h *ProviderHandler) Update(c echo.Context) error {
	id, err := parsePathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.UpdateProviderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid provider input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	provider, err := h.uc.UpdateProvider(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProviderResponse(provider), "Provider updated successfully")
}

// Delete handles the provider deletion request. Providers that still own
// products are rejected with a conflict.
func (h *ProviderHandler) Delete(c echo.Context) error {
	id, err := parsePathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteProvider(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Provider deleted successfully")
}
