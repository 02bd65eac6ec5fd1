package api

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Checker-Finance/octopus-adapter/internal/catalog"
	"github.com/Checker-Finance/octopus-adapter/internal/octopus"
	"github.com/Checker-Finance/octopus-adapter/internal/tariff"
	"github.com/Checker-Finance/octopus-adapter/pkg/model"
)

// ProductService defines the operations needed by the handler.
type ProductService interface {
	SelectProduct(ctx context.Context) (model.Product, error)
	ListProducts(ctx context.Context) (model.Catalog, error)
}

// ProductsHandler serves the product catalog and the selected tariff.
type ProductsHandler struct {
	logger  *zap.Logger
	service ProductService
	timeout time.Duration
}

// NewProductsHandler creates a ProductsHandler. A zero timeout leaves the request context as is.
func NewProductsHandler(logger *zap.Logger, service ProductService, timeout time.Duration) *ProductsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductsHandler{logger: logger, service: service, timeout: timeout}
}

func (h *ProductsHandler) requestContext(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	if h.timeout > 0 {
		return context.WithTimeout(c.UserContext(), h.timeout)
	}
	return context.WithCancel(c.UserContext())
}

// GET /api/v1/products
func (h *ProductsHandler) ListProducts(c *fiber.Ctx) error {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	cat, err := h.service.ListProducts(ctx)
	if err != nil {
		h.logger.Error("api.list_products.failed", zap.Error(err))
		return writeError(c, err)
	}

	products := cat.Products
	if products == nil {
		products = []model.Product{}
	}
	return c.JSON(ProductListResponse{
		Count:    len(products),
		Products: products,
	})
}

// GET /api/v1/products/selected
func (h *ProductsHandler) SelectedProduct(c *fiber.Ctx) error {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	p, err := h.service.SelectProduct(ctx)
	if err != nil {
		h.logger.Error("api.selected_product.failed", zap.Error(err))
		return writeError(c, err)
	}
	return c.JSON(p)
}

// writeError maps pipeline errors onto HTTP statuses.
func writeError(c *fiber.Ctx, err error) error {
	resp := ErrorResponse{
		Error:  err.Error(),
		Reason: tariff.Outcome(err),
	}

	var (
		notOne    *catalog.NotExactlyOneError
		statusErr *octopus.StatusError
	)
	switch {
	case errors.As(err, &notOne):
		found := notOne.Found
		resp.Found = &found
		return c.Status(fiber.StatusConflict).JSON(resp)
	case errors.As(err, &statusErr):
		resp.UpstreamStatus = statusErr.StatusCode
		return c.Status(fiber.StatusBadGateway).JSON(resp)
	case errors.Is(err, context.DeadlineExceeded):
		return c.Status(fiber.StatusGatewayTimeout).JSON(resp)
	case errors.Is(err, octopus.ErrFetch), errors.Is(err, catalog.ErrDecode):
		return c.Status(fiber.StatusBadGateway).JSON(resp)
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(resp)
	}
}
