package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/storelane/commerce-api/internal/core/domain"
	"github.com/storelane/commerce-api/internal/core/ports"
)

// ProductHandler handles catalog routes. Reads are open to any
// authenticated account; mutations sit behind the admin role guard.
type ProductHandler struct {
	productService ports.ProductService
}

func NewProductHandler(productService ports.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// Create adds a catalog entry.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.productService.Create(c.Request().Context(), ports.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Currency:    req.Currency,
		Category:    req.Category,
		Stock:       req.Stock,
		CreatedBy:   userID,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "product created", product)
}

// Get returns one product by id.
//
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.productService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "product", product)
}

// List returns a filtered, sorted page of products. Non-admin callers only
// see active entries.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        category  query     string  false  "Filter by category"
// @Param        search    query     string  false  "Partial name match"
// @Param        sort      query     string  false  "Sort field: price or created_at"
// @Param        order     query     string  false  "asc (default) or desc"
// @Param        page      query     int     false  "Page (1-based)"
// @Param        limit     query     int     false  "Page size (max 100)"
// @Success      200       {object}  envelope
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	_, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.productService.List(c.Request().Context(), ports.ListProductsFilter{
		Category:   c.QueryParam("category"),
		Search:     c.QueryParam("search"),
		ActiveOnly: role != string(domain.RoleAdmin),
		SortBy:     c.QueryParam("sort"),
		SortDesc:   c.QueryParam("order") == "desc",
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "products", productListData{
		Products: result.Items,
		Pagination: paginationData{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// Update replaces the mutable fields of a product.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Product id"
// @Param        body  body      updateProductRequest  true  "Product fields"
// @Success      200   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.productService.Update(c.Request().Context(), c.Param("id"), ports.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Currency:    req.Currency,
		Category:    req.Category,
		Stock:       req.Stock,
		Active:      req.Active,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "product updated", product)
}

// Delete deactivates a product. The document is kept so references from
// past orders stay resolvable.
//
// @Summary      Delete (deactivate) a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.productService.Deactivate(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "product deleted", nil)
}
