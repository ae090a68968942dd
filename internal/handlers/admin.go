package handlers

import (
	"net/http"
	"strconv"

	"grosirku-be/internal/apperr"
	"grosirku-be/internal/banner"
	"grosirku-be/internal/order"
	"grosirku-be/internal/product"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/admin/login.
func (h *Handlers) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, apperr.Validation("invalid request body"))
		return
	}

	token, sel, err := h.sellers.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "username": sel.Username})
}

// AdminListProducts handles GET /api/admin/products. Unlike the
// storefront it includes inactive records.
func (h *Handlers) AdminListProducts(c *gin.Context) {
	products, err := h.products.List(c.Request.Context(), true)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// CreateProduct handles POST /api/admin/products (multipart form).
func (h *Handlers) CreateProduct(c *gin.Context) {
	input, err := h.productForm(c)
	if err != nil {
		handleError(c, err)
		return
	}

	p, err := h.products.Create(c.Request.Context(), *input)
	if err != nil {
		h.discardImage(input.ImagePath)
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// UpdateProduct handles PUT /api/admin/products/:id (multipart form).
// A request without a new image keeps the existing one.
func (h *Handlers) UpdateProduct(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		handleError(c, err)
		return
	}

	input, err := h.productForm(c)
	if err != nil {
		handleError(c, err)
		return
	}

	var oldImage *string
	if input.ImagePath != nil {
		if prev, err := h.products.Get(c.Request.Context(), id); err == nil {
			oldImage = prev.ImagePath
		}
	}

	p, err := h.products.Update(c.Request.Context(), product.UpdateProduct{
		ID:            id,
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		OriginalPrice: input.OriginalPrice,
		Quantity:      input.Quantity,
		UnitType:      input.UnitType,
		ImagePath:     input.ImagePath,
		IsActive:      c.DefaultPostForm("is_active", "true") == "true",
	})
	if err != nil {
		h.discardImage(input.ImagePath)
		handleError(c, err)
		return
	}
	h.discardImage(oldImage)
	c.JSON(http.StatusOK, p)
}

// DeleteProduct handles DELETE /api/admin/products/:id and removes
// the product's image file with it.
func (h *Handlers) DeleteProduct(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		handleError(c, err)
		return
	}

	p, err := h.products.Delete(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	if p.ImagePath != nil {
		h.discardImage(p.ImagePath)
	}
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

// MarkOutOfStock handles POST /api/admin/products/:id/out-of-stock.
func (h *Handlers) MarkOutOfStock(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		handleError(c, err)
		return
	}

	if err := h.products.MarkOutOfStock(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product marked out of stock"})
}

func (h *Handlers) productForm(c *gin.Context) (*product.NewProduct, error) {
	price, err := formFloat(c, "price")
	if err != nil {
		return nil, err
	}
	quantity, err := formFloat(c, "quantity")
	if err != nil {
		return nil, err
	}

	input := &product.NewProduct{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Price:       price,
		Quantity:    quantity,
		UnitType:    c.PostForm("unit_type"),
	}

	if raw := c.PostForm("original_price"); raw != "" {
		original, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, apperr.Validation("invalid original_price")
		}
		input.OriginalPrice = &original
	}

	if fh, err := c.FormFile("image"); err == nil {
		rel, err := h.uploads.Save(fh, "products")
		if err != nil {
			return nil, err
		}
		input.ImagePath = &rel
	}

	return input, nil
}

func formFloat(c *gin.Context, field string) (float64, error) {
	raw := c.PostForm(field)
	if raw == "" {
		return 0, apperr.Validation(field + " is required")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, apperr.Validation("invalid " + field)
	}
	return v, nil
}

// discardImage removes a freshly uploaded file after the DB write it
// belonged to failed.
func (h *Handlers) discardImage(rel *string) {
	if rel != nil {
		_ = h.uploads.Remove(*rel)
	}
}

// AdminListBanners handles GET /api/admin/banners.
func (h *Handlers) AdminListBanners(c *gin.Context) {
	banners, err := h.banners.List(c.Request.Context(), true)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"banners": banners})
}

// CreateBanner handles POST /api/admin/banners (multipart form).
func (h *Handlers) CreateBanner(c *gin.Context) {
	input, err := h.bannerForm(c)
	if err != nil {
		handleError(c, err)
		return
	}

	b, err := h.banners.Create(c.Request.Context(), *input)
	if err != nil {
		h.discardImage(input.ImagePath)
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// UpdateBanner handles PUT /api/admin/banners/:id (multipart form).
func (h *Handlers) UpdateBanner(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		handleError(c, err)
		return
	}

	input, err := h.bannerForm(c)
	if err != nil {
		handleError(c, err)
		return
	}

	var oldImage *string
	if input.ImagePath != nil {
		if prev, err := h.banners.Get(c.Request.Context(), id); err == nil {
			oldImage = prev.ImagePath
		}
	}

	b, err := h.banners.Update(c.Request.Context(), banner.UpdateBanner{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		ImagePath:   input.ImagePath,
		IsActive:    input.IsActive,
	})
	if err != nil {
		h.discardImage(input.ImagePath)
		handleError(c, err)
		return
	}
	h.discardImage(oldImage)
	c.JSON(http.StatusOK, b)
}

// DeleteBanner handles DELETE /api/admin/banners/:id.
func (h *Handlers) DeleteBanner(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		handleError(c, err)
		return
	}

	b, err := h.banners.Delete(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	if b.ImagePath != nil {
		h.discardImage(b.ImagePath)
	}
	c.JSON(http.StatusOK, gin.H{"message": "banner deleted"})
}

func (h *Handlers) bannerForm(c *gin.Context) (*banner.NewBanner, error) {
	input := &banner.NewBanner{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		IsActive:    c.DefaultPostForm("is_active", "true") == "true",
	}

	if fh, err := c.FormFile("image"); err == nil {
		rel, err := h.uploads.Save(fh, "banners")
		if err != nil {
			return nil, err
		}
		input.ImagePath = &rel
	}

	return input, nil
}

// AdminListOrders handles GET /api/admin/orders.
func (h *Handlers) AdminListOrders(c *gin.Context) {
	orders, err := h.orders.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// UpdateOrderStatus handles POST /api/admin/orders/:id/status.
func (h *Handlers) UpdateOrderStatus(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		handleError(c, err)
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, apperr.Validation("invalid request body"))
		return
	}

	o, err := h.orders.AdvanceStatus(c.Request.Context(), id, order.Status(req.Status))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// CancelOrder handles POST /api/admin/orders/:id/cancel.
func (h *Handlers) CancelOrder(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		handleError(c, err)
		return
	}

	o, err := h.orders.Cancel(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// DeleteOrder handles DELETE /api/admin/orders/:id.
func (h *Handlers) DeleteOrder(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		handleError(c, err)
		return
	}

	if err := h.orders.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "order deleted"})
}

// Dashboard handles GET /api/admin/dashboard.
func (h *Handlers) Dashboard(c *gin.Context) {
	stats, err := h.orders.DashboardStats(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
