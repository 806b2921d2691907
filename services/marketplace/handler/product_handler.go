package handler

import (
	"context"
	"io"
	"net/http"

	"stakex/internal/models"
	product "stakex/internal/productService"
	"stakex/services/marketplace/helpers"
	"stakex/utils"

	"github.com/gin-gonic/gin"
)

type ProductServiceInterface interface {
	Create(ctx context.Context, ownerID string, in product.CreateInput) (models.Product, error)
	Get(ctx context.Context, productID string) (models.Product, error)
	List(ctx context.Context, ownerID string) ([]models.Product, error)
	GetImage(ctx context.Context, productID string) (models.StoredImage, error)
	Update(ctx context.Context, productID, actorID string, in product.UpdateInput) (models.Product, error)
	Delete(ctx context.Context, productID, actorID string) error
}

type ProductHandler struct {
	service       ProductServiceInterface
	maxImageBytes int64
}

func NewProductHandler(service ProductServiceInterface, maxImageBytes int64) *ProductHandler {
	return &ProductHandler{service: service, maxImageBytes: maxImageBytes}
}

// readImage pulls the optional multipart image out of the request. A
// missing file is not an error; the JSON imageUrl field covers that case.
func (h *ProductHandler) readImage(c *gin.Context) (*models.StoredImage, error) {
	if c.ContentType() != "multipart/form-data" {
		return nil, nil
	}
	fileHeader, err := c.FormFile("image")
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		return nil, err
	}
	if fileHeader.Size > h.maxImageBytes {
		return nil, helpers.ErrImageTooLarge
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxImageBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > h.maxImageBytes {
		return nil, helpers.ErrImageTooLarge
	}

	return &models.StoredImage{
		Data:        data,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Filename:    fileHeader.Filename,
		Size:        int64(len(data)),
	}, nil
}

// CreateProductHandler handles POST /api/posts
func (h *ProductHandler) CreateProductHandler(c *gin.Context) {
	userID, ok := helpers.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, helpers.ErrMissingIdentity, "authentication required")
		return
	}

	var req helpers.CreateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		helpers.HandleBindError(c, "CreateProductHandler", err)
		return
	}

	stored, err := h.readImage(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err, "invalid image upload")
		utils.Warn("CreateProductHandler: image upload rejected", map[string]any{"error": err.Error()})
		return
	}

	image := models.ImageRef{Stored: stored}
	if stored == nil && req.ImageURL != "" {
		image.External = &models.ExternalImage{URL: req.ImageURL}
	}

	p, err := h.service.Create(c.Request.Context(), userID, product.CreateInput{
		Name:                    req.Name,
		Description:             req.Description,
		Image:                   image,
		Price:                   req.Price,
		DaoID:                   req.DaoID,
		OnMarket:                req.OnMarket,
		PersonalItem:            req.PersonalItem,
		YearsOfUse:              req.YearsOfUse,
		AuthenticityCertificate: req.AuthenticityCertificate,
		IsMarketItem:            req.IsMarketItem,
		InitialBid:              req.InitialBid,
		DemandPrice:             req.DemandPrice,
		IsRentable:              req.IsRentable,
	})
	if err != nil {
		helpers.RespondError(c, "CreateProductHandler", err, map[string]any{"owner": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToProductResponse(p), "product created successfully")
	helpers.LogSuccess("CreateProductHandler", "product created successfully", map[string]any{
		"product_id": p.ID,
		"owner":      userID,
	})
}

// ListProductsHandler handles GET /api/posts
func (h *ProductHandler) ListProductsHandler(c *gin.Context) {
	owner := c.Query("owner")
	products, err := h.service.List(c.Request.Context(), owner)
	if err != nil {
		helpers.RespondError(c, "ListProductsHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToProductResponses(products), "products retrieved successfully")
}

// GetProductHandler handles GET /api/posts/:id
func (h *ProductHandler) GetProductHandler(c *gin.Context) {
	id, ok := helpers.RequireValidID(c, "GetProductHandler", "id")
	if !ok {
		return
	}

	p, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		helpers.RespondError(c, "GetProductHandler", err, map[string]any{"product_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToProductResponse(p), "product retrieved successfully")
}

// GetProductImageHandler handles GET /api/posts/:id/image
func (h *ProductHandler) GetProductImageHandler(c *gin.Context) {
	id, ok := helpers.RequireValidID(c, "GetProductImageHandler", "id")
	if !ok {
		return
	}

	img, err := h.service.GetImage(c.Request.Context(), id)
	if err != nil {
		helpers.RespondError(c, "GetProductImageHandler", err, map[string]any{"product_id": id})
		return
	}

	contentType := img.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Data(http.StatusOK, contentType, img.Data)
}

// UpdateProductHandler handles PUT /api/posts/:id
func (h *ProductHandler) UpdateProductHandler(c *gin.Context) {
	userID, ok := helpers.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, helpers.ErrMissingIdentity, "authentication required")
		return
	}
	id, ok := helpers.RequireValidID(c, "UpdateProductHandler", "id")
	if !ok {
		return
	}

	var req helpers.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateProductHandler", err)
		return
	}

	in := product.UpdateInput{
		Name:                    req.Name,
		Description:             req.Description,
		Price:                   req.Price,
		DaoID:                   req.DaoID,
		OnMarket:                req.OnMarket,
		PersonalItem:            req.PersonalItem,
		YearsOfUse:              req.YearsOfUse,
		AuthenticityCertificate: req.AuthenticityCertificate,
		IsMarketItem:            req.IsMarketItem,
		InitialBid:              req.InitialBid,
		DemandPrice:             req.DemandPrice,
		DemandValue:             req.DemandValue,
		IsRentable:              req.IsRentable,
	}
	if req.ImageURL != nil {
		in.Image = &models.ImageRef{External: &models.ExternalImage{URL: *req.ImageURL}}
	}

	p, err := h.service.Update(c.Request.Context(), id, userID, in)
	if err != nil {
		helpers.RespondError(c, "UpdateProductHandler", err, map[string]any{"product_id": id, "actor": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToProductResponse(p), "product updated successfully")
}

// DeleteProductHandler handles DELETE /api/posts/:id
func (h *ProductHandler) DeleteProductHandler(c *gin.Context) {
	userID, ok := helpers.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, helpers.ErrMissingIdentity, "authentication required")
		return
	}
	id, ok := helpers.RequireValidID(c, "DeleteProductHandler", "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, userID); err != nil {
		helpers.RespondError(c, "DeleteProductHandler", err, map[string]any{"product_id": id, "actor": userID})
		return
	}

	c.Status(http.StatusNoContent)
	helpers.LogSuccess("DeleteProductHandler", "product deleted successfully", map[string]any{
		"product_id": id,
		"actor":      userID,
	})
}
