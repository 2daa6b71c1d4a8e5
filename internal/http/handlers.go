package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"merchstore/internal/cart"
	"merchstore/internal/catalog"
	"merchstore/internal/domain"
	"merchstore/internal/logging"
	"merchstore/internal/repository"
	"merchstore/internal/service"
)

type Server struct {
	engine   *gin.Engine
	products *service.ProductService
	carts    *service.CartService
}

func NewServer(products *service.ProductService, carts *service.CartService, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := gin.New()
	r.Use(logging.GinMiddleware(logger), gin.Recovery())
	s := &Server{engine: r, products: products, carts: carts}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	// Swagger UI
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	s.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	v1 := s.engine.Group("/api/v1")
	{
		products := v1.Group("/products")
		products.GET("", s.listProducts)
		products.GET(":id", s.getProduct)

		sessions := v1.Group("/sessions")
		sessions.POST("", s.createSession)
		sessions.DELETE(":id", s.endSession)
		sessions.GET(":id/cart", s.getCart)
		sessions.GET(":id/receipts", s.listReceipts)
		sessions.POST(":id/items", s.addItem)
		sessions.DELETE(":id/items", s.removeItem)
		sessions.POST(":id/discount", s.applyDiscount)
		sessions.POST(":id/checkout", s.checkout)

		v1.GET("/receipts/:id", s.getReceipt)
	}
}

// Product handlers

// @Summary List products
// @Tags products
// @Produce json
// @Param available query bool false "Only products that can be purchased"
// @Success 200 {array} productResp
// @Failure 400 {object} errorResp
// @Router /products [get]
func (s *Server) listProducts(c *gin.Context) {
	var availableOnly bool
	if raw, ok := c.GetQuery("available"); ok {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResp{Error: "invalid query", Message: "available must be a boolean"})
			return
		}
		availableOnly = v
	}
	list := s.products.List(availableOnly)
	out := make([]productResp, 0, len(list))
	for _, p := range list {
		out = append(out, newProductResp(p))
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Get product by id
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} productResp
// @Failure 404 {object} errorResp
// @Router /products/{id} [get]
func (s *Server) getProduct(c *gin.Context) {
	p, err := s.products.GetByID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newProductResp(*p))
}

// Session handlers

// @Summary Start a shopping session
// @Tags sessions
// @Produce json
// @Success 201 {object} cartResp
// @Router /sessions [post]
func (s *Server) createSession(c *gin.Context) {
	v, err := s.carts.CreateSession(c)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newCartResp(v))
}

// @Summary End a shopping session
// @Description Receipts from the session stay retrievable by id.
// @Tags sessions
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} errorResp
// @Router /sessions/{id} [delete]
func (s *Server) endSession(c *gin.Context) {
	if err := s.carts.EndSession(c, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get cart with totals
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} cartResp
// @Failure 404 {object} errorResp
// @Router /sessions/{id}/cart [get]
func (s *Server) getCart(c *gin.Context) {
	v, err := s.carts.GetCart(c, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCartResp(v))
}

type addItemReq struct {
	ProductID string `json:"product_id" binding:"required"`
	Color     string `json:"color" binding:"required"`
	Size      string `json:"size" binding:"required"`
	Quantity  int64  `json:"quantity"`
}

// @Summary Add a product variant to the cart
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param input body addItemReq true "Item"
// @Success 200 {object} addItemResp
// @Failure 400 {object} errorResp
// @Failure 404 {object} errorResp
// @Failure 409 {object} errorResp
// @Router /sessions/{id}/items [post]
func (s *Server) addItem(c *gin.Context) {
	var req addItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResp{Error: "invalid json", Message: err.Error()})
		return
	}
	res, err := s.carts.AddItem(c, c.Param("id"), req.ProductID, req.Color, req.Size, req.Quantity)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newAddItemResp(res))
}

type removeItemReq struct {
	ProductID string `form:"product_id" binding:"required"`
	Color     string `form:"color" binding:"required"`
	Size      string `form:"size" binding:"required"`
}

// @Summary Remove a cart line
// @Description Removing a line that is not in the cart is not an error.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Param product_id query string true "Product ID"
// @Param color query string true "Color"
// @Param size query string true "Size"
// @Success 200 {object} cartResp
// @Failure 400 {object} errorResp
// @Failure 404 {object} errorResp
// @Router /sessions/{id}/items [delete]
func (s *Server) removeItem(c *gin.Context) {
	var req removeItemReq
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResp{Error: "invalid query", Message: err.Error()})
		return
	}
	key := domain.LineKey{ProductID: req.ProductID, Color: req.Color, Size: req.Size}
	v, err := s.carts.RemoveItem(c, c.Param("id"), key)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCartResp(v))
}

type applyDiscountReq struct {
	StudentID string `json:"student_id"`
}

// @Summary Apply the student discount
// @Description A rejected id clears any previously applied discount.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param input body applyDiscountReq true "Student ID, e.g. 1010123"
// @Success 200 {object} discountResp
// @Failure 404 {object} errorResp
// @Failure 422 {object} discountResp
// @Router /sessions/{id}/discount [post]
func (s *Server) applyDiscount(c *gin.Context) {
	var req applyDiscountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResp{Error: "invalid json", Message: err.Error()})
		return
	}
	v, err := s.carts.ApplyDiscount(c, c.Param("id"), req.StudentID)
	switch {
	case errors.Is(err, cart.ErrInvalidFormat):
		c.JSON(http.StatusUnprocessableEntity, discountResp{Message: "Invalid SUTD Student ID format.", Cart: newCartResp(v)})
	case err != nil:
		writeError(c, err)
	default:
		msg := fmt.Sprintf("%d%% student discount applied!", cart.DiscountPercent)
		c.JSON(http.StatusOK, discountResp{Message: msg, Cart: newCartResp(v)})
	}
}

// @Summary Check out the cart
// @Description Clears the cart and the discount. An empty cart checks out with a zero total.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} receiptResp
// @Failure 404 {object} errorResp
// @Router /sessions/{id}/checkout [post]
func (s *Server) checkout(c *gin.Context) {
	r, err := s.carts.Checkout(c, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	resp := newReceiptResp(r)
	resp.Message = "Thank you for your purchase! Your order has been placed."
	c.JSON(http.StatusOK, resp)
}

// @Summary List receipts of a session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {array} receiptResp
// @Failure 404 {object} errorResp
// @Router /sessions/{id}/receipts [get]
func (s *Server) listReceipts(c *gin.Context) {
	list, err := s.carts.ListReceipts(c, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]receiptResp, 0, len(list))
	for i := range list {
		out = append(out, newReceiptResp(&list[i]))
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Get receipt by id
// @Tags receipts
// @Produce json
// @Param id path string true "Receipt ID"
// @Success 200 {object} receiptResp
// @Failure 404 {object} errorResp
// @Router /receipts/{id} [get]
func (s *Server) getReceipt(c *gin.Context) {
	r, err := s.carts.GetReceipt(c, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newReceiptResp(r))
}

func writeError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(mapErrorToStatus(err), errorResp{Error: err.Error()})
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, cart.ErrInvalidSelection),
		errors.Is(err, cart.ErrInvalidQuantity):
		return http.StatusBadRequest
	case errors.Is(err, catalog.ErrNotFound), errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, cart.ErrOutOfStock):
		return http.StatusConflict
	case errors.Is(err, cart.ErrInvalidFormat):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
