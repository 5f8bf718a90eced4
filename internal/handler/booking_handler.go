package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit-backend/internal/application"
	"shareit-backend/internal/middleware"
	"shareit-backend/internal/response"
)

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	service *application.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service *application.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// RegisterRoutes registers all booking routes on the given router group.
func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/bookings")
	{
		bookings.POST("", h.Create)
		bookings.PATCH("/:bookingId", h.UpdateStatus)
		bookings.GET("/owner", h.FindAllForOwner)
		bookings.GET("/:bookingId", h.FindByID)
		bookings.GET("", h.FindAllForBooker)
	}
}

// Create handles POST /bookings.
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		return
	}

	var req application.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// UpdateStatus handles PATCH /bookings/:bookingId?approved=.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		return
	}

	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid booking ID")
		return
	}

	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		response.BadRequest(c, "invalid approved param")
		return
	}

	result, err := h.service.UpdateStatus(c.Request.Context(), userID, bookingID, approved)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// FindByID handles GET /bookings/:bookingId.
func (h *BookingHandler) FindByID(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		return
	}

	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid booking ID")
		return
	}

	result, err := h.service.FindByID(c.Request.Context(), bookingID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// FindAllForBooker handles GET /bookings?state=&from=&size=.
func (h *BookingHandler) FindAllForBooker(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		return
	}

	from, size, ok := parseOffsetParams(c)
	if !ok {
		return
	}

	result, err := h.service.FindByBookerAndState(c.Request.Context(), userID, c.Query("state"), from, size)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// FindAllForOwner handles GET /bookings/owner?state=&from=&size=.
func (h *BookingHandler) FindAllForOwner(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		return
	}

	from, size, ok := parseOffsetParams(c)
	if !ok {
		return
	}

	result, err := h.service.FindByOwnerAndState(c.Request.Context(), userID, c.Query("state"), from, size)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// parseOffsetParams reads the from/size query parameters with their
// defaults. Range checks stay in the service layer; only non-numeric
// values are rejected here.
func parseOffsetParams(c *gin.Context) (int, int, bool) {
	from, err := strconv.Atoi(c.DefaultQuery("from", "0"))
	if err != nil {
		response.BadRequest(c, "invalid from param")
		return 0, 0, false
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil {
		response.BadRequest(c, "invalid size param")
		return 0, 0, false
	}
	return from, size, true
}
