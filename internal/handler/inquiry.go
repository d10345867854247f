package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saint-mantis/truster/internal/service"
)

// InquiryHandler exposes the public inquiry and contact submission
// endpoints.  Both are open to guests and rate limited at the router.
type InquiryHandler struct {
	Inquiries *service.InquiryService
	Contacts  *service.ContactService
}

func NewInquiryHandler(inq *service.InquiryService, ct *service.ContactService) *InquiryHandler {
	return &InquiryHandler{Inquiries: inq, Contacts: ct}
}

type inquiryReq struct {
	PropertyID           *uint64 `json:"property_id"`
	InquiryType          string  `json:"inquiry_type"`
	Name                 string  `json:"name"`
	Email                string  `json:"email"`
	Phone                string  `json:"phone"`
	Message              string  `json:"message"`
	PreferredContactTime string  `json:"preferred_contact_time"`
	BudgetRange          string  `json:"budget_range"`
}

// CreateInquiry records a property (or general) inquiry.
// POST /v1/inquiries
func (h *InquiryHandler) CreateInquiry(c echo.Context) error {
	var req inquiryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	in, err := h.Inquiries.Create(c.Request().Context(), service.InquiryInput{
		PropertyID:           req.PropertyID,
		InquiryType:          req.InquiryType,
		Name:                 req.Name,
		Email:                req.Email,
		Phone:                req.Phone,
		Message:              req.Message,
		PreferredContactTime: req.PreferredContactTime,
		BudgetRange:          req.BudgetRange,
	})
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, email and message are required"})
		}
		return writeRepoError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"status":  "success",
		"message": "Your inquiry has been submitted. An agent will contact you within 24 hours.",
		"id":      in.ID,
	})
}

type contactReq struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	InquiryType string `json:"inquiry_type"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
}

// CreateContact records a general contact-form message.
// POST /v1/contact
func (h *InquiryHandler) CreateContact(c echo.Context) error {
	var req contactReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ct, err := h.Contacts.Create(c.Request().Context(), service.ContactInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		InquiryType: req.InquiryType,
		Subject:     req.Subject,
		Message:     req.Message,
	})
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, email, subject and message are required"})
		}
		return writeRepoError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"status":  "success",
		"message": "Thank you for contacting us. We will get back to you shortly.",
		"id":      ct.ID,
	})
}
