package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/saint-mantis/truster/internal/model"
)

// The inbox views page through submitted inquiries and contact messages
// and let staff move them through the new -> contacted -> follow_up ->
// closed pipeline.

func validInboxStatus(s string) bool {
	switch s {
	case model.StatusNew, model.StatusContacted, model.StatusFollowUp, model.StatusClosed:
		return true
	}
	return false
}

type inquiryOut struct {
	ID                   uint64    `json:"id"`
	PropertyID           *uint64   `json:"property_id,omitempty"`
	InquiryType          string    `json:"inquiry_type"`
	Name                 string    `json:"name"`
	Email                string    `json:"email"`
	Phone                string    `json:"phone,omitempty"`
	Message              string    `json:"message"`
	PreferredContactTime string    `json:"preferred_contact_time,omitempty"`
	BudgetRange          string    `json:"budget_range,omitempty"`
	Status               string    `json:"status"`
	AgentNotes           string    `json:"agent_notes,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
}

// ListInquiries pages through inquiries, newest first.
// GET /v1/admin/inquiries
func (h *AdminHandler) ListInquiries(c echo.Context) error {
	page, pageSize := pageParams(c, adminPageSize)
	ins, total, err := h.Inquiries.List(c.Request().Context(), page, pageSize)
	if err != nil {
		return writeRepoError(c, err)
	}
	items := make([]inquiryOut, 0, len(ins))
	for _, in := range ins {
		items = append(items, inquiryOut{
			ID: in.ID, PropertyID: in.PropertyID, InquiryType: in.InquiryType,
			Name: in.Name, Email: in.Email, Phone: in.Phone, Message: in.Message,
			PreferredContactTime: in.PreferredContactTime, BudgetRange: in.BudgetRange,
			Status: in.Status, AgentNotes: in.AgentNotes, CreatedAt: in.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"items":     items,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

type statusReq struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// UpdateInquiryStatus moves an inquiry through the pipeline and stores
// the staff notes.
// PUT /v1/admin/inquiries/:id/status
func (h *AdminHandler) UpdateInquiryStatus(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req statusReq
	if err := c.Bind(&req); err != nil || !validInboxStatus(req.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}
	if err := h.Inquiries.UpdateStatus(c.Request().Context(), id, req.Status, req.Notes); err != nil {
		return writeRepoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "success"})
}

type contactOut struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	InquiryType string    `json:"inquiry_type"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	Status      string    `json:"status"`
	AdminNotes  string    `json:"admin_notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListContacts pages through contact messages, newest first.
// GET /v1/admin/contacts
func (h *AdminHandler) ListContacts(c echo.Context) error {
	page, pageSize := pageParams(c, adminPageSize)
	cts, total, err := h.Contacts.List(c.Request().Context(), page, pageSize)
	if err != nil {
		return writeRepoError(c, err)
	}
	items := make([]contactOut, 0, len(cts))
	for _, ct := range cts {
		items = append(items, contactOut{
			ID: ct.ID, Name: ct.Name, Email: ct.Email, Phone: ct.Phone,
			InquiryType: ct.InquiryType, Subject: ct.Subject, Message: ct.Message,
			Status: ct.Status, AdminNotes: ct.AdminNotes, CreatedAt: ct.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"items":     items,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// UpdateContactStatus moves a contact message through the pipeline.
// PUT /v1/admin/contacts/:id/status
func (h *AdminHandler) UpdateContactStatus(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req statusReq
	if err := c.Bind(&req); err != nil || !validInboxStatus(req.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}
	if err := h.Contacts.UpdateStatus(c.Request().Context(), id, req.Status, req.Notes); err != nil {
		return writeRepoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "success"})
}
