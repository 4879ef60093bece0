package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tahirli/sofrachef-backend/internal/models"
	"github.com/tahirli/sofrachef-backend/internal/store"
)

type InvoiceHandler struct {
	store *store.Store
}

func NewInvoiceHandler(s *store.Store) *InvoiceHandler {
	return &InvoiceHandler{store: s}
}

func (h *InvoiceHandler) RegisterRoutes(router *gin.RouterGroup) {
	invoices := router.Group("/invoices")
	{
		invoices.GET("", h.ListInvoices)
		invoices.PUT("", h.SetInvoices)
		invoices.POST("", h.CreateInvoice)
	}
}

func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	state, ok := snapshot(c, h.store)
	if !ok {
		return
	}

	invoices := state.Invoices
	if status := c.Query("status"); status != "" {
		filtered := make([]models.Invoice, 0, len(invoices))
		for _, inv := range invoices {
			if string(inv.Status) == status {
				filtered = append(filtered, inv)
			}
		}
		invoices = filtered
	}

	c.JSON(http.StatusOK, gin.H{"invoices": invoices})
}

func (h *InvoiceHandler) SetInvoices(c *gin.Context) {
	var invoices []models.Invoice
	if err := c.ShouldBindJSON(&invoices); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.store.Dispatch(store.SetInvoices(invoices))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": state.Invoices})
}

func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var inv models.Invoice
	if err := c.ShouldBindJSON(&inv); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}
	if inv.IssueDate.IsZero() {
		inv.IssueDate = time.Now().UTC()
	}
	if inv.Status == "" {
		inv.Status = models.InvoicePending
	}

	state, err := h.store.Dispatch(store.AddInvoice(inv))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, state.Invoices[len(state.Invoices)-1])
}
