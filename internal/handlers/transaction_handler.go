package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "cfcs/internal/errors"
	"cfcs/internal/ledger"
	"cfcs/internal/models"
	"cfcs/internal/pagination"
	"cfcs/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	auditService       services.AuditServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer, auditService services.AuditServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, auditService: auditService}
}

// AmountInput accepts an amount written either as a JSON string ("5000")
// or as a JSON number (5000).
type AmountInput string

// UnmarshalJSON implements json.Unmarshaler.
func (a *AmountInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = AmountInput(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*a = AmountInput(n.String())
	return nil
}

// CreateTransactionRequest represents the request payload for creating a transaction.
// Field presence and formats are checked by the ledger so that missing values
// get the MISSING_FIELDS code rather than a generic binding error.
type CreateTransactionRequest struct {
	Date   string      `json:"date" example:"2024-03-01"`
	Type   string      `json:"type" example:"Tithes"`
	Amount AmountInput `json:"amount" swaggertype:"string" example:"5000"`
}

// TransactionQuery holds the list query parameters.
type TransactionQuery struct {
	pagination.PageRequest
	Flow string `form:"flow" binding:"omitempty,flow"`
}

// TransactionResponse wraps a single transaction.
type TransactionResponse struct {
	Transaction models.Transaction `json:"transaction"`
}

// CreateTransaction handles the add-transaction intent
// @Summary     Add a transaction
// @Description Append an income or expense record. The flow is derived from the type.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} TransactionResponse "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Admin only"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	user, err := getUser(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	tx, err := h.transactionService.AddTransaction(ledger.AddRequest{
		Date:   req.Date,
		Type:   req.Type,
		Amount: string(req.Amount),
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(user, services.ActionCreate, "transaction", tx.ID, c.ClientIP(),
		map[string]interface{}{
			"date":   tx.Date,
			"type":   tx.Type,
			"flow":   tx.Flow,
			"amount": tx.Amount,
		})

	c.JSON(http.StatusCreated, TransactionResponse{Transaction: *tx})
}

// ListTransactions lists the live ledger
// @Summary     List transactions
// @Description Paginated transactions, newest date first. Records on the same date keep their entry order.
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Param       flow      query string false "Income or Expense"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Admin only"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	var query TransactionQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var filter services.TransactionFilter
	if query.Flow != "" {
		flow := models.Flow(query.Flow)
		filter.Flow = &flow
	}

	result, err := h.transactionService.ListTransactions(query.PageRequest, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
