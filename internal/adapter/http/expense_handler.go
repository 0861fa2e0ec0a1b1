package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	expenseUC "expense-approval-service/internal/usecase/expense"
)

type ExpenseHandler struct{ uc *expenseUC.Usecase }

func NewExpenseHandler(uc *expenseUC.Usecase) *ExpenseHandler { return &ExpenseHandler{uc: uc} }

type createExpenseReq struct {
	Description string          `json:"description"  validate:"required"`
	Amount      decimal.Decimal `json:"amount"       validate:"required"`
	Currency    string          `json:"currency"     validate:"required,currency3"`
	Category    string          `json:"category"     validate:"required,category"`
	OtherReason string          `json:"other_reason"`
	ExpenseDate string          `json:"expense_date" validate:"omitempty,datetime=2006-01-02"`
	ReceiptURL  string          `json:"receipt_url"  validate:"omitempty,url"`
}

func (h *ExpenseHandler) Create(c echo.Context) error {
	var req createExpenseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	in := expenseUC.CreateExpenseInput{
		Description: req.Description,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Category:    req.Category,
		OtherReason: req.OtherReason,
		ReceiptURL:  req.ReceiptURL,
	}
	if req.ExpenseDate != "" {
		d, _ := time.Parse("2006-01-02", req.ExpenseDate)
		in.ExpenseDate = d
	}
	dto, err := h.uc.Create(c.Request().Context(), currentUser(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Expense created successfully",
		"expense": dto,
	})
}

func (h *ExpenseHandler) ListOwn(c echo.Context) error {
	list, err := h.uc.ListOwn(c.Request().Context(), currentUser(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}
