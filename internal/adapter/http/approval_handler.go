package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	approvalUC "expense-approval-service/internal/usecase/approval"
)

type ApprovalHandler struct{ uc *approvalUC.Usecase }

func NewApprovalHandler(uc *approvalUC.Usecase) *ApprovalHandler { return &ApprovalHandler{uc: uc} }

func (h *ApprovalHandler) Queue(c echo.Context) error {
	list, err := h.uc.PendingQueue(c.Request().Context(), currentUser(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

type decideReq struct {
	Decision string `json:"decision" validate:"required,oneof=Approved Rejected"`
	Comment  string `json:"comment"`
}

func (h *ApprovalHandler) Decide(c echo.Context) error {
	expenseID := c.Param("id")
	if !reHex32.MatchString(expenseID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid expense id"})
	}
	var req decideReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Decide(c.Request().Context(), expenseID, currentUser(c), approvalUC.DecideInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApprovalHandler) TeamExpenses(c echo.Context) error {
	list, err := h.uc.TeamExpenses(c.Request().Context(), currentUser(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *ApprovalHandler) CompanyExpenses(c echo.Context) error {
	list, err := h.uc.CompanyExpenses(c.Request().Context(), currentUser(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}
