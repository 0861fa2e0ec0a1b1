package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	adminUC "expense-approval-service/internal/usecase/admin"
)

type AdminHandler struct{ uc *adminUC.Usecase }

func NewAdminHandler(uc *adminUC.Usecase) *AdminHandler { return &AdminHandler{uc: uc} }

type createEmployeeReq struct {
	Name       string   `json:"name"        validate:"required"`
	Email      string   `json:"email"       validate:"required,email"`
	Role       string   `json:"role"        validate:"required,oneof=Admin Manager Employee"`
	ManagerIDs []string `json:"manager_ids" validate:"omitempty,dive,hex32"`
}

func (h *AdminHandler) CreateEmployee(c echo.Context) error {
	var req createEmployeeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.CreateEmployee(c.Request().Context(), currentUser(c), adminUC.CreateEmployeeInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *AdminHandler) ListEmployees(c echo.Context) error {
	list, err := h.uc.ListEmployees(c.Request().Context(), currentUser(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

type updateEmployeeReq struct {
	Role       *string   `json:"role"        validate:"omitempty,oneof=Admin Manager Employee"`
	ManagerIDs *[]string `json:"manager_ids" validate:"omitempty,dive,hex32"`
}

func (h *AdminHandler) UpdateEmployee(c echo.Context) error {
	userID := c.Param("id")
	if !reHex32.MatchString(userID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
	}
	var req updateEmployeeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.UpdateEmployee(c.Request().Context(), currentUser(c), userID, adminUC.UpdateEmployeeInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *AdminHandler) DeleteEmployee(c echo.Context) error {
	userID := c.Param("id")
	if !reHex32.MatchString(userID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
	}
	if err := h.uc.DeleteEmployee(c.Request().Context(), currentUser(c), userID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "User and their expenses removed."})
}

func (h *AdminHandler) ResetPassword(c echo.Context) error {
	userID := c.Param("id")
	if !reHex32.MatchString(userID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
	}
	temp, err := h.uc.ResetPassword(c.Request().Context(), currentUser(c), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"temporary_password": temp})
}

func (h *AdminHandler) ListPasswordResets(c echo.Context) error {
	list, err := h.uc.ListPasswordResets(c.Request().Context(), currentUser(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *AdminHandler) ResolvePasswordReset(c echo.Context) error {
	resetID := c.Param("id")
	if !reHex32.MatchString(resetID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid reset id"})
	}
	if err := h.uc.ResolvePasswordReset(c.Request().Context(), currentUser(c), resetID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Request marked as resolved."})
}

type createRuleReq struct {
	Name                string   `json:"name"                 validate:"required"`
	IsManagerApprover   bool     `json:"is_manager_approver"`
	SequentialApprovers []string `json:"sequential_approvers" validate:"omitempty,dive,hex32"`
	RuleType            string   `json:"rule_type"            validate:"omitempty,oneof=Percentage Specific HybridOr HybridAnd"`
	Percentage          *int     `json:"percentage"           validate:"omitempty,gte=1,lte=100"`
	SpecificApproverID  string   `json:"specific_approver_id" validate:"omitempty,hex32"`
}

func (h *AdminHandler) CreateRule(c echo.Context) error {
	var req createRuleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	rule, err := h.uc.CreateRule(c.Request().Context(), currentUser(c), adminUC.CreateRuleInput{
		Name:               req.Name,
		IsManagerApprover:  req.IsManagerApprover,
		SequentialApprover: req.SequentialApprovers,
		RuleType:           req.RuleType,
		Percentage:         req.Percentage,
		SpecificApproverID: req.SpecificApproverID,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, rule)
}

func (h *AdminHandler) ListRules(c echo.Context) error {
	list, err := h.uc.ListRules(c.Request().Context(), currentUser(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}
