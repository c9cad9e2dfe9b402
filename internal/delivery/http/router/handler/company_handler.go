package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CompanyHandlerParams holds dependencies for CompanyHandler, injected by Fx.
type CompanyHandlerParams struct {
	fx.In

	CompanyUC usecase.CompanyUsecase
	Logger    *slog.Logger
}

// CompanyHandler holds dependencies for company-related handlers.
type CompanyHandler struct {
	companyUC usecase.CompanyUsecase
	logger    *slog.Logger
}

// NewCompanyHandler is the constructor for CompanyHandler
func NewCompanyHandler(params CompanyHandlerParams) *CompanyHandler {
	return &CompanyHandler{
		companyUC: params.CompanyUC,
		logger:    params.Logger,
	}
}

// CreateCompanyRequest represents the request body for creating a company
type CreateCompanyRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
}

// InviteMemberRequest represents the request body for inviting a member
type InviteMemberRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=admin member"`
}

// ChangeMemberRoleRequest represents the request body for changing a member role
type ChangeMemberRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin member"`
}

// CreateCompany creates a company owned by the caller.
func (h *CompanyHandler) CreateCompany(c echo.Context) error {
	var req CreateCompanyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid company input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	company, err := h.companyUC.CreateCompany(c.Request().Context(), deliverycontext.GetPrincipal(c), &usecase.CreateCompanyInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, company, "Company created successfully")
}

// ListMyCompanies lists the companies the caller owns or belongs to.
func (h *CompanyHandler) ListMyCompanies(c echo.Context) error {
	companies, err := h.companyUC.ListMyCompanies(c.Request().Context(), deliverycontext.GetPrincipal(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, companies, "Companies retrieved successfully")
}

// GetCompany returns one company the caller can see.
func (h *CompanyHandler) GetCompany(c echo.Context) error {
	companyID, err := h.companyID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid company id")
	}

	company, err := h.companyUC.GetCompany(c.Request().Context(), deliverycontext.GetPrincipal(c), companyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, company, "Company retrieved successfully")
}

// DeleteCompany removes a company. Owner only.
func (h *CompanyHandler) DeleteCompany(c echo.Context) error {
	companyID, err := h.companyID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid company id")
	}

	if err := h.companyUC.DeleteCompany(c.Request().Context(), deliverycontext.GetPrincipal(c), companyID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Company deleted successfully")
}

// ListMembers lists the memberships of a company.
func (h *CompanyHandler) ListMembers(c echo.Context) error {
	companyID, err := h.companyID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid company id")
	}

	members, err := h.companyUC.ListMembers(c.Request().Context(), deliverycontext.GetPrincipal(c), companyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, members, "Members retrieved successfully")
}

// ChangeMemberRole changes the role of one membership row.
func (h *CompanyHandler) ChangeMemberRole(c echo.Context) error {
	companyID, err := h.companyID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid company id")
	}
	membershipID, err := uuid.Parse(c.Param("membershipId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid membership id")
	}

	var req ChangeMemberRoleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.companyUC.ChangeMemberRole(c.Request().Context(), deliverycontext.GetPrincipal(c), &usecase.ChangeMemberRoleInput{
		CompanyID:    companyID,
		MembershipID: membershipID,
		Role:         entity.CompanyRole(req.Role),
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Member role updated successfully")
}

// RemoveMember removes one membership row from a company.
func (h *CompanyHandler) RemoveMember(c echo.Context) error {
	companyID, err := h.companyID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid company id")
	}
	membershipID, err := uuid.Parse(c.Param("membershipId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid membership id")
	}

	if err := h.companyUC.RemoveMember(c.Request().Context(), deliverycontext.GetPrincipal(c), companyID, membershipID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Member removed successfully")
}

// LeaveCompany removes the caller's own membership.
func (h *CompanyHandler) LeaveCompany(c echo.Context) error {
	companyID, err := h.companyID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid company id")
	}

	if err := h.companyUC.LeaveCompany(c.Request().Context(), deliverycontext.GetPrincipal(c), companyID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Left company successfully")
}

// InviteMember invites a user into the company by email.
func (h *CompanyHandler) InviteMember(c echo.Context) error {
	companyID, err := h.companyID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid company id")
	}

	var req InviteMemberRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid invitation input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	invitation, err := h.companyUC.InviteMember(c.Request().Context(), deliverycontext.GetPrincipal(c), &usecase.InviteMemberInput{
		CompanyID: companyID,
		Email:     req.Email,
		Role:      entity.CompanyRole(req.Role),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, invitation, "Invitation created successfully")
}

// ListMyInvitations lists the caller's pending invitations.
func (h *CompanyHandler) ListMyInvitations(c echo.Context) error {
	invitations, err := h.companyUC.ListMyInvitations(c.Request().Context(), deliverycontext.GetPrincipal(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, invitations, "Invitations retrieved successfully")
}

// AcceptInvitation accepts a pending invitation addressed to the caller.
func (h *CompanyHandler) AcceptInvitation(c echo.Context) error {
	invitationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid invitation id")
	}

	if err := h.companyUC.AcceptInvitation(c.Request().Context(), deliverycontext.GetPrincipal(c), invitationID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Invitation accepted successfully")
}

// DeclineInvitation declines a pending invitation addressed to the caller.
func (h *CompanyHandler) DeclineInvitation(c echo.Context) error {
	invitationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid invitation id")
	}

	if err := h.companyUC.DeclineInvitation(c.Request().Context(), deliverycontext.GetPrincipal(c), invitationID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Invitation declined successfully")
}

// InvitationQR returns the invitation as a QR code PNG.
func (h *CompanyHandler) InvitationQR(c echo.Context) error {
	companyID, err := h.companyID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid company id")
	}
	invitationID, err := uuid.Parse(c.Param("invitationId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid invitation id")
	}

	pngBytes, err := h.companyUC.InvitationQR(c.Request().Context(), deliverycontext.GetPrincipal(c), companyID, invitationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", pngBytes)
}

func (h *CompanyHandler) companyID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}
