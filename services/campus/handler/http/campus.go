package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/snsce/attendance/internal/pkg/errors"
	"github.com/snsce/attendance/internal/pkg/models"
	"github.com/snsce/attendance/internal/utils"
	"github.com/snsce/attendance/services/campus"
)

// CampusHandler serves profile, directory and staff-management
// endpoints.
type CampusHandler struct {
	campusUC campus.CampusUC
}

// NewCampusHandler creates a new campus handler
func NewCampusHandler(campusUC campus.CampusUC) *CampusHandler {
	return &CampusHandler{campusUC: campusUC}
}

// UpdateProfile handles POST /api/update-profile
func (h *CampusHandler) UpdateProfile(c echo.Context) error {
	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if err := h.campusUC.UpdateProfile(c.Request().Context(), &req); err != nil {
		return utils.MapErrorResponse(c, err)
	}

	return utils.MessageResponseHandler(c, http.StatusOK, "profile updated successfully")
}

// SubmitStudentData handles POST /api/student-data
func (h *CampusHandler) SubmitStudentData(c echo.Context) error {
	var profile models.StudentProfile
	if err := c.Bind(&profile); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if err := h.campusUC.SubmitStudentData(c.Request().Context(), &profile); err != nil {
		return utils.MapErrorResponse(c, err)
	}

	return utils.MessageResponseHandler(c, http.StatusCreated, "student data saved successfully")
}

// GetStudentProfile handles GET /api/get-student-profile/:id
func (h *CampusHandler) GetStudentProfile(c echo.Context) error {
	id := c.Param("id")

	record, err := h.campusUC.GetStudentProfile(c.Request().Context(), id)
	if err != nil {
		return utils.MapErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, record)
}

// GetRegisteredCounts handles GET /api/get-registered-counts
func (h *CampusHandler) GetRegisteredCounts(c echo.Context) error {
	counts, err := h.campusUC.GetRegisteredCounts(c.Request().Context())
	if err != nil {
		return utils.MapErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, counts)
}

// GetRegisteredMembers handles GET /api/get-registered-members. The
// user_type query parameter selects the directory; students are the
// default.
func (h *CampusHandler) GetRegisteredMembers(c echo.Context) error {
	userType := c.QueryParam("user_type")

	role, ok := models.ParseRole(userType)
	if !ok {
		return utils.MapErrorResponse(c, fmt.Errorf("user type %q: %w", userType, apperrors.ErrInvalidRole))
	}

	ctx := c.Request().Context()
	if role == models.RoleStudent {
		students, err := h.campusUC.ListStudents(ctx)
		if err != nil {
			return utils.MapErrorResponse(c, err)
		}
		return utils.SuccessResponse(c, http.StatusOK, map[string]interface{}{
			"user_type": role,
			"members":   students,
		})
	}

	staff, err := h.campusUC.ListStaff(ctx)
	if err != nil {
		return utils.MapErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, map[string]interface{}{
		"user_type": role,
		"members":   staff,
	})
}

// AddStaff handles POST /api/add-staff
func (h *CampusHandler) AddStaff(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	id, err := h.campusUC.AddStaff(c.Request().Context(), &req)
	if err != nil {
		return utils.MapErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, map[string]string{
		"message": "staff added successfully",
		"id":      id,
	})
}

// AssignStaffToDepartment handles POST /api/assign-staff-to-department
func (h *CampusHandler) AssignStaffToDepartment(c echo.Context) error {
	var req models.DepartmentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if err := h.campusUC.AssignStaffToDepartment(c.Request().Context(), req.Email, req.Department); err != nil {
		return utils.MapErrorResponse(c, err)
	}

	return utils.MessageResponseHandler(c, http.StatusOK, "staff assigned to department")
}

// RemoveStaffFromDepartment handles POST /api/remove-staff-from-department
func (h *CampusHandler) RemoveStaffFromDepartment(c echo.Context) error {
	var req models.DepartmentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if err := h.campusUC.RemoveStaffFromDepartment(c.Request().Context(), req.Email); err != nil {
		return utils.MapErrorResponse(c, err)
	}

	return utils.MessageResponseHandler(c, http.StatusOK, "staff removed from department")
}
