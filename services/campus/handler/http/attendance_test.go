package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/snsce/attendance/internal/pkg/errors"
	"github.com/snsce/attendance/internal/pkg/models"
	"github.com/snsce/attendance/services/campus/mocks"
)

func TestMarkAttendanceHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockCampusUC(ctrl)
	h := NewAttendanceHandler(uc)

	uc.EXPECT().MarkAttendance(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, req *models.MarkAttendanceRequest) error {
			assert.Equal(t, "present", req.Status)
			return nil
		})

	c, rec := newContext(t, http.MethodPost, "/api/attendance/mark",
		`{"student_email":"asha@snsce.ac.in","status":"present","marked_by":"ravi@snsce.ac.in"}`)
	require.NoError(t, h.MarkAttendance(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMarkAttendanceHandlerInvalidStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockCampusUC(ctrl)
	h := NewAttendanceHandler(uc)

	uc.EXPECT().MarkAttendance(gomock.Any(), gomock.Any()).Return(apperrors.ErrInvalidAttendanceStatus)

	c, rec := newContext(t, http.MethodPost, "/api/attendance/mark",
		`{"student_email":"asha@snsce.ac.in","status":"sick"}`)
	require.NoError(t, h.MarkAttendance(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetStudentAttendanceHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockCampusUC(ctrl)
	h := NewAttendanceHandler(uc)

	uc.EXPECT().GetStudentAttendance(gomock.Any(), "asha@snsce.ac.in").Return(&models.StudentAttendance{
		Email:   "asha@snsce.ac.in",
		Summary: models.AttendanceSummary{Present: 2, Absent: 1},
	}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/attendance/student/asha@snsce.ac.in", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("email")
	c.SetParamValues("asha@snsce.ac.in")

	require.NoError(t, h.GetStudentAttendance(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "asha@snsce.ac.in", body["email"])
}

func TestGetAttendanceReportHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockCampusUC(ctrl)
	h := NewAttendanceHandler(uc)

	uc.EXPECT().GetAttendanceReport(gomock.Any(), "2026-08-28").Return(&models.AttendanceReport{
		Date: "2026-08-28",
		Departments: []*models.DepartmentAttendance{
			{Department: "CSE", Present: 40},
		},
	}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/attendance/report?date=2026-08-28", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.GetAttendanceReport(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "2026-08-28", body["date"])
}
