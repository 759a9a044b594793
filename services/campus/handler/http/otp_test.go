package http

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/snsce/attendance/internal/pkg/errors"
	"github.com/snsce/attendance/internal/pkg/models"
	"github.com/snsce/attendance/services/campus/mocks"
)

func TestSendOTPHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockCampusUC(ctrl)
	h := NewOTPHandler(uc)

	uc.EXPECT().SendOTP(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, req *models.SendOTPRequest) error {
			assert.Equal(t, "asha@snsce.ac.in", req.Email)
			assert.Equal(t, "email", req.Type)
			return nil
		})

	c, rec := newContext(t, http.MethodPost, "/api/send-otp",
		`{"email":"asha@snsce.ac.in","type":"email"}`)
	require.NoError(t, h.SendOTP(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "OTP sent successfully", body["message"])
}

func TestVerifyOTPHandlerExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockCampusUC(ctrl)
	h := NewOTPHandler(uc)

	uc.EXPECT().VerifyOTP(gomock.Any(), gomock.Any()).Return(apperrors.ErrOTPExpired)

	c, rec := newContext(t, http.MethodPost, "/api/verify-otp",
		`{"email":"asha@snsce.ac.in","type":"email","otp":"123456"}`)
	require.NoError(t, h.VerifyOTP(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, apperrors.ErrOTPExpired.Error(), body["error"])
}

func TestVerifyOTPHandlerMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockCampusUC(ctrl)
	h := NewOTPHandler(uc)

	uc.EXPECT().VerifyOTP(gomock.Any(), gomock.Any()).Return(apperrors.ErrOTPMismatch)

	c, rec := newContext(t, http.MethodPost, "/api/verify-otp",
		`{"email":"asha@snsce.ac.in","type":"email","otp":"000000"}`)
	require.NoError(t, h.VerifyOTP(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, apperrors.ErrOTPMismatch.Error(), body["error"])
}

func TestSendSignupOTPHandlerTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockCampusUC(ctrl)
	h := NewOTPHandler(uc)

	uc.EXPECT().SendSignupOTP(gomock.Any(), "taken@snsce.ac.in").Return(apperrors.ErrEmailTaken)

	c, rec := newContext(t, http.MethodPost, "/api/send-signup-otp",
		`{"email":"taken@snsce.ac.in"}`)
	require.NoError(t, h.SendSignupOTP(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendOTPHandlerDispatchFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockCampusUC(ctrl)
	h := NewOTPHandler(uc)

	uc.EXPECT().SendOTP(gomock.Any(), gomock.Any()).Return(apperrors.ErrSendFailed)

	c, rec := newContext(t, http.MethodPost, "/api/send-otp",
		`{"email":"asha@snsce.ac.in","type":"email"}`)
	require.NoError(t, h.SendOTP(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSendMobileOTPHandlerInvalidNumber(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockCampusUC(ctrl)
	h := NewOTPHandler(uc)

	uc.EXPECT().SendMobileOTP(gomock.Any(), "12ab").Return(apperrors.ErrInvalidMobileNumber)

	c, rec := newContext(t, http.MethodPost, "/api/send-mobile-otp",
		`{"mobile_number":"12ab"}`)
	require.NoError(t, h.SendMobileOTP(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerifyMobileOTPHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockCampusUC(ctrl)
	h := NewOTPHandler(uc)

	uc.EXPECT().VerifyMobileOTP(gomock.Any(), gomock.Any()).Return(nil)

	c, rec := newContext(t, http.MethodPost, "/api/verify-mobile-otp",
		`{"mobile_number":"9876543210","otp":"123456"}`)
	require.NoError(t, h.VerifyMobileOTP(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}
