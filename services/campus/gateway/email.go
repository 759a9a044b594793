package gateway

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/snsce/attendance/internal/pkg/logger"
	"github.com/snsce/attendance/internal/utils"
)

// SendEmailOTP delivers a verification code over SMTP. With no SMTP
// host configured the code is logged instead, which keeps local
// development working without a mail relay.
func (gw *CampusGW) SendEmailOTP(ctx context.Context, email, code string) error {
	if gw.cfg.SMTP.Host == "" {
		logger.Info("SMTP disabled, OTP not delivered", logger.Fields{
			"email": utils.MaskEmail(email),
		})
		return nil
	}

	addr := fmt.Sprintf("%s:%d", gw.cfg.SMTP.Host, gw.cfg.SMTP.Port)
	auth := smtp.PlainAuth("", gw.cfg.SMTP.Username, gw.cfg.SMTP.Password, gw.cfg.SMTP.Host)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: Your verification code\r\n\r\nYour OTP is %s. It expires shortly; do not share it.\r\n",
		gw.cfg.SMTP.From, email, code,
	))

	if err := smtp.SendMail(addr, auth, gw.cfg.SMTP.From, []string{email}, msg); err != nil {
		return fmt.Errorf("failed to send OTP email: %w", err)
	}

	logger.Debug("OTP email sent", logger.Fields{
		"email": utils.MaskEmail(email),
	})
	return nil
}
