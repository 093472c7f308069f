package notification

import (
	"context"
	"fmt"
	"net/smtp"

	"ravelpix.com/photo-download-gateway/app/domain/common"
	"ravelpix.com/photo-download-gateway/app/infrastructure/secrets"
	"ravelpix.com/photo-download-gateway/app/utils/logger"
	"ravelpix.com/photo-download-gateway/config/environment_variables"
)

// Mailer sends a single plain-text message.
type Mailer interface {
	SendMail(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

type smtpMailer struct{}

func (smtpMailer) SendMail(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
	return smtp.SendMail(addr, a, from, to, msg)
}

// Service delivers best-effort alerts to the support address. Failures are
// logged and swallowed, never retried, never propagated.
type Service struct {
	secrets secrets.Store
	mailer  Mailer
}

func NewService(secretsStore secrets.Store) *Service {
	return &Service{
		secrets: secretsStore,
		mailer:  smtpMailer{},
	}
}

// NewServiceWithMailer exists for tests.
func NewServiceWithMailer(secretsStore secrets.Store, mailer Mailer) *Service {
	return &Service{secrets: secretsStore, mailer: mailer}
}

// NotifyResizeFailure emails the support address about a failed cache fill.
func (s *Service) NotifyResizeFailure(ctx context.Context, photoID, key string, cause error) {
	message := fmt.Sprintf("Resizing Error %s::%s::%d: %v", photoID, key, common.CodeResizeFailure, cause)
	s.send(ctx, "Ravelpix Photo Download Error", message)
}

func (s *Service) send(ctx context.Context, subject, body string) {
	envs := environment_variables.EnvironmentVariables

	password, err := s.secrets.GetSecret(ctx, envs.SSM_EMAIL_PARAM)
	if err != nil {
		logger.GetLogger().Error("notification: fetch smtp credential: " + err.Error())
		return
	}

	auth := smtp.PlainAuth("", envs.SMTP_USERNAME, password, envs.SMTP_HOST)
	addr := fmt.Sprintf("%s:%d", envs.SMTP_HOST, envs.SMTP_PORT)
	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		envs.SUPPORT_EMAIL, envs.SUPPORT_EMAIL, subject, body,
	))

	if err := s.mailer.SendMail(addr, auth, envs.SUPPORT_EMAIL, []string{envs.SUPPORT_EMAIL}, msg); err != nil {
		logger.GetLogger().Error("notification: send mail: " + err.Error())
	}
}
