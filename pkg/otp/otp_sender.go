package otp

import (
	"Recipe-Hub/internal/utils/logger"
	"Recipe-Hub/internal/utils/mailing"
	"context"
	"fmt"
	"strings"
)

type (
	// Sender delivers a verification code to a phone number.
	Sender interface {
		Send(ctx context.Context, phone, code string) error
	}

	gatewaySender struct {
		domain string
		send   func(to, subject, body string) error
	}

	logSender struct {
		log *logger.Logger
	}
)

// NewGatewaySender mails the code to <digits>@domain, which the carrier gateway turns into an SMS.
func NewGatewaySender(gatewayDomain string) Sender {
	return &gatewaySender{domain: gatewayDomain, send: mailing.SendMail}
}

func (s *gatewaySender) Send(_ context.Context, phone, code string) error {
	to := GatewayAddress(phone, s.domain)
	body := fmt.Sprintf("Your Recipe Hub verification code is %s. It expires in 5 minutes.", code)
	if err := s.send(to, "Recipe Hub verification", body); err != nil {
		return fmt.Errorf("send otp: %w", err)
	}
	return nil
}

func GatewayAddress(phone, gatewayDomain string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	return digits + "@" + gatewayDomain
}

// NewLogSender writes the code to the application log. Development only.
func NewLogSender(log *logger.Logger) Sender {
	return &logSender{log: log.With("component", "otp_log_sender")}
}

func (s *logSender) Send(_ context.Context, phone, code string) error {
	s.log.Info("verification code issued", "phone", phone, "dev_otp_value", code)
	return nil
}
