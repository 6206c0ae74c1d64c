package otp

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/internal/utils/logger"
	"Recipe-Hub/internal/utils/metrics"
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type (
	OTPService interface {
		Send(ctx context.Context, phone string) (domain.SendOTPResponse, error)
		Verify(ctx context.Context, phone, code string) error
	}

	otpService struct {
		store    Store
		sender   Sender
		log      *logger.Logger
		now      func() time.Time
		generate func() (string, error)
	}
)

func NewOTPService(store Store, sender Sender, log *logger.Logger) OTPService {
	return &otpService{
		store:    store,
		sender:   sender,
		log:      log.With("service", "otp"),
		now:      time.Now,
		generate: GenerateCode,
	}
}

// GenerateCode returns a uniformly random numeric code of domain.OTPLength digits.
func GenerateCode() (string, error) {
	var b strings.Builder
	for i := 0; i < domain.OTPLength; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		b.WriteByte(byte('0' + n.Int64()))
	}
	return b.String(), nil
}

func (s *otpService) Send(ctx context.Context, phone string) (domain.SendOTPResponse, error) {
	code, err := s.generate()
	if err != nil {
		return domain.SendOTPResponse{}, fmt.Errorf("generate otp: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return domain.SendOTPResponse{}, fmt.Errorf("hash otp: %w", err)
	}
	if err := s.store.Save(ctx, phone, string(hash), domain.OTPTTL); err != nil {
		return domain.SendOTPResponse{}, err
	}
	if err := s.sender.Send(ctx, phone, code); err != nil {
		_ = s.store.Delete(ctx, phone)
		metrics.RecordOTP("send", "error")
		return domain.SendOTPResponse{}, err
	}

	metrics.RecordOTP("send", "ok")
	s.log.Info("otp sent", "phone", phone)
	return domain.SendOTPResponse{
		Phone:     phone,
		ExpiresAt: s.now().Add(domain.OTPTTL),
	}, nil
}

func (s *otpService) Verify(ctx context.Context, phone, code string) error {
	entry, err := s.store.Get(ctx, phone)
	if errors.Is(err, errNoCode) {
		metrics.RecordOTP("verify", "expired")
		return domain.ErrOTPExpired
	}
	if err != nil {
		return err
	}
	if entry.Attempts >= domain.OTPMaxAttempts {
		_ = s.store.Delete(ctx, phone)
		metrics.RecordOTP("verify", "locked")
		return domain.ErrOTPTooManyAttempts
	}

	if err := bcrypt.CompareHashAndPassword([]byte(entry.Hash), []byte(code)); err != nil {
		attempts, incErr := s.store.IncrementAttempts(ctx, phone, domain.OTPTTL)
		if errors.Is(incErr, errNoCode) {
			return domain.ErrOTPExpired
		}
		if incErr != nil {
			return incErr
		}
		if attempts >= domain.OTPMaxAttempts {
			_ = s.store.Delete(ctx, phone)
			metrics.RecordOTP("verify", "locked")
			return domain.ErrOTPTooManyAttempts
		}
		metrics.RecordOTP("verify", "invalid")
		return domain.ErrInvalidOTP
	}

	// single use
	if err := s.store.Delete(ctx, phone); err != nil {
		return err
	}
	metrics.RecordOTP("verify", "ok")
	return nil
}
