package otp

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/internal/utils/logger"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureSender struct {
	codes map[string]string
	err   error
}

func (c *captureSender) Send(_ context.Context, phone, code string) error {
	if c.err != nil {
		return c.err
	}
	c.codes[phone] = code
	return nil
}

func newTestService(t *testing.T) (*otpService, *captureSender, *memoryStore) {
	t.Helper()
	store := NewMemoryStore().(*memoryStore)
	sender := &captureSender{codes: map[string]string{}}
	svc := NewOTPService(store, sender, logger.NewNop()).(*otpService)
	svc.generate = func() (string, error) { return "123456", nil }
	return svc, sender, store
}

const phone = "+15551234567"

func TestSendAndVerify(t *testing.T) {
	svc, sender, _ := newTestService(t)
	ctx := context.Background()

	resp, err := svc.Send(ctx, phone)
	require.NoError(t, err)
	assert.Equal(t, phone, resp.Phone)
	assert.Equal(t, "123456", sender.codes[phone])

	require.NoError(t, svc.Verify(ctx, phone, "123456"))

	// codes are single use
	assert.ErrorIs(t, svc.Verify(ctx, phone, "123456"), domain.ErrOTPExpired)
}

func TestVerifyWrongCode(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	_, err := svc.Send(ctx, phone)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Verify(ctx, phone, "000000"), domain.ErrInvalidOTP)
	require.NoError(t, svc.Verify(ctx, phone, "123456"))
}

func TestVerifyWithoutSend(t *testing.T) {
	svc, _, _ := newTestService(t)
	assert.ErrorIs(t, svc.Verify(context.Background(), phone, "123456"), domain.ErrOTPExpired)
}

func TestVerifyExpired(t *testing.T) {
	svc, _, store := newTestService(t)
	ctx := context.Background()
	_, err := svc.Send(ctx, phone)
	require.NoError(t, err)

	store.now = func() time.Time { return time.Now().Add(domain.OTPTTL + time.Second) }
	assert.ErrorIs(t, svc.Verify(ctx, phone, "123456"), domain.ErrOTPExpired)
}

func TestVerifyLocksAfterMaxAttempts(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	_, err := svc.Send(ctx, phone)
	require.NoError(t, err)

	for i := 1; i < domain.OTPMaxAttempts; i++ {
		assert.ErrorIs(t, svc.Verify(ctx, phone, "999999"), domain.ErrInvalidOTP)
	}
	assert.ErrorIs(t, svc.Verify(ctx, phone, "999999"), domain.ErrOTPTooManyAttempts)
	// the code is burned even if it is now correct
	assert.ErrorIs(t, svc.Verify(ctx, phone, "123456"), domain.ErrOTPExpired)
}

func TestSendFailureDropsCode(t *testing.T) {
	svc, sender, _ := newTestService(t)
	sender.err = errors.New("smtp down")
	ctx := context.Background()

	_, err := svc.Send(ctx, phone)
	require.Error(t, err)
	assert.ErrorIs(t, svc.Verify(ctx, phone, "123456"), domain.ErrOTPExpired)
}

func TestGenerateCode(t *testing.T) {
	code, err := GenerateCode()
	require.NoError(t, err)
	assert.Len(t, code, domain.OTPLength)
	for _, r := range code {
		assert.True(t, r >= '0' && r <= '9')
	}
}

func TestGatewaySender(t *testing.T) {
	var gotTo, gotBody string
	s := &gatewaySender{domain: "sms.example.com", send: func(to, _, body string) error {
		gotTo, gotBody = to, body
		return nil
	}}
	require.NoError(t, s.Send(context.Background(), "+1 (555) 123-4567", "424242"))
	assert.Equal(t, "15551234567@sms.example.com", gotTo)
	assert.Contains(t, gotBody, "424242")
}
