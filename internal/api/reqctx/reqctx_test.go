package reqctx

import (
	"Recipe-Hub/domain"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequireUser(t *testing.T) {
	_, err := RequireUser(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	ctx := With(context.Background(), &Request{UserID: "u-1", Role: domain.RoleUser})
	id, err := RequireUser(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "u-1", id)
	assert.Equal(t, "u-1", ViewerID(ctx))
}

func TestFromNeverNil(t *testing.T) {
	req := From(context.Background())
	assert.NotNil(t, req)
	assert.False(t, req.Authenticated())
	assert.Equal(t, "", ViewerID(With(context.Background(), nil)))
}
