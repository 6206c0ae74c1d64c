package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordOperation(t *testing.T) {
	before := testutil.ToFloat64(GraphQLOperationsTotal.WithLabelValues("LikeRecipe", "error"))

	RecordOperation("LikeRecipe", true, 20*time.Millisecond)

	after := testutil.ToFloat64(GraphQLOperationsTotal.WithLabelValues("LikeRecipe", "error"))
	assert.Equal(t, before+1, after)
}

func TestRecordOperationAnonymous(t *testing.T) {
	before := testutil.ToFloat64(GraphQLOperationsTotal.WithLabelValues("anonymous", "ok"))
	RecordOperation("", false, time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(GraphQLOperationsTotal.WithLabelValues("anonymous", "ok")))
}
