package metrics

import (
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/yaparim/marketplace/internal/core/domain"
)

func TestResult(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ResultSuccess},
		{domain.ErrDuplicateApplication, ResultRejected},
		{domain.ErrSelfApplication, ResultRejected},
		{domain.ErrInvalidCredentials, ResultRejected},
		{fmt.Errorf("apply: %w", domain.ErrTaskNotFound), ResultRejected},
		{errors.New("db down"), ResultError},
	}
	for _, tt := range tests {
		if got := Result(tt.err); got != tt.want {
			t.Errorf("Result(%v) = %s, want %s", tt.err, got, tt.want)
		}
	}
}

func TestCountersIncrement(t *testing.T) {
	before := testutil.ToFloat64(TasksCreatedTotal.WithLabelValues("Temizlik"))
	TasksCreatedTotal.WithLabelValues("Temizlik").Inc()
	if got := testutil.ToFloat64(TasksCreatedTotal.WithLabelValues("Temizlik")); got != before+1 {
		t.Fatalf("expected %v, got %v", before+1, got)
	}
}
