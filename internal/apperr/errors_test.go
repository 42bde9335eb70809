package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindPredicates(t *testing.T) {
	tests := []struct {
		name string
		err  error
		pred func(error) bool
		kind string
	}{
		{name: "validation", err: Validation("title is required"), pred: IsValidation, kind: "validation_error"},
		{name: "not found", err: NotFound("todo", 7), pred: IsNotFound, kind: "not_found"},
		{name: "store", err: Store(errors.New("down")), pred: IsStore, kind: "store_error"},
		{name: "config", err: Config("GEMINI_API_KEY"), pred: IsConfig, kind: "config_error"},
		{name: "upstream", err: Upstream("gemini", 500, "boom"), pred: IsUpstream, kind: "upstream_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.pred(tt.err))
			assert.Equal(t, tt.kind, Kind(tt.err))
		})
	}
}

func TestPredicatesSeeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("run summarize: %w", Config("SLACK_WEBHOOK_URL"))
	assert.True(t, IsConfig(err))
	assert.Equal(t, "config_error", Kind(err))
}

func TestStoreDoesNotDoubleWrap(t *testing.T) {
	inner := Store(errors.New("down"))
	assert.Equal(t, inner, Store(inner))
}

func TestUpstreamErrorMessage(t *testing.T) {
	err := Upstream("gemini", 429, "quota exceeded")
	assert.Contains(t, err.Error(), "gemini")
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "quota exceeded")

	wrapped := UpstreamWrap("slack", errors.New("connection refused"))
	assert.Contains(t, wrapped.Error(), "slack")
	var ue *UpstreamError
	assert.True(t, errors.As(wrapped, &ue))
	assert.Zero(t, ue.Status)
}

func TestKindUnknownError(t *testing.T) {
	assert.Equal(t, "internal_error", Kind(errors.New("mystery")))
}
