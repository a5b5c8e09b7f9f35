package exitcode_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/photonforge/rtprep/internal/exitcode"
	"github.com/photonforge/rtprep/internal/resolve"
)

func TestName(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{exitcode.Success, "Success"},
		{exitcode.Error, "Error"},
		{exitcode.MissingKey, "MissingKey"},
		{exitcode.InvalidEnum, "InvalidEnum"},
		{exitcode.CrossField, "CrossField"},
		{exitcode.UnsupportedValue, "UnsupportedValue"},
		{42, "unknown"},
		{-1, "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, exitcode.Name(tt.code))
	}
}

func TestFromError(t *testing.T) {
	assert.Equal(t, exitcode.Success, exitcode.FromError(nil))
	assert.Equal(t, exitcode.Error, exitcode.FromError(errors.New("boom")))

	mk := func(kind resolve.Kind) error {
		return &resolve.Error{Phase: resolve.PhaseInitial, Field: "f", Kind: kind, Msg: "m"}
	}
	assert.Equal(t, exitcode.MissingKey, exitcode.FromError(mk(resolve.KindMissingKey)))
	assert.Equal(t, exitcode.InvalidEnum, exitcode.FromError(mk(resolve.KindInvalidEnum)))
	assert.Equal(t, exitcode.CrossField, exitcode.FromError(mk(resolve.KindCrossField)))
	assert.Equal(t, exitcode.UnsupportedValue, exitcode.FromError(mk(resolve.KindUnsupportedValue)))

	// Wrapped resolution errors still map to their kind.
	wrapped := fmt.Errorf("resolving: %w", mk(resolve.KindCrossField))
	assert.Equal(t, exitcode.CrossField, exitcode.FromError(wrapped))
}
