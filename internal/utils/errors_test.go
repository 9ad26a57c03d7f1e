package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorFormatting(t *testing.T) {
	err := E(CodeNotFound, "ProfileRepo.Search", "profile not found", errors.New("no documents"))
	assert.Equal(t, "ProfileRepo.Search: profile not found: no documents", err.Error())

	bare := E(CodeInternal, "", "boom", nil)
	assert.Equal(t, "boom", bare.Error())
}

func TestIsCodeUnwraps(t *testing.T) {
	inner := E(CodeConflict, "Repo.Insert", "duplicate", nil)
	wrapped := fmt.Errorf("pipeline: %w", inner)

	assert.True(t, IsCode(wrapped, CodeConflict))
	assert.False(t, IsCode(wrapped, CodeNotFound))
	assert.False(t, IsCode(errors.New("plain"), CodeConflict))
}

func TestHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeInvalidArgument, http.StatusBadRequest},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeNotFound, http.StatusNotFound},
		{CodeConflict, http.StatusConflict},
		{CodeRateLimited, http.StatusTooManyRequests},
		{CodeUnavailable, http.StatusServiceUnavailable},
		{CodeTimeout, http.StatusGatewayTimeout},
		{CodeInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatus(E(tt.code, "op", "msg", nil)), string(tt.code))
	}

	assert.Equal(t, http.StatusNotFound, HTTPStatus(ErrNotFound))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("plain")))
}
