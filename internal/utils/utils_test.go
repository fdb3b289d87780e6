package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserContext(t *testing.T) {
	t.Run("SetUserContext and getters", func(t *testing.T) {
		ctx := SetUserContext(context.Background(), "user-1", "a@x.com", RoleUser)

		id, ok := GetUserIDFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, "user-1", id)
		assert.Equal(t, "a@x.com", GetUserEmailFromContext(ctx))
		assert.Equal(t, RoleUser, GetUserRoleFromContext(ctx))
		assert.False(t, IsAdmin(ctx))
	})

	t.Run("Admin role", func(t *testing.T) {
		ctx := SetUserContext(context.Background(), "admin", "admin@ayushyaa.com", RoleAdmin)
		assert.True(t, IsAdmin(ctx))
	})

	t.Run("Empty context", func(t *testing.T) {
		_, ok := GetUserIDFromContext(context.Background())
		assert.False(t, ok)
	})
}

func TestClientIDContext(t *testing.T) {
	ctx := WithClientID(context.Background(), "tab-42")
	assert.Equal(t, "tab-42", GetClientIDFromContext(ctx))
	assert.Equal(t, "", GetClientIDFromContext(context.Background()))
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Simple", input: "Ragi Laddu", expected: "ragi-laddu"},
		{name: "With Special Chars", input: "Herbal Hair Oil & Shampoo!", expected: "herbal-hair-oil-shampoo"},
		{name: "Multiple Spaces", input: "  Dry   Fruit  Mix ", expected: "dry-fruit-mix"},
		{name: "Already a slug", input: "naturals", expected: "naturals"},
		{name: "Only symbols", input: "***", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestWriteJSONError(t *testing.T) {
	w := httptest.NewRecorder()

	WriteJSONError(w, "invalid credentials", http.StatusUnauthorized)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "invalid credentials", body["error"])
}
