package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"miniblog/internal/model"
)

func TestPolicy(t *testing.T) {
	var (
		anonymous *model.User
		alice     = &model.User{ID: 7, Username: "alice"}
		admin     = &model.User{ID: 1, Username: "admin", IsAdmin: true}
	)

	tests := []struct {
		name            string
		user            *model.User
		isAuthenticated bool
		isAdmin         bool
		canPost         bool
		canComment      bool
		canModerate     bool
	}{
		{"anonymous", anonymous, false, false, false, true, false},
		{"regular user", alice, true, false, true, true, false},
		{"admin", admin, true, true, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isAuthenticated, IsAuthenticated(tt.user))
			assert.Equal(t, tt.isAdmin, IsAdmin(tt.user))
			assert.Equal(t, tt.canPost, CanPost(tt.user))
			assert.Equal(t, tt.canComment, CanComment(tt.user))
			assert.Equal(t, tt.canModerate, CanModerate(tt.user))
		})
	}
}
