package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ops-dashboard/internal/entities"
)

func TestResolveRole(t *testing.T) {
	testCases := []struct {
		name     string
		user     *entities.User
		expected Role
	}{
		{
			name:     "нет пользователя — anon",
			user:     nil,
			expected: RoleAnon,
		},
		{
			name: "роль профиля имеет приоритет над флагами",
			user: &entities.User{
				IsSuperuser: true,
				Profile:     &entities.Profile{Role: "manager"},
			},
			expected: RoleManager,
		},
		{
			name: "профиль с мусорной ролью игнорируется",
			user: &entities.User{
				IsSuperuser: true,
				Profile:     &entities.Profile{Role: "root"},
			},
			expected: RoleAdmin,
		},
		{
			name:     "суперпользователь без профиля — admin",
			user:     &entities.User{IsSuperuser: true},
			expected: RoleAdmin,
		},
		{
			name:     "staff без профиля — manager",
			user:     &entities.User{IsStaff: true},
			expected: RoleManager,
		},
		{
			name:     "обычный пользователь без профиля — client",
			user:     &entities.User{},
			expected: RoleClient,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ResolveRole(tc.user))
		})
	}
}

func TestAllowed(t *testing.T) {
	staff := []Role{RoleAdmin, RoleManager}

	assert.True(t, Allowed(RoleAdmin, staff...))
	assert.True(t, Allowed(RoleManager, staff...))
	assert.False(t, Allowed(RoleClient, staff...))
	assert.False(t, Allowed(RoleAnon, staff...))
	assert.False(t, Allowed(RoleAdmin))
}

func TestOwnsOrder(t *testing.T) {
	// Не-клиент проходит всегда.
	assert.True(t, OwnsOrder(RoleAdmin, 1, 99))
	assert.True(t, OwnsOrder(RoleManager, 1, 99))

	// Клиент — только свою заявку.
	assert.True(t, OwnsOrder(RoleClient, 7, 7))
	assert.False(t, OwnsOrder(RoleClient, 7, 8))
}
