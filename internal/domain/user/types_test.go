//go:build unit

package user_test

import (
	"testing"

	"vas-broker/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  user.Role
		errIs error
	}{
		{name: "customer", input: "customer", want: user.RoleCustomer},
		{name: "agent", input: "agent", want: user.RoleAgent},
		{name: "admin", input: "admin", want: user.RoleAdmin},
		{name: "mixed case and padding", input: " Admin ", want: user.RoleAdmin},
		{name: "unknown role", input: "operator", errIs: user.ErrInvalidRole},
		{name: "empty role", input: "", errIs: user.ErrInvalidRole},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			role, err := user.NewRole(c.input)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				assert.Empty(t, role)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, role)
		})
	}
}
