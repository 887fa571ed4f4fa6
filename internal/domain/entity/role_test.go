package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolesFromStrings(t *testing.T) {
	got := RolesFromStrings([]string{"player", " admin", "referee", "player", ""})
	assert.Equal(t, Roles{RolePlayer, RoleAdmin}, got)
	assert.Equal(t, []string{"player", "admin"}, got.ToStrings())
}

func TestRoles_OrDefault(t *testing.T) {
	assert.Equal(t, Roles{RolePlayer}, Roles(nil).OrDefault())
	assert.Equal(t, Roles{RoleAdmin}, Roles{RoleAdmin}.OrDefault())
}
