package auth

import (
	"strings"
	"testing"

	"matchdeportivo/config"
	domainerrors "matchdeportivo/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	strongPassword := "Cancha#Norte9"
	hash, err := hasher.Hash(strongPassword)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, strongPassword, hash)

	assert.True(t, hasher.Check(strongPassword, hash))
}

func TestBcryptHasher_HashWithWeakPassword(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	weakPasswords := []string{
		"123",           // Too short
		"PASSWORD123!",  // No lowercase
		"cancha123!",    // No uppercase
		"CanchaNorte!",  // No numbers
		"CanchaNorte9",  // No special characters
		"Password123!",  // Forbidden word
		"Contraseña12!", // Forbidden word
	}

	for _, weakPassword := range weakPasswords {
		_, err := hasher.Hash(weakPassword)
		assert.Error(t, err, "Expected error for weak password: %s", weakPassword)
	}
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	password := "Cancha#Norte9"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("Cancha#Sur9", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	validPasswords := []string{
		"Cancha#Norte9",
		"MySecure@Pass1",
		"Complex#Secret9",
		"Pässphräse123!",
	}

	for _, password := range validPasswords {
		assert.NoError(t, hasher.ValidatePasswordStrength(password), "Expected no error for valid password: %s", password)
	}

	testCases := []struct {
		password    string
		expectedErr error
	}{
		{"", domainerrors.ErrPasswordTooShort},
		{"Ab1!", domainerrors.ErrPasswordTooShort},
		{"CANCHA123!", domainerrors.ErrPasswordNoLowercase},
		{"cancha123!", domainerrors.ErrPasswordNoUppercase},
		{"CanchaNorte!", domainerrors.ErrPasswordNoNumber},
		{"CanchaNorte9", domainerrors.ErrPasswordNoSpecialChar},
		{"!@#$%^&*()", domainerrors.ErrPasswordNoLowercase},
		{"MyAdmin123!", domainerrors.ErrPasswordForbiddenWords},
		{"Qwerty#2024a", domainerrors.ErrPasswordForbiddenWords},
	}

	for _, tc := range testCases {
		err := hasher.ValidatePasswordStrength(tc.password)
		assert.True(t, errors.Is(err, tc.expectedErr), "password %q: got %v", tc.password, err)
	}
}

func TestBcryptHasher_CostFromConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
		want int
	}{
		{name: "nil config", cfg: nil, want: bcrypt.DefaultCost},
		{name: "unset cost", cfg: &config.Config{Auth: &config.AuthConfig{}}, want: bcrypt.DefaultCost},
		{name: "configured cost", cfg: &config.Config{Auth: &config.AuthConfig{BcryptCost: 5}}, want: 5},
		{name: "out of range cost", cfg: &config.Config{Auth: &config.AuthConfig{BcryptCost: 99}}, want: bcrypt.DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher, ok := NewBcryptHasher(tt.cfg).(*bcryptHasher)
			require.True(t, ok)
			assert.Equal(t, tt.want, hasher.cost)
		})
	}
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6
	hasher := NewBcryptHasherWithCost(customCost)

	password := "Cancha#Norte9"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestBcryptHasher_PasswordStrengthHelpers(t *testing.T) {
	hasher := &bcryptHasher{}

	assert.True(t, hasher.hasUppercase("Cancha"))
	assert.False(t, hasher.hasUppercase("cancha"))

	assert.True(t, hasher.hasLowercase("Cancha"))
	assert.False(t, hasher.hasLowercase("CANCHA"))

	assert.True(t, hasher.hasNumbers("Cancha123"))
	assert.False(t, hasher.hasNumbers("Cancha"))

	assert.True(t, hasher.hasSpecialChars("Cancha!"))
	assert.True(t, hasher.hasSpecialChars("Cancha$"))
	assert.False(t, hasher.hasSpecialChars("Cancha"))

	forbiddenWords := []string{"password", "admin"}
	assert.True(t, hasher.containsForbiddenWords("MyPassword123", forbiddenWords))
	assert.True(t, hasher.containsForbiddenWords("AdminUser", forbiddenWords))
	assert.False(t, hasher.containsForbiddenWords("SecurePass123", forbiddenWords))
}

func TestBcryptHasher_LongPassword(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	// bcrypt rejects inputs longer than 72 bytes
	_, err := hasher.Hash("Cancha#Norte9" + strings.Repeat("x", 80))
	assert.Error(t, err)
}
