package account_test

import (
	"io"
	"log"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amirasaad/bank/pkg/domain/account"
)

// TestMain runs before any tests and applies globally for all tests in the package.
func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	log.SetOutput(io.Discard)

	exitVal := m.Run()
	os.Exit(exitVal)
}

func TestValidPESEL(t *testing.T) {
	t.Parallel()
	assert.True(t, account.ValidPESEL("12345678901"))
	assert.True(t, account.ValidPESEL("abcdefghijk"), "only the length is checked")
	assert.False(t, account.ValidPESEL("1234567890"))
	assert.False(t, account.ValidPESEL("123456789012"))
	assert.False(t, account.ValidPESEL(""))
}

func TestValidNIP(t *testing.T) {
	t.Parallel()
	assert.True(t, account.ValidNIP("8461627563"))
	assert.False(t, account.ValidNIP("846162756"))
	assert.False(t, account.ValidNIP("84616275631"))
}

func TestBirthYear(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		pesel string
		year  int
		ok    bool
	}{
		{"twentieth century", "61071512345", 1961, true},
		{"twentieth century low year", "01011212345", 1901, true},
		{"twenty-first century", "92231512345", 1992 + 100, true},
		{"twenty-second century", "05451512345", 2105, true},
		{"twenty-third century", "10611512345", 2210, true},
		{"nineteenth century", "99811512345", 1899, true},
		{"month code out of range", "61131512345", 0, false},
		{"month code zero", "61001512345", 0, false},
		{"too short", "6107151234", 0, false},
		{"non-digit", "6107151234a", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			year, ok := account.BirthYear(tt.pesel)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.year, year)
			}
		})
	}
}
