package whatsapp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmestetica/agenda-service/pkg/types"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"mobile with DDD", "11987654321", "5511987654321", false},
		{"landline with DDD", "1133334444", "551133334444", false},
		{"formatted", "(11) 98765-4321", "5511987654321", false},
		{"already with country code", "5511987654321", "5511987654321", false},
		{"too short", "12345", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPhone)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatDateBR(t *testing.T) {
	assert.Equal(t, "02/03/2026", FormatDateBR("2026-03-02"))
	assert.Equal(t, "garbage", FormatDateBR("garbage"))
}

func TestConfirmationLink(t *testing.T) {
	link, err := ConfirmationLink("(11) 98765-4321", "Maria", "2026-03-02", types.TimeString("10:00"))
	require.NoError(t, err)

	assert.Contains(t, link, "https://api.whatsapp.com/send?phone=5511987654321")
	assert.Contains(t, link, "text=")
	assert.Contains(t, link, "02%2F03%2F2026")
}

func TestConfirmationLink_InvalidPhone(t *testing.T) {
	_, err := ConfirmationLink("123", "Maria", "2026-03-02", types.TimeString("10:00"))
	assert.ErrorIs(t, err, ErrInvalidPhone)
}

func TestInviteLink(t *testing.T) {
	link, err := InviteLink("11987654321", "Maria", "https://agenda.example.com")
	require.NoError(t, err)

	assert.Contains(t, link, "phone=5511987654321")
	assert.Contains(t, link, "agenda.example.com")
}
