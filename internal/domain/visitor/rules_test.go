package visitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/recepcao-visitantes/internal/httperr"
	"github.com/BruksfildServices01/recepcao-visitantes/internal/models"
)

func TestNewVisitor(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	t.Run("valid input", func(t *testing.T) {
		v, err := NewVisitor(NewVisitorInput{
			Name:        "  Ana Souza  ",
			CPF:         "123.456.789-01",
			SalaDestino: "Sala 1",
			Email:       "ana@example.com",
		}, now)

		require.NoError(t, err)
		assert.NotEmpty(t, v.ID)
		assert.Equal(t, "Ana Souza", v.Name)
		assert.Equal(t, "12345678901", v.CPF)
		assert.Equal(t, "Sala 1", v.SalaDestino)
		assert.Equal(t, now, v.CheckIn)
		assert.Nil(t, v.CheckOut)
	})

	t.Run("email is optional", func(t *testing.T) {
		v, err := NewVisitor(NewVisitorInput{
			Name:        "Bruno",
			CPF:         "1234567890",
			SalaDestino: "Sala 2",
		}, now)

		require.NoError(t, err)
		assert.Empty(t, v.Email)
	})

	tests := []struct {
		name     string
		in       NewVisitorInput
		wantCode string
	}{
		{
			name:     "empty name",
			in:       NewVisitorInput{Name: "   ", CPF: "12345678901", SalaDestino: "Sala 1"},
			wantCode: "invalid_name",
		},
		{
			name:     "cpf too short",
			in:       NewVisitorInput{Name: "Ana", CPF: "123456789", SalaDestino: "Sala 1"},
			wantCode: "invalid_cpf",
		},
		{
			name:     "cpf too long",
			in:       NewVisitorInput{Name: "Ana", CPF: "123456789012345", SalaDestino: "Sala 1"},
			wantCode: "invalid_cpf",
		},
		{
			name:     "unknown room",
			in:       NewVisitorInput{Name: "Ana", CPF: "12345678901", SalaDestino: "Sala 9"},
			wantCode: "invalid_room",
		},
		{
			name:     "malformed email",
			in:       NewVisitorInput{Name: "Ana", CPF: "12345678901", SalaDestino: "Sala 1", Email: "ana@"},
			wantCode: "invalid_email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewVisitor(tt.in, now)
			require.Error(t, err)
			assert.True(t, httperr.IsBusiness(err, tt.wantCode), "want %s, got %v", tt.wantCode, err)
		})
	}
}

func TestCloneForCheckIn(t *testing.T) {
	birth := time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC)
	checkedOut := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	src := &models.Visitor{
		ID:             "original-id",
		Name:           "Ana",
		CPF:            "12345678901",
		SalaDestino:    "Sala 1",
		DataNascimento: &birth,
		Email:          "ana@example.com",
		CheckIn:        time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		CheckOut:       &checkedOut,
	}

	now := time.Date(2026, 3, 11, 8, 30, 0, 0, time.UTC)
	clone := CloneForCheckIn(src, now)

	assert.NotEqual(t, src.ID, clone.ID)
	assert.Equal(t, src.Name, clone.Name)
	assert.Equal(t, src.CPF, clone.CPF)
	assert.Equal(t, src.SalaDestino, clone.SalaDestino)
	assert.Equal(t, src.DataNascimento, clone.DataNascimento)
	assert.Equal(t, src.Email, clone.Email)
	assert.Equal(t, now, clone.CheckIn)
	assert.Nil(t, clone.CheckOut)
}

func TestCheckOutAndDeleteRules(t *testing.T) {
	now := time.Now()

	active := &models.Visitor{CheckOut: nil}
	done := &models.Visitor{CheckOut: &now}

	assert.NoError(t, CanCheckOut(active))
	assert.True(t, httperr.IsBusiness(CanCheckOut(done), "already_checked_out"))

	assert.True(t, httperr.IsBusiness(CanDelete(active), "visitor_active"))
	assert.NoError(t, CanDelete(done))
}

func TestStatusOf(t *testing.T) {
	now := time.Now()

	assert.Equal(t, StatusActive, StatusOf(&models.Visitor{}))
	assert.Equal(t, StatusCheckout, StatusOf(&models.Visitor{CheckOut: &now}))
}

func TestDurationHours(t *testing.T) {
	checkIn := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	t.Run("nil while active", func(t *testing.T) {
		assert.Nil(t, DurationHours(&models.Visitor{CheckIn: checkIn}))
	})

	t.Run("90 minutes is 1.5 hours", func(t *testing.T) {
		out := checkIn.Add(90 * time.Minute)
		d := DurationHours(&models.Visitor{CheckIn: checkIn, CheckOut: &out})
		require.NotNil(t, d)
		assert.Equal(t, 1.5, *d)
	})

	t.Run("rounds to two decimals", func(t *testing.T) {
		out := checkIn.Add(100 * time.Minute)
		d := DurationHours(&models.Visitor{CheckIn: checkIn, CheckOut: &out})
		require.NotNil(t, d)
		assert.Equal(t, 1.67, *d)
	})
}

func TestIsValidRoom(t *testing.T) {
	for _, room := range Rooms {
		assert.True(t, IsValidRoom(room))
	}
	assert.False(t, IsValidRoom("Sala 6"))
	assert.False(t, IsValidRoom(""))
}
