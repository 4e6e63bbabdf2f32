package service

import (
	"testing"
	"time"

	"github.com/219WD/jamrock-front-sub001/internal/apperr"
	"github.com/219WD/jamrock-front-sub001/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedValidator(now time.Time) *TurnoValidator {
	v := NewTurnoValidator()
	v.now = func() time.Time { return now }
	return v
}

func TestValidateCreate(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	v := fixedValidator(now)
	future := now.Add(48 * time.Hour).Format(time.RFC3339)
	past := now.Add(-48 * time.Hour).Format(time.RFC3339)

	t.Run("valid draft passes", func(t *testing.T) {
		err := v.ValidateCreate(model.TurnoDraft{
			Motivo:         "control mensual",
			Fecha:          future,
			EspecialistaID: "esp-1",
		})
		assert.NoError(t, err)
	})

	t.Run("empty motivo fails on motivo field", func(t *testing.T) {
		err := v.ValidateCreate(model.TurnoDraft{
			Motivo:         "",
			Fecha:          future,
			EspecialistaID: "esp-1",
		})
		var ve *apperr.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "motivo", ve.Field)
	})

	t.Run("whitespace motivo fails", func(t *testing.T) {
		err := v.ValidateCreate(model.TurnoDraft{
			Motivo:         "   ",
			Fecha:          future,
			EspecialistaID: "esp-1",
		})
		var ve *apperr.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "motivo", ve.Field)
	})

	t.Run("missing fecha fails on fecha field", func(t *testing.T) {
		err := v.ValidateCreate(model.TurnoDraft{
			Motivo:         "check",
			EspecialistaID: "esp-1",
		})
		var ve *apperr.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "fecha", ve.Field)
	})

	t.Run("garbage fecha fails on fecha field", func(t *testing.T) {
		err := v.ValidateCreate(model.TurnoDraft{
			Motivo:         "check",
			Fecha:          "mañana a la tarde",
			EspecialistaID: "esp-1",
		})
		var ve *apperr.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "fecha", ve.Field)
	})

	t.Run("past fecha fails on date constraint", func(t *testing.T) {
		err := v.ValidateCreate(model.TurnoDraft{
			Motivo:         "check",
			Fecha:          past,
			EspecialistaID: "x",
		})
		var ve *apperr.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "fecha", ve.Field)
		assert.Contains(t, ve.Reason, "later than now")
	})

	t.Run("missing especialista fails", func(t *testing.T) {
		err := v.ValidateCreate(model.TurnoDraft{
			Motivo: "check",
			Fecha:  future,
		})
		var ve *apperr.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "especialista_id", ve.Field)
	})

	t.Run("rules short circuit in order", func(t *testing.T) {
		// motivo 與 fecha 同時不合法時要先回報 motivo
		err := v.ValidateCreate(model.TurnoDraft{Motivo: "", Fecha: "garbage"})
		var ve *apperr.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "motivo", ve.Field)
	})
}

func TestValidateEdit(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	v := fixedValidator(now)
	future := now.Add(24 * time.Hour).Format(time.RFC3339)

	// 自行編輯流程不要求 especialista
	err := v.ValidateEdit(model.TurnoDraft{
		Motivo: "cambio de horario",
		Fecha:  future,
	})
	assert.NoError(t, err)
}

func TestValidatePatch(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	v := fixedValidator(now)
	future := now.Add(24 * time.Hour).Format(time.RFC3339)
	past := now.Add(-24 * time.Hour).Format(time.RFC3339)
	empty := ""

	t.Run("nil fields are not validated", func(t *testing.T) {
		assert.NoError(t, v.ValidatePatch(model.TurnoPatch{}))
	})

	t.Run("patched motivo must be non empty", func(t *testing.T) {
		err := v.ValidatePatch(model.TurnoPatch{Motivo: &empty})
		var ve *apperr.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "motivo", ve.Field)
	})

	t.Run("patched fecha must be future", func(t *testing.T) {
		err := v.ValidatePatch(model.TurnoPatch{Fecha: &past})
		var ve *apperr.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "fecha", ve.Field)
	})

	t.Run("valid patch passes", func(t *testing.T) {
		motivo := "nuevo motivo"
		assert.NoError(t, v.ValidatePatch(model.TurnoPatch{Fecha: &future, Motivo: &motivo}))
	})
}
