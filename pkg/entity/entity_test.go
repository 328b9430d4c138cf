package entity_test

import (
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/limbo/medtrack/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestParseTimeOfDay(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		tod, err := entity.ParseTimeOfDay("08:30")
		assert.NoError(t, err)
		assert.Equal(t, entity.TimeOfDay{Hour: 8, Minute: 30}, tod)
		assert.Equal(t, "08:30", tod.String())
		assert.Equal(t, 510, tod.Minutes())
	})
	t.Run("rejects malformed input", func(t *testing.T) {
		for _, raw := range []string{"", "8:30", "0830", "08-30", "ab:cd", "08:30:00"} {
			_, err := entity.ParseTimeOfDay(raw)
			assert.Error(t, err, raw)
		}
	})
	t.Run("rejects out of range", func(t *testing.T) {
		for _, raw := range []string{"24:00", "12:60"} {
			_, err := entity.ParseTimeOfDay(raw)
			assert.Error(t, err, raw)
		}
	})
}

func TestTimeOfDayAt(t *testing.T) {
	day := time.Date(2026, 3, 15, 17, 45, 12, 0, time.UTC)
	tod := entity.TimeOfDay{Hour: 8, Minute: 30}
	assert.Equal(t, time.Date(2026, 3, 15, 8, 30, 0, 0, time.UTC), tod.At(day))
}

func TestTimeOfDayJSON(t *testing.T) {
	data, err := sonic.Marshal(entity.TimeOfDay{Hour: 20, Minute: 5})
	assert.NoError(t, err)
	assert.Equal(t, `"20:05"`, string(data))
	var tod entity.TimeOfDay
	assert.NoError(t, sonic.Unmarshal([]byte(`"07:15"`), &tod))
	assert.Equal(t, entity.TimeOfDay{Hour: 7, Minute: 15}, tod)
	assert.Error(t, sonic.Unmarshal([]byte(`715`), &tod))
}

func TestMedicationActiveOn(t *testing.T) {
	med := entity.Medication{
		StartDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
	}
	assert.True(t, med.ActiveOn(time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)))
	assert.True(t, med.ActiveOn(time.Date(2026, 3, 20, 0, 0, 1, 0, time.UTC)))
	assert.False(t, med.ActiveOn(time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)))
	assert.False(t, med.ActiveOn(time.Date(2026, 3, 21, 0, 0, 0, 0, time.UTC)))
}

func TestDoseStatus(t *testing.T) {
	assert.True(t, entity.DoseStatusTaken.Resolved())
	assert.True(t, entity.DoseStatusMissed.Resolved())
	assert.False(t, entity.DoseStatusPending.Resolved())
	assert.True(t, entity.DoseStatusPending.Valid())
	assert.False(t, entity.DoseStatus("Skipped").Valid())
}

func TestMedicationCategory(t *testing.T) {
	assert.True(t, entity.CategoryAntiInflammatory.Valid())
	assert.False(t, entity.MedicationCategory("Vitamins").Valid())
}
