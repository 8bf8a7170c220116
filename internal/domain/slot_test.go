package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeSlot_EndHour(t *testing.T) {
	testCases := []struct {
		slot     TimeSlot
		expected int
		wantErr  bool
	}{
		{slot: "16-17", expected: 17},
		{slot: "21-22", expected: 22},
		{slot: "evening", wantErr: true},
		{slot: "16-17-18", wantErr: true},
		{slot: "16-xx", wantErr: true},
		{slot: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(string(tc.slot), func(t *testing.T) {
			endHour, err := tc.slot.EndHour()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, endHour)
		})
	}
}

func TestIsValidTimeSlot(t *testing.T) {
	for _, slot := range TimeSlots {
		assert.True(t, IsValidTimeSlot(string(slot)), "slot %s must be valid", slot)
	}

	assert.False(t, IsValidTimeSlot("15-16"))
	assert.False(t, IsValidTimeSlot("22-23"))
	assert.False(t, IsValidTimeSlot("all"))
	assert.False(t, IsValidTimeSlot(""))
}

func TestIsValidField(t *testing.T) {
	for _, field := range Fields {
		assert.True(t, IsValidField(field), "field %s must be valid", field)
	}

	assert.False(t, IsValidField("saha-4"))
	assert.False(t, IsValidField("all"))
	assert.False(t, IsValidField(""))
}
