package birthdays

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultParams(t *testing.T) {
	t.Parallel()

	params := NewDefaultParams()
	assert.Equal(t, 7, params.WindowDays)
	assert.Equal(t, LeapDayFeb28, params.LeapDay)
}

func TestNewParams(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		config     ParamsConfig
		wantWindow int
		wantLeap   LeapDayPolicy
		wantErr    bool
	}{
		{name: "zero config keeps defaults", config: ParamsConfig{}, wantWindow: 7, wantLeap: LeapDayFeb28},
		{name: "custom window", config: ParamsConfig{WindowDays: 30}, wantWindow: 30, wantLeap: LeapDayFeb28},
		{name: "mar1 policy", config: ParamsConfig{LeapDay: "mar1"}, wantWindow: 7, wantLeap: LeapDayMar1},
		{name: "feb28 policy", config: ParamsConfig{LeapDay: "feb28"}, wantWindow: 7, wantLeap: LeapDayFeb28},
		{name: "unknown policy", config: ParamsConfig{LeapDay: "skip"}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			params, err := NewParams(tc.config)
			if tc.wantErr {
				assert.Error(t, err)
				assert.Nil(t, params)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantWindow, params.WindowDays)
			assert.Equal(t, tc.wantLeap, params.LeapDay)
		})
	}
}
