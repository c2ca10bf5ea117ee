//go:build unit
// +build unit

package core

import (
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/stretchr/testify/assert"
)

type testSamplerSetting struct {
	Shots int   `toml:"shots"`
	Seed  int64 `toml:"seed"`
}

type testStoreSetting struct {
	Dir string `toml:"dir"`
}

func TestRegisterSettings(t *testing.T) {
	s := newSetting()
	s.registerSetting("sampler", &testSamplerSetting{Shots: 1024})
	s.registerSetting("store", &testStoreSetting{Dir: "./shares/runs"})
	assert.Equal(t, 2, len(s.ComponentSetting))
}

func TestParseSettings(t *testing.T) {
	ResetSetting()
	tests := []struct {
		name      string
		in        string
		wantError bool
		wantKeys  int
	}{
		{
			name:      "empty",
			in:        "",
			wantError: false,
			wantKeys:  0,
		},
		{
			name: "sampler section",
			in: heredoc.Doc(`
				[com.sampler]
				shots = 2048
				seed = 7
			`),
			wantError: false,
			wantKeys:  1,
		},
		{
			name:      "broken toml",
			in:        "[com.sampler\nshots = 2048",
			wantError: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ResetSetting()
			gotError := globalSetting.parseSetting(tt.in)
			if tt.wantError {
				assert.Error(t, gotError)
				return
			}
			assert.Nil(t, gotError)
			assert.Equal(t, tt.wantKeys, len(globalSetting.ComponentSetting))
		})
	}
}

func TestGetComponentSetting(t *testing.T) {
	ResetSetting()
	RegisterSetting("sampler", &testSamplerSetting{Shots: 1024})

	v, ok := GetComponentSetting("sampler")
	assert.True(t, ok)
	assert.Equal(t, 1024, v.(*testSamplerSetting).Shots)

	_, ok = GetComponentSetting("missing")
	assert.False(t, ok)
}
