//go:build unit
// +build unit

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetVersion(t *testing.T) {
	tests := []struct {
		name               string
		conf               *Conf
		versionByBuildFlag string
		want               string
	}{
		{
			name:               "build flag only",
			conf:               &Conf{},
			versionByBuildFlag: "v0.3.0",
			want:               "v0.3.0",
		},
		{
			name:               "config only",
			conf:               &Conf{Version: "v0.3.0"},
			versionByBuildFlag: "",
			want:               "v0.3.0",
		},
		{
			name:               "build flag wins over config",
			conf:               &Conf{Version: "v0.3.0"},
			versionByBuildFlag: "v0.3.1",
			want:               "v0.3.1",
		},
		{
			name:               "nothing set",
			conf:               &Conf{},
			versionByBuildFlag: "",
			want:               NoVersion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetVersion(tt.conf, tt.versionByBuildFlag)
			assert.Equal(t, tt.want, Version)
		})
	}
}
