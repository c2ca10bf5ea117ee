package core

import (
	"encoding/json"
	"fmt"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// SamplerConfig is the per-run sampler options blob carried next to a run
// request.
type SamplerConfig struct {
	Shots int   `json:"shots"`
	Seed  int64 `json:"seed"`
}

var defaultSamplerConfigJson map[string]jx.Raw

func init() {
	dsc := DefaultSamplerConfig()
	dscj := make(map[string]jx.Raw)
	dscj["shots"] = jx.Raw(fmt.Sprintf("%d", dsc.Shots))
	dscj["seed"] = jx.Raw(fmt.Sprintf("%d", dsc.Seed))
	defaultSamplerConfigJson = dscj
}

func DefaultSamplerConfig() SamplerConfig {
	return SamplerConfig{Shots: 1024, Seed: 0}
}

func DefaultSamplerConfigJson() map[string]jx.Raw {
	return defaultSamplerConfigJson
}

func UnmarshalToSamplerConfig(raw json.RawMessage) SamplerConfig {
	c := DefaultSamplerConfig()
	if len(raw) == 0 {
		return c
	}
	if err := jsonIter.Unmarshal(raw, &c); err != nil {
		zap.L().Error(fmt.Sprintf("failed to unmarshal sampler config from:%s/reason:%s",
			string(raw), err))
	}
	return c
}
