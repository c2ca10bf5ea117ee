//go:build unit
// +build unit

package log

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsLoggerWritesDailyFile(t *testing.T) {
	dir := t.TempDir()
	m, err := NewMetricsLogger(dir, time.Second, func() int { return 3 })
	assert.Nil(t, err)
	defer m.Close()

	m.record()

	fileName := fmt.Sprintf("metrics-%s.log", time.Now().Format("2006-01-02"))
	raw, err := os.ReadFile(filepath.Join(dir, fileName))
	assert.Nil(t, err)
	assert.Contains(t, string(raw), `"queue_length":3`)
	assert.Contains(t, string(raw), `"msg":"Metrics"`)
}

func TestMetricsLoggerRejectsMissingDir(t *testing.T) {
	_, err := NewMetricsLogger("/no/such/dir", time.Second, func() int { return 0 })
	assert.Error(t, err)
}

func TestMetricsLoggerRejectsZeroInterval(t *testing.T) {
	_, err := NewMetricsLogger(t.TempDir(), 0, func() int { return 0 })
	assert.Error(t, err)
}
