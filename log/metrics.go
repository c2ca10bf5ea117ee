// Package log writes periodic engine metrics to daily JSON files, separate
// from the zap application log.
package log

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/qrane-team/qrane-engine/common"
	"github.com/qrane-team/qrane-engine/core"
	"go.uber.org/zap"
)

const queueLengthKeyInMetrics = "queue_length"

// MetricsLogger samples engine gauges on a fixed interval and appends them
// as JSON lines to metrics-YYYY-MM-DD.log files.
type MetricsLogger struct {
	interval time.Duration
	queueLen func() int
	dl       *dailyLogger
	logger   *slog.Logger
}

func NewMetricsLogger(fileDir string, interval time.Duration, queueLen func() int) (*MetricsLogger, error) {
	if err := common.IsDirWritable(fileDir); err != nil {
		zap.L().Error(fmt.Sprintf("failed to set up metrics logger/reason:%s", err))
		return nil, fmt.Errorf("failed to write to %s: %w", fileDir, err)
	}
	if interval <= 0 {
		return nil, fmt.Errorf("metrics interval(%s) must be positive", interval)
	}
	dl := newDailyLogger(fileDir)
	return &MetricsLogger{
		interval: interval,
		queueLen: queueLen,
		dl:       dl,
		logger:   slog.New(slog.NewJSONHandler(dl, nil)),
	}, nil
}

// Run emits one record per interval until the context is cancelled.
func (m *MetricsLogger) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			m.record()
		}
	}
}

func (m *MetricsLogger) record() {
	m.logger.Info(
		"Metrics",
		slog.Int(queueLengthKeyInMetrics, m.queueLen()),
		slog.String("version", core.Version),
	)
}

func (m *MetricsLogger) Close() error {
	return m.dl.Close()
}

type dailyLogger struct {
	mu              sync.Mutex
	fileDir         string
	currentFileName string
	file            *os.File
}

func newDailyLogger(fileDir string) *dailyLogger {
	return &dailyLogger{
		fileDir: fileDir,
	}
}

func (dl *dailyLogger) Write(p []byte) (n int, err error) {
	dl.mu.Lock()
	defer dl.mu.Unlock()

	fileName := fmt.Sprintf("metrics-%s.log", time.Now().Format("2006-01-02"))
	filePath := filepath.Join(dl.fileDir, fileName)
	currentFilePath := filepath.Join(dl.fileDir, dl.currentFileName)

	if dl.file == nil || currentFilePath != filePath {
		if dl.file != nil {
			dl.file.Close()
		}
		var err error
		dl.file, err = os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return 0, err
		}
		dl.currentFileName = fileName
	}

	return dl.file.Write(p)
}

func (dl *dailyLogger) Close() error {
	dl.mu.Lock()
	defer dl.mu.Unlock()
	if dl.file != nil {
		return dl.file.Close()
	}
	return nil
}
