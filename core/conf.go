package core

type Conf struct {
	Version            string `long:"version" description:"version of the engine" env:"QRANE_VERSION"`
	DevMode            bool   `long:"dev-mode" description:"run in dev mode" env:"QRANE_DEV_MODE"`
	DisableStdoutLog   bool   `long:"disable-stdout-log" description:"do not log in standard output" env:"QRANE_DISABLE_STDOUT_LOG"`
	EnableFileLog      bool   `long:"enable-file-log" description:"enable log in file" env:"QRANE_ENABLE_FILE_LOG"`
	LogDir             string `long:"log-dir" description:"rotating log file dir" default:"./shares/logs" env:"QRANE_LOG_DIR"`
	LogLevel           string `long:"log-level" description:"log level" default:"info" choice:"debug" choice:"info" choice:"warn" choice:"error" env:"QRANE_LOG_LEVEL"`
	LogRotationMaxDays int    `long:"log-rotation-max-days" description:"max days of log rotation" default:"7" env:"QRANE_LOG_ROTATION_MAX_DAYS"`
	QueueMaxSize       int    `long:"queue-max-size" description:"run queue max size" default:"100" env:"QRANE_QUEUE_MAX_SIZE"`
	MaxQubits          int    `long:"max-qubits" description:"max qubits accepted for dense simulation" default:"20" env:"QRANE_MAX_QUBITS"`
	MaxShots           int    `long:"max-shots" description:"max shots per run" default:"100000" env:"QRANE_MAX_SHOTS"`
	DefaultShots       int    `long:"default-shots" description:"shots used when a run does not specify any" default:"1024" env:"QRANE_DEFAULT_SHOTS"`
	Seed               int64  `long:"seed" description:"sampler seed, 0 means time-derived" env:"QRANE_SEED"`
	StoreDir           string `long:"store-dir" description:"finished-run store dir, empty disables the store" env:"QRANE_STORE_DIR"`
	SettingPath        string `long:"setting-path" description:"setting file path" default:"./setting/setting.toml" env:"QRANE_SETTING_PATH"`
}
