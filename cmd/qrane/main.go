package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	flags "github.com/jessevdk/go-flags"
	"github.com/massn/envordot"
	"github.com/oklog/run"

	"github.com/qrane-team/qrane-engine/circuit"
	"github.com/qrane-team/qrane-engine/core"
	"github.com/qrane-team/qrane-engine/gate"
	qranelog "github.com/qrane-team/qrane-engine/log"
	"github.com/qrane-team/qrane-engine/scheduler"
	"github.com/qrane-team/qrane-engine/sim"
	"github.com/qrane-team/qrane-engine/store"

	"github.com/google/uuid"
	"go.uber.org/dig"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	rotate "github.com/lestrrat-go/file-rotatelogs"
)

var versionByBuildFlag string
var parser *flags.Parser
var engine *Engine

func init() {
	if err := envordot.Load(false, ".env"); err != nil {
		fmt.Printf("Not found \".env\" file. Use only environment variables. Reason:%s\n", err.Error())
	} else {
		fmt.Println("Found \".env\" file. Environment variables are preferred, " +
			"but non-conflicting variables are those in the \".env\" file.")
	}
	engine = &Engine{}
	setParser(engine)
}

type Engine struct {
	DIContainerParameters *DIContainerParameters
	Conf                  *core.Conf
}

type DIContainerParameters struct {
	DBManager string `long:"db" description:"db" default:"memory" choice:"memory" env:"QRANE_DB_MANAGER_TYPE"`
}

func setParser(engine *Engine) {
	parser = flags.NewParser(engine, flags.Default)
	parser.ShortDescription = "qrane engine"
	parser.LongDescription = "a dense statevector sampling engine for quantum circuits."
	parser.AddCommand("sample", "sample a circuit", "build a GHZ circuit and sample it", newSampleCmd())
}

func parse() {
	if _, err := parser.Parse(); err != nil {
		code := 1
		if fe, ok := err.(*flags.Error); ok {
			if fe.Type == flags.ErrHelp {
				code = 0
			}
		}
		if code == 1 {
			fmt.Printf("failed to parse flags, because %s\n", err)
		}
		os.Exit(code)
	}
}

func (e *Engine) provideDIContainer() (c *dig.Container, err error) {
	c = dig.New()
	err = c.Provide(func() (core.DBManager, error) {
		switch e.DIContainerParameters.DBManager {
		case "memory":
			return core.NewMemoryDB(), nil
		default:
			return nil, fmt.Errorf("%s is an unknown DB", e.DIContainerParameters.DBManager)
		}
	})
	if err != nil {
		return &dig.Container{}, err
	}
	return
}

func zapLogger(conf *core.Conf) (*zap.Logger, error) {
	var encoder zapcore.Encoder
	if conf.DevMode {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	} else {
		c := zap.NewProductionEncoderConfig()
		c.EncodeTime = zapcore.ISO8601TimeEncoder
		c.TimeKey = "timestamp"
		encoder = zapcore.NewJSONEncoder(c)
	}
	var level zap.AtomicLevel
	switch conf.LogLevel {
	case "debug":
		level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "warn":
		level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	cores := []zapcore.Core{}
	if conf.EnableFileLog {
		rotator, err := makeRotator(conf.LogDir, conf.LogRotationMaxDays)
		if err != nil {
			return &zap.Logger{}, err
		}
		syncer := zapcore.AddSync(rotator)
		rotateCore := zapcore.NewCore(
			encoder,
			syncer,
			level)
		cores = append(cores, rotateCore)
	}
	if !conf.DisableStdoutLog {
		stdoutCore := zapcore.NewCore(
			encoder,
			zapcore.Lock(os.Stdout),
			level)
		cores = append(cores, stdoutCore)
	}
	tee := zapcore.NewTee(cores...)
	return zap.New(tee, zap.AddCaller()), nil
}

func makeRotator(dirPath string, rotationMaxDays int) (*rotate.RotateLogs, error) {
	info, err := os.Stat(dirPath)
	if err != nil {
		return &rotate.RotateLogs{}, fmt.Errorf("directory:%s is not found", dirPath)
	}
	if info.Mode().Perm()&(1<<uint(7)) == 0 {
		return &rotate.RotateLogs{}, fmt.Errorf("%s is not a writable directory", dirPath)
	}
	rotator, err := rotate.New(
		filepath.Join(dirPath, "qrane-%Y-%m-%d.log"),
		rotate.WithMaxAge(time.Duration(rotationMaxDays)*24*time.Hour),
		rotate.WithRotationTime(time.Hour))
	if err != nil {
		return &rotate.RotateLogs{}, err
	}
	return rotator, nil
}

func main() {
	parse()
}

type sampleCmd struct {
	Qubits int   `long:"qubits" description:"GHZ state size" default:"2" env:"QRANE_SAMPLE_QUBITS"`
	Shots  int   `long:"shots" description:"shots of the run, 0 uses the default" env:"QRANE_SAMPLE_SHOTS"`
	Seed   int64 `long:"sample-seed" description:"sampler seed of the run" env:"QRANE_SAMPLE_SEED"`
}

func newSampleCmd() *sampleCmd {
	return &sampleCmd{}
}

func (c *sampleCmd) Execute(args []string) error {
	logger := setZap(engine.Conf)
	defer logger.Sync()

	core.ResetSetting()
	registerSetting()
	if err := core.ParseSettingFromPath(engine.Conf.SettingPath); err != nil {
		zap.L().Info(fmt.Sprintf("using default settings/reason:%s", err))
	}
	core.SetVersion(engine.Conf, versionByBuildFlag)

	container, err := engine.provideDIContainer()
	if err != nil {
		zap.L().Error(fmt.Sprintf("Failed to setting up DI-Container. Reason:%s", err.Error()))
		return err
	}

	circ, err := ghzCircuit(c.Qubits)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to build circuit/reason:%s", err))
		return err
	}
	fmt.Println(circ)

	return container.Invoke(func(db core.DBManager) error {
		return c.runGroup(db, circ)
	})
}

func (c *sampleCmd) runGroup(db core.DBManager, circ *circuit.Circuit) error {
	s := &scheduler.Scheduler{}
	if err := s.Setup(engine.Conf, db); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	var g run.Group
	g.Add(run.SignalHandler(ctx, os.Interrupt))
	g.Add(func() error {
		s.Start(ctx)
		return c.runOnce(s, db, circ)
	}, func(error) {
		cancel()
		s.TearDown()
	})
	if engine.Conf.EnableFileLog {
		metrics, err := qranelog.NewMetricsLogger(engine.Conf.LogDir, time.Minute, s.QueueLen)
		if err != nil {
			return err
		}
		g.Add(func() error {
			return metrics.Run(ctx)
		}, func(error) {
			metrics.Close()
			cancel()
		})
	}

	if err := g.Run(); err != nil {
		if _, ok := err.(run.SignalError); ok {
			zap.L().Info(fmt.Sprintf("stopped by signal/reason:%s", err))
			return nil
		}
		return err
	}
	return nil
}

func (c *sampleCmd) runOnce(s *scheduler.Scheduler, db core.DBManager, circ *circuit.Circuit) error {
	rd := core.NewRunData()
	rd.ID = uuid.NewString()
	rd.Shots = c.Shots
	if c.Seed != 0 {
		// shots resolution stays with the scheduler; an explicit zero here
		// would override its defaults
		rd.SamplerOptions = []byte(fmt.Sprintf(`{"seed": %d}`, c.Seed))
	}
	wg, err := s.Submit(rd, circ)
	if err != nil {
		return err
	}
	wg.Wait()

	finished, err := db.Get(rd.ID)
	if err != nil {
		return err
	}
	fmt.Println(finished.Result.ToString())
	if finished.Status != core.SUCCEEDED {
		return fmt.Errorf("run(%s) finished with status %s", finished.ID, finished.Status)
	}
	if engine.Conf.StoreDir != "" {
		fs, err := store.NewFileStore(engine.Conf.StoreDir)
		if err != nil {
			return err
		}
		if err := fs.Save(finished); err != nil {
			return err
		}
	}
	return nil
}

// ghzCircuit prepares (|0...0> + |1...1>)/sqrt(2) and measures every qubit.
func ghzCircuit(n int) (*circuit.Circuit, error) {
	if n < 1 {
		return nil, fmt.Errorf("qubits(%d) must be greater than 0", n)
	}
	qubits := gate.LineQubitRange(n)
	ops := make([]gate.Operation, 0, n+1)
	h, err := gate.NewOperation(gate.H, qubits[0])
	if err != nil {
		return nil, err
	}
	ops = append(ops, h)
	for i := 1; i < n; i++ {
		cnot, err := gate.NewOperation(gate.CNOT, qubits[i-1], qubits[i])
		if err != nil {
			return nil, err
		}
		ops = append(ops, cnot)
	}
	m, err := gate.Measure(qubits, gate.WithKey("ghz"))
	if err != nil {
		return nil, err
	}
	ops = append(ops, m)
	return circuit.New(ops...), nil
}

func setZap(conf *core.Conf) *zap.Logger {
	logger, err := zapLogger(conf)
	if err != nil {
		fmt.Printf("Failed to setup logger. Reason:%s\n", err)
		panic(err)
	}
	zap.ReplaceGlobals(logger)
	zap.L().Info("Starting logger")
	zap.L().Info(fmt.Sprintf("DevMode is %t", conf.DevMode))
	zap.L().Info(fmt.Sprintf("Log rotation max days is %d", conf.LogRotationMaxDays))
	return logger
}

func registerSetting() {
	core.RegisterSetting("sampler", sim.NewSamplerSetting())
	core.RegisterSetting("store", store.NewStoreSetting())
}
