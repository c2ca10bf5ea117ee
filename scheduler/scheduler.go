package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/qrane-team/qrane-engine/circuit"
	"github.com/qrane-team/qrane-engine/compile"
	"github.com/qrane-team/qrane-engine/core"
	"github.com/qrane-team/qrane-engine/qasm"
	"github.com/qrane-team/qrane-engine/sim"
	"go.uber.org/zap"
)

// Scheduler accepts validated runs, queues them and samples them in FIFO
// order, recording every status transition in the run DB.
type Scheduler struct {
	queue *RunQueue
	db    core.DBManager
	conf  *core.Conf
}

func (s *Scheduler) Setup(conf *core.Conf, db core.DBManager) error {
	s.queue = &RunQueue{}
	if err := s.queue.Setup(conf); err != nil {
		return err
	}
	s.db = db
	s.conf = conf
	return nil
}

// QueueLen reports how many runs are waiting, for metrics logging.
func (s *Scheduler) QueueLen() int {
	return s.queue.Len()
}

// Submit validates a run against the engine limits, stores it as READY and
// queues it. The returned WaitGroup is released when the run finishes.
func (s *Scheduler) Submit(rd *core.RunData, circ *circuit.Circuit) (*sync.WaitGroup, error) {
	if err := s.validate(rd, circ); err != nil {
		zap.L().Info(fmt.Sprintf("failed to validate run param. Reason:%s", err.Error()))
		return nil, err
	}
	if program, err := emitQASM(circ); err != nil {
		zap.L().Debug(fmt.Sprintf("skip recording QASM of run(%s)/reason:%s", rd.ID, err))
	} else {
		rd.QASM = program
	}
	rd.Status = core.READY
	if err := s.db.Insert(rd); err != nil {
		return nil, err
	}
	wg := &sync.WaitGroup{}
	wg.Add(1)
	entry := &runEntry{run: rd, circ: circ, finished: wg}
	if err := s.queue.Put(entry); err != nil {
		rd.SetFailure(err)
		if dbErr := s.db.Update(rd); dbErr != nil {
			zap.L().Error(fmt.Sprintf("failed to update a run(%s). Reason:%s", rd.ID, dbErr.Error()))
		}
		return nil, err
	}
	return wg, nil
}

// emitQASM renders the circuit as OpenQASM, expanding gates without an
// OpenQASM form down to primitive rotations first.
func emitQASM(circ *circuit.Circuit) (string, error) {
	if program, err := qasm.Emit(circ); err == nil {
		return program, nil
	}
	expanded, err := compile.Expand(circ, compile.PrimitiveGateSet)
	if err != nil {
		return "", err
	}
	return qasm.Emit(expanded)
}

func (s *Scheduler) validate(rd *core.RunData, circ *circuit.Circuit) error {
	if rd.ID == "" {
		return fmt.Errorf("run ID is empty")
	}
	if rd.Shots == 0 {
		rd.Shots = core.UnmarshalToSamplerConfig(rd.SamplerOptions).Shots
	}
	if rd.Shots == 0 {
		rd.Shots = s.conf.DefaultShots
	}
	if rd.Shots <= 0 {
		return fmt.Errorf("shots(%d) must be greater than 0", rd.Shots)
	}
	if rd.Shots > s.conf.MaxShots {
		return fmt.Errorf("shots(%d) is over the limit(%d)", rd.Shots, s.conf.MaxShots)
	}
	if n := circ.NumQubits(); n > s.conf.MaxQubits {
		return fmt.Errorf("qubit count(%d) is over the limit(%d)", n, s.conf.MaxQubits)
	}
	if err := circ.Validate(); err != nil {
		return err
	}
	return nil
}

// Start drains the queue until the context is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	go func() {
		for {
			zap.L().Debug("checking the run queue...")
			entry, err := s.queue.Next(ctx)
			if err != nil {
				if ctx.Err() != nil {
					zap.L().Debug("run queue drained, scheduler stopping")
					return
				}
				zap.L().Error(fmt.Sprintf("failed to get run from queue. Reason:%s", err))
				continue
			}
			s.process(entry)
		}
	}()
}

// TearDown drains runs still waiting in the queue, marking them cancelled
// and releasing their waiters.
func (s *Scheduler) TearDown() {
	for {
		e, ok := s.queue.TryNext()
		if !ok {
			return
		}
		rd := e.run
		rd.Status = core.CANCELLED
		rd.Ended = strfmt.DateTime(time.Now())
		if err := s.db.Update(rd); err != nil {
			zap.L().Error(fmt.Sprintf("failed to update a run(%s). Reason:%s", rd.ID, err.Error()))
		}
		zap.L().Info(fmt.Sprintf("cancelled queued run(%s)", rd.ID))
		e.finished.Done()
	}
}

func (s *Scheduler) process(e *runEntry) {
	defer e.finished.Done()
	rd := e.run
	rd.Status = core.RUNNING
	if err := s.db.Update(rd); err != nil {
		zap.L().Error(fmt.Sprintf("failed to update a run(%s). Reason:%s", rd.ID, err.Error()))
	}
	zap.L().Debug(fmt.Sprintf("processing run:%s", rd.ID))

	cfg := core.UnmarshalToSamplerConfig(rd.SamplerOptions)
	seed := cfg.Seed
	if seed == 0 {
		seed = s.conf.Seed
	}
	started := time.Now()
	sampler, err := sim.NewSampler(rd.Shots, seed)
	if err != nil {
		rd.SetFailure(err)
	} else if measurements, runErr := sampler.Run(e.circ); runErr != nil {
		rd.SetFailure(runErr)
	} else {
		rd.Result.Measurements = measurements
		rd.Result.ExecutionTime = time.Since(started)
		rd.Status = core.SUCCEEDED
		rd.Ended = strfmt.DateTime(time.Now())
	}
	if err := s.db.Update(rd); err != nil {
		zap.L().Error(fmt.Sprintf("failed to update a run(%s). Reason:%s", rd.ID, err.Error()))
	}
	zap.L().Debug(fmt.Sprintf("finished to process run(%s)/status:%s", rd.ID, rd.Status))
}
