package core

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-openapi/strfmt"
	jsoniter "github.com/json-iterator/go"
	"github.com/mohae/deepcopy"
	"github.com/tidwall/pretty"
	"go.uber.org/zap"
)

// Status of a simulation run inside the engine.
type Status int

// Counts maps measured bit strings to the number of shots that produced
// them.
type Counts map[string]uint32

// Measurements holds the counts of every measurement key of a run.
type Measurements map[string]Counts

var jsonIter = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	READY     Status = iota // Accepted and queued, never sampled yet.
	RUNNING                 // Being sampled by the simulator.
	SUCCEEDED               // Finished successfully.
	FAILED                  // Finished with failure.
	CANCELLED               // Finished with cancellation.
)

func (s Status) String() string {
	switch s {
	case READY:
		return "ready"
	case RUNNING:
		return "running"
	case SUCCEEDED:
		return "succeeded"
	case FAILED:
		return "failed"
	case CANCELLED:
		return "cancelled"
	default:
		return "unknown"
	}
}

func ToStatus(s string) (Status, error) {
	switch s {
	case "ready":
		return READY, nil
	case "running":
		return RUNNING, nil
	case "succeeded":
		return SUCCEEDED, nil
	case "failed":
		return FAILED, nil
	case "cancelled":
		return CANCELLED, nil
	default:
		return 0, fmt.Errorf("unknown status: %s", s)
	}
}

func (c Counts) String() string {
	st, err := jsonIter.Marshal(c)
	if err != nil {
		zap.L().Error("Failed to marshal core.Counts")
		return ""
	}
	return string(st)
}

// Result is what a finished run hands back to result-collection
// collaborators: per-key counts indexed by measurement key strings.
type Result struct {
	Measurements  Measurements  `json:"measurements"`
	Message       string        `json:"message"`
	ExecutionTime time.Duration `json:"execution_time"`
}

func NewResult() *Result {
	return &Result{
		Measurements: make(Measurements),
	}
}

func (r *Result) ToString() string {
	st, err := jsonIter.Marshal(r)
	if err != nil {
		zap.L().Error("Failed to marshal core.Result")
		return ""
	}
	st = pretty.Pretty(st)
	return string(st)
}

// RunData is the record of one sampling run through the engine.
type RunData struct {
	ID             string
	Status         Status
	Shots          int
	QASM           string
	SamplerOptions json.RawMessage
	Result         *Result
	Created        strfmt.DateTime
	Ended          strfmt.DateTime
}

func NewRunData() *RunData {
	return &RunData{
		Result:  NewResult(),
		Created: strfmt.DateTime(time.Now()),
	}
}

func (rd *RunData) Clone() *RunData {
	c := deepcopy.Copy(rd).(*RunData)
	c.Created = *rd.Created.DeepCopy()
	c.Ended = *rd.Ended.DeepCopy()
	return c
}

// SetFailure marks the run failed and stamps the end time, returning the
// message recorded for the caller's log line.
func (rd *RunData) SetFailure(err error) (msg string) {
	msg = err.Error()
	rd.Result.Message = msg
	rd.Status = FAILED
	rd.Ended = strfmt.DateTime(time.Now())
	return msg
}
