//go:build unit
// +build unit

package store

import (
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"github.com/qrane-team/qrane-engine/core"
	"github.com/stretchr/testify/assert"
)

func finishedRun() *core.RunData {
	rd := core.NewRunData()
	rd.ID = uuid.NewString()
	rd.Status = core.SUCCEEDED
	rd.Shots = 1000
	rd.QASM = "OPENQASM 3;\nqubit[2] q;\n"
	rd.SamplerOptions = []byte(`{"shots": 1000, "seed": 42}`)
	rd.Result.Measurements = core.Measurements{
		"q0,q1": core.Counts{"00": 512, "11": 488},
	}
	rd.Result.ExecutionTime = 1500 * time.Microsecond
	rd.Ended = strfmt.DateTime(time.Now())
	return rd
}

func TestFileStoreRoundTrip(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	assert.Nil(t, err)

	rd := finishedRun()
	assert.Nil(t, fs.Save(rd))

	got, err := fs.Load(rd.ID)
	assert.Nil(t, err)
	assert.Equal(t, rd.ID, got.ID)
	assert.Equal(t, core.SUCCEEDED, got.Status)
	assert.Equal(t, rd.Shots, got.Shots)
	assert.Equal(t, rd.QASM, got.QASM)
	assert.Equal(t, rd.SamplerOptions, got.SamplerOptions)
	assert.Equal(t, rd.Result.Measurements, got.Result.Measurements)
	assert.Equal(t, rd.Result.ExecutionTime, got.Result.ExecutionTime)
	assert.Equal(t,
		time.Time(rd.Created).Format(time.RFC3339Nano),
		time.Time(got.Created).Format(time.RFC3339Nano))
}

func TestFileStoreSaveRecordsFailure(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	assert.Nil(t, err)

	rd := core.NewRunData()
	rd.ID = uuid.NewString()
	rd.SetFailure(assert.AnError)
	assert.Nil(t, fs.Save(rd))

	got, err := fs.Load(rd.ID)
	assert.Nil(t, err)
	assert.Equal(t, core.FAILED, got.Status)
	assert.Equal(t, assert.AnError.Error(), got.Result.Message)
}

func TestFileStoreListAndDelete(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	assert.Nil(t, err)

	first := finishedRun()
	second := finishedRun()
	assert.Nil(t, fs.Save(first))
	assert.Nil(t, fs.Save(second))

	ids, err := fs.List()
	assert.Nil(t, err)
	assert.Len(t, ids, 2)
	assert.Contains(t, ids, first.ID)
	assert.Contains(t, ids, second.ID)

	assert.Nil(t, fs.Delete(first.ID))
	ids, err = fs.List()
	assert.Nil(t, err)
	assert.Equal(t, []string{second.ID}, ids)

	_, err = fs.Load(first.ID)
	assert.Error(t, err)
}

func TestFileStoreRejectsEmptyDir(t *testing.T) {
	_, err := NewFileStore("")
	assert.Error(t, err)
}

func TestFileStoreLoadMissingRun(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	assert.Nil(t, err)

	_, err = fs.Load(uuid.NewString())
	assert.Error(t, err)
}
