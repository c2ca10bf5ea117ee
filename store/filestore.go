// Package store persists finished runs on disk so results survive engine
// restarts. Each run is one msgpack file named after its ID.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-openapi/strfmt"
	"github.com/qrane-team/qrane-engine/common"
	"github.com/qrane-team/qrane-engine/core"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"
)

const fileExt = ".run"

// runRecord is the on-disk shape of a run. Dates are RFC3339 strings and the
// result is flattened so the format stays stable across refactors of the
// in-memory types.
type runRecord struct {
	ID             string                        `msgpack:"id"`
	Status         string                        `msgpack:"status"`
	Shots          int                           `msgpack:"shots"`
	QASM           string                        `msgpack:"qasm"`
	SamplerOptions []byte                        `msgpack:"sampler_options"`
	Measurements   map[string]map[string]uint32  `msgpack:"measurements"`
	Message        string                        `msgpack:"message"`
	ExecutionTime  int64                         `msgpack:"execution_time_ns"`
	Created        string                        `msgpack:"created"`
	Ended          string                        `msgpack:"ended"`
}

// FileStore keeps one msgpack file per run under a writable directory.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, errors.New("store directory is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create store directory %s", dir)
	}
	if err := common.IsDirWritable(dir); err != nil {
		return nil, errors.Wrapf(err, "store directory %s is not writable", dir)
	}
	return &FileStore{dir: dir}, nil
}

// Save writes the run record, overwriting any previous record of the same ID.
func (f *FileStore) Save(rd *core.RunData) error {
	rec := toRecord(rd)
	raw, err := msgpack.Marshal(rec)
	if err != nil {
		return errors.Wrapf(err, "failed to encode run %s", rd.ID)
	}
	path := f.path(rd.ID)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write run %s", rd.ID)
	}
	zap.L().Debug(fmt.Sprintf("stored run(%s) in %s", rd.ID, path))
	return nil
}

func (f *FileStore) Load(id string) (*core.RunData, error) {
	raw, err := os.ReadFile(f.path(id))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read run %s", id)
	}
	var rec runRecord
	if err := msgpack.Unmarshal(raw, &rec); err != nil {
		return nil, errors.Wrapf(err, "failed to decode run %s", id)
	}
	return fromRecord(&rec)
}

// List returns the IDs of every stored run, in directory order.
func (f *FileStore) List() ([]string, error) {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list store directory %s", f.dir)
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != fileExt {
			continue
		}
		ids = append(ids, e.Name()[:len(e.Name())-len(fileExt)])
	}
	return ids, nil
}

func (f *FileStore) Delete(id string) error {
	if err := os.Remove(f.path(id)); err != nil {
		return errors.Wrapf(err, "failed to delete run %s", id)
	}
	return nil
}

func (f *FileStore) path(id string) string {
	return filepath.Join(f.dir, id+fileExt)
}

func toRecord(rd *core.RunData) *runRecord {
	rec := &runRecord{
		ID:             rd.ID,
		Status:         rd.Status.String(),
		Shots:          rd.Shots,
		QASM:           rd.QASM,
		SamplerOptions: rd.SamplerOptions,
		Created:        time.Time(rd.Created).Format(time.RFC3339Nano),
		Ended:          time.Time(rd.Ended).Format(time.RFC3339Nano),
	}
	if rd.Result != nil {
		rec.Message = rd.Result.Message
		rec.ExecutionTime = int64(rd.Result.ExecutionTime)
		rec.Measurements = make(map[string]map[string]uint32, len(rd.Result.Measurements))
		for key, counts := range rd.Result.Measurements {
			rec.Measurements[key] = map[string]uint32(counts)
		}
	}
	return rec
}

func fromRecord(rec *runRecord) (*core.RunData, error) {
	status, err := core.ToStatus(rec.Status)
	if err != nil {
		return nil, errors.Wrapf(err, "broken record of run %s", rec.ID)
	}
	created, err := time.Parse(time.RFC3339Nano, rec.Created)
	if err != nil {
		return nil, errors.Wrapf(err, "broken created date of run %s", rec.ID)
	}
	ended, err := time.Parse(time.RFC3339Nano, rec.Ended)
	if err != nil {
		return nil, errors.Wrapf(err, "broken ended date of run %s", rec.ID)
	}
	rd := &core.RunData{
		ID:             rec.ID,
		Status:         status,
		Shots:          rec.Shots,
		QASM:           rec.QASM,
		SamplerOptions: json.RawMessage(rec.SamplerOptions),
		Result:         core.NewResult(),
		Created:        strfmt.DateTime(created),
		Ended:          strfmt.DateTime(ended),
	}
	rd.Result.Message = rec.Message
	rd.Result.ExecutionTime = time.Duration(rec.ExecutionTime)
	for key, counts := range rec.Measurements {
		rd.Result.Measurements[key] = core.Counts(counts)
	}
	return rd, nil
}
