package core

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// DBManager keeps run records addressable by ID while they move through the
// queue and after they finish.
type DBManager interface {
	Insert(rd *RunData) error
	Get(runID string) (*RunData, error)
	Update(rd *RunData) error
	Delete(runID string) error
}

type MemoryDB struct {
	dbMap map[string]*RunData
	mu    sync.RWMutex
}

func NewMemoryDB() *MemoryDB {
	return &MemoryDB{dbMap: make(map[string]*RunData)}
}

func (d *MemoryDB) Insert(rd *RunData) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.dbMap[rd.ID]; ok {
		return fmt.Errorf("run ID %s is already used", rd.ID)
	}
	d.dbMap[rd.ID] = rd
	return nil
}

func (d *MemoryDB) Get(runID string) (*RunData, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if val, ok := d.dbMap[runID]; ok {
		return val, nil
	}
	err := fmt.Errorf("not found %s", runID)
	zap.L().Info("[MemoryDB]", zap.Error(err))
	return nil, err
}

func (d *MemoryDB) Update(rd *RunData) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dbMap[rd.ID] = rd
	return nil
}

func (d *MemoryDB) Delete(runID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.dbMap[runID]; ok {
		delete(d.dbMap, runID)
		zap.L().Info(fmt.Sprintf("[MemoryDB] deleted %s from DB", runID))
		return nil
	}
	err := fmt.Errorf("failed to find %s", runID)
	zap.L().Info("[MemoryDB]", zap.Error(err))
	return err
}
