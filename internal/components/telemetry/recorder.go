package telemetry

import (
	"strings"
	"sync"
)

type ReportLevel int

const (
	LevelDebug ReportLevel = iota
	LevelCount
	LevelWarning
	LevelBroken
)

type Report struct {
	Level  ReportLevel
	ID     string
	Params []any
}

// Recorder is an API that keeps every report in memory, used by tests.
type Recorder struct {
	mutex   sync.Mutex
	reports []Report
}

func (r *Recorder) add(level ReportLevel, id string, params []any) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.reports = append(r.reports, Report{Level: level, ID: id, Params: params})
}

func (r *Recorder) ReportBroken(id string, params ...any) {
	r.add(LevelBroken, id, params)
}

func (r *Recorder) ReportWarning(id string, params ...any) {
	r.add(LevelWarning, id, params)
}

func (r *Recorder) ReportDebug(msg string, params ...any) {
	r.add(LevelDebug, msg, params)
}

func (r *Recorder) ReportCount(id string, count int64) {
	r.add(LevelCount, id, []any{count})
}

func (r *Recorder) Reports() []Report {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	out := make([]Report, len(r.reports))
	copy(out, r.reports)
	return out
}

// Has reports whether a report at the given level has an id ending in suffix,
// the suffix form keeps tests independent of ScopedAPI namespaces.
func (r *Recorder) Has(level ReportLevel, suffix string) bool {
	for _, report := range r.Reports() {
		if report.Level == level && strings.HasSuffix(report.ID, suffix) {
			return true
		}
	}
	return false
}
