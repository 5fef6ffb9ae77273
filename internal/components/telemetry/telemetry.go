package telemetry

import (
	"fmt"
)

// API is the reporting surface every scraper component writes to. Keeping it an interface lets
// tests swap in a Recorder and assert that breakage is actually reported.
//
// note: fault injection point
type API interface {
	// ReportBroken reports a component that stopped working and needs attention, most
	// commonly an upstream page whose layout no longer matches what the parser expects.
	//
	// The id names the component, not the exact line that failed: `player_page.parse`
	// rather than `player_page.parse-row-7`. Extra detail goes into params or into the
	// wrapped error. Ids are lowercase, underscores separate words of a component and a
	// dash separates the component from its method. ScopedAPI supplies the package
	// namespace so ids stay short.
	ReportBroken(id string, params ...any)

	// ReportWarning reports something unusual that is not necessarily broken, such as an
	// upstream JSON envelope carrying an error code.
	ReportWarning(id string, params ...any)

	// ReportDebug reports information that is dropped outside of verbose runs.
	ReportDebug(msg string, params ...any)

	// ReportCount reports a point-in-time count (not a delta).
	ReportCount(id string, count int64)
}

// ScopedAPI prefixes every id with a namespace before handing it to another API.
type ScopedAPI struct {
	namespace string
	inner     API
}

func NewScopedAPI(namespace string, inner API) ScopedAPI {
	return ScopedAPI{namespace: namespace, inner: inner}
}

func (s ScopedAPI) scope(id string) string {
	return fmt.Sprintf("%s: %s", s.namespace, id)
}

func (s ScopedAPI) ReportBroken(id string, params ...any) {
	s.inner.ReportBroken(s.scope(id), params...)
}

func (s ScopedAPI) ReportWarning(id string, params ...any) {
	s.inner.ReportWarning(s.scope(id), params...)
}

func (s ScopedAPI) ReportDebug(msg string, params ...any) {
	s.inner.ReportDebug(s.scope(msg), params...)
}

func (s ScopedAPI) ReportCount(id string, count int64) {
	s.inner.ReportCount(s.scope(id), count)
}
