package ports

// MetricsRecorder records quantitative signals about the engine. Adapters back
// onto Prometheus; a nil recorder is valid and records nothing. Standard
// metric names:
//   - accommodate_applier_runs_total{accommodation="..."}
//   - accommodate_settings_updates_total{path="..."}
//   - accommodate_http_requests_total{route="...", status="..."}
type MetricsRecorder interface {
	ApplierRun(accommodation string)
	SettingsUpdated(path string)
}
