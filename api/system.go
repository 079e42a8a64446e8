package api

import "net/http"

// HealthHandler reports process liveness.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{
		"status":  "ok",
		"service": "website",
	}, http.StatusOK)
}

// VersionHandler returns a handler reporting the build stamp.
func VersionHandler(version, buildTime string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{
			"version":    version,
			"build_time": buildTime,
		}, http.StatusOK)
	}
}
