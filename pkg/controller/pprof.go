package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofMux returns an http.ServeMux serving the net/http/pprof handlers under
// /debug/pprof/. Mount it at that prefix on the main server mux; paths are
// registered in full so the profile endpoints resolve without prefix
// stripping.
func PprofMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	return mux
}
