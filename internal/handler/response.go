package handler

import (
	"net/http"

	"github.com/xautrade/meeting-server-go/internal/httputil"
)

func writeEnvelope(w http.ResponseWriter, env httputil.Envelope) {
	httputil.WriteEnvelope(w, env)
}

func writeError(w http.ResponseWriter, err error) {
	httputil.WriteError(w, err)
}
