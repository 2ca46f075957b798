package app

import (
	"github.com/nlab-ml/nlab/nlab"

	"net/http"

	"github.com/googollee/go-socket.io"
	"github.com/gorilla/mux"
)

var SetupFuncs []func(*socketio.Server)
var Router = mux.NewRouter()

func init() {
	Router.HandleFunc("/backends", func(w http.ResponseWriter, r *http.Request) {
		nlab.JsonResponse(w, nlab.Backends)
	}).Methods("GET")
}
