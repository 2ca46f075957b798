package app

import (
	"github.com/nlab-ml/nlab/nlab"

	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

// LayerRequest mirrors the layer record: one constructor syntax field per
// backend, plus the per-backend parameter whitelists.
type LayerRequest struct {
	Name       string
	Store      string
	Parameters map[string][]string
	Pytorch    string
	Tensorflow string
	Pennylane  string
}

func init() {
	Router.HandleFunc("/layers", func(w http.ResponseWriter, r *http.Request) {
		nlab.JsonResponse(w, ListLayers())
	}).Methods("GET")

	Router.HandleFunc("/layers", func(w http.ResponseWriter, r *http.Request) {
		var request LayerRequest
		if err := nlab.ParseJsonRequest(w, r, &request); err != nil {
			return
		}
		if request.Name == "" {
			http.Error(w, "layer name is required", 400)
			return
		}
		if request.Parameters == nil {
			http.Error(w, "layer parameters are required", 400)
			return
		}
		if GetLayerByName(request.Name) != nil {
			http.Error(w, fmt.Sprintf("layer %s already exists", request.Name), 400)
			return
		}

		construct := make(map[string]string)
		if request.Pytorch != "" {
			construct[nlab.Pytorch] = request.Pytorch
		}
		if request.Tensorflow != "" {
			construct[nlab.Tensorflow] = request.Tensorflow
		}
		if request.Pennylane != "" {
			construct[nlab.Pennylane] = request.Pennylane
		}

		var supports []string
		for _, backend := range nlab.BackendNames {
			if construct[backend] != "" {
				supports = append(supports, backend)
			}
		}
		log.Printf("[layers] creating layer %s supporting %s", request.Name, strings.Join(supports, " "))

		layer := NewLayer(request.Name, request.Store, request.Parameters, construct)
		nlab.JsonResponse(w, layer)
	}).Methods("POST")

	Router.HandleFunc("/layers/{layer_id}", func(w http.ResponseWriter, r *http.Request) {
		layerID := mux.Vars(r)["layer_id"]
		layer := GetLayer(layerID)
		if layer == nil {
			http.Error(w, "no such layer", 404)
			return
		}
		nlab.JsonResponse(w, layer)
	}).Methods("GET")
}
