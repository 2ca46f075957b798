package app

import (
	"github.com/nlab-ml/nlab/nlab"

	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
)

type NetworkRequest struct {
	Name    string
	Backend string

	Instances []nlab.LayerInstance
	Graph     [][]nlab.Edge

	Loss    string
	Weights string
}

func init() {
	Router.HandleFunc("/networks", func(w http.ResponseWriter, r *http.Request) {
		nlab.JsonResponse(w, ListNetworks())
	}).Methods("GET")

	Router.HandleFunc("/networks", func(w http.ResponseWriter, r *http.Request) {
		var request NetworkRequest
		if err := nlab.ParseJsonRequest(w, r, &request); err != nil {
			return
		}
		// structural shape is validated here, at the API boundary;
		// everything else (template existence, backend support, edge
		// ordering) is validated per compile pass
		if request.Name == "" || request.Backend == "" {
			http.Error(w, "network name and backend are required", 400)
			return
		}
		if len(request.Graph) != len(request.Instances) {
			http.Error(w, fmt.Sprintf("graph has %d entries for %d instances", len(request.Graph), len(request.Instances)), 400)
			return
		}
		network := NewNetwork(request.Name, request.Backend, request.Instances, request.Graph, request.Loss, request.Weights)
		log.Printf("[networks] created network %v", network.Network)
		nlab.JsonResponse(w, network)
	}).Methods("POST")

	Router.HandleFunc("/networks/{network_id}", func(w http.ResponseWriter, r *http.Request) {
		networkID := mux.Vars(r)["network_id"]
		network := GetNetwork(networkID)
		if network == nil {
			http.Error(w, "no such network", 404)
			return
		}
		nlab.JsonResponse(w, network)
	}).Methods("GET")

	Router.HandleFunc("/networks/{network_id}/compile", func(w http.ResponseWriter, r *http.Request) {
		networkID := mux.Vars(r)["network_id"]
		network := GetNetwork(networkID)
		if network == nil {
			http.Error(w, "no such network", 404)
			return
		}
		job, err := network.Compile()
		if err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		nlab.JsonResponse(w, job)
	}).Methods("POST")

	Router.HandleFunc("/networks/{network_id}/program", func(w http.ResponseWriter, r *http.Request) {
		networkID := mux.Vars(r)["network_id"]
		network := GetNetwork(networkID)
		if network == nil {
			http.Error(w, "no such network", 404)
			return
		}
		program, err := os.ReadFile(network.ProgramPath())
		if err != nil {
			http.Error(w, "network has not been compiled", 404)
			return
		}
		w.Header().Set("Content-Type", "text/x-python")
		w.Write(program)
	}).Methods("GET")
}
