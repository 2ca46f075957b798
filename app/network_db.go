package app

import (
	"github.com/nlab-ml/nlab/nlab"

	"strings"

	"github.com/google/uuid"
)

type DBNetwork struct {
	nlab.Network
}

const NetworkQuery = "SELECT id, name, backend, layers, graph, loss, weights FROM networks"

func networkListHelper(rows *Rows) []*DBNetwork {
	networks := []*DBNetwork{}
	for rows.Next() {
		var network DBNetwork
		var layersRaw, graphRaw string
		rows.Scan(&network.ID, &network.Name, &network.Backend, &layersRaw, &graphRaw, &network.Loss, &network.Weights)
		nlab.JsonUnmarshal([]byte(layersRaw), &network.Instances)
		network.Graph = nlab.ParseGraph(graphRaw)
		networks = append(networks, &network)
	}
	return networks
}

func ListNetworks() []*DBNetwork {
	rows := db.Query(NetworkQuery)
	return networkListHelper(rows)
}

func GetNetwork(id string) *DBNetwork {
	rows := db.Query(NetworkQuery+" WHERE id = ?", id)
	networks := networkListHelper(rows)
	if len(networks) == 1 {
		return networks[0]
	} else {
		return nil
	}
}

func NewNetwork(name string, backend string, instances []nlab.LayerInstance, graph [][]nlab.Edge, loss string, weights string) *DBNetwork {
	id := uuid.New().String()
	db.Exec(
		"INSERT INTO networks (id, name, backend, layers, graph, loss, weights) VALUES (?, ?, ?, ?, ?, ?, ?)",
		id, name, strings.ToLower(backend),
		string(nlab.JsonMarshal(instances)),
		nlab.EncodeGraph(graph),
		loss, weights,
	)
	return GetNetwork(id)
}
