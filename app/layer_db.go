package app

import (
	"github.com/nlab-ml/nlab/nlab"

	"github.com/google/uuid"
)

type DBLayer struct {
	nlab.LayerTemplate
}

const LayerQuery = "SELECT id, name, store, parameters, pytorch, tensorflow, pennylane FROM layers"

func layerListHelper(rows *Rows) []*DBLayer {
	layers := []*DBLayer{}
	for rows.Next() {
		var layer DBLayer
		var paramsRaw, pytorch, tensorflow, pennylane string
		rows.Scan(&layer.ID, &layer.Name, &layer.Store, &paramsRaw, &pytorch, &tensorflow, &pennylane)
		nlab.JsonUnmarshal([]byte(paramsRaw), &layer.Parameters)
		if layer.Parameters == nil {
			layer.Parameters = make(map[string][]string)
		}
		layer.Construct = make(map[string]string)
		if pytorch != "" {
			layer.Construct[nlab.Pytorch] = pytorch
		}
		if tensorflow != "" {
			layer.Construct[nlab.Tensorflow] = tensorflow
		}
		if pennylane != "" {
			layer.Construct[nlab.Pennylane] = pennylane
		}
		layers = append(layers, &layer)
	}
	return layers
}

func ListLayers() []*DBLayer {
	rows := db.Query(LayerQuery)
	return layerListHelper(rows)
}

func GetLayer(id string) *DBLayer {
	rows := db.Query(LayerQuery+" WHERE id = ?", id)
	layers := layerListHelper(rows)
	if len(layers) == 1 {
		return layers[0]
	} else {
		return nil
	}
}

func GetLayerByName(name string) *DBLayer {
	rows := db.Query(LayerQuery+" WHERE name = ?", name)
	layers := layerListHelper(rows)
	if len(layers) == 1 {
		return layers[0]
	} else {
		return nil
	}
}

// NewLayer creates an immutable layer template. There is no update: once a
// template exists, networks bind against it as-is on every compile.
func NewLayer(name string, store string, parameters map[string][]string, construct map[string]string) *DBLayer {
	id := uuid.New().String()
	db.Exec(
		"INSERT INTO layers (id, name, store, parameters, pytorch, tensorflow, pennylane) VALUES (?, ?, ?, ?, ?, ?, ?)",
		id, name, store,
		string(nlab.JsonMarshal(parameters)),
		construct[nlab.Pytorch], construct[nlab.Tensorflow], construct[nlab.Pennylane],
	)
	return GetLayer(id)
}
