package main

import (
	"github.com/nlab-ml/nlab/app"

	"github.com/googollee/go-socket.io"

	"flag"
	"log"
	"net/http"
	"path/filepath"
)

func main() {
	addr := flag.String("addr", ":8080", "bind address")
	dataDir := flag.String("data", "data", "data directory")
	flag.Parse()

	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	app.Config.DataDir = *dataDir
	app.InitDB(filepath.Join(*dataDir, "nlab.sqlite3"))

	server, err := socketio.NewServer(nil)
	if err != nil {
		panic(err)
	}
	server.OnConnect("/", func(s socketio.Conn) error {
		s.Join("jobs")
		return nil
	})
	for _, f := range app.SetupFuncs {
		f(server)
	}

	go server.Serve()
	defer server.Close()
	http.Handle("/socket.io/", server)
	http.Handle("/", app.Router)
	log.Printf("starting on %s", *addr)
	if err := http.ListenAndServe(*addr, nil); err != nil {
		panic(err)
	}
}
