package main

import (
	"fmt"

	"github.com/linxlib/jsonconf"
)

type ServerConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

func main() {
	conf, err := jsonconf.New(&jsonconf.Option{
		Dir:          "Config",
		Environments: []string{"production"},
		Verbose:      true,
	})
	if err != nil {
		panic(err)
	}
	if err := conf.Load(); err != nil {
		panic(err)
	}

	// Typed lookups with fallbacks.
	port := jsonconf.GetOr(conf, "app.port", 8080)
	host := jsonconf.GetOr(conf, "app.host", "localhost")
	fmt.Printf("listening on %s:%d\n", host, port)

	// Decode a whole group into a struct.
	var server ServerConfig
	if err := conf.Unmarshal("app", &server); err != nil {
		panic(err)
	}
	fmt.Printf("server: %+v\n", server)

	// Hand a component a scoped read-only view.
	db := jsonconf.NewScopedProvider("database", conf)
	if dsn, err := db.Get("dsn"); err == nil {
		fmt.Println("dsn:", dsn)
	}
}
