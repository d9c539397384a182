// Command formauthd serves the login and registration forms over HTTP and
// gRPC.
package main

import (
	"context"
	"log"
	"os"

	"github.com/melusi-muna/login-register-forms/internal/buildinfo"
	"github.com/melusi-muna/login-register-forms/internal/config"
	"github.com/melusi-muna/login-register-forms/internal/server"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	app, err := server.NewApp(ctx, cfg, buildinfo.Version())
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
