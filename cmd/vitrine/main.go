package main

import (
	"context"
	"log"

	"github.com/abertrand/vitrine/internal/cli"
	"github.com/abertrand/vitrine/internal/config"
)

func main() {

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(context.Background())

}
