package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"expenses/di"
	"expenses/menu"
)

func main() {
	_ = godotenv.Load()
	ctx := context.Background()

	app, err := di.Build(ctx)
	if err != nil {
		fmt.Println("ERROR:", err)
		os.Exit(1)
	}

	menu.Run(ctx, app.Menu, &app.Deps)
}
