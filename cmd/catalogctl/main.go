// main.go - Entry point for the catalogctl terminal client

package main

import (
	"context"
	"fmt"
	"os"

	"product-catalog/client/api"
	"product-catalog/client/cli"
	"product-catalog/client/session"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	baseURL := os.Getenv("CATALOG_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	sessionPath := os.Getenv("CATALOG_SESSION_FILE")
	if sessionPath == "" {
		var err error
		sessionPath, err = session.DefaultPath()
		if err != nil {
			fmt.Fprintln(os.Stderr, "cannot determine session path:", err)
			os.Exit(1)
		}
	}

	store := session.NewStore(sessionPath)
	app := cli.NewApp(api.New(baseURL, store))
	app.Run(context.Background())
}
