package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"product-catalog/client/api"
)

// App is the interactive terminal client. It keeps no catalog state of its
// own; every view renders from the latest server response.
type App struct {
	api    *api.Client
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(client *api.Client) *App {
	return &App{
		api:    client,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

func (a *App) Run(ctx context.Context) {
	a.repl(ctx, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.api.IsAuthenticated()
}

// status is shown in the prompt: the cached user name, or "guest".
func (a *App) status() string {
	if u := a.api.StoredUser(); u != nil {
		return u.Name
	}
	return "guest"
}
