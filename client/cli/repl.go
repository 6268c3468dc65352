package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// repl reads a command per line and dispatches. Commands depend on the login
// state; the loop exits on EOF or "exit"/"quit". Handlers print their own
// errors and the loop carries on.
func (a *App) repl(ctx context.Context, scanner *bufio.Scanner) {
	printlnFn("Product catalog. Type 'help' for commands.")
	for {
		printlnFn(fmt.Sprintf("catalog> %s >", a.status()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: list, add, whoami, logout, exit")
			} else {
				printlnFn("Available commands: list, register, login, exit")
			}

		case "register":
			a.register(ctx)

		case "login":
			a.login(ctx)

		case "logout":
			a.logout(ctx)

		case "whoami":
			a.whoami(ctx)

		case "list":
			a.list(ctx)

		case "add":
			if !a.isLoggedIn() {
				printlnFn("Please login first (the server will refuse anonymous creates).")
				continue
			}
			a.addProduct(ctx)

		case "exit", "quit":
			return

		default:
			printlnFn(fmt.Sprintf("Unknown command %q. Type 'help' for commands.", parts[0]))
		}
	}
}
