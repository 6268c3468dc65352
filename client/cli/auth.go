package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"product-catalog/client/api"
)

// Local shape checks avoid a round trip for obviously bad input. The server
// remains authoritative: its 422 error list overwrites whatever passed here.

func (a *App) register(ctx context.Context) {
	name, err := getSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return
	}
	password, err := getPassword("Password", a.out)
	if err != nil {
		return
	}
	confirmation, err := getPassword("Confirm password", a.out)
	if err != nil {
		return
	}

	local := map[string]string{}
	if name == "" {
		local["name"] = "Name is required"
	}
	if email == "" {
		local["email"] = "Email is required"
	}
	if len(password) < 8 {
		local["password"] = "Password must be at least 8 characters"
	}
	if password != confirmation {
		local["password_confirmation"] = "Passwords do not match"
	}
	if len(local) > 0 {
		for _, field := range sortedKeys(local) {
			printlnFn(fmt.Sprintf("  %s: %s", field, local[field]))
		}
		return
	}

	auth, err := a.api.Register(ctx, name, email, password, confirmation)
	if err != nil {
		a.printError(err)
		return
	}
	printlnFn(fmt.Sprintf("Registered and logged in as %s <%s>", auth.User.Name, auth.User.Email))
}

func (a *App) login(ctx context.Context) {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return
	}
	password, err := getPassword("Password", a.out)
	if err != nil {
		return
	}

	auth, err := a.api.Login(ctx, email, password)
	if err != nil {
		a.printError(err)
		return
	}
	printlnFn(fmt.Sprintf("Logged in as %s <%s>", auth.User.Name, auth.User.Email))
}

func (a *App) logout(ctx context.Context) {
	if err := a.api.Logout(ctx); err != nil {
		a.printError(err)
		return
	}
	printlnFn("Logged out")
}

func (a *App) whoami(ctx context.Context) {
	user, err := a.api.CurrentUser(ctx)
	if err != nil {
		a.printError(err)
		return
	}
	printlnFn(fmt.Sprintf("%s <%s> (id %d)", user.Name, user.Email, user.ID))
}

// printError renders an API failure: field-keyed validation messages when
// present, the envelope message otherwise. A 401 means the adapter already
// dropped the stored credentials, so suggest logging in again.
func (a *App) printError(err error) {
	var apiErr *api.APIError
	if !errors.As(err, &apiErr) {
		printlnFn("Error: " + err.Error())
		return
	}
	printlnFn("Error: " + apiErr.Message)
	for _, field := range sortedErrorKeys(apiErr.Errors) {
		for _, msg := range apiErr.Errors[field] {
			printlnFn(fmt.Sprintf("  %s: %s", field, msg))
		}
	}
	if apiErr.StatusCode == 401 {
		printlnFn("Your session is no longer valid. Please login again.")
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedErrorKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
