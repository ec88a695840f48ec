package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/abertrand/vitrine/internal/repositories/users"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// showAuthError prints the user-facing message of the last auth error,
// prefixed with the form field it concerns.
func (a *App) showAuthError() {
	if err := a.auth.Snapshot().Err; err != nil {
		printlnFn(fmt.Sprintf("[%s] %s", err.Field, err.Message))
	}
}

// Register prompts for a display name, an email, and a password, and signs
// the user up. Signup performs an automatic login on success.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Nom d'utilisateur", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if !a.auth.Signup(ctx, name, email, password) {
		a.showAuthError()
		return nil
	}
	printlnFn("Compte créé. Bienvenue,", a.status(), "!")
	return nil
}

// Login prompts for credentials and authenticates.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if !a.auth.Login(ctx, email, password) {
		a.showAuthError()
		return nil
	}
	printlnFn("Bienvenue,", a.status(), "!")
	return nil
}

// Logout clears the session. The machine guarantees the unauthenticated
// state even when the persisted clear fails.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	a.showAuthError()
	printlnFn("Déconnecté.")
	return nil
}

// Profile shows the session user.
func (a *App) Profile(ctx context.Context) error {
	u := a.auth.CurrentUser()
	if u == nil {
		printlnFn("Aucun utilisateur connecté.")
		return nil
	}
	printlnFn(fmt.Sprintf("%s <%s> (id %s)", u.Name, u.Email, u.ID))
	return nil
}

// EditProfile prompts for a new display name and/or password. Empty input
// keeps the current value.
func (a *App) EditProfile(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Nouveau nom (vide pour conserver)", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	var update users.Update
	if name != "" {
		update.Username = &name
	}
	if password != "" {
		update.Password = &password
	}
	if update.Username == nil && update.Password == nil {
		printlnFn("Rien à modifier.")
		return nil
	}

	a.auth.UpdateProfile(ctx, update)
	if a.auth.Snapshot().Err != nil {
		a.showAuthError()
		return nil
	}
	printlnFn("Profil mis à jour.")
	return nil
}
