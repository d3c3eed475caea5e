package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/hackernews/internal/client/models"
	"github.com/dmitrijs2005/hackernews/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var errAborted = errors.New("aborted")

// Signup prompts for email, name and password, creates the account and keeps
// the session.
func (a *App) Signup(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	payload, err := a.api.Signup(ctx, email, string(password), name)
	if err != nil {
		return err
	}
	return a.startSession(payload, email)
}

// Login prompts for credentials and keeps the session on success.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	if email == "" {
		return errAborted
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	payload, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		return err
	}
	return a.startSession(payload, email)
}

// Logout forgets the token locally. Tokens are not revoked on the server;
// they stay valid until they expire.
func (a *App) Logout(ctx context.Context) error {
	a.api.SetToken("")
	a.userName = ""
	if err := a.session.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) startSession(payload *models.AuthPayload, email string) error {
	if err := a.session.Save(payload.Token); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	a.userName = email
	if payload.User != nil && payload.User.Name != "" {
		a.userName = payload.User.Name
	}
	fmt.Fprintf(a.out, "Logged in as %s\n", a.userName)
	return nil
}
