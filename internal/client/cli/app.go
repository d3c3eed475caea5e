package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/hackernews/internal/client/client"
	"github.com/dmitrijs2005/hackernews/internal/client/config"
	"github.com/dmitrijs2005/hackernews/internal/client/models"
)

// API is the subset of client.Client used by the CLI.
type API interface {
	Signup(ctx context.Context, email, password, name string) (*models.AuthPayload, error)
	Login(ctx context.Context, email, password string) (*models.AuthPayload, error)
	Post(ctx context.Context, url, description string) (*models.Link, error)
	Vote(ctx context.Context, linkID string) (*models.Vote, error)
	Feed(ctx context.Context, first, skip int) ([]models.Link, error)
	SetToken(token string)
	Token() string
}

type App struct {
	config   *config.Config
	api      API
	session  *Session
	userName string
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	path := c.TokenFile
	if path == "" {
		var err error
		if path, err = DefaultTokenFile(); err != nil {
			return nil, err
		}
	}

	return newApp(c, client.New(c.ServerURL, c.RequestTimeout), NewSession(path), os.Stdin, os.Stdout)
}

func newApp(c *config.Config, api API, s *Session, in io.Reader, out io.Writer) (*App, error) {
	token, err := s.Load()
	if err != nil {
		return nil, err
	}
	api.SetToken(token)

	return &App{config: c, api: api, session: s, reader: bufio.NewReader(in), out: out}, nil
}

func (a *App) isLoggedIn() bool {
	return a.api.Token() != ""
}

// Run executes the command in args, or starts the REPL when args is empty.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.Root(ctx)
		return nil
	}
	return dispatch(ctx, a, args[0], args[1:])
}
