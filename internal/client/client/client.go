package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/dmitrijs2005/hackernews/internal/client/models"
	"github.com/dmitrijs2005/hackernews/internal/common"
	"github.com/dmitrijs2005/hackernews/internal/netx"
)

const (
	signupMutation = `mutation Signup($email: String!, $password: String!, $name: String!) {
  signup(email: $email, password: $password, name: $name) { token user { id name email } }
}`
	loginMutation = `mutation Login($email: String!, $password: String!) {
  login(email: $email, password: $password) { token user { id name email } }
}`
	postMutation = `mutation Post($url: String!, $description: String!) {
  post(url: $url, description: $description) { id url description createdAt postedBy { id name } }
}`
	voteMutation = `mutation Vote($linkId: ID!) {
  vote(linkId: $linkId) { id link { id url } user { id name } }
}`
	feedQuery = `query Feed($first: Int, $skip: Int) {
  feed(first: $first, skip: $skip) { id url description createdAt postedBy { id name } votes { id } }
}`
)

type Client struct {
	endpoint string
	http     *http.Client

	mu    sync.RWMutex
	token string
}

func New(endpoint string, timeout time.Duration) *Client {
	return &Client{endpoint: endpoint, http: &http.Client{Timeout: timeout}}
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Signup creates an account and keeps the returned token.
func (c *Client) Signup(ctx context.Context, email, password, name string) (*models.AuthPayload, error) {
	var data struct {
		Signup *models.AuthPayload `json:"signup"`
	}
	vars := map[string]any{"email": email, "password": password, "name": name}
	if err := c.do(ctx, signupMutation, vars, &data); err != nil {
		return nil, err
	}
	if data.Signup == nil {
		return nil, errEmptyResponse
	}
	c.SetToken(data.Signup.Token)
	return data.Signup, nil
}

// Login authenticates and keeps the returned token.
func (c *Client) Login(ctx context.Context, email, password string) (*models.AuthPayload, error) {
	var data struct {
		Login *models.AuthPayload `json:"login"`
	}
	vars := map[string]any{"email": email, "password": password}
	if err := c.do(ctx, loginMutation, vars, &data); err != nil {
		return nil, err
	}
	if data.Login == nil {
		return nil, errEmptyResponse
	}
	c.SetToken(data.Login.Token)
	return data.Login, nil
}

func (c *Client) Post(ctx context.Context, url, description string) (*models.Link, error) {
	var data struct {
		Post *models.Link `json:"post"`
	}
	if err := c.do(ctx, postMutation, map[string]any{"url": url, "description": description}, &data); err != nil {
		return nil, err
	}
	return data.Post, nil
}

func (c *Client) Vote(ctx context.Context, linkID string) (*models.Vote, error) {
	var data struct {
		Vote *models.Vote `json:"vote"`
	}
	if err := c.do(ctx, voteMutation, map[string]any{"linkId": linkID}, &data); err != nil {
		return nil, err
	}
	return data.Vote, nil
}

// Feed lists links newest first. Zero first uses the server default.
func (c *Client) Feed(ctx context.Context, first, skip int) ([]models.Link, error) {
	vars := map[string]any{"skip": skip}
	if first > 0 {
		vars["first"] = first
	}
	var data struct {
		Feed []models.Link `json:"feed"`
	}
	if err := c.do(ctx, feedQuery, vars, &data); err != nil {
		return nil, err
	}
	return data.Feed, nil
}

type request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message    string `json:"message"`
		Extensions struct {
			Code string `json:"code"`
		} `json:"extensions"`
	} `json:"errors"`
}

func (c *Client) do(ctx context.Context, query string, vars map[string]any, out any) error {
	headers := map[string]string{}
	if token := c.Token(); token != "" {
		headers[common.AuthorizationHeaderName] = common.BearerScheme + " " + token
	}

	var resp response
	if err := netx.PostJSON(ctx, c.http, c.endpoint, headers, request{Query: query, Variables: vars}, &resp); err != nil {
		var se *netx.StatusError
		if errors.As(err, &se) {
			return err
		}
		return errors.Join(ErrUnavailable, err)
	}

	if len(resp.Errors) > 0 {
		e := resp.Errors[0]
		return &APIError{Message: e.Message, Code: e.Extensions.Code}
	}
	if err := json.Unmarshal(resp.Data, out); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}
