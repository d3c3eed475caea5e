package graphql

import (
	"context"

	"github.com/dmitrijs2005/hackernews/internal/logging"
	"github.com/dmitrijs2005/hackernews/internal/server/models"
	"github.com/dmitrijs2005/hackernews/internal/server/services"
	gql "github.com/graph-gophers/graphql-go"
)

// Info is returned by the info query.
const Info = "This is the API of a Hackernews Clone"

type UserService interface {
	Signup(ctx context.Context, email, password, name string) (*services.AuthPayload, error)
	Login(ctx context.Context, email, password string) (*services.AuthPayload, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

type LinkService interface {
	Post(ctx context.Context, url, description string) (*models.Link, error)
	GetByID(ctx context.Context, id string) (*models.Link, error)
	Feed(ctx context.Context, first, skip int) ([]*models.Link, error)
}

type VoteService interface {
	Vote(ctx context.Context, linkID string) (*models.Vote, error)
	ListByLink(ctx context.Context, linkID string) ([]*models.Vote, error)
}

// Resolver is the root resolver for both Query and Mutation.
type Resolver struct {
	users  UserService
	links  LinkService
	votes  VoteService
	errs   errorMapper
	logger logging.Logger
}

// NewResolver builds the root resolver. With hideUserEnumeration set, login
// reports unknown emails and wrong passwords with the same error.
func NewResolver(us UserService, ls LinkService, vs VoteService, hideUserEnumeration bool, l logging.Logger) *Resolver {
	return &Resolver{
		users:  us,
		links:  ls,
		votes:  vs,
		errs:   errorMapper{hideUserEnumeration: hideUserEnumeration},
		logger: l.With("module", "graphql"),
	}
}

func (r *Resolver) Info() string {
	return Info
}

func (r *Resolver) Feed(ctx context.Context, args struct {
	First *int32
	Skip  *int32
}) ([]*linkResolver, error) {
	var first, skip int
	if args.First != nil {
		first = int(*args.First)
	}
	if args.Skip != nil {
		skip = int(*args.Skip)
	}

	result, err := r.links.Feed(ctx, first, skip)
	if err != nil {
		return nil, r.errs.Map(err)
	}

	out := make([]*linkResolver, 0, len(result))
	for _, l := range result {
		out = append(out, &linkResolver{root: r, link: l})
	}
	return out, nil
}

func (r *Resolver) Signup(ctx context.Context, args struct {
	Email    string
	Password string
	Name     string
}) (*authPayloadResolver, error) {
	payload, err := r.users.Signup(ctx, args.Email, args.Password, args.Name)
	if err != nil {
		return nil, r.errs.Map(err)
	}
	return &authPayloadResolver{payload: payload}, nil
}

func (r *Resolver) Login(ctx context.Context, args struct {
	Email    string
	Password string
}) (*authPayloadResolver, error) {
	payload, err := r.users.Login(ctx, args.Email, args.Password)
	if err != nil {
		return nil, r.errs.Map(err)
	}
	return &authPayloadResolver{payload: payload}, nil
}

func (r *Resolver) Post(ctx context.Context, args struct {
	URL         string
	Description string
}) (*linkResolver, error) {
	link, err := r.links.Post(ctx, args.URL, args.Description)
	if err != nil {
		return nil, r.errs.Map(err)
	}
	return &linkResolver{root: r, link: link}, nil
}

func (r *Resolver) Vote(ctx context.Context, args struct{ LinkID gql.ID }) (*voteResolver, error) {
	vote, err := r.votes.Vote(ctx, string(args.LinkID))
	if err != nil {
		return nil, r.errs.Map(err)
	}
	return &voteResolver{root: r, vote: vote}, nil
}
