package graphql

import (
	"context"

	"github.com/dmitrijs2005/hackernews/internal/server/models"
	"github.com/dmitrijs2005/hackernews/internal/server/services"
	gql "github.com/graph-gophers/graphql-go"
)

type authPayloadResolver struct {
	payload *services.AuthPayload
}

func (a *authPayloadResolver) Token() *string {
	return &a.payload.Token
}

func (a *authPayloadResolver) User() *userResolver {
	if a.payload.User == nil {
		return nil
	}
	return &userResolver{user: a.payload.User}
}

// userResolver never exposes the password hash.
type userResolver struct {
	user *models.User
}

func (u *userResolver) ID() gql.ID    { return gql.ID(u.user.ID) }
func (u *userResolver) Name() string  { return u.user.Name }
func (u *userResolver) Email() string { return u.user.Email }

type linkResolver struct {
	root *Resolver
	link *models.Link
}

func (l *linkResolver) ID() gql.ID          { return gql.ID(l.link.ID) }
func (l *linkResolver) URL() string         { return l.link.URL }
func (l *linkResolver) Description() string { return l.link.Description }
func (l *linkResolver) CreatedAt() gql.Time { return gql.Time{Time: l.link.CreatedAt} }

func (l *linkResolver) PostedBy(ctx context.Context) (*userResolver, error) {
	if l.link.PostedByID == "" {
		return nil, nil
	}
	u, err := l.root.users.GetByID(ctx, l.link.PostedByID)
	if err != nil {
		return nil, l.root.errs.Map(err)
	}
	return &userResolver{user: u}, nil
}

func (l *linkResolver) Votes(ctx context.Context) ([]*voteResolver, error) {
	votes, err := l.root.votes.ListByLink(ctx, l.link.ID)
	if err != nil {
		return nil, l.root.errs.Map(err)
	}
	out := make([]*voteResolver, 0, len(votes))
	for _, v := range votes {
		out = append(out, &voteResolver{root: l.root, vote: v})
	}
	return out, nil
}

type voteResolver struct {
	root *Resolver
	vote *models.Vote
}

func (v *voteResolver) ID() gql.ID { return gql.ID(v.vote.ID) }

func (v *voteResolver) Link(ctx context.Context) (*linkResolver, error) {
	link, err := v.root.links.GetByID(ctx, v.vote.LinkID)
	if err != nil {
		return nil, v.root.errs.Map(err)
	}
	return &linkResolver{root: v.root, link: link}, nil
}

func (v *voteResolver) User(ctx context.Context) (*userResolver, error) {
	u, err := v.root.users.GetByID(ctx, v.vote.UserID)
	if err != nil {
		return nil, v.root.errs.Map(err)
	}
	return &userResolver{user: u}, nil
}
