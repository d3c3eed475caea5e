package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
)

// Post submits a link. Missing arguments are prompted for.
func (a *App) Post(ctx context.Context, args []string) error {
	var url, description string
	if len(args) > 0 {
		url = args[0]
		description = strings.Join(args[1:], " ")
	} else {
		var err error
		if url, err = getSimpleText(a.reader, "Enter URL", a.out); err != nil {
			return err
		}
		if description, err = getSimpleText(a.reader, "Enter description", a.out); err != nil {
			return err
		}
	}

	link, err := a.api.Post(ctx, url, description)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Posted %s\n", link.ID)
	return nil
}

func (a *App) Vote(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: vote <link id>")
	}

	vote, err := a.api.Vote(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Voted %s\n", vote.ID)
	return nil
}

// Feed prints links as a table: id, votes, url and description.
func (a *App) Feed(ctx context.Context, args []string) error {
	var nums [2]int
	for i := 0; i < len(args) && i < len(nums); i++ {
		n, err := strconv.Atoi(args[i])
		if err != nil {
			return fmt.Errorf("usage: feed [first] [skip]")
		}
		nums[i] = n
	}

	links, err := a.api.Feed(ctx, nums[0], nums[1])
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tVOTES\tURL\tDESCRIPTION")
	for _, l := range links {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", l.ID, len(l.Votes), l.URL, l.Description)
	}
	return tw.Flush()
}
