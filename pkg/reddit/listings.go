package reddit

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/cmcdowell/reddit-analysis/models"
)

// TopSubmissions fetches the top submissions of a subreddit for the given
// period, following the listing cursor until limit items are collected.
// A limit of 0 keeps paging until the listing is exhausted.
func (c *Client) TopSubmissions(subreddit, period string, limit int) ([]*models.Submission, error) {
	var subs []*models.Submission
	after := ""

	for {
		query := url.Values{}
		query.Set("t", period)
		query.Set("limit", strconv.Itoa(pageCount(limit, len(subs))))
		if after != "" {
			query.Set("after", after)
		}

		l, err := c.listingPage(fmt.Sprintf("/r/%s/top.json", subreddit), query)
		if err != nil {
			return nil, err
		}

		for _, child := range l.Children {
			if child.Kind != kindSubmission {
				continue
			}
			sub, err := child.submission()
			if err != nil {
				return nil, err
			}
			subs = append(subs, sub)
			if limit > 0 && len(subs) == limit {
				return subs, nil
			}
		}

		if l.After == "" {
			return subs, nil
		}
		after = l.After
	}
}

// Overview fetches a user's combined comment and submission feed, newest
// first, following the cursor the same way TopSubmissions does.
func (c *Client) Overview(username string, limit int) ([]models.ActivityItem, error) {
	var items []models.ActivityItem
	after := ""

	for {
		query := url.Values{}
		query.Set("limit", strconv.Itoa(pageCount(limit, len(items))))
		if after != "" {
			query.Set("after", after)
		}

		l, err := c.listingPage(fmt.Sprintf("/user/%s/overview.json", username), query)
		if err != nil {
			return nil, err
		}

		for _, child := range l.Children {
			switch child.Kind {
			case kindComment:
				cm, err := child.comment()
				if err != nil {
					return nil, err
				}
				items = append(items, models.ActivityItem{Kind: models.ActivityComment, Comment: cm.toModel()})
			case kindSubmission:
				sub, err := child.submission()
				if err != nil {
					return nil, err
				}
				items = append(items, models.ActivityItem{Kind: models.ActivitySubmission, Submission: sub})
			default:
				continue
			}
			if limit > 0 && len(items) == limit {
				return items, nil
			}
		}

		if l.After == "" {
			return items, nil
		}
		after = l.After
	}
}

// pageCount sizes the next page request so a bounded walk never asks for
// more items than it still needs.
func pageCount(limit, have int) int {
	if limit > 0 && limit-have < pageSize {
		return limit - have
	}
	return pageSize
}
