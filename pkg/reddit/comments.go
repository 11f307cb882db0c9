package reddit

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/cmcdowell/reddit-analysis/models"
)

// maxMoreFetches caps "load more comments" resolution per submission so a
// huge thread cannot turn into an unbounded request storm.
const maxMoreFetches = 32

// Comments fetches the full comment tree for a submission, resolving
// collapsed placeholders, and returns it flattened breadth-first.
func (c *Client) Comments(s *models.Submission) ([]*models.Comment, error) {
	body, err := c.get(fmt.Sprintf("/comments/%s.json", s.ID), nil)
	if err != nil {
		return nil, err
	}

	// The endpoint returns two listings: the submission itself, then the
	// comment tree.
	var envelopes []thing
	if err := json.Unmarshal(body, &envelopes); err != nil {
		return nil, fmt.Errorf("failed to decode comment tree: %w", err)
	}
	if len(envelopes) < 2 {
		return nil, fmt.Errorf("unexpected comment tree shape for %s", s.ID)
	}
	tree, err := envelopes[1].listing()
	if err != nil {
		return nil, err
	}

	linkID := s.Fullname
	if linkID == "" {
		linkID = "t3_" + s.ID
	}
	return c.flatten(linkID, tree.Children)
}

// flatten walks the comment forest breadth-first, expanding placeholders
// as they surface. Placeholders with no hidden comments are dropped.
func (c *Client) flatten(linkID string, roots []thing) ([]*models.Comment, error) {
	var comments []*models.Comment
	queue := append([]thing(nil), roots...)
	moreFetches := 0

	for len(queue) > 0 {
		t := queue[0]
		queue = queue[1:]

		switch t.Kind {
		case kindComment:
			cm, err := t.comment()
			if err != nil {
				return nil, err
			}
			comments = append(comments, cm.toModel())
			replies, err := cm.replyThings()
			if err != nil {
				return nil, err
			}
			queue = append(queue, replies...)

		case kindMore:
			md, err := t.more()
			if err != nil {
				return nil, err
			}
			if md.Count < 1 || len(md.Children) == 0 || moreFetches >= maxMoreFetches {
				continue
			}
			moreFetches++
			things, err := c.moreChildren(linkID, md.Children)
			if err != nil {
				return nil, err
			}
			queue = append(queue, things...)
		}
	}

	return comments, nil
}

type moreChildrenResponse struct {
	JSON struct {
		Data struct {
			Things []thing `json:"things"`
		} `json:"data"`
	} `json:"json"`
}

// moreChildren resolves one batch of collapsed comment IDs.
func (c *Client) moreChildren(linkID string, ids []string) ([]thing, error) {
	query := url.Values{}
	query.Set("api_type", "json")
	query.Set("link_id", linkID)
	query.Set("children", strings.Join(ids, ","))

	var envelope moreChildrenResponse
	if err := c.getJSON("/api/morechildren.json", query, &envelope); err != nil {
		return nil, err
	}
	return envelope.JSON.Data.Things, nil
}
