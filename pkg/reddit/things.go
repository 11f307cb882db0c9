package reddit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"

	"github.com/cmcdowell/reddit-analysis/models"
)

// Thing kinds used by the API.
const (
	kindComment    = "t1"
	kindSubmission = "t3"
	kindMore       = "more"
	kindListing    = "Listing"
)

// thing is the kind/data envelope every API object arrives in.
type thing struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// listing is the paginated container for things. After is empty on the
// last page.
type listing struct {
	Children []thing `json:"children"`
	After    string  `json:"after"`
}

func (t *thing) listing() (*listing, error) {
	if t.Kind != kindListing {
		return nil, fmt.Errorf("expected a listing, got kind %q", t.Kind)
	}
	var l listing
	if err := json.Unmarshal(t.Data, &l); err != nil {
		return nil, fmt.Errorf("failed to decode listing: %w", err)
	}
	return &l, nil
}

type submissionData struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Title       string `json:"title"`
	SelfText    string `json:"selftext"`
	IsSelf      bool   `json:"is_self"`
	URL         string `json:"url"`
	Permalink   string `json:"permalink"`
	Subreddit   string `json:"subreddit"`
	Author      string `json:"author"`
	NumComments int    `json:"num_comments"`
}

func (t *thing) submission() (*models.Submission, error) {
	var d submissionData
	if err := json.Unmarshal(t.Data, &d); err != nil {
		return nil, fmt.Errorf("failed to decode submission: %w", err)
	}
	return &models.Submission{
		ID:          d.ID,
		Fullname:    d.Name,
		Title:       html.UnescapeString(d.Title),
		SelfText:    html.UnescapeString(d.SelfText),
		IsSelf:      d.IsSelf,
		URL:         d.URL,
		Permalink:   d.Permalink,
		Subreddit:   d.Subreddit,
		Author:      d.Author,
		NumComments: d.NumComments,
	}, nil
}

// commentData keeps Replies raw: the API sends an empty string when a
// comment has no replies and a nested listing thing when it does.
type commentData struct {
	ID        string          `json:"id"`
	Author    string          `json:"author"`
	Body      string          `json:"body"`
	Permalink string          `json:"permalink"`
	Replies   json.RawMessage `json:"replies"`
}

func (t *thing) comment() (*commentData, error) {
	var d commentData
	if err := json.Unmarshal(t.Data, &d); err != nil {
		return nil, fmt.Errorf("failed to decode comment: %w", err)
	}
	return &d, nil
}

func (d *commentData) toModel() *models.Comment {
	return &models.Comment{
		ID:        d.ID,
		Author:    d.Author,
		Body:      html.UnescapeString(d.Body),
		Permalink: d.Permalink,
	}
}

// replyThings unpacks the replies field into child things.
func (d *commentData) replyThings() ([]thing, error) {
	raw := bytes.TrimSpace(d.Replies)
	if len(raw) == 0 || bytes.Equal(raw, []byte(`""`)) || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	var t thing
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("failed to decode replies: %w", err)
	}
	l, err := t.listing()
	if err != nil {
		return nil, err
	}
	return l.Children, nil
}

// moreData is the collapsed "load more comments" placeholder.
type moreData struct {
	Count    int      `json:"count"`
	Children []string `json:"children"`
}

func (t *thing) more() (*moreData, error) {
	var d moreData
	if err := json.Unmarshal(t.Data, &d); err != nil {
		return nil, fmt.Errorf("failed to decode more placeholder: %w", err)
	}
	return &d, nil
}
