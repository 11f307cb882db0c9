package models

// ActivityKind discriminates the entry types in a user's overview feed.
type ActivityKind int

const (
	ActivityComment ActivityKind = iota
	ActivitySubmission
)

// Submission represents a Reddit link or self post.
type Submission struct {
	ID          string
	Fullname    string // thing fullname, e.g. "t3_abc123"
	Title       string
	SelfText    string
	IsSelf      bool
	URL         string
	Permalink   string
	Subreddit   string
	Author      string
	NumComments int
}

// Comment represents a single comment from a submission's tree.
type Comment struct {
	ID        string
	Author    string
	Body      string
	Permalink string
}

// ActivityItem is one entry of a user's overview feed. Exactly one of
// Comment or Submission is set, indicated by Kind.
type ActivityItem struct {
	Kind       ActivityKind
	Comment    *Comment
	Submission *Submission
}
