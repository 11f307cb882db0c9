// Package common holds small helpers shared by the command actions.
package common

import (
	"fmt"
	"regexp"
	"strings"
)

// namePattern matches the account and community names Reddit accepts.
var namePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// redditPrefixes are stripped so pasted browser URLs work as targets.
var redditPrefixes = []string{
	"https://www.reddit.com",
	"http://www.reddit.com",
	"https://reddit.com",
	"http://reddit.com",
}

// ParseTarget interprets an analysis target of the form /r/<subreddit>
// or /u/<username>, tolerating pasted reddit.com URLs and trailing
// slashes. It returns the bare name and whether it names a subreddit.
func ParseTarget(target string) (name string, isSubreddit bool, err error) {
	cleaned := strings.TrimSpace(target)

	for _, prefix := range redditPrefixes {
		if strings.HasPrefix(cleaned, prefix) {
			cleaned = strings.TrimPrefix(cleaned, prefix)
			break
		}
	}
	cleaned = strings.TrimSuffix(cleaned, "/")

	switch {
	case strings.HasPrefix(cleaned, "/r/"):
		name, isSubreddit = cleaned[len("/r/"):], true
	case strings.HasPrefix(cleaned, "/u/"):
		name, isSubreddit = cleaned[len("/u/"):], false
	case strings.HasPrefix(cleaned, "/user/"):
		name, isSubreddit = cleaned[len("/user/"):], false
	default:
		return "", false, fmt.Errorf("target must look like /r/<subreddit> or /u/<username>, got %q", target)
	}

	if !namePattern.MatchString(name) {
		return "", false, fmt.Errorf("invalid target name %q", name)
	}
	return name, isSubreddit, nil
}
