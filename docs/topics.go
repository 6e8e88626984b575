// Package docs embeds the skv user documentation and serves it by topic
// name.
package docs

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed *.md
var topicFiles embed.FS

// indexTopic is the landing page listing every other topic. It is excluded
// from Topics and from the "*" expansion so it never repeats itself.
const indexTopic = "readme"

// Topics returns the names of all documentation topics, the index excluded.
// The embedded filesystem lists entries in name order, so the result is
// already sorted.
func Topics() ([]string, error) {
	entries, err := topicFiles.ReadDir(".")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".md")
		if name == indexTopic {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// GetTopic returns the markdown content of a single topic.
func GetTopic(name string) (string, error) {
	content, err := topicFiles.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", name, err)
	}
	return string(content), nil
}

// GetTopics concatenates the requested topics into one document. A "*"
// entry expands to every topic.
func GetTopics(names ...string) (string, error) {
	var b strings.Builder
	for _, name := range names {
		if name == "*" {
			all, err := Topics()
			if err != nil {
				return "", err
			}
			expanded, err := GetTopics(all...)
			if err != nil {
				return "", err
			}
			b.WriteString(expanded)
			continue
		}
		content, err := GetTopic(name)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}
