package matching

import (
	"regexp"
	"strings"
)

var (
	replyMarkers    = []string{"expert reply:", "answer:"}
	metadataMarkers = []string{"asked by", "question id", "-#"}
	listLabels      = []string{"players:", "recently discussed:", "mentioned:"}

	teamAnnotation = regexp.MustCompile(`\([^)]*\)`)
)

// MessageSections is a posted message split around its reply and metadata
// markers. Markdown emphasis is removed.
type MessageSections struct {
	Question string
	Reply    string
	Metadata string
	HasReply bool
}

// Body is everything except the metadata section.
func (s MessageSections) Body() string {
	if s.Reply == "" {
		return s.Question
	}
	return s.Question + "\n" + s.Reply
}

// SplitMessage locates the first reply marker and the first metadata line
// after it. Without a reply marker the whole body is the question section.
func SplitMessage(content string) MessageSections {
	clean := strings.NewReplacer("*", "", "__", "").Replace(content)

	replyStart, replyEnd := -1, -1
	for _, marker := range replyMarkers {
		if idx := indexFold(clean, marker); idx >= 0 && (replyStart < 0 || idx < replyStart) {
			replyStart, replyEnd = idx, idx+len(marker)
		}
	}

	bodyEnd := 0
	if replyEnd > 0 {
		bodyEnd = replyEnd
	}
	metaStart := metadataLine(clean, bodyEnd)

	var sections MessageSections
	if metaStart >= 0 {
		sections.Metadata = strings.TrimSpace(clean[metaStart:])
	} else {
		metaStart = len(clean)
	}

	if replyStart < 0 {
		sections.Question = strings.TrimSpace(clean[:metaStart])
		return sections
	}

	sections.HasReply = true
	sections.Question = strings.TrimSpace(clean[:replyStart])
	sections.Reply = strings.TrimSpace(clean[replyEnd:metaStart])
	return sections
}

// StructuredNames returns the normalized names listed on labelled lines such
// as "Players: Juan Soto (SD), Aaron Judge".
func StructuredNames(text string) []string {
	var names []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimLeft(strings.TrimSpace(line), "->•* ")
		rest, ok := trimLabel(line)
		if !ok {
			continue
		}
		rest = teamAnnotation.ReplaceAllString(rest, " ")
		for _, item := range strings.FieldsFunc(rest, func(r rune) bool { return r == ',' || r == ';' }) {
			if name := Plain(item); name != "" {
				names = append(names, name)
			}
		}
	}
	return names
}

func trimLabel(line string) (string, bool) {
	for _, label := range listLabels {
		if len(line) >= len(label) && strings.EqualFold(line[:len(label)], label) {
			return line[len(label):], true
		}
	}
	return "", false
}

// metadataLine returns the byte offset of the first line at or after from
// that starts with a metadata marker, or -1.
func metadataLine(text string, from int) int {
	offset := 0
	for _, line := range strings.SplitAfter(text, "\n") {
		start := offset
		offset += len(line)
		if offset <= from {
			continue
		}
		trimmed := strings.TrimSpace(line)
		for _, marker := range metadataMarkers {
			if len(trimmed) >= len(marker) && strings.EqualFold(trimmed[:len(marker)], marker) {
				if start < from {
					return from
				}
				return start
			}
		}
	}
	return -1
}

// indexFold is a case-insensitive strings.Index for ASCII markers.
func indexFold(s, marker string) int {
	for i := 0; i+len(marker) <= len(s); i++ {
		if strings.EqualFold(s[i:i+len(marker)], marker) {
			return i
		}
	}
	return -1
}
