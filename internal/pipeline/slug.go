package pipeline

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// EmptySlug is used for headings whose text has no letters or digits.
const EmptySlug = "section"

// Slugify lower-cases text and turns every run of whitespace or punctuation
// into a single hyphen. Apostrophes are dropped so "What's new" becomes
// "whats-new".
func Slugify(text string) string {
	var sb strings.Builder
	pending := false
	for _, r := range strings.ToLower(text) {
		switch {
		case r == '\'' || r == '’':
		case unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r) || r == '_':
			if pending && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			pending = false
			sb.WriteRune(r)
		default:
			pending = true
		}
	}
	if sb.Len() == 0 {
		return EmptySlug
	}
	return sb.String()
}

// Slugger hands out unique slugs for one document. Repeats of the same text
// get -1, -2, ... suffixes. Not safe for concurrent use.
type Slugger struct {
	counts map[string]int
	used   map[string]struct{}
}

func NewSlugger() *Slugger {
	return &Slugger{
		counts: make(map[string]int),
		used:   make(map[string]struct{}),
	}
}

// Reserve marks id as taken without generating it.
func (s *Slugger) Reserve(id string) {
	s.used[id] = struct{}{}
}

// Slug returns the next unused slug for text.
func (s *Slugger) Slug(text string) string {
	base := Slugify(text)
	n := s.counts[base]
	slug := base
	for {
		if n > 0 {
			slug = base + "-" + strconv.Itoa(n)
		}
		if _, taken := s.used[slug]; !taken {
			break
		}
		n++
	}
	s.counts[base] = n + 1
	s.used[slug] = struct{}{}
	return slug
}

// SlugStage gives every heading without an id one derived from its text.
// Ids already present are kept and never handed out again.
type SlugStage struct{}

func (SlugStage) Name() string { return "slug" }

func (SlugStage) Apply(root *html.Node) error {
	headings := collect(root, isHeading)
	slugger := NewSlugger()
	for _, h := range headings {
		if id, ok := getAttr(h, "id"); ok && id != "" {
			slugger.Reserve(id)
		}
	}
	for _, h := range headings {
		if id, ok := getAttr(h, "id"); ok && id != "" {
			continue
		}
		setAttr(h, "id", slugger.Slug(textContent(h)))
	}
	return nil
}
