package domain

import (
	"regexp"
	"strings"
)

// Contact holds best-guess contact fields mined from raw resume text.
// All fields are optional; an empty field means no confident match.
type Contact struct {
	Email string
	Phone string
}

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`(\+?\d{1,3}[\s\-.]?)?(\(?\d{2,4}\)?[\s\-.]?)?\d{3,4}[\s\-.]?\d{4}`)
)

// Common skill keywords looked up case-insensitively in resume text.
// Deliberately short; the backend owns real skill extraction and this
// only fills gaps it left.
var skillKeywords = []string{
	"go", "golang", "python", "java", "javascript", "typescript",
	"react", "vue", "angular", "node.js", "c++", "c#", "rust",
	"sql", "postgresql", "mysql", "mongodb", "redis",
	"docker", "kubernetes", "aws", "gcp", "azure", "terraform",
	"linux", "git", "ci/cd", "rest", "grpc", "graphql",
	"machine learning", "data analysis", "agile", "scrum",
}

// ExtractContact mines raw text for an email address and phone number.
// Best-effort and side-effect free: absence of a match leaves the field
// empty, and no input can make it fail.
func ExtractContact(text string) Contact {
	var c Contact
	if m := emailPattern.FindString(text); m != "" {
		c.Email = m
	}
	if m := phonePattern.FindString(text); len(strings.Trim(m, " -.")) >= 8 {
		c.Phone = strings.TrimSpace(m)
	}
	return c
}

// ExtractHighlights returns up to max bullet-like lines from raw text.
// A line counts as bullet-like when it starts with a list marker or
// reads like a short achievement sentence.
func ExtractHighlights(text string, max int) []string {
	if max <= 0 {
		return nil
	}

	var highlights []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !isBulletLine(line) {
			continue
		}
		line = strings.TrimLeft(line, "-*•·> \t")
		line = strings.TrimSpace(line)
		if len(line) < 10 || len(line) > 200 {
			continue
		}
		highlights = append(highlights, line)
		if len(highlights) >= max {
			break
		}
	}
	return highlights
}

// isBulletLine reports whether a trimmed line looks like a list item.
func isBulletLine(line string) bool {
	for _, prefix := range []string{"-", "*", "•", "·", ">"} {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	// "1. Shipped the thing" style enumerations.
	if len(line) > 2 && line[0] >= '0' && line[0] <= '9' && (line[1] == '.' || line[1] == ')') {
		return true
	}
	return false
}

// ExtractSkills returns the known skill keywords present in the text,
// in keyword-table order, without duplicates.
func ExtractSkills(text string) []string {
	lower := strings.ToLower(text)
	var skills []string
	for _, kw := range skillKeywords {
		if containsWord(lower, kw) {
			skills = append(skills, kw)
		}
	}
	return skills
}

// containsWord checks for kw in text bounded by non-alphanumeric runes,
// so "go" does not match "google".
func containsWord(text, kw string) bool {
	idx := 0
	for {
		i := strings.Index(text[idx:], kw)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(kw)
		beforeOK := start == 0 || !isAlnum(text[start-1])
		afterOK := end == len(text) || !isAlnum(text[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isAlnum(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
