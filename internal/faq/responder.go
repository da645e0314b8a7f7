package faq

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTopic is returned when a topic label is not in the FAQ
var ErrUnknownTopic = errors.New("unknown FAQ topic")

// Rule pairs a predicate over the lower-cased question with the entry it answers
type Rule struct {
	Entry
	Match func(lowerQuestion string) bool
}

// Responder evaluates its rules in order; the first matching rule wins.
type Responder struct {
	rules    []Rule
	fallback string
}

// NewResponder builds a responder over the given entries using first-word keyword rules
func NewResponder(entries []Entry, fallback string) *Responder {
	rules := make([]Rule, 0, len(entries))
	for _, e := range entries {
		rules = append(rules, KeywordRule(e))
	}
	return &Responder{rules: rules, fallback: fallback}
}

// DefaultResponder returns the responder over the built-in FAQ
func DefaultResponder() *Responder {
	return NewResponder(Entries, Fallback)
}

// KeywordRule matches when the question contains the first word of the topic, ignoring case.
func KeywordRule(e Entry) Rule {
	keyword := strings.ToLower(strings.Split(e.Topic, " ")[0])
	return Rule{
		Entry: e,
		Match: func(q string) bool { return strings.Contains(q, keyword) },
	}
}

// Match returns the entry of the first rule matching the question
func (r *Responder) Match(question string) (Entry, bool) {
	q := strings.ToLower(question)
	for _, rule := range r.rules {
		if rule.Match(q) {
			return rule.Entry, true
		}
	}
	return Entry{}, false
}

// Answer returns the canned answer for a free-text question, or the fallback message
func (r *Responder) Answer(question string) string {
	if e, ok := r.Match(question); ok {
		return e.Answer
	}
	return r.fallback
}

// Topics returns the topic labels in display order
func (r *Responder) Topics() []string {
	topics := make([]string, 0, len(r.rules))
	for _, rule := range r.rules {
		topics = append(topics, rule.Topic)
	}
	return topics
}

// Topic returns the answer attached to a topic label (tag click)
func (r *Responder) Topic(label string) (string, error) {
	for _, rule := range r.rules {
		if rule.Topic == label {
			return rule.Answer, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTopic, label)
}
