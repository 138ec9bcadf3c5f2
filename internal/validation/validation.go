// Package validation aggregates field-level problems so a single load reports
// every issue at once.
package validation

import (
	"fmt"
	"strings"
)

// Issue is one problem with a named field.
type Issue struct {
	Field   string
	Message string
}

// Error reports every issue found while validating a subject such as
// "config" or "question set".
type Error struct {
	Subject string
	Issues  []Issue
}

func (err *Error) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("%s validation failed: %s", err.Subject, strings.Join(parts, "; "))
}

// Has reports whether an issue was recorded for field.
func (err *Error) Has(field string) bool {
	if err == nil {
		return false
	}
	for _, issue := range err.Issues {
		if issue.Field == field {
			return true
		}
	}
	return false
}

// AddFunc records an issue; validators for nested sections receive one.
type AddFunc func(field, message string)

// Collector accumulates issues for one subject.
type Collector struct {
	subject string
	issues  []Issue
}

func NewCollector(subject string) *Collector {
	return &Collector{subject: subject}
}

func (c *Collector) Add(field, message string) {
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}

// Result returns an *Error when any issue was recorded, nil otherwise.
func (c *Collector) Result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &Error{Subject: c.subject, Issues: c.issues}
}
