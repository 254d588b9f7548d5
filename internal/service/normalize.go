package service

import (
	"strings"
	"unicode/utf8"

	dom "Tasker/internal/domain"
)

// normalizeCreate trims the raw create input and checks it against the entity
// constraints. A description that is blank after trimming becomes unset.
func normalizeCreate(title, description string) (string, *string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", nil, dom.NewValidationError("title", "required")
	}
	if utf8.RuneCountInString(title) > dom.MaxTitleLen {
		return "", nil, dom.NewValidationError("title", "must be at most 100 characters")
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return title, nil, nil
	}
	if utf8.RuneCountInString(description) > dom.MaxDescriptionLen {
		return "", nil, dom.NewValidationError("description", "must be at most 500 characters")
	}
	return title, &description, nil
}

// normalizeUpdate trims whatever fields the patch carries. The "at least one
// field" check runs on field presence, before per-field rules: a blank title
// still counts as a supplied field and then fails its own rule.
func normalizeUpdate(patch dom.TodoPatch) (dom.TodoPatch, error) {
	if patch.Empty() {
		return dom.TodoPatch{}, dom.NewValidationError("", "at least one field required")
	}

	out := dom.TodoPatch{Completed: patch.Completed}

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return dom.TodoPatch{}, dom.NewValidationError("title", "cannot be empty")
		}
		if utf8.RuneCountInString(title) > dom.MaxTitleLen {
			return dom.TodoPatch{}, dom.NewValidationError("title", "must be at most 100 characters")
		}
		out.Title = &title
	}

	if patch.DescriptionSet {
		out.DescriptionSet = true
		if patch.Description != nil {
			desc := strings.TrimSpace(*patch.Description)
			if utf8.RuneCountInString(desc) > dom.MaxDescriptionLen {
				return dom.TodoPatch{}, dom.NewValidationError("description", "must be at most 500 characters")
			}
			if desc != "" {
				out.Description = &desc
			}
			// blank description clears it: set stays, value stays nil
		}
	}

	return out, nil
}
