package wizard

import (
	"regexp"
	"strings"

	"client-intake-backend/internal/models"
)

var emailRegex = regexp.MustCompile(`^(([^<>()\[\]\\.,;:\s@"]+(\.[^<>()\[\]\\.,;:\s@"]+)*)|(".+"))@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`)

// ValidEmail reports whether s looks like a deliverable address.
func ValidEmail(s string) bool {
	return emailRegex.MatchString(strings.ToLower(s))
}

// Prompt identifiers surfaced to the client as advisory nudges.
const (
	PromptPhoneMissing      = "phone_missing"
	PromptSocialLinkMissing = "social_link_missing"
)

// MissingFields lists what keeps the given step from being valid.
// Steps 3 and 4 never block.
func MissingFields(step int, f *models.FormState) []string {
	var missing []string
	switch step {
	case 1:
		if isBlank(f.Name) {
			missing = append(missing, "name")
		}
		if isBlank(f.Email) || !ValidEmail(f.Email) {
			missing = append(missing, "email")
		}
		if isBlank(f.Description) {
			missing = append(missing, "description")
		}
	case 2:
		if f.PresentationType == "" {
			missing = append(missing, "presentation_type")
		}
	case 5:
		if f.Goal == "" {
			missing = append(missing, "goal")
		}
		if len(f.ContactMethods) == 0 {
			missing = append(missing, "contact_methods")
		}
	case 6:
		if !f.GDPRConsent {
			missing = append(missing, "gdpr_consent")
		}
	}
	return missing
}

// StepValid reports whether the given step may be left forward.
func StepValid(step int, f *models.FormState) bool {
	return len(MissingFields(step, f)) == 0
}

// Prompts computes the advisory nudges for the form. They never gate advancing.
func Prompts(f *models.FormState) []string {
	var prompts []string
	if contains(f.ContactMethods, models.ContactPhone) && isBlank(f.Phone) {
		prompts = append(prompts, PromptPhoneMissing)
	}
	if f.Goal == models.GoalSocialFollow && len(NonBlank(f.SocialLinks)) == 0 {
		prompts = append(prompts, PromptSocialLinkMissing)
	}
	return prompts
}

// NonBlank drops empty and whitespace-only entries.
func NonBlank(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !isBlank(v) {
			out = append(out, v)
		}
	}
	return out
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
