package services

import (
	"fmt"
	"strconv"
	"strings"

	"client-intake-backend/internal/models"
	"client-intake-backend/internal/wizard"
)

// Placeholder texts used when a field is empty or an upload did not succeed.
const (
	textNotProvided    = "Not provided"
	textNoComments     = "No additional comments"
	textNoItems        = "No items added"
	textNoSocialLinks  = "No social links added"
	textNoneSelected   = "None selected"
	textNotUploaded    = "Not uploaded"
	textUploaded       = "Uploaded"
	textConsentGiven   = "Yes"
	textConsentMissing = "No"
)

// AdminParams builds the template variables of the internal notification:
// every field plus the raw upload links and consent status.
func AdminParams(form models.FormState, logoURL string, photoURLs, serviceURLs []string, styleURL, submittedAt string) map[string]string {
	return map[string]string{
		"name":               form.Name,
		"email":              form.Email,
		"phone":              orDefault(form.Phone, textNotProvided),
		"description":        form.Description,
		"additionalComments": orDefault(form.AdditionalComments, textNoComments),
		"gdprConsentText":    consentText(form.GDPRConsent),
		"presentationType":   presentationLabel(form.PresentationType),
		"services":           servicesList(form.Services, serviceURLs),
		"goal":               models.Label(models.GoalOptions, form.Goal),
		"contactMethods":     labelList(models.ContactMethodOptions, form.ContactMethods),
		"moods":              labelList(models.MoodOptions, form.Moods),
		"socialLinks":        socialList(form.SocialLinks),
		"dontWant":           orDefault(form.DontWant, textNotProvided),
		"logo":               linkInfo(logoURL),
		"photos":             photosInfo(photoURLs),
		"styleReference":     linkInfo(styleURL),
		"fileCount":          fmt.Sprintf("%d / %d", form.FileCount(), wizard.MaxFiles),
		"submission_time":    submittedAt,
	}
}

// CustomerParams builds the confirmation sent to the submitter. to_email
// addresses the message for providers that route by template variable.
func CustomerParams(form models.FormState, submittedAt string) map[string]string {
	return map[string]string{
		"name":               form.Name,
		"email":              form.Email,
		"to_email":           form.Email,
		"phone":              orDefault(form.Phone, textNotProvided),
		"description":        form.Description,
		"presentationType":   presentationLabel(form.PresentationType),
		"services":           servicesList(form.Services, nil),
		"goal":               models.Label(models.GoalOptions, form.Goal),
		"contactMethods":     labelList(models.ContactMethodOptions, form.ContactMethods),
		"moods":              labelList(models.MoodOptions, form.Moods),
		"socialLinks":        socialList(form.SocialLinks),
		"logoStatus":         logoStatus(form.Logo != nil),
		"photoCount":         photoCount(len(form.Photos)),
		"additionalComments": orDefault(form.AdditionalComments, textNotProvided),
		"submission_time":    submittedAt,
	}
}

func presentationLabel(id string) string {
	if id == "" {
		return textNoneSelected
	}
	return models.Label(models.PresentationOptions, id)
}

func consentText(given bool) string {
	if given {
		return textConsentGiven
	}
	return textConsentMissing
}

func servicesList(services []models.ServiceItem, imageURLs []string) string {
	var lines []string
	n := 0
	for i, s := range services {
		if strings.TrimSpace(s.Text) == "" {
			continue
		}
		n++
		line := strconv.Itoa(n) + ". " + s.Text
		if i < len(imageURLs) && imageURLs[i] != "" {
			line += "\n   " + imageURLs[i]
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return textNoItems
	}
	return strings.Join(lines, "\n")
}

func socialList(links []string) string {
	links = nonBlank(links)
	if len(links) == 0 {
		return textNoSocialLinks
	}
	return strings.Join(links, "\n")
}

func labelList(options []models.Option, ids []string) string {
	if len(ids) == 0 {
		return textNoneSelected
	}
	labels := make([]string, len(ids))
	for i, id := range ids {
		labels[i] = models.Label(options, id)
	}
	return strings.Join(labels, ", ")
}

func linkInfo(url string) string {
	if url == "" {
		return textNotUploaded
	}
	return textUploaded + ":\n   " + url
}

func photosInfo(urls []string) string {
	uploaded := nonBlank(urls)
	if len(uploaded) == 0 {
		return textNotUploaded
	}
	lines := make([]string, 0, len(uploaded)+1)
	lines = append(lines, fmt.Sprintf("%d photos:", len(uploaded)))
	for i, u := range uploaded {
		lines = append(lines, fmt.Sprintf("   %d. %s", i+1, u))
	}
	return strings.Join(lines, "\n")
}

func logoStatus(attached bool) string {
	if attached {
		return textUploaded
	}
	return textNotUploaded
}

func photoCount(n int) string {
	if n == 0 {
		return textNotUploaded
	}
	return fmt.Sprintf("%d photos", n)
}
