package models

// FileAsset is an attached file held inline as a data URL until submission.
type FileAsset struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	Type string `json:"type"`
	Data string `json:"data"`
}

// ServiceItem is one entry of the services/products/case-studies list.
type ServiceItem struct {
	Text  string     `json:"text"`
	Image *FileAsset `json:"image,omitempty"`
}

// FormState is the full intake payload accumulated across the wizard steps.
type FormState struct {
	// Honeypot is never shown to humans; any value marks the submission as spam.
	Honeypot string `json:"honeypot"`

	// Step 1
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Description string `json:"description"`

	// Step 2
	PresentationType string        `json:"presentation_type"`
	Services         []ServiceItem `json:"services"`

	// Step 3
	Logo        *FileAsset  `json:"logo,omitempty"`
	Photos      []FileAsset `json:"photos"`
	SocialLinks []string    `json:"social_links"`

	// Step 4
	Moods          []string   `json:"moods"`
	StyleReference *FileAsset `json:"style_reference,omitempty"`
	DontWant       string     `json:"dont_want"`

	// Step 5
	Goal           string   `json:"goal"`
	ContactMethods []string `json:"contact_methods"`

	// Step 6
	AdditionalComments string `json:"additional_comments"`
	GDPRConsent        bool   `json:"gdpr_consent"`
}

// FileCount returns the number of attached files across every slot.
func (f *FormState) FileCount() int {
	count := len(f.Photos)
	if f.Logo != nil {
		count++
	}
	if f.StyleReference != nil {
		count++
	}
	for _, s := range f.Services {
		if s.Image != nil {
			count++
		}
	}
	return count
}

// Clone returns a deep copy of the form.
func (f FormState) Clone() FormState {
	out := f
	out.Logo = cloneAsset(f.Logo)
	out.StyleReference = cloneAsset(f.StyleReference)
	out.Photos = append([]FileAsset(nil), f.Photos...)
	out.SocialLinks = append([]string(nil), f.SocialLinks...)
	out.Moods = append([]string(nil), f.Moods...)
	out.ContactMethods = append([]string(nil), f.ContactMethods...)
	if f.Services != nil {
		out.Services = make([]ServiceItem, len(f.Services))
		for i, s := range f.Services {
			out.Services[i] = ServiceItem{Text: s.Text, Image: cloneAsset(s.Image)}
		}
	}
	return out
}

func cloneAsset(a *FileAsset) *FileAsset {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}

// Option is a catalog entry: a stable id plus the label shown to people.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

const (
	PresentationServices    = "services"
	PresentationProducts    = "products"
	PresentationCaseStudies = "case_studies"
	PresentationSimple      = "simple"

	GoalContact      = "contact"
	GoalSocialFollow = "social_follow"
	GoalSimpleInfo   = "simple_info"

	ContactEmail = "email"
	ContactPhone = "phone"
)

var PresentationOptions = []Option{
	{ID: PresentationServices, Label: "Services"},
	{ID: PresentationProducts, Label: "Products"},
	{ID: PresentationCaseStudies, Label: "Case Studies"},
	{ID: PresentationSimple, Label: "Simple Presentation"},
}

var GoalOptions = []Option{
	{ID: GoalContact, Label: "Contact"},
	{ID: GoalSocialFollow, Label: "Follow on Social"},
	{ID: GoalSimpleInfo, Label: "Simple Information"},
}

var MoodOptions = []Option{
	{ID: "calm", Label: "Calm"},
	{ID: "modern", Label: "Modern"},
	{ID: "professional", Label: "Professional"},
	{ID: "friendly", Label: "Friendly"},
	{ID: "minimal", Label: "Minimal"},
	{ID: "dynamic", Label: "Dynamic"},
}

var ContactMethodOptions = []Option{
	{ID: ContactEmail, Label: "Email"},
	{ID: ContactPhone, Label: "Phone"},
}

// LookupOption returns the catalog entry with the given id.
func LookupOption(options []Option, id string) (Option, bool) {
	for _, o := range options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// Label resolves an id to its label, falling back to the id itself.
func Label(options []Option, id string) string {
	if o, ok := LookupOption(options, id); ok {
		return o.Label
	}
	return id
}
