package models

// FieldUpdateRequest is a partial update of the scalar form fields.
// Nil fields are left untouched.
type FieldUpdateRequest struct {
	Honeypot           *string `json:"website_url,omitempty"`
	Name               *string `json:"name,omitempty" binding:"omitempty,max=200"`
	Email              *string `json:"email,omitempty" binding:"omitempty,max=320"`
	Phone              *string `json:"phone,omitempty" binding:"omitempty,max=50"`
	Description        *string `json:"description,omitempty" binding:"omitempty,max=4000"`
	PresentationType   *string `json:"presentation_type,omitempty" binding:"omitempty,catalog=presentation"`
	DontWant           *string `json:"dont_want,omitempty" binding:"omitempty,max=4000"`
	Goal               *string `json:"goal,omitempty" binding:"omitempty,catalog=goal"`
	AdditionalComments *string `json:"additional_comments,omitempty" binding:"omitempty,max=4000"`
	GDPRConsent        *bool   `json:"gdpr_consent,omitempty"`
}

// ServiceTextRequest sets the label of a service entry.
type ServiceTextRequest struct {
	Text string `json:"text" binding:"max=300"`
}

// SocialLinkRequest sets the value of a social link entry.
type SocialLinkRequest struct {
	URL string `json:"url" binding:"omitempty,max=500"`
}

// ErrorResponse is returned for every non-2xx response.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Message string   `json:"message,omitempty"`
	Fields  []string `json:"fields,omitempty"`
}
