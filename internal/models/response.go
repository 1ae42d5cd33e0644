package models

import "time"

// WizardState describes where a session is in the flow.
type WizardState struct {
	Phase      string   `json:"phase"`
	Step       int      `json:"step"`
	TotalSteps int      `json:"total_steps"`
	StepValid  bool     `json:"step_valid"`
	Prompts    []string `json:"prompts,omitempty"`
	FileCount  int      `json:"file_count"`
	MaxFiles   int      `json:"max_files"`
}

type WizardResponse struct {
	State WizardState `json:"state"`
	Form  FormState   `json:"form"`
}

type SessionResponse struct {
	SessionID string      `json:"session_id"`
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	State     WizardState `json:"state"`
}

type FileUploadResponse struct {
	Slot    string          `json:"slot"`
	Files   []FileInfo      `json:"files"`
	Errors  []FileErrorInfo `json:"errors,omitempty"`
	State   WizardState     `json:"state"`
	Notices []string        `json:"notices,omitempty"`
}

type FileInfo struct {
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	Type     string `json:"type"`
}

type FileErrorInfo struct {
	Filename string `json:"filename"`
	Error    string `json:"error"`
}

type SubmitResponse struct {
	Status      string      `json:"status"`
	SubmittedAt time.Time   `json:"submitted_at"`
	State       WizardState `json:"state"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
