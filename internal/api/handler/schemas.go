package handler

// errorResponse is the standard error envelope returned on 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// submissionResponse acknowledges an accepted public submission.
type submissionResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
	Message string `json:"message,omitempty"`
}

// --- Public submission requests ---

type appointmentRequest struct {
	FullName      string `json:"full_name"      validate:"required,min=2"`
	Email         string `json:"email"          validate:"required,email"`
	Phone         string `json:"phone"          validate:"required,min=10"`
	ServiceType   string `json:"service_type"   validate:"required"`
	PreferredDate string `json:"preferred_date" validate:"required"`
	PreferredTime string `json:"preferred_time" validate:"required"`
	Message       string `json:"message"        validate:"required,min=10"`
}

// applicationRequest carries the multipart form fields of a career
// application; the resume file part travels separately.
type applicationRequest struct {
	FullName    string `form:"full_name"    validate:"required,min=2"`
	Email       string `form:"email"        validate:"required,email"`
	Phone       string `form:"phone"        validate:"required,min=10"`
	Position    string `form:"position"     validate:"required"`
	CoverLetter string `form:"cover_letter" validate:"omitempty,max=5000"`
}

type contactRequest struct {
	FullName string `json:"full_name" validate:"required,min=2"`
	Email    string `json:"email"     validate:"required,email"`
	Phone    string `json:"phone"     validate:"omitempty,min=10"`
	Subject  string `json:"subject"   validate:"omitempty,max=200"`
	Message  string `json:"message"   validate:"required,min=10"`
}

// --- Admin requests ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type statusUpdateRequest struct {
	Status string `json:"status" validate:"required"`
}

type replyRequest struct {
	Reply string `json:"reply" validate:"required"`
}
