package entities

// Specialty is a hospital polyclinic (poli) such as Kardiologi or Paru.
// The embedding is maintained by the application layer and never leaves
// the backend.
type Specialty struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Embedding   []float32 `json:"-"`
}

// SpecialtyInput carries the writable fields for create calls.
type SpecialtyInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// SpecialtyUpdate is a partial update; nil fields are left untouched.
type SpecialtyUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
