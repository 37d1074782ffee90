package entities

// Disease is a searchable disease record tied to the specialty that
// treats it.
type Disease struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Symptoms    string    `json:"symptoms,omitempty"`
	Treatment   string    `json:"treatment,omitempty"`
	PoliID      int       `json:"poli_id"`
	Embedding   []float32 `json:"-"`
}

// DiseaseInput carries the writable fields for create and update calls.
// Pointer fields on update distinguish "not provided" from "clear".
type DiseaseInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Symptoms    string `json:"symptoms"`
	Treatment   string `json:"treatment"`
	PoliID      int    `json:"poli_id"`
}

// DiseaseUpdate is a partial update; nil fields are left untouched.
type DiseaseUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Symptoms    *string `json:"symptoms"`
	Treatment   *string `json:"treatment"`
	PoliID      *int    `json:"poli_id"`
}
