package entities

// PracticeSchedule maps day names to working-hour strings, stored as a
// JSON column so clinics can use arbitrary day labels.
type PracticeSchedule map[string]string

// Doctor is a practitioner profile attached to a specialty.
type Doctor struct {
	ID               int              `json:"id"`
	Name             string           `json:"name"`
	Profile          string           `json:"profile,omitempty"`
	Speciality       string           `json:"speciality,omitempty"`
	ContactInfo      string           `json:"contact_info,omitempty"`
	Location         string           `json:"location,omitempty"`
	PracticeSchedule PracticeSchedule `json:"practice_schedule,omitempty"`
	PoliID           int              `json:"poli_id"`
	Embedding        []float32        `json:"-"`
}

// DoctorInput carries the writable fields for create calls.
type DoctorInput struct {
	Name             string           `json:"name"`
	Profile          string           `json:"profile"`
	Speciality       string           `json:"speciality"`
	ContactInfo      string           `json:"contact_info"`
	Location         string           `json:"location"`
	PracticeSchedule PracticeSchedule `json:"practice_schedule"`
	PoliID           int              `json:"poli_id"`
}

// DoctorUpdate is a partial update; nil fields are left untouched.
type DoctorUpdate struct {
	Name             *string           `json:"name"`
	Profile          *string           `json:"profile"`
	Speciality       *string           `json:"speciality"`
	ContactInfo      *string           `json:"contact_info"`
	Location         *string           `json:"location"`
	PracticeSchedule *PracticeSchedule `json:"practice_schedule"`
	PoliID           *int              `json:"poli_id"`
}
