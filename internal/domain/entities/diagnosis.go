package entities

// Diagnosis links a patient query and its generated assessment to the
// classified disease and the stored image that triggered the workflow.
type Diagnosis struct {
	ID             int    `json:"id"`
	Query          string `json:"query"`
	Result         string `json:"result"`
	DiseaseID      int    `json:"disease_id"`
	MedicalImageID int    `json:"medical_image_id"`
}

// RelatedDoctor is the projection of a doctor shown alongside a
// diagnosis; contact details stay internal.
type RelatedDoctor struct {
	ID               int              `json:"id"`
	Name             string           `json:"name"`
	Speciality       string           `json:"speciality"`
	Location         string           `json:"location"`
	PracticeSchedule PracticeSchedule `json:"practice_schedule"`
}

// DiagnosisView is the outward shape of a diagnosis: the stored record
// joined with its image path and the doctors of the routed specialty,
// recomputed at read time so roster changes surface immediately.
type DiagnosisView struct {
	ID             int             `json:"id"`
	Path           string          `json:"path"`
	Query          string          `json:"query"`
	Result         string          `json:"result"`
	RelatedDoctors []RelatedDoctor `json:"related_doctors"`
}
