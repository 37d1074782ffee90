package entities

// MedicalImage is a stored radiology upload with the classifier label
// and the specialty routing derived from it.
type MedicalImage struct {
	ID        int    `json:"id"`
	Path      string `json:"path"`
	Label     string `json:"label"`
	PatientID int    `json:"patient_id"`
	PoliID    int    `json:"poli_id"`
}
