package entities

// Document sources used when assembling generation context.
const (
	SourcePoli    = "poli"
	SourceDisease = "disease"
	SourceDoctor  = "doctor"
)

// DoctorDetail carries the structured doctor fields a retrieved doctor
// document was rendered from, so downstream consumers never have to
// re-parse the rendered text.
type DoctorDetail struct {
	Speciality       string           `json:"speciality"`
	Location         string           `json:"location"`
	PracticeSchedule PracticeSchedule `json:"practice_schedule"`
}

// DocumentMetadata identifies the row a retrieved document came from and
// how near it was to the query embedding.
type DocumentMetadata struct {
	ID       int           `json:"id"`
	Name     string        `json:"name"`
	Distance float64       `json:"distance"`
	Doctor   *DoctorDetail `json:"doctor,omitempty"`
}

// RetrievedDocument is one rendered knowledge snippet produced by
// similarity search, ready for context assembly.
type RetrievedDocument struct {
	Source   string           `json:"source"`
	Content  string           `json:"content"`
	Metadata DocumentMetadata `json:"metadata"`
}
