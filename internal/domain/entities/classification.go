package entities

// DiseaseLabels is the fixed chest X-ray vocabulary, in the exact order
// the vision model emits its logits. Index position matters.
var DiseaseLabels = []string{
	"Atelectasis",
	"Cardiomegaly",
	"Effusion",
	"Infiltration",
	"Mass",
	"Nodule",
	"Pneumonia",
	"Pneumothorax",
	"Consolidation",
	"Edema",
	"Emphysema",
	"Fibrosis",
	"Pleural_Thickening",
	"Hernia",
}

// Classification maps each disease label to its confidence percentage.
type Classification map[string]float64

// TopLabel returns the label with the highest confidence. Ties resolve
// to the earlier label in vocabulary order so results are stable.
func (c Classification) TopLabel() string {
	best := ""
	bestScore := -1.0
	for _, label := range DiseaseLabels {
		score, ok := c[label]
		if !ok {
			continue
		}
		if score > bestScore {
			best = label
			bestScore = score
		}
	}
	return best
}
