package models

// Diagnosis exists only inside a consultation session. It is never persisted
// directly; at save time it is folded into the Prescription's diagnosis-name
// list and workup-notes map.
type Diagnosis struct {
	Name        string   `json:"name"`
	Probability float64  `json:"probability"`
	Code        string   `json:"code"`
	Workup      []string `json:"workup"`
	Summary     string   `json:"summary"`
	Note        string   `json:"note,omitempty"`
}

// WorkupEntry captures structured diagnostic parameters against a selected
// diagnosis during the workup stage.
type WorkupEntry struct {
	Lab      string `json:"lab"`
	Clinical string `json:"clinical"`
	Imaging  string `json:"imaging"`
	Other    string `json:"other"`
	Notes    string `json:"notes"`
}
