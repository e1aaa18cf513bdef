package models

import "time"

// Patient is one visit-scoped encounter record. A person may have several
// encounters over time sharing a UHID; each has its own id and status.
type Patient struct {
	ID              string    `json:"id" bson:"_id"`
	UHID            string    `json:"uhid" bson:"uhid"`
	Name            string    `json:"name" bson:"name"`
	Age             int       `json:"age" bson:"age"`
	Gender          string    `json:"gender" bson:"gender"`
	Contact         string    `json:"contact" bson:"contact"`
	ChiefComplaints string    `json:"chiefComplaints" bson:"chief_complaints"`
	History         string    `json:"history" bson:"history"`
	DoctorNotes     string    `json:"doctorNotes" bson:"doctor_notes"`
	Vitals          Vitals    `json:"vitals" bson:"vitals"`
	LocationID      string    `json:"locationId" bson:"location_id"`
	DoctorID        string    `json:"doctorId" bson:"doctor_id"`
	VisitTag        string    `json:"visitTag" bson:"visit_tag"`
	Status          string    `json:"status" bson:"status"`
	CreatedAt       time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" bson:"updated_at"`
}

type Vitals struct {
	HR   int    `json:"hr" bson:"hr"`
	BP   string `json:"bp" bson:"bp"`
	RR   int    `json:"rr" bson:"rr"`
	TP   int    `json:"tp" bson:"tp"`
	SPO2 int    `json:"spo2" bson:"spo2"`
}

// DefaultVitals are stamped onto new encounters created without measurements.
func DefaultVitals() Vitals {
	return Vitals{HR: 0, BP: "", RR: 0, TP: 0, SPO2: 0}
}
