package requests

import "pulseflow-service/internal/app/models"

type CreatePatient struct {
	Name            string        `json:"name" validate:"required,min=2,max=100"`
	Age             int           `json:"age" validate:"gte=0,lte=130"`
	Gender          string        `json:"gender" validate:"required,oneof=male female other"`
	Contact         string        `json:"contact" validate:"max=30"`
	ChiefComplaints string        `json:"chiefComplaints"`
	History         string        `json:"history"`
	Vitals          *models.Vitals `json:"vitals"`
	LocationID      string        `json:"locationId"`
	DoctorID        string        `json:"doctorId"`
	VisitTag        string        `json:"visitTag"`
	// UHID is optional; when empty the atomic counter assigns the next one.
	UHID string `json:"uhid" validate:"uhid"`
}

type UpdatePatient struct {
	Name            *string        `json:"name,omitempty"`
	Age             *int           `json:"age,omitempty" validate:"omitempty,gte=0,lte=130"`
	Gender          *string        `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	Contact         *string        `json:"contact,omitempty"`
	ChiefComplaints *string        `json:"chiefComplaints,omitempty"`
	History         *string        `json:"history,omitempty"`
	DoctorNotes     *string        `json:"doctorNotes,omitempty"`
	Vitals          *models.Vitals `json:"vitals,omitempty"`
	LocationID      *string        `json:"locationId,omitempty"`
	DoctorID        *string        `json:"doctorId,omitempty"`
	VisitTag        *string        `json:"visitTag,omitempty"`
	Status          *string        `json:"status,omitempty" validate:"omitempty,encounterstatus"`
}

type UpdatePatientStatus struct {
	Status string `json:"status" validate:"required,encounterstatus"`
}
