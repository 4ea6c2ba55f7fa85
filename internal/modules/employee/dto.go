package employee

type EmployeePayload struct {
	Name           string `json:"name" binding:"required"`
	Role           string `json:"role" binding:"required,oneof=admin cashier mechanic"`
	Phone          string `json:"phone" binding:"required"`
	Status         string `json:"status" binding:"omitempty,oneof=active inactive"`
	Specialization string `json:"specialization"`
}

type exportRow struct {
	ID             int64  `csv:"ID"`
	Name           string `csv:"Nama"`
	Role           string `csv:"Posisi"`
	Phone          string `csv:"Telepon"`
	Status         string `csv:"Status"`
	Specialization string `csv:"Spesialisasi"`
}
