package method

type MethodPayload struct {
	Name   string `json:"name" binding:"required"`
	Status string `json:"status" binding:"omitempty,oneof=active inactive"`
}
