package models

// Emergency представляет зарегистрированное чрезвычайное происшествие.
// Идентификатор назначается клиентом (например, "EMG001") и неизменяем.
type Emergency struct {
	ID           string   `json:"id"`
	Type         string   `json:"type"`
	Location     string   `json:"location"`
	Time         string   `json:"time"`
	Status       string   `json:"status"`
	Description  string   `json:"description"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	TriageStatus *string  `json:"triage_status"`
}
