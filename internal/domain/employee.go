package domain

// Employee representa un registro de colaborador en la tabla de empleados.
type Employee struct {
	ID            int    `json:"id"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Address       string `json:"address,omitempty"`
	Age           int    `json:"age"`
	Profession    string `json:"profession,omitempty"`
	MaritalStatus string `json:"maritalStatus,omitempty"`
}
