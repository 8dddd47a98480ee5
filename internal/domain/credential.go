package domain

// Credential es la única cuenta configurada del sistema. Se carga desde la
// configuración al arrancar y es de solo lectura durante la vida del proceso.
type Credential struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
