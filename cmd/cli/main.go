package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"datosempleado/internal/client"
	"datosempleado/internal/domain"
)

func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	baseURL := os.Getenv("API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	tokenPath, err := client.DefaultTokenPath()
	if err != nil {
		log.Fatal(err)
	}

	api := client.New(baseURL)
	state, err := client.NewState(api, client.NewTokenStore(tokenPath))
	if err != nil {
		log.Fatal(err)
	}

	for {
		if !state.Authenticated() {
			if !loginFlow(ctx, reader, state) {
				return
			}
			continue
		}

		if err := state.LoadPage(ctx); err != nil {
			if errors.Is(err, client.ErrUnauthorized) {
				fmt.Println("Sesión vencida. Iniciá sesión de nuevo.")
				continue
			}
			log.Fatalf("cargar registros: %v", err)
		}

		renderTable(state)
		fmt.Printf("Página %d de %d (%d registros)\n", state.Page, state.TotalPages, state.Total)
		fmt.Println("[N] Siguiente  [P] Anterior  [C] Crear  [E] Editar  [D] Eliminar  [R] Riesgo  [L] Cerrar sesión  [Q] Salir")
		fmt.Print("Opción: ")

		choice, _ := reader.ReadString('\n')
		choice = strings.ToUpper(strings.TrimSpace(choice))

		var opErr error
		switch choice {
		case "N":
			opErr = state.NextPage(ctx)
		case "P":
			opErr = state.PrevPage(ctx)
		case "C":
			state.CancelEdit()
			fillForm(reader, state)
			opErr = state.Submit(ctx)
		case "E":
			emp, ok := pickRecord(reader, state, "Id a editar: ")
			if !ok {
				continue
			}
			state.StartEdit(emp)
			fillForm(reader, state)
			opErr = state.Submit(ctx)
		case "D":
			emp, ok := pickRecord(reader, state, "Id a eliminar: ")
			if !ok {
				continue
			}
			opErr = state.Delete(ctx, emp.ID)
		case "R":
			emp, ok := pickRecord(reader, state, "Id a consultar: ")
			if !ok {
				continue
			}
			fmt.Printf("%s %s: %s\n", emp.FirstName, emp.LastName, client.RiskAdvisory(emp.Age))
		case "L":
			if err := state.Logout(); err != nil {
				log.Fatalf("cerrar sesión: %v", err)
			}
		case "Q":
			return
		default:
			fmt.Println("Opción inválida.")
		}

		if opErr != nil {
			switch {
			case errors.Is(opErr, client.ErrUnauthorized):
				fmt.Println("Sesión vencida. Iniciá sesión de nuevo.")
			case errors.Is(opErr, client.ErrNotFound):
				fmt.Println("Registro no encontrado.")
			case errors.Is(opErr, client.ErrValidation):
				fmt.Println("Faltan campos obligatorios: nombre, apellido y edad.")
			default:
				fmt.Printf("Error: %v\n", opErr)
			}
		}
	}
}

// loginFlow pide credenciales hasta lograr una sesión. Devuelve false si el
// usuario decide salir.
func loginFlow(ctx context.Context, reader *bufio.Reader, state *client.State) bool {
	fmt.Println("===== Iniciar Sesión =====")
	fmt.Print("Usuario (vacío para salir): ")
	username, _ := reader.ReadString('\n')
	username = strings.TrimSpace(username)
	if username == "" {
		return false
	}

	fmt.Print("Contraseña: ")
	passwordBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		log.Fatalf("leer contraseña: %v", err)
	}

	if err := state.Login(ctx, username, string(passwordBytes)); err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			fmt.Println("Usuario o contraseña incorrectos.")
		} else {
			fmt.Printf("Error: %v\n", err)
		}
	}
	return true
}

// renderTable imprime la página actual de registros.
func renderTable(state *client.State) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNombre\tApellido\tDirección\tEdad\tProfesión\tEstado civil")
	for _, emp := range state.Records {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\t%s\n",
			emp.ID, emp.FirstName, emp.LastName, emp.Address, emp.Age, emp.Profession, emp.MaritalStatus)
	}
	w.Flush()
}

// pickRecord busca en la página actual el registro con el id tipeado.
func pickRecord(reader *bufio.Reader, state *client.State, prompt string) (domain.Employee, bool) {
	fmt.Print(prompt)
	input, _ := reader.ReadString('\n')
	id, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		fmt.Println("Id inválido.")
		return domain.Employee{}, false
	}
	for _, emp := range state.Records {
		if emp.ID == id {
			return emp, true
		}
	}
	fmt.Println("Ese id no está en la página actual.")
	return domain.Employee{}, false
}

// fillForm completa el formulario campo por campo; enter conserva el valor
// precargado al editar.
func fillForm(reader *bufio.Reader, state *client.State) {
	state.Form.FirstName = promptString(reader, "Nombre", state.Form.FirstName)
	state.Form.LastName = promptString(reader, "Apellido", state.Form.LastName)
	state.Form.Address = promptString(reader, "Dirección", state.Form.Address)
	state.Form.Age = promptInt(reader, "Edad", state.Form.Age)
	state.Form.Profession = promptString(reader, "Profesión", state.Form.Profession)
	state.Form.MaritalStatus = promptString(reader, "Estado civil", state.Form.MaritalStatus)
}

func promptString(reader *bufio.Reader, label, current string) string {
	if current != "" {
		fmt.Printf("%s [%s]: ", label, current)
	} else {
		fmt.Printf("%s: ", label)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptInt(reader *bufio.Reader, label string, current int) int {
	for {
		if current != 0 {
			fmt.Printf("%s [%d]: ", label, current)
		} else {
			fmt.Printf("%s: ", label)
		}
		input, _ := reader.ReadString('\n')
		input = strings.TrimSpace(input)
		if input == "" {
			return current
		}
		n, err := strconv.Atoi(input)
		if err == nil {
			return n
		}
		fmt.Println("Número inválido.")
	}
}
