package client

import (
	"context"
	"errors"

	"datosempleado/internal/domain"
)

// State es el estado de la pantalla del cliente: sesión, lista de registros,
// formulario compartido de alta/edición y paginación. Toda mutación pasa por
// las transiciones de abajo; un 401 en cualquiera de ellas descarta la sesión
// y vuelve el estado a no autenticado.
type State struct {
	api    *Client
	tokens *TokenStore

	Records    []domain.Employee
	Form       domain.Employee
	EditingID  int
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

// NewState arma el estado inicial; si hay un token persistido lo retoma.
// tokens puede ser nil cuando no se quiere persistencia (tests).
func NewState(api *Client, tokens *TokenStore) (*State, error) {
	s := &State{api: api, tokens: tokens, Page: 1, Limit: 5, TotalPages: 1}
	if tokens != nil {
		token, err := tokens.Load()
		if err != nil {
			return nil, err
		}
		api.SetToken(token)
	}
	return s, nil
}

// Authenticated indica si hay una sesión vigente del lado del cliente. El
// token puede igual estar vencido: eso se descubre recién con el primer 401.
func (s *State) Authenticated() bool {
	return s.api.Token() != ""
}

// Login intercambia credenciales por un token, lo persiste y deja el estado
// listo para cargar la primera página.
func (s *State) Login(ctx context.Context, username, password string) error {
	token, err := s.api.Login(ctx, username, password)
	if err != nil {
		return err
	}
	if s.tokens != nil {
		if err := s.tokens.Save(token); err != nil {
			return err
		}
	}
	s.Page = 1
	return nil
}

// Logout descarta la sesión local; el token sigue siendo válido en el
// servidor hasta su expiración.
func (s *State) Logout() error {
	return s.clearSession()
}

// LoadPage trae la página actual y actualiza lista y metadatos.
func (s *State) LoadPage(ctx context.Context) error {
	page, err := s.api.ListRecords(ctx, s.Page, s.Limit)
	if err != nil {
		return s.sessionError(err)
	}
	s.Records = page.Data
	s.Total = page.Total
	s.TotalPages = page.TotalPages
	if s.TotalPages < 1 {
		s.TotalPages = 1
	}
	return nil
}

// NextPage avanza una página, acotada a TotalPages, y recarga.
func (s *State) NextPage(ctx context.Context) error {
	if s.Page >= s.TotalPages {
		return nil
	}
	s.Page++
	return s.LoadPage(ctx)
}

// PrevPage retrocede una página, acotada a 1, y recarga.
func (s *State) PrevPage(ctx context.Context) error {
	if s.Page <= 1 {
		return nil
	}
	s.Page--
	return s.LoadPage(ctx)
}

// StartEdit precarga el formulario desde la fila elegida y cambia el submit
// de alta a edición.
func (s *State) StartEdit(emp domain.Employee) {
	s.EditingID = emp.ID
	s.Form = emp
	s.Form.ID = 0
}

// CancelEdit limpia el formulario y vuelve al modo alta.
func (s *State) CancelEdit() {
	s.EditingID = 0
	s.Form = domain.Employee{}
}

// Submit envía el formulario: crea o actualiza según EditingID. No recarga la
// página; parchea la lista local con el eco del servidor y limpia el
// formulario.
func (s *State) Submit(ctx context.Context) error {
	if s.EditingID != 0 {
		echoed, err := s.api.UpdateRecord(ctx, s.EditingID, s.Form)
		if err != nil {
			return s.sessionError(err)
		}
		for i, rec := range s.Records {
			if rec.ID == echoed.ID {
				s.Records[i] = echoed
				break
			}
		}
	} else {
		echoed, err := s.api.CreateRecord(ctx, s.Form)
		if err != nil {
			return s.sessionError(err)
		}
		s.Records = append(s.Records, echoed)
	}
	s.CancelEdit()
	return nil
}

// Delete elimina el registro y lo quita de la lista local sin recargar.
func (s *State) Delete(ctx context.Context, id int) error {
	if err := s.api.DeleteRecord(ctx, id); err != nil {
		return s.sessionError(err)
	}
	kept := s.Records[:0]
	for _, rec := range s.Records {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	s.Records = kept
	return nil
}

// sessionError descarta la sesión ante un 401 y propaga el error original.
func (s *State) sessionError(err error) error {
	if errors.Is(err, ErrUnauthorized) {
		if clearErr := s.clearSession(); clearErr != nil {
			return clearErr
		}
	}
	return err
}

func (s *State) clearSession() error {
	s.api.SetToken("")
	s.Records = nil
	s.CancelEdit()
	s.Page = 1
	s.TotalPages = 1
	if s.tokens != nil {
		return s.tokens.Clear()
	}
	return nil
}

// RiskAdvisory calcula la franja de riesgo por edad, puramente del lado del
// cliente.
func RiskAdvisory(age int) string {
	switch {
	case age < 18:
		return "Fuera de peligro"
	case age < 60:
		return "Tenga cuidado"
	default:
		return "Quédese en casa"
	}
}
