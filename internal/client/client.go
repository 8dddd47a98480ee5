package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"datosempleado/internal/domain"
)

var (
	// ErrUnauthorized señala un 401 del servidor: sesión ausente o vencida.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound señala un 404 del servidor.
	ErrNotFound = errors.New("record not found")
	// ErrValidation señala un 400 del servidor por campos requeridos ausentes.
	ErrValidation = errors.New("missing required fields")
)

// RecordPage es la respuesta paginada de GET /records.
type RecordPage struct {
	Data       []domain.Employee `json:"data"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	Total      int               `json:"total"`
	TotalPages int               `json:"totalPages"`
}

// Client consume la API de registros. Guarda el token de la sesión actual y
// lo adjunta a cada request protegido.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

// New construye un cliente apuntando a la API de registros.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// SetToken fija el token de sesión a adjuntar en requests protegidos.
func (c *Client) SetToken(token string) { c.token = token }

// Token devuelve el token de sesión vigente.
func (c *Client) Token() string { return c.token }

// Login intercambia credenciales por un token y lo deja fijado en el cliente.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body := map[string]string{"username": username, "password": password}
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/login", body, http.StatusOK, &resp); err != nil {
		return "", err
	}
	c.token = resp.Token
	return resp.Token, nil
}

// ListRecords trae la página pedida de registros.
func (c *Client) ListRecords(ctx context.Context, page, limit int) (RecordPage, error) {
	var resp RecordPage
	path := fmt.Sprintf("/records?page=%d&limit=%d", page, limit)
	if err := c.do(ctx, http.MethodGet, path, nil, http.StatusOK, &resp); err != nil {
		return RecordPage{}, err
	}
	return resp, nil
}

// CreateRecord crea un registro y devuelve el eco del servidor con el id
// generado.
func (c *Client) CreateRecord(ctx context.Context, emp domain.Employee) (domain.Employee, error) {
	var resp domain.Employee
	if err := c.do(ctx, http.MethodPost, "/records", emp, http.StatusCreated, &resp); err != nil {
		return domain.Employee{}, err
	}
	return resp, nil
}

// UpdateRecord sobrescribe el registro id y devuelve el eco del servidor.
func (c *Client) UpdateRecord(ctx context.Context, id int, emp domain.Employee) (domain.Employee, error) {
	var resp domain.Employee
	path := fmt.Sprintf("/records/%d", id)
	if err := c.do(ctx, http.MethodPut, path, emp, http.StatusOK, &resp); err != nil {
		return domain.Employee{}, err
	}
	return resp, nil
}

// DeleteRecord elimina el registro id.
func (c *Client) DeleteRecord(ctx context.Context, id int) error {
	path := fmt.Sprintf("/records/%d", id)
	return c.do(ctx, http.MethodDelete, path, nil, http.StatusNoContent, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any, wantStatus int, out any) error {
	var reader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest:
		return ErrValidation
	}
	if resp.StatusCode != wantStatus {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
