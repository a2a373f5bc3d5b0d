// client/client.go
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"tryout-intake/models"
	"tryout-intake/utils"
	"tryout-intake/validation"
)

// Client talks to the tryout API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    utils.HTTPClient,
	}
}

// ValidationError is returned for 400 responses carrying field errors.
type ValidationError struct {
	Fields validation.FieldErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s", strings.Join(e.Fields.Fields(), ", "))
}

func (e *ValidationError) FieldErrors() validation.FieldErrors { return e.Fields }

// APIError is any other non-success response.
type APIError struct {
	StatusCode int
	Message    string
	Details    string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s (%d): %s", e.Message, e.StatusCode, e.Details)
	}
	return fmt.Sprintf("%s (%d)", e.Message, e.StatusCode)
}

type apiResponse struct {
	OK      bool            `json:"ok"`
	Note    string          `json:"note"`
	Error   json.RawMessage `json:"error"`
	Details string          `json:"details"`
}

// Submit posts a complete application and returns the server's note, if any.
func (c *Client) Submit(ctx context.Context, values map[string]any) (string, error) {
	resp, err := c.post(ctx, "/api/apply", values)
	if err != nil {
		return "", err
	}
	return resp.Note, nil
}

// ValidateStep asks the server to validate one step. A nil error means the step passed.
func (c *Client) ValidateStep(ctx context.Context, step models.Step, values map[string]any) error {
	_, err := c.post(ctx, "/api/apply/steps/"+strconv.Itoa(int(step)), values)
	return err
}

func (c *Client) post(ctx context.Context, path string, values map[string]any) (*apiResponse, error) {
	payload, err := json.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("encode application: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var out apiResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: "respuesta inválida del servidor", Details: strings.TrimSpace(string(body))}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 && out.OK {
		return &out, nil
	}

	if resp.StatusCode == http.StatusBadRequest {
		var fields validation.FieldErrors
		if err := json.Unmarshal(out.Error, &fields); err == nil && len(fields) > 0 {
			return nil, &ValidationError{Fields: fields}
		}
	}

	apiErr := &APIError{StatusCode: resp.StatusCode, Message: "Error al enviar", Details: out.Details}
	var msg string
	if err := json.Unmarshal(out.Error, &msg); err == nil && msg != "" {
		apiErr.Message = msg
	}
	return nil, apiErr
}
