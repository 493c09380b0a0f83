package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Límites compartidos por los adaptadores.
const (
	httpTimeout     = 25 * time.Second // red; el use case impone además su propio timeout
	maxResponseBody = 256 * 1024
	maxReplyTokens  = 1024
)

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// apiError error HTTP devuelto por un proveedor.
type apiError struct {
	Provider string
	Status   int
	Message  string
}

func (e *apiError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("AI: %s HTTP %d", e.Provider, e.Status)
	}
	return fmt.Sprintf("AI: %s HTTP %d: %s", e.Provider, e.Status, e.Message)
}

// postJSON envía payload y devuelve el cuerpo crudo si la respuesta es 200.
// errMessage extrae el mensaje de error del cuerpo de una respuesta no-200.
func postJSON(
	ctx context.Context,
	client *http.Client,
	provider, url string,
	headers map[string]string,
	payload any,
	errMessage func(body []byte) string,
) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("AI: serializar request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, fmt.Errorf("AI: leer respuesta: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &apiError{Provider: provider, Status: resp.StatusCode, Message: errMessage(rawBody)}
	}
	return rawBody, nil
}
