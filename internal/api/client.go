package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/EspacoVida/spa-portal/internal/apierr"
)

// Client é o cliente remoto tipado: uma função por operação de recurso,
// sem cache, sem retry e sem injeção de credencial (isso é do transport
// da sessão). Toda resposta chega no envelope {success, data, error}.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if len(query) > 0 {
		path = path + "?" + query.Encode()
	}
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apierr.New(0, "invalid_request_body", err.Error())
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return apierr.New(0, "invalid_request", err.Error())
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		req.Header.Set("X-Request-ID", uuid.NewString())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return apierr.New(0, "request_failed", "Falha de comunicação com o servidor.")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apierr.New(resp.StatusCode, "request_failed", "Falha ao ler resposta do servidor.")
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		// Envelope malformado: o status HTTP é tudo que temos.
		return apierr.New(resp.StatusCode, "invalid_envelope", http.StatusText(resp.StatusCode))
	}

	if !env.Success {
		return apierr.New(resp.StatusCode, errorCode(env.Error), errorMessage(env.Error, resp.StatusCode))
	}

	if out != nil {
		if env.Data == nil {
			return apierr.New(resp.StatusCode, "invalid_envelope", "Resposta sem dados.")
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			return apierr.New(resp.StatusCode, "invalid_envelope", "Resposta em formato inesperado.")
		}
	}

	return nil
}

// errorCode trata o campo error do envelope como código de máquina quando
// ele tem cara de código (snake_case, sem espaços).
func errorCode(raw string) string {
	if raw == "" {
		return "request_failed"
	}
	if strings.ContainsAny(raw, " \t") {
		return "request_failed"
	}
	return strings.ToLower(raw)
}

func errorMessage(raw string, status int) string {
	if raw != "" {
		return raw
	}
	return http.StatusText(status)
}
