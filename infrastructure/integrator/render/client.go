// Package render é o cliente da API de relatórios hospedada no Render,
// destino dos digests e fonte do histórico de contas já exibidas
package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/printsmith-digest/internal/config"
	"github.com/vfg2006/printsmith-digest/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	secretHeader    = "X-Export-Secret"
	maxErrorExcerpt = 500
)

type Client interface {
	ShownHistory(ctx context.Context, days int) (*domain.ShownHistory, error)
	SendDigest(ctx context.Context, payload *domain.DigestPayload) (domain.DeliveryReceipt, error)
	RecentDigests(ctx context.Context, days int) ([]domain.RecentDigest, error)
}

type RenderClient struct {
	httpClient *http.Client
	config     config.Render
}

func NewClient(cfg config.Render) Client {
	return &RenderClient{
		httpClient: &http.Client{},
		config:     cfg,
	}
}

// ShownHistory busca as contas exibidas nos últimos dias
func (c *RenderClient) ShownHistory(ctx context.Context, days int) (*domain.ShownHistory, error) {
	var history domain.ShownHistory

	if err := c.getJSON(ctx, c.config.HistoryURL, days, c.config.HistoryTimeout, &history); err != nil {
		return nil, errors.Wrap(err, "erro ao buscar histórico de contas exibidas")
	}

	return &history, nil
}

// RecentDigests lista os digests recebidos pela API nos últimos dias
func (c *RenderClient) RecentDigests(ctx context.Context, days int) ([]domain.RecentDigest, error) {
	var response domain.RecentDigestsResponse

	if err := c.getJSON(ctx, c.config.RecentURL, days, c.config.HistoryTimeout, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao buscar digests recentes")
	}

	return response.RecentDigests, nil
}

// SendDigest envia o payload para a API de exportação
func (c *RenderClient) SendDigest(ctx context.Context, payload *domain.DigestPayload) (domain.DeliveryReceipt, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar o digest")
	}

	ctx, cancel := withTimeout(ctx, c.config.DeliveryTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.APIURL, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição de envio")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(secretHeader, c.config.ExportSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao enviar o digest")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta do envio")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("envio falhou com status %s: %s", resp.Status, excerpt(respBody))
	}

	receipt := domain.DeliveryReceipt{}
	if len(bytes.TrimSpace(respBody)) == 0 {
		return receipt, nil
	}

	if err := json.Unmarshal(respBody, &receipt); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta do envio")
	}

	return receipt, nil
}

func (c *RenderClient) getJSON(ctx context.Context, rawURL string, days int, timeout time.Duration, out any) error {
	endpoint, err := url.Parse(rawURL)
	if err != nil {
		return errors.Wrap(err, "erro ao analisar a URL")
	}

	query := endpoint.Query()
	query.Set("days", strconv.Itoa(days))
	endpoint.RawQuery = query.Encode()

	ctx, cancel := withTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(secretHeader, c.config.ExportSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorExcerpt))
		return errors.Errorf("requisição falhou com status %s: %s", resp.Status, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "erro ao decodificar a resposta")
	}

	return nil
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func excerpt(body []byte) string {
	if len(body) > maxErrorExcerpt {
		return fmt.Sprintf("%s...", body[:maxErrorExcerpt])
	}
	return string(body)
}
