package paddleclient

import (
	"context"
	"fmt"
	"time"

	paddle "github.com/PaddleHQ/paddle-go-sdk/v4"
	jsoniter "github.com/json-iterator/go"
	paddledomain "github.com/vfg2006/subscription-reports-api/infrastructure/integrator/paddle/domain"
	"github.com/vfg2006/subscription-reports-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	ListProducts(ctx context.Context) ([]paddledomain.Product, error)
	ListPrices(ctx context.Context) ([]paddledomain.Price, error)
	ListCustomers(ctx context.Context) ([]paddledomain.Customer, error)
	ListSubscriptions(ctx context.Context) ([]paddledomain.Subscription, error)
	ListTransactions(ctx context.Context, updatedSince time.Time) ([]paddledomain.Transaction, error)
}

type PaddleClient struct {
	sdk *paddle.SDK
}

// NewClient cria o cliente do Paddle no ambiente configurado (sandbox por padrão)
func NewClient(cfg config.Paddle) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("PADDLE_API_KEY não configurada")
	}

	var opts []paddle.Option
	if cfg.BaseURL != "" {
		opts = append(opts, paddle.WithBaseURL(cfg.BaseURL))
	}

	var (
		sdk *paddle.SDK
		err error
	)
	if cfg.Sandbox() {
		sdk, err = paddle.NewSandbox(cfg.APIKey, opts...)
	} else {
		sdk, err = paddle.New(cfg.APIKey, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente do paddle: %w", err)
	}

	return &PaddleClient{sdk: sdk}, nil
}

func (c *PaddleClient) ListProducts(ctx context.Context) ([]paddledomain.Product, error) {
	res, err := c.sdk.ListProducts(ctx, &paddle.ListProductsRequest{})
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}

	return collect[*paddle.Product, paddledomain.Product](ctx, res, nil)
}

func (c *PaddleClient) ListPrices(ctx context.Context) ([]paddledomain.Price, error) {
	res, err := c.sdk.ListPrices(ctx, &paddle.ListPricesRequest{})
	if err != nil {
		return nil, fmt.Errorf("erro ao listar preços: %w", err)
	}

	return collect[*paddle.Price, paddledomain.Price](ctx, res, nil)
}

func (c *PaddleClient) ListCustomers(ctx context.Context) ([]paddledomain.Customer, error) {
	res, err := c.sdk.ListCustomers(ctx, &paddle.ListCustomersRequest{})
	if err != nil {
		return nil, fmt.Errorf("erro ao listar clientes: %w", err)
	}

	return collect[*paddle.Customer, paddledomain.Customer](ctx, res, nil)
}

func (c *PaddleClient) ListSubscriptions(ctx context.Context) ([]paddledomain.Subscription, error) {
	res, err := c.sdk.ListSubscriptions(ctx, &paddle.ListSubscriptionsRequest{})
	if err != nil {
		return nil, fmt.Errorf("erro ao listar assinaturas: %w", err)
	}

	return collect[*paddle.Subscription, paddledomain.Subscription](ctx, res, nil)
}

// ListTransactions retorna as transações atualizadas a partir de updatedSince.
// Um updatedSince zero traz o histórico completo.
func (c *PaddleClient) ListTransactions(ctx context.Context, updatedSince time.Time) ([]paddledomain.Transaction, error) {
	res, err := c.sdk.ListTransactions(ctx, &paddle.ListTransactionsRequest{})
	if err != nil {
		return nil, fmt.Errorf("erro ao listar transações: %w", err)
	}

	return collect[*paddle.Transaction, paddledomain.Transaction](ctx, res, func(t paddledomain.Transaction) bool {
		return updatedSince.IsZero() || !t.UpdatedAt.Before(updatedSince)
	})
}

// collect percorre todas as páginas da coleção e converte cada entidade do SDK
// para a estrutura mínima via JSON
func collect[T any, R any](ctx context.Context, col *paddle.Collection[T], keep func(R) bool) ([]R, error) {
	var out []R

	err := col.Iter(ctx, func(v T) (bool, error) {
		var r R
		if err := remap(v, &r); err != nil {
			return false, err
		}
		if keep == nil || keep(r) {
			out = append(out, r)
		}
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao paginar resultados do paddle: %w", err)
	}

	return out, nil
}

func remap(src, dest any) error {
	raw, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("erro ao serializar entidade do paddle: %w", err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("erro ao decodificar entidade do paddle: %w", err)
	}

	return nil
}
