package productcatalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBatchSize максимальное количество продуктов в одном запросе к каталогу
const DefaultBatchSize = 100

const tagsQuery = `
query ProductsTags($ids: [ID!]!) {
  nodes(ids: $ids) {
    ... on Product { id tags }
  }
}
`

// Client клиент Admin GraphQL API каталога магазина
type Client struct {
	apiVersion string
	batchSize  int
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента каталога
func NewClient(apiVersion string, timeout time.Duration, batchSize int, log Logger) *Client {
	if batchSize <= 0 || batchSize > DefaultBatchSize {
		batchSize = DefaultBatchSize
	}
	return &Client{
		apiVersion: apiVersion,
		batchSize:  batchSize,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// FetchProductTags fetches the union of tags across the given products.
// IDs are queried in batches of at most batchSize to respect API limits;
// batch order does not affect the result. Non-positive IDs are skipped.
func (c *Client) FetchProductTags(ctx context.Context, shop, accessToken string, productIDs []int64) (map[string]struct{}, error) {
	ids := make([]int64, 0, len(productIDs))
	for _, id := range productIDs {
		if id > 0 {
			ids = append(ids, id)
		}
	}

	out := make(map[string]struct{})
	if len(ids) == 0 {
		return out, nil
	}

	endpoint := fmt.Sprintf("https://%s/admin/api/%s/graphql.json", shop, c.apiVersion)

	for start := 0; start < len(ids); start += c.batchSize {
		end := start + c.batchSize
		if end > len(ids) {
			end = len(ids)
		}

		if err := c.fetchBatch(ctx, endpoint, accessToken, ids[start:end], out); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func (c *Client) fetchBatch(ctx context.Context, endpoint, accessToken string, ids []int64, out map[string]struct{}) error {
	gids := make([]string, len(ids))
	for i, id := range ids {
		gids[i] = fmt.Sprintf("gid://shopify/Product/%d", id)
	}

	body, err := json.Marshal(graphqlRequest{
		Query:     tagsQuery,
		Variables: map[string]interface{}{"ids": gids},
	})
	if err != nil {
		return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	var parsed graphqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if len(parsed.Errors) > 0 {
		return fmt.Errorf("%w: graphql error: %s", ErrInvalidResponse, parsed.Errors[0].Message)
	}

	for _, node := range parsed.Data.Nodes {
		for _, tag := range node.Tags {
			if t := strings.TrimSpace(tag); t != "" {
				out[t] = struct{}{}
			}
		}
	}
	return nil
}

// FetchProductTagsWithGracefulDegradation fetches product tags, converting
// every failure into ErrServiceDegraded so the policy can be resolved with an
// empty tag set instead of an error surfaced to the shopper.
func (c *Client) FetchProductTagsWithGracefulDegradation(ctx context.Context, shop, accessToken string, productIDs []int64) (map[string]struct{}, error) {
	tags, err := c.FetchProductTags(ctx, shop, accessToken, productIDs)
	if err != nil {
		c.log.Error("ProductCatalog unavailable, applying graceful degradation for shop=%s: %v", shop, err)
		return nil, fmt.Errorf("%w: shop=%s, error=%v", ErrServiceDegraded, shop, err)
	}

	c.log.Info("Successfully fetched tags for shop=%s, products=%d, tags=%d", shop, len(productIDs), len(tags))
	return tags, nil
}
