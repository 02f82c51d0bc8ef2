package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"storefront-checkout-gateway/config"
	"storefront-checkout-gateway/internal/core/domain"

	"github.com/rs/zerolog"
)

const cartCreateMutation = `mutation cartCreate($cartInput: CartInput!) {
  cartCreate(input: $cartInput) {
    cart { id checkoutUrl }
    userErrors { field message }
  }
}`

const cartLinesAddMutation = `mutation cartLinesAdd($cartId: ID!, $lines: [CartLineInput!]!) {
  cartLinesAdd(cartId: $cartId, lines: $lines) {
    cart { id checkoutUrl }
    userErrors { field message }
  }
}`

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ShopifyClient implements ports.CartClient against the Storefront GraphQL API.
type ShopifyClient struct {
	endpoint    string
	storeDomain string
	token       string
	httpClient  HTTPClient
	log         zerolog.Logger
}

// NewShopifyClient creates a Storefront API cart client.
func NewShopifyClient(cfg config.ShopifyConfig, httpClient HTTPClient, log zerolog.Logger) *ShopifyClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &ShopifyClient{
		endpoint:    cfg.Endpoint(),
		storeDomain: cfg.StoreDomain,
		token:       cfg.StorefrontToken,
		httpClient:  httpClient,
		log:         log,
	}
}

type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

type cartLine struct {
	MerchandiseID string `json:"merchandiseId"`
	Quantity      int    `json:"quantity"`
}

type userError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

type cartPayload struct {
	Cart *struct {
		ID          string `json:"id"`
		CheckoutURL string `json:"checkoutUrl"`
	} `json:"cart"`
	UserErrors []userError `json:"userErrors"`
}

type graphqlResponse struct {
	Data struct {
		CartCreate   *cartPayload `json:"cartCreate"`
		CartLinesAdd *cartPayload `json:"cartLinesAdd"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// errUnreachable marks a transport-level failure, as opposed to a storefront
// response the client could not use.
var errUnreachable = errors.New("storefront unreachable")

// AddToCart submits the intent to Shopify and returns a result carrying the
// checkout URL. A userErrors response maps to a failed result, not an error;
// errors are reserved for transport and protocol failures. When the
// storefront is unreachable and the intent has no existing cart, the cart
// permalink stands in for the mutation.
func (c *ShopifyClient) AddToCart(ctx context.Context, intent domain.CheckoutIntent) (*domain.CheckoutResult, error) {
	lines := []cartLine{{MerchandiseID: intent.MerchandiseID, Quantity: intent.Quantity}}

	var req graphqlRequest
	if intent.CartID != "" {
		req = graphqlRequest{
			Query: cartLinesAddMutation,
			Variables: map[string]interface{}{
				"cartId": intent.CartID,
				"lines":  lines,
			},
		}
	} else {
		req = graphqlRequest{
			Query: cartCreateMutation,
			Variables: map[string]interface{}{
				"cartInput": map[string]interface{}{"lines": lines},
			},
		}
	}

	resp, err := c.execute(ctx, req)
	if err != nil {
		if errors.Is(err, errUnreachable) && intent.CartID == "" {
			if url := c.DirectCheckoutURL(intent.MerchandiseID, intent.Quantity); url != "" {
				c.log.Warn().Err(err).Msg("storefront unreachable, falling back to cart permalink")
				return &domain.CheckoutResult{Success: true, CheckoutURL: url}, nil
			}
		}
		return nil, err
	}

	payload := resp.Data.CartCreate
	if intent.CartID != "" {
		payload = resp.Data.CartLinesAdd
	}
	if payload == nil {
		return nil, fmt.Errorf("storefront response missing cart payload")
	}

	if len(payload.UserErrors) > 0 {
		msg := payload.UserErrors[0].Message
		c.log.Warn().
			Str("merchandise_id", intent.MerchandiseID).
			Str("error", msg).
			Msg("storefront rejected cart mutation")
		return &domain.CheckoutResult{Success: false, Error: msg}, nil
	}

	if payload.Cart == nil || payload.Cart.CheckoutURL == "" {
		return &domain.CheckoutResult{Success: false, Error: "cart has no checkout URL"}, nil
	}

	return &domain.CheckoutResult{
		Success:     true,
		CheckoutURL: payload.Cart.CheckoutURL,
	}, nil
}

func (c *ShopifyClient) execute(ctx context.Context, gqlReq graphqlRequest) (*graphqlResponse, error) {
	body, err := json.Marshal(gqlReq)
	if err != nil {
		return nil, fmt.Errorf("marshal storefront request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create storefront request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Storefront-Access-Token", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("storefront returned status %d", resp.StatusCode)
	}

	var gqlResp graphqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&gqlResp); err != nil {
		return nil, fmt.Errorf("decode storefront response: %w", err)
	}

	if len(gqlResp.Errors) > 0 {
		return nil, fmt.Errorf("storefront query failed: %s", gqlResp.Errors[0].Message)
	}

	return &gqlResp, nil
}

// DirectCheckoutURL builds a cart permalink that skips the cart mutation
// entirely: https://{store}/cart/{variantID}:{quantity}. The numeric variant
// ID is extracted from the GID form (gid://shopify/ProductVariant/123).
func (c *ShopifyClient) DirectCheckoutURL(variantID string, quantity int) string {
	if c.storeDomain == "" || variantID == "" {
		return ""
	}
	if quantity < 1 {
		quantity = 1
	}
	numeric := variantID
	if idx := strings.LastIndex(variantID, "/"); idx >= 0 {
		numeric = variantID[idx+1:]
	}
	return fmt.Sprintf("https://%s/cart/%s:%d", c.storeDomain, numeric, quantity)
}
