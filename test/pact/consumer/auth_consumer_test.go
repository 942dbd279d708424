//go:build pact
// +build pact

package consumer_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	pacttest "github.com/Apurer/go-gin-northwind-api/test/pact"

	pactconsumer "github.com/pact-foundation/pact-go/v2/consumer"
	pactlog "github.com/pact-foundation/pact-go/v2/log"
	"github.com/pact-foundation/pact-go/v2/matchers"
	"github.com/stretchr/testify/require"
)

type problemDetail struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

type apiError struct {
	status    int
	title     string
	challenge string
}

func (e apiError) Error() string {
	msg := e.title
	if msg == "" {
		msg = "api error"
	}
	return fmt.Sprintf("%s (status %d)", msg, e.status)
}

func TestClinicPortalContract(t *testing.T) {
	t.Helper()
	pactlog.SetLogLevel("INFO")

	pact, err := pactconsumer.NewV2Pact(pactconsumer.MockHTTPProviderConfig{
		Consumer: pacttest.ConsumerName,
		Provider: pacttest.ProviderName,
		PactDir:  pacttest.PactDir(t),
		LogDir:   pacttest.LogDir(t),
	})
	require.NoError(t, err)

	jsonContentType := matchers.Regex("application/json; charset=utf-8", "application\\/json(?:;\\s?charset=utf-8)?")
	unauthorizedBody := matchers.Map{
		"type":   matchers.S("/problems/unauthorized"),
		"title":  matchers.S("Unauthorized"),
		"status": matchers.Like(http.StatusUnauthorized),
	}

	pact.AddInteraction().
		Given(pacttest.StateCredentialsConfigured).
		UponReceiving("a token login with valid credentials").
		WithRequest("POST", "/login_token", func(b *pactconsumer.V2RequestBuilder) {
			b.Header("Authorization", matchers.S(pacttest.BasicAuth(pacttest.Username, pacttest.Password)))
		}).
		WillRespondWith(http.StatusCreated, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.Map{
				"token": matchers.Term(pacttest.LiveToken, pacttest.TokenPattern),
			})
		})

	pact.AddInteraction().
		Given(pacttest.StateCredentialsConfigured).
		UponReceiving("a token login with a wrong password").
		WithRequest("POST", "/login_token", func(b *pactconsumer.V2RequestBuilder) {
			b.Header("Authorization", matchers.S(pacttest.BasicAuth(pacttest.Username, "wrong")))
		}).
		WillRespondWith(http.StatusUnauthorized, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("WWW-Authenticate", matchers.S("Basic"))
			b.Header("Content-Type", matchers.S("application/problem+json"))
			b.JSONBody(unauthorizedBody)
		})

	pact.AddInteraction().
		Given(pacttest.StateTokenLive).
		UponReceiving("a json welcome with a live token").
		WithRequest("GET", "/welcome_token", func(b *pactconsumer.V2RequestBuilder) {
			b.Query("token", matchers.S(pacttest.LiveToken))
			b.Query("format", matchers.S("json"))
		}).
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.Map{"message": matchers.S("Welcome!")})
		})

	pact.AddInteraction().
		Given(pacttest.StateTokenPoolEmpty).
		UponReceiving("a welcome with an unknown token").
		WithRequest("GET", "/welcome_token", func(b *pactconsumer.V2RequestBuilder) {
			b.Query("token", matchers.S(pacttest.UnknownToken))
		}).
		WillRespondWith(http.StatusUnauthorized, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", matchers.S("application/problem+json"))
			b.JSONBody(unauthorizedBody)
		})

	pact.AddInteraction().
		Given(pacttest.StatePatientMissing).
		UponReceiving("a request for a missing patient").
		WithRequest("GET", fmt.Sprintf("/patient/%d", pacttest.MissingPatientID)).
		WillRespondWith(http.StatusNotFound, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", matchers.S("application/problem+json"))
			b.JSONBody(matchers.Map{
				"type":   matchers.S("/problems/not-found"),
				"title":  matchers.S("Resource Not Found"),
				"status": matchers.Like(http.StatusNotFound),
			})
		})

	err = pact.ExecuteTest(t, func(config pactconsumer.MockServerConfig) error {
		client := newPortalClient(config)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		token, err := client.LoginToken(ctx, pacttest.Username, pacttest.Password)
		if err != nil {
			return fmt.Errorf("login: %w", err)
		}
		if len(token) != 64 {
			return fmt.Errorf("expected 64 hex chars, got %q", token)
		}

		_, err = client.LoginToken(ctx, pacttest.Username, "wrong")
		if apiErr, ok := err.(apiError); !ok || apiErr.status != http.StatusUnauthorized || apiErr.challenge != "Basic" {
			return fmt.Errorf("expected 401 with Basic challenge, got %v", err)
		}

		message, err := client.Welcome(ctx, pacttest.LiveToken)
		if err != nil {
			return fmt.Errorf("welcome: %w", err)
		}
		if message != "Welcome!" {
			return fmt.Errorf("unexpected welcome message %q", message)
		}

		if _, err := client.WelcomeUnformatted(ctx, pacttest.UnknownToken); err == nil {
			return fmt.Errorf("expected 401 for unknown token")
		}

		if err := client.GetPatient(ctx, pacttest.MissingPatientID); err == nil {
			return fmt.Errorf("expected 404 for patient %d", pacttest.MissingPatientID)
		} else if apiErr, ok := err.(apiError); ok && apiErr.status != http.StatusNotFound {
			return fmt.Errorf("expected 404, got %d", apiErr.status)
		}
		return nil
	})
	require.NoError(t, err)
}

type portalClient struct {
	baseURL    string
	httpClient *http.Client
}

func newPortalClient(config pactconsumer.MockServerConfig) *portalClient {
	host := config.Host
	if host == "" {
		host = "localhost"
	}
	transport := &http.Transport{TLSClientConfig: config.TLSConfig}
	return &portalClient{
		baseURL:    fmt.Sprintf("http://%s:%d", host, config.Port),
		httpClient: &http.Client{Transport: transport, Timeout: 10 * time.Second},
	}
}

func (c *portalClient) LoginToken(ctx context.Context, user, password string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login_token", nil)
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(user, password)
	var payload struct {
		Token string `json:"token"`
	}
	if err := c.do(req, &payload); err != nil {
		return "", err
	}
	return payload.Token, nil
}

func (c *portalClient) Welcome(ctx context.Context, token string) (string, error) {
	query := url.Values{"token": {token}, "format": {"json"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/welcome_token?"+query.Encode(), nil)
	if err != nil {
		return "", err
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := c.do(req, &payload); err != nil {
		return "", err
	}
	return payload.Message, nil
}

func (c *portalClient) WelcomeUnformatted(ctx context.Context, token string) (string, error) {
	query := url.Values{"token": {token}}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/welcome_token?"+query.Encode(), nil)
	if err != nil {
		return "", err
	}
	return "", c.do(req, nil)
}

func (c *portalClient) GetPatient(ctx context.Context, id int64) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/patient/%d", c.baseURL, id), nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

func (c *portalClient) do(req *http.Request, out any) error {
	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		var problem problemDetail
		_ = json.NewDecoder(res.Body).Decode(&problem)
		return apiError{
			status:    res.StatusCode,
			title:     problem.Title,
			challenge: res.Header.Get("WWW-Authenticate"),
		}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}
