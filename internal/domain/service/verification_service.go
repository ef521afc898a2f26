package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"trueestate/pkg/logger"
)

// IdentityVerifier looks up a person and an optional company against the
// configured third-party providers.
type IdentityVerifier interface {
	VerifyIdentity(ctx context.Context, req IdentityLookupRequest) (*IdentityLookupResult, error)
}

type IdentityLookupRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`
}

type IdentityLookupResult struct {
	IdentityMatched bool   `json:"identity_matched"`
	CompanyMatched  bool   `json:"company_matched"`
	Provider        string `json:"provider,omitempty"`
}

// HTTPIdentityVerifier proxies the identity and company lookup APIs over
// plain HTTP, the same way the payment gateway client is built.
type HTTPIdentityVerifier struct {
	identityURL string
	identityKey string
	companyURL  string
	companyKey  string
	httpClient  *http.Client
}

func NewHTTPIdentityVerifier(identityURL, identityKey, companyURL, companyKey string) *HTTPIdentityVerifier {
	return &HTTPIdentityVerifier{
		identityURL: identityURL,
		identityKey: identityKey,
		companyURL:  companyURL,
		companyKey:  companyKey,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (v *HTTPIdentityVerifier) VerifyIdentity(ctx context.Context, req IdentityLookupRequest) (*IdentityLookupResult, error) {
	result := &IdentityLookupResult{}

	matched, err := v.lookupPerson(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("identity lookup failed: %w", err)
	}
	result.IdentityMatched = matched
	result.Provider = "identity-api"

	if req.Company != "" {
		companyMatched, err := v.lookupCompany(ctx, req.Company)
		if err != nil {
			// A failed company lookup degrades the score, it does not fail
			// the whole verification.
			logger.Warn("Company lookup failed for %q: %v", req.Company, err)
		} else {
			result.CompanyMatched = companyMatched
		}
	}

	return result, nil
}

func (v *HTTPIdentityVerifier) lookupPerson(ctx context.Context, req IdentityLookupRequest) (bool, error) {
	if v.identityURL == "" {
		return false, fmt.Errorf("identity provider not configured")
	}

	body, err := json.Marshal(map[string]string{
		"name":  req.Name,
		"email": req.Email,
		"phone": req.Phone,
	})
	if err != nil {
		return false, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, v.identityURL+"/verifications", bytes.NewReader(body))
	if err != nil {
		return false, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+v.identityKey)

	resp, err := v.httpClient.Do(httpReq)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, err
	}

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("identity provider returned %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed struct {
		Match bool `json:"match"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return false, err
	}

	return parsed.Match, nil
}

func (v *HTTPIdentityVerifier) lookupCompany(ctx context.Context, company string) (bool, error) {
	if v.companyURL == "" {
		return false, fmt.Errorf("company provider not configured")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, v.companyURL+"/companies/search?q="+company, nil)
	if err != nil {
		return false, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+v.companyKey)

	resp, err := v.httpClient.Do(httpReq)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("company provider returned %d", resp.StatusCode)
	}

	var parsed struct {
		Results []json.RawMessage `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return false, err
	}

	return len(parsed.Results) > 0, nil
}
