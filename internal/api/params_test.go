// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func requestWithParam(key, value string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestParseIDParam(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{"1", 1, false},
		{"9007199254740993", 9007199254740993, false},
		{"0", 0, true},
		{"-4", 0, true},
		{"abc", 0, true},
		{"", 0, true},
		{"1.5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			got, err := parseIDParam(requestWithParam("id", tt.raw), "id")
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseIDParam(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseIDParam(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestQueryNumbers(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/?n=7&bad=x&f=0.75&blank=%20", nil)

	if v, err := queryInt(req, "n"); err != nil || v != 7 {
		t.Errorf("queryInt(n) = %d, %v", v, err)
	}
	if v, err := queryInt(req, "missing"); err != nil || v != 0 {
		t.Errorf("queryInt(missing) = %d, %v", v, err)
	}
	if v, err := queryInt(req, "blank"); err != nil || v != 0 {
		t.Errorf("queryInt(blank) = %d, %v", v, err)
	}
	if _, err := queryInt(req, "bad"); err == nil {
		t.Error("queryInt(bad) should fail")
	}
	if v, err := queryFloat(req, "f"); err != nil || v != 0.75 {
		t.Errorf("queryFloat(f) = %v, %v", v, err)
	}
	if _, err := queryFloat(req, "bad"); err == nil {
		t.Error("queryFloat(bad) should fail")
	}
}

func TestDecodeJSONBody(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		body    string
		want    string
		wantErr error
		fails   bool
	}{
		{"valid", `{"name":"soup"}`, "soup", nil, false},
		{"empty", ``, "", errEmptyBody, true},
		{"unknown field", `{"name":"soup","extra":1}`, "", nil, true},
		{"trailing object", `{"name":"a"}{"name":"b"}`, "", nil, true},
		{"malformed", `{"name":`, "", nil, true},
		{"too large", `{"name":"` + strings.Repeat("x", maxBodyBytes) + `"}`, "", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var got payload
			err := decodeJSONBody(httptest.NewRecorder(), req, &got)
			if (err != nil) != tt.fails {
				t.Fatalf("decodeJSONBody() error = %v, wantErr %v", err, tt.fails)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if got.Name != tt.want {
				t.Errorf("Name = %q, want %q", got.Name, tt.want)
			}
		})
	}
}
