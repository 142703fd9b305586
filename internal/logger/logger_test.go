// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "server")

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "server", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry["func"], "TestNewLogger_Fields")
}

func TestFromContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "server")
	child := l.With().Str("trace_id", "abc").Logger()

	ctx := child.WithContext(context.Background())
	FromContext(ctx).Info().Msg("ctx")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "abc", entry["trace_id"])
}

func TestFromRequest_UsesRequestContext(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "server")

	r := httptest.NewRequest("GET", "/", nil)
	r = r.WithContext(l.WithContext(r.Context()))
	FromRequest(r).Info().Msg("req")

	assert.Contains(t, buf.String(), `"message":"req"`)
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()

	assert.NotPanics(t, func() {
		l.Error().Msg("ignored")
		l.GetChildLogger().Info().Msg("ignored")
	})
}
