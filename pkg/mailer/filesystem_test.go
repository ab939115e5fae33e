package mailer_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailblocks/pkg/mailer"
)

func TestFilesystemSender(t *testing.T) {
	t.Run("writes html and metadata", func(t *testing.T) {
		dir := t.TempDir()
		s := mailer.NewFilesystemSender(dir, nil)

		err := s.Send(context.Background(), mailer.SendParams{
			To:       "user@example.com",
			Subject:  "Welcome aboard",
			BodyHTML: "<!DOCTYPE html><html><body>hi</body></html>",
			Tag:      "welcome",
		})
		require.NoError(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 2)

		var htmlPath, jsonPath string
		for _, e := range entries {
			switch filepath.Ext(e.Name()) {
			case ".html":
				htmlPath = filepath.Join(dir, e.Name())
			case ".json":
				jsonPath = filepath.Join(dir, e.Name())
			}
		}
		require.NotEmpty(t, htmlPath)
		require.NotEmpty(t, jsonPath)

		body, err := os.ReadFile(htmlPath)
		require.NoError(t, err)
		assert.Contains(t, string(body), "hi")

		meta, err := os.ReadFile(jsonPath)
		require.NoError(t, err)
		var parsed struct {
			To      string `json:"to"`
			Subject string `json:"subject"`
			Tag     string `json:"tag"`
		}
		require.NoError(t, json.Unmarshal(meta, &parsed))
		assert.Equal(t, "user@example.com", parsed.To)
		assert.Equal(t, "Welcome aboard", parsed.Subject)
		assert.Equal(t, "welcome", parsed.Tag)
	})

	t.Run("filename uses tag when set", func(t *testing.T) {
		dir := t.TempDir()
		s := mailer.NewFilesystemSender(dir, nil)

		err := s.Send(context.Background(), mailer.SendParams{
			To:       "user@example.com",
			Subject:  "Some Subject!",
			BodyHTML: "<html></html>",
			Tag:      "Order Receipt",
		})
		require.NoError(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		for _, e := range entries {
			assert.Contains(t, e.Name(), "order_receipt")
			assert.NotContains(t, e.Name(), " ")
			assert.NotContains(t, e.Name(), "!")
		}
	})

	t.Run("creates directory on first send", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "outbox", "nested")
		s := mailer.NewFilesystemSender(dir, nil)

		err := s.Send(context.Background(), mailer.SendParams{
			To:       "user@example.com",
			Subject:  "x",
			BodyHTML: "<html></html>",
		})
		require.NoError(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.NotEmpty(t, entries)
	})

	t.Run("rejects invalid params without touching disk", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "outbox")
		s := mailer.NewFilesystemSender(dir, nil)

		err := s.Send(context.Background(), mailer.SendParams{To: "nope"})
		assert.ErrorIs(t, err, mailer.ErrInvalidParams)

		_, statErr := os.Stat(dir)
		assert.True(t, os.IsNotExist(statErr))
	})
}

func TestSafeFilenameThroughSender(t *testing.T) {
	dir := t.TempDir()
	s := mailer.NewFilesystemSender(dir, nil)

	err := s.Send(context.Background(), mailer.SendParams{
		To:       "user@example.com",
		Subject:  "../../etc/passwd",
		BodyHTML: "<html></html>",
	})
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.Contains(e.Name(), "/"))
	}
}
