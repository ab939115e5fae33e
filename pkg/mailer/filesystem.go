package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/dmitrymomot/mailblocks/pkg/logger"
)

// FilesystemSender implements Sender for local development: each email is
// written as an HTML file plus a JSON metadata file instead of being sent.
type FilesystemSender struct {
	dir string
	log *slog.Logger
}

// NewFilesystemSender creates a development sender writing into dir. The
// directory is created on first send. A nil logger falls back to
// slog.Default.
func NewFilesystemSender(dir string, log *slog.Logger) *FilesystemSender {
	if log == nil {
		log = slog.Default()
	}
	return &FilesystemSender{dir: dir, log: log}
}

type fileMetadata struct {
	Timestamp string `json:"timestamp"`
	To        string `json:"to"`
	Subject   string `json:"subject"`
	Tag       string `json:"tag,omitempty"`
}

// Send writes the email to disk and logs where it went.
func (s *FilesystemSender) Send(ctx context.Context, params SendParams) error {
	if err := params.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("%w: create directory: %v", ErrSendFailed, err)
	}

	now := time.Now()
	identifier := params.Tag
	if identifier == "" {
		identifier = params.Subject
	}
	base := now.Format("2006_01_02_150405") + "_" + safeFilename(identifier)

	htmlPath := filepath.Join(s.dir, base+".html")
	if err := os.WriteFile(htmlPath, []byte(params.BodyHTML), 0o644); err != nil {
		return fmt.Errorf("%w: write html: %v", ErrSendFailed, err)
	}

	meta, err := json.MarshalIndent(fileMetadata{
		Timestamp: now.Format(time.RFC3339),
		To:        params.To,
		Subject:   params.Subject,
		Tag:       params.Tag,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal metadata: %v", ErrSendFailed, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, base+".json"), meta, 0o644); err != nil {
		return fmt.Errorf("%w: write metadata: %v", ErrSendFailed, err)
	}

	s.log.InfoContext(ctx, "email written to disk",
		logger.Recipient(params.To),
		slog.String("subject", params.Subject),
		slog.String("path", htmlPath),
	)
	return nil
}

var unsafeFilenameRE = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

func safeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = unsafeFilenameRE.ReplaceAllString(s, "")
	const maxLen = 100
	if len(s) > maxLen {
		s = s[:maxLen]
	}
	if s == "" {
		s = "email"
	}
	return strings.ToLower(s)
}
