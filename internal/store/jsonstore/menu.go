package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Makepad-fr/urbancafe/internal/model"
)

// DefaultMenuSource is the document read when nothing else is configured.
const DefaultMenuSource = "menu.json"

// ErrBadStatus is returned when a remote menu answers with a status outside 2xx.
var ErrBadStatus = errors.New("unexpected status")

// MenuLoader reads the menu document from a local path or an http(s) URL.
type MenuLoader struct {
	Source string
	Client *http.Client
	Log    *slog.Logger
}

// NewMenuLoader returns a loader for source, defaulting to DefaultMenuSource.
func NewMenuLoader(source string, log *slog.Logger) *MenuLoader {
	if strings.TrimSpace(source) == "" {
		source = DefaultMenuSource
	}
	if log == nil {
		log = slog.Default()
	}
	return &MenuLoader{
		Source: source,
		Client: &http.Client{Timeout: 10 * time.Second},
		Log:    log,
	}
}

func isRemote(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// Load fetches and parses the menu once. Failures are logged and returned;
// no retry is attempted.
func (l *MenuLoader) Load(ctx context.Context) (model.MenuData, error) {
	start := time.Now()
	var (
		b   []byte
		err error
	)
	if isRemote(l.Source) {
		b, err = l.fetch(ctx)
	} else {
		b, err = os.ReadFile(l.Source)
		if err != nil {
			err = fmt.Errorf("read file: %w", err)
		}
	}
	if err != nil {
		l.Log.Error("menu load failed", "source", l.Source, "error", err)
		return nil, err
	}

	// Entries of the wrong shape decode blank; only invalid JSON fails.
	var data model.MenuData
	if err := json.Unmarshal(b, &data); err != nil {
		err = fmt.Errorf("json unmarshal: %w", err)
		l.Log.Error("menu load failed", "source", l.Source, "error", err)
		return nil, err
	}
	if data == nil {
		data = model.MenuData{}
	}
	l.Log.Info("menu loaded",
		"source", l.Source,
		"categories", len(data),
		"items", data.Count(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return data, nil
}

func (l *MenuLoader) fetch(ctx context.Context) ([]byte, error) {
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.Source, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return b, nil
}
