package content

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// MapGetter reads a JSON string map parameter. *paramstore.Client satisfies it.
type MapGetter interface {
	GetStringMap(ctx context.Context, name string) (map[string]string, error)
}

// Load reads both tables from parameters under prefix. An empty prefix means
// the embedded defaults are used and getter is not consulted.
func Load(ctx context.Context, getter MapGetter, prefix string) (*Store, error) {
	prefix = strings.TrimRight(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return Defaults()
	}
	if getter == nil {
		return nil, errors.New("content: getter must not be nil")
	}

	info, err := getter.GetStringMap(ctx, InfoParameter(prefix))
	if err != nil {
		return nil, fmt.Errorf("content: load info table: %w", err)
	}
	myth, err := getter.GetStringMap(ctx, MythParameter(prefix))
	if err != nil {
		return nil, fmt.Errorf("content: load myth table: %w", err)
	}
	return New(info, myth), nil
}

func InfoParameter(prefix string) string {
	return prefix + "/content/constellation-info"
}

func MythParameter(prefix string) string {
	return prefix + "/content/constellation-myth"
}
