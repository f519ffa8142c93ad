package configutil

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

// decodes a json5 file into T. a missing file yields os.ErrNotExist,
// which callers treat as "keep looking" rather than a failure.
func readJson5[T any](path string) (T, error) {
	var out T
	contents, err := os.ReadFile(path)
	if err != nil {
		return out, err
	}
	if len(contents) == 0 {
		return out, os.ErrNotExist
	}
	err = json5.Unmarshal(contents, &out)
	return out, err
}

func localVariant(path string) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	return fmt.Sprintf("%s.local%s", base, ext)
}

// ReadConfig reads `name` (a json5 file, extension included) and, if a
// sibling `<name>.local.<ext>` exists, merges it on top. Local values
// win. os.ErrNotExist is returned when neither file exists.
func ReadConfig[T any](name string) (T, error) {
	base, baseErr := readJson5[T](name)
	if baseErr != nil && !os.IsNotExist(baseErr) {
		return base, baseErr
	}

	localPath := localVariant(name)
	local, localErr := readJson5[T](localPath)
	if localErr != nil && !os.IsNotExist(localErr) {
		return base, localErr
	}
	if localErr == nil {
		err := mergo.Merge(&base, local, mergo.WithOverride)
		if err != nil {
			return base, err
		}
		slog.Info("merging config with local overrides", "local", localPath)
		return base, nil
	}

	if os.IsNotExist(baseErr) {
		return base, os.ErrNotExist
	}
	return base, nil
}

// ReadRecursively walks up the filesystem from the cwd until it finds a
// config file matching the given name.
func ReadRecursively[T any](name string) (T, error) {
	var zero T

	current, err := os.Getwd()
	if err != nil {
		return zero, err
	}

	for {
		config, err := ReadConfig[T](filepath.Join(current, name))
		if err == nil {
			return config, nil
		}
		if !os.IsNotExist(err) {
			return zero, err
		}

		parent := filepath.Dir(current)
		if parent == current {
			return zero, os.ErrNotExist
		}
		current = parent
	}
}
