package codes

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/klauspost/compress/gzip"

	"github.com/agentstation/thema/pkg/errors"
)

// Format identifies the encoding of a source document.
type Format string

// Supported source formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatOf guesses the format of path from its extension, ignoring a
// trailing .gz.
func FormatOf(path string) Format {
	ext := strings.ToLower(filepath.Ext(strings.TrimSuffix(strings.ToLower(path), ".gz")))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Locate returns the source document path.
//
// A non-empty explicit path must exist. Otherwise each candidate is tried
// relative to each dir in order, and the first existing file wins.
// Absolute candidates are tried as-is.
func Locate(explicit string, candidates []string, dirs ...string) (string, error) {
	if explicit != "" {
		info, err := os.Stat(explicit)
		if err != nil {
			return "", errors.NewDataError(explicit, "configured data file not found", err)
		}
		if info.IsDir() {
			return "", errors.NewDataError(explicit, "configured data file is a directory", nil)
		}
		return explicit, nil
	}

	if len(dirs) == 0 {
		dirs = []string{""}
	}

	tried := make([]string, 0, len(candidates)*len(dirs))
	for _, dir := range dirs {
		for _, candidate := range candidates {
			path := candidate
			if !filepath.IsAbs(candidate) && dir != "" {
				path = filepath.Join(dir, candidate)
			}
			tried = append(tried, path)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}
	}

	return "", errors.NewDataError("", fmt.Sprintf("no data file found (tried %s)", strings.Join(tried, ", ")), nil)
}

// SearchDirs returns the working directory followed by the directory of the
// running executable, skipping any that cannot be determined.
func SearchDirs() []string {
	var dirs []string
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		dir := filepath.Dir(exe)
		if len(dirs) == 0 || dirs[0] != dir {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// Load reads and decodes the source document at path.
func Load(path string, opts ...Option) (*Repository, error) {
	o := newOptions(opts)

	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, errors.NewDataError(path, "cannot open data file", err)
	}
	defer func() { _ = f.Close() }()

	repo, err := Decode(f, FormatOf(path), opts...)
	if err != nil {
		var dataErr *errors.DataError
		if errors.As(err, &dataErr) && dataErr.Path == "" {
			dataErr.Path = path
		}
		return nil, err
	}

	o.logger.Info().
		Str("path", path).
		Int("codes", repo.Len()).
		Msg("Loaded code list")

	return repo, nil
}

// Decode builds a Repository from a source document. Gzip-compressed input
// is detected and decompressed transparently.
func Decode(r io.Reader, format Format, opts ...Option) (*Repository, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, errors.NewDataError("", "cannot read data", err)
	}

	if format == FormatYAML {
		data, err = yaml.YAMLToJSON(data)
		if err != nil {
			return nil, errors.NewDataError("", "malformed YAML document", errors.WrapParse(string(FormatYAML), "", err))
		}
	}

	var doc sourceDocument
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.NewDataError("", "malformed JSON document", errors.WrapParse(string(FormatJSON), "", err))
	}
	if doc.CodeList == nil {
		return nil, errors.NewDataError("", "document has no CodeList", nil)
	}
	if doc.CodeList.ThemaCodes == nil {
		return nil, errors.NewDataError("", "document has no ThemaCodes", nil)
	}

	list := make([]Code, 0, len(doc.CodeList.ThemaCodes.Code))
	for i, sc := range doc.CodeList.ThemaCodes.Code {
		c := sc.toCode()
		if c.Value == "" {
			return nil, errors.NewDataError("", fmt.Sprintf("code at position %d has an empty value", i), nil)
		}
		list = append(list, c)
	}

	return NewRepository(list, append(opts, WithMetadata(doc.CodeList.toMetadata()))...), nil
}

// readAll reads r, decompressing it when it starts with the gzip magic bytes.
func readAll(r io.Reader) ([]byte, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(2)
	if err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		defer func() { _ = zr.Close() }()
		return io.ReadAll(zr)
	}
	return io.ReadAll(br)
}
