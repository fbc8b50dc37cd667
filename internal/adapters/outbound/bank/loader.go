// Package bank reads question banks and answer sheets from YAML, TOML or
// JSON files. Decoding is strict: unknown keys are errors, so a misspelled
// weight_agree cannot silently fall back to the default weight.
package bank

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/abdidvp/polaxis/internal/domain"
	"gopkg.in/yaml.v3"
)

// Format is a supported file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedFile, path)
	}
}

// FileLoader implements domain.BankLoader.
type FileLoader struct{}

func New() *FileLoader {
	return &FileLoader{}
}

// LoadBank decodes the bank at path and records the digest of its bytes.
// Id checks are left to the caller.
func (l *FileLoader) LoadBank(path string) (*domain.QuestionBank, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading bank: %w", err)
	}

	var b domain.QuestionBank
	if err := decode(data, format, &b); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	sum := sha256.Sum256(data)
	b.Digest = hex.EncodeToString(sum[:])
	return &b, nil
}

// LoadAnswers decodes a flat {question_id: answer} file.
func (l *FileLoader) LoadAnswers(path string) (domain.Answers, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading answers: %w", err)
	}
	defer f.Close()

	answers, err := DecodeAnswers(f, format)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return answers, nil
}

// DecodeAnswers reads an answer sheet from r.
func DecodeAnswers(r io.Reader, format Format) (domain.Answers, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	raw := map[string]int64{}
	if err := decode(data, format, &raw); err != nil {
		return nil, err
	}
	return domain.AnswersFromInt64(raw), nil
}

func decode(data []byte, format Format, v any) error {
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(v); err != nil && err != io.EOF {
			return err
		}
		return nil
	case FormatTOML:
		md, err := toml.Decode(string(data), v)
		if err != nil {
			return err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("unknown key %q", undecoded[0].String())
		}
		return nil
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		return dec.Decode(v)
	default:
		return fmt.Errorf("%w: format %q", domain.ErrUnsupportedFile, format)
	}
}
