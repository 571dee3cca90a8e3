package parser

import (
	"bytes"
	stderrors "errors" // Standard errors package
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	gojson "github.com/goccy/go-json"
	"github.com/mcncl/jsontaxonomy/internal/errors" // Custom errors package
	"github.com/mcncl/jsontaxonomy/internal/models"
)

// Parse decodes exactly one JSON value from reader. Object members keep
// their textual order; a repeated key overwrites the earlier value in place.
func Parse(reader io.Reader) (models.Value, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.NewInputError("failed to read input", err)
	}

	decoder := gojson.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber() // Keep the literal so range errors can be reported

	tok, err := decoder.Token()
	if err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, errors.NewParsingError("input is empty or contains only whitespace", errors.ErrEmptyInput)
		}
		return nil, wrapDecodeError(err)
	}

	root, err := decodeValue(decoder, tok)
	if err != nil {
		return nil, err
	}

	// Anything but whitespace after the root value is rejected.
	if _, err := decoder.Token(); err == nil {
		return nil, errors.NewParsingError("multiple JSON values found at the root", errors.ErrMultipleJSON)
	} else if !stderrors.Is(err, io.EOF) {
		return nil, errors.NewParsingError("invalid trailing data after first JSON value", err)
	}

	// The token stream skips separators without checking their placement.
	if !gojson.Valid(data) {
		return nil, errors.NewParsingError("JSON syntax error", errors.ErrInvalidJSON)
	}

	return root, nil
}

// decodeValue builds the value starting at tok, consuming the tokens of its
// children from decoder.
func decodeValue(decoder *gojson.Decoder, tok gojson.Token) (models.Value, error) {
	switch t := tok.(type) {
	case gojson.Delim:
		switch t {
		case '[':
			return decodeArray(decoder)
		case '{':
			return decodeObject(decoder)
		default:
			return nil, errors.NewParsingError(fmt.Sprintf("unexpected delimiter '%c'", rune(t)), errors.ErrInvalidJSON)
		}
	case string:
		return models.String(t), nil
	case bool:
		return models.Bool(t), nil
	case gojson.Number:
		return decodeNumber(string(t))
	case float64:
		return normalizeNumber(t), nil
	case nil:
		return models.Null{}, nil
	default:
		return nil, errors.NewParsingError(fmt.Sprintf("unexpected token of type %T", tok), errors.ErrInvalidJSON)
	}
}

func decodeArray(decoder *gojson.Decoder) (models.Value, error) {
	arr := models.Array{}
	for {
		tok, err := nextToken(decoder)
		if err != nil {
			return nil, err
		}
		if tok == gojson.Delim(']') {
			return arr, nil
		}
		child, err := decodeValue(decoder, tok)
		if err != nil {
			return nil, err
		}
		arr = append(arr, child)
	}
}

func decodeObject(decoder *gojson.Decoder) (models.Value, error) {
	obj := models.NewObject()
	positions := make(map[string]int)
	for {
		tok, err := nextToken(decoder)
		if err != nil {
			return nil, err
		}
		if tok == gojson.Delim('}') {
			return obj, nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, errors.NewParsingError(fmt.Sprintf("expected object key, got %v", tok), errors.ErrInvalidJSON)
		}

		valueTok, err := nextToken(decoder)
		if err != nil {
			return nil, err
		}
		child, err := decodeValue(decoder, valueTok)
		if err != nil {
			return nil, err
		}

		if i, seen := positions[key]; seen {
			obj.Members[i].Value = child
			continue
		}
		positions[key] = len(obj.Members)
		obj.Members = append(obj.Members, models.Member{Key: key, Value: child})
	}
}

// nextToken reads a token inside a container, where EOF is always an error.
func nextToken(decoder *gojson.Decoder) (gojson.Token, error) {
	tok, err := decoder.Token()
	if err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, errors.NewParsingError("unexpected end of JSON input", errors.ErrInvalidJSON)
		}
		return nil, wrapDecodeError(err)
	}
	return tok, nil
}

func decodeNumber(literal string) (models.Value, error) {
	f, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return nil, errors.NewParsingError(fmt.Sprintf("number %s cannot be represented", literal), errors.ErrNumberRange)
	}
	return normalizeNumber(f), nil
}

func normalizeNumber(f float64) models.Number {
	if f == 0 {
		return models.Number(0) // drops the sign of -0
	}
	return models.Number(f)
}

func wrapDecodeError(err error) error {
	var syntaxError *gojson.SyntaxError
	if stderrors.As(err, &syntaxError) {
		return errors.NewParsingError(
			fmt.Sprintf("JSON syntax error at offset %d", syntaxError.Offset),
			errors.ErrInvalidJSON,
		)
	}
	return errors.NewParsingError("failed to decode JSON", err)
}

// ParseString parses JSON from a string
func ParseString(jsonString string) (models.Value, error) {
	if strings.TrimSpace(jsonString) == "" {
		return nil, errors.NewInputError("input string is empty", errors.ErrEmptyInput)
	}
	return Parse(strings.NewReader(jsonString))
}

// ParseFile parses JSON from a file path. Files ending in .gz, .zst, .lz4 or
// .s2 are decompressed on the fly.
func ParseFile(filePath string) (models.Value, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}()

	stat, err := file.Stat()
	if err != nil {
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to get file stats for '%s'", filePath),
			err,
		)
	}
	if stat.Size() == 0 {
		return nil, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	reader, err := Decompress(filePath, file)
	if err != nil {
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to decompress '%s'", filePath),
			err,
		)
	}
	defer func() { _ = reader.Close() }()

	return Parse(reader)
}
