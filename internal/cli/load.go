package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/roach88/morphir-ir/internal/codec"
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/wire"
)

// LoadResult is a decoded IR document together with its source bytes.
type LoadResult struct {
	Path     string
	Data     []byte
	Document codec.Document
}

// Distribution returns the decoded distribution.
func (r *LoadResult) Distribution() ir.Distribution {
	return r.Document.Distribution
}

// LoadError represents an error that occurred while loading a document.
type LoadError struct {
	Code    string
	Message string
	// Version is the detected format version, zero if detection failed.
	Version ir.FormatVersion
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// ExitCode reports ExitFailure for documents that are not valid IR and
// ExitCommandError for documents that could not be read at all.
func (e *LoadError) ExitCode() int {
	switch e.Code {
	case ErrCodeSyntax, ErrCodeSchema, ErrCodeVersion, ErrCodeMalformed:
		return ExitFailure
	default:
		return ExitCommandError
	}
}

// Details returns structured context for CLIError.Details.
func (e *LoadError) Details() map[string]any {
	details := map[string]any{}
	if e.Version != 0 {
		details["formatVersion"] = int(e.Version)
	}
	var malformed *codec.MalformedNodeError
	if errors.As(e.Err, &malformed) {
		details["breadcrumb"] = malformed.Breadcrumb()
		details["expected"] = malformed.Expected
		details["found"] = malformed.Found
	}
	var unsupported *codec.UnsupportedVersionError
	if errors.As(e.Err, &unsupported) {
		details["found"] = unsupported.Found
	}
	if len(details) == 0 {
		return nil
	}
	return details
}

// ReadInput reads path, or stdin when path is "-".
func ReadInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, &LoadError{Code: ErrCodeReadFailed, Message: fmt.Sprintf("error reading stdin: %v", err), Err: err}
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("file not found: %s", path), Err: err}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeReadFailed, Message: fmt.Sprintf("error reading %s: %v", path, err), Err: err}
	}
	return data, nil
}

// LoadDocument reads and decodes an IR document. maxDepth bounds nesting;
// zero keeps the codec default.
func LoadDocument(path string, stdin io.Reader, maxDepth int, logger *zap.Logger) (*LoadResult, error) {
	data, err := ReadInput(path, stdin)
	if err != nil {
		return nil, err
	}
	logger.Debug("read document", zap.String("path", path), zap.Int("bytes", len(data)))

	doc, err := DecodeData(data, maxDepth)
	if err != nil {
		return nil, err
	}
	logger.Debug("decoded document",
		zap.String("path", path),
		zap.Int("format_version", int(doc.FormatVersion)),
		zap.String("package", doc.Distribution.PackageName().String()),
	)
	return &LoadResult{Path: path, Data: data, Document: doc}, nil
}

// DecodeData decodes document bytes, classifying failures as LoadErrors.
func DecodeData(data []byte, maxDepth int) (codec.Document, error) {
	var opts []codec.Option
	if maxDepth > 0 {
		opts = append(opts, codec.WithMaxDepth(maxDepth))
	}

	raw, err := wire.Parse(data)
	if err != nil {
		return codec.Document{}, &LoadError{Code: ErrCodeSyntax, Message: err.Error(), Err: err}
	}
	version, err := codec.DetectVersion(raw)
	if err != nil {
		code := ErrCodeMalformed
		if codec.IsUnsupportedVersion(err) {
			code = ErrCodeVersion
		}
		return codec.Document{}, &LoadError{Code: code, Message: err.Error(), Err: err}
	}
	doc, err := codec.DecodeDocument(raw, opts...)
	if err != nil {
		msg := fmt.Sprintf("format version %d: %v", version, err)
		return codec.Document{}, &LoadError{Code: ErrCodeMalformed, Message: msg, Version: version, Err: err}
	}
	return doc, nil
}

// loadFailure reports err through f and returns the matching ExitError.
func loadFailure(f *OutputFormatter, err error) error {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		details := loadErr.Details()
		return f.Fail(loadErr.ExitCode(), loadErr.Code, loadErr.Message, nilIfEmpty(details))
	}
	return f.Fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
}

func nilIfEmpty(m map[string]any) any {
	if m == nil {
		return nil
	}
	return m
}
