package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/termipaper"
	"github.com/agentstation/termipaper/pkg/catalog"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
type Mock struct {
	TermipaperFunc   func() (termipaper.Termipaper, error)
	CatalogFunc      func() (*catalog.Catalog, error)
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string
}

// NewMock returns a Mock backed by tp. Catalog resolves through tp.
func NewMock(tp termipaper.Termipaper) *Mock {
	return &Mock{
		TermipaperFunc: func() (termipaper.Termipaper, error) { return tp, nil },
		CatalogFunc:    tp.Catalog,
	}
}

// Termipaper returns the manager using the mock function or nil.
func (m *Mock) Termipaper() (termipaper.Termipaper, error) {
	if m.TermipaperFunc != nil {
		return m.TermipaperFunc()
	}
	return nil, nil
}

// Catalog returns a catalog using the mock function or nil.
func (m *Mock) Catalog() (*catalog.Catalog, error) {
	if m.CatalogFunc != nil {
		return m.CatalogFunc()
	}
	return nil, nil
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns the format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}

// Ensure Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
