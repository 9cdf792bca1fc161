package application

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/eugenenazirov/minigrep/internal/config"
	"github.com/eugenenazirov/minigrep/internal/search"
)

// Option configures the behaviour of New.
type Option func(*App)

// WithOutput sets where matching lines are written. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(a *App) {
		a.out = w
	}
}

// WithFileReader replaces the function used to load the target file
// (primarily for tests).
func WithFileReader(read func(path string) ([]byte, error)) Option {
	return func(a *App) {
		a.readFile = read
	}
}

// App runs searches against files.
type App struct {
	logger   *zap.Logger
	out      io.Writer
	readFile func(path string) ([]byte, error)
}

// New initializes an App with the provided logger and options.
func New(logger *zap.Logger, opts ...Option) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	app := &App{
		logger:   logger,
		out:      os.Stdout,
		readFile: os.ReadFile,
	}
	for _, opt := range opts {
		opt(app)
	}
	return app
}

// Run searches the file named by cfg and writes every matching line. The
// whole file is read before anything is written.
func (a *App) Run(cfg config.Config) error {
	content, err := a.load(cfg.FilePath())
	if err != nil {
		return err
	}
	a.logger.Debug("file loaded",
		zap.String("path", cfg.FilePath()),
		zap.Int("bytes", len(content)),
		zap.Bool("case_sensitive", cfg.CaseSensitive()),
	)

	matches := search.For(cfg.CaseSensitive())(cfg.Query(), content)
	a.logger.Debug("search completed", zap.Int("matches", len(matches)))

	return a.emit(matches)
}

func (a *App) load(path string) (string, error) {
	data, err := a.readFile(path)
	if err != nil {
		return "", &IOError{Op: opReadFile, Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &IOError{Op: opReadFile, Path: path, Err: fmt.Errorf("%s: %w", path, ErrInvalidEncoding)}
	}
	return string(data), nil
}

func (a *App) emit(lines []string) error {
	w := bufio.NewWriter(a.out)
	for _, line := range lines {
		if _, err := w.WriteString(line); err != nil {
			return &IOError{Op: opWriteOutput, Err: err}
		}
		if err := w.WriteByte('\n'); err != nil {
			return &IOError{Op: opWriteOutput, Err: err}
		}
	}
	if err := w.Flush(); err != nil {
		return &IOError{Op: opWriteOutput, Err: err}
	}
	return nil
}
