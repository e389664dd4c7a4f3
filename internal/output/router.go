package output

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/afscreen/internal/core"
	"github.com/inovacc/afscreen/internal/encoding"
	"github.com/inovacc/afscreen/internal/model"
)

var (
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// Router writes chunked payloads.
type Router struct {
	// Out receives console JSON and the per-file write report
	Out io.Writer

	// ChunkSize bounds records per chunk; below 1 uses core.DefaultChunkSize
	ChunkSize int

	Logger *slog.Logger
}

// Result describes what Emit produced.
type Result struct {
	Chunks int
	Files  []string
}

// NewRouter creates a router writing reports to out.
func NewRouter(out io.Writer, chunkSize int, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Router{Out: out, ChunkSize: chunkSize, Logger: logger}
}

// Emit prints every chunk to Out when destination is empty, and otherwise
// writes each chunk to its own file next to destination. An empty payload
// prints a notice and writes nothing. The first failed write stops further
// writes; Files then lists what was written before the failure.
func (r *Router) Emit(payload []model.JobRecord, destination string) (*Result, error) {
	if len(payload) == 0 {
		_, _ = fmt.Fprintln(r.Out, "No entries to write.")
		return &Result{}, nil
	}

	if destination == "" {
		return r.emitConsole(payload)
	}

	return r.emitFiles(payload, destination)
}

func (r *Router) emitConsole(payload []model.JobRecord) (*Result, error) {
	result := &Result{}

	for c := range core.Chunks(payload, r.ChunkSize) {
		data, err := encoding.ToJSONIndent(c.Items)
		if err != nil {
			return result, err
		}

		header := headerStyle.Render(fmt.Sprintf("=== Entries %d-%d ===", c.Start, c.End))
		if _, err := fmt.Fprintf(r.Out, "\n%s\n%s\n", header, data); err != nil {
			return result, fmt.Errorf("failed to write entries %d-%d: %w", c.Start, c.End, err)
		}

		result.Chunks++
	}

	return result, nil
}

func (r *Router) emitFiles(payload []model.JobRecord, destination string) (*Result, error) {
	dir, _, _ := SplitDestination(destination)
	if err := encoding.EnsureDir(dir); err != nil {
		return nil, err
	}

	result := &Result{}

	for c := range core.Chunks(payload, r.ChunkSize) {
		path := ChunkPath(destination, c.Start, c.End)

		data, err := encoding.ToJSONIndent(c.Items)
		if err != nil {
			return result, err
		}

		if err := encoding.WriteFile(path, data, 0644); err != nil {
			return result, err
		}

		r.Logger.Debug("wrote chunk", "path", path, "start", c.Start, "end", c.End)

		result.Chunks++
		result.Files = append(result.Files, path)

		_, _ = fmt.Fprintf(r.Out, "%s %s\n",
			successStyle.Render(fmt.Sprintf("Wrote entries %d-%d to", c.Start, c.End)),
			pathStyle.Render(path))
	}

	return result, nil
}
