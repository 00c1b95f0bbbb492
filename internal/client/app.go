package client

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-sealed-table/internal/logger"
	"github.com/MKhiriev/go-sealed-table/internal/store"
	"github.com/MKhiriev/go-sealed-table/models"
)

// LocalDatabases gives the CLI direct access to the source database. It is
// nil when the CLI talks to a remote server.
type LocalDatabases struct {
	Source store.RowSource
	Sink   store.RowSink
}

type App struct {
	backend  Backend
	local    *LocalDatabases
	password PasswordSource

	in  io.Reader
	out io.Writer

	logger *logger.Logger
}

func NewApp(backend Backend, local *LocalDatabases, password PasswordSource, logger *logger.Logger) *App {
	return &App{
		backend:  backend,
		local:    local,
		password: password,
		in:       os.Stdin,
		out:      os.Stdout,
		logger:   logger,
	}
}

// Usage describes the subcommands.
const Usage = `usage: client [global flags] <command> [flags]

commands:
  version                                   print the server version
  seal  -query SQL [-name N] [-i N] [-out FILE]
                                            archive a query result, or write its envelope to FILE
  open  (-id ID | -in FILE) [-restore TABLE] [-i N]
                                            print a sealed table, or restore it into TABLE
  list                                      list archived tables
  delete -id ID                             delete an archived table
`

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command given\n%s", ErrUnknownCommand, Usage)
	}

	command, rest := args[0], args[1:]
	a.logger.Debug().Str("func", "*App.Run").Str("command", command).Msg("running command")

	switch command {
	case "version":
		return a.version(ctx)
	case "seal":
		return a.seal(ctx, rest)
	case "open":
		return a.open(ctx, rest)
	case "list":
		return a.list(ctx)
	case "delete":
		return a.delete(ctx, rest)
	default:
		return fmt.Errorf("%w: %q\n%s", ErrUnknownCommand, command, Usage)
	}
}

func (a *App) version(ctx context.Context) error {
	v, err := a.backend.Version(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, v)
	return err
}

func (a *App) seal(ctx context.Context, args []string) error {
	fs := newFlagSet("seal")
	query := fs.String("query", "", "SQL query whose result set is sealed")
	name := fs.String("name", "", "archive label (defaults to the query)")
	iterations := fs.Int("i", 0, "PBKDF2 iteration count (0 uses the default)")
	outPath := fs.String("out", "", "write the envelope to this file instead of archiving ('-' for stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if strings.TrimSpace(*query) == "" {
		return fmt.Errorf("%w: -query", ErrMissingArgument)
	}
	if *name == "" {
		*name = *query
	}

	password, err := a.password("Sealing password: ")
	if err != nil {
		return err
	}

	if *outPath != "" {
		return a.sealToFile(ctx, *query, password, *iterations, *outPath)
	}

	info, err := a.backend.SealQuery(ctx, models.SealQueryRequest{
		Name:       *name,
		Query:      *query,
		Password:   password,
		Iterations: *iterations,
	})
	if err != nil {
		return err
	}

	return writeInfosTSV(a.out, []models.SealedTableInfo{info})
}

func (a *App) sealToFile(ctx context.Context, query, password string, iterations int, path string) error {
	if a.local == nil {
		return fmt.Errorf("seal -out: %w", ErrLocalOnly)
	}

	rows, err := a.local.Source.QueryRows(ctx, query)
	if err != nil {
		return err
	}

	envelope, err := a.backend.EncryptRows(ctx, rows, password, iterations)
	if err != nil {
		return err
	}

	if path == "-" {
		_, err = fmt.Fprintln(a.out, envelope)
		return err
	}
	if err = os.WriteFile(path, []byte(envelope+"\n"), 0o600); err != nil {
		return fmt.Errorf("write envelope: %w", err)
	}

	a.logger.Info().Str("func", "*App.sealToFile").Int("rows", len(rows)).Str("path", path).Msg("envelope written")
	return nil
}

func (a *App) open(ctx context.Context, args []string) error {
	fs := newFlagSet("open")
	id := fs.String("id", "", "archived table id")
	inPath := fs.String("in", "", "envelope file ('-' for stdin)")
	restore := fs.String("restore", "", "restore into this table instead of printing")
	iterations := fs.Int("i", 0, "PBKDF2 iteration count of an envelope file (0 uses the default)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch {
	case *id == "" && *inPath == "":
		return fmt.Errorf("%w: -id or -in", ErrMissingArgument)
	case *id != "" && *inPath != "":
		return fmt.Errorf("%w: -id and -in", ErrConflictingFlags)
	}

	if *inPath != "" && *restore != "" && a.local == nil {
		return fmt.Errorf("open -in -restore: %w", ErrLocalOnly)
	}

	password, err := a.password("Password: ")
	if err != nil {
		return err
	}

	if *id != "" {
		if *restore != "" {
			n, err := a.backend.Restore(ctx, *id, password, *restore)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.out, "restored %d rows into %s\n", n, *restore)
			return err
		}

		rows, err := a.backend.Open(ctx, *id, password)
		if err != nil {
			return err
		}
		return writeRowsTSV(a.out, rows)
	}

	envelope, err := a.readEnvelope(*inPath)
	if err != nil {
		return err
	}

	rows, err := a.backend.DecryptRows(ctx, envelope, password, *iterations)
	if err != nil {
		return err
	}

	if *restore == "" {
		return writeRowsTSV(a.out, rows)
	}

	n, err := a.local.Sink.InsertRows(ctx, *restore, rows)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.out, "restored %d rows into %s\n", n, *restore)
	return err
}

func (a *App) readEnvelope(path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(a.in)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read envelope: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (a *App) list(ctx context.Context) error {
	infos, err := a.backend.List(ctx)
	if err != nil {
		return err
	}
	return writeInfosTSV(a.out, infos)
}

func (a *App) delete(ctx context.Context, args []string) error {
	fs := newFlagSet("delete")
	id := fs.String("id", "", "archived table id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("%w: -id", ErrMissingArgument)
	}

	password, err := a.password("Sealing password: ")
	if err != nil {
		return err
	}

	if err = a.backend.Delete(ctx, *id, password); err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.out, "deleted %s\n", *id)
	return err
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}
