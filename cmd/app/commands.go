package main

import (
	"context"
	"errors"
	"fmt"
	"hotelier/config"
	"hotelier/di"
	"hotelier/shared"
	"hotelier/shared/constant"
	"hotelier/shared/failure"
	"hotelier/shared/logger"
	"io"
	"net/http"
	"slices"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const (
	exitFailure    = 1
	exitBadRequest = 2
	exitNotFound   = 3
	exitConflict   = 4
)

var errUnknownOutput = errors.New("unknown output format")

// app holds what a single invocation of the CLI works with. Services are
// built once the command line is parsed.
type app struct {
	cfg      *config.Config
	build    func(cfg *config.Config) *di.Services
	services *di.Services
	out      io.Writer
	output   string
	root     *cobra.Command
	untagged *zerolog.Logger
}

func newApp(cfg *config.Config, build func(cfg *config.Config) *di.Services, out io.Writer) *app {
	a := &app{
		cfg:   cfg,
		build: build,
		out:   out,
	}

	a.root = &cobra.Command{
		Use:           "hotelier",
		Short:         "Manage hotels, customers and reservations stored as JSON documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.prepare(cmd)
		},
	}

	a.root.SetOut(out)
	a.root.PersistentFlags().StringVarP(&a.output, "output", "o", constant.OutputFormatYAML, "output format (yaml|json)")
	a.root.PersistentFlags().StringVar(&a.cfg.Store.Dir, "store-dir", a.cfg.Store.Dir, "directory holding the record documents")

	a.root.AddCommand(
		a.initCmd(),
		a.hotelCmd(),
		a.customerCmd(),
		a.reservationCmd(),
		a.demoCmd(),
	)

	return a
}

// prepare tags the invocation with an operation id and builds the services.
func (a *app) prepare(cmd *cobra.Command) error {
	if !slices.Contains([]string{constant.OutputFormatYAML, constant.OutputFormatJSON}, a.output) {
		return failure.BadRequest(fmt.Errorf("%w %q", errUnknownOutput, a.output))
	}

	operationID := uuid.NewString()

	untagged := log.Logger
	a.untagged = &untagged
	logger.WithOperation(operationID)

	ctx := context.WithValue(cmd.Context(), constant.ContextKeyOperationID, operationID)
	cmd.SetContext(ctx)

	a.services = a.build(a.cfg)

	log.Debug().Str("command", cmd.CommandPath()).Str("store_dir", a.cfg.Store.Dir).Msg("command started")

	return nil
}

func (a *app) shutdown() {
	if a.untagged != nil {
		defer func() { log.Logger = *a.untagged }()
	}

	if a.services == nil {
		return
	}

	if err := a.services.Otel.Shutdown(context.Background()); err != nil {
		log.Warn().Err(err).Msg("failed to flush traces")
	}
}

// withScope runs fn inside a command span.
func (a *app) withScope(cmd *cobra.Command, fn func(ctx context.Context) error) (err error) {
	ctx, scope := a.services.Otel.NewScope(cmd.Context(), constant.OtelCommandScopeName,
		constant.OtelCommandScopeName+"."+cmd.CommandPath())
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if operationID, ok := ctx.Value(constant.ContextKeyOperationID).(string); ok {
		scope.SetAttribute(string(constant.ContextKeyOperationID), operationID)
	}

	return fn(ctx)
}

func (a *app) initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create empty store documents that do not exist yet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withScope(cmd, func(ctx context.Context) error {
				if err := a.services.Stores.Init(ctx); err != nil {
					return err
				}

				return a.render(statusResponse{Message: "stores initialized in " + a.cfg.Store.Dir})
			})
		},
	}
}

func parseID(arg string) (int, error) {
	id, err := shared.ParseID(arg)
	if err != nil || id <= 0 {
		return 0, failure.BadRequestFromString(fmt.Sprintf("invalid id %q", arg))
	}

	return id, nil
}

func exitCode(err error) int {
	switch failure.GetCode(err) {
	case http.StatusBadRequest:
		return exitBadRequest
	case http.StatusNotFound:
		return exitNotFound
	case http.StatusConflict:
		return exitConflict
	default:
		return exitFailure
	}
}
