// Package importer sends NationBuilder people to Action Network.
//
// The Driver reads the export one row at a time and, for each selected row,
// builds a signup, resolves its tags, and creates the person. Custom fields
// the signup helper cannot carry are PUT on the created person afterwards.
// Rows are processed strictly in order; the first failed API call ends the
// run.
package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/surj/an-import/internal/config"
	"github.com/surj/an-import/internal/core"
	"github.com/surj/an-import/internal/logging"
	"github.com/surj/an-import/internal/osdi"
	"github.com/surj/an-import/internal/schema"
	"github.com/surj/an-import/internal/tags"
)

// Client is the part of the OSDI API the driver uses.
type Client interface {
	Create(ctx context.Context, signup *osdi.PersonSignup) (*osdi.Record, error)
	Upsert(ctx context.Context, rec *osdi.Record, patch osdi.PersonPatch) (*osdi.Record, error)
}

// Driver runs one import.
type Driver struct {
	opts     config.Options
	client   Client
	resolver *tags.Resolver
	logger   *slog.Logger
}

// NewDriver creates a driver. client may be nil for dry runs. A nil logger
// uses slog.Default().
func NewDriver(opts config.Options, client Client, resolver *tags.Resolver, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Driver{
		opts:     opts,
		client:   client,
		resolver: resolver,
		logger:   logger,
	}
}

// Run imports the rows of r that fall inside the configured window.
//
// The summary is returned in every case. A *core.ConfigurationError means
// nothing was sent; a *core.ExternalCallError names the row whose API call
// failed, every earlier selected row having been sent.
func (d *Driver) Run(ctx context.Context, r io.Reader) (Summary, error) {
	sum := newSummary(logging.RunID(ctx), d.opts.Chapter(), d.opts.DryRun)
	finish := func(err error) (Summary, error) {
		sum.Duration = time.Since(sum.StartedAt)
		sum.UnknownTags = d.resolver.Warned().Tags()
		return sum, err
	}

	if !d.opts.DryRun && d.client == nil {
		return finish(errors.New("importer: no client for a live run"))
	}

	reader, err := core.NewReader(r)
	if err != nil {
		return finish(core.NewConfigurationError(d.opts.InputFile, "cannot read input", err))
	}
	if err := core.ValidateHeaders(reader.Index(), schema.NationBuilderFieldSpecs); err != nil {
		return finish(core.NewConfigurationError(d.opts.InputFile, "invalid input", err))
	}
	if missing := core.MissingOptional(reader.Index(), schema.NationBuilderFieldSpecs); len(missing) > 0 {
		d.logger.Debug("optional columns absent, reading as empty", "columns", missing)
	}

	for {
		if err := ctx.Err(); err != nil {
			return finish(fmt.Errorf("import interrupted after row %d: %w", sum.LastRow, err))
		}

		row, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return finish(core.NewConfigurationError(d.opts.InputFile, "cannot read input", err))
		}

		if d.opts.PastWindow(row.Number) {
			break
		}
		if !d.opts.InWindow(row.Number) {
			continue
		}
		sum.LastRow = row.Number

		err = d.importRow(ctx, row)
		var skipped *core.RowSkippedError
		switch {
		case errors.As(err, &skipped):
			sum.skip(skipped.Reason)
			d.logger.Info("import skipped", "row", row.Number, "reason", string(skipped.Reason))
		case err != nil:
			return finish(err)
		default:
			sum.Processed++
		}
	}

	return finish(nil)
}

func (d *Driver) importRow(ctx context.Context, row core.Row) error {
	d.logger.Info("importing",
		"row", row.Number,
		"name", row.Get(schema.ColFullName),
		"email", row.Get(schema.ColEmail),
		"opt_in", row.Get(schema.ColEmailOptIn),
		"tags", row.Get(schema.ColTagList),
	)

	c, err := buildCandidate(row, d.opts.IncludeUnsubscribed, d.opts.Force, d.opts.NormalizeStates)
	if err != nil {
		return err
	}
	c.signup.AddTags = d.resolver.Resolve(row.Get(schema.ColTagList))

	if d.opts.DryRun {
		if d.opts.Verbose {
			d.logger.Info("not executed",
				"row", row.Number,
				"request", indentJSON(c.signup),
				"custom_fields", indentJSON(c.customFields),
				"add_tags", c.signup.AddTags,
			)
		}
		return nil
	}

	rec, err := d.client.Create(ctx, c.signup)
	if err != nil {
		return core.NewExternalCallError(row.Number, "create", err)
	}
	if c.customFields != nil {
		rec, err = d.client.Upsert(ctx, rec, osdi.PersonPatch{CustomFields: c.customFields})
		if err != nil {
			return core.NewExternalCallError(row.Number, "upsert", err)
		}
	}

	if d.opts.Verbose {
		d.logger.Info("response",
			"row", row.Number,
			"body", indentJSON(rec.State),
			"add_tags", c.signup.AddTags,
		)
	}
	return nil
}

func indentJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
