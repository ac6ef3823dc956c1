package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jongio/exturl/dbfield"
	"github.com/jongio/exturl/store"
)

// Environment defaults for the store flags.
const (
	EnvStoreBackend = "EXTURL_STORE_BACKEND"
	EnvStoreDSN     = "EXTURL_STORE_DSN"
	EnvStoreDir     = "EXTURL_STORE_DIR"
)

type storeOptions struct {
	backend   string
	dsn       string
	dir       string
	prefix    string
	noBreaker bool
}

type storeResult struct {
	Key     string `json:"key"`
	URL     string `json:"url,omitempty"`
	Deleted bool   `json:"deleted,omitempty"`
}

// openStore is replaced in tests.
var openStore = store.Open

func (s *storeOptions) open(ctx context.Context) (store.Store, error) {
	return openStore(ctx, store.Options{
		Backend:        s.backend,
		DSN:            s.dsn,
		Dir:            s.dir,
		DisableBreaker: s.noBreaker,
	})
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func newStoreCmd(opts *rootOptions) *cobra.Command {
	sopts := &storeOptions{}
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Save, read and delete URLs in a store",
		Long: `Save, read and delete URLs in a store. Values are normalized before they are
saved and printed verbatim when read.

Backends: ` + strings.Join(store.Backends(), ", ") + `. The file backend keeps one
JSON file per key; redis takes an address or redis:// URL and postgres a
connection string via --dsn.`,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&sopts.backend, "backend", envOr(EnvStoreBackend, store.BackendFile), "store backend: "+strings.Join(store.Backends(), ", "))
	flags.StringVar(&sopts.dsn, "dsn", os.Getenv(EnvStoreDSN), "redis address or postgres connection string")
	flags.StringVar(&sopts.dir, "dir", os.Getenv(EnvStoreDir), "directory of the file backend")
	flags.StringVar(&sopts.prefix, "prefix", "", "key prefix")
	flags.BoolVar(&sopts.noBreaker, "no-breaker", false, "disable the circuit breaker for remote backends")

	cmd.AddCommand(
		newStoreSaveCmd(opts, sopts),
		newStoreGetCmd(opts, sopts),
		newStoreDeleteCmd(opts, sopts),
	)
	return cmd
}

func newStoreSaveCmd(opts *rootOptions, sopts *storeOptions) *cobra.Command {
	var key string
	cmd := &cobra.Command{
		Use:   "save <url>",
		Short: "Normalize and save a URL",
		Long:  "Normalize and save a URL. Without --key a new random key is generated and printed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sopts.open(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			if key == "" {
				key = store.NewKey()
			}
			column := dbfield.New(key).SetValue(args[0])
			if err := column.SaveInto(cmd.Context(), store.Record(s, sopts.prefix), opts.cfg); err != nil {
				return err
			}

			out := opts.printer(cmd)
			return out.Print(storeResult{Key: key, URL: column.Value}, func() {
				out.Success("saved %s", key)
				out.Label("url", out.URL(column.Value))
			})
		},
	}
	cmd.Flags().StringVarP(&key, "key", "k", "", "record key")
	return cmd
}

func newStoreGetCmd(opts *rootOptions, sopts *storeOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print the URL saved under a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sopts.open(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			column := dbfield.New(args[0])
			if err := column.LoadFrom(cmd.Context(), store.Record(s, sopts.prefix)); err != nil {
				return err
			}

			out := opts.printer(cmd)
			return out.Print(storeResult{Key: args[0], URL: column.String()}, func() {
				out.Plain("%s", column.String())
			})
		},
	}
}

func newStoreDeleteCmd(opts *rootOptions, sopts *storeOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <key>",
		Short: "Delete the URL saved under a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sopts.open(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			rec := store.Record(s, sopts.prefix)
			if err := s.Delete(cmd.Context(), rec.Key(args[0])); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return fmt.Errorf("record %q: %w", args[0], err)
				}
				return err
			}

			out := opts.printer(cmd)
			return out.Print(storeResult{Key: args[0], Deleted: true}, func() {
				out.Success("deleted %s", args[0])
			})
		},
	}
}
