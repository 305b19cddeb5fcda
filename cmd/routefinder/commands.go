package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fasthttp/routefinder"
	"github.com/fasthttp/routefinder/internal/routetable"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type app struct {
	routesPath string
	logLevel   string
	logFormat  string

	logger *zap.Logger
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "routefinder",
		Short:         "Inspect and query route tables",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if a.logger != nil {
				return nil
			}

			logger, err := newLogger(a.logLevel, a.logFormat)
			if err != nil {
				return err
			}
			a.logger = logger

			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.routesPath, "routes", "r", "routes.yaml", "route table file")
	flags.StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flags.StringVar(&a.logFormat, "log-format", formatConsole, "log format (console, json)")

	root.AddCommand(
		newRoutesCommand(a),
		newMatchCommand(a),
		newRenderCommand(a),
	)

	return root
}

func newRoutesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List routes from the most to the least specific",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := a.router()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for route := range r.Routes() {
				printRoute(out, route)
			}

			return nil
		},
	}
}

func newMatchCommand(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "match PATH...",
		Short: "Match paths against the route table",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.router()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			unmatched := 0

			for _, path := range args {
				found := 0

				for m := range r.Matches(path) {
					found++
					printMatch(out, m)

					if !all {
						break
					}
				}

				if found == 0 {
					unmatched++
					a.logger.Warn("no route matches", zap.String("path", path))
					continue
				}

				a.logger.Debug("path matched", zap.String("path", path), zap.Int("matches", found))
			}

			if unmatched > 0 {
				return fmt.Errorf("%d of %d paths did not match", unmatched, len(args))
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "print every matching route, not only the best one")

	return cmd
}

func newRenderCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "render NAME [KEY=VALUE]...",
		Short: "Build the path of a named route",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.router()
			if err != nil {
				return err
			}

			route, ok := r.Named(args[0])
			if !ok {
				return fmt.Errorf("no route named %q", args[0])
			}

			values, err := parseValues(args[1:])
			if err != nil {
				return err
			}

			path, ok := route.Template(captures(route, values))
			if !ok {
				a.logger.Error("cannot render route",
					zap.String("name", route.Name()),
					zap.String("pattern", route.Source()),
				)
				return fmt.Errorf("route %q cannot be rendered with the given values", args[0])
			}

			fmt.Fprintln(cmd.OutOrStdout(), path)

			return nil
		},
	}
}

func (a *app) router() (*routefinder.Router[routetable.Entry], error) {
	table, err := routetable.Load(a.routesPath)
	if err != nil {
		a.logger.Error("failed to load route table", zap.String("path", a.routesPath), zap.Error(err))
		return nil, err
	}

	r, err := table.Build()
	if err != nil {
		a.logger.Error("failed to build router", zap.String("path", a.routesPath), zap.Error(err))
		return nil, err
	}

	a.logger.Debug("route table loaded",
		zap.String("path", a.routesPath),
		zap.Int("routes", r.Len()),
	)

	return r, nil
}

// parseValues reads KEY=VALUE arguments.
func parseValues(args []string) (map[string]string, error) {
	values := make(map[string]string, len(args))

	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid value %q, want KEY=VALUE", arg)
		}
		values[key] = value
	}

	return values, nil
}

// captures orders values the way the route's pattern expects them. The
// anonymous catch-all is given as "*".
func captures(route *routefinder.Route[routetable.Entry], values map[string]string) routefinder.Captures {
	var c routefinder.Captures

	for _, name := range route.Pattern().Params() {
		if v, ok := values[name]; ok {
			c.Add(name, v)
		}
	}

	if seg, ok := route.Pattern().CatchAll(); ok {
		key := seg.Text
		if key == "" {
			key = "*"
		}

		if v, ok := values[key]; ok {
			c.SetNamedWildcard(seg.Text, v)
		}
	}

	return c
}

func printRoute(w io.Writer, route *routefinder.Route[routetable.Entry]) {
	e := route.Target()

	name := e.Name
	if name == "" {
		name = "-"
	}

	fmt.Fprintf(w, "%s\t%s\t%s\n", route, name, e.Target)
}

func printMatch(w io.Writer, m *routefinder.Match[routetable.Entry]) {
	fmt.Fprintf(w, "%s\t%s", m, m.Target().Target)

	m.Captures().Each(func(name, value string) {
		fmt.Fprintf(w, "\t%s=%s", name, value)
	})

	if rest, ok := m.Wildcard(); ok && m.Captures().WildcardName() == "" {
		fmt.Fprintf(w, "\t*=%s", rest)
	}

	fmt.Fprintln(w)
}
