// Package cmd implements the scheduler CLI.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/app"
	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/config"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "snowsched",
	Short: "Snow-removal team scheduler",
	Long: `Assigns six-person snow-removal teams from volunteer availability,
prioritizing athletes with the fewest completed shifts while keeping a
qualified leader and the configured varsity minimum on every team.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func newService(opts ...app.Option) (*app.Service, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return app.New(cfg, opts...)
}

// resolveDate accepts either a calendar date (2026-01-05) or a bare weekday
// name, which resolves to its next occurrence, today included.
func resolveDate(s string, now time.Time) (time.Time, error) {
	if d, err := time.Parse("2006-01-02", s); err == nil {
		return d, nil
	}
	want := strings.ToLower(strings.TrimSpace(s))
	for i := 0; i < 7; i++ {
		d := now.AddDate(0, 0, i)
		if strings.ToLower(d.Weekday().String()) == want {
			return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location()), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD or a weekday name", s)
}
