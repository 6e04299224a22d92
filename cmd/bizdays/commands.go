package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/username/biz-days/internal/businesstime"
	"github.com/username/biz-days/internal/calendar"
	"github.com/username/biz-days/internal/ptax"
	"github.com/username/biz-days/internal/session"
	"github.com/username/biz-days/pkg/dateutil"
)

func calcCmd(a *app) *cobra.Command {
	var (
		start, end, rate string
		withRate         bool
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Count business days and hours for the saved or given date range",
		Example: `  bizdays calc --start 2024-01-01 --end 2024-01-31
  bizdays calc --rate 50
  bizdays calc --usdbrl`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := a.openSession()

			var fetch *ptax.Fetch
			if withRate {
				fetch = ptax.Start(cmd.Context(), a.ptaxClient(), time.Now(), a.logger)
			}

			if cmd.Flags().Changed("start") {
				s.SetStartDate(start)
			}
			if cmd.Flags().Changed("end") {
				s.SetEndDate(end)
			}
			if cmd.Flags().Changed("rate") {
				s.SetHourlyRate(rate)
			}

			m, err := s.Calculate()
			if err != nil {
				if errors.Is(err, session.ErrIncompleteRange) {
					return fmt.Errorf("%w (pass --start and --end)", err)
				}
				return err
			}

			out := cmd.OutOrStdout()
			state := s.State()
			fmt.Fprintf(out, "📅 %s .. %s\n", state.StartDate, state.EndDate)
			printMetrics(out, m)
			if amount, ok := s.MonthlyEquivalent(); ok {
				fmt.Fprintf(out, "  Monthly equivalent: %s  (%s/h)\n", businesstime.FormatUSD(amount), state.HourlyRate)
			}

			if fetch != nil {
				printUSDBRL(cmd, fetch)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD), saved on success")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD), saved on success")
	cmd.Flags().StringVar(&rate, "rate", "", "Hourly rate, saved immediately")
	cmd.Flags().BoolVar(&withRate, "usdbrl", false, "Also show yesterday's USD/BRL buy rate")

	return cmd
}

func rateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rate <hourly-rate>",
		Short: "Save the hourly rate and show the monthly equivalent",
		Long:  "Save the hourly rate exactly as typed. Pass an empty string to clear it.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := a.openSession()
			s.SetHourlyRate(args[0])

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "💾 Hourly rate saved: %q\n", args[0])

			state := s.State()
			if state.StartDate == "" || state.EndDate == "" {
				return nil
			}
			if _, err := s.Calculate(); err != nil {
				fmt.Fprintf(out, "  Saved range cannot be calculated: %v\n", err)
				return nil
			}

			if amount, ok := s.MonthlyEquivalent(); ok {
				fmt.Fprintf(out, "  Monthly equivalent for %s .. %s: %s\n", state.StartDate, state.EndDate, businesstime.FormatUSD(amount))
			} else {
				fmt.Fprintln(out, "  Rate is not a number, no monthly equivalent")
			}
			return nil
		},
	}
}

func showCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the saved form values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state := a.openSession().State()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "  Start date:  %s\n", orEmpty(state.StartDate))
			fmt.Fprintf(out, "  End date:    %s\n", orEmpty(state.EndDate))
			fmt.Fprintf(out, "  Hourly rate: %s\n", orEmpty(state.HourlyRate))
			return nil
		},
	}
}

func monthCmd(a *app) *cobra.Command {
	var perDay bool

	cmd := &cobra.Command{
		Use:   "month [YYYY-MM]",
		Short: "Show business days and hours for a whole month (default: current month)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			monthStart := time.Now()
			if len(args) == 1 {
				parsed, err := time.Parse("2006-01", args[0])
				if err != nil {
					return fmt.Errorf("invalid month %q, expected YYYY-MM: %w", args[0], err)
				}
				monthStart = parsed
			}

			info := calendar.NewWeekdayCalendar().GetMonthInfo(monthStart.Year(), monthStart.Month())
			hours := info.WorkingHours

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "📊 %s %d\n", info.Month, info.Year)
			printMetrics(out, businesstime.Metrics{BusinessDays: info.WorkDays, BusinessHours: hours})
			fmt.Fprintf(out, "  Weekend days:   %d\n", info.Weekends)

			if perDay {
				fmt.Fprintln(out, "\n  Date            | Type    | Hours")
				fmt.Fprintln(out, "  ----------------+---------+------")
				for _, day := range info.Days {
					fmt.Fprintf(out, "  %s  | %-7s | %dh\n", day.Date.Format("2006-01-02 Mon"), day.Type, day.WorkingHours)
				}
			}

			rate := a.openSession().State().HourlyRate
			if amount, ok := businesstime.Project(&hours, rate); ok {
				fmt.Fprintf(out, "  Monthly equivalent: %s  (%s/h)\n", businesstime.FormatUSD(amount), rate)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&perDay, "days", false, "Print a per-day breakdown")

	return cmd
}

func usdBrlCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "usdbrl",
		Short: "Show yesterday's USD/BRL buy rate from the Banco Central PTAX service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fetch := ptax.Start(cmd.Context(), a.ptaxClient(), time.Now(), a.logger)
			printUSDBRL(cmd, fetch)
			return nil
		},
	}
}

func printMetrics(out io.Writer, m businesstime.Metrics) {
	fmt.Fprintf(out, "  Business days:  %d\n", m.BusinessDays)
	fmt.Fprintf(out, "  Business hours: %d\n", m.BusinessHours)
}

func printUSDBRL(cmd *cobra.Command, fetch *ptax.Fetch) {
	out := cmd.OutOrStdout()
	if rate, ok := fetch.Wait(cmd.Context()); ok {
		fmt.Fprintf(out, "  USD/BRL (buy, %s): %.4f\n", dateutil.FormatMDY(fetch.Date()), rate)
		return
	}
	fmt.Fprintln(out, "  USD/BRL: unavailable")
}

func orEmpty(s string) string {
	if s == "" {
		return "(empty)"
	}
	return s
}
