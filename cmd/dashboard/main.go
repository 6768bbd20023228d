// Command dashboard renders the tennis analytics pages on the terminal.
//
// Usage:
//
//	game-analytics competitions --category "ATP Tour" --gender men
//	game-analytics venues --country Spain
//	game-analytics rankings --name nadal --min-rank 1 --max-rank 100
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/amalbasheer/Game-analytics/internal/config"
	"github.com/amalbasheer/Game-analytics/internal/dashboard"
	"github.com/amalbasheer/Game-analytics/internal/db"
	"github.com/amalbasheer/Game-analytics/internal/render"
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "game-analytics",
		Short: "Tennis analytics terminal dashboard",
	}

	root.AddCommand(competitionsCmd())
	root.AddCommand(venuesCmd())
	root.AddCommand(rankingsCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// runPage connects (or reuses) the shared pool and hands a fresh session to
// the page renderer. Connection failure is not fatal: the page renders its
// sections with empty tables and warning banners.
func runPage(ctx context.Context, page func(ctx context.Context, s *dashboard.Session)) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var q dashboard.Querier
	if pool := db.Shared(ctx, cfg); pool != nil {
		q = pool
	}

	s := dashboard.NewSession(q)
	page(ctx, s)
	return nil
}

// --------------------------------------------------------------------------
// competitions command
// --------------------------------------------------------------------------

func competitionsCmd() *cobra.Command {
	var filter dashboard.CompetitionFilter
	cmd := &cobra.Command{
		Use:   "competitions",
		Short: "Competition analysis: filtered listing, per-category counts, hierarchy",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPage(cmd.Context(), func(ctx context.Context, s *dashboard.Session) {
				out := cmd.OutOrStdout()

				render.Section(out, "Filtered Competitions")
				render.Table(out, s.FilteredCompetitions(ctx, filter))

				render.Section(out, "Competitions per Category")
				perCategory := s.CompetitionsPerCategory(ctx)
				render.Table(out, perCategory)
				render.BarChart(out, perCategory, "category_name", "number_of_competitions")

				render.Section(out, "Competition Hierarchy")
				render.Table(out, s.CompetitionHierarchy(ctx))

				render.Banners(out, s.Banners())
			})
		},
	}
	cmd.Flags().StringVar(&filter.Category, "category", dashboard.FilterAll, "filter by category name")
	cmd.Flags().StringVar(&filter.Type, "type", dashboard.FilterAll, "filter by type (singles, doubles, mixed)")
	cmd.Flags().StringVar(&filter.Gender, "gender", dashboard.FilterAll, "filter by gender (men, women, mixed)")
	cmd.Flags().StringVar(&filter.Level, "level", dashboard.FilterAll, "filter by level (e.g. atp_250)")
	return cmd
}

// --------------------------------------------------------------------------
// venues command
// --------------------------------------------------------------------------

func venuesCmd() *cobra.Command {
	var country string
	cmd := &cobra.Command{
		Use:   "venues",
		Short: "Complexes and venues: listings, per-complex counts, multi-venue complexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPage(cmd.Context(), func(ctx context.Context, s *dashboard.Session) {
				out := cmd.OutOrStdout()

				render.Section(out, "Venues and Associated Complexes")
				if country != "" && country != dashboard.FilterAll {
					render.Table(out, s.VenuesByCountry(ctx, dashboard.VenueFilter{Country: country}))
				} else {
					render.Table(out, s.VenuesWithComplexes(ctx))
				}

				render.Section(out, "Venues per Complex")
				perComplex := s.VenuesPerComplex(ctx)
				render.Table(out, perComplex)
				render.BarChart(out, perComplex, "complex_name", "number_of_venues")

				render.Section(out, "Complexes with Multiple Venues")
				render.Table(out, s.MultiVenueComplexes(ctx))

				render.Banners(out, s.Banners())
			})
		},
	}
	cmd.Flags().StringVar(&country, "country", dashboard.FilterAll, "restrict the venue listing to one country")
	return cmd
}

// --------------------------------------------------------------------------
// rankings command
// --------------------------------------------------------------------------

func rankingsCmd() *cobra.Command {
	filter := dashboard.NewRankingFilter()
	var details string
	cmd := &cobra.Command{
		Use:   "rankings",
		Short: "Competitor rankings: search, leaderboards, country analysis",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPage(cmd.Context(), func(ctx context.Context, s *dashboard.Session) {
				out := cmd.OutOrStdout()

				render.Section(out, "Search and Filter Competitors")
				render.Table(out, s.SearchCompetitors(ctx, filter))

				if details != "" {
					render.Section(out, "Competitor Details")
					render.Table(out, s.CompetitorDetails(ctx, details))
				}

				render.Section(out, "Top-Ranked Competitors")
				render.Table(out, s.TopRanked(ctx, dashboard.DefaultLeaderboardSize))

				render.Section(out, "Competitors with Highest Points")
				render.Table(out, s.PointsLeaders(ctx, dashboard.DefaultLeaderboardSize))

				render.Section(out, "Country-Wise Analysis")
				byCountry := s.CountryAnalysis(ctx)
				render.Table(out, byCountry)
				render.BarChart(out, byCountry, "country", "number_of_competitors")

				render.Banners(out, s.Banners())
			})
		},
	}
	cmd.Flags().StringVar(&filter.Name, "name", "", "competitor name substring (case-insensitive)")
	cmd.Flags().IntVar(&filter.MinRank, "min-rank", dashboard.MinRank, "minimum rank")
	cmd.Flags().IntVar(&filter.MaxRank, "max-rank", dashboard.MaxRank, "maximum rank")
	cmd.Flags().IntVar(&filter.MinPoints, "min-points", dashboard.MinPoints, "minimum points")
	cmd.Flags().IntVar(&filter.MaxPoints, "max-points", dashboard.MaxPoints, "maximum points")
	cmd.Flags().StringVar(&filter.Country, "country", dashboard.FilterAll, "filter by country")
	cmd.Flags().StringVar(&details, "details", "", "show the full record for one competitor (exact name)")
	return cmd
}
