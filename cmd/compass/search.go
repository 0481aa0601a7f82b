package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aliskhannn/career-compass-bot/internal/catalog"
	"github.com/aliskhannn/career-compass-bot/internal/service"
)

// Collections the search command can list.
const (
	kindCareers   = "careers"
	kindMedia     = "media"
	kindStories   = "stories"
	kindResources = "resources"
)

type searchFlags struct {
	kind     string
	category string
	audience string
	sort     string
}

func newSearchCmd(opts *options) *cobra.Command {
	flags := &searchFlags{}

	cmd := &cobra.Command{
		Use:   "search [text]",
		Short: "Filter and sort portal content",
		Long: `Search careers, media, success stories or resources.

Text is matched case-insensitively against titles, descriptions and tags.
--sort accepts "name" or "salary"; unknown values sort by name.
Stories keep file order unless --sort is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, content, err := opts.loadContent()
			if err != nil {
				return err
			}

			q := catalog.Query{
				SearchText: strings.Join(args, " "),
				Category:   flags.category,
				Audience:   flags.audience,
				Sort:       catalog.ParseSortKey(flags.sort),
			}
			if flags.kind == kindStories && !cmd.Flags().Changed("sort") {
				q.Sort = catalog.SortNone
			}
			return runSearch(cmd.OutOrStdout(), service.NewCatalogService(content), flags.kind, q)
		},
	}

	cmd.Flags().StringVar(&flags.kind, "kind", kindCareers, "collection: careers, media, stories or resources")
	cmd.Flags().StringVar(&flags.category, "category", catalog.All, "category, field or resource kind")
	cmd.Flags().StringVar(&flags.audience, "audience", catalog.All, "media audience: student, postgraduate or professional")
	cmd.Flags().StringVar(&flags.sort, "sort", "name", "sort order: name or salary")
	return cmd
}

func runSearch(w io.Writer, catalogService *service.CatalogService, kind string, q catalog.Query) error {
	type row struct {
		title  string
		detail string
	}
	var rows []row

	switch kind {
	case kindCareers:
		for _, c := range catalogService.Careers(q) {
			rows = append(rows, row{c.Title, c.Salary})
		}
	case kindMedia:
		for _, m := range catalogService.Media(q) {
			rows = append(rows, row{m.Title, m.Type + " · " + m.Duration})
		}
	case kindStories:
		for _, s := range catalogService.Stories(q) {
			rows = append(rows, row{s.Name, s.Title})
		}
	case kindResources:
		resourceKind := q.Category
		if resourceKind == catalog.All {
			resourceKind = ""
		}
		for _, r := range catalogService.Resources(resourceKind, q.SearchText) {
			rows = append(rows, row{r.Title, r.Kind})
		}
	default:
		return fmt.Errorf("unknown kind %q", kind)
	}

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%s: %d found", kind, len(rows))))
	for i, r := range rows {
		fmt.Fprintf(w, "%2d. %s  %s\n", i+1, titleStyle.Render(r.title), dimStyle.Render(r.detail))
	}
	return nil
}
