package cli

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const dateLayout = "2006-01-02"

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player management commands",
	}

	cmd.AddCommand(newPlayerListCmd())
	cmd.AddCommand(newPlayerCountCmd())
	cmd.AddCommand(newPlayerGetCmd())
	cmd.AddCommand(newPlayerCreateCmd())
	cmd.AddCommand(newPlayerUpdateCmd())
	cmd.AddCommand(newPlayerDeleteCmd())

	return cmd
}

// filterFlags are shared by list and count
type filterFlags struct {
	name, title, race, profession string
	after, before                 string
	banned                        bool
	minExp, maxExp                int
	minLevel, maxLevel            int
}

func (f *filterFlags) register(flags *pflag.FlagSet) {
	flags.StringVar(&f.name, "name", "", "Name contains")
	flags.StringVar(&f.title, "title", "", "Title contains")
	flags.StringVar(&f.race, "race", "", "Race, e.g. HUMAN")
	flags.StringVar(&f.profession, "profession", "", "Profession, e.g. WARRIOR")
	flags.StringVar(&f.after, "after", "", "Born after date (YYYY-MM-DD)")
	flags.StringVar(&f.before, "before", "", "Born before date (YYYY-MM-DD)")
	flags.BoolVar(&f.banned, "banned", false, "Banned status")
	flags.IntVar(&f.minExp, "min-experience", 0, "Minimum experience")
	flags.IntVar(&f.maxExp, "max-experience", 0, "Maximum experience")
	flags.IntVar(&f.minLevel, "min-level", 0, "Minimum level")
	flags.IntVar(&f.maxLevel, "max-level", 0, "Maximum level")
}

// values only includes flags the user actually set
func (f *filterFlags) values(flags *pflag.FlagSet) (url.Values, error) {
	v := url.Values{}
	setString := func(flag, param, val string) {
		if flags.Changed(flag) {
			v.Set(param, val)
		}
	}
	setInt := func(flag, param string, val int) {
		if flags.Changed(flag) {
			v.Set(param, strconv.Itoa(val))
		}
	}

	setString("name", "name", f.name)
	setString("title", "title", f.title)
	setString("race", "race", f.race)
	setString("profession", "profession", f.profession)
	for flag, raw := range map[string]string{"after": f.after, "before": f.before} {
		if !flags.Changed(flag) {
			continue
		}
		ms, err := dateToMillis(raw)
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", flag, err)
		}
		v.Set(flag, strconv.FormatInt(ms, 10))
	}
	if flags.Changed("banned") {
		v.Set("banned", strconv.FormatBool(f.banned))
	}
	setInt("min-experience", "minExperience", f.minExp)
	setInt("max-experience", "maxExperience", f.maxExp)
	setInt("min-level", "minLevel", f.minLevel)
	setInt("max-level", "maxLevel", f.maxLevel)

	return v, nil
}

func dateToMillis(s string) (int64, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return 0, fmt.Errorf("expected YYYY-MM-DD: %w", err)
	}
	return t.UnixMilli(), nil
}

func withQuery(path string, v url.Values) string {
	if len(v) == 0 {
		return path
	}
	return path + "?" + v.Encode()
}

func newPlayerListCmd() *cobra.Command {
	var (
		filters            filterFlags
		order              string
		pageNumber, pageSz int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List players with filters, ordering and paging",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := filters.values(cmd.Flags())
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("order") {
				v.Set("order", order)
			}
			if cmd.Flags().Changed("page") {
				v.Set("pageNumber", strconv.Itoa(pageNumber))
			}
			if cmd.Flags().Changed("size") {
				v.Set("pageSize", strconv.Itoa(pageSz))
			}

			var result []Player
			if err := client.Get(withQuery("/rest/players", v), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	filters.register(cmd.Flags())
	cmd.Flags().StringVar(&order, "order", "ID", "Order by ID, NAME, EXPERIENCE, BIRTHDAY or LEVEL")
	cmd.Flags().IntVar(&pageNumber, "page", 0, "Page number, from 0")
	cmd.Flags().IntVar(&pageSz, "size", 3, "Page size")

	return cmd
}

func newPlayerCountCmd() *cobra.Command {
	var filters filterFlags

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count players matching filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := filters.values(cmd.Flags())
			if err != nil {
				return err
			}

			var count int
			if err := client.Get(withQuery("/rest/players/count", v), &count); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(CountResult{Count: count})
			return nil
		},
	}

	filters.register(cmd.Flags())

	return cmd
}

func newPlayerGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player
			if err := client.Get("/rest/players/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

// playerFields are shared by create and update
type playerFields struct {
	name, title, race, profession, birthday string
	banned                                  bool
	experience                              int
}

func (f *playerFields) register(flags *pflag.FlagSet) {
	flags.StringVar(&f.name, "name", "", "Name, at most 12 characters")
	flags.StringVar(&f.title, "title", "", "Title, at most 30 characters")
	flags.StringVar(&f.race, "race", "", "Race, e.g. HUMAN")
	flags.StringVar(&f.profession, "profession", "", "Profession, e.g. WARRIOR")
	flags.StringVar(&f.birthday, "birthday", "", "Birthday (YYYY-MM-DD)")
	flags.BoolVar(&f.banned, "banned", false, "Banned status")
	flags.IntVar(&f.experience, "experience", 0, "Experience points")
}

// body only includes flags the user actually set
func (f *playerFields) body(flags *pflag.FlagSet) (map[string]any, error) {
	body := map[string]any{}
	for flag, val := range map[string]string{
		"name": f.name, "title": f.title, "race": f.race, "profession": f.profession,
	} {
		if flags.Changed(flag) {
			body[flag] = val
		}
	}
	if flags.Changed("birthday") {
		ms, err := dateToMillis(f.birthday)
		if err != nil {
			return nil, fmt.Errorf("--birthday: %w", err)
		}
		body["birthday"] = ms
	}
	if flags.Changed("banned") {
		body["banned"] = f.banned
	}
	if flags.Changed("experience") {
		body["experience"] = f.experience
	}
	return body, nil
}

func newPlayerCreateCmd() *cobra.Command {
	var fields playerFields

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a player",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := fields.body(cmd.Flags())
			if err != nil {
				return err
			}

			var result Player
			if err := client.Post("/rest/players", body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	fields.register(cmd.Flags())
	for _, f := range []string{"name", "title", "race", "profession", "birthday", "experience"} {
		_ = cmd.MarkFlagRequired(f)
	}

	return cmd
}

func newPlayerUpdateCmd() *cobra.Command {
	var fields playerFields

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update the given fields of a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := fields.body(cmd.Flags())
			if err != nil {
				return err
			}

			var result Player
			if err := client.Post("/rest/players/"+args[0], body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	fields.register(cmd.Flags())

	return cmd
}

func newPlayerDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player
			if err := client.Delete("/rest/players/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
