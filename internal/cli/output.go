package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/goccy/go-json"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to stdout
func NewOutput(format string) *Output {
	return &Output{format: format, w: os.Stdout}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case []Player:
		o.printPlayers(v)
	case CountResult:
		fmt.Fprintf(o.w, "Count: %d\n", v.Count)
	case HealthResult:
		fmt.Fprintf(o.w, "Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Title          string `json:"title"`
	Race           string `json:"race"`
	Profession     string `json:"profession"`
	Birthday       int64  `json:"birthday"`
	Banned         bool   `json:"banned"`
	Experience     int    `json:"experience"`
	Level          int    `json:"level"`
	UntilNextLevel int    `json:"untilNextLevel"`
}

// CountResult wraps the bare integer returned by the count endpoint
type CountResult struct {
	Count int `json:"count"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func birthdayString(ms int64) string {
	return time.UnixMilli(ms).UTC().Format(dateLayout)
}

func (o *Output) printPlayer(p Player) {
	bannedStr := "no"
	if p.Banned {
		bannedStr = "yes"
	}
	fmt.Fprintf(o.w, "Player: %s, %s (%d)\n", p.Name, p.Title, p.ID)
	fmt.Fprintf(o.w, "Race: %s\n", p.Race)
	fmt.Fprintf(o.w, "Profession: %s\n", p.Profession)
	fmt.Fprintf(o.w, "Birthday: %s\n", birthdayString(p.Birthday))
	fmt.Fprintf(o.w, "Banned: %s\n", bannedStr)
	fmt.Fprintf(o.w, "Experience: %d (level %d, %d to next)\n", p.Experience, p.Level, p.UntilNextLevel)
}

func (o *Output) printPlayers(ps []Player) {
	if len(ps) == 0 {
		fmt.Fprintln(o.w, "No players")
		return
	}

	tw := tabwriter.NewWriter(o.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTITLE\tRACE\tPROFESSION\tBIRTHDAY\tBANNED\tEXP\tLEVEL")
	for _, p := range ps {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%t\t%d\t%d\n",
			p.ID, p.Name, p.Title, p.Race, p.Profession, birthdayString(p.Birthday), p.Banned, p.Experience, p.Level)
	}
	_ = tw.Flush()
}
