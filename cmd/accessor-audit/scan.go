package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"accessor-engine/access"
	"accessor-engine/accessor"
	"accessor-engine/internal/common"
	"accessor-engine/internal/scan"
)

var scanCmd = &cobra.Command{
	Use:   "scan [flags] [packages]",
	Short: "Scan packages and report accessor strategies",
	Long:  `Scan loads the given Go package patterns (default "./...") and prints every discovered property with the accessor strategy it would bind to`,
	Args:  cobra.ArbitraryArgs,
	RunE:  runScan,
}

// init registers CLI flags for the scan command used by runScan.
func init() {
	scanCmd.Flags().Bool("include-non-public", false, "widen discovery to unexported members")
	scanCmd.Flags().Bool("json", false, "emit the report as JSON")
	scanCmd.Flags().Bool("dump", false, "dump the raw report with go-spew (debugging)")
	scanCmd.Flags().String("config", "", "TOML config file with audit settings")
	scanCmd.Flags().String("color", "auto", "colorize output (auto|on|off)")
}

// jsonProperty is the JSON shape of one report row.
type jsonProperty struct {
	Owner    string `json:"owner"`
	Name     string `json:"name"`
	Value    string `json:"value"`
	Kind     string `json:"kind"`
	Strategy string `json:"strategy"`
	CanRead  bool   `json:"can_read"`
	CanWrite bool   `json:"can_write"`
}

func runScan(cmd *cobra.Command, args []string) error {
	var cfg auditConfig
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := loadConfig(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if set, _ := cmd.Flags().GetBool("include-non-public"); set {
		cfg.IncludeNonPublic = true
	}

	patterns := args
	if common.IsEmpty(patterns) {
		patterns = cfg.Patterns
	}
	if common.IsEmpty(patterns) {
		patterns = []string{"./..."}
	}

	switch mode, _ := cmd.Flags().GetString("color"); mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	}

	opts := access.Default
	if cfg.IncludeNonPublic {
		opts |= access.IncludeNonPublic
	}

	rep, err := scan.NewScanner(opts).Scan(patterns...)
	if err != nil {
		return err
	}

	if dump, _ := cmd.Flags().GetBool("dump"); dump {
		spew.Fdump(os.Stderr, rep)
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return printJSON(rep)
	}

	printPretty(rep)
	return rep.Diags.Error()
}

func printJSON(rep *scan.Report) error {
	rows := make([]jsonProperty, 0, len(rep.Owners))
	for _, owner := range rep.Owners {
		for _, p := range owner.Props {
			rows = append(rows, jsonProperty{
				Owner:    p.Owner.String(),
				Name:     p.Name,
				Value:    p.ValueName,
				Kind:     p.ValueKind.String(),
				Strategy: p.Strategy.String(),
				CanRead:  p.CanRead,
				CanWrite: p.CanWrite,
			})
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

func printPretty(rep *scan.Report) {
	owner := color.New(color.Bold)
	unsupported := color.New(color.FgRed)
	warn := color.New(color.FgYellow)

	if common.IsEmpty(rep.Owners) {
		fmt.Println("no struct types found")
		return
	}

	for _, o := range rep.Owners {
		owner.Printf("%s (%s)\n", o.ID.Name, common.PkgAlias(o.ID.PkgPath))

		for _, p := range o.Props {
			line := fmt.Sprintf("  %-16s %-24s %-10s %s", p.Name, p.Strategy, p.ValueName, rwMarks(p))
			if p.Strategy == accessor.StrategyUnsupported {
				unsupported.Println(line)
			} else {
				fmt.Println(line)
			}
		}
	}

	for _, d := range rep.Diags.Warnings {
		warn.Println("warning: " + d.String())
	}
	for _, d := range rep.Diags.Errors {
		unsupported.Println("error: " + d.String())
	}
}

func rwMarks(p scan.Property) string {
	switch {
	case p.CanRead && p.CanWrite:
		return "rw"
	case p.CanRead:
		return "r-"
	case p.CanWrite:
		return "-w"
	default:
		return "--"
	}
}
