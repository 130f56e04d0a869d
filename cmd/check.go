package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/lshigami/skillgate/internal/service"
	"github.com/spf13/cobra"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <skills>",
	Short: "Print the normalized form of a comma-separated skill list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeJSON(cmd, service.NormalizeSkills(args[0]))
	},
}

var (
	checkSkills    string
	checkResume    string
	checkThreshold int
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Match a resume file against a skill list and print the eligibility report",
	RunE: func(cmd *cobra.Command, args []string) error {
		if checkThreshold < 0 || checkThreshold > 100 {
			return fmt.Errorf("threshold must be between 0 and 100, got %d", checkThreshold)
		}
		skills := service.NormalizeSkills(checkSkills)
		if len(skills) == 0 {
			return fmt.Errorf("no skills given")
		}
		resume, err := os.ReadFile(checkResume)
		if err != nil {
			return fmt.Errorf("reading resume: %w", err)
		}
		if strings.TrimSpace(string(resume)) == "" {
			return fmt.Errorf("resume %s is empty", checkResume)
		}

		matches := service.MatchResume(string(resume), skills)
		return writeJSON(cmd, service.Eligibility(matches, checkThreshold))
	},
}

func init() {
	checkCmd.Flags().StringVar(&checkSkills, "skills", "", "comma-separated required skills")
	checkCmd.Flags().StringVar(&checkResume, "resume", "", "path to a plain-text resume")
	checkCmd.Flags().IntVar(&checkThreshold, "threshold", 70, "eligibility threshold in percent")
	_ = checkCmd.MarkFlagRequired("skills")
	_ = checkCmd.MarkFlagRequired("resume")
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
