package main

import (
	"os"

	"github.com/spf13/cobra"
)

var vocabFormat string

func init() {
	rootCmd.AddCommand(vocabularyCmd)
	vocabularyCmd.Flags().StringVarP(&vocabFormat, "format", "f", FormatTable, "Output format: table, json or yaml")
}

var vocabularyCmd = &cobra.Command{
	Use:   "vocabulary",
	Short: "List the accepted values of each categorical field",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := checkFormat(vocabFormat); err != nil {
			return err
		}
		rec, err := buildRecommender()
		if err != nil {
			return err
		}
		return printVocabulary(os.Stdout, vocabFormat, rec.Vocabulary())
	},
}
