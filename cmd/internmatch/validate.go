package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/internship-matcher/internal/schemas"
	"github.com/spf13/cobra"
)

var (
	validateKind string
	validateJSON string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a catalog or candidate profile against its JSON schema",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateKind, "kind", "k", "", "Document kind: catalog or candidate (required)")
	validateCmd.Flags().StringVarP(&validateJSON, "json", "j", "", "Path to JSON file to validate (required)")

	if err := validateCmd.MarkFlagRequired("kind"); err != nil {
		panic(fmt.Sprintf("failed to mark kind flag as required: %v", err))
	}
	if err := validateCmd.MarkFlagRequired("json"); err != nil {
		panic(fmt.Sprintf("failed to mark json flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(validateJSON)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", validateJSON, err)
	}

	err = schemas.ValidateDocument(schemas.Kind(validateKind), data)
	if err == nil {
		_, _ = fmt.Fprintln(os.Stdout, "Validation passed")
		return nil
	}

	var ve *schemas.ValidationError
	if errors.As(err, &ve) {
		_, _ = fmt.Fprintf(os.Stderr, "Validation failed:\n")
		for _, fe := range ve.Errors {
			_, _ = fmt.Fprintf(os.Stderr, "  %s: %s\n", fe.Field, fe.Message)
		}
		os.Exit(1)
	}
	return err
}
