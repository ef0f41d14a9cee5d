package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vietddude/bfhl/internal/core/generator"
	"github.com/vietddude/bfhl/internal/grpcapi"
)

var (
	genParams = generator.DefaultParams()
	genKind   string
	genSeed   uint64
	genGRPC   string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate sample tokens as a JSON array",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&genKind, "type", string(generator.KindRandom), "data type (random, mixed, numbers, alphabets, special, pattern, or an edge case)")
	generateCmd.Flags().IntVar(&genParams.Count, "count", generator.DefaultCount, "number of tokens")
	generateCmd.Flags().IntVar(&genParams.MinLength, "min-length", generator.DefaultMinLength, "minimum word length")
	generateCmd.Flags().IntVar(&genParams.MaxLength, "max-length", generator.DefaultMaxLength, "maximum word length")
	generateCmd.Flags().Uint64Var(&genSeed, "seed", 0, "seed for reproducible output (0 = random)")
	generateCmd.Flags().StringVar(&genGRPC, "grpc", "", "generate remotely via this gRPC target")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	p := genParams
	p.Kind = generator.Kind(genKind)

	if genGRPC != "" {
		client, err := grpcapi.NewClient(genGRPC)
		if err != nil {
			return err
		}
		defer client.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()
		data, err := client.Generate(ctx, p)
		if err != nil {
			return fmt.Errorf("remote generate failed: %w", err)
		}
		return printJSON(cmd.OutOrStdout(), data)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var gen *generator.Generator
	if genSeed != 0 {
		gen = generator.NewSeeded(cfg.Generator.MaxCount, genSeed)
	} else {
		gen = generator.New(cfg.Generator.MaxCount)
	}

	data, _, err := gen.Generate(p)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), data)
}
