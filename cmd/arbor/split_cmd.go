package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/arborlab/arbor/dataset/csv"
	"github.com/arborlab/arbor/dataset/yaml"
)

type splitCmdConfig struct {
	*rootCmdConfig
	dataInput        string
	metadataInput    string
	output           string
	splitOutput      string
	splitProbability int
	seed             int64
}

func splitCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &splitCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a set into two sets",
		Long:  `Split a labeled set into an output set and a split set, assigning each sample at random`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			config.Logf("Reading metadata at %s...", config.metadataInput)
			metadata, err := yaml.ReadMetadataFromFile(config.metadataInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}

			var outputFile *os.File
			if config.output != "" {
				config.Logf("Creating %s to dump output set...", config.output)
				outputFile, err = os.Create(config.output)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(3)
				}
				defer outputFile.Close()
			} else {
				config.Logf("Using STDOUT to dump output set...")
				outputFile = os.Stdout
			}
			output, err := csv.NewWriter(outputFile, metadata.Features, metadata.Label)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}

			config.Logf("Creating %s to dump split set...", config.splitOutput)
			splitOutputFile, err := os.Create(config.splitOutput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
			defer splitOutputFile.Close()
			splitOutput, err := csv.NewWriter(splitOutputFile, metadata.Features, metadata.Label)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(6)
			}

			randomizer := rand.New(rand.NewSource(config.seed))
			splitter := func(i int, row []float64, label string) (bool, error) {
				var err error
				if (100 * randomizer.Float32()) > float32(config.splitProbability) {
					err = output.Write(row, label)
				} else {
					err = splitOutput.Write(row, label)
				}
				if err != nil {
					return false, err
				}
				return true, nil
			}

			var f *os.File
			if config.dataInput == "" {
				config.Logf("Reading input set from STDIN and splitting it...")
				f = os.Stdin
			} else {
				config.Logf("Opening %s to read input set...", config.dataInput)
				f, err = os.Open(config.dataInput)
				if err != nil {
					fmt.Fprintf(os.Stderr, "reading input set from %s: %v\n", config.dataInput, err)
					os.Exit(7)
				}
				defer f.Close()
			}
			err = csv.ReadBySample(f, metadata.Features, metadata.Label, splitter)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(8)
			}
			err = output.Flush()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(9)
			}
			err = splitOutput.Flush()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(10)
			}
			config.Logf("Input set with %d samples was split into sets with %d and %d samples", output.Count()+splitOutput.Count(), output.Count(), splitOutput.Count())
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV file with the set to split (defaults to STDIN)")
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file describing the feature columns and the label column of the input file (required)")
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a file to dump the output set (defaults to STDOUT)")
	cmd.PersistentFlags().StringVarP(&(config.splitOutput), "split-output", "s", "", "path to a file to dump the split set (required)")
	cmd.PersistentFlags().IntVarP(&(config.splitProbability), "split-probability", "p", 20, "probability as percent integer that a sample of the set will be assigned to the split set")
	cmd.PersistentFlags().Int64Var(&(config.seed), "seed", time.Now().UnixNano(), "seed for the random assignment of samples")
	return cmd
}

func (scc *splitCmdConfig) Validate() error {
	if scc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	if scc.splitOutput == "" {
		return fmt.Errorf("required split-output flag was not set")
	}
	if scc.splitProbability <= 0 || scc.splitProbability >= 100 {
		return fmt.Errorf("split-probability flag was set to an invalid value: it must be set to an integer between 1 and 99")
	}
	return nil
}
