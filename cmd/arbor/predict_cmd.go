package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arborlab/arbor/dataset/csv"
	"github.com/arborlab/arbor/dataset/yaml"
)

type predictCmdConfig struct {
	*rootCmdConfig
	dataInput     string
	metadataInput string
	treeInput     string
	treeName      string
}

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &predictCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Classify a set of samples with a trained tree",
		Long:  `Use a trained tree to predict the label of every sample on the input, printing one label per line in input order`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			metadata, err := yaml.ReadMetadataFromFile(config.metadataInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			t, err := loadTree(config.treeInput, config.treeName)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			rows, err := config.sampleRows(metadata)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			config.Logf("Classifying %d samples...", len(rows))
			for i, row := range rows {
				label, err := t.Predict(row)
				if err != nil {
					fmt.Fprintf(os.Stderr, "classifying sample %d: %v\n", i, err)
					os.Exit(5)
				}
				fmt.Println(label)
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV file with the samples to classify (defaults to STDIN)")
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file describing the feature columns of the input data (required)")
	cmd.PersistentFlags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a JSON tree file or a redis URL from which the tree will be read (required)")
	cmd.PersistentFlags().StringVarP(&(config.treeName), "name", "n", "default", "name under which the tree is stored when the tree input is a redis URL")
	return cmd
}

func (pcc *predictCmdConfig) Validate() error {
	if pcc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	if pcc.treeInput == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	return nil
}

func (pcc *predictCmdConfig) sampleRows(metadata *yaml.Metadata) ([][]float64, error) {
	var f *os.File
	var err error
	if pcc.dataInput == "" {
		pcc.Logf("Reading samples from STDIN...")
		f = os.Stdin
	} else {
		pcc.Logf("Opening %s to read samples...", pcc.dataInput)
		f, err = os.Open(pcc.dataInput)
		if err != nil {
			return nil, fmt.Errorf("opening samples at %s: %v", pcc.dataInput, err)
		}
		defer f.Close()
	}
	return csv.ReadRows(f, metadata.Features)
}
