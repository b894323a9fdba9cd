package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/arborlab/arbor"
	"github.com/arborlab/arbor/dataset"
	"github.com/arborlab/arbor/dataset/csv"
	"github.com/arborlab/arbor/dataset/mongodataset"
	"github.com/arborlab/arbor/dataset/sqldataset"
	"github.com/arborlab/arbor/dataset/sqldataset/pgadapter"
	"github.com/arborlab/arbor/dataset/sqldataset/sqlite3adapter"
	"github.com/arborlab/arbor/dataset/yaml"
)

type trainCmdConfig struct {
	*rootCmdConfig
	dataInput       string
	metadataInput   string
	output          string
	treeName        string
	maxDepth        int
	maxDBConns      int
	mongoDatabase   string
	mongoCollection string
}

func trainCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &trainCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train a tree from a set of data",
		Long:  `Train a binary decision tree from a set of labeled data to predict its label column.`,
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
			trainingTable, err := config.trainingTable(metadata)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			classifier := arbor.New(arbor.MaxDepth(config.maxDepth))
			config.Logf("Training tree from a table with %d samples and %d features to predict %s ...", trainingTable.Count(), trainingTable.NumFeatures(), metadata.Label)
			err = classifier.Fit(trainingTable.Features(), trainingTable.Labels())
			if err != nil {
				fmt.Fprintf(os.Stderr, "training the tree: %v\n", err)
				os.Exit(4)
			}
			config.Logf("Done")
			config.Logf("%v", classifier.Tree())
			err = outputTree(config.output, config.treeName, classifier.Tree())
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL/MongoDB connection URL with data to use to train the tree (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file describing the feature columns and the label column of the input data (required)")
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a file or a redis URL to which the trained tree will be written in JSON format (defaults to STDOUT)")
	cmd.PersistentFlags().StringVarP(&(config.treeName), "name", "n", "default", "name under which the tree is stored when the output is a redis URL")
	cmd.PersistentFlags().IntVarP(&(config.maxDepth), "max-depth", "d", -1, "maximum depth of the trained tree, with the root at depth 0 (defaults to -1: grow until pure or no split improves a node)")
	cmd.PersistentFlags().IntVar(&(config.maxDBConns), "max-db-conns", 0, "limit to DB connections opened at a time (defaults to 0: no limit)")
	cmd.PersistentFlags().StringVar(&(config.mongoDatabase), "mongo-database", "arbor", "database to read samples from when the input is a MongoDB URL")
	cmd.PersistentFlags().StringVar(&(config.mongoCollection), "mongo-collection", "samples", "collection to read samples from when the input is a MongoDB URL")
	return cmd
}

func (tcc *trainCmdConfig) Validate() error {
	if tcc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	return nil
}

func (tcc *trainCmdConfig) trainingTable(metadata *yaml.Metadata) (*dataset.Table, error) {
	if strings.HasPrefix(tcc.dataInput, "postgresql://") {
		return tcc.postgreSQLTrainingTable(metadata)
	}
	if strings.HasPrefix(tcc.dataInput, "mongodb://") || strings.HasPrefix(tcc.dataInput, "mongodb+srv://") {
		return tcc.mongoDBTrainingTable(metadata)
	}
	if strings.HasSuffix(tcc.dataInput, ".db") {
		return tcc.sqlite3TrainingTable(metadata)
	}
	if tcc.dataInput == "" {
		tcc.Logf("Reading training table from STDIN...")
	} else {
		tcc.Logf("Opening %s to read training table...", tcc.dataInput)
	}
	return csv.ReadTableFromFilePath(tcc.dataInput, metadata.Features, metadata.Label)
}

func (tcc *trainCmdConfig) sqlite3TrainingTable(metadata *yaml.Metadata) (*dataset.Table, error) {
	tcc.Logf("Creating SQLite3 adapter for file %s to read training table...", tcc.dataInput)
	adapter, err := sqlite3adapter.New(tcc.dataInput, tcc.maxDBConns)
	if err != nil {
		return nil, err
	}
	defer adapter.Close()
	return sqldataset.Read(context.Background(), adapter, metadata.Features, metadata.Label)
}

func (tcc *trainCmdConfig) postgreSQLTrainingTable(metadata *yaml.Metadata) (*dataset.Table, error) {
	tcc.Logf("Creating PostgreSQL adapter for url %s to read training table...", tcc.dataInput)
	adapter, err := pgadapter.New(tcc.dataInput, tcc.maxDBConns)
	if err != nil {
		return nil, err
	}
	defer adapter.Close()
	return sqldataset.Read(context.Background(), adapter, metadata.Features, metadata.Label)
}

func (tcc *trainCmdConfig) mongoDBTrainingTable(metadata *yaml.Metadata) (*dataset.Table, error) {
	tcc.Logf("Connecting to MongoDB at %s to read training table...", tcc.dataInput)
	ctx := context.Background()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(tcc.dataInput))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %v", err)
	}
	defer client.Disconnect(ctx)
	collection := client.Database(tcc.mongoDatabase).Collection(tcc.mongoCollection)
	return mongodataset.Read(ctx, collection, metadata.Features, metadata.Label)
}
