package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/arborlab/arbor/tree"
	treejson "github.com/arborlab/arbor/tree/json"
	"github.com/arborlab/arbor/tree/redisstore"
)

const treeKeyPrefix = "arbor:trees"

func isRedisURL(location string) bool {
	return strings.HasPrefix(location, "redis://") || strings.HasPrefix(location, "rediss://")
}

func loadTree(location, name string) (*tree.Tree, error) {
	if isRedisURL(location) {
		store, rc, err := openTreeStore(location)
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return store.Load(context.Background(), name)
	}
	f, err := os.Open(location)
	if err != nil {
		return nil, fmt.Errorf("opening tree file %s: %v", location, err)
	}
	defer f.Close()
	t, err := treejson.ReadTree(f)
	if err != nil {
		return nil, fmt.Errorf("parsing tree file %s: %v", location, err)
	}
	return t, nil
}

func outputTree(location, name string, t *tree.Tree) error {
	if isRedisURL(location) {
		store, rc, err := openTreeStore(location)
		if err != nil {
			return err
		}
		defer rc.Close()
		return store.Save(context.Background(), name, t)
	}
	var f *os.File
	var err error
	if location == "" {
		f = os.Stdout
	} else {
		f, err = os.Create(location)
		if err != nil {
			return err
		}
	}
	defer f.Close()
	return treejson.WriteTree(f, t)
}

func openTreeStore(url string) (*redisstore.Store, *redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing redis url: %v", err)
	}
	rc := redis.NewClient(opts)
	return redisstore.New(rc, treeKeyPrefix), rc, nil
}
