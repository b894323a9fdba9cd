/*
Package redisstore provides a store for fitted trees backed by a redis
DB. Trees are kept under a configurable key prefix and addressed by
name, so several models can be stored and retrieved independently.
*/
package redisstore

import (
	"context"
	"fmt"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/arborlab/arbor/tree"
	treejson "github.com/arborlab/arbor/tree/json"
)

// StoreError represents an error related with the tree store.
type StoreError string

func (se StoreError) Error() string {
	return string(se)
}

/*
ErrTreeNotFound is the error returned by Load when no tree is stored
under the requested name.
*/
const ErrTreeNotFound = StoreError("no tree stored under that name")

/*
Store is a named store of fitted trees on a redis DB. Trees are
serialized with the tree/json codec.
*/
type Store struct {
	rc     *redis.Client
	prefix string
}

// New takes a redis client and a key prefix and returns a Store backed
// by them.
func New(rc *redis.Client, prefix string) *Store {
	return &Store{rc, prefix}
}

/*
Save takes a context, a name and a pointer to a tree.Tree and stores the
tree under the name, replacing any tree previously stored under it. An
error is returned if the tree cannot be encoded or stored.
*/
func (s *Store) Save(ctx context.Context, name string, t *tree.Tree) error {
	data, err := treejson.Marshal(t)
	if err != nil {
		return fmt.Errorf("saving tree %q: encoding tree: %v", name, err)
	}
	err = s.rc.Set(ctx, s.keyFor(name), data, 0).Err()
	if err != nil {
		return fmt.Errorf("saving tree %q in redis: %v", name, err)
	}
	return nil
}

/*
Load takes a context and a name and returns the tree stored under the
name, ErrTreeNotFound if there is none, or another error if the store
cannot be queried or the stored data cannot be decoded.
*/
func (s *Store) Load(ctx context.Context, name string) (*tree.Tree, error) {
	data, err := s.rc.Get(ctx, s.keyFor(name)).Result()
	if err == redis.Nil {
		return nil, ErrTreeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("retrieving tree %q: %v", name, err)
	}
	t, err := treejson.Unmarshal([]byte(data))
	if err != nil {
		return nil, fmt.Errorf("retrieving tree %q: decoding tree: %v", name, err)
	}
	return t, nil
}

/*
Delete takes a context and a name and removes the tree stored under the
name, if any. An error is returned if the removal cannot be performed.
*/
func (s *Store) Delete(ctx context.Context, name string) error {
	err := s.rc.Del(ctx, s.keyFor(name)).Err()
	if err != nil {
		return fmt.Errorf("deleting tree %q from redis: %v", name, err)
	}
	return nil
}

/*
List takes a context and returns the names of the trees on the store or
an error if the store cannot be queried.
*/
func (s *Store) List(ctx context.Context) ([]string, error) {
	keys, err := s.rc.Keys(ctx, fmt.Sprintf("%s:*", s.prefix)).Result()
	if err != nil {
		return nil, fmt.Errorf("listing trees in redis: %v", err)
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = strings.TrimPrefix(k, fmt.Sprintf("%s:", s.prefix))
	}
	return names, nil
}

func (s *Store) keyFor(name string) string {
	return fmt.Sprintf("%s:%s", s.prefix, name)
}
