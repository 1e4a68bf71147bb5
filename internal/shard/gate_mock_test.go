package shard_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/mock"

	scerrors "github.com/thoreinstein/shardcfg/internal/errors"
	"github.com/thoreinstein/shardcfg/internal/shard"
	"github.com/thoreinstein/shardcfg/internal/shard/mocks"
	"github.com/thoreinstein/shardcfg/internal/tree"
)

func minimal() tree.Mapping {
	return tree.Mapping{
		"meta": tree.Mapping{
			"shard": tree.Mapping{"rootdir": tree.String("/shards")},
		},
		"groups": tree.Mapping{},
		"inputs": tree.Mapping{},
	}
}

func TestGate_SaveLosesRace(t *testing.T) {
	store := mocks.NewMockStore(t)
	store.EXPECT().MkdirAll("/shards").Return(nil)
	store.EXPECT().Exists("/shards/stored_shard_config.yaml").Return(false, nil)
	store.EXPECT().Create("/shards/stored_shard_config.yaml", mock.Anything).
		Return(fs.ErrExist)

	_, err := shard.NewGate(shard.WithStore(store)).Save(minimal())

	var conflict *shard.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("Save() error = %v, want *ConflictError", err)
	}
}

func TestGate_SaveWritesExtractedYAML(t *testing.T) {
	store := mocks.NewMockStore(t)
	store.EXPECT().MkdirAll("/shards").Return(nil)
	store.EXPECT().Exists("/shards/stored_shard_config.yaml").Return(false, nil)
	store.EXPECT().Create("/shards/stored_shard_config.yaml", mock.Anything).
		Run(func(_ string, data []byte) {
			got, err := tree.ParseYAML(data)
			if err != nil {
				t.Errorf("written data is not YAML: %v", err)
				return
			}
			if !tree.Equal(got, shard.Extract(minimal())) {
				t.Errorf("written data = %v", tree.ToAny(got))
			}
		}).
		Return(nil)

	if _, err := shard.NewGate(shard.WithStore(store)).Save(minimal()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
}

func TestGate_SaveMkdirFails(t *testing.T) {
	store := mocks.NewMockStore(t)
	store.EXPECT().MkdirAll("/shards").Return(fs.ErrPermission)

	_, err := shard.NewGate(shard.WithStore(store)).Save(minimal())
	if !errors.Is(err, fs.ErrPermission) {
		t.Errorf("Save() error = %v, want fs.ErrPermission", err)
	}
}

func TestGate_VerifyReadFails(t *testing.T) {
	store := mocks.NewMockStore(t)
	store.EXPECT().Read("/shards/stored_shard_config.yaml").Return(nil, fs.ErrNotExist)

	err := shard.NewGate(shard.WithStore(store)).Verify(minimal())
	if !errors.Is(err, scerrors.ErrNotFound) {
		t.Errorf("Verify() error = %v, want ErrNotFound", err)
	}
}
