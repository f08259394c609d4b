package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stylekit/internal/adapters/fs"
	"go.trai.ch/stylekit/internal/adapters/logger"
	"go.trai.ch/stylekit/internal/core/ports"
)

const (
	// WatcherNodeID is the unique identifier for the file watcher Graft node.
	WatcherNodeID graft.ID = "adapter.watcher"
	// HashCacheNodeID is the unique identifier for the content hash cache Graft node.
	HashCacheNodeID graft.ID = "adapter.hash_cache"
)

func init() {
	graft.Register(graft.Node[ports.Watcher]{
		ID:        WatcherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.WalkerNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Watcher, error) {
			walker, err := graft.Dep[*fs.Walker](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewWatcher(walker, log), nil
		},
	})

	graft.Register(graft.Node[*HashCache]{
		ID:        HashCacheNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.HasherNodeID},
		Run: func(ctx context.Context) (*HashCache, error) {
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewHashCache(hasher), nil
		},
	})
}
