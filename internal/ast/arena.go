package ast

import (
	"reflect"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ============================================================================
// Arena 节点分配器
// ============================================================================
//
// 一次编译只有一个 Arena，它拥有这次编译产生的全部 AST 节点。
// 节点之间通过普通指针相互引用（表达式 -> Map、Map -> 键表达式 等），
// 这些引用可以成环，且不携带所有权：节点从不单独释放，
// 后续阶段全部结束后整个 Arena 一次性丢弃。
//
// 存储按节点类型分块：每个块是固定容量的切片，追加永远不会触发扩容，
// 因此已经返回的指针在 Arena 生命周期内始终有效。
//
// 使用方式：
//   arena := NewArena(0)
//   defer arena.Free()
//   n := arena.NewInteger(42, false, loc)
//
// Arena 不是并发安全的，只能由所属的编译线程访问。
//
// ============================================================================

// 默认每块容纳的节点数
const defaultChunkSize = 256

// NodeID Arena 内的节点标识，从 1 开始递增
type NodeID uint32

// Arena 节点分配器
type Arena struct {
	id         uuid.UUID
	chunkSize  int
	slabs      map[reflect.Type]slabStats
	nextID     NodeID
	logger     *zap.Logger
	normalizer *Normalizer
}

// Option Arena 配置项
type Option func(*Arena)

// WithLogger 设置诊断日志
func WithLogger(l *zap.Logger) Option {
	return func(a *Arena) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithNormalizer 设置废弃标识符改写器
func WithNormalizer(n *Normalizer) Option {
	return func(a *Arena) {
		if n != nil {
			a.normalizer = n
		}
	}
}

// NewArena 创建一个新的 Arena
//
// 参数:
//   - chunkSize: 每块容纳的节点数，<= 0 时使用默认值
func NewArena(chunkSize int, opts ...Option) *Arena {
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}

	a := &Arena{
		id:        uuid.New(),
		chunkSize: chunkSize,
		slabs:     make(map[reflect.Type]slabStats),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.normalizer == nil {
		a.normalizer = NewNormalizer(DefaultDeprecatedNames)
	}
	a.logger = a.logger.With(zap.String("compilation", a.id.String()))

	return a
}

// ID 返回本次编译的标识
func (a *Arena) ID() uuid.UUID { return a.id }

// Logger 返回带编译标识的日志
func (a *Arena) Logger() *zap.Logger { return a.logger }

// Normalizer 返回标识符改写器
func (a *Arena) Normalizer() *Normalizer { return a.normalizer }

// slab 单一节点类型的分块存储
type slab[T any] struct {
	chunks    [][]T
	chunkSize int
}

type slabStats interface {
	counts() (chunks, used, capacity int)
}

func (s *slab[T]) alloc() *T {
	n := len(s.chunks)
	if n == 0 || len(s.chunks[n-1]) == cap(s.chunks[n-1]) {
		s.chunks = append(s.chunks, make([]T, 0, s.chunkSize))
		n++
	}
	// 容量足够，append 不会移动已有元素
	var zero T
	s.chunks[n-1] = append(s.chunks[n-1], zero)
	return &s.chunks[n-1][len(s.chunks[n-1])-1]
}

func (s *slab[T]) counts() (chunks, used, capacity int) {
	for _, c := range s.chunks {
		used += len(c)
		capacity += cap(c)
	}
	return len(s.chunks), used, capacity
}

// AllocType 从 Arena 分配一个 T 的零值并返回其稳定指针
func AllocType[T any](a *Arena) *T {
	key := reflect.TypeOf((*T)(nil)).Elem()
	s, ok := a.slabs[key].(*slab[T])
	if !ok {
		s = &slab[T]{chunkSize: a.chunkSize}
		a.slabs[key] = s
	}
	return s.alloc()
}

// newBase 为新节点分配标识
func (a *Arena) newBase(loc Location) node {
	a.nextID++
	return node{loc: loc, id: a.nextID}
}

// Free 丢弃 Arena 拥有的全部节点
//
// 调用 Free 后，之前返回的所有节点都不应再被后续阶段使用。
func (a *Arena) Free() {
	a.slabs = make(map[reflect.Type]slabStats)
	a.nextID = 0
}

// ArenaStats Arena 的统计信息（用于调试）
type ArenaStats struct {
	NodeKinds  int // 节点类型数量
	ChunkCount int // 块数量
	NodeCount  int // 已分配节点数
	Capacity   int // 全部块的总容量
}

// Stats 获取 Arena 的统计信息
func (a *Arena) Stats() ArenaStats {
	stats := ArenaStats{NodeKinds: len(a.slabs)}
	for _, s := range a.slabs {
		chunks, used, capacity := s.counts()
		stats.ChunkCount += chunks
		stats.NodeCount += used
		stats.Capacity += capacity
	}
	return stats
}
