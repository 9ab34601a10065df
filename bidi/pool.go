package bidi

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// Resolving a line needs three scratch arrays of the size of the line.
// Lines are resolved over and over again while breaking paragraphs, so we
// keep the scratch space in a pool.
type scratchPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalScratchPool *scratchPool

func init() {
	globalScratchPool = &scratchPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &lineScratch{}, nil
		})
	globalScratchPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalScratchPool.opool = pool.NewObjectPool(globalScratchPool.ctx, factory, config)
}

// borrowScratch returns scratch space for a line of n characters.
func borrowScratch(n int) *lineScratch {
	var ls *lineScratch
	if o, err := globalScratchPool.opool.BorrowObject(globalScratchPool.ctx); err == nil {
		ls = o.(*lineScratch)
	} else {
		tracer().Errorf("cannot borrow bidi scratch space: %v", err)
		ls = &lineScratch{}
	}
	ls.reset(n)
	return ls
}

func (ls *lineScratch) release() {
	_ = globalScratchPool.opool.ReturnObject(globalScratchPool.ctx, ls)
}
